package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Money денежная сумма с фиксированной точкой (в центах)
// Используется вместо float64, чтобы расчёты скидки и депозита сходились точно
type Money int64

// NewMoneyFromCents создает Money из количества центов
func NewMoneyFromCents(cents int64) Money {
	return Money(cents)
}

// NewMoneyFromString парсит денежную сумму из строки вида "89", "89.9" или "89.00"
// Допускается максимум два знака после точки
func NewMoneyFromString(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("money: empty string")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}

	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("money: invalid format %q", s)
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("money: more than two fractional digits in %q", s)
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid integer part in %q: %v", s, err)
	}

	cents := int64(0)
	if fracPart != "" {
		cents, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("money: invalid fractional part in %q: %v", s, err)
		}
		if len(fracPart) == 1 {
			cents *= 10
		}
	}

	total := units*100 + cents
	if negative {
		total = -total
	}

	return Money(total), nil
}

// Cents возвращает сумму в центах
func (m Money) Cents() int64 {
	return int64(m)
}

// IsNegative возвращает true, если сумма отрицательная
func (m Money) IsNegative() bool {
	return m < 0
}

// Add возвращает сумму двух значений
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub возвращает разность двух значений
func (m Money) Sub(other Money) Money {
	return m - other
}

// MulInt умножает сумму на целое количество (комнат, окон, корзин)
func (m Money) MulInt(n int64) Money {
	return Money(int64(m) * n)
}

// MulPercentHalfUp вычисляет percent% от суммы с округлением half-up до цента
// Процент переводится в базисные пункты, расчёт полностью целочисленный
func (m Money) MulPercentHalfUp(percent float64) Money {
	bp := int64(percent*100 + 0.5)
	num := int64(m) * bp
	if num >= 0 {
		return Money((num + 5000) / 10000)
	}
	return Money(-((-num + 5000) / 10000))
}

// String возвращает строковое представление вида "89.00"
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON сериализует сумму как десятичную строку
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON принимает строку ("89.00") или JSON-число (89.5)
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := NewMoneyFromString(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
