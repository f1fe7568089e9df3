package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    Money
		wantErr bool
	}{
		{"89", 8900, false},
		{"89.00", 8900, false},
		{"89.9", 8990, false},
		{"0.05", 5, false},
		{".50", 50, false},
		{"-12.30", -1230, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.234", 0, true}, // больше двух знаков после точки
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewMoneyFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_MulPercentHalfUp(t *testing.T) {
	tests := []struct {
		name    string
		money   Money
		percent float64
		want    Money
	}{
		{"15% of 214.00", 21400, 15.0, 3210},
		{"20% of 134.00", 13400, 20.0, 2680},
		{"20% of 181.90", 18190, 20.0, 3638},
		{"rounds half up", 101, 50.0, 51},  // 50.5 цента -> 51
		{"rounds down below half", 3, 15.0, 0}, // 0.45 цента -> 0
		{"zero percent", 21400, 0.0, 0},
		{"hundred percent", 21400, 100.0, 21400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.money.MulPercentHalfUp(tt.percent))
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "89.00", Money(8900).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-12.30", Money(-1230).String())
	assert.Equal(t, "0.00", Money(0).String())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Money(18190))
	require.NoError(t, err)
	assert.Equal(t, `"181.90"`, string(data))

	var m Money
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, Money(18190), m)

	// Принимаем и JSON-число
	require.NoError(t, json.Unmarshal([]byte(`89.5`), &m))
	assert.Equal(t, Money(8950), m)
}

func TestMoney_Arithmetic(t *testing.T) {
	assert.Equal(t, Money(300), Money(100).Add(Money(200)))
	assert.Equal(t, Money(-100), Money(100).Sub(Money(200)))
	assert.Equal(t, Money(4500), Money(1500).MulInt(3))
	assert.True(t, Money(-1).IsNegative())
	assert.False(t, Money(0).IsNegative())
}
