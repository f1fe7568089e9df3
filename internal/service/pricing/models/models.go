package models

import (
	"time"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// Request модели

// DurationCoefficients DTO нормативов времени
type DurationCoefficients struct {
	BaseMinutes         int                            `json:"baseMinutes"`
	RoomMinutes         map[domain.RoomKind]int        `json:"roomMinutes"`
	PerOtherRoomMinutes int                            `json:"perOtherRoomMinutes"`
	AddonMinutes        map[domain.AddonKind]int       `json:"addonMinutes"`
	ServiceMultipliers  map[domain.ServiceType]float64 `json:"serviceMultipliers"`
}

// DiscountPolicy DTO политики скидок и депозита
type DiscountPolicy struct {
	TopBookerDiscountPercent float64                  `json:"topBookerDiscountPercent"`
	TopBookerCategory        domain.TopBookerCategory `json:"topBookerCategory"`
	DepositPercent           float64                  `json:"depositPercent"`
	CancellationFeeFlat      types.Money              `json:"cancellationFeeFlat"`
}

// UpdatePricingConfigRequest запрос на обновление rate card
// Секции опциональны - не переданные секции сохраняют текущие значения
type UpdatePricingConfigRequest struct {
	UserID               int64                              `json:"-"` // заполняется из заголовка аутентификации
	ServicePrices        map[domain.ServiceType]types.Money `json:"servicePrices,omitempty"`
	RoomPrices           map[domain.RoomKind]types.Money    `json:"roomPrices,omitempty"`
	AddonPrices          map[domain.AddonKind]types.Money   `json:"addonPrices,omitempty"`
	DurationCoefficients *DurationCoefficients              `json:"durationCoefficients,omitempty"`
	DiscountPolicy       *DiscountPolicy                    `json:"discountPolicy,omitempty"`
}

// PricingConfigPayload полное описание rate card (без версии и ID)
// Используется для preview изменений до сохранения
type PricingConfigPayload struct {
	ServicePrices        map[domain.ServiceType]types.Money `json:"servicePrices"`
	RoomPrices           map[domain.RoomKind]types.Money    `json:"roomPrices"`
	AddonPrices          map[domain.AddonKind]types.Money   `json:"addonPrices"`
	DurationCoefficients DurationCoefficients               `json:"durationCoefficients"`
	DiscountPolicy       DiscountPolicy                     `json:"discountPolicy"`
}

// Response модели

// PricingConfigResponse ответ с данными rate card
type PricingConfigResponse struct {
	ID                   int64                              `json:"id"`
	Version              int                                `json:"version"`
	ServicePrices        map[domain.ServiceType]types.Money `json:"servicePrices"`
	RoomPrices           map[domain.RoomKind]types.Money    `json:"roomPrices"`
	AddonPrices          map[domain.AddonKind]types.Money   `json:"addonPrices"`
	DurationCoefficients DurationCoefficients               `json:"durationCoefficients"`
	DiscountPolicy       DiscountPolicy                     `json:"discountPolicy"`
	CreatedAt            time.Time                          `json:"createdAt"`
	UpdatedAt            time.Time                          `json:"updatedAt"`
}

// PricingConfigListResponse ответ со списком версий rate card
type PricingConfigListResponse struct {
	Configs []PricingConfigResponse `json:"configs"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.PricingConfig) *PricingConfigResponse {
	if c == nil {
		return nil
	}

	return &PricingConfigResponse{
		ID:            c.ID,
		Version:       c.Version,
		ServicePrices: c.ServicePrices,
		RoomPrices:    c.RoomPrices,
		AddonPrices:   c.AddonPrices,
		DurationCoefficients: DurationCoefficients{
			BaseMinutes:         c.Durations.BaseMinutes,
			RoomMinutes:         c.Durations.RoomMinutes,
			PerOtherRoomMinutes: c.Durations.PerOtherRoomMinutes,
			AddonMinutes:        c.Durations.AddonMinutes,
			ServiceMultipliers:  c.Durations.ServiceMultipliers,
		},
		DiscountPolicy: DiscountPolicy{
			TopBookerDiscountPercent: c.Discount.TopBookerDiscountPercent,
			TopBookerCategory:        c.Discount.TopBookerCategory,
			DepositPercent:           c.Discount.DepositPercent,
			CancellationFeeFlat:      c.Discount.CancellationFeeFlat,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.PricingConfig) *PricingConfigListResponse {
	if configs == nil {
		return &PricingConfigListResponse{
			Configs: []PricingConfigResponse{},
		}
	}

	resp := &PricingConfigListResponse{
		Configs: make([]PricingConfigResponse, len(configs)),
	}

	for i, config := range configs {
		if configResp := FromDomainConfig(config); configResp != nil {
			resp.Configs[i] = *configResp
		}
	}

	return resp
}

// ToDomain конвертирует DTO нормативов времени в domain модель
func (d *DurationCoefficients) ToDomain() domain.DurationCoefficients {
	return domain.DurationCoefficients{
		BaseMinutes:         d.BaseMinutes,
		RoomMinutes:         d.RoomMinutes,
		PerOtherRoomMinutes: d.PerOtherRoomMinutes,
		AddonMinutes:        d.AddonMinutes,
		ServiceMultipliers:  d.ServiceMultipliers,
	}
}

// ToDomain конвертирует DTO политики скидок в domain модель
func (d *DiscountPolicy) ToDomain() domain.DiscountPolicy {
	return domain.DiscountPolicy{
		TopBookerDiscountPercent: d.TopBookerDiscountPercent,
		TopBookerCategory:        d.TopBookerCategory,
		DepositPercent:           d.DepositPercent,
		CancellationFeeFlat:      d.CancellationFeeFlat,
	}
}

// ToDomainConfig конвертирует полный payload в domain модель (версию задаёт сервис)
func (p *PricingConfigPayload) ToDomainConfig() *domain.PricingConfig {
	return &domain.PricingConfig{
		ServicePrices: p.ServicePrices,
		RoomPrices:    p.RoomPrices,
		AddonPrices:   p.AddonPrices,
		Durations:     p.DurationCoefficients.ToDomain(),
		Discount:      p.DiscountPolicy.ToDomain(),
	}
}

// ApplyToConfig применяет обновления к существующей конфигурации
// Обновляются только переданные (not nil) секции
func (r *UpdatePricingConfigRequest) ApplyToConfig(config *domain.PricingConfig) {
	if r.ServicePrices != nil {
		config.ServicePrices = r.ServicePrices
	}
	if r.RoomPrices != nil {
		config.RoomPrices = r.RoomPrices
	}
	if r.AddonPrices != nil {
		config.AddonPrices = r.AddonPrices
	}
	if r.DurationCoefficients != nil {
		config.Durations = r.DurationCoefficients.ToDomain()
	}
	if r.DiscountPolicy != nil {
		config.Discount = r.DiscountPolicy.ToDomain()
	}
}
