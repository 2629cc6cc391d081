package models

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// CourtData корт в конфигурации площадки
type CourtData struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Surface   *string  `json:"surface,omitempty"`
	IsActive  bool     `json:"isActive"`
	BasePrice *float64 `json:"basePrice,omitempty"` // NULL = базовая цена площадки
}

// OpeningHourData окно работы площадки на один день недели
// Времена в формате "HH:MM" (допускается "HH:MM:SS", секунды отбрасываются)
type OpeningHourData struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// PricingRuleData тарифное правило
// Порядок правил в списке задает приоритет применения
type PricingRuleData struct {
	Days      []int   `json:"days"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"` // Не включается в интервал
	Price     float64 `json:"price"`
	CourtIDs  []int64 `json:"courtIds,omitempty"` // Пусто = все корты
}

// BookingRulesData правила бронирования площадки
type BookingRulesData struct {
	DefaultDuration         int `json:"defaultDuration"` // 90 или 120 минут
	AdvanceBookingDays      int `json:"advanceBookingDays"`
	CancellationWindowHours int `json:"cancellationWindowHours"`
}

// UpdateConfigRequest запрос на полную замену конфигурации площадки
type UpdateConfigRequest struct {
	UserID       int64 // Менеджер, выполняющий обновление
	FacilityID   int64
	BasePrice    float64
	Timezone     string // Пусто = таймзона сервиса
	Courts       []CourtData
	BookingRules BookingRulesData
	OpeningHours []OpeningHourData
	PricingRules []PricingRuleData
}

// ConfigResponse конфигурация площадки в ответе сервиса
type ConfigResponse struct {
	FacilityID   int64             `json:"facilityId"`
	BasePrice    float64           `json:"basePrice"`
	Timezone     string            `json:"timezone,omitempty"`
	Courts       []CourtData       `json:"courts"`
	BookingRules BookingRulesData  `json:"bookingRules"`
	OpeningHours []OpeningHourData `json:"openingHours"`
	PricingRules []PricingRuleData `json:"pricingRules"`
	IsDefault    bool              `json:"isDefault"` // true = площадка не настроена, возвращена дефолтная конфигурация
}

// FromDomainConfig конвертирует доменную конфигурацию в ответ сервиса
func FromDomainConfig(cfg *domain.EntityConfiguration, isDefault bool) *ConfigResponse {
	courts := make([]CourtData, len(cfg.Courts))
	for i, c := range cfg.Courts {
		courts[i] = CourtData{
			ID:        c.ID,
			Name:      c.Name,
			Type:      c.Type,
			Surface:   c.Surface,
			IsActive:  c.IsActive,
			BasePrice: c.BasePrice,
		}
	}

	hours := make([]OpeningHourData, len(cfg.OpeningHours))
	for i, h := range cfg.OpeningHours {
		hours[i] = OpeningHourData{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  h.OpenTime.String(),
			CloseTime: h.CloseTime.String(),
		}
	}

	rules := make([]PricingRuleData, len(cfg.PricingRules))
	for i, r := range cfg.PricingRules {
		rules[i] = PricingRuleData{
			Days:      r.Days,
			StartTime: r.StartTime.String(),
			EndTime:   r.EndTime.String(),
			Price:     r.Price,
			CourtIDs:  r.CourtIDs,
		}
	}

	return &ConfigResponse{
		FacilityID: cfg.FacilityID,
		BasePrice:  cfg.BasePrice,
		Timezone:   cfg.Timezone,
		Courts:     courts,
		BookingRules: BookingRulesData{
			DefaultDuration:         cfg.BookingRules.DefaultDuration,
			AdvanceBookingDays:      cfg.BookingRules.AdvanceBookingDays,
			CancellationWindowHours: cfg.BookingRules.CancellationWindowHours,
		},
		OpeningHours: hours,
		PricingRules: rules,
		IsDefault:    isDefault,
	}
}
