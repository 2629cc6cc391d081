package update_facility_config

import (
	"github.com/m04kA/SMC-CourtService/internal/service/config/models"
)

// UpdateFacilityConfigRequest HTTP request model
// Запрос полностью заменяет текущую конфигурацию площадки
type UpdateFacilityConfigRequest struct {
	BasePrice    float64       `json:"basePrice"`
	Timezone     string        `json:"timezone,omitempty"`
	Courts       []CourtData   `json:"courts"`
	BookingRules BookingRules  `json:"bookingRules"`
	OpeningHours []OpeningHour `json:"openingHours"`
	PricingRules []PricingRule `json:"pricingRules"`
}

// CourtData корт площадки
type CourtData struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Surface   *string  `json:"surface,omitempty"`
	IsActive  bool     `json:"isActive"`
	BasePrice *float64 `json:"basePrice,omitempty"`
}

// BookingRules правила бронирования площадки
type BookingRules struct {
	DefaultDuration         int `json:"defaultDuration"`
	AdvanceBookingDays      int `json:"advanceBookingDays"`
	CancellationWindowHours int `json:"cancellationWindowHours"`
}

// OpeningHour окно работы на день недели
type OpeningHour struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// PricingRule тарифное правило (порядок в списке задает приоритет)
type PricingRule struct {
	Days      []int   `json:"days"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
	CourtIDs  []int64 `json:"courtIds,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateFacilityConfigRequest) ToServiceRequest(userID, facilityID int64) *models.UpdateConfigRequest {
	courts := make([]models.CourtData, len(r.Courts))
	for i, c := range r.Courts {
		courts[i] = models.CourtData{
			ID:        c.ID,
			Name:      c.Name,
			Type:      c.Type,
			Surface:   c.Surface,
			IsActive:  c.IsActive,
			BasePrice: c.BasePrice,
		}
	}

	hours := make([]models.OpeningHourData, len(r.OpeningHours))
	for i, h := range r.OpeningHours {
		hours[i] = models.OpeningHourData{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		}
	}

	rules := make([]models.PricingRuleData, len(r.PricingRules))
	for i, rule := range r.PricingRules {
		rules[i] = models.PricingRuleData{
			Days:      rule.Days,
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
			Price:     rule.Price,
			CourtIDs:  rule.CourtIDs,
		}
	}

	return &models.UpdateConfigRequest{
		UserID:     userID,
		FacilityID: facilityID,
		BasePrice:  r.BasePrice,
		Timezone:   r.Timezone,
		Courts:     courts,
		BookingRules: models.BookingRulesData{
			DefaultDuration:         r.BookingRules.DefaultDuration,
			AdvanceBookingDays:      r.BookingRules.AdvanceBookingDays,
			CancellationWindowHours: r.BookingRules.CancellationWindowHours,
		},
		OpeningHours: hours,
		PricingRules: rules,
	}
}
