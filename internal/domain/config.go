package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// OpeningHour represents the opening window of a facility for one weekday.
// Отсутствие записи для дня недели означает, что площадка в этот день закрыта.
type OpeningHour struct {
	DayOfWeek int // 0=воскресенье .. 6=суббота, в гражданской таймзоне площадки
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// PricingRule represents one dynamic pricing rule.
//
// Правила хранятся упорядоченным списком; применяется ПЕРВОЕ совпавшее правило,
// порядок задает приоритет (а не "наиболее специфичное" правило). Это контракт
// конфигурации: администратор выражает приоритет порядком правил.
type PricingRule struct {
	Days      []int // дни недели, к которым применяется правило
	StartTime types.TimeString
	EndTime   types.TimeString // полуинтервал [StartTime, EndTime) - EndTime не входит
	Price     float64
	CourtIDs  []int64 // nil/пусто = правило действует для всех кортов
}

// AppliesOnDay returns true if the rule covers the given civil weekday.
func (r *PricingRule) AppliesOnDay(weekday int) bool {
	for _, d := range r.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// InWindow returns true if the civil time-of-day falls in [StartTime, EndTime).
func (r *PricingRule) InWindow(timeOfDay types.TimeString) bool {
	return !timeOfDay.IsBefore(r.StartTime) && timeOfDay.IsBefore(r.EndTime)
}

// AppliesToCourt returns true if the rule covers the given court.
// Правило с непустым CourtIDs никогда не совпадает без явного courtID.
func (r *PricingRule) AppliesToCourt(courtID *int64) bool {
	if len(r.CourtIDs) == 0 {
		return true
	}
	if courtID == nil {
		return false
	}
	for _, id := range r.CourtIDs {
		if id == *courtID {
			return true
		}
	}
	return false
}

// BookingRules правила бронирования площадки
// Генератором слотов используется только DefaultDuration; остальные поля
// относятся к созданию и отмене броней и валидируются при сохранении конфигурации
type BookingRules struct {
	DefaultDuration         int // длительность слота в минутах (90 или 120)
	AdvanceBookingDays      int
	CancellationWindowHours int
}

// EntityConfiguration полная конфигурация расписания одной площадки
// Собирается из хранилища заново на каждый запрос; ядро её не кеширует и не мутирует
type EntityConfiguration struct {
	FacilityID   int64
	BasePrice    float64
	Timezone     string // пусто = таймзона сервиса из config.toml
	Courts       []Court
	BookingRules BookingRules
	OpeningHours []OpeningHour
	PricingRules []PricingRule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OpeningHourFor returns the opening window for the given civil weekday,
// or nil if the facility is closed that day.
func (c *EntityConfiguration) OpeningHourFor(weekday int) *OpeningHour {
	for i := range c.OpeningHours {
		if c.OpeningHours[i].DayOfWeek == weekday {
			return &c.OpeningHours[i]
		}
	}
	return nil
}

// CourtByID returns the court with the given id, or nil.
func (c *EntityConfiguration) CourtByID(id int64) *Court {
	for i := range c.Courts {
		if c.Courts[i].ID == id {
			return &c.Courts[i]
		}
	}
	return nil
}

// DefaultEntityConfig возвращает минимальную валидную конфигурацию площадки
// Используется, когда для площадки еще не настроена собственная конфигурация
func DefaultEntityConfig(facilityID int64) *EntityConfiguration {
	return &EntityConfiguration{
		FacilityID:   facilityID,
		BasePrice:    DefaultBasePrice,
		Courts:       []Court{},
		OpeningHours: []OpeningHour{},
		PricingRules: []PricingRule{},
		BookingRules: BookingRules{
			DefaultDuration:         DefaultSlotDurationMinutes,
			AdvanceBookingDays:      DefaultAdvanceBookingDays,
			CancellationWindowHours: DefaultCancellationWindowHours,
		},
	}
}
