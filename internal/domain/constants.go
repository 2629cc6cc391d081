package domain

// Default configuration values
const (
	DefaultBasePrice               = 40.0
	DefaultSlotDurationMinutes     = 90
	DefaultAdvanceBookingDays      = 14
	DefaultCancellationWindowHours = 24
)

// Business validation constants
const (
	MinDayOfWeek = 0 // воскресенье
	MaxDayOfWeek = 6 // суббота

	MinAdvanceBookingDays      = 0
	MaxAdvanceBookingDays      = 365
	MinCancellationWindowHours = 0
	MaxCancellationWindowHours = 168 // неделя
)

// AllowedSlotDurations допустимые длительности слота в минутах
// Длительность слота задает шаг генерации расписания
var AllowedSlotDurations = []int{90, 120}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// IsAllowedSlotDuration проверяет, что длительность слота допустима
func IsAllowedSlotDuration(minutes int) bool {
	for _, d := range AllowedSlotDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// InactiveReservationStatuses статусы броней, не участвующих в проверке пересечений
var InactiveReservationStatuses = []ReservationStatus{
	StatusCancelled,
}
