package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation существующая бронь корта
//
// Для этого сервиса брони - входные данные только для чтения: создание и отмена
// принадлежат сервису бронирования. StartTime/EndTime - абсолютные моменты (UTC
// в хранилище); проверка пересечений выполняется по абсолютному времени
type Reservation struct {
	ID         int64
	FacilityID int64
	CourtID    int64
	StartTime  time.Time
	EndTime    time.Time
	Status     ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation blocks its court.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// Overlaps reports whether the reservation overlaps [start, end).
// Полуинтервалы: бронь, заканчивающаяся ровно в start, не пересекается
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// ReservationsFilter фильтр для получения броней площадки
type ReservationsFilter struct {
	FacilityID       int64      // Обязательный параметр
	CourtID          *int64     // Фильтр по корту (опционально)
	StartDate        *time.Time // Начало периода (опционально)
	EndDate          *time.Time // Конец периода (опционально)
	IncludeCancelled bool       // Включать ли отмененные брони
}
