package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// ListRequest запрос списка броней площадки
type ListRequest struct {
	UserID           int64 // Менеджер, запрашивающий список
	FacilityID       int64
	CourtID          *int64
	StartDate        *time.Time
	EndDate          *time.Time
	IncludeCancelled bool
}

// ReservationResponse бронь в ответе сервиса
type ReservationResponse struct {
	ID         int64     `json:"id"`
	FacilityID int64     `json:"facilityId"`
	CourtID    int64     `json:"courtId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
}

// ListResponse список броней площадки
type ListResponse struct {
	FacilityID   int64                 `json:"facilityId"`
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует доменную бронь в ответ сервиса
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         res.ID,
		FacilityID: res.FacilityID,
		CourtID:    res.CourtID,
		StartTime:  res.StartTime,
		EndTime:    res.EndTime,
		Status:     string(res.Status),
	}
}

// FromDomainReservationList конвертирует список доменных броней в ответ сервиса
func FromDomainReservationList(facilityID int64, list []*domain.Reservation) *ListResponse {
	reservations := make([]ReservationResponse, len(list))
	for i, res := range list {
		reservations[i] = *FromDomainReservation(res)
	}
	return &ListResponse{
		FacilityID:   facilityID,
		Reservations: reservations,
	}
}
