package get_facility_reservations

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByFacilityWithFilter(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
