package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// GetActiveByFacilityAndWindow получает активные брони площадки за абсолютное временное окно
	GetActiveByFacilityAndWindow(ctx context.Context, facilityID int64, from, to time.Time) ([]*domain.Reservation, error)
}

// ConfigRepository интерфейс репозитория конфигурации площадок
type ConfigRepository interface {
	GetByFacilityID(ctx context.Context, facilityID int64) (*domain.EntityConfiguration, error)
}

// TenantServiceClient интерфейс клиента для TenantService
type TenantServiceClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*tenantservice.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
