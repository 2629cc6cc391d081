package get_price_quote

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
)

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
