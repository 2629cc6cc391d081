package get_price_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/facility"
	tenantClient "github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-CourtService/pkg/civiltime"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// UseCase use case расчета цены слота
//
// Использует тот же каскад специфичности, что и генератор слотов:
// тарифное правило → базовая цена корта → базовая цена площадки.
// В отличие от агрегированной цены в списке слотов, здесь можно указать
// конкретный корт и получить его фактическую цену
type UseCase struct {
	configRepo   ConfigRepository
	tenantClient TenantServiceClient
	converter    *civiltime.Converter
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo ConfigRepository,
	tenantClient TenantServiceClient,
	converter *civiltime.Converter,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:   configRepo,
		tenantClient: tenantClient,
		converter:    converter,
		logger:       logger,
	}
}

// Execute выполняет use case расчета цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPriceQuote: facility=%d, date=%s, time=%s, court=%v",
		req.FacilityID, req.Date, req.Time, req.CourtID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetPriceQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки в каталоге тенантов
	if _, err := uc.tenantClient.GetFacility(ctx, req.FacilityID); err != nil {
		if errors.Is(err, tenantClient.ErrFacilityNotFound) {
			uc.logger.Warn("GetPriceQuote: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetPriceQuote: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Получаем конфигурацию площадки (дефолтная, если не настроена)
	cfg, err := uc.configRepo.GetByFacilityID(ctx, req.FacilityID)
	if err != nil {
		if !errors.Is(err, facilityRepo.ErrConfigNotFound) {
			uc.logger.Error("GetPriceQuote: failed to get config: %v", err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultEntityConfig(req.FacilityID)
		uc.logger.Info("GetPriceQuote: using default config for facility=%d", req.FacilityID)
	}

	conv := uc.converter
	if cfg.Timezone != "" {
		if conv, err = civiltime.NewConverter(cfg.Timezone); err != nil {
			uc.logger.Error("GetPriceQuote: invalid facility timezone %q: %v", cfg.Timezone, err)
			return nil, fmt.Errorf("%w: invalid facility timezone: %v", ErrInternal, err)
		}
	}

	// 4. Преобразуем дату и настенное время в абсолютный момент
	date, err := conv.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetPriceQuote: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	timeOfDay, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		uc.logger.Warn("GetPriceQuote: invalid time %q: %v", req.Time, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	at := conv.FromCivil(date, timeOfDay)

	// 5. Если указан корт - проверяем его наличие и берем его базовую цену
	var courtBasePrice *float64
	if req.CourtID != nil {
		court := cfg.CourtByID(*req.CourtID)
		if court == nil {
			uc.logger.Warn("GetPriceQuote: court id=%d not found in facility=%d", *req.CourtID, req.FacilityID)
			return nil, ErrCourtNotFound
		}
		courtBasePrice = court.BasePrice
	}

	// 6. Разрешаем цену каскадом специфичности
	price := domain.ResolvePrice(cfg, conv, at, req.CourtID, courtBasePrice)

	uc.logger.Info("GetPriceQuote: facility=%d, date=%s, time=%s, court=%v -> price=%.2f",
		req.FacilityID, req.Date, req.Time, req.CourtID, price)

	return &Response{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Time:       timeOfDay.String(),
		CourtID:    req.CourtID,
		Price:      price,
	}, nil
}
