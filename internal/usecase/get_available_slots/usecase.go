package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/facility"
	tenantClient "github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-CourtService/pkg/civiltime"
)

// UseCase use case получения доступных слотов площадки на один гражданский день
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	tenantClient    TenantServiceClient
	converter       *civiltime.Converter
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// converter задает гражданскую таймзону сервиса; площадка может переопределить
// её своей таймзоной в конфигурации
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	tenantClient TenantServiceClient,
	converter *civiltime.Converter,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		tenantClient:    tenantClient,
		converter:       converter,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Отсутствие конфигурации, закрытый день и полностью занятые слоты - не ошибки:
// во всех этих случаях возвращается валидный ответ с пустым списком слотов.
// Единственная "громкая" ошибка входных данных - непарсящаяся дата
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: facility=%d, date=%s", req.FacilityID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки в каталоге тенантов
	if _, err := uc.tenantClient.GetFacility(ctx, req.FacilityID); err != nil {
		if errors.Is(err, tenantClient.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Получаем конфигурацию площадки
	// Ненастроенная площадка приравнивается к закрытой: дефолтная конфигурация
	// не содержит часов работы, поэтому даст пустой список слотов
	cfg, err := uc.configRepo.GetByFacilityID(ctx, req.FacilityID)
	if err != nil {
		if !errors.Is(err, facilityRepo.ErrConfigNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultEntityConfig(req.FacilityID)
		uc.logger.Info("GetAvailableSlots: using default config for facility=%d", req.FacilityID)
	}

	// 4. Определяем конвертер гражданского времени площадки
	conv, err := uc.facilityConverter(cfg)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid facility timezone %q: %v", cfg.Timezone, err)
		return nil, fmt.Errorf("%w: invalid facility timezone: %v", ErrInternal, err)
	}

	// 5. Парсим дату как гражданский день площадки
	date, err := conv.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	response := &Response{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Timezone:   conv.Location().String(),
		Slots:      []Slot{},
	}

	// 6. Ищем часы работы на гражданский день недели
	// Нет записи = площадка в этот день закрыта, возвращаем пустой список
	openingHour := cfg.OpeningHourFor(conv.Weekday(date))
	if openingHour == nil {
		uc.logger.Info("GetAvailableSlots: facility=%d is closed on %s", req.FacilityID, req.Date)
		return response, nil
	}

	// 7. Генерируем моменты начала слотов
	slotStarts := generateSlotStarts(conv, date, openingHour, cfg.BookingRules.DefaultDuration)
	if len(slotStarts) == 0 {
		return response, nil
	}

	// 8. Получаем активные брони за гражданские сутки
	dayStart, dayEnd := conv.DayBounds(date)
	reservations, err := uc.reservationRepo.GetActiveByFacilityAndWindow(ctx, req.FacilityID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 9. Собираем слоты: свободные корты и агрегированная цена на каждый слот
	response.Slots = buildSlots(conv, cfg, slotStarts, cfg.BookingRules.DefaultDuration, reservations)

	uc.logger.Info("GetAvailableSlots: generated %d slots for facility=%d, date=%s",
		len(response.Slots), req.FacilityID, req.Date)

	return response, nil
}

// facilityConverter возвращает конвертер таймзоны площадки
// Если площадка не задает собственную таймзону, используется таймзона сервиса
func (uc *UseCase) facilityConverter(cfg *domain.EntityConfiguration) (*civiltime.Converter, error) {
	if cfg.Timezone == "" {
		return uc.converter, nil
	}
	return civiltime.NewConverter(cfg.Timezone)
}
