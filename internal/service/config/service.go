package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/facility"
	tenantClient "github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-CourtService/internal/service/config/models"
)

// Service сервис для работы с конфигурацией площадок
type Service struct {
	configRepo   ConfigRepository
	tenantClient TenantServiceClient
	txManager    TxManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	tenantClient TenantServiceClient,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		configRepo:   configRepo,
		tenantClient: tenantClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает конфигурацию площадки
// Публичный метод - доступен всем
// Для ненастроенной площадки возвращает дефолтную конфигурацию (IsDefault=true)
func (s *Service) Get(ctx context.Context, facilityID int64) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for facility=%d", facilityID)

	// Проверяем существование площадки в каталоге тенантов
	if _, err := s.tenantClient.GetFacility(ctx, facilityID); err != nil {
		if errors.Is(err, tenantClient.ErrFacilityNotFound) {
			s.logger.Warn("Get: facility id=%d not found", facilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Get: failed to get facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	cfg, err := s.configRepo.GetByFacilityID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrConfigNotFound) {
			s.logger.Info("Get: facility=%d has no config, returning defaults", facilityID)
			return models.FromDomainConfig(domain.DefaultEntityConfig(facilityID), true), nil
		}
		s.logger.Error("Get: repository error for facility=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched config for facility=%d", facilityID)
	return models.FromDomainConfig(cfg, false), nil
}

// Update полностью заменяет конфигурацию площадки
// Доступно только менеджерам площадки
// Замена выполняется атомарно в serializable-транзакции: конфигурация
// затрагивает несколько таблиц, и генератор слотов не должен видеть её частично
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for facility=%d by user=%d", req.FacilityID, req.UserID)

	// 1. Валидируем запрос и собираем доменную конфигурацию
	cfg, err := buildDomainConfig(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for facility=%d: %v", req.FacilityID, err)
		return nil, err
	}

	// 2. Получаем площадку для проверки прав доступа
	facility, err := s.tenantClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, tenantClient.ErrFacilityNotFound) {
			s.logger.Warn("Update: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа (только менеджер площадки)
	if !facility.HasManager(req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of facility=%d", req.UserID, req.FacilityID)
		return nil, ErrAccessDenied
	}

	// 4. Атомарно заменяем конфигурацию
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.configRepo.Replace(ctx, cfg)
	})
	if err != nil {
		s.logger.Error("Update: failed to replace config for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated config for facility=%d", req.FacilityID)
	return models.FromDomainConfig(cfg, false), nil
}
