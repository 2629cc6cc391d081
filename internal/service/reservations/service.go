package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	tenantClient "github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

// Service сервис для чтения броней
// Создание и отмена броней принадлежат сервису бронирования; здесь только чтение
type Service struct {
	reservationRepo ReservationRepository
	tenantClient    TenantServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	tenantClient TenantServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tenantClient:    tenantClient,
		logger:          logger,
	}
}

// GetByID возвращает бронь по ID
// Доступно только менеджерам площадки, которой принадлежит бронь
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d by user=%d", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, res.FacilityID, userID); err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(res), nil
}

// GetByFacilityWithFilter возвращает список броней площадки по фильтру
// Доступно только менеджерам площадки
func (s *Service) GetByFacilityWithFilter(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	s.logger.Info("GetByFacilityWithFilter: facility=%d, user=%d", req.FacilityID, req.UserID)

	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	if err := s.checkManagerAccess(ctx, req.FacilityID, req.UserID); err != nil {
		return nil, err
	}

	list, err := s.reservationRepo.GetByFacilityWithFilter(ctx, domain.ReservationsFilter{
		FacilityID:       req.FacilityID,
		CourtID:          req.CourtID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("GetByFacilityWithFilter: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByFacilityWithFilter: fetched %d reservations for facility=%d", len(list), req.FacilityID)
	return models.FromDomainReservationList(req.FacilityID, list), nil
}

// checkManagerAccess проверяет, что пользователь является менеджером площадки
func (s *Service) checkManagerAccess(ctx context.Context, facilityID, userID int64) error {
	facility, err := s.tenantClient.GetFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, tenantClient.ErrFacilityNotFound) {
			s.logger.Warn("checkManagerAccess: facility id=%d not found", facilityID)
			return ErrFacilityNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get facility id=%d: %v", facilityID, err)
		return fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if !facility.HasManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of facility=%d", userID, facilityID)
		return ErrAccessDenied
	}

	return nil
}
