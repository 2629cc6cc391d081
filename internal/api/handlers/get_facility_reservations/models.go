package get_facility_reservations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	facilityID int64,
	userID int64,
	courtIDStr string,
	startDateStr string,
	endDateStr string,
	includeCancelledStr string,
) (*models.ListRequest, error) {
	req := &models.ListRequest{
		UserID:           userID,
		FacilityID:       facilityID,
		IncludeCancelled: false, // По умолчанию только активные
	}

	// Парсим courtId если указан
	if courtIDStr != "" {
		courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CourtID = &courtID
	}

	// Парсим startDate если указана
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	// Парсим endDate если указана (граница не включается)
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		endDate = endDate.AddDate(0, 0, 1)
		req.EndDate = &endDate
	}

	// Парсим includeCancelled если указан
	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
