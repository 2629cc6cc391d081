package config

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/config/models"
	"github.com/m04kA/SMC-CourtService/pkg/civiltime"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// buildDomainConfig валидирует запрос и собирает доменную конфигурацию
// Все ошибки валидации оборачивают ErrInvalidInput
func buildDomainConfig(req *models.UpdateConfigRequest) (*domain.EntityConfiguration, error) {
	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.BasePrice < 0 {
		return nil, fmt.Errorf("%w: basePrice must be non-negative", ErrInvalidInput)
	}

	if req.Timezone != "" {
		if _, err := civiltime.NewConverter(req.Timezone); err != nil {
			return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.Timezone)
		}
	}

	if !domain.IsAllowedSlotDuration(req.BookingRules.DefaultDuration) {
		return nil, fmt.Errorf("%w: defaultDuration must be one of %v minutes",
			ErrInvalidInput, domain.AllowedSlotDurations)
	}

	if req.BookingRules.AdvanceBookingDays < domain.MinAdvanceBookingDays ||
		req.BookingRules.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return nil, fmt.Errorf("%w: advanceBookingDays must be in [%d, %d]",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if req.BookingRules.CancellationWindowHours < domain.MinCancellationWindowHours ||
		req.BookingRules.CancellationWindowHours > domain.MaxCancellationWindowHours {
		return nil, fmt.Errorf("%w: cancellationWindowHours must be in [%d, %d]",
			ErrInvalidInput, domain.MinCancellationWindowHours, domain.MaxCancellationWindowHours)
	}

	courts, courtIDs, err := buildCourts(req.Courts)
	if err != nil {
		return nil, err
	}

	hours, err := buildOpeningHours(req.OpeningHours)
	if err != nil {
		return nil, err
	}

	rules, err := buildPricingRules(req.PricingRules, courtIDs)
	if err != nil {
		return nil, err
	}

	return &domain.EntityConfiguration{
		FacilityID: req.FacilityID,
		BasePrice:  req.BasePrice,
		Timezone:   req.Timezone,
		Courts:     courts,
		BookingRules: domain.BookingRules{
			DefaultDuration:         req.BookingRules.DefaultDuration,
			AdvanceBookingDays:      req.BookingRules.AdvanceBookingDays,
			CancellationWindowHours: req.BookingRules.CancellationWindowHours,
		},
		OpeningHours: hours,
		PricingRules: rules,
	}, nil
}

func buildCourts(data []models.CourtData) ([]domain.Court, map[int64]struct{}, error) {
	courts := make([]domain.Court, 0, len(data))
	seen := make(map[int64]struct{}, len(data))

	for _, c := range data {
		if c.ID <= 0 {
			return nil, nil, fmt.Errorf("%w: court id must be positive", ErrInvalidInput)
		}
		if _, ok := seen[c.ID]; ok {
			return nil, nil, fmt.Errorf("%w: duplicate court id=%d", ErrInvalidInput, c.ID)
		}
		if c.Name == "" {
			return nil, nil, fmt.Errorf("%w: court id=%d has empty name", ErrInvalidInput, c.ID)
		}
		if c.BasePrice != nil && *c.BasePrice < 0 {
			return nil, nil, fmt.Errorf("%w: court id=%d basePrice must be non-negative", ErrInvalidInput, c.ID)
		}

		seen[c.ID] = struct{}{}
		courts = append(courts, domain.Court{
			ID:        c.ID,
			Name:      c.Name,
			Type:      c.Type,
			Surface:   c.Surface,
			IsActive:  c.IsActive,
			BasePrice: c.BasePrice,
		})
	}

	return courts, seen, nil
}

func buildOpeningHours(data []models.OpeningHourData) ([]domain.OpeningHour, error) {
	hours := make([]domain.OpeningHour, 0, len(data))
	seen := make(map[int]struct{}, len(data))

	for _, h := range data {
		if h.DayOfWeek < domain.MinDayOfWeek || h.DayOfWeek > domain.MaxDayOfWeek {
			return nil, fmt.Errorf("%w: dayOfWeek must be in [%d, %d]",
				ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
		}
		if _, ok := seen[h.DayOfWeek]; ok {
			return nil, fmt.Errorf("%w: duplicate opening hours for dayOfWeek=%d", ErrInvalidInput, h.DayOfWeek)
		}

		openTime, err := types.NewTimeStringFromString(h.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: openTime for dayOfWeek=%d: %v", ErrInvalidInput, h.DayOfWeek, err)
		}
		closeTime, err := types.NewTimeStringFromString(h.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: closeTime for dayOfWeek=%d: %v", ErrInvalidInput, h.DayOfWeek, err)
		}
		if !openTime.IsBefore(closeTime) {
			return nil, fmt.Errorf("%w: openTime must be before closeTime for dayOfWeek=%d",
				ErrInvalidInput, h.DayOfWeek)
		}

		seen[h.DayOfWeek] = struct{}{}
		hours = append(hours, domain.OpeningHour{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  openTime,
			CloseTime: closeTime,
		})
	}

	return hours, nil
}

func buildPricingRules(data []models.PricingRuleData, courtIDs map[int64]struct{}) ([]domain.PricingRule, error) {
	rules := make([]domain.PricingRule, 0, len(data))

	for i, r := range data {
		if len(r.Days) == 0 {
			return nil, fmt.Errorf("%w: pricing rule #%d has no days", ErrInvalidInput, i)
		}
		for _, d := range r.Days {
			if d < domain.MinDayOfWeek || d > domain.MaxDayOfWeek {
				return nil, fmt.Errorf("%w: pricing rule #%d has invalid day %d", ErrInvalidInput, i, d)
			}
		}
		if r.Price < 0 {
			return nil, fmt.Errorf("%w: pricing rule #%d price must be non-negative", ErrInvalidInput, i)
		}

		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: pricing rule #%d startTime: %v", ErrInvalidInput, i, err)
		}
		endTime, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: pricing rule #%d endTime: %v", ErrInvalidInput, i, err)
		}
		if !startTime.IsBefore(endTime) {
			return nil, fmt.Errorf("%w: pricing rule #%d startTime must be before endTime", ErrInvalidInput, i)
		}

		for _, id := range r.CourtIDs {
			if _, ok := courtIDs[id]; !ok {
				return nil, fmt.Errorf("%w: pricing rule #%d references unknown court id=%d",
					ErrInvalidInput, i, id)
			}
		}

		rules = append(rules, domain.PricingRule{
			Days:      r.Days,
			StartTime: startTime,
			EndTime:   endTime,
			Price:     r.Price,
			CourtIDs:  r.CourtIDs,
		})
	}

	return rules, nil
}
