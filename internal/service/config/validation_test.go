package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/service/config/models"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func validRequest() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:     100,
		FacilityID: 1,
		BasePrice:  40,
		Courts: []models.CourtData{
			{ID: 1, Name: "Корт 1", Type: "padel", IsActive: true},
			{ID: 2, Name: "Корт 2", Type: "padel", IsActive: true, BasePrice: ptr.Ptr(55.0)},
		},
		BookingRules: models.BookingRulesData{
			DefaultDuration:         90,
			AdvanceBookingDays:      30,
			CancellationWindowHours: 24,
		},
		OpeningHours: []models.OpeningHourData{
			{DayOfWeek: 1, OpenTime: "07:00", CloseTime: "23:00"},
			{DayOfWeek: 2, OpenTime: "07:00:00", CloseTime: "23:00:00"},
		},
		PricingRules: []models.PricingRuleData{
			{Days: []int{1, 2}, StartTime: "17:00", EndTime: "23:00", Price: 70},
			{Days: []int{1}, StartTime: "08:00", EndTime: "12:00", Price: 90, CourtIDs: []int64{1}},
		},
	}
}

func TestBuildDomainConfig_Valid(t *testing.T) {
	cfg, err := buildDomainConfig(validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), cfg.FacilityID)
	assert.Equal(t, 40.0, cfg.BasePrice)
	require.Len(t, cfg.Courts, 2)
	require.Len(t, cfg.OpeningHours, 2)
	require.Len(t, cfg.PricingRules, 2)

	// Секунды из "07:00:00" отброшены
	assert.Equal(t, types.TimeString("07:00"), cfg.OpeningHours[1].OpenTime)

	// Порядок правил сохранен: он задает приоритет
	assert.Equal(t, 70.0, cfg.PricingRules[0].Price)
	assert.Equal(t, 90.0, cfg.PricingRules[1].Price)
}

func TestBuildDomainConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.UpdateConfigRequest)
	}{
		{"negative base price", func(r *models.UpdateConfigRequest) { r.BasePrice = -1 }},
		{"unknown timezone", func(r *models.UpdateConfigRequest) { r.Timezone = "Mars/Olympus_Mons" }},
		{"disallowed duration", func(r *models.UpdateConfigRequest) { r.BookingRules.DefaultDuration = 60 }},
		{"duplicate court id", func(r *models.UpdateConfigRequest) { r.Courts[1].ID = 1 }},
		{"court without name", func(r *models.UpdateConfigRequest) { r.Courts[0].Name = "" }},
		{"negative court price", func(r *models.UpdateConfigRequest) { r.Courts[1].BasePrice = ptr.Ptr(-5.0) }},
		{"day of week out of range", func(r *models.UpdateConfigRequest) { r.OpeningHours[0].DayOfWeek = 7 }},
		{"duplicate opening day", func(r *models.UpdateConfigRequest) { r.OpeningHours[1].DayOfWeek = 1 }},
		{"open after close", func(r *models.UpdateConfigRequest) { r.OpeningHours[0].OpenTime = "23:30" }},
		{"open equals close", func(r *models.UpdateConfigRequest) {
			r.OpeningHours[0].OpenTime = "10:00"
			r.OpeningHours[0].CloseTime = "10:00"
		}},
		{"malformed open time", func(r *models.UpdateConfigRequest) { r.OpeningHours[0].OpenTime = "25:00" }},
		{"rule without days", func(r *models.UpdateConfigRequest) { r.PricingRules[0].Days = nil }},
		{"rule with invalid day", func(r *models.UpdateConfigRequest) { r.PricingRules[0].Days = []int{8} }},
		{"rule with negative price", func(r *models.UpdateConfigRequest) { r.PricingRules[0].Price = -10 }},
		{"rule start after end", func(r *models.UpdateConfigRequest) {
			r.PricingRules[0].StartTime = "23:00"
			r.PricingRules[0].EndTime = "17:00"
		}},
		{"rule references unknown court", func(r *models.UpdateConfigRequest) {
			r.PricingRules[1].CourtIDs = []int64{99}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := buildDomainConfig(req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBuildDomainConfig_TimezoneOverride(t *testing.T) {
	req := validRequest()
	req.Timezone = "Asia/Yekaterinburg"

	cfg, err := buildDomainConfig(req)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Yekaterinburg", cfg.Timezone)
}
