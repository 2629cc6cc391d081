package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/civiltime"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func mustConverter(t *testing.T) *civiltime.Converter {
	t.Helper()
	conv, err := civiltime.NewConverter("Europe/Moscow")
	require.NoError(t, err)
	return conv
}

func mustDate(t *testing.T, conv *civiltime.Converter, s string) time.Time {
	t.Helper()
	date, err := conv.ParseDate(s)
	require.NoError(t, err)
	return date
}

func testConfig() *domain.EntityConfiguration {
	return &domain.EntityConfiguration{
		FacilityID: 1,
		BasePrice:  40,
		Courts: []domain.Court{
			{ID: 1, Name: "Корт 1", Type: "padel", IsActive: true},
			{ID: 2, Name: "Корт 2", Type: "padel", IsActive: true},
		},
		BookingRules: domain.BookingRules{DefaultDuration: 90},
		OpeningHours: []domain.OpeningHour{
			{DayOfWeek: 1, OpenTime: "07:00", CloseTime: "23:00"},
		},
		PricingRules: []domain.PricingRule{},
	}
}

func TestGenerateSlotStarts_FullDay(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16") // понедельник

	hour := &domain.OpeningHour{DayOfWeek: 1, OpenTime: "07:00", CloseTime: "23:00"}
	starts := generateSlotStarts(conv, date, hour, 90)

	// 07:00..21:30 с шагом 90 минут: последний слот 21:30-23:00 помещается целиком
	require.Len(t, starts, 10)
	assert.Equal(t, types.TimeString("07:00"), conv.TimeOfDay(starts[0]))
	assert.Equal(t, types.TimeString("08:30"), conv.TimeOfDay(starts[1]))
	assert.Equal(t, types.TimeString("21:30"), conv.TimeOfDay(starts[9]))
}

func TestGenerateSlotStarts_TrailingPartialSlotDropped(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")

	// 08:00-12:30 при шаге 120: слоты 08:00 и 10:00; 12:00-14:00 не помещается
	hour := &domain.OpeningHour{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "12:30"}
	starts := generateSlotStarts(conv, date, hour, 120)

	require.Len(t, starts, 2)
	assert.Equal(t, types.TimeString("08:00"), conv.TimeOfDay(starts[0]))
	assert.Equal(t, types.TimeString("10:00"), conv.TimeOfDay(starts[1]))
}

func TestGenerateSlotStarts_WindowShorterThanSlot(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")

	hour := &domain.OpeningHour{DayOfWeek: 1, OpenTime: "10:00", CloseTime: "11:00"}
	starts := generateSlotStarts(conv, date, hour, 90)

	assert.Empty(t, starts)
}

func TestAvailableCourts_AdjacentReservationDoesNotConflict(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")
	cfg := testConfig()

	slotStart := conv.FromCivil(date, "10:30")
	slotEnd := slotStart.Add(90 * time.Minute)

	// Бронь заканчивается ровно в момент начала слота
	reservations := []*domain.Reservation{
		{
			ID:         1,
			FacilityID: 1,
			CourtID:    1,
			StartTime:  conv.FromCivil(date, "09:00"),
			EndTime:    conv.FromCivil(date, "10:30"),
			Status:     domain.StatusConfirmed,
		},
	}

	free := availableCourts(cfg.Courts, slotStart, slotEnd, reservations)
	assert.Equal(t, []int64{1, 2}, free)
}

func TestAvailableCourts_OverlapConflicts(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")
	cfg := testConfig()

	slotStart := conv.FromCivil(date, "09:00")
	slotEnd := slotStart.Add(90 * time.Minute)

	// Частичное пересечение 10:00-10:30 занимает корт 1
	reservations := []*domain.Reservation{
		{
			ID:         1,
			FacilityID: 1,
			CourtID:    1,
			StartTime:  conv.FromCivil(date, "10:00"),
			EndTime:    conv.FromCivil(date, "11:30"),
			Status:     domain.StatusConfirmed,
		},
	}

	free := availableCourts(cfg.Courts, slotStart, slotEnd, reservations)
	assert.Equal(t, []int64{2}, free)
}

func TestAvailableCourts_CancelledReservationIgnored(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")
	cfg := testConfig()

	slotStart := conv.FromCivil(date, "09:00")
	slotEnd := slotStart.Add(90 * time.Minute)

	reservations := []*domain.Reservation{
		{
			ID:         1,
			FacilityID: 1,
			CourtID:    1,
			StartTime:  slotStart,
			EndTime:    slotEnd,
			Status:     domain.StatusCancelled,
		},
	}

	free := availableCourts(cfg.Courts, slotStart, slotEnd, reservations)
	assert.Equal(t, []int64{1, 2}, free)
}

func TestAvailableCourts_InactiveCourtExcluded(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")
	cfg := testConfig()
	cfg.Courts[1].IsActive = false

	slotStart := conv.FromCivil(date, "09:00")
	free := availableCourts(cfg.Courts, slotStart, slotStart.Add(90*time.Minute), nil)

	assert.Equal(t, []int64{1}, free)
}

func TestBuildSlots_FullyBookedSlotOmitted(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")
	cfg := testConfig()

	starts := generateSlotStarts(conv, date, &cfg.OpeningHours[0], 90)

	// Оба корта заняты в слоте 08:30-10:00
	reservations := []*domain.Reservation{
		{ID: 1, FacilityID: 1, CourtID: 1, StartTime: conv.FromCivil(date, "08:30"), EndTime: conv.FromCivil(date, "10:00"), Status: domain.StatusConfirmed},
		{ID: 2, FacilityID: 1, CourtID: 2, StartTime: conv.FromCivil(date, "08:30"), EndTime: conv.FromCivil(date, "10:00"), Status: domain.StatusConfirmed},
	}

	slots := buildSlots(conv, cfg, starts, 90, reservations)

	require.Len(t, slots, 9)
	for _, slot := range slots {
		assert.NotEqual(t, types.TimeString("08:30"), slot.Time)
	}
}

func TestBuildSlots_AggregatePriceIgnoresCourtScopedRules(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")
	cfg := testConfig()
	cfg.Courts[0].BasePrice = ptr.Ptr(55.0)
	cfg.PricingRules = []domain.PricingRule{
		// Корт-специфичное правило не влияет на агрегированную цену слота
		{Days: []int{1}, StartTime: "07:00", EndTime: "23:00", Price: 100, CourtIDs: []int64{1}},
	}

	starts := generateSlotStarts(conv, date, &cfg.OpeningHours[0], 90)
	slots := buildSlots(conv, cfg, starts, 90, nil)

	require.NotEmpty(t, slots)
	for _, slot := range slots {
		assert.Equal(t, 40.0, slot.Price)
	}
}

func TestBuildSlots_PricedPerSlotStart(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")
	cfg := testConfig()
	cfg.PricingRules = []domain.PricingRule{
		{Days: []int{1}, StartTime: "17:00", EndTime: "23:00", Price: 70},
	}

	starts := generateSlotStarts(conv, date, &cfg.OpeningHours[0], 90)
	slots := buildSlots(conv, cfg, starts, 90, nil)

	require.Len(t, slots, 10)
	for _, slot := range slots {
		if slot.Time.IsBefore("17:00") {
			assert.Equal(t, 40.0, slot.Price, "slot %s", slot.Time)
		} else {
			assert.Equal(t, 70.0, slot.Price, "slot %s", slot.Time)
		}
	}
}
