package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetActiveByFacilityAndWindow(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeConfigRepo struct {
	cfg *domain.EntityConfiguration
	err error
}

func (f *fakeConfigRepo) GetByFacilityID(_ context.Context, _ int64) (*domain.EntityConfiguration, error) {
	return f.cfg, f.err
}

type fakeTenantClient struct {
	facility *tenantservice.Facility
	err      error
}

func (f *fakeTenantClient) GetFacility(_ context.Context, _ int64) (*tenantservice.Facility, error) {
	return f.facility, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testFacility() *tenantservice.Facility {
	return &tenantservice.Facility{
		ID:         1,
		TenantID:   10,
		Name:       "Padel Club",
		Status:     "active",
		ManagerIDs: []int64{100},
	}
}

func newTestUseCase(t *testing.T, configRepo ConfigRepository, reservationRepo ReservationRepository, tenant TenantServiceClient) *UseCase {
	t.Helper()
	return NewUseCase(reservationRepo, configRepo, tenant, mustConverter(t), nopLogger{})
}

func TestExecute_ReturnsSlotsForOpenDay(t *testing.T) {
	uc := newTestUseCase(t,
		&fakeConfigRepo{cfg: testConfig()},
		&fakeReservationRepo{},
		&fakeTenantClient{facility: testFacility()},
	)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "2026-03-16"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.FacilityID)
	assert.Equal(t, "2026-03-16", resp.Date)
	assert.Equal(t, "Europe/Moscow", resp.Timezone)
	require.Len(t, resp.Slots, 10)
	assert.Equal(t, types.TimeString("07:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("21:30"), resp.Slots[9].Time)
	assert.Equal(t, []int64{1, 2}, resp.Slots[0].AvailableCourts)
}

func TestExecute_ClosedDayReturnsEmptyList(t *testing.T) {
	uc := newTestUseCase(t,
		&fakeConfigRepo{cfg: testConfig()},
		&fakeReservationRepo{},
		&fakeTenantClient{facility: testFacility()},
	)

	// 2026-03-15 воскресенье, часов работы нет
	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "2026-03-15"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_UnconfiguredFacilityReturnsEmptyList(t *testing.T) {
	// Нет конфигурации - дефолтная, без часов работы: пустой список, не ошибка
	uc := newTestUseCase(t,
		&fakeConfigRepo{err: facilityRepo.ErrConfigNotFound},
		&fakeReservationRepo{},
		&fakeTenantClient{facility: testFacility()},
	)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "2026-03-16"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := newTestUseCase(t,
		&fakeConfigRepo{cfg: testConfig()},
		&fakeReservationRepo{},
		&fakeTenantClient{facility: testFacility()},
	)

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "16-03-2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{FacilityID: 1, Date: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := newTestUseCase(t,
		&fakeConfigRepo{cfg: testConfig()},
		&fakeReservationRepo{},
		&fakeTenantClient{err: tenantservice.ErrFacilityNotFound},
	)

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 404, Date: "2026-03-16"})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_FacilityTimezoneOverride(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Asia/Yekaterinburg"

	uc := newTestUseCase(t,
		&fakeConfigRepo{cfg: cfg},
		&fakeReservationRepo{},
		&fakeTenantClient{facility: testFacility()},
	)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "2026-03-16"})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Yekaterinburg", resp.Timezone)
	require.NotEmpty(t, resp.Slots)
	// Настенное время слотов не зависит от смещения таймзоны
	assert.Equal(t, types.TimeString("07:00"), resp.Slots[0].Time)
}

func TestExecute_ReservationRemovesCourtFromSlot(t *testing.T) {
	conv := mustConverter(t)
	date := mustDate(t, conv, "2026-03-16")

	uc := newTestUseCase(t,
		&fakeConfigRepo{cfg: testConfig()},
		&fakeReservationRepo{reservations: []*domain.Reservation{
			{
				ID:         1,
				FacilityID: 1,
				CourtID:    1,
				StartTime:  conv.FromCivil(date, "07:00"),
				EndTime:    conv.FromCivil(date, "08:30"),
				Status:     domain.StatusConfirmed,
			},
		}},
		&fakeTenantClient{facility: testFacility()},
	)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "2026-03-16"})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 10)

	assert.Equal(t, []int64{2}, resp.Slots[0].AvailableCourts)
	// Бронь 07:00-08:30 граничит со слотом 08:30 и не занимает его
	assert.Equal(t, []int64{1, 2}, resp.Slots[1].AvailableCourts)
}
