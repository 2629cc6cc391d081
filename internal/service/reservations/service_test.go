package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
	list        []*domain.Reservation
	err         error

	lastFilter domain.ReservationsFilter
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.reservation, f.err
}

func (f *fakeReservationRepo) GetByFacilityWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.list, f.err
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
	return &tenantservice.Facility{ID: 1, TenantID: 10, Name: "Padel Club", ManagerIDs: []int64{100}}
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:         7,
		FacilityID: 1,
		CourtID:    2,
		StartTime:  time.Date(2026, 3, 16, 7, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 3, 16, 8, 30, 0, 0, time.UTC),
		Status:     domain.StatusConfirmed,
	}
}

func TestGetByID_Manager(t *testing.T) {
	svc := NewService(
		&fakeReservationRepo{reservation: testReservation()},
		&fakeTenantClient{facility: testFacility()},
		nopLogger{},
	)

	resp, err := svc.GetByID(context.Background(), 7, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_NonManagerDenied(t *testing.T) {
	svc := NewService(
		&fakeReservationRepo{reservation: testReservation()},
		&fakeTenantClient{facility: testFacility()},
		nopLogger{},
	)

	_, err := svc.GetByID(context.Background(), 7, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(
		&fakeReservationRepo{err: reservationRepo.ErrReservationNotFound},
		&fakeTenantClient{facility: testFacility()},
		nopLogger{},
	)

	_, err := svc.GetByID(context.Background(), 404, 100)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByFacilityWithFilter_PassesFilterThrough(t *testing.T) {
	repo := &fakeReservationRepo{list: []*domain.Reservation{testReservation()}}
	svc := NewService(repo, &fakeTenantClient{facility: testFacility()}, nopLogger{})

	start := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetByFacilityWithFilter(context.Background(), &models.ListRequest{
		UserID:           100,
		FacilityID:       1,
		CourtID:          ptr.Ptr(int64(2)),
		StartDate:        &start,
		EndDate:          &end,
		IncludeCancelled: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)

	assert.Equal(t, int64(1), repo.lastFilter.FacilityID)
	assert.Equal(t, int64(2), *repo.lastFilter.CourtID)
	assert.True(t, repo.lastFilter.IncludeCancelled)
}

func TestGetByFacilityWithFilter_InvalidDateRange(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, &fakeTenantClient{facility: testFacility()}, nopLogger{})

	start := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetByFacilityWithFilter(context.Background(), &models.ListRequest{
		UserID:     100,
		FacilityID: 1,
		StartDate:  &start,
		EndDate:    &end,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByFacilityWithFilter_FacilityNotFound(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, &fakeTenantClient{err: tenantservice.ErrFacilityNotFound}, nopLogger{})

	_, err := svc.GetByFacilityWithFilter(context.Background(), &models.ListRequest{UserID: 100, FacilityID: 404})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}
