package get_price_quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-CourtService/pkg/civiltime"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

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

func testConfig() *domain.EntityConfiguration {
	return &domain.EntityConfiguration{
		FacilityID: 1,
		BasePrice:  40,
		Courts: []domain.Court{
			{ID: 1, Name: "Корт 1", Type: "padel", IsActive: true},
			{ID: 2, Name: "Корт 2", Type: "padel", IsActive: true, BasePrice: ptr.Ptr(55.0)},
		},
		BookingRules: domain.BookingRules{DefaultDuration: 90},
		PricingRules: []domain.PricingRule{
			// Понедельник, вечерний тариф
			{Days: []int{1}, StartTime: "17:00", EndTime: "23:00", Price: 70},
			// Корт 1 по понедельникам утром дороже
			{Days: []int{1}, StartTime: "08:00", EndTime: "12:00", Price: 90, CourtIDs: []int64{1}},
		},
	}
}

func newTestUseCase(t *testing.T, configRepo ConfigRepository, tenant TenantServiceClient) *UseCase {
	t.Helper()
	conv, err := civiltime.NewConverter("Europe/Moscow")
	require.NoError(t, err)
	return NewUseCase(configRepo, tenant, conv, nopLogger{})
}

func testFacility() *tenantservice.Facility {
	return &tenantservice.Facility{ID: 1, TenantID: 10, Name: "Padel Club", Status: "active"}
}

func TestExecute_AggregatePriceWithoutCourt(t *testing.T) {
	uc := newTestUseCase(t, &fakeConfigRepo{cfg: testConfig()}, &fakeTenantClient{facility: testFacility()})

	// Без корта корт-специфичное правило не совпадает: базовая цена площадки
	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "2026-03-16", Time: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, 40.0, resp.Price)
	assert.Nil(t, resp.CourtID)
}

func TestExecute_CourtScopedRule(t *testing.T) {
	uc := newTestUseCase(t, &fakeConfigRepo{cfg: testConfig()}, &fakeTenantClient{facility: testFacility()})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1, Date: "2026-03-16", Time: "10:00", CourtID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)
	assert.Equal(t, 90.0, resp.Price)
}

func TestExecute_CourtBasePriceFallback(t *testing.T) {
	uc := newTestUseCase(t, &fakeConfigRepo{cfg: testConfig()}, &fakeTenantClient{facility: testFacility()})

	// Корт 2 утром не попадает ни в одно правило: его базовая цена
	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1, Date: "2026-03-16", Time: "10:00", CourtID: ptr.Ptr(int64(2)),
	})
	require.NoError(t, err)
	assert.Equal(t, 55.0, resp.Price)
}

func TestExecute_EveningRuleAppliesToAllCourts(t *testing.T) {
	uc := newTestUseCase(t, &fakeConfigRepo{cfg: testConfig()}, &fakeTenantClient{facility: testFacility()})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1, Date: "2026-03-16", Time: "18:30", CourtID: ptr.Ptr(int64(2)),
	})
	require.NoError(t, err)
	assert.Equal(t, 70.0, resp.Price)
}

func TestExecute_UnknownCourt(t *testing.T) {
	uc := newTestUseCase(t, &fakeConfigRepo{cfg: testConfig()}, &fakeTenantClient{facility: testFacility()})

	_, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1, Date: "2026-03-16", Time: "10:00", CourtID: ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_SecondsInTimeAccepted(t *testing.T) {
	uc := newTestUseCase(t, &fakeConfigRepo{cfg: testConfig()}, &fakeTenantClient{facility: testFacility()})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "2026-03-16", Time: "18:30:00"})
	require.NoError(t, err)
	assert.Equal(t, "18:30", resp.Time)
	assert.Equal(t, 70.0, resp.Price)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(t, &fakeConfigRepo{cfg: testConfig()}, &fakeTenantClient{facility: testFacility()})

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "не дата", Time: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "2026-03-16", Time: "25:00"})
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = uc.Execute(context.Background(), &Request{FacilityID: 0, Date: "2026-03-16", Time: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DefaultConfigForUnconfiguredFacility(t *testing.T) {
	uc := newTestUseCase(t, &fakeConfigRepo{err: facilityRepo.ErrConfigNotFound}, &fakeTenantClient{facility: testFacility()})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: "2026-03-16", Time: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBasePrice, resp.Price)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := newTestUseCase(t, &fakeConfigRepo{cfg: testConfig()}, &fakeTenantClient{err: tenantservice.ErrFacilityNotFound})

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 404, Date: "2026-03-16", Time: "10:00"})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}
