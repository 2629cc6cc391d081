package tenantservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetFacility_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/facilities/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42,"tenant_id":10,"name":"Padel Club","city":"Москва","status":"active","manager_ids":[100,101]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	facility, err := client.GetFacility(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), facility.ID)
	assert.True(t, facility.IsActive())
	assert.True(t, facility.HasManager(100))
	assert.False(t, facility.HasManager(999))
}

func TestGetFacility_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	_, err := client.GetFacility(context.Background(), 404)
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestGetFacility_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	_, err := client.GetFacility(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetFacility_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	_, err := client.GetFacility(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
