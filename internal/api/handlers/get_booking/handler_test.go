package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubBookingService struct {
	booking *models.BookingResponse
	err     error
}

func (s *stubBookingService) GetByID(_ context.Context, _ string) (*models.BookingResponse, error) {
	return s.booking, s.err
}

func newRouter(svc *stubBookingService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandleGetBooking(t *testing.T) {
	t.Run("returns booking", func(t *testing.T) {
		svc := &stubBookingService{booking: &models.BookingResponse{
			ID:     "booking-1",
			Status: "pending",
		}}
		router := newRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/booking-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body models.BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "booking-1", body.ID)
		assert.Equal(t, "pending", body.Status)
	})

	t.Run("unknown booking returns 404", func(t *testing.T) {
		router := newRouter(&stubBookingService{err: bookings.ErrBookingNotFound})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		router := newRouter(&stubBookingService{err: bookings.ErrInternal})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/booking-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
