package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) ListByProviderID(_ context.Context, providerID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.ServiceProviderID != providerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeBookingRepo) ListByClientID(_ context.Context, clientID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	booking, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

func (r *fakeBookingRepo) UpdateServiceDate(_ context.Context, id string, serviceDate int64) error {
	booking, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.ServiceDate = serviceDate
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*domain.ServiceProvider
}

func newFakeProviderRepo(providers ...*domain.ServiceProvider) *fakeProviderRepo {
	repo := &fakeProviderRepo{providers: make(map[string]*domain.ServiceProvider)}
	for _, p := range providers {
		repo.providers[p.ID] = p
	}
	return repo
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id string) (*domain.ServiceProvider, error) {
	provider, ok := r.providers[id]
	if !ok {
		return nil, providerRepo.ErrProviderNotFound
	}
	copied := *provider
	return &copied, nil
}

func newService(bookings *fakeBookingRepo, providers *fakeProviderRepo) *Service {
	return NewService(bookings, providers, nopLogger{})
}

func pendingBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:                id,
		ServiceProviderID: "provider-1",
		ClientID:          "client-1",
		ServiceDate:       1700000000,
		ServiceType:       "plumbing",
		Status:            domain.StatusPending,
	}
}

func TestServiceGetByID(t *testing.T) {
	svc := newService(newFakeBookingRepo(pendingBooking("booking-1")), newFakeProviderRepo())

	resp, err := svc.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestServiceConfirm(t *testing.T) {
	t.Run("pending booking is confirmed", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking("booking-1"))
		svc := newService(repo, newFakeProviderRepo())

		resp, err := svc.Confirm(context.Background(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Equal(t, domain.StatusConfirmed, repo.bookings["booking-1"].Status)
	})

	t.Run("canceled booking cannot be confirmed", func(t *testing.T) {
		booking := pendingBooking("booking-1")
		booking.Status = domain.StatusCanceled
		svc := newService(newFakeBookingRepo(booking), newFakeProviderRepo())

		_, err := svc.Confirm(context.Background(), "booking-1")
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("confirming twice fails", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking("booking-1"))
		svc := newService(repo, newFakeProviderRepo())

		_, err := svc.Confirm(context.Background(), "booking-1")
		require.NoError(t, err)

		_, err = svc.Confirm(context.Background(), "booking-1")
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := newService(newFakeBookingRepo(), newFakeProviderRepo())

		_, err := svc.Confirm(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestServiceCancel(t *testing.T) {
	t.Run("pending booking is canceled", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking("booking-1"))
		svc := newService(repo, newFakeProviderRepo())

		resp, err := svc.Cancel(context.Background(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCanceled), resp.Status)
	})

	t.Run("confirmed booking is canceled", func(t *testing.T) {
		booking := pendingBooking("booking-1")
		booking.Status = domain.StatusConfirmed
		svc := newService(newFakeBookingRepo(booking), newFakeProviderRepo())

		resp, err := svc.Cancel(context.Background(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCanceled), resp.Status)
	})

	t.Run("completed booking cannot be canceled", func(t *testing.T) {
		booking := pendingBooking("booking-1")
		booking.Status = domain.StatusCompleted
		svc := newService(newFakeBookingRepo(booking), newFakeProviderRepo())

		_, err := svc.Cancel(context.Background(), "booking-1")
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("canceling twice fails", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking("booking-1"))
		svc := newService(repo, newFakeProviderRepo())

		_, err := svc.Cancel(context.Background(), "booking-1")
		require.NoError(t, err)

		_, err = svc.Cancel(context.Background(), "booking-1")
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestServiceComplete(t *testing.T) {
	t.Run("confirmed booking is completed", func(t *testing.T) {
		booking := pendingBooking("booking-1")
		booking.Status = domain.StatusConfirmed
		repo := newFakeBookingRepo(booking)
		svc := newService(repo, newFakeProviderRepo())

		resp, err := svc.Complete(context.Background(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	})

	t.Run("pending booking cannot be completed", func(t *testing.T) {
		svc := newService(newFakeBookingRepo(pendingBooking("booking-1")), newFakeProviderRepo())

		_, err := svc.Complete(context.Background(), "booking-1")
		assert.ErrorIs(t, err, ErrNotConfirmed)
	})
}

func TestServiceReschedule(t *testing.T) {
	provider := &domain.ServiceProvider{
		ID:           "provider-1",
		Availability: []int64{1700000000, 1700086400},
	}

	t.Run("pending booking moves to an available date", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking("booking-1"))
		svc := newService(repo, newFakeProviderRepo(provider))

		resp, err := svc.Reschedule(context.Background(), "booking-1",
			&models.RescheduleBookingRequest{NewDate: 1700086400})
		require.NoError(t, err)
		assert.Equal(t, int64(1700086400), resp.ServiceDate)
		assert.Equal(t, int64(1700086400), repo.bookings["booking-1"].ServiceDate)
	})

	t.Run("date outside availability is rejected", func(t *testing.T) {
		svc := newService(newFakeBookingRepo(pendingBooking("booking-1")), newFakeProviderRepo(provider))

		_, err := svc.Reschedule(context.Background(), "booking-1",
			&models.RescheduleBookingRequest{NewDate: 1800000000})
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("confirmed booking cannot be rescheduled", func(t *testing.T) {
		booking := pendingBooking("booking-1")
		booking.Status = domain.StatusConfirmed
		svc := newService(newFakeBookingRepo(booking), newFakeProviderRepo(provider))

		_, err := svc.Reschedule(context.Background(), "booking-1",
			&models.RescheduleBookingRequest{NewDate: 1700086400})
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("non-positive date is rejected before repository access", func(t *testing.T) {
		svc := newService(newFakeBookingRepo(), newFakeProviderRepo())

		_, err := svc.Reschedule(context.Background(), "booking-1",
			&models.RescheduleBookingRequest{NewDate: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("provider of the booking no longer exists", func(t *testing.T) {
		svc := newService(newFakeBookingRepo(pendingBooking("booking-1")), newFakeProviderRepo())

		_, err := svc.Reschedule(context.Background(), "booking-1",
			&models.RescheduleBookingRequest{NewDate: 1700086400})
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})
}

func TestServiceGetProviderHistory(t *testing.T) {
	first := pendingBooking("booking-1")
	second := pendingBooking("booking-2")
	second.Status = domain.StatusCompleted
	other := pendingBooking("booking-3")
	other.ServiceProviderID = "provider-2"

	repo := newFakeBookingRepo(first, second, other)
	svc := newService(repo, newFakeProviderRepo())

	t.Run("returns provider bookings", func(t *testing.T) {
		resp, err := svc.GetProviderHistory(context.Background(), &models.GetHistoryRequest{ID: "provider-1"})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("status filter narrows the result", func(t *testing.T) {
		resp, err := svc.GetProviderHistory(context.Background(), &models.GetHistoryRequest{
			ID:     "provider-1",
			Status: ptr.Ptr(string(domain.StatusCompleted)),
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "booking-2", resp.Bookings[0].ID)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		_, err := svc.GetProviderHistory(context.Background(), &models.GetHistoryRequest{
			ID:     "provider-1",
			Status: ptr.Ptr("unknown"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty history is treated as not found", func(t *testing.T) {
		_, err := svc.GetProviderHistory(context.Background(), &models.GetHistoryRequest{ID: "provider-99"})
		assert.ErrorIs(t, err, ErrNoBookingsFound)
	})
}

func TestServiceGetClientHistory(t *testing.T) {
	first := pendingBooking("booking-1")
	other := pendingBooking("booking-2")
	other.ClientID = "client-2"

	svc := newService(newFakeBookingRepo(first, other), newFakeProviderRepo())

	t.Run("returns client bookings", func(t *testing.T) {
		resp, err := svc.GetClientHistory(context.Background(), &models.GetHistoryRequest{ID: "client-1"})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "booking-1", resp.Bookings[0].ID)
	})

	t.Run("empty history is treated as not found", func(t *testing.T) {
		_, err := svc.GetClientHistory(context.Background(), &models.GetHistoryRequest{ID: "client-99"})
		assert.ErrorIs(t, err, ErrNoBookingsFound)
	})
}
