package add_review

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/provider"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// stubTxManager выполняет функцию напрямую, без транзакции
type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time {
	return p.now
}

type fakeBookingRepo struct {
	booking  *domain.Booking
	reviewed []string
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *r.booking
	return &copied, nil
}

func (r *fakeBookingRepo) MarkReviewed(_ context.Context, id string) error {
	if r.booking == nil || r.booking.ID != id {
		return bookingRepo.ErrBookingNotFound
	}
	r.booking.Reviewed = true
	r.reviewed = append(r.reviewed, id)
	return nil
}

type fakeProviderRepo struct {
	provider *domain.ServiceProvider
	updated  *domain.ServiceProvider
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id string) (*domain.ServiceProvider, error) {
	if r.provider == nil || r.provider.ID != id {
		return nil, providerRepo.ErrProviderNotFound
	}
	copied := *r.provider
	return &copied, nil
}

func (r *fakeProviderRepo) Update(_ context.Context, provider *domain.ServiceProvider) error {
	copied := *provider
	r.updated = &copied
	r.provider = &copied
	return nil
}

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID:                "booking-1",
		ServiceProviderID: "provider-1",
		ClientID:          "client-1",
		ServiceDate:       1700086400,
		ServiceType:       "plumbing",
		Status:            domain.StatusCompleted,
	}
}

func newUseCase(bookings *fakeBookingRepo, providers *fakeProviderRepo) *UseCase {
	uc := NewUseCase(bookings, providers, stubTxManager{}, nopLogger{})
	uc.timeProvider = &stubTimeProvider{now: time.Unix(1700200000, 0)}
	return uc
}

func TestAddReviewExecute(t *testing.T) {
	t.Run("appends review and recomputes average", func(t *testing.T) {
		bookings := &fakeBookingRepo{booking: completedBooking()}
		providers := &fakeProviderRepo{provider: &domain.ServiceProvider{
			ID:            "provider-1",
			AverageRating: 4,
			Reviews: []domain.Review{
				{ClientID: "client-9", Rating: 4, Comment: "хорошо"},
			},
		}}
		uc := newUseCase(bookings, providers)

		resp, err := uc.Execute(context.Background(), &Request{
			BookingID: "booking-1",
			Rating:    2,
			Comment:   "долго ждал мастера",
		})
		require.NoError(t, err)

		// (4 + 2) / 2
		assert.Equal(t, int64(3), resp.AverageRating)
		require.Len(t, resp.Reviews, 2)

		added := resp.Reviews[1]
		assert.Equal(t, "client-1", added.ClientID, "автор отзыва берётся из бронирования")
		assert.Equal(t, int64(2), added.Rating)
		assert.Equal(t, int64(1700200000), added.CreatedAt)

		require.NotNil(t, providers.updated)
		assert.Equal(t, int64(3), providers.updated.AverageRating)
		assert.Equal(t, []string{"booking-1"}, bookings.reviewed)
	})

	t.Run("booking not found", func(t *testing.T) {
		uc := newUseCase(&fakeBookingRepo{}, &fakeProviderRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			BookingID: "missing",
			Rating:    5,
			Comment:   "отлично",
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("booking is not completed", func(t *testing.T) {
		booking := completedBooking()
		booking.Status = domain.StatusConfirmed
		uc := newUseCase(&fakeBookingRepo{booking: booking}, &fakeProviderRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			BookingID: "booking-1",
			Rating:    5,
			Comment:   "отлично",
		})
		assert.ErrorIs(t, err, ErrNotCompleted)
	})

	t.Run("second review for the same booking is rejected", func(t *testing.T) {
		bookings := &fakeBookingRepo{booking: completedBooking()}
		providers := &fakeProviderRepo{provider: &domain.ServiceProvider{ID: "provider-1"}}
		uc := newUseCase(bookings, providers)

		_, err := uc.Execute(context.Background(), &Request{
			BookingID: "booking-1",
			Rating:    5,
			Comment:   "отлично",
		})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), &Request{
			BookingID: "booking-1",
			Rating:    1,
			Comment:   "передумал",
		})
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
	})

	t.Run("provider of the booking no longer exists", func(t *testing.T) {
		uc := newUseCase(&fakeBookingRepo{booking: completedBooking()}, &fakeProviderRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			BookingID: "booking-1",
			Rating:    5,
			Comment:   "отлично",
		})
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			req  *Request
		}{
			{
				name: "empty booking id",
				req:  &Request{Rating: 5, Comment: "отлично"},
			},
			{
				name: "rating below range",
				req:  &Request{BookingID: "booking-1", Rating: 0, Comment: "плохо"},
			},
			{
				name: "rating above range",
				req:  &Request{BookingID: "booking-1", Rating: 6, Comment: "отлично"},
			},
			{
				name: "empty comment",
				req:  &Request{BookingID: "booking-1", Rating: 5},
			},
			{
				name: "comment too long",
				req: &Request{
					BookingID: "booking-1",
					Rating:    5,
					Comment:   strings.Repeat("a", domain.MaxCommentLength+1),
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := newUseCase(&fakeBookingRepo{booking: completedBooking()}, &fakeProviderRepo{})

				_, err := uc.Execute(context.Background(), tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
