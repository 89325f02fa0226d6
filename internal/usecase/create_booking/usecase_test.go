package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	clientRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/client"
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

type fakeBookingRepo struct {
	created *domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	copied := *booking
	copied.CreatedAt = time.Unix(1700000000, 0)
	r.created = &copied
	return &copied, nil
}

type fakeProviderRepo struct {
	provider *domain.ServiceProvider
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id string) (*domain.ServiceProvider, error) {
	if r.provider == nil || r.provider.ID != id {
		return nil, providerRepo.ErrProviderNotFound
	}
	return r.provider, nil
}

type fakeClientRepo struct {
	client *domain.Client
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	if r.client == nil || r.client.ID != id {
		return nil, clientRepo.ErrClientNotFound
	}
	return r.client, nil
}

func validRequest() *Request {
	return &Request{
		ServiceProviderID: "provider-1",
		ClientID:          "client-1",
		ServiceDate:       1700086400,
		ServiceType:       "plumbing",
	}
}

func newUseCase(bookings *fakeBookingRepo, providers *fakeProviderRepo, clients *fakeClientRepo) *UseCase {
	return NewUseCase(bookings, providers, clients, stubTxManager{}, nopLogger{})
}

func TestCreateBookingExecute(t *testing.T) {
	provider := &domain.ServiceProvider{
		ID:           "provider-1",
		Availability: []int64{1700000000, 1700086400},
	}
	client := &domain.Client{ID: "client-1"}

	t.Run("creates pending booking", func(t *testing.T) {
		bookings := &fakeBookingRepo{}
		uc := newUseCase(bookings, &fakeProviderRepo{provider: provider}, &fakeClientRepo{client: client})

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "provider-1", resp.ServiceProviderID)
		assert.Equal(t, "client-1", resp.ClientID)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
		assert.False(t, resp.Reviewed)

		require.NotNil(t, bookings.created)
		assert.Equal(t, domain.StatusPending, bookings.created.Status)
	})

	t.Run("provider not found", func(t *testing.T) {
		uc := newUseCase(&fakeBookingRepo{}, &fakeProviderRepo{}, &fakeClientRepo{client: client})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("client not found", func(t *testing.T) {
		uc := newUseCase(&fakeBookingRepo{}, &fakeProviderRepo{provider: provider}, &fakeClientRepo{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("date outside provider availability", func(t *testing.T) {
		uc := newUseCase(&fakeBookingRepo{}, &fakeProviderRepo{provider: provider}, &fakeClientRepo{client: client})

		req := validRequest()
		req.ServiceDate = 1800000000

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(req *Request)
		}{
			{
				name:   "empty provider id",
				mutate: func(req *Request) { req.ServiceProviderID = "" },
			},
			{
				name:   "empty client id",
				mutate: func(req *Request) { req.ClientID = "" },
			},
			{
				name:   "non-positive service date",
				mutate: func(req *Request) { req.ServiceDate = 0 },
			},
			{
				name:   "empty service type",
				mutate: func(req *Request) { req.ServiceType = "" },
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := newUseCase(&fakeBookingRepo{}, &fakeProviderRepo{provider: provider}, &fakeClientRepo{client: client})

				req := validRequest()
				tt.mutate(req)

				_, err := uc.Execute(context.Background(), req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
