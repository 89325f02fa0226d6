package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubIDGen struct {
	id string
}

func (g *stubIDGen) NewID() string {
	return g.id
}

type fakeProviderRepo struct {
	providers []*domain.ServiceProvider
}

func (r *fakeProviderRepo) Create(_ context.Context, provider *domain.ServiceProvider) (*domain.ServiceProvider, error) {
	copied := *provider
	r.providers = append(r.providers, &copied)
	return &copied, nil
}

func (r *fakeProviderRepo) List(_ context.Context) ([]*domain.ServiceProvider, error) {
	return r.providers, nil
}

func TestProvidersCreate(t *testing.T) {
	t.Run("new provider starts without reviews", func(t *testing.T) {
		repo := &fakeProviderRepo{}
		svc := NewService(repo, &stubIDGen{id: "provider-1"}, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateProviderRequest{
			Name:         "Мастер на час",
			ServiceType:  "plumbing",
			ContactInfo:  "master@example.com",
			Availability: []int64{1700000000, 1700086400},
		})
		require.NoError(t, err)

		assert.Equal(t, "provider-1", resp.ID)
		assert.Equal(t, int64(0), resp.AverageRating)
		assert.Empty(t, resp.Reviews)
		assert.Equal(t, []int64{1700000000, 1700086400}, resp.Availability)
	})

	t.Run("empty availability is allowed", func(t *testing.T) {
		repo := &fakeProviderRepo{}
		svc := NewService(repo, &stubIDGen{id: "provider-1"}, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateProviderRequest{
			Name:        "Мастер на час",
			ServiceType: "plumbing",
			ContactInfo: "master@example.com",
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Availability)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			req  *models.CreateProviderRequest
		}{
			{
				name: "empty name",
				req: &models.CreateProviderRequest{
					ServiceType: "plumbing",
					ContactInfo: "master@example.com",
				},
			},
			{
				name: "name too long",
				req: &models.CreateProviderRequest{
					Name:        strings.Repeat("a", domain.MaxNameLength+1),
					ServiceType: "plumbing",
					ContactInfo: "master@example.com",
				},
			},
			{
				name: "empty service type",
				req: &models.CreateProviderRequest{
					Name:        "Мастер на час",
					ContactInfo: "master@example.com",
				},
			},
			{
				name: "empty contact info",
				req: &models.CreateProviderRequest{
					Name:        "Мастер на час",
					ServiceType: "plumbing",
				},
			},
			{
				name: "non-positive availability slot",
				req: &models.CreateProviderRequest{
					Name:         "Мастер на час",
					ServiceType:  "plumbing",
					ContactInfo:  "master@example.com",
					Availability: []int64{1700000000, 0},
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewService(&fakeProviderRepo{}, &stubIDGen{id: "provider-1"}, nopLogger{})

				_, err := svc.Create(context.Background(), tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestProvidersGetAll(t *testing.T) {
	t.Run("returns registered providers", func(t *testing.T) {
		repo := &fakeProviderRepo{providers: []*domain.ServiceProvider{
			{ID: "provider-1", Name: "Первый"},
			{ID: "provider-2", Name: "Второй"},
		}}
		svc := NewService(repo, &stubIDGen{id: "unused"}, nopLogger{})

		resp, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, resp.Providers, 2)
	})

	t.Run("empty catalog is treated as not found", func(t *testing.T) {
		svc := NewService(&fakeProviderRepo{}, &stubIDGen{id: "unused"}, nopLogger{})

		_, err := svc.GetAll(context.Background())
		assert.ErrorIs(t, err, ErrNoProvidersFound)
	})
}
