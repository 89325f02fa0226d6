package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceProviderIsAvailableOn(t *testing.T) {
	provider := &ServiceProvider{
		Availability: []int64{1700000000, 1700086400, 1700172800},
	}

	assert.True(t, provider.IsAvailableOn(1700086400))
	assert.False(t, provider.IsAvailableOn(1700086401), "совпадение должно быть точным, интервалы не поддерживаются")
	assert.False(t, provider.IsAvailableOn(0))

	empty := &ServiceProvider{}
	assert.False(t, empty.IsAvailableOn(1700000000), "поставщик без слотов никогда не доступен")
}

func TestServiceProviderAddReview(t *testing.T) {
	tests := []struct {
		name        string
		ratings     []int64
		wantAverage int64
	}{
		{
			name:        "single review",
			ratings:     []int64{5},
			wantAverage: 5,
		},
		{
			name:        "average truncates towards zero",
			ratings:     []int64{4, 3},
			wantAverage: 3, // 7/2
		},
		{
			name:        "exact average",
			ratings:     []int64{4, 2},
			wantAverage: 3,
		},
		{
			name:        "truncation over many reviews",
			ratings:     []int64{5, 5, 5, 1},
			wantAverage: 4, // 16/4
		},
		{
			name:        "almost next integer",
			ratings:     []int64{5, 4, 4},
			wantAverage: 4, // 13/3
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &ServiceProvider{}

			for _, rating := range tt.ratings {
				provider.AddReview(Review{ClientID: "client-1", Rating: rating})
			}

			assert.Equal(t, tt.wantAverage, provider.AverageRating)
			assert.Len(t, provider.Reviews, len(tt.ratings))
		})
	}
}

func TestServiceProviderAverageRatingWithoutReviews(t *testing.T) {
	provider := &ServiceProvider{}
	assert.Equal(t, int64(0), provider.AverageRating)
}
