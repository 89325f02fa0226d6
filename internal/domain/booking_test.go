package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitionGuards(t *testing.T) {
	tests := []struct {
		name             string
		status           BookingStatus
		reviewed         bool
		canBeConfirmed   bool
		canBeRescheduled bool
		canBeCancelled   bool
		canBeCompleted   bool
		canBeReviewed    bool
		isActive         bool
	}{
		{
			name:             "pending",
			status:           StatusPending,
			canBeConfirmed:   true,
			canBeRescheduled: true,
			canBeCancelled:   true,
			isActive:         true,
		},
		{
			name:           "confirmed",
			status:         StatusConfirmed,
			canBeCancelled: true,
			canBeCompleted: true,
			isActive:       true,
		},
		{
			name:   "canceled",
			status: StatusCanceled,
		},
		{
			name:          "completed without review",
			status:        StatusCompleted,
			canBeReviewed: true,
		},
		{
			name:     "completed with review",
			status:   StatusCompleted,
			reviewed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status, Reviewed: tt.reviewed}

			assert.Equal(t, tt.canBeConfirmed, b.CanBeConfirmed())
			assert.Equal(t, tt.canBeRescheduled, b.CanBeRescheduled())
			assert.Equal(t, tt.canBeCancelled, b.CanBeCancelled())
			assert.Equal(t, tt.canBeCompleted, b.CanBeCompleted())
			assert.Equal(t, tt.canBeReviewed, b.CanBeReviewed())
			assert.Equal(t, tt.isActive, b.IsActive())
		})
	}
}
