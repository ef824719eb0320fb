package utils

import (
	"testing"
	"time"

	"drivesync-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHoursBetween(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		expected int32
	}{
		{"Exact hour", 1 * time.Hour, 1},
		{"Exact two hours", 2 * time.Hour, 2},
		{"Partial hour rounds up", 2*time.Hour + 30*time.Minute, 3},
		{"One second over rounds up", 1*time.Hour + time.Second, 2},
		{"Under an hour floors to one", 15 * time.Minute, 1},
		{"Full day", 24 * time.Hour, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HoursBetween(base, base.Add(tt.duration)))
		})
	}
}

func TestComputeQuoteAt(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC)
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	t.Run("Pickup", func(t *testing.T) {
		q, err := ComputeQuoteAt(now, start, end, 50, domain.RentalModePickup)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), q.Hours)
		assert.Equal(t, int64(150), q.CarCost)
		assert.Equal(t, int64(0), q.DeliveryFee)
		assert.Equal(t, int64(150), q.Total)
	})

	t.Run("Delivery adds flat fee", func(t *testing.T) {
		q, err := ComputeQuoteAt(now, start, end, 50, domain.RentalModeDelivery)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), q.Hours)
		assert.Equal(t, int64(170), q.Total)
	})

	t.Run("End equal to start rejected", func(t *testing.T) {
		_, err := ComputeQuoteAt(now, start, start, 50, domain.RentalModePickup)
		assert.ErrorIs(t, err, ErrEndNotAfterStart)
	})

	t.Run("End before start rejected", func(t *testing.T) {
		_, err := ComputeQuoteAt(now, end, start, 50, domain.RentalModePickup)
		assert.ErrorIs(t, err, ErrEndNotAfterStart)
	})

	t.Run("Start in the past rejected", func(t *testing.T) {
		past := now.Add(-2 * time.Hour)
		_, err := ComputeQuoteAt(now, past, end, 50, domain.RentalModePickup)
		assert.ErrorIs(t, err, ErrStartInPast)
	})

	t.Run("Start within the current hour accepted", func(t *testing.T) {
		// now is 09:15; a 09:00 start is not considered past.
		sameHour := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
		q, err := ComputeQuoteAt(now, sameHour, end, 50, domain.RentalModePickup)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), q.Hours)
	})

	t.Run("Minimum one hour billed", func(t *testing.T) {
		q, err := ComputeQuoteAt(now, start, start.Add(20*time.Minute), 50, domain.RentalModePickup)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), q.Hours)
		assert.Equal(t, int64(50), q.Total)
	})
}
