package jobs

import (
	"context"
	"time"

	"drivesync-backend/internal/logger"
)

// CompleteElapsedRentals marks active rentals whose end time has passed
// as completed, freeing nothing by itself: car status stays under admin
// control.
func (jr *JobRunner) CompleteElapsedRentals() {
	jr.runWithRecovery("CompleteElapsedRentals", func() {
		ctx := context.Background()

		count, err := jr.store.RentalRepository.CompleteElapsed(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to complete elapsed rentals", "error", err)
			return
		}
		logger.Info("Completed elapsed rentals", "count", count)
	})
}

// WarmCarImageCache prefetches every car image so first page loads do
// not wait on external image hosts.
func (jr *JobRunner) WarmCarImageCache() {
	jr.runWithRecovery("WarmCarImageCache", func() {
		ctx := context.Background()

		cars, err := jr.store.CarRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list cars for image warmup", "error", err)
			return
		}
		for _, car := range cars {
			jr.images.Prefetch(car.ID, car.ImgURL)
		}
		logger.Info("Queued car image prefetches", "count", len(cars))
	})
}
