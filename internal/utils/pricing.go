package utils

import (
	"errors"
	"math"
	"time"

	"drivesync-backend/internal/domain"
)

// DeliveryFee is the flat surcharge applied when a rental is delivered
// instead of picked up.
const DeliveryFee int64 = 20

var (
	ErrEndNotAfterStart = errors.New("end time must be after start time")
	ErrStartInPast      = errors.New("start time cannot be in the past")
)

// RentalQuote is the cost breakdown for a rental window.
type RentalQuote struct {
	Hours       int32 `json:"hours"`
	CarCost     int64 `json:"car_cost"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
}

// HoursBetween returns the billable hours for a window: the duration
// rounded up to whole hours, with a one-hour floor.
func HoursBetween(start, end time.Time) int32 {
	secs := end.Sub(start).Seconds()
	hours := int32(math.Ceil(secs / 3600.0))
	if hours < 1 {
		hours = 1
	}
	return hours
}

// ComputeQuoteAt prices a rental window against a reference time. The
// reference is truncated to the hour before the not-in-the-past check,
// so a booking starting within the current hour is accepted.
func ComputeQuoteAt(now, start, end time.Time, hourlyRate int64, mode domain.RentalMode) (RentalQuote, error) {
	if !end.After(start) {
		return RentalQuote{}, ErrEndNotAfterStart
	}
	if start.Before(now.Truncate(time.Hour)) {
		return RentalQuote{}, ErrStartInPast
	}

	hours := HoursBetween(start, end)
	carCost := hourlyRate * int64(hours)

	var fee int64
	if mode == domain.RentalModeDelivery {
		fee = DeliveryFee
	}

	return RentalQuote{
		Hours:       hours,
		CarCost:     carCost,
		DeliveryFee: fee,
		Total:       carCost + fee,
	}, nil
}

// ComputeQuote prices a rental window against the current time.
func ComputeQuote(start, end time.Time, hourlyRate int64, mode domain.RentalMode) (RentalQuote, error) {
	return ComputeQuoteAt(time.Now(), start, end, hourlyRate, mode)
}
