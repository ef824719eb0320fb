package domain

import "time"

type RentalMode string

const (
	RentalModePickup   RentalMode = "Pickup"
	RentalModeDelivery RentalMode = "Delivery"
)

func (m RentalMode) Valid() bool {
	return m == RentalModePickup || m == RentalModeDelivery
}

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusCompleted RentalStatus = "Completed"
)

type Rental struct {
	ID               int32        `json:"id"`
	UserID           int32        `json:"user_id"`
	CarID            int32        `json:"car_id"`
	StartTime        time.Time    `json:"start_time"`
	EndTime          time.Time    `json:"end_time"`
	HoursRented      int32        `json:"hours_rented"`
	Mode             RentalMode   `json:"rental_mode"`
	DeliveryLocation string       `json:"delivery_location,omitempty"`
	TotalCost        int64        `json:"total_cost"`
	Status           RentalStatus `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
}

// RentalWithCar is a rental joined with its car's name for list views.
type RentalWithCar struct {
	Rental
	CarName string `json:"car_name"`
}
