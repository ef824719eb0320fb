package domain

import "time"

// Payment is the record written when a booking is confirmed. The charge
// itself is out of scope; this is the receipt row.
type Payment struct {
	ID          int32     `json:"id"`
	RentalID    int32     `json:"rental_id"`
	Amount      int64     `json:"amount"`
	Reference   string    `json:"reference"`
	PaymentTime time.Time `json:"payment_time"`
}
