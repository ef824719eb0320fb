package domain

import "time"

type ChangeRequestStatus string

const (
	ChangeRequestStatusPending  ChangeRequestStatus = "Pending"
	ChangeRequestStatusApproved ChangeRequestStatus = "Approved"
	ChangeRequestStatusRejected ChangeRequestStatus = "Rejected"
)

// Terminal reports whether the request has already been decided.
// Approved and Rejected admit no further transitions.
func (s ChangeRequestStatus) Terminal() bool {
	return s == ChangeRequestStatusApproved || s == ChangeRequestStatusRejected
}

// CarChangeRequest records a customer's ask to swap the car on an existing
// rental. It is created Pending and decided exactly once by an admin.
type CarChangeRequest struct {
	ID        int32               `json:"id"`
	UserID    int32               `json:"user_id"`
	RentalID  int32               `json:"rental_id"`
	OldCarID  int32               `json:"old_car_id"`
	NewCarID  int32               `json:"new_car_id"`
	Status    ChangeRequestStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// PendingChangeRequest is the admin review-queue row, joined with the
// requesting user and both car names.
type PendingChangeRequest struct {
	RequestID  int32     `json:"request_id"`
	Username   string    `json:"username"`
	RentalID   int32     `json:"rental_id"`
	OldCarID   int32     `json:"old_car_id"`
	OldCarName string    `json:"old_car_name"`
	NewCarID   int32     `json:"new_car_id"`
	NewCarName string    `json:"new_car_name"`
	CreatedAt  time.Time `json:"created_at"`
}
