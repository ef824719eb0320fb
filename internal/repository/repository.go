package repository

import (
	"context"
	"errors"
	"time"

	"drivesync-backend/internal/domain"
)

// ErrRequestNotPending is returned by decision methods when the change
// request has already been approved or rejected.
var ErrRequestNotPending = errors.New("change request is not pending")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int32, name, phone, addr string) error
}

type CarRepository interface {
	List(ctx context.Context) ([]domain.Car, error)
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ListByUser(ctx context.Context, userID int32) ([]domain.RentalWithCar, error)
	// CompleteElapsed flips Active rentals whose end time has passed to
	// Completed, returning how many rows changed.
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
}

type ChangeRequestRepository interface {
	Create(ctx context.Context, req *domain.CarChangeRequest) error
	GetByID(ctx context.Context, id int32) (*domain.CarChangeRequest, error)
	ListPending(ctx context.Context) ([]domain.PendingChangeRequest, error)
	// Approve atomically flips a Pending request to Approved and writes the
	// requested car onto the rental. Returns ErrRequestNotPending when the
	// request was already decided.
	Approve(ctx context.Context, id int32) (*domain.CarChangeRequest, error)
	// Reject flips a Pending request to Rejected; the rental is untouched.
	Reject(ctx context.Context, id int32) (*domain.CarChangeRequest, error)
}
