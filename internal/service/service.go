package service

import (
	"context"
	"time"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, username, password, name, phone, addr, email string) (*domain.User, error)
	// Login returns the user plus access and refresh tokens.
	Login(ctx context.Context, username, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	// CompleteProfile requires all three contact fields.
	CompleteProfile(ctx context.Context, userID int32, name, phone, addr string) (*domain.User, error)
}

type CarService interface {
	// ListCars annotates each car with selectability. A non-zero
	// editingRentalID marks that rental's car as the current selection;
	// the rental must belong to userID.
	ListCars(ctx context.Context, userID, editingRentalID int32) ([]domain.CarListing, error)
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	SetStatus(ctx context.Context, id int32, status domain.CarStatus) (*domain.Car, error)
}

// BookingResult is a confirmed booking plus whether the payment row was
// recorded. A failed payment write does not void the booking.
type BookingResult struct {
	Rental          *domain.Rental
	Payment         *domain.Payment
	PaymentRecorded bool
}

type RentalService interface {
	Quote(ctx context.Context, carID int32, start, end time.Time, mode domain.RentalMode) (utils.RentalQuote, *domain.Car, error)
	CreateBooking(ctx context.Context, userID, carID int32, start, end time.Time, mode domain.RentalMode, deliveryLocation string) (*BookingResult, error)
	ListMyRentals(ctx context.Context, userID int32) ([]domain.RentalWithCar, error)
	UpdateBooking(ctx context.Context, userID, rentalID int32, start, end time.Time, mode domain.RentalMode, deliveryLocation string) (*domain.Rental, error)
	RequestCarChange(ctx context.Context, userID, rentalID, newCarID int32) (*domain.CarChangeRequest, error)
}

type AdminService interface {
	ListPendingRequests(ctx context.Context) ([]domain.PendingChangeRequest, error)
	ApproveRequest(ctx context.Context, requestID int32) (*domain.CarChangeRequest, error)
	RejectRequest(ctx context.Context, requestID int32) (*domain.CarChangeRequest, error)
}

type EmailService interface {
	SendChangeRequestDecision(ctx context.Context, toEmail, toName, carName string, approved bool) error
}
