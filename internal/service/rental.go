package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/logger"
	"drivesync-backend/internal/repository"
	"drivesync-backend/internal/utils"
)

var (
	ErrCarUnavailable           = errors.New("car is not available for selection")
	ErrDeliveryLocationRequired = errors.New("delivery location is required for delivery mode")
	ErrInvalidRentalMode        = errors.New("invalid rental mode")
	ErrSameCar                  = errors.New("this car is already assigned to the rental")
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	carRepo     repository.CarRepository
	paymentRepo repository.PaymentRepository
	reqRepo     repository.ChangeRequestRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	carRepo repository.CarRepository,
	paymentRepo repository.PaymentRepository,
	reqRepo repository.ChangeRequestRepository,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		carRepo:     carRepo,
		paymentRepo: paymentRepo,
		reqRepo:     reqRepo,
	}
}

func (s *rentalService) Quote(ctx context.Context, carID int32, start, end time.Time, mode domain.RentalMode) (utils.RentalQuote, *domain.Car, error) {
	if !mode.Valid() {
		return utils.RentalQuote{}, nil, ErrInvalidRentalMode
	}
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return utils.RentalQuote{}, nil, err
	}

	quote, err := utils.ComputeQuote(start, end, car.HourlyRate, mode)
	if err != nil {
		return utils.RentalQuote{}, nil, err
	}
	return quote, car, nil
}

func (s *rentalService) CreateBooking(ctx context.Context, userID, carID int32, start, end time.Time, mode domain.RentalMode, deliveryLocation string) (*BookingResult, error) {
	if !mode.Valid() {
		return nil, ErrInvalidRentalMode
	}
	if mode == domain.RentalModeDelivery && deliveryLocation == "" {
		return nil, ErrDeliveryLocationRequired
	}
	if mode == domain.RentalModePickup {
		deliveryLocation = ""
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if !car.SelectableFor(0) {
		return nil, ErrCarUnavailable
	}

	quote, err := utils.ComputeQuote(start, end, car.HourlyRate, mode)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		UserID:           userID,
		CarID:            carID,
		StartTime:        start,
		EndTime:          end,
		HoursRented:      quote.Hours,
		Mode:             mode,
		DeliveryLocation: deliveryLocation,
		TotalCost:        quote.Total,
		Status:           domain.RentalStatusActive,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	// The booking stands even when the payment row fails to write; the
	// caller is told so it can surface a warning.
	payment := &domain.Payment{
		RentalID:  rental.ID,
		Amount:    quote.Total,
		Reference: uuid.New().String(),
	}
	recorded := true
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		logger.Warn("Booking saved but payment record failed", "rental_id", rental.ID, "error", err)
		recorded = false
		payment = nil
	}

	return &BookingResult{Rental: rental, Payment: payment, PaymentRecorded: recorded}, nil
}

func (s *rentalService) ListMyRentals(ctx context.Context, userID int32) ([]domain.RentalWithCar, error) {
	return s.rentalRepo.ListByUser(ctx, userID)
}

func (s *rentalService) UpdateBooking(ctx context.Context, userID, rentalID int32, start, end time.Time, mode domain.RentalMode, deliveryLocation string) (*domain.Rental, error) {
	if !mode.Valid() {
		return nil, ErrInvalidRentalMode
	}
	if mode == domain.RentalModeDelivery && deliveryLocation == "" {
		return nil, ErrDeliveryLocationRequired
	}
	if mode == domain.RentalModePickup {
		deliveryLocation = ""
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != userID {
		return nil, ErrNotRentalOwner
	}

	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		return nil, err
	}

	quote, err := utils.ComputeQuote(start, end, car.HourlyRate, mode)
	if err != nil {
		return nil, err
	}

	rental.StartTime = start
	rental.EndTime = end
	rental.HoursRented = quote.Hours
	rental.Mode = mode
	rental.DeliveryLocation = deliveryLocation
	rental.TotalCost = quote.Total

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return rental, nil
}

func (s *rentalService) RequestCarChange(ctx context.Context, userID, rentalID, newCarID int32) (*domain.CarChangeRequest, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != userID {
		return nil, ErrNotRentalOwner
	}
	if rental.CarID == newCarID {
		return nil, ErrSameCar
	}

	newCar, err := s.carRepo.GetByID(ctx, newCarID)
	if err != nil {
		return nil, err
	}
	if !newCar.SelectableFor(rental.CarID) {
		return nil, ErrCarUnavailable
	}

	req := &domain.CarChangeRequest{
		UserID:   userID,
		RentalID: rentalID,
		OldCarID: rental.CarID,
		NewCarID: newCarID,
		Status:   domain.ChangeRequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to submit change request: %w", err)
	}
	return req, nil
}
