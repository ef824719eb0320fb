package service

import (
	"context"
	"errors"
	"fmt"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/repository"
)

var (
	ErrNotRentalOwner   = errors.New("rental does not belong to this user")
	ErrInvalidCarStatus = errors.New("invalid car status")
)

type carService struct {
	carRepo    repository.CarRepository
	rentalRepo repository.RentalRepository
}

func NewCarService(carRepo repository.CarRepository, rentalRepo repository.RentalRepository) CarService {
	return &carService{
		carRepo:    carRepo,
		rentalRepo: rentalRepo,
	}
}

func (s *carService) ListCars(ctx context.Context, userID, editingRentalID int32) ([]domain.CarListing, error) {
	var currentCarID int32
	if editingRentalID != 0 {
		rental, err := s.rentalRepo.GetByID(ctx, editingRentalID)
		if err != nil {
			return nil, fmt.Errorf("failed to get rental under edit: %w", err)
		}
		if rental.UserID != userID {
			return nil, ErrNotRentalOwner
		}
		currentCarID = rental.CarID
	}

	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.AnnotateSelectable(cars, currentCarID), nil
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) SetStatus(ctx context.Context, id int32, status domain.CarStatus) (*domain.Car, error) {
	if !status.Valid() {
		return nil, ErrInvalidCarStatus
	}
	if err := s.carRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.carRepo.GetByID(ctx, id)
}
