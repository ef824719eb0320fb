package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/service"
	"drivesync-backend/internal/utils"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, name, phone, addr, email string) (*domain.User, error) {
	args := m.Called(ctx, username, password, name, phone, addr, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CompleteProfile(ctx context.Context, userID int32, name, phone, addr string) (*domain.User, error) {
	args := m.Called(ctx, userID, name, phone, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCarService
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) ListCars(ctx context.Context, userID, editingRentalID int32) ([]domain.CarListing, error) {
	args := m.Called(ctx, userID, editingRentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CarListing), args.Error(1)
}
func (m *MockCarService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarService) SetStatus(ctx context.Context, id int32, status domain.CarStatus) (*domain.Car, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Quote(ctx context.Context, carID int32, start, end time.Time, mode domain.RentalMode) (utils.RentalQuote, *domain.Car, error) {
	args := m.Called(ctx, carID, start, end, mode)
	if args.Get(1) == nil {
		return utils.RentalQuote{}, nil, args.Error(2)
	}
	return args.Get(0).(utils.RentalQuote), args.Get(1).(*domain.Car), args.Error(2)
}
func (m *MockRentalService) CreateBooking(ctx context.Context, userID, carID int32, start, end time.Time, mode domain.RentalMode, deliveryLocation string) (*service.BookingResult, error) {
	args := m.Called(ctx, userID, carID, start, end, mode, deliveryLocation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookingResult), args.Error(1)
}
func (m *MockRentalService) ListMyRentals(ctx context.Context, userID int32) ([]domain.RentalWithCar, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalWithCar), args.Error(1)
}
func (m *MockRentalService) UpdateBooking(ctx context.Context, userID, rentalID int32, start, end time.Time, mode domain.RentalMode, deliveryLocation string) (*domain.Rental, error) {
	args := m.Called(ctx, userID, rentalID, start, end, mode, deliveryLocation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) RequestCarChange(ctx context.Context, userID, rentalID, newCarID int32) (*domain.CarChangeRequest, error) {
	args := m.Called(ctx, userID, rentalID, newCarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarChangeRequest), args.Error(1)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListPendingRequests(ctx context.Context) ([]domain.PendingChangeRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingChangeRequest), args.Error(1)
}
func (m *MockAdminService) ApproveRequest(ctx context.Context, requestID int32) (*domain.CarChangeRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarChangeRequest), args.Error(1)
}
func (m *MockAdminService) RejectRequest(ctx context.Context, requestID int32) (*domain.CarChangeRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarChangeRequest), args.Error(1)
}
