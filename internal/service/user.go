package service

import (
	"context"
	"errors"
	"fmt"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/repository"
)

var ErrProfileFieldsRequired = errors.New("name, phone and address are all required")

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) CompleteProfile(ctx context.Context, userID int32, name, phone, addr string) (*domain.User, error) {
	if name == "" || phone == "" || addr == "" {
		return nil, ErrProfileFieldsRequired
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, name, phone, addr); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.userRepo.GetByID(ctx, userID)
}
