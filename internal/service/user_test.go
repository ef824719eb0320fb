package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"drivesync-backend/internal/domain"
)

func TestUserService_CompleteProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo)

		userRepo.On("UpdateProfile", ctx, int32(7), "Alice", "555-0100", "1 Main St").Return(nil)
		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{
			ID: 7, Name: "Alice", Phone: "555-0100", Addr: "1 Main St",
		}, nil)

		user, err := svc.CompleteProfile(ctx, 7, "Alice", "555-0100", "1 Main St")
		assert.NoError(t, err)
		assert.True(t, user.ProfileComplete())
	})

	t.Run("Missing Field", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo)

		_, err := svc.CompleteProfile(ctx, 7, "Alice", "", "1 Main St")
		assert.ErrorIs(t, err, ErrProfileFieldsRequired)
		userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
