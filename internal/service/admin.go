package service

import (
	"context"
	"fmt"

	"drivesync-backend/internal/domain"
	"drivesync-backend/internal/logger"
	"drivesync-backend/internal/repository"
)

type adminService struct {
	reqRepo  repository.ChangeRequestRepository
	userRepo repository.UserRepository
	carRepo  repository.CarRepository
	emailSvc EmailService
}

func NewAdminService(
	reqRepo repository.ChangeRequestRepository,
	userRepo repository.UserRepository,
	carRepo repository.CarRepository,
	emailSvc EmailService,
) AdminService {
	return &adminService{
		reqRepo:  reqRepo,
		userRepo: userRepo,
		carRepo:  carRepo,
		emailSvc: emailSvc,
	}
}

func (s *adminService) ListPendingRequests(ctx context.Context) ([]domain.PendingChangeRequest, error) {
	return s.reqRepo.ListPending(ctx)
}

func (s *adminService) ApproveRequest(ctx context.Context, requestID int32) (*domain.CarChangeRequest, error) {
	// Read first so a missing request surfaces as not-found rather than
	// as an already-decided conflict.
	existing, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get change request: %w", err)
	}
	if existing.Status.Terminal() {
		return nil, repository.ErrRequestNotPending
	}

	req, err := s.reqRepo.Approve(ctx, requestID)
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, req, true)
	return req, nil
}

func (s *adminService) RejectRequest(ctx context.Context, requestID int32) (*domain.CarChangeRequest, error) {
	existing, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get change request: %w", err)
	}
	if existing.Status.Terminal() {
		return nil, repository.ErrRequestNotPending
	}

	req, err := s.reqRepo.Reject(ctx, requestID)
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, req, false)
	return req, nil
}

// notifyDecision emails the requesting user about the outcome when they
// have an email on file. Best effort only.
func (s *adminService) notifyDecision(ctx context.Context, req *domain.CarChangeRequest, approved bool) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil || user.Email == "" {
		return
	}
	car, err := s.carRepo.GetByID(ctx, req.NewCarID)
	if err != nil {
		return
	}
	if err := s.emailSvc.SendChangeRequestDecision(ctx, user.Email, user.Name, car.Name, approved); err != nil {
		logger.Warn("Failed to send decision notification", "request_id", req.ID, "user_id", user.ID, "error", err)
	}
}
