package core

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// adminService implements AdminService. Creating an admin is a two-step
// write: the Firebase Auth account first, then the mirror record in the
// admin collection. The two are not linked by a transaction; if the mirror
// write fails the auth account stays behind and the error surfaces for a
// manual retry.
type adminService struct {
	adminRepo   db.AdminRepository
	authCreator AuthUserCreator
	logger      *zap.Logger
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(ar db.AdminRepository, ac AuthUserCreator, logger *zap.Logger) AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &adminService{adminRepo: ar, authCreator: ac, logger: logger}
}

func (s *adminService) List(ctx context.Context) ([]*models.AdminUser, error) {
	return s.adminRepo.List(ctx)
}

func (s *adminService) Create(ctx context.Context, req models.CreateAdminUserRequest) (*models.AdminUser, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: role '%s' is not one of admin|editor", ErrValidation, req.Role)
	}

	record, err := s.authCreator.CreateUser(ctx, (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to create auth account for '%s': %w", req.Email, err)
	}

	user := &models.AdminUser{
		Email: req.Email,
		Role:  req.Role,
		UID:   record.UID,
	}
	docID, err := s.adminRepo.Create(ctx, user)
	if err != nil {
		// The auth account already exists at this point. There is no
		// compensating delete; the operator retries or cleans up by hand.
		s.logger.Error("auth account created but mirror record write failed",
			zap.String("email", req.Email),
			zap.String("uid", record.UID),
			zap.Error(err))
		return nil, fmt.Errorf("auth account '%s' created, but mirror record failed: %w", req.Email, err)
	}
	user.DocID = docID
	return user, nil
}

func (s *adminService) Delete(ctx context.Context, docID string) error {
	return s.adminRepo.Delete(ctx, docID)
}
