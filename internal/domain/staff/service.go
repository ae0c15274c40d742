// Package staff provides the staff account service.
package staff

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/domain"
	"aromapos/pkg/logger"
)

const passwordMinLength = 8

// Service provides business operations for staff accounts.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new staff service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// CreateRequest carries the fields for a new staff account.
type CreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
	Place    string `json:"place,omitempty"`
}

// Create registers a new staff member. Only one admin account may exist.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Member, error) {
	if len(req.Password) < passwordMinLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", passwordMinLength),
		).WithDetail("field", "password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	member := NewMember(req.Username, string(hash), req.Role)
	member.FullName = req.FullName
	member.Phone = req.Phone
	member.Email = req.Email
	member.Address = req.Address
	member.Place = req.Place

	if err := member.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.repo.ExistsByUsername(ctx, member.Username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if exists {
			return apperror.NewDuplicate("staff", "username", member.Username)
		}

		if member.IsAdmin() {
			admins, err := s.repo.CountAdmins(ctx)
			if err != nil {
				return fmt.Errorf("count admins: %w", err)
			}
			if admins > 0 {
				return apperror.NewConflict("an admin account already exists")
			}
		}

		return s.repo.Create(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "staff member created",
		"id", member.ID,
		"username", member.Username,
		"role", member.Role)

	return member, nil
}

// GetByID retrieves a staff member.
func (s *Service) GetByID(ctx context.Context, memberID id.ID) (*Member, error) {
	return s.repo.GetByID(ctx, memberID)
}

// GetByUsername retrieves a staff member by username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*Member, error) {
	return s.repo.GetByUsername(ctx, username)
}

// UpdateRequest carries mutable staff fields. Nil means keep current.
type UpdateRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
	Place    *string `json:"place,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// Update applies profile changes. Role changes are not supported: the
// single admin is fixed at setup time.
func (s *Service) Update(ctx context.Context, memberID id.ID, req UpdateRequest) (*Member, error) {
	member, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Address != nil {
		member.Address = *req.Address
	}
	if req.Place != nil {
		member.Place = *req.Place
	}
	if req.IsActive != nil {
		if member.IsAdmin() && !*req.IsActive {
			return nil, apperror.NewConflict("cannot deactivate the admin account")
		}
		member.IsActive = *req.IsActive
	}

	member.Touch()
	if err := member.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// ChangePassword replaces a member's password after verifying the old one.
func (s *Service) ChangePassword(ctx context.Context, memberID id.ID, oldPassword, newPassword string) error {
	if len(newPassword) < passwordMinLength {
		return apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", passwordMinLength),
		).WithDetail("field", "password")
	}

	member, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(oldPassword)); err != nil {
		return apperror.NewUnauthorized("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	member.PasswordHash = string(hash)
	member.Touch()
	if err := s.repo.Update(ctx, member); err != nil {
		return err
	}

	logger.Info(ctx, "staff password changed", "id", member.ID)
	return nil
}

// VerifyPassword checks a member's credentials. Used by the shop's
// local login screen; no tokens are issued here.
func (s *Service) VerifyPassword(ctx context.Context, username, password string) (*Member, error) {
	member, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if !member.IsActive {
		return nil, apperror.NewForbidden("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	return member, nil
}

// Delete removes a staff account. The admin account cannot be deleted.
func (s *Service) Delete(ctx context.Context, memberID id.ID) error {
	member, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}

	if member.IsAdmin() {
		return apperror.NewConflict("cannot delete the admin account")
	}

	return s.repo.Delete(ctx, memberID)
}

// List retrieves staff members with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Member], error) {
	return s.repo.List(ctx, filter)
}
