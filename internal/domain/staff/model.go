// Package staff provides shop staff accounts.
package staff

import (
	"context"
	"strings"
	"time"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
)

// Role determines what a staff member may do. The admin manages staff
// and configuration; everyone else operates the counter.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// Valid reports whether the role is a known one.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Member represents a staff account. Passwords are stored as bcrypt
// hashes and never leave the service.
type Member struct {
	ID           id.ID  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	FullName     string `db:"full_name" json:"fullName,omitempty"`
	Role         Role   `db:"role" json:"role"`
	Phone        string `db:"phone" json:"phone,omitempty"`
	Email        string `db:"email" json:"email,omitempty"`
	Address      string `db:"address" json:"address,omitempty"`
	Place        string `db:"place" json:"place,omitempty"`
	IsActive     bool   `db:"is_active" json:"isActive"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	Version   int       `db:"version" json:"version"`
}

// NewMember creates an active staff member with a prepared password hash.
func NewMember(username, passwordHash string, role Role) *Member {
	now := time.Now().UTC()
	return &Member{
		ID:           id.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
}

// Validate validates staff account data.
func (m *Member) Validate(ctx context.Context) error {
	if strings.TrimSpace(m.Username) == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	if m.PasswordHash == "" {
		return apperror.NewValidation("password is required").WithDetail("field", "password")
	}
	if !m.Role.Valid() {
		return apperror.NewValidation("invalid role").
			WithDetail("field", "role").
			WithDetail("value", string(m.Role))
	}
	if m.Email != "" && !strings.Contains(m.Email, "@") {
		return apperror.NewValidation("invalid email").WithDetail("field", "email")
	}
	return nil
}

// IsAdmin reports whether the member holds the admin role.
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// Touch bumps the updated timestamp.
func (m *Member) Touch() {
	m.UpdatedAt = time.Now().UTC()
}
