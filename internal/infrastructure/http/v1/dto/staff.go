package dto

import (
	"time"

	"aromapos/internal/domain/staff"
)

// CreateStaffRequest is the request body for registering a staff member.
type CreateStaffRequest struct {
	Username string     `json:"username" binding:"required"`
	Password string     `json:"password" binding:"required"`
	FullName string     `json:"fullName"`
	Role     staff.Role `json:"role" binding:"required"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	Address  string     `json:"address"`
	Place    string     `json:"place"`
}

// UpdateStaffRequest is the request body for updating a staff profile.
type UpdateStaffRequest struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Place    *string `json:"place"`
	IsActive *bool   `json:"isActive"`
}

// ChangePasswordRequest is the request body for a password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// VerifyPasswordRequest is the request body for a local login check.
type VerifyPasswordRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StaffResponse is the response body for a staff member. The password hash
// never leaves the server.
type StaffResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"fullName,omitempty"`
	Role      staff.Role `json:"role"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	Address   string     `json:"address,omitempty"`
	Place     string     `json:"place,omitempty"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Version   int        `json:"version"`
}

// FromStaffMember creates response DTO from domain entity.
func FromStaffMember(m *staff.Member) *StaffResponse {
	return &StaffResponse{
		ID:        m.ID.String(),
		Username:  m.Username,
		FullName:  m.FullName,
		Role:      m.Role,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		Place:     m.Place,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Version:   m.Version,
	}
}
