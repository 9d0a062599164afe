package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/identity"
)

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token for rotation.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse returns a fresh token pair.
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// CreateUserRequest registers a system user.
type CreateUserRequest struct {
	FirstName    string     `json:"first_name" binding:"max=100"`
	MiddleName   string     `json:"middle_name" binding:"max=100"`
	LastName     string     `json:"last_name" binding:"required,max=100"`
	Username     string     `json:"username" binding:"required,max=100"`
	Password     string     `json:"password" binding:"required,min=8"`
	BossID       *uuid.UUID `json:"boss_id"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

// UserResponse is the user card without credential material.
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	MiddleName   string     `json:"middle_name"`
	LastName     string     `json:"last_name"`
	Username     string     `json:"username"`
	Active       bool       `json:"active"`
	BossID       *uuid.UUID `json:"boss_id,omitempty"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	Roles        []string   `json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToUserResponse converts a domain user to a response
func ToUserResponse(u *identity.User) UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.Name)
	}
	return UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		MiddleName:   u.MiddleName,
		LastName:     u.LastName,
		Username:     u.Username,
		Active:       u.Active,
		BossID:       u.BossID,
		DepartmentID: u.DepartmentID,
		Roles:        roles,
		CreatedAt:    u.CreatedAt,
	}
}

// DepartmentResponse is one department row.
type DepartmentResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToDepartmentResponse converts a domain department to a response
func ToDepartmentResponse(d *identity.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:   d.ID,
		Name: d.Name,
	}
}
