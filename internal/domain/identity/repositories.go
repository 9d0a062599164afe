package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence for system users.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Save(ctx context.Context, user *User) error
}

// DepartmentRepository defines persistence for departments.
type DepartmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	FindAll(ctx context.Context) ([]Department, error)
	Save(ctx context.Context, department *Department) error
}
