package identity

import (
	"strings"

	"github.com/documentflow/backend/internal/domain/shared"
)

// Role is a named permission group assigned to users.
type Role struct {
	shared.BaseEntity
	Name string
}

// NewRole creates a role.
func NewRole(name string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewInvalidArgument("Role name is empty")
	}
	return &Role{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Department groups users for incoming document routing.
type Department struct {
	shared.BaseEntity
	Name string
}

// NewDepartment creates a department.
func NewDepartment(name string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewInvalidArgument("Department name is empty")
	}
	return &Department{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}
