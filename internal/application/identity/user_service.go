package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/identity"
	"github.com/documentflow/backend/internal/domain/shared"
)

// UserService manages system users.
type UserService struct {
	userRepo       identity.UserRepository
	departmentRepo identity.DepartmentRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, departmentRepo identity.DepartmentRepository) *UserService {
	return &UserService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
	}
}

// Create registers a user. Usernames are unique; a duplicate surfaces
// as INVALID_ARGUMENT before hitting the database constraint.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, shared.NewInvalidArgument("Username is already taken")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.FindByID(ctx, *req.DepartmentID); err != nil {
			return nil, shared.ErrNotFoundID
		}
	}

	user, err := identity.NewUser(req.FirstName, req.MiddleName, req.LastName, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	user.BossID = req.BossID
	user.DepartmentID = req.DepartmentID

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// GetByID retrieves one user card
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// List returns every user
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses, nil
}

// Deactivate disables login for a user without removing the record
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.Deactivate()
	return s.userRepo.Save(ctx, user)
}

// ListDepartments returns every department
func (s *UserService) ListDepartments(ctx context.Context) ([]DepartmentResponse, error) {
	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, ToDepartmentResponse(&departments[i]))
	}
	return responses, nil
}
