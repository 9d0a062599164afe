package identity

import (
	"strings"

	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is a system user (table sys_users). Users register and sign
// documents; they are unrelated to counterparty persons.
type User struct {
	shared.BaseEntity
	FirstName    string
	MiddleName   string
	LastName     string
	Username     string
	PasswordHash string
	Active       bool
	BossID       *uuid.UUID
	DepartmentID *uuid.UUID
	Roles        []Role
}

// NewUser creates an active user with a bcrypt password hash.
func NewUser(firstName, middleName, lastName, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewInvalidArgument("Username is empty")
	}
	if len(password) < 8 {
		return nil, shared.NewInvalidArgument("Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		FirstName:    strings.TrimSpace(firstName),
		MiddleName:   strings.TrimSpace(middleName),
		LastName:     strings.TrimSpace(lastName),
		Username:     username,
		PasswordHash: string(hash),
		Active:       true,
	}, nil
}

// CheckPassword verifies a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword rehashes and stores a new password.
func (u *User) ChangePassword(password string) error {
	if len(password) < 8 {
		return shared.NewInvalidArgument("Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// Deactivate disables login for the user.
func (u *User) Deactivate() {
	u.Active = false
	u.Touch()
}

// FullName returns the display name.
func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.FirstName, u.MiddleName, u.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
