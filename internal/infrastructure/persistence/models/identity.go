package models

import (
	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/identity"
)

// UserModel is the persistence model for system users.
type UserModel struct {
	BaseModel
	FirstName    string      `gorm:"type:varchar(100)"`
	MiddleName   string      `gorm:"type:varchar(100)"`
	LastName     string      `gorm:"type:varchar(100)"`
	Username     string      `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string      `gorm:"type:varchar(100);not null"`
	Active       bool        `gorm:"not null;default:true"`
	BossID       *uuid.UUID  `gorm:"type:uuid;index"`
	DepartmentID *uuid.UUID  `gorm:"type:uuid;index"`
	Roles        []RoleModel `gorm:"many2many:sys_user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "sys_users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	roles := make([]identity.Role, 0, len(m.Roles))
	for i := range m.Roles {
		roles = append(roles, *m.Roles[i].ToDomain())
	}
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		FirstName:    m.FirstName,
		MiddleName:   m.MiddleName,
		LastName:     m.LastName,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Active:       m.Active,
		BossID:       m.BossID,
		DepartmentID: m.DepartmentID,
		Roles:        roles,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.FirstName = u.FirstName
	m.MiddleName = u.MiddleName
	m.LastName = u.LastName
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.Active = u.Active
	m.BossID = u.BossID
	m.DepartmentID = u.DepartmentID
	m.Roles = make([]RoleModel, 0, len(u.Roles))
	for i := range u.Roles {
		rm := RoleModel{}
		rm.FromDomain(&u.Roles[i])
		m.Roles = append(m.Roles, rm)
	}
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// RoleModel is the persistence model for roles.
type RoleModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (RoleModel) TableName() string {
	return "sys_roles"
}

// ToDomain converts the persistence model to a domain Role entity.
func (m *RoleModel) ToDomain() *identity.Role {
	return &identity.Role{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain Role entity.
func (m *RoleModel) FromDomain(r *identity.Role) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.Name = r.Name
}

// DepartmentModel is the persistence model for departments.
type DepartmentModel struct {
	BaseModel
	Name string `gorm:"type:varchar(200);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department entity.
func (m *DepartmentModel) ToDomain() *identity.Department {
	return &identity.Department{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain Department entity.
func (m *DepartmentModel) FromDomain(d *identity.Department) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.Name = d.Name
}

// DepartmentModelFromDomain creates a new persistence model from a domain Department entity.
func DepartmentModelFromDomain(d *identity.Department) *DepartmentModel {
	m := &DepartmentModel{}
	m.FromDomain(d)
	return m
}
