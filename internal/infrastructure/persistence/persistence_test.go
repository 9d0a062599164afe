package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/documentflow/backend/internal/infrastructure/persistence/models"
)

// newTestDB opens an in-memory sqlite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.AddressModel{},
		&models.PersonModel{},
		&models.OrganizationModel{},
		&models.ContragentModel{},
		&models.StateModel{},
		&models.DocTypeModel{},
		&models.DocInModel{},
		&models.DocOutModel{},
		&models.RegNumberSequenceModel{},
		&models.UserModel{},
		&models.RoleModel{},
		&models.DepartmentModel{},
	)
	require.NoError(t, err)

	return db
}
