package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"gescon/internal/feature/contract"
	"gescon/internal/feature/supplier"
	"gescon/internal/feature/user"
)

// newTestDB ouvre une base sqlite en mémoire avec le schéma migré.
// Une seule connexion : sqlite :memory: est liée à la connexion.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         glogger.Default.LogMode(glogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&user.UserModel{}, &supplier.SupplierModel{}, &contract.ContractModel{},
	))
	return db
}
