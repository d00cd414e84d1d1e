package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/geoffkats/accounting-system/internal/domain/accounting"
	"github.com/geoffkats/accounting-system/internal/domain/currency"
	"github.com/geoffkats/accounting-system/internal/domain/identity"
	"github.com/geoffkats/accounting-system/internal/domain/settings"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// A single connection keeps concurrent transactions serialized the way
// the production database would with row locks.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&settings.CompanySetting{},
		&currency.Currency{},
		&accounting.Account{},
		&identity.User{},
	))

	return db
}

func mustCurrency(t *testing.T, code, name, symbol string) *currency.Currency {
	t.Helper()
	c, err := currency.NewCurrency(code, name, symbol)
	require.NoError(t, err)
	return c
}
