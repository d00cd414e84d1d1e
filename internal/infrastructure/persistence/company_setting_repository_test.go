package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoffkats/accounting-system/internal/domain/settings"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
)

func TestGormCompanySettingRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("FindFirst on empty table", func(t *testing.T) {
		repo := NewGormCompanySettingRepository(setupTestDB(t))

		_, err := repo.FindFirst(ctx)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("Save then FindFirst", func(t *testing.T) {
		repo := NewGormCompanySettingRepository(setupTestDB(t))

		record := settings.NewCompanySetting()
		record.CompanyName = "Code Academy"
		require.NoError(t, repo.Save(ctx, record))

		loaded, err := repo.FindFirst(ctx)
		require.NoError(t, err)
		assert.Equal(t, record.ID, loaded.ID)
		assert.Equal(t, "Code Academy", loaded.CompanyName)
		assert.Equal(t, 1, loaded.SingletonKey)
	})

	t.Run("Save updates in place", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCompanySettingRepository(db)

		record := settings.NewCompanySetting()
		record.CompanyName = "Before"
		record.TaxID = "TIN-1000"
		require.NoError(t, repo.Save(ctx, record))

		record.CompanyName = "After"
		record.TaxID = ""
		require.NoError(t, repo.Save(ctx, record))

		loaded, err := repo.FindFirst(ctx)
		require.NoError(t, err)
		assert.Equal(t, "After", loaded.CompanyName)
		assert.Equal(t, "", loaded.TaxID, "zero values are persisted too")

		var count int64
		require.NoError(t, db.Model(&settings.CompanySetting{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("singleton key rejects a second row", func(t *testing.T) {
		repo := NewGormCompanySettingRepository(setupTestDB(t))

		require.NoError(t, repo.Save(ctx, settings.NewCompanySetting()))
		assert.Error(t, repo.Save(ctx, settings.NewCompanySetting()))
	})
}
