package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoffkats/accounting-system/internal/domain/accounting"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
)

func TestGormAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormAccountRepository(setupTestDB(t))

	cash, err := accounting.NewAccount("1000", "Cash", accounting.AccountTypeAsset, "Cash on hand")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, cash))

	sales, err := accounting.NewAccount("4000", "Sales Revenue", accounting.AccountTypeIncome, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, sales))

	t.Run("FindAll ordered by code", func(t *testing.T) {
		list, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "1000", list[0].Code)
		assert.Equal(t, "4000", list[1].Code)
	})

	t.Run("FindByCode", func(t *testing.T) {
		a, err := repo.FindByCode(ctx, " 1000 ")
		require.NoError(t, err)
		assert.Equal(t, "Cash", a.Name)

		_, err = repo.FindByCode(ctx, "9999")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
