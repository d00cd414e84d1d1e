package currency_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	currencyapp "github.com/geoffkats/accounting-system/internal/application/currency"
	"github.com/geoffkats/accounting-system/internal/domain/currency"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"github.com/geoffkats/accounting-system/internal/infrastructure/persistence"
)

func newService(t *testing.T) *currencyapp.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&currency.Currency{}))

	repo := persistence.NewGormCurrencyRepository(db)
	ctx := context.Background()

	ugx, err := currency.NewCurrency("UGX", "Ugandan Shilling", "UGX")
	require.NoError(t, err)
	ugx.MarkAsBase()
	require.NoError(t, repo.Save(ctx, ugx))

	usd, err := currency.NewCurrency("USD", "US Dollar", "$")
	require.NoError(t, err)
	require.NoError(t, usd.SetExchangeRate(decimal.NewFromFloat(0.00027)))
	require.NoError(t, repo.Save(ctx, usd))

	return currencyapp.NewService(repo, zap.NewNop())
}

func TestServiceList(t *testing.T) {
	svc := newService(t)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "UGX", list[0].Code)
	assert.Equal(t, "USD", list[1].Code)
}

func TestServiceGetBase(t *testing.T) {
	svc := newService(t)

	base, err := svc.GetBase(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UGX", base.Code)
}

func TestServiceSetBase(t *testing.T) {
	ctx := context.Background()

	t.Run("reassigns and returns the new base", func(t *testing.T) {
		svc := newService(t)

		c, err := svc.SetBase(ctx, " usd ")
		require.NoError(t, err)
		assert.Equal(t, "USD", c.Code)
		assert.True(t, c.IsBase)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "USD", list[0].Code, "new base listed first")
	})

	t.Run("empty code", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.SetBase(ctx, "   ")
		var verr *shared.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.SetBase(ctx, "XXX")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		base, err := svc.GetBase(ctx)
		require.NoError(t, err)
		assert.Equal(t, "UGX", base.Code, "registry untouched")
	})
}
