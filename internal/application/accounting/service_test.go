package accounting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	accountingapp "github.com/geoffkats/accounting-system/internal/application/accounting"
	"github.com/geoffkats/accounting-system/internal/domain/accounting"
	"github.com/geoffkats/accounting-system/internal/infrastructure/persistence"
)

func newService(t *testing.T) *accountingapp.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&accounting.Account{}))

	repo := persistence.NewGormAccountRepository(db)
	ctx := context.Background()

	seed := []struct {
		code, name string
		accType    accounting.AccountType
	}{
		{"5100", "Rent Expense", accounting.AccountTypeExpense},
		{"1000", "Cash", accounting.AccountTypeAsset},
		{"4000", "Sales Revenue", accounting.AccountTypeIncome},
		{"1100", "Bank", accounting.AccountTypeAsset},
		{"2000", "Accounts Payable", accounting.AccountTypeLiability},
	}
	for _, s := range seed {
		a, err := accounting.NewAccount(s.code, s.name, s.accType, "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a))
	}

	return accountingapp.NewService(repo)
}

func TestServiceList(t *testing.T) {
	svc := newService(t)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "1000", list[0].Code)
	assert.Equal(t, "5100", list[4].Code)
}

func TestServiceListGrouped(t *testing.T) {
	svc := newService(t)

	groups, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 4, "equity has no accounts and is omitted")

	assert.Equal(t, accounting.AccountTypeAsset, groups[0].Type)
	require.Len(t, groups[0].Accounts, 2)
	assert.Equal(t, "1000", groups[0].Accounts[0].Code)
	assert.Equal(t, "1100", groups[0].Accounts[1].Code)

	assert.Equal(t, accounting.AccountTypeLiability, groups[1].Type)
	assert.Equal(t, accounting.AccountTypeIncome, groups[2].Type)
	assert.Equal(t, accounting.AccountTypeExpense, groups[3].Type)
}

func TestServiceGet(t *testing.T) {
	svc := newService(t)

	a, err := svc.Get(context.Background(), "1000")
	require.NoError(t, err)
	assert.Equal(t, "Cash", a.Name)

	_, err = svc.Get(context.Background(), "9999")
	assert.Error(t, err)
}
