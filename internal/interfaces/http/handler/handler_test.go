package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	accountingapp "github.com/geoffkats/accounting-system/internal/application/accounting"
	currencyapp "github.com/geoffkats/accounting-system/internal/application/currency"
	settingsapp "github.com/geoffkats/accounting-system/internal/application/settings"
	"github.com/geoffkats/accounting-system/internal/domain/accounting"
	"github.com/geoffkats/accounting-system/internal/domain/currency"
	"github.com/geoffkats/accounting-system/internal/domain/settings"
	"github.com/geoffkats/accounting-system/internal/infrastructure/persistence"
	"github.com/geoffkats/accounting-system/internal/infrastructure/storage"
	"github.com/geoffkats/accounting-system/internal/interfaces/http/dto"
)

type testEnv struct {
	router  *gin.Engine
	storage *storage.MemoryObjectStorage
	db      *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&settings.CompanySetting{},
		&currency.Currency{},
		&accounting.Account{},
	))

	settingsRepo := persistence.NewGormCompanySettingRepository(db)
	currencyRepo := persistence.NewGormCurrencyRepository(db)
	accountRepo := persistence.NewGormAccountRepository(db)
	store := storage.NewMemoryObjectStorage()

	settingsService := settingsapp.NewService(settingsRepo, currencyRepo, store, zap.NewNop())
	currencyService := currencyapp.NewService(currencyRepo, zap.NewNop())
	accountingService := accountingapp.NewService(accountRepo)

	router := gin.New()
	api := router.Group("/api/v1")
	NewSettingsHandler(settingsService).RegisterRoutes(api)
	NewCurrencyHandler(currencyService).RegisterRoutes(api)
	NewAccountHandler(accountingService).RegisterRoutes(api)

	return &testEnv{router: router, storage: store, db: db}
}

func (e *testEnv) seedCurrencies(t *testing.T) {
	t.Helper()
	repo := persistence.NewGormCurrencyRepository(e.db)
	ctx := context.Background()

	ugx, err := currency.NewCurrency("UGX", "Ugandan Shilling", "UGX")
	require.NoError(t, err)
	ugx.MarkAsBase()
	require.NoError(t, repo.Save(ctx, ugx))

	usd, err := currency.NewCurrency("USD", "US Dollar", "$")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, usd))
}

func (e *testEnv) seedAccounts(t *testing.T) {
	t.Helper()
	repo := persistence.NewGormAccountRepository(e.db)
	ctx := context.Background()

	for _, s := range []struct {
		code, name string
		accType    accounting.AccountType
	}{
		{"1000", "Cash", accounting.AccountTypeAsset},
		{"4000", "Program Fees", accounting.AccountTypeIncome},
	} {
		a, err := accounting.NewAccount(s.code, s.name, s.accType, "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a))
	}
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp dto.Response
	if w.Code != http.StatusNoContent {
		body, err := io.ReadAll(w.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &resp))
	}
	return w, resp
}
