// Package seed installs the initial reference data: users, company settings,
// the currency registry, and the chart of accounts.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/geoffkats/accounting-system/internal/domain/accounting"
	"github.com/geoffkats/accounting-system/internal/domain/currency"
	"github.com/geoffkats/accounting-system/internal/domain/identity"
	"github.com/geoffkats/accounting-system/internal/domain/settings"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"go.uber.org/zap"
)

// Repositories groups everything the seeder writes to.
type Repositories struct {
	Settings settings.Repository
	Currency currency.Repository
	Account  accounting.Repository
	User     identity.Repository
}

// Seeder installs initial data. Every step is idempotent: rows that already
// exist are left alone, so the seeder can run on every deployment.
type Seeder struct {
	repos  Repositories
	logger *zap.Logger
}

// New creates a Seeder
func New(repos Repositories, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{repos: repos, logger: logger}
}

// Run executes all seeding steps.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	if err := s.seedCompanySettings(ctx); err != nil {
		return err
	}
	if err := s.seedCurrencies(ctx); err != nil {
		return err
	}
	return s.seedAccounts(ctx)
}

type userSeed struct {
	name     string
	email    string
	password string
	role     identity.Role
}

var userSeeds = []userSeed{
	{"Admin User", "admin@codeacademy.ug", "password", identity.RoleAdmin},
	{"Accountant User", "accountant@codeacademy.ug", "password", identity.RoleAccountant},
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	for _, u := range userSeeds {
		_, err := s.repos.User.FindByEmail(ctx, u.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		user, err := identity.NewUser(u.name, u.email, u.password, u.role)
		if err != nil {
			return err
		}
		if err := s.repos.User.Save(ctx, user); err != nil {
			return err
		}
		s.logger.Info("Seeded user", zap.String("email", u.email), zap.String("role", string(u.role)))
	}
	return nil
}

func (s *Seeder) seedCompanySettings(ctx context.Context) error {
	_, err := s.repos.Settings.FindFirst(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	now := time.Now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, time.UTC)

	record := settings.NewCompanySetting()
	record.CompanyName = "Code Academy Uganda"
	record.CompanyAddress = "Kampala, Uganda"
	record.CompanyPhone = "+256-XXX-XXXXXX"
	record.CompanyEmail = "info@codeacademy.ug"
	record.CompanyWebsite = "https://codeacademy.ug"
	record.FiscalYearStart = &yearStart
	record.FiscalYearEnd = &yearEnd

	if err := s.repos.Settings.Save(ctx, record); err != nil {
		return err
	}
	s.logger.Info("Seeded company settings", zap.String("company", record.CompanyName))
	return nil
}

type currencySeed struct {
	code   string
	name   string
	symbol string
	isBase bool
}

var currencySeeds = []currencySeed{
	{"UGX", "Ugandan Shilling", "UGX", true},
	{"USD", "US Dollar", "$", false},
	{"KES", "Kenyan Shilling", "KSh", false},
	{"EUR", "Euro", "€", false},
	{"GBP", "British Pound", "£", false},
}

func (s *Seeder) seedCurrencies(ctx context.Context) error {
	seeded := false
	for _, c := range currencySeeds {
		_, err := s.repos.Currency.FindByCode(ctx, c.code)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		cur, err := currency.NewCurrency(c.code, c.name, c.symbol)
		if err != nil {
			return err
		}
		if c.isBase {
			cur.MarkAsBase()
		}
		if err := s.repos.Currency.Save(ctx, cur); err != nil {
			return err
		}
		seeded = true
	}

	// The registry precondition: at least one currency must carry the base
	// flag before any reassignment happens.
	if _, err := s.repos.Currency.FindBase(ctx); err != nil {
		if !errors.Is(err, shared.ErrNoBaseCurrency) {
			return err
		}
		if err := s.repos.Currency.SetBase(ctx, "UGX"); err != nil {
			return err
		}
	}

	if seeded {
		s.logger.Info("Seeded currencies", zap.Int("count", len(currencySeeds)))
	}
	return nil
}

type accountSeed struct {
	code        string
	name        string
	accountType accounting.AccountType
	description string
}

var accountSeeds = []accountSeed{
	// Assets
	{"1000", "Cash", accounting.AccountTypeAsset, "Cash on hand"},
	{"1100", "Bank Account", accounting.AccountTypeAsset, "Bank deposits"},
	{"1200", "Accounts Receivable", accounting.AccountTypeAsset, "Money owed by customers"},
	// Liabilities
	{"2000", "Accounts Payable", accounting.AccountTypeLiability, "Money owed to vendors"},
	{"2100", "Loans Payable", accounting.AccountTypeLiability, "Outstanding loans"},
	// Equity
	{"3000", "Owner's Equity", accounting.AccountTypeEquity, "Owner's investment"},
	{"3100", "Retained Earnings", accounting.AccountTypeEquity, "Accumulated profits"},
	// Income
	{"4000", "Program Fees", accounting.AccountTypeIncome, "Revenue from programs"},
	{"4100", "Donations", accounting.AccountTypeIncome, "Donation income"},
	{"4200", "Grants", accounting.AccountTypeIncome, "Grant income"},
	// Expenses
	{"5000", "Salaries & Wages", accounting.AccountTypeExpense, "Staff compensation"},
	{"5100", "Rent", accounting.AccountTypeExpense, "Facility rent"},
	{"5200", "Utilities", accounting.AccountTypeExpense, "Electricity, water, internet"},
	{"5300", "Supplies", accounting.AccountTypeExpense, "Office and program supplies"},
	{"5400", "Marketing", accounting.AccountTypeExpense, "Marketing and advertising"},
	{"5500", "Training Materials", accounting.AccountTypeExpense, "Educational materials"},
	{"5600", "Equipment", accounting.AccountTypeExpense, "Computers and equipment"},
}

func (s *Seeder) seedAccounts(ctx context.Context) error {
	count := 0
	for _, a := range accountSeeds {
		_, err := s.repos.Account.FindByCode(ctx, a.code)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		account, err := accounting.NewAccount(a.code, a.name, a.accountType, a.description)
		if err != nil {
			return err
		}
		if err := s.repos.Account.Save(ctx, account); err != nil {
			return err
		}
		count++
	}

	if count > 0 {
		s.logger.Info("Seeded chart of accounts", zap.Int("count", count))
	}
	return nil
}
