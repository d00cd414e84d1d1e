package accounting

import (
	"strings"

	"github.com/geoffkats/accounting-system/internal/domain/shared"
)

// AccountType classifies a chart-of-accounts entry
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists the valid account types in reporting order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeIncome,
	AccountTypeExpense,
}

// Valid reports whether the account type is one of the known classifications.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// Account is a chart-of-accounts entry. Rows are reference data installed by
// the seeder; no mutation path exists outside it.
type Account struct {
	shared.BaseEntity
	Code        string      `gorm:"type:varchar(20);not null;uniqueIndex:idx_accounts_code" json:"code"`
	Name        string      `gorm:"type:varchar(200);not null" json:"name"`
	Type        AccountType `gorm:"type:varchar(20);not null;index" json:"type"`
	Description string      `gorm:"type:varchar(500)" json:"description"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a chart-of-accounts entry.
func NewAccount(code, name string, accountType AccountType, description string) (*Account, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Account code cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_NAME", "Account name cannot be empty")
	}
	if !accountType.Valid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Unknown account type: "+string(accountType))
	}

	return &Account{
		BaseEntity:  shared.NewBaseEntity(),
		Code:        code,
		Name:        name,
		Type:        accountType,
		Description: description,
	}, nil
}
