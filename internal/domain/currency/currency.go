package currency

import (
	"strings"

	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Currency is a registered currency. Exactly one currency carries the base
// flag; consolidated reports and dashboards are denominated in it.
type Currency struct {
	shared.BaseEntity
	Code         string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_currencies_code" json:"code"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	Symbol       string          `gorm:"type:varchar(10);not null" json:"symbol"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(18,6);not null;default:1" json:"exchange_rate"`
	IsBase       bool            `gorm:"not null;default:false;index:idx_currencies_one_base,unique,where:is_base" json:"is_base"`
	IsActive     bool            `gorm:"not null;default:true" json:"is_active"`
}

// TableName returns the table name for GORM
func (Currency) TableName() string {
	return "currencies"
}

// NewCurrency creates a currency with a normalized code.
func NewCurrency(code, name, symbol string) (*Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CURRENCY_CODE", "Currency code cannot be empty")
	}
	if len(code) > 10 {
		return nil, shared.NewDomainError("INVALID_CURRENCY_CODE", "Currency code must be at most 10 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CURRENCY_NAME", "Currency name cannot be empty")
	}
	if symbol == "" {
		symbol = code
	}

	return &Currency{
		BaseEntity:   shared.NewBaseEntity(),
		Code:         code,
		Name:         name,
		Symbol:       symbol,
		ExchangeRate: decimal.NewFromInt(1),
		IsActive:     true,
	}, nil
}

// MarkAsBase flags the currency as the base currency and activates it.
func (c *Currency) MarkAsBase() {
	c.IsBase = true
	c.IsActive = true
	c.ExchangeRate = decimal.NewFromInt(1)
	c.Touch()
}

// SetExchangeRate updates the rate expressed in base-currency units per unit
// of this currency.
func (c *Currency) SetExchangeRate(rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_EXCHANGE_RATE", "Exchange rate must be positive")
	}
	c.ExchangeRate = rate
	c.Touch()
	return nil
}
