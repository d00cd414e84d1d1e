package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/geoffkats/accounting-system/internal/domain/currency"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCurrencyRepository implements currency.Repository using GORM
type GormCurrencyRepository struct {
	db *gorm.DB
}

// NewGormCurrencyRepository creates a new GormCurrencyRepository
func NewGormCurrencyRepository(db *gorm.DB) *GormCurrencyRepository {
	return &GormCurrencyRepository{db: db}
}

var _ currency.Repository = (*GormCurrencyRepository)(nil)

// FindAll returns every currency ordered base-first, then by code
func (r *GormCurrencyRepository) FindAll(ctx context.Context) ([]currency.Currency, error) {
	var currencies []currency.Currency
	if err := r.db.WithContext(ctx).
		Order("is_base DESC").
		Order("code ASC").
		Find(&currencies).Error; err != nil {
		return nil, err
	}
	return currencies, nil
}

// FindByCode finds a currency by its code
func (r *GormCurrencyRepository) FindByCode(ctx context.Context, code string) (*currency.Currency, error) {
	var c currency.Currency
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindBase returns the currency flagged as base
func (r *GormCurrencyRepository) FindBase(ctx context.Context) (*currency.Currency, error) {
	var c currency.Currency
	if err := r.db.WithContext(ctx).
		Where("is_base = ?", true).
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNoBaseCurrency
		}
		return nil, err
	}
	return &c, nil
}

// baseCurrencyLockID keys the advisory lock serializing base reassignments.
const baseCurrencyLockID = 4911001

// SetBase reassigns the base flag inside one transaction. On Postgres an
// advisory lock serializes concurrent reassignments: row locks alone are not
// enough, because two transactions reassigning different codes would each
// clear against a statement snapshot that misses the other's new base flag.
// The target is validated before the old flag is cleared, so an unknown code
// mutates nothing. The partial unique index on is_base backs the invariant at
// the schema level.
func (r *GormCurrencyRepository) SetBase(ctx context.Context, code string) error {
	code = strings.ToUpper(code)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", baseCurrencyLockID).Error; err != nil {
				return err
			}
		}

		var found currency.Currency
		if err := tx.Model(&currency.Currency{}).Where("code = ?", code).First(&found).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		now := time.Now()
		if err := tx.Model(&currency.Currency{}).
			Where("is_base = ?", true).
			Updates(map[string]interface{}{
				"is_base":    false,
				"updated_at": now,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&currency.Currency{}).
			Where("id = ?", found.ID).
			Updates(map[string]interface{}{
				"is_base":       true,
				"is_active":     true,
				"exchange_rate": 1,
				"updated_at":    now,
			}).Error
	})
}

// Save creates or updates a currency row
func (r *GormCurrencyRepository) Save(ctx context.Context, c *currency.Currency) error {
	return r.db.WithContext(ctx).Save(c).Error
}
