package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/geoffkats/accounting-system/internal/domain/accounting"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAccountRepository implements accounting.Repository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

var _ accounting.Repository = (*GormAccountRepository)(nil)

// FindAll returns the chart of accounts ordered by code
func (r *GormAccountRepository) FindAll(ctx context.Context) ([]accounting.Account, error) {
	var accounts []accounting.Account
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// FindByCode finds an account by its code
func (r *GormAccountRepository) FindByCode(ctx context.Context, code string) (*accounting.Account, error) {
	var account accounting.Account
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.TrimSpace(code)).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Save creates or updates an account row
func (r *GormAccountRepository) Save(ctx context.Context, account *accounting.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}
