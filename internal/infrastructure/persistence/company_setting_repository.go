package persistence

import (
	"context"
	"errors"

	"github.com/geoffkats/accounting-system/internal/domain/settings"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCompanySettingRepository implements settings.Repository using GORM
type GormCompanySettingRepository struct {
	db *gorm.DB
}

// NewGormCompanySettingRepository creates a new GormCompanySettingRepository
func NewGormCompanySettingRepository(db *gorm.DB) *GormCompanySettingRepository {
	return &GormCompanySettingRepository{db: db}
}

var _ settings.Repository = (*GormCompanySettingRepository)(nil)

// FindFirst returns the settings singleton row
func (r *GormCompanySettingRepository) FindFirst(ctx context.Context) (*settings.CompanySetting, error) {
	var record settings.CompanySetting
	if err := r.db.WithContext(ctx).Order("created_at").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Save creates the row if absent or updates it in place. Save persists every
// column so that fields cleared to their zero value are written too.
func (r *GormCompanySettingRepository) Save(ctx context.Context, setting *settings.CompanySetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}
