package settings

import (
	"time"

	"github.com/geoffkats/accounting-system/internal/domain/shared"
)

// Defaults applied when no company settings record exists yet.
const (
	DefaultCurrency       = "UGX"
	DefaultCurrencySymbol = "UGX"
	DefaultDateFormat     = "d/m/Y"
	DefaultTimezone       = "Africa/Kampala"
)

// MaxLogoSize is the upper bound for an uploaded company logo.
const MaxLogoSize = 2 << 20 // 2MB

// CompanySetting is the single company configuration record.
// At most one row exists; the singleton_key unique index enforces that at the
// schema level rather than in application code.
type CompanySetting struct {
	shared.BaseEntity
	SingletonKey    int        `gorm:"not null;default:1;uniqueIndex:idx_company_settings_singleton" json:"-"`
	CompanyName     string     `gorm:"type:varchar(255)" json:"company_name"`
	CompanyEmail    string     `gorm:"type:varchar(255)" json:"company_email"`
	CompanyPhone    string     `gorm:"type:varchar(50)" json:"company_phone"`
	CompanyAddress  string     `gorm:"type:varchar(500)" json:"company_address"`
	CompanyWebsite  string     `gorm:"type:varchar(255)" json:"company_website"`
	TaxID           string     `gorm:"type:varchar(100)" json:"tax_id"`
	Currency        string     `gorm:"type:varchar(10);not null;default:'UGX'" json:"currency"`
	CurrencySymbol  string     `gorm:"type:varchar(10);not null;default:'UGX'" json:"currency_symbol"`
	DateFormat      string     `gorm:"type:varchar(50);not null;default:'d/m/Y'" json:"date_format"`
	Timezone        string     `gorm:"type:varchar(100);not null;default:'Africa/Kampala'" json:"timezone"`
	FiscalYearStart *time.Time `json:"fiscal_year_start,omitempty"`
	FiscalYearEnd   *time.Time `json:"fiscal_year_end,omitempty"`
	LockBeforeDate  *time.Time `json:"lock_before_date,omitempty"`
	LogoPath        string     `gorm:"type:varchar(500)" json:"logo_path,omitempty"`
}

// TableName returns the table name for GORM
func (CompanySetting) TableName() string {
	return "company_settings"
}

// NewCompanySetting creates a settings record populated with defaults.
func NewCompanySetting() *CompanySetting {
	return &CompanySetting{
		BaseEntity:     shared.NewBaseEntity(),
		SingletonKey:   1,
		Currency:       DefaultCurrency,
		CurrencySymbol: DefaultCurrencySymbol,
		DateFormat:     DefaultDateFormat,
		Timezone:       DefaultTimezone,
	}
}

// HasLogo reports whether a logo is currently attached.
func (s *CompanySetting) HasLogo() bool {
	return s.LogoPath != ""
}

// AttachLogo records the stored blob reference for the company logo.
func (s *CompanySetting) AttachLogo(path string) {
	s.LogoPath = path
	s.Touch()
}

// DetachLogo clears the logo reference.
func (s *CompanySetting) DetachLogo() {
	s.LogoPath = ""
	s.Touch()
}

// IsLocked reports whether postings dated at t fall before the period lock.
func (s *CompanySetting) IsLocked(t time.Time) bool {
	return s.LockBeforeDate != nil && t.Before(*s.LockBeforeDate)
}
