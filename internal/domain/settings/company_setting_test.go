package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCompanySetting(t *testing.T) {
	s := NewCompanySetting()

	assert.NotEqual(t, "", s.ID.String())
	assert.Equal(t, DefaultCurrency, s.Currency)
	assert.Equal(t, DefaultCurrencySymbol, s.CurrencySymbol)
	assert.Equal(t, DefaultDateFormat, s.DateFormat)
	assert.Equal(t, DefaultTimezone, s.Timezone)
	assert.Equal(t, 1, s.SingletonKey)
	assert.False(t, s.HasLogo())
}

func TestCompanySettingLogo(t *testing.T) {
	s := NewCompanySetting()

	s.AttachLogo("logos/abc.png")
	assert.True(t, s.HasLogo())
	assert.Equal(t, "logos/abc.png", s.LogoPath)

	s.DetachLogo()
	assert.False(t, s.HasLogo())
	assert.Equal(t, "", s.LogoPath)
}

func TestCompanySettingIsLocked(t *testing.T) {
	s := NewCompanySetting()
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, s.IsLocked(cutoff.AddDate(0, -1, 0)), "no lock date set")

	s.LockBeforeDate = &cutoff
	assert.True(t, s.IsLocked(cutoff.AddDate(0, 0, -1)))
	assert.False(t, s.IsLocked(cutoff))
	assert.False(t, s.IsLocked(cutoff.AddDate(0, 1, 0)))
}
