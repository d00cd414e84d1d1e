package settings

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoffkats/accounting-system/internal/domain/shared"
)

func validCommand() *UpdateCommand {
	return &UpdateCommand{
		Currency:       "UGX",
		CurrencySymbol: "UGX",
		DateFormat:     "d/m/Y",
		Timezone:       "Africa/Kampala",
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateCommandValidate(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		assert.NoError(t, validCommand().Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		cmd := &UpdateCommand{}
		err := cmd.Validate()
		require.Error(t, err)

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{"currency", "currency_symbol", "date_format", "timezone"}, fields)
	})

	t.Run("invalid email", func(t *testing.T) {
		cmd := validCommand()
		cmd.CompanyEmail = strPtr("not-an-email")
		err := cmd.Validate()

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "company_email", verr.Fields[0].Field)
	})

	t.Run("empty email allowed", func(t *testing.T) {
		cmd := validCommand()
		cmd.CompanyEmail = strPtr("")
		assert.NoError(t, cmd.Validate())
	})

	t.Run("invalid timezone", func(t *testing.T) {
		cmd := validCommand()
		cmd.Timezone = "Mars/Olympus_Mons"
		err := cmd.Validate()

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "timezone", verr.Fields[0].Field)
	})

	t.Run("length limits", func(t *testing.T) {
		cmd := validCommand()
		cmd.CompanyName = strPtr(strings.Repeat("a", 256))
		cmd.CompanyPhone = strPtr(strings.Repeat("1", 51))
		err := cmd.Validate()

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 2)
	})

	t.Run("all violations reported together", func(t *testing.T) {
		cmd := &UpdateCommand{
			Currency:       "",
			CurrencySymbol: strings.Repeat("$", 11),
			DateFormat:     "d/m/Y",
			Timezone:       "Africa/Kampala",
		}
		cmd.CompanyEmail = strPtr("bogus")
		err := cmd.Validate()

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 3)
	})
}

func TestUpdateCommandApply(t *testing.T) {
	t.Run("nil pointers leave fields unchanged", func(t *testing.T) {
		s := NewCompanySetting()
		s.CompanyName = "Code Academy"
		s.CompanyEmail = "info@codeacademy.ug"

		cmd := validCommand()
		cmd.CompanyPhone = strPtr("+256 700 000000")
		cmd.Apply(s)

		assert.Equal(t, "Code Academy", s.CompanyName)
		assert.Equal(t, "info@codeacademy.ug", s.CompanyEmail)
		assert.Equal(t, "+256 700 000000", s.CompanyPhone)
	})

	t.Run("non-nil pointer overwrites with empty string", func(t *testing.T) {
		s := NewCompanySetting()
		s.TaxID = "TIN-1000"

		cmd := validCommand()
		cmd.TaxID = strPtr("")
		cmd.Apply(s)

		assert.Equal(t, "", s.TaxID)
	})

	t.Run("required fields always overwrite", func(t *testing.T) {
		s := NewCompanySetting()

		cmd := validCommand()
		cmd.Currency = "USD"
		cmd.CurrencySymbol = "$"
		cmd.Apply(s)

		assert.Equal(t, "USD", s.Currency)
		assert.Equal(t, "$", s.CurrencySymbol)
	})

	t.Run("fiscal year set and cleared", func(t *testing.T) {
		s := NewCompanySetting()
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)

		cmd := validCommand()
		cmd.FiscalYearStart = &start
		cmd.FiscalYearEnd = &end
		cmd.Apply(s)
		require.NotNil(t, s.FiscalYearStart)
		require.NotNil(t, s.FiscalYearEnd)

		cmd = validCommand()
		cmd.Apply(s)
		assert.NotNil(t, s.FiscalYearStart, "omitted fiscal year stays untouched")

		cmd = validCommand()
		cmd.ClearFiscalYearStart = true
		cmd.ClearFiscalYearEnd = true
		cmd.Apply(s)
		assert.Nil(t, s.FiscalYearStart)
		assert.Nil(t, s.FiscalYearEnd)
	})

	t.Run("lock before date set and cleared", func(t *testing.T) {
		s := NewCompanySetting()
		cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		cmd := validCommand()
		cmd.LockBeforeDate = &cutoff
		cmd.Apply(s)
		require.NotNil(t, s.LockBeforeDate)
		assert.True(t, s.LockBeforeDate.Equal(cutoff))

		cmd = validCommand()
		cmd.Apply(s)
		assert.NotNil(t, s.LockBeforeDate, "omitted lock date stays untouched")

		cmd = validCommand()
		cmd.ClearLockBeforeDate = true
		cmd.Apply(s)
		assert.Nil(t, s.LockBeforeDate)
	})
}
