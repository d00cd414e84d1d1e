package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UpdateCommand carries a validated change set for the company settings
// record. Nil pointer fields are left unchanged by Apply; non-nil pointers
// overwrite, including overwriting with the empty string.
type UpdateCommand struct {
	CompanyName    *string
	CompanyEmail   *string
	CompanyPhone   *string
	CompanyAddress *string
	CompanyWebsite *string
	TaxID          *string

	Currency       string
	CurrencySymbol string
	DateFormat     string
	Timezone       string

	FiscalYearStart      *time.Time
	FiscalYearEnd        *time.Time
	ClearFiscalYearStart bool
	ClearFiscalYearEnd   bool

	LockBeforeDate      *time.Time
	ClearLockBeforeDate bool
}

// Validate checks field constraints. It returns a ValidationError naming
// every offending field, or nil when the command is well-formed.
func (c *UpdateCommand) Validate() error {
	verr := &shared.ValidationError{}

	checkLen := func(field string, value *string, max int) {
		if value != nil && len(*value) > max {
			verr.Add(field, "must be at most "+strconv.Itoa(max)+" characters")
		}
	}

	checkLen("company_name", c.CompanyName, 255)
	checkLen("company_phone", c.CompanyPhone, 50)
	checkLen("company_address", c.CompanyAddress, 500)
	checkLen("company_website", c.CompanyWebsite, 255)
	checkLen("tax_id", c.TaxID, 100)

	if c.CompanyEmail != nil && *c.CompanyEmail != "" {
		if len(*c.CompanyEmail) > 255 {
			verr.Add("company_email", "must be at most 255 characters")
		} else if err := validate.Var(*c.CompanyEmail, "email"); err != nil {
			verr.Add("company_email", "must be a valid email address")
		}
	}

	if strings.TrimSpace(c.Currency) == "" {
		verr.Add("currency", "is required")
	} else if len(c.Currency) > 10 {
		verr.Add("currency", "must be at most 10 characters")
	}
	if strings.TrimSpace(c.CurrencySymbol) == "" {
		verr.Add("currency_symbol", "is required")
	} else if len(c.CurrencySymbol) > 10 {
		verr.Add("currency_symbol", "must be at most 10 characters")
	}
	if strings.TrimSpace(c.DateFormat) == "" {
		verr.Add("date_format", "is required")
	} else if len(c.DateFormat) > 50 {
		verr.Add("date_format", "must be at most 50 characters")
	}
	if strings.TrimSpace(c.Timezone) == "" {
		verr.Add("timezone", "is required")
	} else if len(c.Timezone) > 100 {
		verr.Add("timezone", "must be at most 100 characters")
	} else if _, err := time.LoadLocation(c.Timezone); err != nil {
		verr.Add("timezone", "must be a valid timezone")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// Apply writes the command onto the settings record. Validation must have
// succeeded before Apply is called.
func (c *UpdateCommand) Apply(s *CompanySetting) {
	setIf := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setIf(&s.CompanyName, c.CompanyName)
	setIf(&s.CompanyEmail, c.CompanyEmail)
	setIf(&s.CompanyPhone, c.CompanyPhone)
	setIf(&s.CompanyAddress, c.CompanyAddress)
	setIf(&s.CompanyWebsite, c.CompanyWebsite)
	setIf(&s.TaxID, c.TaxID)

	s.Currency = c.Currency
	s.CurrencySymbol = c.CurrencySymbol
	s.DateFormat = c.DateFormat
	s.Timezone = c.Timezone

	if c.ClearFiscalYearStart {
		s.FiscalYearStart = nil
	} else if c.FiscalYearStart != nil {
		s.FiscalYearStart = c.FiscalYearStart
	}
	if c.ClearFiscalYearEnd {
		s.FiscalYearEnd = nil
	} else if c.FiscalYearEnd != nil {
		s.FiscalYearEnd = c.FiscalYearEnd
	}

	if c.ClearLockBeforeDate {
		s.LockBeforeDate = nil
	} else if c.LockBeforeDate != nil {
		s.LockBeforeDate = c.LockBeforeDate
	}

	s.Touch()
}
