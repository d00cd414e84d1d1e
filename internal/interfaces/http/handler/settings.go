package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	settingsapp "github.com/geoffkats/accounting-system/internal/application/settings"
	"github.com/geoffkats/accounting-system/internal/domain/settings"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"github.com/geoffkats/accounting-system/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// SettingsHandler handles company settings endpoints
type SettingsHandler struct {
	BaseHandler
	service *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// RegisterRoutes registers the settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/settings")
	group.GET("/company", h.GetCompany)
	group.PUT("/company", h.UpdateCompany)
	group.POST("/company/logo", h.UploadLogo)
	group.DELETE("/company/logo", h.RemoveLogo)
}

// UpdateCompanySettingsRequest is the JSON body for a settings update.
// Pointer fields distinguish "omitted" (left unchanged) from "set to empty".
type UpdateCompanySettingsRequest struct {
	CompanyName    *string `json:"company_name"`
	CompanyEmail   *string `json:"company_email"`
	CompanyPhone   *string `json:"company_phone"`
	CompanyAddress *string `json:"company_address"`
	CompanyWebsite *string `json:"company_website"`
	TaxID          *string `json:"tax_id"`

	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
	DateFormat     string `json:"date_format"`
	Timezone       string `json:"timezone"`

	FiscalYearStart *string `json:"fiscal_year_start"`
	FiscalYearEnd   *string `json:"fiscal_year_end"`
	LockBeforeDate  *string `json:"lock_before_date"`
}

// GetCompany returns the company profile read model: the settings record,
// the currency registry, and the base currency.
func (h *SettingsHandler) GetCompany(c *gin.Context) {
	profile, err := h.service.Profile(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// UpdateCompany upserts the company settings. It accepts a JSON body, or a
// multipart form when a logo file accompanies the update. The whole request
// is all-or-nothing.
func (h *SettingsHandler) UpdateCompany(c *gin.Context) {
	var (
		cmd  settings.UpdateCommand
		logo *settingsapp.LogoUpload
	)

	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		parsed, upload, err := h.parseMultipart(c)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		cmd, logo = parsed, upload
	} else {
		var req UpdateCompanySettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
			return
		}
		parsed, err := req.toCommand()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		cmd = parsed
	}

	record, err := h.service.Update(c.Request.Context(), cmd, logo)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// UploadLogo replaces the company logo without touching any other field. The
// multipart form must carry the image under the "logo" field.
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		h.HandleError(c, shared.NewValidationError("logo", "file is required"))
		return
	}
	logo, err := readLogoFile(fileHeader)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	record, err := h.service.ReplaceLogo(c.Request.Context(), logo)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// RemoveLogo deletes the stored company logo. Removing an absent logo is not
// an error.
func (h *SettingsHandler) RemoveLogo(c *gin.Context) {
	if err := h.service.RemoveLogo(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (r *UpdateCompanySettingsRequest) toCommand() (settings.UpdateCommand, error) {
	cmd := settings.UpdateCommand{
		CompanyName:    r.CompanyName,
		CompanyEmail:   r.CompanyEmail,
		CompanyPhone:   r.CompanyPhone,
		CompanyAddress: r.CompanyAddress,
		CompanyWebsite: r.CompanyWebsite,
		TaxID:          r.TaxID,
		Currency:       r.Currency,
		CurrencySymbol: r.CurrencySymbol,
		DateFormat:     r.DateFormat,
		Timezone:       r.Timezone,
	}

	verr := &shared.ValidationError{}
	parseDate(r.FiscalYearStart, "fiscal_year_start", &cmd.FiscalYearStart, &cmd.ClearFiscalYearStart, verr)
	parseDate(r.FiscalYearEnd, "fiscal_year_end", &cmd.FiscalYearEnd, &cmd.ClearFiscalYearEnd, verr)
	parseDate(r.LockBeforeDate, "lock_before_date", &cmd.LockBeforeDate, &cmd.ClearLockBeforeDate, verr)
	if verr.HasErrors() {
		return cmd, verr
	}
	return cmd, nil
}

// parseDate handles the three states of an optional date field: omitted (nil,
// unchanged), empty string (clear, when clearable), and a concrete date.
func parseDate(raw *string, field string, dst **time.Time, clear *bool, verr *shared.ValidationError) {
	if raw == nil {
		return
	}
	if *raw == "" {
		if clear != nil {
			*clear = true
		}
		return
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		verr.Add(field, "must be a date in YYYY-MM-DD format")
		return
	}
	*dst = &t
}

func (h *SettingsHandler) parseMultipart(c *gin.Context) (settings.UpdateCommand, *settingsapp.LogoUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return settings.UpdateCommand{}, nil, shared.NewValidationError("form", "malformed multipart form")
	}

	field := func(name string) *string {
		if values, ok := form.Value[name]; ok && len(values) > 0 {
			v := values[0]
			return &v
		}
		return nil
	}
	required := func(name string) string {
		if v := field(name); v != nil {
			return *v
		}
		return ""
	}

	req := UpdateCompanySettingsRequest{
		CompanyName:     field("company_name"),
		CompanyEmail:    field("company_email"),
		CompanyPhone:    field("company_phone"),
		CompanyAddress:  field("company_address"),
		CompanyWebsite:  field("company_website"),
		TaxID:           field("tax_id"),
		Currency:        required("currency"),
		CurrencySymbol:  required("currency_symbol"),
		DateFormat:      required("date_format"),
		Timezone:        required("timezone"),
		FiscalYearStart: field("fiscal_year_start"),
		FiscalYearEnd:   field("fiscal_year_end"),
		LockBeforeDate:  field("lock_before_date"),
	}

	cmd, err := req.toCommand()
	if err != nil {
		return cmd, nil, err
	}

	var logo *settingsapp.LogoUpload
	if files, ok := form.File["logo"]; ok && len(files) > 0 {
		logo, err = readLogoFile(files[0])
		if err != nil {
			return cmd, nil, err
		}
	}

	return cmd, logo, nil
}

func readLogoFile(header *multipart.FileHeader) (*settingsapp.LogoUpload, error) {
	f, err := header.Open()
	if err != nil {
		return nil, shared.NewValidationError("logo", "could not read uploaded file")
	}
	defer f.Close()

	// Read one byte past the limit so the service can reject oversized files
	// without the handler buffering arbitrarily large uploads.
	data, err := io.ReadAll(io.LimitReader(f, settings.MaxLogoSize+1))
	if err != nil {
		return nil, shared.NewValidationError("logo", "could not read uploaded file")
	}

	return &settingsapp.LogoUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
