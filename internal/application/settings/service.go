package settings

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/geoffkats/accounting-system/internal/domain/currency"
	"github.com/geoffkats/accounting-system/internal/domain/settings"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// logoURLExpiration bounds how long a generated logo download URL stays valid.
const logoURLExpiration = 24 * time.Hour

// allowedLogoContentTypes are the image types accepted for the company logo.
var allowedLogoContentTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// LogoUpload carries an uploaded logo image.
type LogoUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Service provides company settings operations: read, upsert, and the logo
// attachment lifecycle.
type Service struct {
	settingsRepo settings.Repository
	currencyRepo currency.Repository
	storage      ObjectStorageService
	logger       *zap.Logger
}

// NewService creates a settings Service.
func NewService(
	settingsRepo settings.Repository,
	currencyRepo currency.Repository,
	storage ObjectStorageService,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		settingsRepo: settingsRepo,
		currencyRepo: currencyRepo,
		storage:      storage,
		logger:       logger,
	}
}

// Get returns the company settings record, falling back to a defaults-filled
// value when none has been saved yet.
func (s *Service) Get(ctx context.Context) (*settings.CompanySetting, error) {
	record, err := s.settingsRepo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return settings.NewCompanySetting(), nil
		}
		return nil, err
	}
	return record, nil
}

// Update validates and applies a change set, optionally replacing the logo.
// The whole call is all-or-nothing: any validation failure leaves both the
// record and the blob store untouched. When a new logo is supplied it is
// stored before the record write; the previous blob is deleted only after the
// new reference is durable, and that delete is best-effort cleanup.
func (s *Service) Update(ctx context.Context, cmd settings.UpdateCommand, logo *LogoUpload) (*settings.CompanySetting, error) {
	verr := &shared.ValidationError{}
	if err := cmd.Validate(); err != nil {
		var v *shared.ValidationError
		if errors.As(err, &v) {
			verr.Fields = append(verr.Fields, v.Fields...)
		} else {
			return nil, err
		}
	}
	if logo != nil {
		validateLogo(logo, verr)
	}
	if verr.HasErrors() {
		return nil, verr
	}

	record, err := s.settingsRepo.FindFirst(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		record = settings.NewCompanySetting()
	}

	cmd.Apply(record)

	oldLogoPath := ""
	if logo != nil {
		key := logoStorageKey(logo)
		if err := s.storage.Upload(ctx, key, logo.Data, logo.ContentType); err != nil {
			s.logger.Error("Failed to store company logo", zap.String("key", key), zap.Error(err))
			return nil, shared.ErrStorageFailure
		}
		oldLogoPath = record.LogoPath
		record.AttachLogo(key)
	}

	if err := s.settingsRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	if oldLogoPath != "" {
		s.deleteLogoBlob(ctx, oldLogoPath)
	}

	return record, nil
}

// ReplaceLogo stores a new logo and attaches it to the settings record,
// leaving every other field untouched. The previous blob is deleted after the
// new reference is durable, best-effort.
func (s *Service) ReplaceLogo(ctx context.Context, logo *LogoUpload) (*settings.CompanySetting, error) {
	if logo == nil {
		return nil, shared.NewValidationError("logo", "file is required")
	}
	verr := &shared.ValidationError{}
	validateLogo(logo, verr)
	if verr.HasErrors() {
		return nil, verr
	}

	record, err := s.settingsRepo.FindFirst(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		record = settings.NewCompanySetting()
	}

	key := logoStorageKey(logo)
	if err := s.storage.Upload(ctx, key, logo.Data, logo.ContentType); err != nil {
		s.logger.Error("Failed to store company logo", zap.String("key", key), zap.Error(err))
		return nil, shared.ErrStorageFailure
	}

	oldLogoPath := record.LogoPath
	record.AttachLogo(key)
	if err := s.settingsRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	if oldLogoPath != "" {
		s.deleteLogoBlob(ctx, oldLogoPath)
	}
	return record, nil
}

// RemoveLogo deletes the stored logo blob and clears the reference. It is a
// no-op when no record or no logo exists.
func (s *Service) RemoveLogo(ctx context.Context) error {
	record, err := s.settingsRepo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if !record.HasLogo() {
		return nil
	}

	s.deleteLogoBlob(ctx, record.LogoPath)
	record.DetachLogo()
	return s.settingsRepo.Save(ctx, record)
}

// LogoURL resolves a download URL for the current logo. It returns an empty
// string when no logo is attached.
func (s *Service) LogoURL(ctx context.Context) (string, error) {
	record, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	if !record.HasLogo() {
		return "", nil
	}
	url, _, err := s.storage.GenerateDownloadURL(ctx, record.LogoPath, logoURLExpiration)
	if err != nil {
		return "", err
	}
	return url, nil
}

// CompanyProfile is the read model handed to presentation: the settings
// record plus the currency registry state.
type CompanyProfile struct {
	Settings     *settings.CompanySetting `json:"settings"`
	LogoURL      string                   `json:"logo_url,omitempty"`
	Currencies   []currency.Currency      `json:"currencies"`
	BaseCurrency *currency.Currency       `json:"base_currency,omitempty"`
}

// Profile assembles the company profile read model.
func (s *Service) Profile(ctx context.Context) (*CompanyProfile, error) {
	record, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	currencies, err := s.currencyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	profile := &CompanyProfile{
		Settings:   record,
		Currencies: currencies,
	}

	base, err := s.currencyRepo.FindBase(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNoBaseCurrency) {
			return nil, err
		}
		// Seed data is expected to guarantee a base currency; tolerate its
		// absence in the read model instead of failing the whole page.
		s.logger.Warn("No base currency configured")
	} else {
		profile.BaseCurrency = base
	}

	if record.HasLogo() {
		url, _, err := s.storage.GenerateDownloadURL(ctx, record.LogoPath, logoURLExpiration)
		if err != nil {
			s.logger.Warn("Failed to resolve logo URL", zap.String("key", record.LogoPath), zap.Error(err))
		} else {
			profile.LogoURL = url
		}
	}

	return profile, nil
}

// deleteLogoBlob removes a stored logo, logging instead of failing: blob
// cleanup is never allowed to abort the surrounding operation.
func (s *Service) deleteLogoBlob(ctx context.Context, key string) {
	exists, err := s.storage.ObjectExists(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to check logo existence before delete", zap.String("key", key), zap.Error(err))
	} else if !exists {
		return
	}
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		s.logger.Warn("Failed to delete old logo", zap.String("key", key), zap.Error(err))
	}
}

func validateLogo(logo *LogoUpload, verr *shared.ValidationError) {
	if len(logo.Data) == 0 {
		verr.Add("logo", "file is empty")
		return
	}
	if len(logo.Data) > settings.MaxLogoSize {
		verr.Add("logo", "must be at most 2MB")
	}
	if _, ok := allowedLogoContentTypes[normalizeContentType(logo.ContentType)]; !ok {
		verr.Add("logo", "must be a PNG, JPEG, GIF, WebP or SVG image")
	}
}

func logoStorageKey(logo *LogoUpload) string {
	ext := allowedLogoContentTypes[normalizeContentType(logo.ContentType)]
	if ext == "" {
		ext = path.Ext(logo.FileName)
	}
	return fmt.Sprintf("logos/%s%s", uuid.New().String(), ext)
}

func normalizeContentType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
