package currency

import (
	"context"
	"strings"

	"github.com/geoffkats/accounting-system/internal/domain/currency"
	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"go.uber.org/zap"
)

// Service provides currency registry operations.
type Service struct {
	repo   currency.Repository
	logger *zap.Logger
}

// NewService creates a currency Service.
func NewService(repo currency.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// List returns all currencies ordered base-first, then by code.
func (s *Service) List(ctx context.Context) ([]currency.Currency, error) {
	return s.repo.FindAll(ctx)
}

// GetBase returns the base currency.
func (s *Service) GetBase(ctx context.Context) (*currency.Currency, error) {
	return s.repo.FindBase(ctx)
}

// SetBase reassigns the base currency. An unknown code fails with
// shared.ErrNotFound and leaves the registry untouched; the repository runs
// the clear-and-set as one transaction so exactly one currency ends up base.
func (s *Service) SetBase(ctx context.Context, code string) (*currency.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewValidationError("code", "is required")
	}

	if err := s.repo.SetBase(ctx, code); err != nil {
		return nil, err
	}

	s.logger.Info("Base currency changed", zap.String("code", code))
	return s.repo.FindByCode(ctx, code)
}
