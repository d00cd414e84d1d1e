package accounting

import (
	"context"

	"github.com/geoffkats/accounting-system/internal/domain/accounting"
)

// Service provides read access to the chart of accounts.
type Service struct {
	repo accounting.Repository
}

// NewService creates an accounting Service.
func NewService(repo accounting.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the chart of accounts ordered by code.
func (s *Service) List(ctx context.Context) ([]accounting.Account, error) {
	return s.repo.FindAll(ctx)
}

// AccountGroup holds the accounts of one classification.
type AccountGroup struct {
	Type     accounting.AccountType `json:"type"`
	Accounts []accounting.Account   `json:"accounts"`
}

// ListGrouped returns the chart of accounts grouped by type, types in
// reporting order (assets first, expenses last), accounts ordered by code.
func (s *Service) ListGrouped(ctx context.Context) ([]AccountGroup, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[accounting.AccountType][]accounting.Account)
	for _, a := range accounts {
		byType[a.Type] = append(byType[a.Type], a)
	}

	groups := make([]AccountGroup, 0, len(accounting.AccountTypes))
	for _, t := range accounting.AccountTypes {
		if entries, ok := byType[t]; ok {
			groups = append(groups, AccountGroup{Type: t, Accounts: entries})
		}
	}
	return groups, nil
}

// Get returns a single account by code.
func (s *Service) Get(ctx context.Context, code string) (*accounting.Account, error) {
	return s.repo.FindByCode(ctx, code)
}
