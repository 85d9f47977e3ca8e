package service

import (
	"context"

	"github.com/quickquid/quickquid-api/internal/models"
)

// BranchLister serves the branch directory read model.
type BranchLister interface {
	List(ctx context.Context) ([]models.BankBranch, error)
}

// HistoryStore serves the per-account transaction history read model.
type HistoryStore interface {
	ListByAccount(ctx context.Context, accountNumber string) ([]models.TransactionView, error)
}

// BranchListCache holds the cached branch-list view.
type BranchListCache interface {
	GetBranchList(ctx context.Context) ([]models.BankBranch, bool)
	SetBranchList(ctx context.Context, branches []models.BankBranch)
}

// LookupService serves the read side: the branch directory and per-account
// transaction history.
type LookupService struct {
	branches    BranchLister
	accounts    AccountFinder
	history     HistoryStore
	branchCache BranchListCache
}

func NewLookupService(branches BranchLister, accounts AccountFinder, history HistoryStore, branchCache BranchListCache) *LookupService {
	return &LookupService{
		branches:    branches,
		accounts:    accounts,
		history:     history,
		branchCache: branchCache,
	}
}

// ListBranches returns every registered branch, preferring the cached view
// and warming it on a miss.
func (s *LookupService) ListBranches(ctx context.Context) ([]models.BankBranch, error) {
	if s.branchCache != nil {
		if branches, ok := s.branchCache.GetBranchList(ctx); ok {
			return branches, nil
		}
	}
	branches, err := s.branches.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.branchCache != nil {
		s.branchCache.SetBranchList(ctx, branches)
	}
	return branches, nil
}

// AccountHistory lists every transaction the account sent or received. The
// account must exist; unknown account numbers are a request-level error, not
// an empty result.
func (s *LookupService) AccountHistory(ctx context.Context, accountNumber string) ([]models.TransactionView, error) {
	if _, err := s.accounts.FindByNumber(ctx, accountNumber); err != nil {
		return nil, err
	}
	return s.history.ListByAccount(ctx, accountNumber)
}
