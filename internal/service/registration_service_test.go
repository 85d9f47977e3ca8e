package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/quickquid/quickquid-api/internal/models"
)

// ---- fakes ----

type fakePersonStore struct {
	createFn func(ctx context.Context, firstName, lastName string) (*models.Person, error)
	findFn   func(ctx context.Context, firstName, lastName string) (*models.Person, error)
}

func (f *fakePersonStore) Create(ctx context.Context, firstName, lastName string) (*models.Person, error) {
	if f.createFn != nil {
		return f.createFn(ctx, firstName, lastName)
	}
	return nil, fmt.Errorf("not configured")
}

func (f *fakePersonStore) FindByName(ctx context.Context, firstName, lastName string) (*models.Person, error) {
	if f.findFn != nil {
		return f.findFn(ctx, firstName, lastName)
	}
	return nil, fmt.Errorf("not configured")
}

type fakeBranchStore struct {
	createFn func(ctx context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error)
	findFn   func(ctx context.Context, bankName string) (*models.BankBranch, error)
	listFn   func(ctx context.Context) ([]models.BankBranch, error)
}

func (f *fakeBranchStore) Create(ctx context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error) {
	if f.createFn != nil {
		return f.createFn(ctx, bankName, branchName, bankAddress)
	}
	return nil, fmt.Errorf("not configured")
}

func (f *fakeBranchStore) FindByBankName(ctx context.Context, bankName string) (*models.BankBranch, error) {
	if f.findFn != nil {
		return f.findFn(ctx, bankName)
	}
	return nil, fmt.Errorf("not configured")
}

func (f *fakeBranchStore) List(ctx context.Context) ([]models.BankBranch, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, fmt.Errorf("not configured")
}

type fakeAccountCreator struct {
	createFn func(ctx context.Context, account *models.Account) (*models.Account, error)
}

func (f *fakeAccountCreator) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	if f.createFn != nil {
		return f.createFn(ctx, account)
	}
	return nil, fmt.Errorf("not configured")
}

type fakeBranchCache struct {
	invalidated int
	cached      []models.BankBranch
	hasCached   bool
	setCalls    int
}

func (f *fakeBranchCache) InvalidateBranchList(context.Context) { f.invalidated++ }

func (f *fakeBranchCache) GetBranchList(context.Context) ([]models.BankBranch, bool) {
	return f.cached, f.hasCached
}

func (f *fakeBranchCache) SetBranchList(_ context.Context, branches []models.BankBranch) {
	f.setCalls++
	f.cached = branches
	f.hasCached = true
}

// ---- tests ----

func TestRegisterBranch_InvalidatesCache(t *testing.T) {
	branches := &fakeBranchStore{
		createFn: func(_ context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error) {
			return &models.BankBranch{ID: 1, BankName: bankName, BranchName: branchName, BankAddress: bankAddress}, nil
		},
	}
	branchCache := &fakeBranchCache{hasCached: true}
	svc := NewRegistrationService(&fakePersonStore{}, branches, &fakeAccountCreator{}, branchCache, nil)

	branch, err := svc.RegisterBranch(context.Background(), "QuickQuid", "Central", "1 High St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if branch.BankName != "QuickQuid" {
		t.Errorf("unexpected branch: %+v", branch)
	}
	if branchCache.invalidated != 1 {
		t.Errorf("expected branch-list cache invalidation, got %d calls", branchCache.invalidated)
	}
}

func TestOpenAccount(t *testing.T) {
	personID := int64(7)
	branchID := int64(3)

	tests := []struct {
		name     string
		persons  *fakePersonStore
		branches *fakeBranchStore
		wantErr  error
	}{
		{
			name: "success",
			persons: &fakePersonStore{
				findFn: func(_ context.Context, _, _ string) (*models.Person, error) {
					return &models.Person{ID: personID, FirstName: "Ada", LastName: "Lovelace"}, nil
				},
			},
			branches: &fakeBranchStore{
				findFn: func(_ context.Context, _ string) (*models.BankBranch, error) {
					return &models.BankBranch{ID: branchID, BankName: "QuickQuid"}, nil
				},
			},
		},
		{
			name: "person not found",
			persons: &fakePersonStore{
				findFn: func(_ context.Context, _, _ string) (*models.Person, error) {
					return nil, models.ErrPersonNotFound
				},
			},
			branches: &fakeBranchStore{},
			wantErr:  models.ErrPersonNotFound,
		},
		{
			name: "branch not found",
			persons: &fakePersonStore{
				findFn: func(_ context.Context, _, _ string) (*models.Person, error) {
					return &models.Person{ID: personID}, nil
				},
			},
			branches: &fakeBranchStore{
				findFn: func(_ context.Context, _ string) (*models.BankBranch, error) {
					return nil, models.ErrBranchNotFound
				},
			},
			wantErr: models.ErrBranchNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &fakeAccountCreator{
				createFn: func(_ context.Context, account *models.Account) (*models.Account, error) {
					if account.PersonID == nil || *account.PersonID != personID {
						t.Errorf("expected person id %d, got %v", personID, account.PersonID)
					}
					if account.BranchID == nil || *account.BranchID != branchID {
						t.Errorf("expected branch id %d, got %v", branchID, account.BranchID)
					}
					if account.Currency != "GBP" {
						t.Errorf("expected currency upper-cased to GBP, got %s", account.Currency)
					}
					return account, nil
				},
			}
			svc := NewRegistrationService(tt.persons, tt.branches, accounts, nil, nil)

			account, err := svc.OpenAccount(context.Background(), OpenAccountInput{
				AccountNumber: "ACC-100",
				AccountType:   models.AccountTypeSavings,
				Currency:      "gbp",
				FirstName:     "Ada",
				LastName:      "Lovelace",
				BankName:      "QuickQuid",
				Balance:       dec("100"),
			})
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account.AccountNumber != "ACC-100" {
				t.Errorf("unexpected account: %+v", account)
			}
		})
	}
}

func TestListBranches_CacheHitAndWarm(t *testing.T) {
	stored := []models.BankBranch{{ID: 1, BankName: "QuickQuid", BranchName: "Central"}}
	listCalls := 0
	branches := &fakeBranchStore{
		listFn: func(context.Context) ([]models.BankBranch, error) {
			listCalls++
			return stored, nil
		},
	}
	branchCache := &fakeBranchCache{}
	svc := NewLookupService(branches, nil, nil, branchCache)

	// Miss: loads from the store and warms the cache.
	got, err := svc.ListBranches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || listCalls != 1 || branchCache.setCalls != 1 {
		t.Errorf("expected store load and cache warm, got listCalls=%d setCalls=%d", listCalls, branchCache.setCalls)
	}

	// Hit: served from cache without touching the store.
	if _, err := svc.ListBranches(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listCalls != 1 {
		t.Errorf("expected cached read, store was hit %d times", listCalls)
	}
}

func TestAccountHistory_UnknownAccount(t *testing.T) {
	ledger := newFakeLedger(map[string]decimal.Decimal{})
	svc := NewLookupService(&fakeBranchStore{}, ledger, nil, nil)

	_, err := svc.AccountHistory(context.Background(), "MISSING")
	if err != models.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
