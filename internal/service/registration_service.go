package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quickquid/quickquid-api/internal/events"
	"github.com/quickquid/quickquid-api/internal/logger"
	"github.com/quickquid/quickquid-api/internal/models"
)

// PersonStore is the person persistence surface used by RegistrationService.
type PersonStore interface {
	Create(ctx context.Context, firstName, lastName string) (*models.Person, error)
	FindByName(ctx context.Context, firstName, lastName string) (*models.Person, error)
}

// BranchStore is the bank branch persistence surface used by RegistrationService.
type BranchStore interface {
	Create(ctx context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error)
	FindByBankName(ctx context.Context, bankName string) (*models.BankBranch, error)
}

// AccountCreator inserts new account rows.
type AccountCreator interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
}

// BranchCacheInvalidator drops the cached branch-list view after a write.
type BranchCacheInvalidator interface {
	InvalidateBranchList(ctx context.Context)
}

// OpenAccountInput carries an account-opening request. The person and branch
// are referenced by name, matching the public API surface.
type OpenAccountInput struct {
	AccountNumber string
	AccountType   models.AccountType
	Currency      string
	FirstName     string
	LastName      string
	BankName      string
	Balance       decimal.Decimal
}

// RegistrationService covers the thin create operations: people, bank
// branches and accounts. There is no business invariant here beyond the
// store's uniqueness and foreign key constraints.
type RegistrationService struct {
	persons     PersonStore
	branches    BranchStore
	accounts    AccountCreator
	branchCache BranchCacheInvalidator
	publisher   EventPublisher
}

func NewRegistrationService(persons PersonStore, branches BranchStore, accounts AccountCreator, branchCache BranchCacheInvalidator, publisher EventPublisher) *RegistrationService {
	return &RegistrationService{
		persons:     persons,
		branches:    branches,
		accounts:    accounts,
		branchCache: branchCache,
		publisher:   publisher,
	}
}

func (s *RegistrationService) RegisterPerson(ctx context.Context, firstName, lastName string) (*models.Person, error) {
	person, err := s.persons.Create(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.RegistryEventsStream, events.PersonRegistered, events.PersonRegisteredEvent{
		PersonID:  person.ID,
		FirstName: person.FirstName,
		LastName:  person.LastName,
	})
	return person, nil
}

func (s *RegistrationService) RegisterBranch(ctx context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error) {
	branch, err := s.branches.Create(ctx, bankName, branchName, bankAddress)
	if err != nil {
		return nil, err
	}
	if s.branchCache != nil {
		s.branchCache.InvalidateBranchList(ctx)
	}
	s.publish(ctx, events.RegistryEventsStream, events.BranchRegistered, events.BranchRegisteredEvent{
		BranchID:   branch.ID,
		BankName:   branch.BankName,
		BranchName: branch.BranchName,
	})
	return branch, nil
}

// OpenAccount resolves the holder by name and the branch by bank name before
// inserting the account row. Both lookups treat names as unique in practice;
// the schema does not enforce this.
func (s *RegistrationService) OpenAccount(ctx context.Context, in OpenAccountInput) (*models.Account, error) {
	person, err := s.persons.FindByName(ctx, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	branch, err := s.branches.FindByBankName(ctx, in.BankName)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.Create(ctx, &models.Account{
		AccountNumber: in.AccountNumber,
		AccountType:   in.AccountType,
		Currency:      strings.ToUpper(in.Currency),
		Balance:       in.Balance,
		PersonID:      &person.ID,
		BranchID:      &branch.ID,
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.RegistryEventsStream, events.AccountOpened, events.AccountOpenedEvent{
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		Currency:      account.Currency,
	})
	return account, nil
}

func (s *RegistrationService) publish(ctx context.Context, stream, eventType string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, stream, eventType, data); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Str("event", eventType).Msg("failed to publish event")
	}
}
