package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/quickquid/quickquid-api/internal/events"
	"github.com/quickquid/quickquid-api/internal/logger"
	"github.com/quickquid/quickquid-api/internal/models"
)

// AccountFinder resolves accounts by their external account number.
type AccountFinder interface {
	FindByNumber(ctx context.Context, accountNumber string) (*models.Account, error)
}

// TransferStore performs the atomic funds-check-then-apply step and writes
// the transaction row, all inside one database transaction.
type TransferStore interface {
	ExecuteTransfer(ctx context.Context, senderAccount, receiverAccount string, amount decimal.Decimal, description string, branchID *int64) (*models.Transaction, error)
}

// EventPublisher emits domain events. Publishing is best effort; failures
// never affect the transfer outcome.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// TransferInput carries one transfer request into the service.
type TransferInput struct {
	Amount              decimal.Decimal
	Description         string
	SenderAccount       string
	ReceiverAccount     string
	OriginatingBranchID *int64
}

// TransferService executes peer-to-peer funds transfers. Each call produces
// exactly one transaction row unless sender or receiver cannot be resolved,
// in which case nothing is written.
type TransferService struct {
	accounts  AccountFinder
	store     TransferStore
	publisher EventPublisher
}

func NewTransferService(accounts AccountFinder, store TransferStore, publisher EventPublisher) *TransferService {
	return &TransferService{accounts: accounts, store: store, publisher: publisher}
}

// Execute runs a transfer to its terminal outcome. Unknown sender or
// receiver short-circuit with ErrSenderNotFound / ErrReceiverNotFound before
// any row is written. Insufficient funds is not an error: the transfer is
// recorded with status FAILED and both balances stay untouched. The
// COMPLETED/FAILED decision itself is made by the store's conditional debit,
// which keeps concurrent transfers over the same account correct without any
// in-process locking.
func (s *TransferService) Execute(ctx context.Context, in TransferInput) (*models.Transaction, error) {
	if !in.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	sender, err := s.accounts.FindByNumber(ctx, in.SenderAccount)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil, models.ErrSenderNotFound
		}
		return nil, err
	}
	receiver, err := s.accounts.FindByNumber(ctx, in.ReceiverAccount)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil, models.ErrReceiverNotFound
		}
		return nil, err
	}
	if sender.AccountNumber == receiver.AccountNumber {
		return nil, models.ErrSelfTransfer
	}

	transaction, err := s.store.ExecuteTransfer(ctx, sender.AccountNumber, receiver.AccountNumber, in.Amount, in.Description, in.OriginatingBranchID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		eventType := events.TransactionCompleted
		if transaction.Status == models.StatusFailed {
			eventType = events.TransactionFailed
		}
		if err := s.publisher.Publish(ctx, events.TransactionEventsStream, eventType, events.TransactionRecordedEvent{
			TransactionID:   transaction.ID,
			SenderAccount:   transaction.SenderAccount,
			ReceiverAccount: transaction.ReceiverAccount,
			Amount:          transaction.Amount,
			Status:          transaction.Status,
		}); err != nil {
			log := logger.FromContext(ctx)
			log.Warn().Err(err).Int64("transaction_id", transaction.ID).Msg("failed to publish transaction event")
		}
	}

	return transaction, nil
}
