package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quickquid/quickquid-api/internal/models"
)

// TransactionRepository writes transaction rows and serves the per-account
// history read model.
type TransactionRepository struct {
	db       *sql.DB
	accounts *AccountRepository
}

func NewTransactionRepository(db *sql.DB, accounts *AccountRepository) *TransactionRepository {
	return &TransactionRepository{db: db, accounts: accounts}
}

// ExecuteTransfer runs the funds-check-then-apply sequence as one database
// transaction. The conditional debit decides the outcome: zero rows affected
// means insufficient funds and the transfer is recorded as FAILED with no
// balance touched. Either way exactly one transaction row is written, and the
// debit, credit and insert commit together or not at all.
func (r *TransactionRepository) ExecuteTransfer(ctx context.Context, senderAccount, receiverAccount string, amount decimal.Decimal, description string, branchID *int64) (*models.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transfer: %w", err)
	}
	defer tx.Rollback()

	status := models.StatusFailed
	debited, err := r.accounts.ApplyDelta(ctx, tx, senderAccount, amount.Neg())
	if err != nil {
		return nil, err
	}
	if debited {
		credited, err := r.accounts.ApplyDelta(ctx, tx, receiverAccount, amount)
		if err != nil {
			return nil, err
		}
		if !credited {
			return nil, fmt.Errorf("failed to credit receiver account %s", receiverAccount)
		}
		status = models.StatusCompleted
	}

	query := `
		INSERT INTO transaction (amount, description, status, sender_account_id, receiver_account_id, originating_branch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, transaction_date
	`
	transaction := &models.Transaction{
		Amount:              amount,
		Description:         description,
		Status:              status,
		SenderAccount:       senderAccount,
		ReceiverAccount:     receiverAccount,
		OriginatingBranchID: branchID,
	}
	err = tx.QueryRowContext(ctx, query,
		amount, nullString(description), status, senderAccount, receiverAccount, branchID,
	).Scan(&transaction.ID, &transaction.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transfer: %w", err)
	}
	return transaction, nil
}

// ListByAccount returns the history view for every transaction the account
// sent or received, newest first. Holder names fall back to empty strings for
// accounts whose person link was severed.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountNumber string) ([]models.TransactionView, error) {
	query := `
		SELECT
			t.amount,
			t.description,
			t.transaction_date,
			t.status,
			sender.first_name, sender.last_name,
			receiver.first_name, receiver.last_name,
			bb.bank_name
		FROM transaction t
		LEFT JOIN account sender_account ON sender_account.account_number = t.sender_account_id
		LEFT JOIN account receiver_account ON receiver_account.account_number = t.receiver_account_id
		LEFT JOIN person sender ON sender.id = sender_account.person_id
		LEFT JOIN person receiver ON receiver.id = receiver_account.person_id
		LEFT JOIN bank_branch bb ON bb.id = t.originating_branch_id
		WHERE sender_account.account_number = $1 OR receiver_account.account_number = $1
		ORDER BY t.transaction_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var views []models.TransactionView
	for rows.Next() {
		var view models.TransactionView
		var description, bank sql.NullString
		var senderFirst, senderLast, receiverFirst, receiverLast sql.NullString

		if err := rows.Scan(
			&view.Amount, &description, &view.Date, &view.Status,
			&senderFirst, &senderLast, &receiverFirst, &receiverLast, &bank,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		view.Description = description.String
		view.Bank = bank.String
		view.Sender = fullName(senderFirst, senderLast)
		view.Receiver = fullName(receiverFirst, receiverLast)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return views, nil
}

func fullName(first, last sql.NullString) string {
	if !first.Valid && !last.Valid {
		return ""
	}
	return first.String + " " + last.String
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
