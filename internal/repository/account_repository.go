package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quickquid/quickquid-api/internal/models"
)

// execer is satisfied by both *sql.DB and *sql.Tx, so balance mutations can
// run inside a transfer's transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// AccountRepository handles account rows in PostgreSQL. ApplyDelta is the
// only path in the codebase that mutates an account balance.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO account (account_number, account_type, currency, balance, person_id, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING account_number, account_type, currency, balance, person_id, branch_id, created_at
	`
	var created models.Account
	err := r.db.QueryRowContext(ctx, query,
		account.AccountNumber, account.AccountType, account.Currency,
		account.Balance, account.PersonID, account.BranchID,
	).Scan(
		&created.AccountNumber, &created.AccountType, &created.Currency,
		&created.Balance, &created.PersonID, &created.BranchID, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &created, nil
}

func (r *AccountRepository) FindByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	query := `
		SELECT account_number, account_type, currency, balance, person_id, branch_id, created_at
		FROM account
		WHERE account_number = $1
	`
	var account models.Account
	err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(
		&account.AccountNumber, &account.AccountType, &account.Currency,
		&account.Balance, &account.PersonID, &account.BranchID, &account.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// ApplyDelta adds delta to the account balance as a single conditional
// update. The WHERE clause refuses any update that would leave the balance
// negative, so a debit against insufficient funds affects zero rows. The
// returned bool reports whether the update was applied.
func (r *AccountRepository) ApplyDelta(ctx context.Context, q execer, accountNumber string, delta decimal.Decimal) (bool, error) {
	query := `
		UPDATE account
		SET balance = balance + $2
		WHERE account_number = $1 AND balance + $2 >= 0
	`
	result, err := q.ExecContext(ctx, query, accountNumber, delta)
	if err != nil {
		return false, fmt.Errorf("failed to update balance: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return rows == 1, nil
}
