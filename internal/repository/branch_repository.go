package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quickquid/quickquid-api/internal/models"
)

// BranchRepository handles bank branch rows in PostgreSQL.
type BranchRepository struct {
	db *sql.DB
}

func NewBranchRepository(db *sql.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

func (r *BranchRepository) Create(ctx context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error) {
	query := `
		INSERT INTO bank_branch (bank_name, branch_name, bank_address)
		VALUES ($1, $2, $3)
		RETURNING id, bank_name, branch_name, bank_address
	`
	var branch models.BankBranch
	var address sql.NullString
	err := r.db.QueryRowContext(ctx, query, bankName, branchName, nullString(bankAddress)).Scan(
		&branch.ID, &branch.BankName, &branch.BranchName, &address,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bank branch: %w", err)
	}
	if address.Valid {
		branch.BankAddress = address.String
	}
	return &branch, nil
}

func (r *BranchRepository) List(ctx context.Context) ([]models.BankBranch, error) {
	query := `
		SELECT id, bank_name, branch_name, bank_address
		FROM bank_branch
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank branches: %w", err)
	}
	defer rows.Close()

	var branches []models.BankBranch
	for rows.Next() {
		var branch models.BankBranch
		var address sql.NullString
		if err := rows.Scan(&branch.ID, &branch.BankName, &branch.BranchName, &address); err != nil {
			return nil, fmt.Errorf("failed to scan bank branch: %w", err)
		}
		if address.Valid {
			branch.BankAddress = address.String
		}
		branches = append(branches, branch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bank branches: %w", err)
	}
	return branches, nil
}

// FindByBankName returns the first branch of the named bank. Bank names are
// not unique in the schema; account creation treats them as unique in
// practice.
func (r *BranchRepository) FindByBankName(ctx context.Context, bankName string) (*models.BankBranch, error) {
	query := `
		SELECT id, bank_name, branch_name, bank_address
		FROM bank_branch
		WHERE bank_name = $1
		ORDER BY id
		LIMIT 1
	`
	var branch models.BankBranch
	var address sql.NullString
	err := r.db.QueryRowContext(ctx, query, bankName).Scan(
		&branch.ID, &branch.BankName, &branch.BranchName, &address,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrBranchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find bank branch: %w", err)
	}
	if address.Valid {
		branch.BankAddress = address.String
	}
	return &branch, nil
}
