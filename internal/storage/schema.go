package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Enum types are created inside DO blocks because CREATE TYPE has no
// IF NOT EXISTS form on older PostgreSQL versions.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS person (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bank_branch (
		id SERIAL PRIMARY KEY,
		bank_name VARCHAR(255) NOT NULL,
		branch_name VARCHAR(255) NOT NULL,
		bank_address VARCHAR(255)
	)`,
	`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'account_type_enum') THEN
			CREATE TYPE account_type_enum AS ENUM ('SAVINGS', 'LOAN', 'CREDIT_CARD', 'CURRENT_ACCOUNT');
		END IF;
	END $$`,
	`CREATE TABLE IF NOT EXISTS account (
		account_number VARCHAR(50) PRIMARY KEY,
		account_type account_type_enum NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		currency CHAR(3) NOT NULL,
		balance NUMERIC(19,4) NOT NULL DEFAULT 0 CHECK (balance >= 0),
		person_id INT REFERENCES person(id) ON DELETE SET NULL,
		branch_id INT REFERENCES bank_branch(id) ON DELETE SET NULL
	)`,
	`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'transaction_status_enum') THEN
			CREATE TYPE transaction_status_enum AS ENUM ('COMPLETED', 'PENDING', 'FAILED');
		END IF;
	END $$`,
	`CREATE TABLE IF NOT EXISTS transaction (
		id SERIAL PRIMARY KEY,
		amount NUMERIC(19,4) NOT NULL CHECK (amount > 0),
		description TEXT,
		status transaction_status_enum NOT NULL,
		transaction_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		sender_account_id VARCHAR(50) REFERENCES account(account_number) ON DELETE CASCADE,
		receiver_account_id VARCHAR(50) REFERENCES account(account_number) ON DELETE CASCADE,
		originating_branch_id INT REFERENCES bank_branch(id) ON DELETE SET NULL
	)`,
}

// EnsureSchema creates the enum types and tables if they do not already
// exist. It is idempotent and safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
