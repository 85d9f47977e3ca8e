package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the kind of product an account represents.
type AccountType string

const (
	AccountTypeSavings        AccountType = "SAVINGS"
	AccountTypeLoan           AccountType = "LOAN"
	AccountTypeCreditCard     AccountType = "CREDIT_CARD"
	AccountTypeCurrentAccount AccountType = "CURRENT_ACCOUNT"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeLoan, AccountTypeCreditCard, AccountTypeCurrentAccount:
		return true
	}
	return false
}

// TransactionStatus is the terminal outcome assigned to a transaction at
// creation time. Transactions are never updated after they are written.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusPending   TransactionStatus = "PENDING"
	StatusFailed    TransactionStatus = "FAILED"
)

type Person struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type BankBranch struct {
	ID          int64  `json:"id"`
	BankName    string `json:"bankName"`
	BranchName  string `json:"branchName"`
	BankAddress string `json:"bankAddress"`
}

// Account is keyed by its account number, the stable external identifier.
// Balance is fixed-point decimal; it is only ever mutated through
// AccountRepository.ApplyDelta.
type Account struct {
	AccountNumber string          `json:"accountNumber"`
	AccountType   AccountType     `json:"accountType"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	PersonID      *int64          `json:"personId,omitempty"`
	BranchID      *int64          `json:"branchId,omitempty"`
	CreatedAt     time.Time       `json:"createdTimestamp"`
}

type Transaction struct {
	ID                  int64             `json:"id"`
	Amount              decimal.Decimal   `json:"amount"`
	Description         string            `json:"description,omitempty"`
	Status              TransactionStatus `json:"status"`
	TransactionDate     time.Time         `json:"transactionDate"`
	SenderAccount       string            `json:"senderAccount"`
	ReceiverAccount     string            `json:"receiverAccount"`
	OriginatingBranchID *int64            `json:"originatingBranch,omitempty"`
}

// TransactionView is the read model returned by the per-account history
// query: holder names instead of account numbers, bank name instead of the
// originating branch id.
type TransactionView struct {
	Amount      decimal.Decimal   `json:"amount"`
	Sender      string            `json:"sender"`
	Receiver    string            `json:"receiver"`
	Bank        string            `json:"bank"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description,omitempty"`
	Status      TransactionStatus `json:"status"`
}
