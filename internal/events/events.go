package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quickquid/quickquid-api/internal/models"
)

// Event types
const (
	PersonRegistered = "person.registered"
	BranchRegistered = "branch.registered"
	AccountOpened    = "account.opened"

	TransactionCompleted = "transaction.completed"
	TransactionFailed    = "transaction.failed"
)

// Stream names
const (
	RegistryEventsStream    = "registry.events"
	TransactionEventsStream = "transaction.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type PersonRegisteredEvent struct {
	PersonID  int64  `json:"personId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type BranchRegisteredEvent struct {
	BranchID   int64  `json:"branchId"`
	BankName   string `json:"bankName"`
	BranchName string `json:"branchName"`
}

type AccountOpenedEvent struct {
	AccountNumber string             `json:"accountNumber"`
	AccountType   models.AccountType `json:"accountType"`
	Currency      string             `json:"currency"`
}

type TransactionRecordedEvent struct {
	TransactionID   int64                    `json:"transactionId"`
	SenderAccount   string                   `json:"senderAccount"`
	ReceiverAccount string                   `json:"receiverAccount"`
	Amount          decimal.Decimal          `json:"amount"`
	Status          models.TransactionStatus `json:"status"`
}
