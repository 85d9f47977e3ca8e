package models

import "errors"

var (
	// ErrPersonNotFound indicates that no person matched the given name.
	ErrPersonNotFound = errors.New("person not found")
	// ErrBranchNotFound indicates that no bank branch matched the given bank name.
	ErrBranchNotFound = errors.New("bank branch not found")
	// ErrAccountNotFound indicates that no account matched the given account number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSenderNotFound indicates the sender of a transfer could not be resolved.
	// No transaction row is written in this case.
	ErrSenderNotFound = errors.New("sender account not found")
	// ErrReceiverNotFound indicates the receiver of a transfer could not be resolved.
	ErrReceiverNotFound = errors.New("receiver account not found")
	// ErrSelfTransfer indicates sender and receiver resolved to the same account.
	ErrSelfTransfer = errors.New("sender and receiver are the same account")
	// ErrInvalidAmount indicates a transfer amount that is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)
