package repository

import "errors"

var (
	// ErrNotFound is returned when the referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds is returned by ConditionalDebit when the balance
	// predicate fails; the balance is left untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDuplicateUsername is returned when registration hits the unique
	// username index.
	ErrDuplicateUsername = errors.New("username already taken")
)
