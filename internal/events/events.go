package events

import "time"

// Event types
const (
	AccountCreated     = "account.created"
	BalanceUpdated     = "balance.updated"
	TransactionCreated = "transaction.created"
)

// Stream names
const (
	AccountEventsStream     = "account.events"
	TransactionEventsStream = "transaction.events"
)

// Event is the envelope carried on every stream entry.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type AccountCreatedEvent struct {
	AccountID   string `json:"accountId"`
	UserID      string `json:"userId"`
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
}

// BalanceUpdatedEvent carries the delta in minor units; Change is negative
// for debits.
type BalanceUpdatedEvent struct {
	AccountID string `json:"accountId"`
	Change    int64  `json:"change"`
}

type TransactionCreatedEvent struct {
	TransactionID string `json:"transactionId"`
	Type          string `json:"type"`
	FromAccountID string `json:"fromAccountId,omitempty"`
	ToAccountID   string `json:"toAccountId,omitempty"`
	Amount        int64  `json:"amount"`
}
