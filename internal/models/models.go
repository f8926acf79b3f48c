// Package models holds the MongoDB documents for the bank database.
// The service that writes a collection owns its schema: user-service writes
// users, account-service creates accounts, and only the deposit and
// withdrawal engines touch balances and append transactions.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AccountTypeChecking = "CHECKING"
	AccountTypeSavings  = "SAVINGS"

	TransactionDeposit    = "DEPOSIT"
	TransactionWithdrawal = "WITHDRAWAL"
)

// User documents are joined from accounts and tokens through the stable
// uuid, never through the Mongo document id.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UUID     string             `bson:"uuid" json:"uuid"`
	Username string             `bson:"username" json:"username"`
	// Password holds the bcrypt hash.
	Password string `bson:"password" json:"-"`
}

type Account struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"user_id" json:"user_id"`
	// AccountType is CHECKING or SAVINGS, immutable after creation.
	AccountType string `bson:"account_type" json:"account_type"`
	AccountName string `bson:"account_name" json:"account_name"`
	// Balance in minor units (cents). Mutated only by the atomic
	// conditional-debit and credit updates.
	Balance   int64     `bson:"balance" json:"balance"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Transaction is an append-only ledger entry. A transfer between two
// customer accounts is a single DEPOSIT carrying both ids; an agent deposit
// has no source; a withdrawal has no destination.
type Transaction struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type          string              `bson:"type" json:"type"`
	FromAccountID *primitive.ObjectID `bson:"from_account_id,omitempty" json:"from_account_id,omitempty"`
	ToAccountID   *primitive.ObjectID `bson:"to_account_id,omitempty" json:"to_account_id,omitempty"`
	// Amount in minor units (cents), always positive.
	Amount int64 `bson:"amount" json:"amount"`
	// Timestamp is assigned by the store at commit time.
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
