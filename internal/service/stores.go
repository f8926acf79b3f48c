// Package service implements the gRPC servers for the five bank services.
// Each server depends on narrow store interfaces so handlers can be tested
// against in-memory fakes.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/davidgarcial/bank-architecture/internal/models"
)

type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByUUID(ctx context.Context, userUUID string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, username, passwordHash string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AccountStore interface {
	Create(ctx context.Context, userID, accountType, accountName string) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	GetByUser(ctx context.Context, userID string) ([]models.Account, error)
	SetBalance(ctx context.Context, id primitive.ObjectID, balance int64) (*models.Account, error)
}

// BalanceStore is the slice of the account store the money engines use.
// ConditionalDebit must be atomic: the balance predicate and the decrement
// are one operation.
type BalanceStore interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	ReadBalance(ctx context.Context, id primitive.ObjectID) (int64, error)
	ConditionalDebit(ctx context.Context, id primitive.ObjectID, amount int64) error
	Credit(ctx context.Context, id primitive.ObjectID, amount int64) error
}

type LedgerStore interface {
	Append(ctx context.Context, tx *models.Transaction) (primitive.ObjectID, error)
}

type HistoryStore interface {
	History(ctx context.Context, accountID primitive.ObjectID) ([]models.Transaction, error)
}

// TxRunner runs a function inside a MongoDB multi-document transaction.
// Engines hold a nil TxRunner when the deployment cannot support one and
// fall back to compensation.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) error
}

// AccountReader serves cached account views.
type AccountReader interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	Invalidate(ctx context.Context, id primitive.ObjectID)
}
