package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/davidgarcial/bank-architecture/internal/models"
)

// TransactionRepository owns the transactions collection: an append-only
// ledger. Entries are never updated or deleted.
type TransactionRepository struct {
	transactions *mongo.Collection
}

func NewTransactionRepository(transactions *mongo.Collection) *TransactionRepository {
	return &TransactionRepository{transactions: transactions}
}

// Append writes a ledger entry, assigning the commit timestamp.
func (r *TransactionRepository) Append(ctx context.Context, tx *models.Transaction) (primitive.ObjectID, error) {
	tx.Timestamp = time.Now().UTC()
	res, err := r.transactions.InsertOne(ctx, tx)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to append transaction: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("failed to append transaction: missing inserted id")
	}
	tx.ID = id
	return id, nil
}

// History returns every entry that touches the account, newest first. The
// compound sort on (timestamp, _id) makes the order total: equal commit
// instants are broken by the monotonic document id.
func (r *TransactionRepository) History(ctx context.Context, accountID primitive.ObjectID) ([]models.Transaction, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"from_account_id": accountID},
		bson.M{"to_account_id": accountID},
	}}
	opts := options.Find().SetSort(bson.D{
		{Key: "timestamp", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.transactions.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return transactions, nil
}
