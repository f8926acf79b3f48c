package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/davidgarcial/bank-architecture/internal/models"
)

// AccountRepository owns the accounts collection. Balance mutations are
// single filtered updates; there is no read-modify-write window anywhere in
// this type, which is what serialises concurrent movements on one account.
type AccountRepository struct {
	accounts *mongo.Collection
}

func NewAccountRepository(accounts *mongo.Collection) *AccountRepository {
	return &AccountRepository{accounts: accounts}
}

// Create inserts a new account with a zero balance.
func (r *AccountRepository) Create(ctx context.Context, userID, accountType, accountName string) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	account := models.Account{
		UserID:      userID,
		AccountType: accountType,
		AccountName: accountName,
		Balance:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := r.accounts.InsertOne(ctx, account)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create account: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("failed to create account: missing inserted id")
	}
	return id, nil
}

func (r *AccountRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	var account models.Account
	err := r.accounts.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByUser returns every account owned by the user uuid. Order is
// unspecified.
func (r *AccountRepository) GetByUser(ctx context.Context, userID string) ([]models.Account, error) {
	cursor, err := r.accounts.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) ReadBalance(ctx context.Context, id primitive.ObjectID) (int64, error) {
	account, err := r.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// ConditionalDebit applies balance -= amount only when balance >= amount.
// The predicate lives in the update filter, so the whole operation is one
// atomic document update; a losing concurrent debit simply matches nothing.
func (r *AccountRepository) ConditionalDebit(ctx context.Context, id primitive.ObjectID, amount int64) error {
	res, err := r.accounts.UpdateOne(ctx,
		bson.M{"_id": id, "balance": bson.M{"$gte": amount}},
		bson.M{
			"$inc":         bson.M{"balance": -amount},
			"$currentDate": bson.M{"updated_at": true},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to debit account: %w", err)
	}
	if res.MatchedCount == 0 {
		// Filter miss: either the account is gone or the balance is short.
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return ErrInsufficientFunds
	}
	return nil
}

// Credit applies balance += amount unconditionally (amount is validated
// positive by the engines).
func (r *AccountRepository) Credit(ctx context.Context, id primitive.ObjectID, amount int64) error {
	res, err := r.accounts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc":         bson.M{"balance": amount},
			"$currentDate": bson.M{"updated_at": true},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetBalance overwrites the balance. Reserved for the administrative
// account update operation; the money engines never call it.
func (r *AccountRepository) SetBalance(ctx context.Context, id primitive.ObjectID, balance int64) (*models.Account, error) {
	var account models.Account
	err := r.accounts.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":         bson.M{"balance": balance},
			"$currentDate": bson.M{"updated_at": true},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return &account, nil
}
