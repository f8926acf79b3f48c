package repository

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/davidgarcial/bank-architecture/internal/models"
)

const accountViewTTL = 5 * time.Minute

// AccountReadRepository serves account lookups through a Redis view cache,
// falling back to the authoritative store on a miss. Writers invalidate
// through Invalidate; the cache is advisory and a cold Redis only costs an
// extra Mongo round trip.
type AccountReadRepository struct {
	store *AccountRepository
	cache *ViewCache[models.Account]
}

func NewAccountReadRepository(store *AccountRepository, client *goredis.Client) *AccountReadRepository {
	return &AccountReadRepository{
		store: store,
		cache: NewViewCache[models.Account](client, accountViewTTL),
	}
}

func accountViewKey(id primitive.ObjectID) string {
	return "account:view:" + id.Hex()
}

// Get returns the cached view when present, otherwise reads through and
// warms the cache.
func (r *AccountReadRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	if account, ok := r.cache.Get(ctx, accountViewKey(id)); ok {
		return account, nil
	}
	account, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, accountViewKey(id), account)
	return account, nil
}

// Invalidate drops the cached view after a balance or metadata change.
func (r *AccountReadRepository) Invalidate(ctx context.Context, id primitive.ObjectID) {
	r.cache.Delete(ctx, accountViewKey(id))
}
