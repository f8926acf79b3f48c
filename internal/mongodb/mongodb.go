// Package mongodb owns the connection to the shared bank database.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DatabaseName = "bank"

	UsersCollection        = "users"
	AccountsCollection     = "accounts"
	TransactionsCollection = "transactions"

	connectTimeout = 10 * time.Second
)

// Client wraps the driver client with the bank database handle. One Client
// is shared across all handlers of a service; the driver pools connections
// internally.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the deployment and verifies it with a ping, so a service
// fails at bootstrap rather than on its first request.
func Connect(ctx context.Context, uri string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Client{client: client, db: client.Database(DatabaseName)}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

func (c *Client) Users() *mongo.Collection {
	return c.db.Collection(UsersCollection)
}

func (c *Client) Accounts() *mongo.Collection {
	return c.db.Collection(AccountsCollection)
}

func (c *Client) Transactions() *mongo.Collection {
	return c.db.Collection(TransactionsCollection)
}

// WithTransaction runs fn inside a multi-document transaction. Only valid
// against replica-set deployments; standalone servers must use the
// compensation path instead.
func (c *Client) WithTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) error {
	session, err := c.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	if _, err := session.WithTransaction(ctx, fn); err != nil {
		return fmt.Errorf("transaction aborted: %w", err)
	}
	return nil
}
