package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/davidgarcial/bank-architecture/internal/events"
)

// TransactionEventHandler invalidates cached account views for every
// account a committed transaction touched. Balance decisions never read the
// cache, so a missed invalidation only means a briefly stale view.
func TransactionEventHandler(reader AccountReader) events.Handler {
	return func(ctx context.Context, event events.Event) error {
		if event.Type != events.TransactionCreated {
			return nil
		}

		raw, err := json.Marshal(event.Data)
		if err != nil {
			return fmt.Errorf("failed to re-marshal event data: %w", err)
		}
		var data events.TransactionCreatedEvent
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to decode transaction event: %w", err)
		}

		for _, hex := range []string{data.FromAccountID, data.ToAccountID} {
			if hex == "" {
				continue
			}
			id, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				continue
			}
			reader.Invalidate(ctx, id)
		}
		return nil
	}
}
