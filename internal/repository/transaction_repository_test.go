package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/davidgarcial/bank-architecture/internal/models"
)

func TestHistory(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matches either side and sorts newest first", func(mt *mtest.T) {
		repo := NewTransactionRepository(mt.Coll)
		accountID := primitive.NewObjectID()
		otherID := primitive.NewObjectID()
		txID := primitive.NewObjectID()
		ns := fmt.Sprintf("%s.%s", mt.DB.Name(), mt.Coll.Name())

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: txID},
			{Key: "type", Value: models.TransactionDeposit},
			{Key: "from_account_id", Value: otherID},
			{Key: "to_account_id", Value: accountID},
			{Key: "amount", Value: int64(2500)},
			{Key: "timestamp", Value: primitive.NewDateTimeFromTime(time.Now().UTC())},
		}))

		transactions, err := repo.History(context.Background(), accountID)
		require.NoError(mt, err)
		require.Len(mt, transactions, 1)
		assert.Equal(mt, txID, transactions[0].ID)
		assert.Equal(mt, int64(2500), transactions[0].Amount)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)

		// One query covers both directions of a transfer.
		from, err := evt.Command.LookupErr("filter", "$or", "0", "from_account_id")
		require.NoError(mt, err)
		fromID, ok := from.ObjectIDOK()
		require.True(mt, ok)
		assert.Equal(mt, accountID, fromID)

		to, err := evt.Command.LookupErr("filter", "$or", "1", "to_account_id")
		require.NoError(mt, err)
		toID, ok := to.ObjectIDOK()
		require.True(mt, ok)
		assert.Equal(mt, accountID, toID)

		// The compound descending sort keeps the order total when two
		// entries share a commit instant.
		sortDoc, err := evt.Command.LookupErr("sort")
		require.NoError(mt, err)
		elems, err := sortDoc.Document().Elements()
		require.NoError(mt, err)
		require.Len(mt, elems, 2)
		assert.Equal(mt, "timestamp", elems[0].Key())
		assert.EqualValues(mt, -1, elems[0].Value().Int32())
		assert.Equal(mt, "_id", elems[1].Key())
		assert.EqualValues(mt, -1, elems[1].Value().Int32())
	})

	mt.Run("no entries is an empty history, not an error", func(mt *mtest.T) {
		repo := NewTransactionRepository(mt.Coll)
		ns := fmt.Sprintf("%s.%s", mt.DB.Name(), mt.Coll.Name())

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		transactions, err := repo.History(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Empty(mt, transactions)
	})
}

func TestAppend(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns commit timestamp and entry id", func(mt *mtest.T) {
		repo := NewTransactionRepository(mt.Coll)
		toID := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		tx := &models.Transaction{
			Type:        models.TransactionDeposit,
			ToAccountID: &toID,
			Amount:      2500,
		}
		id, err := repo.Append(context.Background(), tx)

		require.NoError(mt, err)
		assert.False(mt, id.IsZero())
		assert.Equal(mt, id, tx.ID)
		assert.False(mt, tx.Timestamp.IsZero())
	})
}
