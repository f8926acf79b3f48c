package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/models"
	"github.com/davidgarcial/bank-architecture/internal/repository"
)

func TestMakeWithdrawal(t *testing.T) {
	accountID := primitive.NewObjectID()

	tests := []struct {
		name         string
		req          *bankpb.MakeWithdrawalRequest
		debitFn      func(primitive.ObjectID, int64) error
		expectedCode codes.Code
	}{
		{
			name: "success",
			req:  &bankpb.MakeWithdrawalRequest{AccountId: accountID.Hex(), Amount: 5000},
		},
		{
			name:         "zero amount",
			req:          &bankpb.MakeWithdrawalRequest{AccountId: accountID.Hex(), Amount: 0},
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "negative amount",
			req:          &bankpb.MakeWithdrawalRequest{AccountId: accountID.Hex(), Amount: -1},
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "bad account id",
			req:          &bankpb.MakeWithdrawalRequest{AccountId: "nope", Amount: 5000},
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "insufficient funds",
			req:          &bankpb.MakeWithdrawalRequest{AccountId: accountID.Hex(), Amount: 5000},
			debitFn:      func(primitive.ObjectID, int64) error { return repository.ErrInsufficientFunds },
			expectedCode: codes.FailedPrecondition,
		},
		{
			name:         "account not found",
			req:          &bankpb.MakeWithdrawalRequest{AccountId: accountID.Hex(), Amount: 5000},
			debitFn:      func(primitive.ObjectID, int64) error { return repository.ErrNotFound },
			expectedCode: codes.NotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &mockBalanceStore{debitFn: tt.debitFn}
			ledger := &mockLedgerStore{}
			svc := NewWithdrawalService(accounts, ledger, nil, nil)

			resp, err := svc.MakeWithdrawal(context.Background(), tt.req)
			if tt.expectedCode != codes.OK {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				assert.Empty(t, ledger.appended, "failed withdrawals must not reach the ledger")
				return
			}

			require.NoError(t, err)
			require.Len(t, ledger.appended, 1)
			entry := ledger.appended[0]
			assert.Equal(t, entry.ID.Hex(), resp.TransactionId)
			assert.Equal(t, models.TransactionWithdrawal, entry.Type)
			require.NotNil(t, entry.FromAccountID)
			assert.Equal(t, accountID, *entry.FromAccountID)
			assert.Nil(t, entry.ToAccountID, "withdrawals have no destination")
			assert.Equal(t, int64(5000), entry.Amount)
		})
	}
}

func TestMakeWithdrawalInvalidatesView(t *testing.T) {
	accountID := primitive.NewObjectID()
	reader := &mockReader{}
	svc := NewWithdrawalService(&mockBalanceStore{}, &mockLedgerStore{}, reader, nil)

	_, err := svc.MakeWithdrawal(context.Background(), &bankpb.MakeWithdrawalRequest{
		AccountId: accountID.Hex(),
		Amount:    100,
	})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{accountID}, reader.invalidated)
}
