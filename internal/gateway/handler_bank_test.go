package gateway

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
)

func ownedAccount(id, owner string) *bankpb.GetAccountResponse {
	return &bankpb.GetAccountResponse{Account: &bankpb.Account{
		AccountId:   id,
		UserId:      owner,
		AccountName: "main",
		Balance:     100000,
	}}
}

func accountsOwnedBy(owner string) *mockAccountClient {
	return &mockAccountClient{
		getFn: func(in *bankpb.GetAccountRequest) (*bankpb.GetAccountResponse, error) {
			return ownedAccount(in.AccountId, owner), nil
		},
	}
}

func newBankRouter(accounts bankpb.AccountServiceClient, deposits bankpb.DepositServiceClient, withdrawals bankpb.WithdrawalServiceClient, caller string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBankHandler(accounts, deposits, withdrawals)
	r.POST("/api/bank/deposit", fakeAuth(caller), h.Deposit)
	r.POST("/api/bank/withdraw", fakeAuth(caller), h.Withdraw)
	return r
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		owner          string
		depositFn      func(*bankpb.MakeDepositRequest) (*bankpb.MakeDepositResponse, error)
		expectedStatus int
	}{
		{
			name:  "success",
			body:  map[string]any{"from_account_id": "src", "to_account_id": "dst", "amount": "25.00"},
			owner: "uuid-1",
			depositFn: func(in *bankpb.MakeDepositRequest) (*bankpb.MakeDepositResponse, error) {
				assert.Equal(t, int64(2500), in.Amount)
				assert.Equal(t, "src", in.FromAccountId)
				assert.False(t, in.IsBankAgent)
				return &bankpb.MakeDepositResponse{Success: true}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "agent deposit skips ownership",
			body:  map[string]any{"to_account_id": "dst", "amount": 100, "is_bank_agent": true},
			owner: "someone-else",
			depositFn: func(in *bankpb.MakeDepositRequest) (*bankpb.MakeDepositResponse, error) {
				assert.True(t, in.IsBankAgent)
				assert.Equal(t, int64(10000), in.Amount)
				return &bankpb.MakeDepositResponse{Success: true}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "forbidden - source owned by someone else",
			body:           map[string]any{"from_account_id": "src", "to_account_id": "dst", "amount": "25.00"},
			owner:          "someone-else",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing source",
			body:           map[string]any{"to_account_id": "dst", "amount": "25.00"},
			owner:          "uuid-1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative amount",
			body:           map[string]any{"from_account_id": "src", "to_account_id": "dst", "amount": "-5"},
			owner:          "uuid-1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "sub-cent amount",
			body:           map[string]any{"from_account_id": "src", "to_account_id": "dst", "amount": "1.005"},
			owner:          "uuid-1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "insufficient funds",
			body:  map[string]any{"from_account_id": "src", "to_account_id": "dst", "amount": "25.00"},
			owner: "uuid-1",
			depositFn: func(*bankpb.MakeDepositRequest) (*bankpb.MakeDepositResponse, error) {
				return nil, status.Error(codes.FailedPrecondition, "insufficient funds")
			},
			expectedStatus: http.StatusPreconditionFailed,
		},
		{
			name:  "destination not found",
			body:  map[string]any{"from_account_id": "src", "to_account_id": "dst", "amount": "25.00"},
			owner: "uuid-1",
			depositFn: func(*bankpb.MakeDepositRequest) (*bankpb.MakeDepositResponse, error) {
				return nil, status.Error(codes.NotFound, "destination account not found")
			},
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deposits := &mockDepositClient{depositFn: tt.depositFn}
			router := newBankRouter(accountsOwnedBy(tt.owner), deposits, &mockWithdrawalClient{}, "uuid-1")
			w := doJSON(router, http.MethodPost, "/api/bank/deposit", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestWithdraw(t *testing.T) {
	withdrawals := &mockWithdrawalClient{
		withdrawFn: func(in *bankpb.MakeWithdrawalRequest) (*bankpb.MakeWithdrawalResponse, error) {
			assert.Equal(t, "acct", in.AccountId)
			assert.Equal(t, int64(999), in.Amount)
			return &bankpb.MakeWithdrawalResponse{TransactionId: "tx-1"}, nil
		},
	}
	router := newBankRouter(accountsOwnedBy("uuid-1"), &mockDepositClient{}, withdrawals, "uuid-1")

	w := doJSON(router, http.MethodPost, "/api/bank/withdraw", map[string]any{
		"account_id": "acct", "amount": "9.99",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "tx-1")
}

func TestWithdrawForbiddenForOtherUsersAccount(t *testing.T) {
	router := newBankRouter(accountsOwnedBy("someone-else"), &mockDepositClient{}, &mockWithdrawalClient{}, "uuid-1")

	w := doJSON(router, http.MethodPost, "/api/bank/withdraw", map[string]any{
		"account_id": "acct", "amount": "9.99",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "fail")
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	withdrawals := &mockWithdrawalClient{
		withdrawFn: func(*bankpb.MakeWithdrawalRequest) (*bankpb.MakeWithdrawalResponse, error) {
			return nil, status.Error(codes.FailedPrecondition, "insufficient funds")
		},
	}
	router := newBankRouter(accountsOwnedBy("uuid-1"), &mockDepositClient{}, withdrawals, "uuid-1")

	w := doJSON(router, http.MethodPost, "/api/bank/withdraw", map[string]any{
		"account_id": "acct", "amount": "9.99",
	})
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
}
