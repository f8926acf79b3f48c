package gateway

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
)

func newAccountRouter(accounts bankpb.AccountServiceClient, caller string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAccountHandler(accounts)
	group := r.Group("/api/account", fakeAuth(caller))
	group.POST("/create", h.Create)
	group.GET("/list", h.List)
	group.PUT("/update", h.Update)
	group.GET("/:id", h.Get)
	return r
}

func TestCreateAccountHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
	}{
		{"checking", map[string]any{"account_type": "CHECKING", "account_name": "main"}, http.StatusCreated},
		{"savings", map[string]any{"account_type": "SAVINGS", "account_name": "rainy day"}, http.StatusCreated},
		{"unknown type", map[string]any{"account_type": "OFFSHORE", "account_name": "x"}, http.StatusBadRequest},
		{"missing name", map[string]any{"account_type": "CHECKING"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &mockAccountClient{
				createFn: func(in *bankpb.CreateAccountRequest) (*bankpb.CreateAccountResponse, error) {
					assert.Equal(t, "uuid-1", in.UserId)
					return &bankpb.CreateAccountResponse{AccountId: "acct-1"}, nil
				},
			}
			router := newAccountRouter(accounts, "uuid-1")
			w := doJSON(router, http.MethodPost, "/api/account/create", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestGetAccountHandler(t *testing.T) {
	accounts := &mockAccountClient{
		getFn: func(in *bankpb.GetAccountRequest) (*bankpb.GetAccountResponse, error) {
			switch in.AccountId {
			case "mine":
				resp := ownedAccount("mine", "uuid-1")
				resp.Account.Balance = 123456
				return resp, nil
			case "theirs":
				return ownedAccount("theirs", "uuid-2"), nil
			}
			return nil, status.Error(codes.NotFound, "account not found")
		},
	}
	router := newAccountRouter(accounts, "uuid-1")

	w := doJSON(router, http.MethodGet, "/api/account/mine", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Status  string `json:"status"`
		Account struct {
			Balance string `json:"balance"`
			UserID  string `json:"user_id"`
		} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "1234.56", resp.Account.Balance, "balances surface as decimal strings")

	w = doJSON(router, http.MethodGet, "/api/account/theirs", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodGet, "/api/account/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAccountsHandler(t *testing.T) {
	accounts := &mockAccountClient{
		getByUserFn: func(in *bankpb.GetUserAccountsRequest) (*bankpb.GetUserAccountsResponse, error) {
			assert.Equal(t, "uuid-1", in.UserId)
			return &bankpb.GetUserAccountsResponse{Accounts: []*bankpb.Account{
				ownedAccount("a1", "uuid-1").Account,
				ownedAccount("a2", "uuid-1").Account,
			}}, nil
		},
	}
	router := newAccountRouter(accounts, "uuid-1")

	w := doJSON(router, http.MethodGet, "/api/account/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a1")
	assert.Contains(t, w.Body.String(), "a2")
}

func TestUpdateAccountHandler(t *testing.T) {
	accounts := &mockAccountClient{
		getFn: func(in *bankpb.GetAccountRequest) (*bankpb.GetAccountResponse, error) {
			return ownedAccount(in.AccountId, "uuid-1"), nil
		},
		updateFn: func(in *bankpb.UpdateAccountRequest) (*bankpb.UpdateAccountResponse, error) {
			assert.Equal(t, int64(5000), in.Balance)
			resp := ownedAccount(in.AccountId, "uuid-1")
			resp.Account.Balance = in.Balance
			return &bankpb.UpdateAccountResponse{Account: resp.Account}, nil
		},
	}
	router := newAccountRouter(accounts, "uuid-1")

	w := doJSON(router, http.MethodPut, "/api/account/update", map[string]any{
		"account_id": "mine", "balance": "50.00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "50.00")

	w = doJSON(router, http.MethodPut, "/api/account/update", map[string]any{
		"account_id": "mine", "balance": "-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryHandler(t *testing.T) {
	history := &mockHistoryClient{
		historyFn: func(in *bankpb.GetTransactionHistoryRequest) (*bankpb.GetTransactionHistoryResponse, error) {
			assert.Equal(t, "mine", in.AccountId)
			return &bankpb.GetTransactionHistoryResponse{Transactions: []*bankpb.Transaction{
				{TransactionId: "tx-1", TransactionType: bankpb.TransactionType_DEPOSIT, ToAccountId: "mine", Amount: 2500, Timestamp: 1700000000000},
				{TransactionId: "tx-2", TransactionType: bankpb.TransactionType_WITHDRAWAL, FromAccountId: "mine", Amount: 1000, Timestamp: 1690000000000},
			}}, nil
		},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHistoryHandler(accountsOwnedBy("uuid-1"), history)
	r.GET("/api/history/transactions", fakeAuth("uuid-1"), h.Transactions)

	w := doJSON(r, http.MethodGet, "/api/history/transactions?account_id=mine", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "tx-1")
	assert.Contains(t, w.Body.String(), "WITHDRAWAL")
	assert.Contains(t, w.Body.String(), "25.00")

	w = doJSON(r, http.MethodGet, "/api/history/transactions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryForbiddenForOtherUsersAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHistoryHandler(accountsOwnedBy("uuid-2"), &mockHistoryClient{})
	r.GET("/api/history/transactions", fakeAuth("uuid-1"), h.Transactions)

	w := doJSON(r, http.MethodGet, "/api/history/transactions?account_id=mine", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
