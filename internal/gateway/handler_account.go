package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/money"
)

type AccountHandler struct {
	accounts bankpb.AccountServiceClient
}

func NewAccountHandler(accounts bankpb.AccountServiceClient) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type CreateAccountRequest struct {
	AccountType string `json:"account_type" validate:"required,oneof=CHECKING SAVINGS"`
	AccountName string `json:"account_name" validate:"required"`
}

type UpdateAccountRequest struct {
	AccountID string          `json:"account_id" validate:"required"`
	Balance   decimal.Decimal `json:"balance"`
}

func accountJSON(a *bankpb.Account) gin.H {
	return gin.H{
		"id":           a.AccountId,
		"user_id":      a.UserId,
		"account_type": a.AccountType.String(),
		"account_name": a.AccountName,
		"balance":      money.FromMinorUnits(a.Balance).StringFixed(2),
	}
}

// fetchOwned loads the account and enforces that it belongs to the caller.
// On failure the response is already written and ok is false.
func fetchOwned(c *gin.Context, accounts bankpb.AccountServiceClient, accountID string) (*bankpb.Account, bool) {
	sub, exists := UserUUID(c)
	if !exists {
		respondFail(c, http.StatusUnauthorized, "you are not logged in")
		return nil, false
	}

	resp, err := accounts.GetAccount(c.Request.Context(), &bankpb.GetAccountRequest{AccountId: accountID})
	if err != nil {
		respondRPC(c, err)
		return nil, false
	}
	if resp.Account == nil || resp.Account.UserId != sub {
		respondFail(c, http.StatusForbidden, "account does not belong to you")
		return nil, false
	}
	return resp.Account, true
}

func (h *AccountHandler) Create(c *gin.Context) {
	sub, ok := UserUUID(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "you are not logged in")
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondFail(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	resp, err := h.accounts.CreateAccount(c.Request.Context(), &bankpb.CreateAccountRequest{
		UserId:      sub,
		AccountType: bankpb.AccountTypeFromString(req.AccountType),
		AccountName: req.AccountName,
	})
	if err != nil {
		respondRPC(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"data": gin.H{"account": gin.H{"id": resp.AccountId}}})
}

func (h *AccountHandler) Get(c *gin.Context) {
	account, ok := fetchOwned(c, h.accounts, c.Param("id"))
	if !ok {
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"account": accountJSON(account)})
}

func (h *AccountHandler) List(c *gin.Context) {
	sub, ok := UserUUID(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "you are not logged in")
		return
	}

	resp, err := h.accounts.GetUserAccounts(c.Request.Context(), &bankpb.GetUserAccountsRequest{UserId: sub})
	if err != nil {
		respondRPC(c, err)
		return
	}

	accounts := make([]gin.H, 0, len(resp.Accounts))
	for _, a := range resp.Accounts {
		accounts = append(accounts, accountJSON(a))
	}
	respondSuccess(c, http.StatusOK, gin.H{"data": gin.H{"accounts": accounts}})
}

func (h *AccountHandler) Update(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondFail(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	balance, err := money.ToMinorUnits(req.Balance)
	if err != nil || balance < 0 {
		respondFail(c, http.StatusBadRequest, "invalid balance")
		return
	}

	if _, ok := fetchOwned(c, h.accounts, req.AccountID); !ok {
		return
	}

	resp, err := h.accounts.UpdateAccount(c.Request.Context(), &bankpb.UpdateAccountRequest{
		AccountId: req.AccountID,
		Balance:   balance,
	})
	if err != nil {
		respondRPC(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"account": accountJSON(resp.Account)})
}
