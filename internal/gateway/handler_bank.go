package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/money"
)

// BankHandler fronts the money engines. Ownership is enforced here: the
// caller must own the account being debited (the source of a transfer, the
// account of a withdrawal). Agent deposits have no source to own.
type BankHandler struct {
	accounts    bankpb.AccountServiceClient
	deposits    bankpb.DepositServiceClient
	withdrawals bankpb.WithdrawalServiceClient
}

func NewBankHandler(accounts bankpb.AccountServiceClient, deposits bankpb.DepositServiceClient, withdrawals bankpb.WithdrawalServiceClient) *BankHandler {
	return &BankHandler{accounts: accounts, deposits: deposits, withdrawals: withdrawals}
}

type DepositRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	IsBankAgent   bool            `json:"is_bank_agent"`
}

type WithdrawRequest struct {
	AccountID string          `json:"account_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
}

func (h *BankHandler) Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondFail(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	amount, err := money.PositiveMinorUnits(req.Amount)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "invalid amount")
		return
	}

	if !req.IsBankAgent {
		if req.FromAccountID == "" {
			respondFail(c, http.StatusBadRequest, "from_account_id is required")
			return
		}
		if _, ok := fetchOwned(c, h.accounts, req.FromAccountID); !ok {
			return
		}
	}

	resp, err := h.deposits.MakeDeposit(c.Request.Context(), &bankpb.MakeDepositRequest{
		FromAccountId: req.FromAccountID,
		ToAccountId:   req.ToAccountID,
		Amount:        amount,
		IsBankAgent:   req.IsBankAgent,
	})
	if err != nil {
		respondRPC(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"data": gin.H{"success": resp.Success}})
}

func (h *BankHandler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondFail(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	amount, err := money.PositiveMinorUnits(req.Amount)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "invalid amount")
		return
	}

	if _, ok := fetchOwned(c, h.accounts, req.AccountID); !ok {
		return
	}

	resp, err := h.withdrawals.MakeWithdrawal(c.Request.Context(), &bankpb.MakeWithdrawalRequest{
		AccountId: req.AccountID,
		Amount:    amount,
	})
	if err != nil {
		respondRPC(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"data": gin.H{"transaction_id": resp.TransactionId}})
}
