package gateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/money"
)

type HistoryHandler struct {
	accounts bankpb.AccountServiceClient
	history  bankpb.HistoricalServiceClient
}

func NewHistoryHandler(accounts bankpb.AccountServiceClient, history bankpb.HistoricalServiceClient) *HistoryHandler {
	return &HistoryHandler{accounts: accounts, history: history}
}

func transactionJSON(tx *bankpb.Transaction) gin.H {
	out := gin.H{
		"id":        tx.TransactionId,
		"type":      tx.TransactionType.String(),
		"amount":    money.FromMinorUnits(tx.Amount).StringFixed(2),
		"timestamp": time.UnixMilli(tx.Timestamp).UTC().Format(time.RFC3339),
	}
	if tx.FromAccountId != "" {
		out["from_account_id"] = tx.FromAccountId
	}
	if tx.ToAccountId != "" {
		out["to_account_id"] = tx.ToAccountId
	}
	return out
}

// Transactions serves GET /api/history/transactions?account_id=… for
// accounts the caller owns.
func (h *HistoryHandler) Transactions(c *gin.Context) {
	accountID := c.Query("account_id")
	if accountID == "" {
		respondFail(c, http.StatusBadRequest, "account_id is required")
		return
	}

	if _, ok := fetchOwned(c, h.accounts, accountID); !ok {
		return
	}

	resp, err := h.history.GetTransactionHistory(c.Request.Context(), &bankpb.GetTransactionHistoryRequest{
		AccountId: accountID,
	})
	if err != nil {
		respondRPC(c, err)
		return
	}

	transactions := make([]gin.H, 0, len(resp.Transactions))
	for _, tx := range resp.Transactions {
		transactions = append(transactions, transactionJSON(tx))
	}
	respondSuccess(c, http.StatusOK, gin.H{"data": gin.H{"transactions": transactions}})
}
