package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/models"
)

// HistoricalService implements historical.HistoricalService, the read model
// over the ledger.
type HistoricalService struct {
	ledger HistoryStore
}

func NewHistoricalService(ledger HistoryStore) *HistoricalService {
	return &HistoricalService{ledger: ledger}
}

func transactionToProto(tx *models.Transaction) *bankpb.Transaction {
	out := &bankpb.Transaction{
		TransactionId: tx.ID.Hex(),
		Amount:        tx.Amount,
		Timestamp:     tx.Timestamp.UnixMilli(),
	}
	if tx.Type == models.TransactionWithdrawal {
		out.TransactionType = bankpb.TransactionType_WITHDRAWAL
	}
	if tx.FromAccountID != nil {
		out.FromAccountId = tx.FromAccountID.Hex()
	}
	if tx.ToAccountID != nil {
		out.ToAccountId = tx.ToAccountID.Hex()
	}
	return out
}

// GetTransactionHistory returns every ledger entry touching the account,
// newest first. An account with no history gets an empty list, not an error.
func (s *HistoricalService) GetTransactionHistory(ctx context.Context, req *bankpb.GetTransactionHistoryRequest) (*bankpb.GetTransactionHistoryResponse, error) {
	id, err := primitive.ObjectIDFromHex(req.AccountId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid account id")
	}

	transactions, err := s.ledger.History(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get history")
		return nil, status.Error(codes.Internal, "failed to get history")
	}

	resp := &bankpb.GetTransactionHistoryResponse{Transactions: make([]*bankpb.Transaction, 0, len(transactions))}
	for i := range transactions {
		resp.Transactions = append(resp.Transactions, transactionToProto(&transactions[i]))
	}
	return resp, nil
}
