package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/events"
	"github.com/davidgarcial/bank-architecture/internal/models"
)

// WithdrawalService implements withdrawal.WithdrawalService. A withdrawal is
// one conditional debit followed by one WITHDRAWAL ledger entry; the debit
// either applies in full or not at all, so no compensation is needed.
type WithdrawalService struct {
	accounts  BalanceStore
	ledger    LedgerStore
	reader    AccountReader
	publisher *events.Publisher
}

func NewWithdrawalService(accounts BalanceStore, ledger LedgerStore, reader AccountReader, publisher *events.Publisher) *WithdrawalService {
	return &WithdrawalService{accounts: accounts, ledger: ledger, reader: reader, publisher: publisher}
}

func (s *WithdrawalService) MakeWithdrawal(ctx context.Context, req *bankpb.MakeWithdrawalRequest) (*bankpb.MakeWithdrawalResponse, error) {
	if req.Amount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}
	id, err := primitive.ObjectIDFromHex(req.AccountId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid account id")
	}

	if err := s.accounts.ConditionalDebit(ctx, id, req.Amount); err != nil {
		return nil, debitStatus(err, "account")
	}

	tx := models.Transaction{
		Type:          models.TransactionWithdrawal,
		FromAccountID: &id,
		Amount:        req.Amount,
	}
	txID, err := s.ledger.Append(ctx, &tx)
	if err != nil {
		// The debit is committed; the ledger entry is lost. Surface the
		// failure so the operator can reconcile.
		log.Error().Err(err).Str("account_id", id.Hex()).Int64("amount", req.Amount).
			Msg("failed to record withdrawal after debit")
		return nil, status.Error(codes.Internal, "failed to record transaction")
	}

	if s.reader != nil {
		s.reader.Invalidate(ctx, id)
	}

	s.publisher.TryPublish(ctx, events.TransactionEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
		TransactionID: txID.Hex(),
		Type:          tx.Type,
		FromAccountID: id.Hex(),
		Amount:        req.Amount,
	})
	s.publisher.TryPublish(ctx, events.AccountEventsStream, events.BalanceUpdated, events.BalanceUpdatedEvent{
		AccountID: id.Hex(),
		Change:    -req.Amount,
	})

	return &bankpb.MakeWithdrawalResponse{TransactionId: txID.Hex()}, nil
}

func (s *WithdrawalService) CheckAccountBalance(ctx context.Context, req *bankpb.CheckAccountBalanceRequest) (*bankpb.CheckAccountBalanceResponse, error) {
	return checkBalance(ctx, s.accounts, req)
}
