package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/events"
	"github.com/davidgarcial/bank-architecture/internal/models"
	"github.com/davidgarcial/bank-architecture/internal/repository"
)

// DepositService implements deposit.DepositService: the transfer engine.
//
// A transfer is debit source, credit destination, append one DEPOSIT ledger
// entry. When a TxRunner is wired the three writes commit atomically; without
// one, a failed credit is compensated by re-crediting the source, and the
// ledger entry is only appended after both balance moves have succeeded.
type DepositService struct {
	accounts  BalanceStore
	ledger    LedgerStore
	tx        TxRunner
	reader    AccountReader
	publisher *events.Publisher
}

func NewDepositService(accounts BalanceStore, ledger LedgerStore, tx TxRunner, reader AccountReader, publisher *events.Publisher) *DepositService {
	return &DepositService{accounts: accounts, ledger: ledger, tx: tx, reader: reader, publisher: publisher}
}

func (s *DepositService) MakeDeposit(ctx context.Context, req *bankpb.MakeDepositRequest) (*bankpb.MakeDepositResponse, error) {
	if req.Amount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}
	to, err := primitive.ObjectIDFromHex(req.ToAccountId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid destination account id")
	}

	var from primitive.ObjectID
	if !req.IsBankAgent {
		from, err = primitive.ObjectIDFromHex(req.FromAccountId)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid source account id")
		}
		if from == to {
			return nil, status.Error(codes.InvalidArgument, "source and destination must differ")
		}
	}

	tx := models.Transaction{
		Type:        models.TransactionDeposit,
		ToAccountID: &to,
		Amount:      req.Amount,
	}
	if !req.IsBankAgent {
		tx.FromAccountID = &from
	}

	if s.tx != nil {
		err = s.transferTransactional(ctx, req.IsBankAgent, from, to, req.Amount, &tx)
	} else {
		err = s.transferCompensated(ctx, req.IsBankAgent, from, to, req.Amount, &tx)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, req.IsBankAgent, from, to)
	s.publishTransfer(ctx, req.IsBankAgent, &tx)

	return &bankpb.MakeDepositResponse{Success: true}, nil
}

// transferTransactional runs both balance moves and the ledger append in a
// single multi-document transaction.
func (s *DepositService) transferTransactional(ctx context.Context, agent bool, from, to primitive.ObjectID, amount int64, tx *models.Transaction) error {
	var outcome error
	err := s.tx.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if !agent {
			if err := s.accounts.ConditionalDebit(sc, from, amount); err != nil {
				outcome = debitStatus(err, "source")
				return nil, err
			}
		}
		if err := s.accounts.Credit(sc, to, amount); err != nil {
			outcome = creditStatus(err, "destination")
			return nil, err
		}
		if _, err := s.ledger.Append(sc, tx); err != nil {
			outcome = status.Error(codes.Internal, "failed to record transaction")
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if outcome != nil {
			return outcome
		}
		log.Error().Err(err).Msg("transfer transaction aborted")
		return status.Error(codes.Internal, "transfer failed")
	}
	return nil
}

// transferCompensated is the path for deployments without transaction
// support. The ledger append comes last so a crash between the two balance
// moves never leaves a phantom ledger entry; a failed credit re-credits the
// source before returning.
func (s *DepositService) transferCompensated(ctx context.Context, agent bool, from, to primitive.ObjectID, amount int64, tx *models.Transaction) error {
	if !agent {
		if err := s.accounts.ConditionalDebit(ctx, from, amount); err != nil {
			return debitStatus(err, "source")
		}
	}

	if err := s.accounts.Credit(ctx, to, amount); err != nil {
		if !agent {
			if cerr := s.accounts.Credit(ctx, from, amount); cerr != nil {
				// Compensation failed: the debit is now unaccounted for.
				log.Error().Err(cerr).
					Str("account_id", from.Hex()).
					Int64("amount", amount).
					Msg("compensation failed after credit failure")
			}
		}
		return creditStatus(err, "destination")
	}

	if _, err := s.ledger.Append(ctx, tx); err != nil {
		log.Error().Err(err).Msg("failed to record transfer")
		return status.Error(codes.Internal, "failed to record transaction")
	}
	return nil
}

func debitStatus(err error, side string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return status.Error(codes.NotFound, side+" account not found")
	case errors.Is(err, repository.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, "insufficient funds")
	}
	log.Error().Err(err).Msg("debit failed")
	return status.Error(codes.Internal, "transfer failed")
}

func creditStatus(err error, side string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return status.Error(codes.NotFound, side+" account not found")
	}
	log.Error().Err(err).Msg("credit failed")
	return status.Error(codes.Internal, "transfer failed")
}

func (s *DepositService) invalidate(ctx context.Context, agent bool, from, to primitive.ObjectID) {
	if s.reader == nil {
		return
	}
	if !agent {
		s.reader.Invalidate(ctx, from)
	}
	s.reader.Invalidate(ctx, to)
}

func (s *DepositService) publishTransfer(ctx context.Context, agent bool, tx *models.Transaction) {
	data := events.TransactionCreatedEvent{
		TransactionID: tx.ID.Hex(),
		Type:          tx.Type,
		ToAccountID:   tx.ToAccountID.Hex(),
		Amount:        tx.Amount,
	}
	if tx.FromAccountID != nil {
		data.FromAccountID = tx.FromAccountID.Hex()
	}
	s.publisher.TryPublish(ctx, events.TransactionEventsStream, events.TransactionCreated, data)

	if !agent {
		s.publisher.TryPublish(ctx, events.AccountEventsStream, events.BalanceUpdated, events.BalanceUpdatedEvent{
			AccountID: data.FromAccountID,
			Change:    -tx.Amount,
		})
	}
	s.publisher.TryPublish(ctx, events.AccountEventsStream, events.BalanceUpdated, events.BalanceUpdatedEvent{
		AccountID: data.ToAccountID,
		Change:    tx.Amount,
	})
}

func (s *DepositService) CheckAccountBalance(ctx context.Context, req *bankpb.CheckAccountBalanceRequest) (*bankpb.CheckAccountBalanceResponse, error) {
	return checkBalance(ctx, s.accounts, req)
}

// checkBalance serves the balance probe both money services expose.
func checkBalance(ctx context.Context, accounts BalanceStore, req *bankpb.CheckAccountBalanceRequest) (*bankpb.CheckAccountBalanceResponse, error) {
	id, err := primitive.ObjectIDFromHex(req.AccountId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid account id")
	}

	balance, err := accounts.ReadBalance(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "account not found")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to read balance")
		return nil, status.Error(codes.Internal, "failed to read balance")
	}

	return &bankpb.CheckAccountBalanceResponse{Balance: balance}, nil
}
