package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/events"
	"github.com/davidgarcial/bank-architecture/internal/models"
	"github.com/davidgarcial/bank-architecture/internal/repository"
)

// AccountService implements account.AccountService. Reads go through the
// view cache when one is wired; every write invalidates before returning.
type AccountService struct {
	store     AccountStore
	reader    AccountReader
	publisher *events.Publisher
}

// NewAccountService builds the server. reader and publisher may be nil;
// reads then hit the store directly and no events are emitted.
func NewAccountService(store AccountStore, reader AccountReader, publisher *events.Publisher) *AccountService {
	return &AccountService{store: store, reader: reader, publisher: publisher}
}

func accountToProto(a *models.Account) *bankpb.Account {
	return &bankpb.Account{
		AccountId:   a.ID.Hex(),
		UserId:      a.UserID,
		AccountName: a.AccountName,
		AccountType: bankpb.AccountTypeFromString(a.AccountType),
		Balance:     a.Balance,
		CreatedAt:   a.CreatedAt.UnixMilli(),
		UpdatedAt:   a.UpdatedAt.UnixMilli(),
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, req *bankpb.CreateAccountRequest) (*bankpb.CreateAccountResponse, error) {
	if req.UserId == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	if req.AccountName == "" {
		return nil, status.Error(codes.InvalidArgument, "account name is required")
	}

	id, err := s.store.Create(ctx, req.UserId, req.AccountType.String(), req.AccountName)
	if err != nil {
		log.Error().Err(err).Msg("failed to create account")
		return nil, status.Error(codes.Internal, "failed to create account")
	}

	s.publisher.TryPublish(ctx, events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID:   id.Hex(),
		UserID:      req.UserId,
		AccountName: req.AccountName,
		AccountType: req.AccountType.String(),
	})

	log.Info().Str("account_id", id.Hex()).Str("user_uuid", req.UserId).Msg("account created")
	return &bankpb.CreateAccountResponse{AccountId: id.Hex()}, nil
}

func (s *AccountService) GetAccount(ctx context.Context, req *bankpb.GetAccountRequest) (*bankpb.GetAccountResponse, error) {
	id, err := primitive.ObjectIDFromHex(req.AccountId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid account id")
	}

	account, err := s.getAccount(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "account not found")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")
		return nil, status.Error(codes.Internal, "failed to get account")
	}

	return &bankpb.GetAccountResponse{Account: accountToProto(account)}, nil
}

func (s *AccountService) getAccount(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	if s.reader != nil {
		return s.reader.Get(ctx, id)
	}
	return s.store.Get(ctx, id)
}

func (s *AccountService) GetUserAccounts(ctx context.Context, req *bankpb.GetUserAccountsRequest) (*bankpb.GetUserAccountsResponse, error) {
	if req.UserId == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}

	accounts, err := s.store.GetByUser(ctx, req.UserId)
	if err != nil {
		log.Error().Err(err).Msg("failed to list accounts")
		return nil, status.Error(codes.Internal, "failed to list accounts")
	}

	resp := &bankpb.GetUserAccountsResponse{Accounts: make([]*bankpb.Account, 0, len(accounts))}
	for i := range accounts {
		resp.Accounts = append(resp.Accounts, accountToProto(&accounts[i]))
	}
	return resp, nil
}

// UpdateAccount overwrites the balance. This is the administrative path;
// customer money movements go through the deposit and withdrawal services.
func (s *AccountService) UpdateAccount(ctx context.Context, req *bankpb.UpdateAccountRequest) (*bankpb.UpdateAccountResponse, error) {
	id, err := primitive.ObjectIDFromHex(req.AccountId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid account id")
	}
	if req.Balance < 0 {
		return nil, status.Error(codes.InvalidArgument, "balance must not be negative")
	}

	account, err := s.store.SetBalance(ctx, id, req.Balance)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "account not found")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to update account")
		return nil, status.Error(codes.Internal, "failed to update account")
	}

	if s.reader != nil {
		s.reader.Invalidate(ctx, id)
	}

	return &bankpb.UpdateAccountResponse{Account: accountToProto(account)}, nil
}
