package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/repository"
	"github.com/davidgarcial/bank-architecture/internal/utils"
)

// UserService implements user.UserService. Passwords are hashed here, before
// they reach the store; lookups return the hash so the gateway can verify
// credentials at login.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) CreateUser(ctx context.Context, req *bankpb.CreateUserRequest) (*bankpb.CreateUserResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to hash password")
	}

	user, err := s.users.Create(ctx, req.Username, hash)
	if errors.Is(err, repository.ErrDuplicateUsername) {
		return nil, status.Error(codes.AlreadyExists, "username already taken")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")
		return nil, status.Error(codes.Internal, "failed to create user")
	}

	log.Info().Str("user_uuid", user.UUID).Msg("user created")
	return &bankpb.CreateUserResponse{Id: user.ID.Hex()}, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, req *bankpb.GetUserByUserNameRequest) (*bankpb.GetUserResponse, error) {
	if req.Username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")
		return nil, status.Error(codes.Internal, "failed to get user")
	}

	return &bankpb.GetUserResponse{
		Id:       user.ID.Hex(),
		Uuid:     user.UUID,
		Username: user.Username,
		Password: user.Password,
	}, nil
}

func (s *UserService) GetUserById(ctx context.Context, req *bankpb.GetUserByIdRequest) (*bankpb.GetUserResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}

	user, err := s.users.GetByUUID(ctx, req.Id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")
		return nil, status.Error(codes.Internal, "failed to get user")
	}

	return &bankpb.GetUserResponse{
		Id:       user.ID.Hex(),
		Uuid:     user.UUID,
		Username: user.Username,
		Password: user.Password,
	}, nil
}

func (s *UserService) UpdateUser(ctx context.Context, req *bankpb.UpdateUserRequest) (*bankpb.UpdateUserResponse, error) {
	id, err := primitive.ObjectIDFromHex(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user id")
	}
	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to hash password")
	}

	err = s.users.Update(ctx, id, req.Username, hash)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if errors.Is(err, repository.ErrDuplicateUsername) {
		return nil, status.Error(codes.AlreadyExists, "username already taken")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to update user")
		return nil, status.Error(codes.Internal, "failed to update user")
	}

	return &bankpb.UpdateUserResponse{Success: true}, nil
}

func (s *UserService) DeleteUser(ctx context.Context, req *bankpb.DeleteUserRequest) (*bankpb.DeleteUserResponse, error) {
	id, err := primitive.ObjectIDFromHex(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user id")
	}

	err = s.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to delete user")
		return nil, status.Error(codes.Internal, "failed to delete user")
	}

	return &bankpb.DeleteUserResponse{Success: true}, nil
}
