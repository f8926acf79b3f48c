package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/config"
	"github.com/davidgarcial/bank-architecture/internal/logging"
	"github.com/davidgarcial/bank-architecture/internal/mongodb"
	"github.com/davidgarcial/bank-architecture/internal/repository"
	"github.com/davidgarcial/bank-architecture/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup("user-service", cfg.LogLevel)

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer db.Close(ctx)

	users := repository.NewUserRepository(db.Users())
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	server := grpc.NewServer(grpc.ForceServerCodec(bankpb.Codec{}))
	bankpb.RegisterUserServiceServer(server, service.NewUserService(users))

	lis, err := net.Listen("tcp", cfg.GRPCServerAddress)
	if err != nil {
		log.Fatal().Err(err).Str("address", cfg.GRPCServerAddress).Msg("failed to listen")
	}

	go func() {
		log.Info().Str("address", cfg.GRPCServerAddress).Msg("user service listening")
		if err := server.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("grpc server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	server.GracefulStop()
}
