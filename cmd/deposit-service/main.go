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
	"github.com/davidgarcial/bank-architecture/internal/events"
	"github.com/davidgarcial/bank-architecture/internal/logging"
	"github.com/davidgarcial/bank-architecture/internal/mongodb"
	redisclient "github.com/davidgarcial/bank-architecture/internal/redis"
	"github.com/davidgarcial/bank-architecture/internal/repository"
	"github.com/davidgarcial/bank-architecture/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup("deposit-service", cfg.LogLevel)

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer db.Close(ctx)

	accounts := repository.NewAccountRepository(db.Accounts())
	ledger := repository.NewTransactionRepository(db.Transactions())

	// The transactional path needs a replica set; standalone deployments
	// run with compensation instead.
	var tx service.TxRunner
	if cfg.MongoTransactions {
		tx = db
		log.Info().Msg("multi-document transactions enabled")
	}

	var reader service.AccountReader
	var publisher *events.Publisher
	redis, err := redisclient.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without events")
	} else {
		defer redis.Close()
		reader = repository.NewAccountReadRepository(accounts, redis.Client)
		publisher = events.NewPublisher(redis.Client)
	}

	server := grpc.NewServer(grpc.ForceServerCodec(bankpb.Codec{}))
	bankpb.RegisterDepositServiceServer(server, service.NewDepositService(accounts, ledger, tx, reader, publisher))

	lis, err := net.Listen("tcp", cfg.GRPCServerAddress)
	if err != nil {
		log.Fatal().Err(err).Str("address", cfg.GRPCServerAddress).Msg("failed to listen")
	}

	go func() {
		log.Info().Str("address", cfg.GRPCServerAddress).Msg("deposit service listening")
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
