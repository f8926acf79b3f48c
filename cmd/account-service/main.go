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
	logging.Setup("account-service", cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer db.Close(ctx)

	store := repository.NewAccountRepository(db.Accounts())

	// Redis is an optimization here, not a dependency: without it the
	// service answers every read from MongoDB and emits no events.
	var reader service.AccountReader
	var publisher *events.Publisher
	redis, err := redisclient.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without view cache")
	} else {
		defer redis.Close()
		readRepo := repository.NewAccountReadRepository(store, redis.Client)
		reader = readRepo
		publisher = events.NewPublisher(redis.Client)

		go func() {
			subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
				Group:    "account-service-group",
				Consumer: "account-consumer-1",
				Stream:   events.TransactionEventsStream,
				Handler:  service.TransactionEventHandler(readRepo),
			})
			if err := subscriber.Start(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("subscriber stopped")
			}
		}()
	}

	server := grpc.NewServer(grpc.ForceServerCodec(bankpb.Codec{}))
	bankpb.RegisterAccountServiceServer(server, service.NewAccountService(store, reader, publisher))

	lis, err := net.Listen("tcp", cfg.GRPCServerAddress)
	if err != nil {
		log.Fatal().Err(err).Str("address", cfg.GRPCServerAddress).Msg("failed to listen")
	}

	go func() {
		log.Info().Str("address", cfg.GRPCServerAddress).Msg("account service listening")
		if err := server.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("grpc server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	cancel()
	server.GracefulStop()
}
