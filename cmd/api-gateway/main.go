package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/davidgarcial/bank-architecture/internal/config"
	"github.com/davidgarcial/bank-architecture/internal/gateway"
	"github.com/davidgarcial/bank-architecture/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup("api-gateway", cfg.LogLevel)

	if err := cfg.RequireJWT(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	clients, err := gateway.DialClients(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to dial backend services")
	}
	defer clients.Close()

	router := gateway.NewRouter(cfg, clients)
	server := &http.Server{
		Addr:    cfg.HTTPServerAddress,
		Handler: router,
	}

	go func() {
		log.Info().Str("address", cfg.HTTPServerAddress).Msg("gateway listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
