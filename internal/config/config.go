// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries the settings for every binary in the repository; each
// service reads the subset it needs.
type Config struct {
	MongoURI string `mapstructure:"MONGODB_URI"`
	// MongoTransactions enables the multi-document transaction path in the
	// transfer engine. Requires a replica-set deployment.
	MongoTransactions bool `mapstructure:"MONGODB_TRANSACTIONS"`

	GRPCServerAddress string `mapstructure:"GRPC_SERVER_ADDRESS"`
	HTTPServerAddress string `mapstructure:"HTTP_SERVER_ADDRESS"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	JWTSecret    string        `mapstructure:"JWT_SECRET"`
	JWTExpiredIn time.Duration `mapstructure:"JWT_EXPIRED_IN"`
	// JWTMaxAge is the token cookie max-age in seconds.
	JWTMaxAge int `mapstructure:"JWT_MAXAGE"`

	UserServiceURL       string `mapstructure:"USER_GRPC_SERVICE_URL"`
	AccountServiceURL    string `mapstructure:"ACCOUNT_GRPC_SERVICE_URL"`
	DepositServiceURL    string `mapstructure:"DEPOSIT_GRPC_SERVICE_URL"`
	WithdrawalServiceURL string `mapstructure:"WITHDRAWAL_GRPC_SERVICE_URL"`
	HistoricalServiceURL string `mapstructure:"HISTORICAL_GRPC_SERVICE_URL"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
}

// Load reads the environment into a Config. Every key has a development
// default; production deployments override via env vars.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_TRANSACTIONS", false)
	v.SetDefault("GRPC_SERVER_ADDRESS", "0.0.0.0:50051")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8000")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRED_IN", "60m")
	v.SetDefault("JWT_MAXAGE", 3600)
	v.SetDefault("USER_GRPC_SERVICE_URL", "localhost:50051")
	v.SetDefault("ACCOUNT_GRPC_SERVICE_URL", "localhost:50052")
	v.SetDefault("DEPOSIT_GRPC_SERVICE_URL", "localhost:50053")
	v.SetDefault("WITHDRAWAL_GRPC_SERVICE_URL", "localhost:50054")
	v.SetDefault("HISTORICAL_GRPC_SERVICE_URL", "localhost:50055")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// RequireJWT fails fast when the signing secret is missing. Called by the
// gateway; the backends never see the secret.
func (c *Config) RequireJWT() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	return nil
}
