package gateway

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
	"github.com/davidgarcial/bank-architecture/internal/config"
)

// Clients bundles the five downstream service clients. Handlers depend on
// the interfaces so tests can substitute fakes.
type Clients struct {
	Users       bankpb.UserServiceClient
	Accounts    bankpb.AccountServiceClient
	Deposits    bankpb.DepositServiceClient
	Withdrawals bankpb.WithdrawalServiceClient
	History     bankpb.HistoricalServiceClient

	conns []*grpc.ClientConn
}

func dial(target string) (*grpc.ClientConn, error) {
	conn, err := grpc.Dial(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(bankpb.Codec{})),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", target, err)
	}
	return conn, nil
}

// DialClients connects to every downstream service. Connections are lazy;
// failures surface on the first call, not here.
func DialClients(cfg *config.Config) (*Clients, error) {
	clients := &Clients{}

	targets := []struct {
		target string
		bind   func(*grpc.ClientConn)
	}{
		{cfg.UserServiceURL, func(c *grpc.ClientConn) { clients.Users = bankpb.NewUserServiceClient(c) }},
		{cfg.AccountServiceURL, func(c *grpc.ClientConn) { clients.Accounts = bankpb.NewAccountServiceClient(c) }},
		{cfg.DepositServiceURL, func(c *grpc.ClientConn) { clients.Deposits = bankpb.NewDepositServiceClient(c) }},
		{cfg.WithdrawalServiceURL, func(c *grpc.ClientConn) { clients.Withdrawals = bankpb.NewWithdrawalServiceClient(c) }},
		{cfg.HistoricalServiceURL, func(c *grpc.ClientConn) { clients.History = bankpb.NewHistoricalServiceClient(c) }},
	}
	for _, t := range targets {
		conn, err := dial(t.target)
		if err != nil {
			clients.Close()
			return nil, err
		}
		clients.conns = append(clients.conns, conn)
		t.bind(conn)
	}

	return clients, nil
}

func (c *Clients) Close() {
	for _, conn := range c.conns {
		conn.Close()
	}
}
