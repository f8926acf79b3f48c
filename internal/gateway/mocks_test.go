package gateway

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	"github.com/davidgarcial/bank-architecture/internal/bankpb"
)

// ---- mock clients ----

type mockUserClient struct {
	createFn     func(*bankpb.CreateUserRequest) (*bankpb.CreateUserResponse, error)
	getByEmailFn func(*bankpb.GetUserByUserNameRequest) (*bankpb.GetUserResponse, error)
	getByIdFn    func(*bankpb.GetUserByIdRequest) (*bankpb.GetUserResponse, error)
	updateFn     func(*bankpb.UpdateUserRequest) (*bankpb.UpdateUserResponse, error)
	deleteFn     func(*bankpb.DeleteUserRequest) (*bankpb.DeleteUserResponse, error)
}

func (m *mockUserClient) CreateUser(_ context.Context, in *bankpb.CreateUserRequest, _ ...grpc.CallOption) (*bankpb.CreateUserResponse, error) {
	if m.createFn != nil {
		return m.createFn(in)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockUserClient) GetUserByEmail(_ context.Context, in *bankpb.GetUserByUserNameRequest, _ ...grpc.CallOption) (*bankpb.GetUserResponse, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(in)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockUserClient) GetUserById(_ context.Context, in *bankpb.GetUserByIdRequest, _ ...grpc.CallOption) (*bankpb.GetUserResponse, error) {
	if m.getByIdFn != nil {
		return m.getByIdFn(in)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockUserClient) UpdateUser(_ context.Context, in *bankpb.UpdateUserRequest, _ ...grpc.CallOption) (*bankpb.UpdateUserResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(in)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockUserClient) DeleteUser(_ context.Context, in *bankpb.DeleteUserRequest, _ ...grpc.CallOption) (*bankpb.DeleteUserResponse, error) {
	if m.deleteFn != nil {
		return m.deleteFn(in)
	}
	return nil, fmt.Errorf("not configured")
}

type mockAccountClient struct {
	createFn    func(*bankpb.CreateAccountRequest) (*bankpb.CreateAccountResponse, error)
	getFn       func(*bankpb.GetAccountRequest) (*bankpb.GetAccountResponse, error)
	getByUserFn func(*bankpb.GetUserAccountsRequest) (*bankpb.GetUserAccountsResponse, error)
	updateFn    func(*bankpb.UpdateAccountRequest) (*bankpb.UpdateAccountResponse, error)
}

func (m *mockAccountClient) CreateAccount(_ context.Context, in *bankpb.CreateAccountRequest, _ ...grpc.CallOption) (*bankpb.CreateAccountResponse, error) {
	if m.createFn != nil {
		return m.createFn(in)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockAccountClient) GetAccount(_ context.Context, in *bankpb.GetAccountRequest, _ ...grpc.CallOption) (*bankpb.GetAccountResponse, error) {
	if m.getFn != nil {
		return m.getFn(in)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockAccountClient) GetUserAccounts(_ context.Context, in *bankpb.GetUserAccountsRequest, _ ...grpc.CallOption) (*bankpb.GetUserAccountsResponse, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(in)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockAccountClient) UpdateAccount(_ context.Context, in *bankpb.UpdateAccountRequest, _ ...grpc.CallOption) (*bankpb.UpdateAccountResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(in)
	}
	return nil, fmt.Errorf("not configured")
}

type mockDepositClient struct {
	depositFn func(*bankpb.MakeDepositRequest) (*bankpb.MakeDepositResponse, error)
	balanceFn func(*bankpb.CheckAccountBalanceRequest) (*bankpb.CheckAccountBalanceResponse, error)
}

func (m *mockDepositClient) MakeDeposit(_ context.Context, in *bankpb.MakeDepositRequest, _ ...grpc.CallOption) (*bankpb.MakeDepositResponse, error) {
	if m.depositFn != nil {
		return m.depositFn(in)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockDepositClient) CheckAccountBalance(_ context.Context, in *bankpb.CheckAccountBalanceRequest, _ ...grpc.CallOption) (*bankpb.CheckAccountBalanceResponse, error) {
	if m.balanceFn != nil {
		return m.balanceFn(in)
	}
	return nil, fmt.Errorf("not configured")
}

type mockWithdrawalClient struct {
	withdrawFn func(*bankpb.MakeWithdrawalRequest) (*bankpb.MakeWithdrawalResponse, error)
	balanceFn  func(*bankpb.CheckAccountBalanceRequest) (*bankpb.CheckAccountBalanceResponse, error)
}

func (m *mockWithdrawalClient) MakeWithdrawal(_ context.Context, in *bankpb.MakeWithdrawalRequest, _ ...grpc.CallOption) (*bankpb.MakeWithdrawalResponse, error) {
	if m.withdrawFn != nil {
		return m.withdrawFn(in)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockWithdrawalClient) CheckAccountBalance(_ context.Context, in *bankpb.CheckAccountBalanceRequest, _ ...grpc.CallOption) (*bankpb.CheckAccountBalanceResponse, error) {
	if m.balanceFn != nil {
		return m.balanceFn(in)
	}
	return nil, fmt.Errorf("not configured")
}

type mockHistoryClient struct {
	historyFn func(*bankpb.GetTransactionHistoryRequest) (*bankpb.GetTransactionHistoryResponse, error)
}

func (m *mockHistoryClient) GetTransactionHistory(_ context.Context, in *bankpb.GetTransactionHistoryRequest, _ ...grpc.CallOption) (*bankpb.GetTransactionHistoryResponse, error) {
	if m.historyFn != nil {
		return m.historyFn(in)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func fakeAuth(userUUID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userKey, userUUID)
		c.Next()
	}
}
