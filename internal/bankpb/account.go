package bankpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protowire"
)

// Messages for account.AccountService (proto/account.proto).

type AccountType int32

const (
	AccountType_CHECKING AccountType = 0
	AccountType_SAVINGS  AccountType = 1
)

func (t AccountType) String() string {
	switch t {
	case AccountType_CHECKING:
		return "CHECKING"
	case AccountType_SAVINGS:
		return "SAVINGS"
	}
	return "CHECKING"
}

// AccountTypeFromString maps the stored string form back to the enum.
// Unknown values fall back to CHECKING, matching proto3 enum defaulting.
func AccountTypeFromString(s string) AccountType {
	if s == "SAVINGS" {
		return AccountType_SAVINGS
	}
	return AccountType_CHECKING
}

type Account struct {
	AccountId   string
	UserId      string
	AccountName string
	AccountType AccountType
	// Balance in minor units (cents).
	Balance   int64
	CreatedAt int64
	UpdatedAt int64
}

func (m *Account) Reset() { *m = Account{} }

func (m *Account) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.AccountId)
	b = appendString(b, 2, m.UserId)
	b = appendString(b, 3, m.AccountName)
	b = appendInt32(b, 4, int32(m.AccountType))
	b = appendInt64(b, 5, m.Balance)
	b = appendInt64(b, 6, m.CreatedAt)
	b = appendInt64(b, 7, m.UpdatedAt)
	return b, nil
}

func (m *Account) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.AccountId = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.UserId = v
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.AccountName = v
			data = data[n:]
		case num == 4 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.AccountType = AccountType(int32(v))
			data = data[n:]
		case num == 5 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Balance = int64(v)
			data = data[n:]
		case num == 6 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.CreatedAt = int64(v)
			data = data[n:]
		case num == 7 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.UpdatedAt = int64(v)
			data = data[n:]
		default:
			n, err := skipField(num, typ, data)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

type CreateAccountRequest struct {
	UserId      string
	AccountType AccountType
	AccountName string
}

func (m *CreateAccountRequest) Reset() { *m = CreateAccountRequest{} }

func (m *CreateAccountRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.UserId)
	b = appendInt32(b, 2, int32(m.AccountType))
	b = appendString(b, 3, m.AccountName)
	return b, nil
}

func (m *CreateAccountRequest) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.UserId = v
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.AccountType = AccountType(int32(v))
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.AccountName = v
			data = data[n:]
		default:
			n, err := skipField(num, typ, data)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

type CreateAccountResponse struct {
	AccountId string
}

func (m *CreateAccountResponse) Reset() { *m = CreateAccountResponse{} }

func (m *CreateAccountResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.AccountId)
	return b, nil
}

func (m *CreateAccountResponse) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.AccountId = v
			data = data[n:]
		default:
			n, err := skipField(num, typ, data)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

type GetAccountRequest struct {
	AccountId string
}

func (m *GetAccountRequest) Reset() { *m = GetAccountRequest{} }

func (m *GetAccountRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.AccountId)
	return b, nil
}

func (m *GetAccountRequest) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.AccountId = v
			data = data[n:]
		default:
			n, err := skipField(num, typ, data)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

type GetAccountResponse struct {
	Account *Account
}

func (m *GetAccountResponse) Reset() { *m = GetAccountResponse{} }

func (m *GetAccountResponse) MarshalWire() ([]byte, error) {
	var b []byte
	if m.Account != nil {
		var err error
		b, err = appendMessage(b, 1, m.Account)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *GetAccountResponse) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeBytes(data)
			if err != nil {
				return err
			}
			acc := new(Account)
			if err := acc.UnmarshalWire(v); err != nil {
				return err
			}
			m.Account = acc
			data = data[n:]
		default:
			n, err := skipField(num, typ, data)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

type GetUserAccountsRequest struct {
	UserId string
}

func (m *GetUserAccountsRequest) Reset() { *m = GetUserAccountsRequest{} }

func (m *GetUserAccountsRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.UserId)
	return b, nil
}

func (m *GetUserAccountsRequest) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.UserId = v
			data = data[n:]
		default:
			n, err := skipField(num, typ, data)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

type GetUserAccountsResponse struct {
	Accounts []*Account
}

func (m *GetUserAccountsResponse) Reset() { *m = GetUserAccountsResponse{} }

func (m *GetUserAccountsResponse) MarshalWire() ([]byte, error) {
	var b []byte
	for _, acc := range m.Accounts {
		var err error
		b, err = appendMessage(b, 1, acc)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *GetUserAccountsResponse) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeBytes(data)
			if err != nil {
				return err
			}
			acc := new(Account)
			if err := acc.UnmarshalWire(v); err != nil {
				return err
			}
			m.Accounts = append(m.Accounts, acc)
			data = data[n:]
		default:
			n, err := skipField(num, typ, data)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

type UpdateAccountRequest struct {
	AccountId string
	// Balance in minor units (cents).
	Balance int64
}

func (m *UpdateAccountRequest) Reset() { *m = UpdateAccountRequest{} }

func (m *UpdateAccountRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.AccountId)
	b = appendInt64(b, 2, m.Balance)
	return b, nil
}

func (m *UpdateAccountRequest) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.AccountId = v
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Balance = int64(v)
			data = data[n:]
		default:
			n, err := skipField(num, typ, data)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

type UpdateAccountResponse struct {
	Account *Account
}

func (m *UpdateAccountResponse) Reset() { *m = UpdateAccountResponse{} }

func (m *UpdateAccountResponse) MarshalWire() ([]byte, error) {
	var b []byte
	if m.Account != nil {
		var err error
		b, err = appendMessage(b, 1, m.Account)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *UpdateAccountResponse) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeBytes(data)
			if err != nil {
				return err
			}
			acc := new(Account)
			if err := acc.UnmarshalWire(v); err != nil {
				return err
			}
			m.Account = acc
			data = data[n:]
		default:
			n, err := skipField(num, typ, data)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// Client and server plumbing.

type AccountServiceClient interface {
	CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*CreateAccountResponse, error)
	GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error)
	GetUserAccounts(ctx context.Context, in *GetUserAccountsRequest, opts ...grpc.CallOption) (*GetUserAccountsResponse, error)
	UpdateAccount(ctx context.Context, in *UpdateAccountRequest, opts ...grpc.CallOption) (*UpdateAccountResponse, error)
}

type accountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) AccountServiceClient {
	return &accountServiceClient{cc}
}

func (c *accountServiceClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*CreateAccountResponse, error) {
	out := new(CreateAccountResponse)
	if err := c.cc.Invoke(ctx, "/account.AccountService/CreateAccount", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountServiceClient) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error) {
	out := new(GetAccountResponse)
	if err := c.cc.Invoke(ctx, "/account.AccountService/GetAccount", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountServiceClient) GetUserAccounts(ctx context.Context, in *GetUserAccountsRequest, opts ...grpc.CallOption) (*GetUserAccountsResponse, error) {
	out := new(GetUserAccountsResponse)
	if err := c.cc.Invoke(ctx, "/account.AccountService/GetUserAccounts", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accountServiceClient) UpdateAccount(ctx context.Context, in *UpdateAccountRequest, opts ...grpc.CallOption) (*UpdateAccountResponse, error) {
	out := new(UpdateAccountResponse)
	if err := c.cc.Invoke(ctx, "/account.AccountService/UpdateAccount", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type AccountServiceServer interface {
	CreateAccount(context.Context, *CreateAccountRequest) (*CreateAccountResponse, error)
	GetAccount(context.Context, *GetAccountRequest) (*GetAccountResponse, error)
	GetUserAccounts(context.Context, *GetUserAccountsRequest) (*GetUserAccountsResponse, error)
	UpdateAccount(context.Context, *UpdateAccountRequest) (*UpdateAccountResponse, error)
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

func _AccountService_CreateAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).CreateAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/account.AccountService/CreateAccount"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccountServiceServer).CreateAccount(ctx, req.(*CreateAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountService_GetAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).GetAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/account.AccountService/GetAccount"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccountServiceServer).GetAccount(ctx, req.(*GetAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountService_GetUserAccounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserAccountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).GetUserAccounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/account.AccountService/GetUserAccounts"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccountServiceServer).GetUserAccounts(ctx, req.(*GetUserAccountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountService_UpdateAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServiceServer).UpdateAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/account.AccountService/UpdateAccount"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccountServiceServer).UpdateAccount(ctx, req.(*UpdateAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "account.AccountService",
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateAccount", Handler: _AccountService_CreateAccount_Handler},
		{MethodName: "GetAccount", Handler: _AccountService_GetAccount_Handler},
		{MethodName: "GetUserAccounts", Handler: _AccountService_GetUserAccounts_Handler},
		{MethodName: "UpdateAccount", Handler: _AccountService_UpdateAccount_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/account.proto",
}
