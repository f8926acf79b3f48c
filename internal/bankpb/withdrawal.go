package bankpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protowire"
)

// Messages for withdrawal.WithdrawalService (proto/withdrawal.proto).
// The balance-check pair is defined in deposit.go.

type MakeWithdrawalRequest struct {
	AccountId string
	// Amount in minor units (cents).
	Amount int64
}

func (m *MakeWithdrawalRequest) Reset() { *m = MakeWithdrawalRequest{} }

func (m *MakeWithdrawalRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.AccountId)
	b = appendInt64(b, 2, m.Amount)
	return b, nil
}

func (m *MakeWithdrawalRequest) UnmarshalWire(data []byte) error {
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
			m.Amount = int64(v)
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

type MakeWithdrawalResponse struct {
	TransactionId string
}

func (m *MakeWithdrawalResponse) Reset() { *m = MakeWithdrawalResponse{} }

func (m *MakeWithdrawalResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.TransactionId)
	return b, nil
}

func (m *MakeWithdrawalResponse) UnmarshalWire(data []byte) error {
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
			m.TransactionId = v
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

type WithdrawalServiceClient interface {
	MakeWithdrawal(ctx context.Context, in *MakeWithdrawalRequest, opts ...grpc.CallOption) (*MakeWithdrawalResponse, error)
	CheckAccountBalance(ctx context.Context, in *CheckAccountBalanceRequest, opts ...grpc.CallOption) (*CheckAccountBalanceResponse, error)
}

type withdrawalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWithdrawalServiceClient(cc grpc.ClientConnInterface) WithdrawalServiceClient {
	return &withdrawalServiceClient{cc}
}

func (c *withdrawalServiceClient) MakeWithdrawal(ctx context.Context, in *MakeWithdrawalRequest, opts ...grpc.CallOption) (*MakeWithdrawalResponse, error) {
	out := new(MakeWithdrawalResponse)
	if err := c.cc.Invoke(ctx, "/withdrawal.WithdrawalService/MakeWithdrawal", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *withdrawalServiceClient) CheckAccountBalance(ctx context.Context, in *CheckAccountBalanceRequest, opts ...grpc.CallOption) (*CheckAccountBalanceResponse, error) {
	out := new(CheckAccountBalanceResponse)
	if err := c.cc.Invoke(ctx, "/withdrawal.WithdrawalService/CheckAccountBalance", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type WithdrawalServiceServer interface {
	MakeWithdrawal(context.Context, *MakeWithdrawalRequest) (*MakeWithdrawalResponse, error)
	CheckAccountBalance(context.Context, *CheckAccountBalanceRequest) (*CheckAccountBalanceResponse, error)
}

func RegisterWithdrawalServiceServer(s grpc.ServiceRegistrar, srv WithdrawalServiceServer) {
	s.RegisterService(&WithdrawalService_ServiceDesc, srv)
}

func _WithdrawalService_MakeWithdrawal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MakeWithdrawalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WithdrawalServiceServer).MakeWithdrawal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/withdrawal.WithdrawalService/MakeWithdrawal"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WithdrawalServiceServer).MakeWithdrawal(ctx, req.(*MakeWithdrawalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WithdrawalService_CheckAccountBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckAccountBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WithdrawalServiceServer).CheckAccountBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/withdrawal.WithdrawalService/CheckAccountBalance"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WithdrawalServiceServer).CheckAccountBalance(ctx, req.(*CheckAccountBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var WithdrawalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "withdrawal.WithdrawalService",
	HandlerType: (*WithdrawalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "MakeWithdrawal", Handler: _WithdrawalService_MakeWithdrawal_Handler},
		{MethodName: "CheckAccountBalance", Handler: _WithdrawalService_CheckAccountBalance_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/withdrawal.proto",
}
