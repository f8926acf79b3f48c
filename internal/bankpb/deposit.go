package bankpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protowire"
)

// Messages for deposit.DepositService (proto/deposit.proto).
// CheckAccountBalanceRequest/Response are shared with the withdrawal
// service; both protos declare the identical pair.

type MakeDepositRequest struct {
	// FromAccountId is empty when IsBankAgent is set.
	FromAccountId string
	ToAccountId   string
	// Amount in minor units (cents).
	Amount      int64
	IsBankAgent bool
}

func (m *MakeDepositRequest) Reset() { *m = MakeDepositRequest{} }

func (m *MakeDepositRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.FromAccountId)
	b = appendString(b, 2, m.ToAccountId)
	b = appendInt64(b, 3, m.Amount)
	b = appendBool(b, 4, m.IsBankAgent)
	return b, nil
}

func (m *MakeDepositRequest) UnmarshalWire(data []byte) error {
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
			m.FromAccountId = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.ToAccountId = v
			data = data[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Amount = int64(v)
			data = data[n:]
		case num == 4 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.IsBankAgent = v != 0
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

type MakeDepositResponse struct {
	Success bool
}

func (m *MakeDepositResponse) Reset() { *m = MakeDepositResponse{} }

func (m *MakeDepositResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendBool(b, 1, m.Success)
	return b, nil
}

func (m *MakeDepositResponse) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Success = v != 0
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

type CheckAccountBalanceRequest struct {
	AccountId string
}

func (m *CheckAccountBalanceRequest) Reset() { *m = CheckAccountBalanceRequest{} }

func (m *CheckAccountBalanceRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.AccountId)
	return b, nil
}

func (m *CheckAccountBalanceRequest) UnmarshalWire(data []byte) error {
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

type CheckAccountBalanceResponse struct {
	// Balance in minor units (cents).
	Balance int64
}

func (m *CheckAccountBalanceResponse) Reset() { *m = CheckAccountBalanceResponse{} }

func (m *CheckAccountBalanceResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.Balance)
	return b, nil
}

func (m *CheckAccountBalanceResponse) UnmarshalWire(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
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

// Client and server plumbing.

type DepositServiceClient interface {
	MakeDeposit(ctx context.Context, in *MakeDepositRequest, opts ...grpc.CallOption) (*MakeDepositResponse, error)
	CheckAccountBalance(ctx context.Context, in *CheckAccountBalanceRequest, opts ...grpc.CallOption) (*CheckAccountBalanceResponse, error)
}

type depositServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDepositServiceClient(cc grpc.ClientConnInterface) DepositServiceClient {
	return &depositServiceClient{cc}
}

func (c *depositServiceClient) MakeDeposit(ctx context.Context, in *MakeDepositRequest, opts ...grpc.CallOption) (*MakeDepositResponse, error) {
	out := new(MakeDepositResponse)
	if err := c.cc.Invoke(ctx, "/deposit.DepositService/MakeDeposit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *depositServiceClient) CheckAccountBalance(ctx context.Context, in *CheckAccountBalanceRequest, opts ...grpc.CallOption) (*CheckAccountBalanceResponse, error) {
	out := new(CheckAccountBalanceResponse)
	if err := c.cc.Invoke(ctx, "/deposit.DepositService/CheckAccountBalance", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type DepositServiceServer interface {
	MakeDeposit(context.Context, *MakeDepositRequest) (*MakeDepositResponse, error)
	CheckAccountBalance(context.Context, *CheckAccountBalanceRequest) (*CheckAccountBalanceResponse, error)
}

func RegisterDepositServiceServer(s grpc.ServiceRegistrar, srv DepositServiceServer) {
	s.RegisterService(&DepositService_ServiceDesc, srv)
}

func _DepositService_MakeDeposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MakeDepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DepositServiceServer).MakeDeposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/deposit.DepositService/MakeDeposit"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DepositServiceServer).MakeDeposit(ctx, req.(*MakeDepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DepositService_CheckAccountBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckAccountBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DepositServiceServer).CheckAccountBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/deposit.DepositService/CheckAccountBalance"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DepositServiceServer).CheckAccountBalance(ctx, req.(*CheckAccountBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var DepositService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "deposit.DepositService",
	HandlerType: (*DepositServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "MakeDeposit", Handler: _DepositService_MakeDeposit_Handler},
		{MethodName: "CheckAccountBalance", Handler: _DepositService_CheckAccountBalance_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/deposit.proto",
}
