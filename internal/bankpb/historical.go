package bankpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protowire"
)

// Messages for historical.HistoricalService (proto/historical.proto).

type TransactionType int32

const (
	TransactionType_DEPOSIT    TransactionType = 0
	TransactionType_WITHDRAWAL TransactionType = 1
)

func (t TransactionType) String() string {
	switch t {
	case TransactionType_DEPOSIT:
		return "DEPOSIT"
	case TransactionType_WITHDRAWAL:
		return "WITHDRAWAL"
	}
	return "DEPOSIT"
}

type Transaction struct {
	TransactionId   string
	TransactionType TransactionType
	// FromAccountId is empty for agent deposits; always set for withdrawals.
	FromAccountId string
	// ToAccountId is empty for withdrawals.
	ToAccountId string
	// Amount in minor units (cents).
	Amount int64
	// Timestamp in Unix milliseconds, assigned by the store at commit time.
	Timestamp int64
}

func (m *Transaction) Reset() { *m = Transaction{} }

func (m *Transaction) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.TransactionId)
	b = appendInt32(b, 2, int32(m.TransactionType))
	b = appendString(b, 3, m.FromAccountId)
	b = appendString(b, 4, m.ToAccountId)
	b = appendInt64(b, 5, m.Amount)
	b = appendInt64(b, 6, m.Timestamp)
	return b, nil
}

func (m *Transaction) UnmarshalWire(data []byte) error {
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
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.TransactionType = TransactionType(int32(v))
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.FromAccountId = v
			data = data[n:]
		case num == 4 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.ToAccountId = v
			data = data[n:]
		case num == 5 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Amount = int64(v)
			data = data[n:]
		case num == 6 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Timestamp = int64(v)
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

type GetTransactionHistoryRequest struct {
	AccountId string
}

func (m *GetTransactionHistoryRequest) Reset() { *m = GetTransactionHistoryRequest{} }

func (m *GetTransactionHistoryRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.AccountId)
	return b, nil
}

func (m *GetTransactionHistoryRequest) UnmarshalWire(data []byte) error {
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

type GetTransactionHistoryResponse struct {
	// Transactions are newest first: (timestamp desc, transaction_id desc).
	Transactions []*Transaction
}

func (m *GetTransactionHistoryResponse) Reset() { *m = GetTransactionHistoryResponse{} }

func (m *GetTransactionHistoryResponse) MarshalWire() ([]byte, error) {
	var b []byte
	for _, tx := range m.Transactions {
		var err error
		b, err = appendMessage(b, 1, tx)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *GetTransactionHistoryResponse) UnmarshalWire(data []byte) error {
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
			tx := new(Transaction)
			if err := tx.UnmarshalWire(v); err != nil {
				return err
			}
			m.Transactions = append(m.Transactions, tx)
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

type HistoricalServiceClient interface {
	GetTransactionHistory(ctx context.Context, in *GetTransactionHistoryRequest, opts ...grpc.CallOption) (*GetTransactionHistoryResponse, error)
}

type historicalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewHistoricalServiceClient(cc grpc.ClientConnInterface) HistoricalServiceClient {
	return &historicalServiceClient{cc}
}

func (c *historicalServiceClient) GetTransactionHistory(ctx context.Context, in *GetTransactionHistoryRequest, opts ...grpc.CallOption) (*GetTransactionHistoryResponse, error) {
	out := new(GetTransactionHistoryResponse)
	if err := c.cc.Invoke(ctx, "/historical.HistoricalService/GetTransactionHistory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type HistoricalServiceServer interface {
	GetTransactionHistory(context.Context, *GetTransactionHistoryRequest) (*GetTransactionHistoryResponse, error)
}

func RegisterHistoricalServiceServer(s grpc.ServiceRegistrar, srv HistoricalServiceServer) {
	s.RegisterService(&HistoricalService_ServiceDesc, srv)
}

func _HistoricalService_GetTransactionHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTransactionHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HistoricalServiceServer).GetTransactionHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/historical.HistoricalService/GetTransactionHistory"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HistoricalServiceServer).GetTransactionHistory(ctx, req.(*GetTransactionHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var HistoricalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "historical.HistoricalService",
	HandlerType: (*HistoricalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetTransactionHistory", Handler: _HistoricalService_GetTransactionHistory_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/historical.proto",
}
