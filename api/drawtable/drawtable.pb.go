// Code mirrors drawtable.proto. Messages carry protobuf struct tags and are
// marshaled through github.com/gogo/protobuf/proto (see codec.go).

package drawtable

import (
	context "context"

	proto "github.com/gogo/protobuf/proto"
	grpc "google.golang.org/grpc"
)

type TableRequest struct {
}

func (m *TableRequest) Reset()         { *m = TableRequest{} }
func (m *TableRequest) String() string { return proto.CompactTextString(m) }
func (*TableRequest) ProtoMessage()    {}

type LengthTotal struct {
	Length        int32 `protobuf:"varint,1,opt,name=length,proto3" json:"length,omitempty"`
	WeightedTotal int64 `protobuf:"varint,2,opt,name=weighted_total,json=weightedTotal,proto3" json:"weighted_total,omitempty"`
}

func (m *LengthTotal) Reset()         { *m = LengthTotal{} }
func (m *LengthTotal) String() string { return proto.CompactTextString(m) }
func (*LengthTotal) ProtoMessage()    {}

func (m *LengthTotal) GetLength() int32 {
	if m != nil {
		return m.Length
	}
	return 0
}

func (m *LengthTotal) GetWeightedTotal() int64 {
	if m != nil {
		return m.WeightedTotal
	}
	return 0
}

type TargetRow struct {
	Target int32          `protobuf:"varint,1,opt,name=target,proto3" json:"target,omitempty"`
	Totals []*LengthTotal `protobuf:"bytes,2,rep,name=totals,proto3" json:"totals,omitempty"`
}

func (m *TargetRow) Reset()         { *m = TargetRow{} }
func (m *TargetRow) String() string { return proto.CompactTextString(m) }
func (*TargetRow) ProtoMessage()    {}

func (m *TargetRow) GetTarget() int32 {
	if m != nil {
		return m.Target
	}
	return 0
}

func (m *TargetRow) GetTotals() []*LengthTotal {
	if m != nil {
		return m.Totals
	}
	return nil
}

type TableResponse struct {
	Rows []*TargetRow `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
}

func (m *TableResponse) Reset()         { *m = TableResponse{} }
func (m *TableResponse) String() string { return proto.CompactTextString(m) }
func (*TableResponse) ProtoMessage()    {}

func (m *TableResponse) GetRows() []*TargetRow {
	if m != nil {
		return m.Rows
	}
	return nil
}

type ReachRequest struct {
	Target int32 `protobuf:"varint,1,opt,name=target,proto3" json:"target,omitempty"`
	Length int32 `protobuf:"varint,2,opt,name=length,proto3" json:"length,omitempty"`
}

func (m *ReachRequest) Reset()         { *m = ReachRequest{} }
func (m *ReachRequest) String() string { return proto.CompactTextString(m) }
func (*ReachRequest) ProtoMessage()    {}

func (m *ReachRequest) GetTarget() int32 {
	if m != nil {
		return m.Target
	}
	return 0
}

func (m *ReachRequest) GetLength() int32 {
	if m != nil {
		return m.Length
	}
	return 0
}

type Fraction struct {
	Numerator   int64 `protobuf:"varint,1,opt,name=numerator,proto3" json:"numerator,omitempty"`
	Denominator int64 `protobuf:"varint,2,opt,name=denominator,proto3" json:"denominator,omitempty"`
}

func (m *Fraction) Reset()         { *m = Fraction{} }
func (m *Fraction) String() string { return proto.CompactTextString(m) }
func (*Fraction) ProtoMessage()    {}

func (m *Fraction) GetNumerator() int64 {
	if m != nil {
		return m.Numerator
	}
	return 0
}

func (m *Fraction) GetDenominator() int64 {
	if m != nil {
		return m.Denominator
	}
	return 0
}

type ReachResponse struct {
	Probability *Fraction `protobuf:"bytes,1,opt,name=probability,proto3" json:"probability,omitempty"`
	Error       string    `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *ReachResponse) Reset()         { *m = ReachResponse{} }
func (m *ReachResponse) String() string { return proto.CompactTextString(m) }
func (*ReachResponse) ProtoMessage()    {}

func (m *ReachResponse) GetProbability() *Fraction {
	if m != nil {
		return m.Probability
	}
	return nil
}

func (m *ReachResponse) GetError() string {
	if m != nil {
		return m.Error
	}
	return ""
}

func init() {
	proto.RegisterType((*TableRequest)(nil), "drawtable.TableRequest")
	proto.RegisterType((*LengthTotal)(nil), "drawtable.LengthTotal")
	proto.RegisterType((*TargetRow)(nil), "drawtable.TargetRow")
	proto.RegisterType((*TableResponse)(nil), "drawtable.TableResponse")
	proto.RegisterType((*ReachRequest)(nil), "drawtable.ReachRequest")
	proto.RegisterType((*Fraction)(nil), "drawtable.Fraction")
	proto.RegisterType((*ReachResponse)(nil), "drawtable.ReachResponse")
}

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConn

// DrawTableServiceClient is the client API for DrawTableService service.
type DrawTableServiceClient interface {
	// Table returns every row of the draw table.
	Table(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*TableResponse, error)
	// StreamTable sends the rows one target at a time, in ascending order.
	StreamTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (DrawTableService_StreamTableClient, error)
	// Reach returns the probability of ending on a target with a given hand length.
	Reach(ctx context.Context, in *ReachRequest, opts ...grpc.CallOption) (*ReachResponse, error)
}

type drawTableServiceClient struct {
	cc *grpc.ClientConn
}

func NewDrawTableServiceClient(cc *grpc.ClientConn) DrawTableServiceClient {
	return &drawTableServiceClient{cc}
}

func (c *drawTableServiceClient) Table(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*TableResponse, error) {
	out := new(TableResponse)
	err := c.cc.Invoke(ctx, "/drawtable.DrawTableService/Table", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *drawTableServiceClient) StreamTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (DrawTableService_StreamTableClient, error) {
	stream, err := c.cc.NewStream(ctx, &_DrawTableService_serviceDesc.Streams[0], "/drawtable.DrawTableService/StreamTable", opts...)
	if err != nil {
		return nil, err
	}
	x := &drawTableServiceStreamTableClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type DrawTableService_StreamTableClient interface {
	Recv() (*TargetRow, error)
	grpc.ClientStream
}

type drawTableServiceStreamTableClient struct {
	grpc.ClientStream
}

func (x *drawTableServiceStreamTableClient) Recv() (*TargetRow, error) {
	m := new(TargetRow)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *drawTableServiceClient) Reach(ctx context.Context, in *ReachRequest, opts ...grpc.CallOption) (*ReachResponse, error) {
	out := new(ReachResponse)
	err := c.cc.Invoke(ctx, "/drawtable.DrawTableService/Reach", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DrawTableServiceServer is the server API for DrawTableService service.
type DrawTableServiceServer interface {
	// Table returns every row of the draw table.
	Table(context.Context, *TableRequest) (*TableResponse, error)
	// StreamTable sends the rows one target at a time, in ascending order.
	StreamTable(*TableRequest, DrawTableService_StreamTableServer) error
	// Reach returns the probability of ending on a target with a given hand length.
	Reach(context.Context, *ReachRequest) (*ReachResponse, error)
}

func RegisterDrawTableServiceServer(s *grpc.Server, srv DrawTableServiceServer) {
	s.RegisterService(&_DrawTableService_serviceDesc, srv)
}

func _DrawTableService_Table_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TableRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DrawTableServiceServer).Table(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/drawtable.DrawTableService/Table",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DrawTableServiceServer).Table(ctx, req.(*TableRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DrawTableService_StreamTable_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(TableRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DrawTableServiceServer).StreamTable(m, &drawTableServiceStreamTableServer{stream})
}

type DrawTableService_StreamTableServer interface {
	Send(*TargetRow) error
	grpc.ServerStream
}

type drawTableServiceStreamTableServer struct {
	grpc.ServerStream
}

func (x *drawTableServiceStreamTableServer) Send(m *TargetRow) error {
	return x.ServerStream.SendMsg(m)
}

func _DrawTableService_Reach_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReachRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DrawTableServiceServer).Reach(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/drawtable.DrawTableService/Reach",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DrawTableServiceServer).Reach(ctx, req.(*ReachRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _DrawTableService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "drawtable.DrawTableService",
	HandlerType: (*DrawTableServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Table",
			Handler:    _DrawTableService_Table_Handler,
		},
		{
			MethodName: "Reach",
			Handler:    _DrawTableService_Reach_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamTable",
			Handler:       _DrawTableService_StreamTable_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "drawtable.proto",
}
