package uliddv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "ulidd.v1.IDService"

const (
	IDService_New_FullMethodName           = "/ulidd.v1.IDService/New"
	IDService_NewMonotonic_FullMethodName  = "/ulidd.v1.IDService/NewMonotonic"
	IDService_Generate_FullMethodName      = "/ulidd.v1.IDService/Generate"
	IDService_WithTimestamp_FullMethodName = "/ulidd.v1.IDService/WithTimestamp"
	IDService_Inspect_FullMethodName       = "/ulidd.v1.IDService/Inspect"
	IDService_Validate_FullMethodName      = "/ulidd.v1.IDService/Validate"
	IDService_ToUUID_FullMethodName        = "/ulidd.v1.IDService/ToUUID"
	IDService_FromUUID_FullMethodName      = "/ulidd.v1.IDService/FromUUID"
	IDService_Normalize_FullMethodName     = "/ulidd.v1.IDService/Normalize"
	IDService_EncodeBase32_FullMethodName  = "/ulidd.v1.IDService/EncodeBase32"
	IDService_DecodeBase32_FullMethodName  = "/ulidd.v1.IDService/DecodeBase32"
)

// IDServiceServer is the server API for ulidd.v1.IDService.
//
// Generate takes a Struct {"mode": string, "count": number} and returns a
// ListValue of ULID strings. Inspect returns a Struct with ulid, timestamp_ms,
// time, random, random_hex and uuid.
type IDServiceServer interface {
	New(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	NewMonotonic(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	Generate(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	WithTimestamp(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.StringValue, error)
	Inspect(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Validate(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	ToUUID(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	FromUUID(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Normalize(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	EncodeBase32(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	DecodeBase32(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// UnimplementedIDServiceServer answers Unimplemented for every method.
type UnimplementedIDServiceServer struct{}

func unimplemented(name string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", name)
}

func (UnimplementedIDServiceServer) New(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("New")
}
func (UnimplementedIDServiceServer) NewMonotonic(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("NewMonotonic")
}
func (UnimplementedIDServiceServer) Generate(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, unimplemented("Generate")
}
func (UnimplementedIDServiceServer) WithTimestamp(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("WithTimestamp")
}
func (UnimplementedIDServiceServer) Inspect(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, unimplemented("Inspect")
}
func (UnimplementedIDServiceServer) Validate(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, unimplemented("Validate")
}
func (UnimplementedIDServiceServer) ToUUID(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("ToUUID")
}
func (UnimplementedIDServiceServer) FromUUID(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("FromUUID")
}
func (UnimplementedIDServiceServer) Normalize(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("Normalize")
}
func (UnimplementedIDServiceServer) EncodeBase32(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("EncodeBase32")
}
func (UnimplementedIDServiceServer) DecodeBase32(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("DecodeBase32")
}

// RegisterIDServiceServer registers srv on s.
func RegisterIDServiceServer(s grpc.ServiceRegistrar, srv IDServiceServer) {
	s.RegisterService(&IDService_ServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodHandler, honouring any
// server interceptor.
func unaryHandler[Req, Res proto.Message](fullMethod string, newReq func() Req, call func(IDServiceServer, context.Context, Req) (Res, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(IDServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(IDServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func newEmpty() *emptypb.Empty           { return new(emptypb.Empty) }
func newString() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }
func newUInt64() *wrapperspb.UInt64Value { return new(wrapperspb.UInt64Value) }
func newStruct() *structpb.Struct        { return new(structpb.Struct) }

// IDService_ServiceDesc is the grpc.ServiceDesc for ulidd.v1.IDService.
var IDService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IDServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "New", Handler: unaryHandler(IDService_New_FullMethodName, newEmpty, IDServiceServer.New)},
		{MethodName: "NewMonotonic", Handler: unaryHandler(IDService_NewMonotonic_FullMethodName, newEmpty, IDServiceServer.NewMonotonic)},
		{MethodName: "Generate", Handler: unaryHandler(IDService_Generate_FullMethodName, newStruct, IDServiceServer.Generate)},
		{MethodName: "WithTimestamp", Handler: unaryHandler(IDService_WithTimestamp_FullMethodName, newUInt64, IDServiceServer.WithTimestamp)},
		{MethodName: "Inspect", Handler: unaryHandler(IDService_Inspect_FullMethodName, newString, IDServiceServer.Inspect)},
		{MethodName: "Validate", Handler: unaryHandler(IDService_Validate_FullMethodName, newString, IDServiceServer.Validate)},
		{MethodName: "ToUUID", Handler: unaryHandler(IDService_ToUUID_FullMethodName, newString, IDServiceServer.ToUUID)},
		{MethodName: "FromUUID", Handler: unaryHandler(IDService_FromUUID_FullMethodName, newString, IDServiceServer.FromUUID)},
		{MethodName: "Normalize", Handler: unaryHandler(IDService_Normalize_FullMethodName, newString, IDServiceServer.Normalize)},
		{MethodName: "EncodeBase32", Handler: unaryHandler(IDService_EncodeBase32_FullMethodName, newString, IDServiceServer.EncodeBase32)},
		{MethodName: "DecodeBase32", Handler: unaryHandler(IDService_DecodeBase32_FullMethodName, newString, IDServiceServer.DecodeBase32)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ulidd/v1/ids.proto",
}
