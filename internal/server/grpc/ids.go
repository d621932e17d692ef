package grpcserver

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	uliddv1 "github.com/rzbill/ulidd/api/ulidd/v1"
	idsvc "github.com/rzbill/ulidd/internal/services/ids"
	logpkg "github.com/rzbill/ulidd/pkg/log"
	"github.com/rzbill/ulidd/pkg/ulid"
)

type idService struct {
	uliddv1.UnimplementedIDServiceServer
	svc    *idsvc.Service
	logger logpkg.Logger
}

var _ uliddv1.IDServiceServer = (*idService)(nil)

func (s *idService) one(ctx context.Context, mode ulid.Mode) (*wrapperspb.StringValue, error) {
	ids, err := s.svc.Generate(ctx, mode, 1, idsvc.SourceGRPC)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(ids[0].String()), nil
}

func (s *idService) New(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return s.one(ctx, ulid.Permissive)
}

func (s *idService) NewMonotonic(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return s.one(ctx, ulid.Strict)
}

func (s *idService) Generate(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	fields := req.GetFields()
	mode, err := s.svc.ResolveMode(fields["mode"].GetStringValue())
	if err != nil {
		return nil, toStatus(err)
	}
	count := 1
	if v, ok := fields["count"]; ok {
		n := v.GetNumberValue()
		if n != float64(int(n)) || n < 1 {
			return nil, status.Errorf(codes.InvalidArgument, "count must be a positive integer, got %v", n)
		}
		count = int(n)
	}
	ids, err := s.svc.Generate(ctx, mode, count, idsvc.SourceGRPC)
	if err != nil {
		return nil, toStatus(err)
	}
	out := &structpb.ListValue{Values: make([]*structpb.Value, len(ids))}
	for i, id := range ids {
		out.Values[i] = structpb.NewStringValue(id.String())
	}
	return out, nil
}

func (s *idService) WithTimestamp(_ context.Context, req *wrapperspb.UInt64Value) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(s.svc.WithTimestamp(req.GetValue()).String()), nil
}

func (s *idService) Inspect(_ context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	d, err := s.svc.Inspect(req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := structpb.NewStruct(map[string]interface{}{
		"ulid":         d.ULID,
		"timestamp_ms": d.Timestamp,
		"time":         d.Time.Format(time.RFC3339Nano),
		"random":       d.Random,
		"random_hex":   d.RandomHex,
		"uuid":         d.UUID,
	})
	if err != nil {
		s.logger.Error("inspect encode failed", logpkg.Err(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (s *idService) Validate(_ context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return wrapperspb.Bool(s.svc.Validate(req.GetValue())), nil
}

func (s *idService) ToUUID(_ context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return stringResult(s.svc.ToUUID(req.GetValue()))
}

func (s *idService) FromUUID(_ context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return stringResult(s.svc.FromUUID(req.GetValue()))
}

func (s *idService) Normalize(_ context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return stringResult(s.svc.Normalize(req.GetValue()))
}

func (s *idService) EncodeBase32(_ context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return stringResult(s.svc.EncodeBase32(req.GetValue()))
}

func (s *idService) DecodeBase32(_ context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return stringResult(s.svc.DecodeBase32(req.GetValue()))
}

func stringResult(v string, err error) (*wrapperspb.StringValue, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(v), nil
}
