// Package transports provides pluggable transport implementations for the CLI.
package transports

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	uliddv1 "github.com/rzbill/ulidd/api/ulidd/v1"
)

// GrpcTransport implements IDTransport over gRPC.
type GrpcTransport struct {
	dial func(ctx context.Context) (*grpc.ClientConn, error)
}

var _ IDTransport = (*GrpcTransport)(nil)

// NewGrpcTransport constructs a new GrpcTransport using the provided dialer.
func NewGrpcTransport(dial func(ctx context.Context) (*grpc.ClientConn, error)) *GrpcTransport {
	return &GrpcTransport{dial: dial}
}

func (t *GrpcTransport) withClient(ctx context.Context, fn func(cli uliddv1.IDServiceClient) error) error {
	conn, err := t.dial(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	return fn(uliddv1.NewIDServiceClient(conn))
}

// Generate asks the server for count ULIDs. An empty mode uses the server's
// configured default.
func (t *GrpcTransport) Generate(ctx context.Context, mode string, count int) ([]string, error) {
	var out []string
	err := t.withClient(ctx, func(cli uliddv1.IDServiceClient) error {
		fields := map[string]interface{}{"count": count}
		if mode != "" {
			fields["mode"] = mode
		}
		req, err := structpb.NewStruct(fields)
		if err != nil {
			return err
		}
		list, err := cli.Generate(ctx, req)
		if err != nil {
			return err
		}
		for _, v := range list.GetValues() {
			out = append(out, v.GetStringValue())
		}
		return nil
	})
	return out, err
}

// Inspect decodes a ULID server-side.
func (t *GrpcTransport) Inspect(ctx context.Context, text string) (Details, error) {
	var d Details
	err := t.withClient(ctx, func(cli uliddv1.IDServiceClient) error {
		res, err := cli.Inspect(ctx, wrapperspb.String(text))
		if err != nil {
			return err
		}
		f := res.GetFields()
		d = Details{
			ULID:        f["ulid"].GetStringValue(),
			TimestampMs: uint64(f["timestamp_ms"].GetNumberValue()),
			Time:        f["time"].GetStringValue(),
			Random:      f["random"].GetStringValue(),
			RandomHex:   f["random_hex"].GetStringValue(),
			UUID:        f["uuid"].GetStringValue(),
		}
		return nil
	})
	return d, err
}

// Validate checks text server-side.
func (t *GrpcTransport) Validate(ctx context.Context, text string) (bool, error) {
	var ok bool
	err := t.withClient(ctx, func(cli uliddv1.IDServiceClient) error {
		res, err := cli.Validate(ctx, wrapperspb.String(text))
		if err != nil {
			return err
		}
		ok = res.GetValue()
		return nil
	})
	return ok, err
}
