// Package grpcserver hosts the gRPC server for ulidd, registering
// ulidd.v1.IDService and the standard grpc.health.v1.Health service and
// delegating to the shared ids service.
//
// Example:
//
//	rt, _ := runtime.Open(runtime.Options{Config: config.Default()})
//	s := grpcserver.New(rt)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":50051")
package grpcserver
