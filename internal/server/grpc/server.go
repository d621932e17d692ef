package grpcserver

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	uliddv1 "github.com/rzbill/ulidd/api/ulidd/v1"
	"github.com/rzbill/ulidd/internal/runtime"
	idsvc "github.com/rzbill/ulidd/internal/services/ids"
)

// healthInterval is how often the store is probed for the health service.
const healthInterval = 5 * time.Second

// Server owns the gRPC server instance and runtime.
type Server struct {
	rt     *runtime.Runtime
	svc    *idsvc.Service
	grpc   *grpc.Server
	health *health.Server
	lis    net.Listener
}

// New constructs a gRPC server and registers the ID and health services.
func New(rt *runtime.Runtime, opts ...grpc.ServerOption) *Server {
	s := &Server{
		rt:     rt,
		svc:    idsvc.New(rt),
		grpc:   grpc.NewServer(opts...),
		health: health.NewServer(),
	}
	uliddv1.RegisterIDServiceServer(s.grpc, &idService{svc: s.svc, logger: rt.Logger().WithComponent("grpc")})
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.refreshHealth(context.Background())
	return s
}

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is done.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.grpc.Serve(l) }()
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.health.Shutdown()
			s.grpc.GracefulStop()
			return nil
		case err := <-errCh:
			return err
		case <-ticker.C:
			s.refreshHealth(ctx)
		}
	}
}

// Close stops the server and closes the listener.
func (s *Server) Close() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if s.lis != nil {
		_ = s.lis.Close()
	}
}
