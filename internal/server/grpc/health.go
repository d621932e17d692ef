package grpcserver

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	uliddv1 "github.com/rzbill/ulidd/api/ulidd/v1"
)

// refreshHealth publishes the runtime's health for both the server-wide ""
// entry and the ID service.
func (s *Server) refreshHealth(ctx context.Context) {
	st := healthpb.HealthCheckResponse_SERVING
	if err := s.rt.CheckHealth(ctx); err != nil {
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(uliddv1.ServiceName, st)
}
