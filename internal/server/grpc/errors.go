package grpcserver

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	idsvc "github.com/rzbill/ulidd/internal/services/ids"
)

// toStatus maps service errors onto gRPC codes.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	code := codes.Internal
	switch idsvc.Classify(err) {
	case idsvc.KindInvalid:
		code = codes.InvalidArgument
	case idsvc.KindExhausted:
		code = codes.ResourceExhausted
	case idsvc.KindClock:
		code = codes.FailedPrecondition
	case idsvc.KindNotFound:
		code = codes.NotFound
	case idsvc.KindUnavailable:
		code = codes.Unavailable
	}
	return status.Error(code, err.Error())
}
