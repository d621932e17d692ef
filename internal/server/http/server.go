package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rzbill/ulidd/internal/runtime"
	"github.com/rzbill/ulidd/internal/server/http/controllers"
	idsvc "github.com/rzbill/ulidd/internal/services/ids"
	logpkg "github.com/rzbill/ulidd/pkg/log"
)

// Server is the JSON HTTP gateway over the ids service.
type Server struct {
	rt     *runtime.Runtime
	srv    *http.Server
	lis    net.Listener
	logger logpkg.Logger
}

// New builds the mux and registers every controller.
func New(rt *runtime.Runtime, logger logpkg.Logger) *Server {
	if logger == nil {
		logger = rt.Logger()
	}
	logger = logger.WithComponent("http")
	mux := http.NewServeMux()
	controllers.NewControllerRegistry(rt, idsvc.NewWithLogger(rt, logger)).RegisterAllRoutes(mux)
	s := &Server{rt: rt, logger: logger}
	s.srv = &http.Server{
		Handler:           cors(s.logRequests(mux)),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          logpkg.ToStdLogger(logger, logpkg.WarnLevel),
	}
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

// Serve accepts connections on l until ctx is done, then shuts down with a
// five second grace period.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests logs each request at debug, and server errors at warn.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		fields := []logpkg.Field{
			logpkg.Str("method", r.Method),
			logpkg.Str("path", r.URL.Path),
			logpkg.Int("status", rec.status),
			logpkg.Duration("dur", time.Since(start)),
		}
		if rec.status >= http.StatusInternalServerError {
			s.logger.Warn("http request failed", fields...)
			return
		}
		s.logger.Debug("http request", fields...)
	})
}
