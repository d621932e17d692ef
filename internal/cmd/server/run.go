package serverrun

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	cfgpkg "github.com/rzbill/ulidd/internal/config"
	"github.com/rzbill/ulidd/internal/runtime"
	grpcserver "github.com/rzbill/ulidd/internal/server/grpc"
	httpserver "github.com/rzbill/ulidd/internal/server/http"
	idsvc "github.com/rzbill/ulidd/internal/services/ids"
	pebblestore "github.com/rzbill/ulidd/internal/storage/pebble"
	logpkg "github.com/rzbill/ulidd/pkg/log"
)

type Options struct {
	DataDir       string
	GRPCAddr      string
	HTTPAddr      string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Config        cfgpkg.Config
	// Logger overrides the logger built from Config.Log.
	Logger logpkg.Logger
	// OnReady, when set, receives the bound addresses once both listeners
	// are open.
	OnReady func(grpcAddr, httpAddr net.Addr)
}

// storeDir is where Pebble lives under the data dir.
func storeDir(dataDir string) string {
	if dataDir == "" {
		dataDir = cfgpkg.DefaultDataDir()
	}
	return filepath.Join(dataDir, "ledger")
}

// buildLogger applies Config.Log, falling back to info/text on a bad value.
func buildLogger(cfg cfgpkg.LogConfig) logpkg.Logger {
	l, err := logpkg.ApplyConfig(&logpkg.Config{Level: cfg.Level, Format: cfg.Format})
	if err == nil {
		return l
	}
	fallback := logpkg.NewLogger(logpkg.WithFormatter(&logpkg.TextFormatter{}))
	fallback.Warn("invalid log config, using defaults", logpkg.Err(err))
	return fallback
}

// Run starts the gRPC and HTTP servers plus the ledger retention loop and
// blocks until ctx is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context, opts Options) error {
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	procLogger := opts.Logger
	if procLogger == nil {
		procLogger = buildLogger(opts.Config.Log)
	}
	// Route stdlib log output through the same sinks.
	logpkg.RedirectStdLog(procLogger)

	rt, err := runtime.Open(runtime.Options{
		DataDir:       storeDir(opts.DataDir),
		Fsync:         opts.Fsync,
		FsyncInterval: opts.FsyncInterval,
		Config:        opts.Config,
		Logger:        procLogger,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	glis, err := net.Listen("tcp", opts.GRPCAddr)
	if err != nil {
		return fmt.Errorf("grpc listen %s: %w", opts.GRPCAddr, err)
	}
	hlis, err := net.Listen("tcp", opts.HTTPAddr)
	if err != nil {
		_ = glis.Close()
		return fmt.Errorf("http listen %s: %w", opts.HTTPAddr, err)
	}

	procLogger.Info("Starting ulidd server",
		logpkg.Str("grpc", glis.Addr().String()),
		logpkg.Str("http", hlis.Addr().String()),
		logpkg.Str("default_mode", opts.Config.Generator.DefaultMode),
		logpkg.Bool("ledger", opts.Config.Ledger.Enabled),
		logpkg.Int64("retention_ms", opts.Config.Ledger.RetentionMs),
	)

	gsrv := grpcserver.New(rt)
	hsrv := httpserver.New(rt, procLogger)
	svc := idsvc.NewWithLogger(rt, procLogger)

	g, gctx := errgroup.WithContext(sctx)
	g.Go(func() error {
		if err := gsrv.Serve(gctx, glis); err != nil {
			return fmt.Errorf("grpc: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := hsrv.Serve(gctx, hlis); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	})
	if rt.Ledger() != nil && opts.Config.Ledger.RetentionMs > 0 {
		interval := time.Duration(opts.Config.Ledger.TrimIntervalMs) * time.Millisecond
		g.Go(func() error {
			runRetention(gctx, svc, interval, func() int64 { return time.Now().UnixMilli() })
			return nil
		})
	}
	if opts.OnReady != nil {
		opts.OnReady(glis.Addr(), hlis.Addr())
	}

	err = g.Wait()
	procLogger.Info("ulidd server stopped")
	return err
}

// runRetention trims the ledger once immediately and then every interval.
// Trim failures are logged by the service and retried on the next tick.
func runRetention(ctx context.Context, svc *idsvc.Service, interval time.Duration, now func() int64) {
	_ = svc.TrimExpired(ctx, now())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = svc.TrimExpired(ctx, now())
		}
	}
}
