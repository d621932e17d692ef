package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	clientcmd "github.com/rzbill/ulidd/internal/cmd/client"
	serverrun "github.com/rzbill/ulidd/internal/cmd/server"
	cfgpkg "github.com/rzbill/ulidd/internal/config"
	pebblestore "github.com/rzbill/ulidd/internal/storage/pebble"
	logpkg "github.com/rzbill/ulidd/pkg/log"
)

func main() {
	// Respect ULIDD_LOG_LEVEL for both CLI and server start output
	level := os.Getenv("ULIDD_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	rootCmd := clientcmd.NewRoot(clientcmd.BaseURLFromEnv)
	rootCmd.Long = "ulidd generates, inspects and converts ULIDs locally, and runs an ID server over gRPC and HTTP."
	rootCmd.AddCommand(newServerCommand())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", logpkg.Err(err))
		os.Exit(1)
	}
}

func newServerCommand() *cobra.Command {
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	startCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start the ulidd server (gRPC and HTTP)",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			grpcAddr, _ := cmd.Flags().GetString("grpc")
			httpAddr, _ := cmd.Flags().GetString("http")
			fsyncFlag, _ := cmd.Flags().GetString("fsync")
			fsyncIntervalMs, _ := cmd.Flags().GetInt("fsync-interval-ms")

			mode, err := pebblestore.ParseFsyncMode(fsyncFlag)
			if err != nil {
				return fmt.Errorf("invalid --fsync; use always|interval|never")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := serverrun.Run(context.Background(), serverrun.Options{
				DataDir:       dataDir,
				GRPCAddr:      grpcAddr,
				HTTPAddr:      httpAddr,
				Fsync:         mode,
				FsyncInterval: time.Duration(fsyncIntervalMs) * time.Millisecond,
				Config:        cfg,
			}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	f := startCmd.Flags()
	f.String("data-dir", "", "Data directory (if not specified, uses OS-specific application data directory)")
	f.String("grpc", ":50051", "gRPC listen address")
	f.String("http", ":8080", "HTTP listen address")
	f.String("config", os.Getenv("ULIDD_CONFIG"), "Config file (.yaml, .yml or .json)")
	f.String("fsync", "always", "Fsync mode for the ledger: always|interval|never")
	f.Int("fsync-interval-ms", 5, "When --fsync=interval, group-commit window in ms (default 5)")
	f.String("mode", "", "Default generation mode: strict|permissive")
	f.Bool("ledger", false, "Record issued ULIDs in the ledger")
	f.String("log-level", "", "Log level: debug|info|warn|error")
	f.String("log-format", "", "Log format: text|json (default text)")
	serverCmd.AddCommand(startCmd)
	return serverCmd
}

// loadConfig layers defaults, the config file, ULIDD_* env vars and finally
// explicitly set flags.
func loadConfig(cmd *cobra.Command) (cfgpkg.Config, error) {
	cfg := cfgpkg.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := cfgpkg.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfgpkg.FromEnv(&cfg); err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("mode") {
		cfg.Generator.DefaultMode, _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("ledger") {
		cfg.Ledger.Enabled, _ = cmd.Flags().GetBool("ledger")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
