// Package serverrun exposes the Run entrypoint used by the CLI to start
// ulidd with its gRPC and HTTP servers and the ledger retention loop, and to
// shut them down together.
//
// Example:
//
//	opts := serverrun.Options{DataDir: "./data", GRPCAddr: ":50051", HTTPAddr: ":8080", Fsync: pebblestore.FsyncModeAlways, Config: config.Default()}
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = serverrun.Run(ctx, opts)
package serverrun
