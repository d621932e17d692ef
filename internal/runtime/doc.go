// Package runtime wires the ULID generator, configuration and the optional
// Pebble-backed issuance ledger into a single ulidd instance. Services and
// servers receive a *Runtime rather than reaching for globals.
//
// Example:
//
//	cfg := config.Default()
//	cfg.Ledger.Enabled = true
//	rt, _ := runtime.Open(runtime.Options{DataDir: "./data", Fsync: pebblestore.FsyncModeAlways, Config: cfg})
//	defer rt.Close()
//	_ = rt.CheckHealth(context.Background())
//	id, _ := rt.Generator().Next(ulid.Strict)
package runtime
