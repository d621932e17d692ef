package runtime

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	cfgpkg "github.com/rzbill/ulidd/internal/config"
	"github.com/rzbill/ulidd/internal/ledger"
	pebblestore "github.com/rzbill/ulidd/internal/storage/pebble"
	logpkg "github.com/rzbill/ulidd/pkg/log"
	"github.com/rzbill/ulidd/pkg/ulid"
)

// Options for building the Runtime.
type Options struct {
	DataDir string
	Fsync   pebblestore.FsyncMode
	// FsyncInterval is the group-commit window for FsyncModeInterval.
	FsyncInterval time.Duration
	Config        cfgpkg.Config
	Logger        logpkg.Logger
	// Generator overrides the process-wide default generator, mostly for tests.
	Generator *ulid.Generator
}

// Runtime wires the generator, config and the optional ledger store for a
// single ulidd instance.
type Runtime struct {
	gen     *ulid.Generator
	db      *pebblestore.DB
	ledger  *ledger.Ledger
	config  cfgpkg.Config
	logger  logpkg.Logger
	storage *StorageStats
}

// Open validates the config and, when the ledger is enabled, opens Pebble
// under DataDir.
func Open(opts Options) (*Runtime, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	gen := opts.Generator
	if gen == nil {
		gen = ulid.Default()
	}
	rt := &Runtime{gen: gen, config: opts.Config, logger: logger, storage: &StorageStats{}}
	if !opts.Config.Ledger.Enabled {
		return rt, nil
	}
	if opts.DataDir == "" {
		return nil, errors.New("runtime: ledger enabled but no data dir")
	}
	db, err := pebblestore.Open(pebblestore.Options{
		DataDir:       opts.DataDir,
		Fsync:         opts.Fsync,
		FsyncInterval: opts.FsyncInterval,
		Metrics:       rt.storage,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}
	rt.db = db
	rt.ledger = ledger.Open(db)
	return rt, nil
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// CheckHealth verifies the store answers when one is configured.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.db == nil {
		if r.config.Ledger.Enabled {
			return errors.New("db not open")
		}
		return nil
	}
	it, err := r.db.NewIter(nil)
	if err != nil {
		return err
	}
	return it.Close()
}

// Generator returns the shared ULID generator.
func (r *Runtime) Generator() *ulid.Generator { return r.gen }

// Ledger returns the issuance ledger, or nil when disabled.
func (r *Runtime) Ledger() *ledger.Ledger { return r.ledger }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Logger returns the root logger.
func (r *Runtime) Logger() logpkg.Logger { return r.logger }

// Storage returns the store's running counters.
func (r *Runtime) Storage() StorageSnapshot { return r.storage.Snapshot() }

// StorageStats counts store traffic. It implements pebblestore.MetricsHook.
type StorageStats struct {
	reads, readBytes     atomic.Uint64
	writes, writeBytes   atomic.Uint64
	commits, commitBytes atomic.Uint64
}

// StorageSnapshot is a point-in-time copy of StorageStats.
type StorageSnapshot struct {
	Reads       uint64 `json:"reads"`
	ReadBytes   uint64 `json:"read_bytes"`
	Writes      uint64 `json:"writes"`
	WriteBytes  uint64 `json:"write_bytes"`
	Commits     uint64 `json:"commits"`
	CommitBytes uint64 `json:"commit_bytes"`
}

func (s *StorageStats) ObserveWrite(_ time.Duration, n int) {
	s.writes.Add(1)
	s.writeBytes.Add(uint64(n))
}

func (s *StorageStats) ObserveRead(_ time.Duration, n int) {
	s.reads.Add(1)
	s.readBytes.Add(uint64(n))
}

func (s *StorageStats) ObserveBatchCommit(_ time.Duration, _ int, n int) {
	s.commits.Add(1)
	s.commitBytes.Add(uint64(n))
}

// Snapshot copies the counters.
func (s *StorageStats) Snapshot() StorageSnapshot {
	return StorageSnapshot{
		Reads:       s.reads.Load(),
		ReadBytes:   s.readBytes.Load(),
		Writes:      s.writes.Load(),
		WriteBytes:  s.writeBytes.Load(),
		Commits:     s.commits.Load(),
		CommitBytes: s.commitBytes.Load(),
	}
}
