package idsvc

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"lukechampine.com/uint128"

	"github.com/rzbill/ulidd/internal/ledger"
	"github.com/rzbill/ulidd/internal/runtime"
	"github.com/rzbill/ulidd/pkg/base32"
	logpkg "github.com/rzbill/ulidd/pkg/log"
	"github.com/rzbill/ulidd/pkg/ulid"
)

// Sources recorded in the ledger.
const (
	SourceGRPC = "grpc"
	SourceHTTP = "http"
	SourceCLI  = "cli"
)

// Service exposes ULID operations over a Runtime.
type Service struct {
	rt     *runtime.Runtime
	logger logpkg.Logger
}

// New returns a Service logging through the runtime's logger.
func New(rt *runtime.Runtime) *Service {
	return NewWithLogger(rt, rt.Logger())
}

// NewWithLogger returns a Service using the provided logger.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	return &Service{rt: rt, logger: logger.WithComponent("ids")}
}

// Details is the decoded view of a ULID.
type Details struct {
	ULID      string    `json:"ulid"`
	Timestamp uint64    `json:"timestamp_ms"`
	Time      time.Time `json:"time"`
	// Random is the 80-bit payload in decimal.
	Random    string `json:"random"`
	RandomHex string `json:"random_hex"`
	UUID      string `json:"uuid"`
}

// ResolveMode parses a request's mode, falling back to generator.defaultMode.
func (s *Service) ResolveMode(name string) (ulid.Mode, error) {
	if strings.TrimSpace(name) == "" {
		return s.rt.Config().Mode(), nil
	}
	m, err := ulid.ParseMode(name)
	if err != nil {
		return m, fmt.Errorf("%w: %v", ulid.ErrFormat, err)
	}
	return m, nil
}

// Generate issues count ULIDs (1 when count<=0) as one contiguous run and
// records them in the ledger when enabled.
func (s *Service) Generate(ctx context.Context, mode ulid.Mode, count int, source string) ([]ulid.ULID, error) {
	if count <= 0 {
		count = 1
	}
	if max := s.rt.Config().Generator.MaxBatch; count > max {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, count, max)
	}
	start := time.Now()
	var (
		ids []ulid.ULID
		err error
	)
	if count == 1 {
		var id ulid.ULID
		id, err = s.rt.Generator().Next(mode)
		ids = []ulid.ULID{id}
	} else {
		ids, err = s.rt.Generator().Batch(mode, count)
	}
	if err != nil {
		s.logger.Warn("generate failed",
			logpkg.Str("mode", mode.String()),
			logpkg.Int("count", count),
			logpkg.Str("source", source),
			logpkg.Err(err))
		return nil, err
	}
	s.logger.Debug("generated",
		logpkg.Str("mode", mode.String()),
		logpkg.Int("count", count),
		logpkg.Duration("dur", time.Since(start)))
	s.record(ctx, mode, source, ids)
	return ids, nil
}

func (s *Service) record(ctx context.Context, mode ulid.Mode, source string, ids []ulid.ULID) {
	l := s.rt.Ledger()
	if l == nil {
		return
	}
	entries := make([]ledger.Entry, len(ids))
	for i, id := range ids {
		entries[i] = ledger.Entry{ID: id, Record: ledger.Record{Mode: mode.String(), Source: source}}
	}
	if err := l.Append(ctx, entries); err != nil {
		s.logger.Warn("ledger append failed", logpkg.Int("count", len(ids)), logpkg.Err(err))
	}
}

// WithTimestamp returns a ULID for ms with a fresh random payload. It bypasses
// the generator and is not recorded.
func (s *Service) WithTimestamp(ms uint64) ulid.ULID {
	return ulid.WithTimestamp(ms)
}

// Inspect parses s and returns its fields.
func (s *Service) Inspect(text string) (Details, error) {
	id, err := ulid.Parse(text)
	if err != nil {
		return Details{}, err
	}
	return DetailsOf(id), nil
}

// DetailsOf decodes id without parsing.
func DetailsOf(id ulid.ULID) Details {
	return Details{
		ULID:      id.String(),
		Timestamp: id.Timestamp(),
		Time:      id.Time().UTC(),
		Random:    id.Random().String(),
		RandomHex: hex.EncodeToString(id[6:]),
		UUID:      id.UUID(),
	}
}

// Validate reports whether text is a well-formed ULID.
func (s *Service) Validate(text string) bool { return ulid.IsValid(text) }

// ToUUID renders a ULID as a hyphenated UUID.
func (s *Service) ToUUID(text string) (string, error) { return ulid.ToUUID(text) }

// FromUUID reinterprets a UUID's bits as a ULID.
func (s *Service) FromUUID(text string) (string, error) { return ulid.FromUUID(text) }

// Normalize checks text and returns it uppercased.
func (s *Service) Normalize(text string) (string, error) { return ulid.Normalize(text) }

// EncodeBase32 encodes a base-10 128-bit integer as 26 Base32 symbols.
func (s *Service) EncodeBase32(decimal string) (string, error) {
	v, err := uint128.FromString(strings.TrimSpace(decimal))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	return base32.Encode(v), nil
}

// DecodeBase32 decodes Base32 text to a base-10 integer. There is no length
// policy; overlong input wraps.
func (s *Service) DecodeBase32(text string) (string, error) {
	v, err := base32.Decode(text)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// ListIssued reads the ledger.
func (s *Service) ListIssued(ctx context.Context, q ledger.Query) ([]ledger.Entry, error) {
	l := s.rt.Ledger()
	if l == nil {
		return nil, ErrLedgerDisabled
	}
	return l.List(ctx, q)
}

// LookupIssued returns the ledger record of one ID.
func (s *Service) LookupIssued(text string) (ledger.Record, error) {
	id, err := ulid.Parse(text)
	if err != nil {
		return ledger.Record{}, err
	}
	l := s.rt.Ledger()
	if l == nil {
		return ledger.Record{}, ErrLedgerDisabled
	}
	return l.Get(id)
}

// LedgerStats summarizes the ledger.
func (s *Service) LedgerStats(ctx context.Context) (ledger.Stats, error) {
	l := s.rt.Ledger()
	if l == nil {
		return ledger.Stats{}, ErrLedgerDisabled
	}
	return l.Stats(ctx)
}

// TrimExpired applies ledger.retentionMs relative to nowMs. It is a no-op
// when the ledger is off or retention is zero.
func (s *Service) TrimExpired(ctx context.Context, nowMs int64) error {
	l := s.rt.Ledger()
	keep := s.rt.Config().Ledger.RetentionMs
	if l == nil || keep <= 0 {
		return nil
	}
	cutoff := nowMs - keep
	if err := l.Trim(ctx, cutoff); err != nil {
		s.logger.Warn("ledger trim failed", logpkg.Int64("cutoff_ms", cutoff), logpkg.Err(err))
		return err
	}
	s.logger.Debug("ledger trimmed", logpkg.Int64("cutoff_ms", cutoff))
	return nil
}
