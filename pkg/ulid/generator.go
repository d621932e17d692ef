package ulid

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/rzbill/ulidd/pkg/base32"
	"lukechampine.com/uint128"
)

// Mode selects how a Generator reacts to overflow and clock regression.
type Mode int

const (
	// Strict fails instead of breaking ordering.
	Strict Mode = iota
	// Permissive degrades ordering instead of failing.
	Permissive
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "strict"/"monotonic" or "permissive".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "monotonic":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	default:
		return Strict, fmt.Errorf("unknown generation mode %q; use strict|permissive", s)
	}
}

// Generator produces ULIDs that are strictly increasing per process.
type Generator struct {
	mu         sync.Mutex
	lastMs     uint64
	lastRandom uint128.Uint128

	clock  func() int64
	random func() uint128.Uint128

	// text holds the last rendered ULID; text[:10] is valid for prefixMs.
	text     [EncodedSize]byte
	prefixMs uint64
	prefixOK bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the millisecond clock. A negative reading is treated as
// a broken clock and panics.
func WithClock(fn func() int64) Option {
	return func(g *Generator) { g.clock = fn }
}

// WithRandom overrides the random source. Samples are masked to 80 bits. The
// function is only called while the generator lock is held.
func WithRandom(fn func() uint128.Uint128) Option {
	return func(g *Generator) { g.random = fn }
}

// NowMs returns current time in milliseconds since Unix epoch.
func NowMs() int64 { return time.Now().UnixMilli() }

// NewGenerator creates a Generator seeded with the current time and a fresh
// random sample.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{clock: NowMs}
	for _, opt := range opts {
		opt(g)
	}
	if g.random == nil {
		g.random = newRandomSource()
	}
	g.lastMs = g.now()
	g.lastRandom = g.random().And(MaxRandom)
	return g
}

// Next advances the state and returns the new ULID.
func (g *Generator) Next(mode Mode) (ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.advance(mode); err != nil {
		return ULID{}, err
	}
	return FromParts(g.lastMs, g.lastRandom), nil
}

// NextString is Next rendered to text. The timestamp symbols are cached and
// only the random symbols are re-encoded while the millisecond is unchanged.
func (g *Generator) NextString(mode Mode) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.advance(mode); err != nil {
		return "", err
	}
	if !g.prefixOK || g.prefixMs != g.lastMs {
		base32.Put(g.text[:timestampSymbols], uint128.From64(g.lastMs&MaxTimestamp))
		g.prefixMs = g.lastMs
		g.prefixOK = true
	}
	base32.Put(g.text[timestampSymbols:], g.lastRandom)
	return string(g.text[:]), nil
}

// Batch performs n transitions under a single lock acquisition. On error it
// returns the ULIDs produced before the failure.
func (g *Generator) Batch(mode Mode, n int) ([]ULID, error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]ULID, 0, n)

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i < n; i++ {
		if err := g.advance(mode); err != nil {
			return out, err
		}
		out = append(out, FromParts(g.lastMs, g.lastRandom))
	}
	return out, nil
}

// advance applies one state transition. Caller must hold g.mu. On error the
// state is left unchanged.
func (g *Generator) advance(mode Mode) error {
	now := g.now()

	switch {
	case now > g.lastMs:
		g.lastMs = now
		g.lastRandom = g.random().And(MaxRandom)
		return nil
	case now < g.lastMs && mode == Strict:
		return fmt.Errorf("%w: now %d ms, last issued %d ms", ErrClockRegression, now, g.lastMs)
	}

	// Same millisecond, or a permissive regression pinned to lastMs.
	if g.lastRandom.Equals(MaxRandom) {
		if mode == Strict {
			return fmt.Errorf("%w (at %d ms)", ErrRandomOverflow, g.lastMs)
		}
		g.lastRandom = g.random().And(MaxRandom)
		return nil
	}
	g.lastRandom = g.lastRandom.Add64(1)
	return nil
}

func (g *Generator) now() uint64 {
	ms := g.clock()
	if ms < 0 {
		panic(fmt.Sprintf("ulid: clock reported %d ms, before the Unix epoch", ms))
	}
	return uint64(ms)
}

// newRandomSource returns an 80-bit sampler over a ChaCha8 stream seeded from
// crypto/rand. It is not safe for concurrent use.
func newRandomSource() func() uint128.Uint128 {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("ulid: seeding random source: %v", err))
	}
	r := rand.New(rand.NewChaCha8(seed))
	return func() uint128.Uint128 {
		return uint128.New(r.Uint64(), r.Uint64())
	}
}
