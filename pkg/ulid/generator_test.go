package ulid

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

// fakeClock is advanced by hand; fixedRandom hands out a scripted sample.
type fakeClock struct{ ms int64 }

func (c *fakeClock) now() int64 { return c.ms }

func newTestGenerator(clock *fakeClock, sample uint128.Uint128) *Generator {
	return NewGenerator(
		WithClock(clock.now),
		WithRandom(func() uint128.Uint128 { return sample }),
	)
}

func TestStrictIncrementWithinMillisecond(t *testing.T) {
	clock := &fakeClock{ms: 1000}
	g := newTestGenerator(clock, uint128.From64(500))

	a, err := g.Next(Strict)
	require.NoError(t, err)
	b, err := g.Next(Strict)
	require.NoError(t, err)

	require.Equal(t, uint64(1000), a.Timestamp())
	require.True(t, b.Random().Equals(a.Random().Add64(1)))
	require.Greater(t, b.String(), a.String())
}

func TestNewMillisecondResamples(t *testing.T) {
	clock := &fakeClock{ms: 1000}
	samples := []uint128.Uint128{uint128.From64(10), uint128.From64(20), uint128.From64(5)}
	i := 0
	g := NewGenerator(WithClock(clock.now), WithRandom(func() uint128.Uint128 {
		s := samples[i%len(samples)]
		i++
		return s
	}))

	clock.ms = 1001
	a, err := g.Next(Strict)
	require.NoError(t, err)
	require.Equal(t, uint64(1001), a.Timestamp())
	require.Equal(t, uint64(20), a.Random().Lo)

	clock.ms = 1002
	b, err := g.Next(Strict)
	require.NoError(t, err)
	require.Equal(t, uint64(5), b.Random().Lo)
	require.Greater(t, b.String(), a.String(), "later millisecond sorts after regardless of random")
}

func TestRandomSamplesAreMasked(t *testing.T) {
	clock := &fakeClock{ms: 1}
	g := newTestGenerator(clock, uint128.Max)
	clock.ms = 2
	u, err := g.Next(Strict)
	require.NoError(t, err)
	require.True(t, u.Random().Equals(MaxRandom))
	require.Equal(t, uint64(2), u.Timestamp())
}

func TestStrictOverflow(t *testing.T) {
	clock := &fakeClock{ms: 2000}
	g := newTestGenerator(clock, uint128.Zero)
	g.lastMs = 2000
	g.lastRandom = MaxRandom

	_, err := g.Next(Strict)
	require.True(t, errors.Is(err, ErrRandomOverflow))
	require.True(t, g.lastRandom.Equals(MaxRandom), "failed call must not mutate state")

	// next millisecond recovers
	clock.ms = 2001
	u, err := g.Next(Strict)
	require.NoError(t, err)
	require.Equal(t, uint64(2001), u.Timestamp())
}

func TestPermissiveOverflowResamples(t *testing.T) {
	clock := &fakeClock{ms: 2000}
	g := newTestGenerator(clock, uint128.From64(77))
	g.lastMs = 2000
	g.lastRandom = MaxRandom

	u, err := g.Next(Permissive)
	require.NoError(t, err)
	require.Equal(t, uint64(2000), u.Timestamp())
	require.Equal(t, uint64(77), u.Random().Lo)
}

func TestStrictClockRegression(t *testing.T) {
	clock := &fakeClock{ms: 1000}
	g := newTestGenerator(clock, uint128.From64(1))
	_, err := g.Next(Strict)
	require.NoError(t, err)

	clock.ms = 900
	_, err = g.Next(Strict)
	require.True(t, errors.Is(err, ErrClockRegression))
	require.False(t, errors.Is(err, ErrRandomOverflow))
	require.Equal(t, uint64(1000), g.lastMs)
}

func TestPermissiveClockRegressionKeepsLastTimestamp(t *testing.T) {
	clock := &fakeClock{ms: 1000}
	g := newTestGenerator(clock, uint128.From64(1))
	a, err := g.Next(Permissive)
	require.NoError(t, err)

	clock.ms = 900
	b, err := g.Next(Permissive)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), b.Timestamp())
	require.Equal(t, 1, b.Compare(a))

	// overflow while pinned resamples instead of failing
	g.lastRandom = MaxRandom
	c, err := g.Next(Permissive)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), c.Timestamp())
}

func TestModesShareState(t *testing.T) {
	clock := &fakeClock{ms: 5}
	g := newTestGenerator(clock, uint128.From64(100))
	a, err := g.Next(Permissive)
	require.NoError(t, err)
	b, err := g.Next(Strict)
	require.NoError(t, err)
	c, err := g.Next(Permissive)
	require.NoError(t, err)
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, -1, b.Compare(c))
}

func TestNextStringMatchesULID(t *testing.T) {
	clock := &fakeClock{ms: 1469922850259}
	g := newTestGenerator(clock, uint128.From64(3))
	var prev string
	for i := 0; i < 20; i++ {
		if i%5 == 0 {
			clock.ms++
		}
		s, err := g.NextString(Strict)
		require.NoError(t, err)
		u := FromParts(g.lastMs, g.lastRandom)
		require.Equal(t, u.String(), s)
		require.Greater(t, s, prev)
		prev = s
	}

	g.lastRandom = MaxRandom
	_, err := g.NextString(Strict)
	require.True(t, errors.Is(err, ErrRandomOverflow))
}

func TestBatchIsContiguous(t *testing.T) {
	clock := &fakeClock{ms: 42}
	g := newTestGenerator(clock, uint128.From64(0))
	ids, err := g.Batch(Strict, 10)
	require.NoError(t, err)
	require.Len(t, ids, 10)
	for i := 1; i < len(ids); i++ {
		require.True(t, ids[i].Random().Equals(ids[i-1].Random().Add64(1)))
	}

	g.lastRandom = MaxRandom.Sub64(2)
	ids, err = g.Batch(Strict, 5)
	require.True(t, errors.Is(err, ErrRandomOverflow))
	require.Len(t, ids, 2)

	ids, err = g.Batch(Strict, 0)
	require.NoError(t, err)
	require.Nil(t, ids)
}

func TestNegativeClockPanics(t *testing.T) {
	clock := &fakeClock{ms: 10}
	g := newTestGenerator(clock, uint128.Zero)
	clock.ms = -1
	require.Panics(t, func() { _, _ = g.Next(Strict) })
}

func TestConcurrentUniqueAndOrdered(t *testing.T) {
	g := NewGenerator()
	const workers, perWorker = 8, 2000

	var wg sync.WaitGroup
	results := make([][]ULID, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				u, err := g.Next(Permissive)
				if err != nil {
					t.Errorf("next: %v", err)
					return
				}
				results[w] = append(results[w], u)
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[ULID]struct{}, workers*perWorker)
	for _, ids := range results {
		for i, u := range ids {
			if _, dup := seen[u]; dup {
				t.Fatalf("duplicate ULID %s", u)
			}
			seen[u] = struct{}{}
			if i > 0 && ids[i-1].Compare(u) >= 0 {
				t.Fatalf("not increasing: %s then %s", ids[i-1], u)
			}
		}
	}
}

func TestDefaultGeneratorIsSingleton(t *testing.T) {
	require.Same(t, Default(), Default())

	a, err := NewMonotonic()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)
	require.Equal(t, -1, a.Compare(b))

	s, err := NewMonotonicString()
	require.NoError(t, err)
	require.True(t, IsValid(s))
	s2, err := NewString()
	require.NoError(t, err)
	require.Greater(t, s2, s)

	now := uint64(time.Now().UnixMilli())
	require.InDelta(t, float64(now), float64(b.Timestamp()), 5000)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Monotonic")
	require.NoError(t, err)
	require.Equal(t, Strict, m)
	m, err = ParseMode("permissive")
	require.NoError(t, err)
	require.Equal(t, Permissive, m)
	_, err = ParseMode("fast")
	require.Error(t, err)
	require.Equal(t, "strict", Strict.String())
	require.Equal(t, "permissive", Permissive.String())
}

func BenchmarkNextString(b *testing.B) {
	g := NewGenerator()
	for i := 0; i < b.N; i++ {
		_, _ = g.NextString(Permissive)
	}
}

func BenchmarkNextParallel(b *testing.B) {
	g := NewGenerator()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = g.Next(Permissive)
		}
	})
}
