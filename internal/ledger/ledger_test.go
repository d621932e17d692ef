package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	pebblestore "github.com/rzbill/ulidd/internal/storage/pebble"
	"github.com/rzbill/ulidd/pkg/ulid"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeNever})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	l := Open(db)
	l.now = func() int64 { return 5_000 }
	return l
}

func id(ms uint64, r uint64) ulid.ULID { return ulid.FromParts(ms, uint128.From64(r)) }

func seedLedger(t *testing.T, l *Ledger) []ulid.ULID {
	t.Helper()
	ids := []ulid.ULID{id(1000, 1), id(1000, 2), id(2000, 1), id(3000, 7), id(4000, 9)}
	modes := []string{"strict", "strict", "permissive", "strict", "permissive"}
	entries := make([]Entry, len(ids))
	for i := range ids {
		entries[i] = Entry{ID: ids[i], Record: Record{Mode: modes[i], Source: "test"}}
	}
	require.NoError(t, l.Append(context.Background(), entries))
	return ids
}

func TestAppendGet(t *testing.T) {
	l := newTestLedger(t)
	ids := seedLedger(t, l)

	rec, err := l.Get(ids[2])
	require.NoError(t, err)
	require.Equal(t, Record{Mode: "permissive", Source: "test", IssuedMs: 5_000}, rec)

	_, err = l.Get(id(9999, 1))
	require.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, l.Append(context.Background(), nil))
}

func TestListWindow(t *testing.T) {
	l := newTestLedger(t)
	ids := seedLedger(t, l)
	ctx := context.Background()

	all, err := l.List(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := range all {
		require.Equal(t, ids[i], all[i].ID)
	}

	window, err := l.List(ctx, Query{FromMs: 1000, ToMs: 3000})
	require.NoError(t, err)
	require.Len(t, window, 3)
	require.Equal(t, ids[2], window[2].ID)

	rev, err := l.List(ctx, Query{Reverse: true, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []ulid.ULID{ids[4], ids[3]}, []ulid.ULID{rev[0].ID, rev[1].ID})
}

func TestListFilter(t *testing.T) {
	l := newTestLedger(t)
	ids := seedLedger(t, l)
	ctx := context.Background()

	got, err := l.List(ctx, Query{Filter: `mode == "permissive"`})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, ids[2], got[0].ID)

	got, err = l.List(ctx, Query{Filter: `ts_ms >= 3000 && now_ms - ts_ms < 2500`})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = l.List(ctx, Query{Filter: `random_hex.endsWith("09")`})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, ids[4], got[0].ID)

	got, err = l.List(ctx, Query{Filter: `text.startsWith("` + ids[0].String()[:10] + `")`, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, ids[0], got[0].ID)

	_, err = l.List(ctx, Query{Filter: `mode ==`})
	require.ErrorIs(t, err, ErrInvalidFilter)
	_, err = l.List(ctx, Query{Filter: `ts_ms + 1`})
	require.ErrorIs(t, err, ErrInvalidFilter)
}

func TestTrimAndStats(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	st, err := l.Stats(ctx)
	require.NoError(t, err)
	require.Zero(t, st.Count)

	ids := seedLedger(t, l)
	st, err = l.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, Stats{Count: 5, First: ids[0], Last: ids[4]}, st)

	require.NoError(t, l.Trim(ctx, 3000))
	st, err = l.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2), st.Count)
	require.Equal(t, ids[3], st.First)

	require.NoError(t, l.Trim(ctx, 0))
	st, _ = l.Stats(ctx)
	require.Equal(t, uint64(2), st.Count)
}

func TestKeys(t *testing.T) {
	u := id(1469922850259, 42)
	k := entryKey(u)
	got, ok := idFromKey(k)
	require.True(t, ok)
	require.Equal(t, u, got)
	_, ok = idFromKey([]byte("ulid/short"))
	require.False(t, ok)

	require.Equal(t, keyPrefix, boundKey(0))
	require.Equal(t, pebblestore.PrefixEnd(keyPrefix), boundKey(int64(ulid.MaxTimestamp)+1))
	require.Equal(t, entryKey(ulid.FromParts(7, uint128.Zero)), boundKey(7))
}

func TestValidateFilter(t *testing.T) {
	require.NoError(t, ValidateFilter(""))
	require.NoError(t, ValidateFilter(`source == "grpc"`))
	require.Error(t, ValidateFilter(`unknown_var > 1`))
}
