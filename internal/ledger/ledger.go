package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pebblestore "github.com/rzbill/ulidd/internal/storage/pebble"
	"github.com/rzbill/ulidd/pkg/ulid"
)

// Ledger is the Pebble-backed issuance record. Safe for concurrent use; all
// synchronisation is Pebble's.
type Ledger struct {
	db  *pebblestore.DB
	now func() int64
}

// Open returns a ledger over db. The caller owns db.
func Open(db *pebblestore.DB) *Ledger {
	return &Ledger{db: db, now: nowMs}
}

// Append stores entries in a single batch. Entries with IssuedMs unset are
// stamped with the current time.
func (l *Ledger) Append(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	b := l.db.NewBatch()
	defer b.Close()
	now := l.now()
	for _, e := range entries {
		rec := e.Record
		if rec.IssuedMs == 0 {
			rec.IssuedMs = now
		}
		val, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := b.Set(entryKey(e.ID), val, nil); err != nil {
			return err
		}
	}
	return l.db.CommitBatch(ctx, b)
}

// Get returns the record for id.
func (l *Ledger) Get(id ulid.ULID) (Record, error) {
	val, err := l.db.Get(entryKey(id))
	if errors.Is(err, pebblestore.ErrNotFound) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return Record{}, fmt.Errorf("ledger: decode %s: %w", id, err)
	}
	return rec, nil
}

// List returns entries in the query window in ID order (descending when
// Reverse), applying the CEL filter before the limit.
func (l *Ledger) List(ctx context.Context, q Query) ([]Entry, error) {
	filter, err := newCELFilter(q.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	upper := pebblestore.PrefixEnd(keyPrefix)
	if q.ToMs > 0 {
		upper = boundKey(q.ToMs)
	}
	now := l.now()
	var out []Entry
	err = l.db.Scan(ctx, boundKey(q.FromMs), upper, q.Reverse, func(k, v []byte) (bool, error) {
		id, ok := idFromKey(k)
		if !ok {
			return true, nil
		}
		var rec Record
		if err := json.Unmarshal(v, &rec); err != nil {
			return false, fmt.Errorf("ledger: decode %s: %w", id, err)
		}
		if !filter.Eval(id, rec, now) {
			return true, nil
		}
		out = append(out, Entry{ID: id, Record: rec})
		return q.Limit <= 0 || len(out) < q.Limit, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Trim deletes every entry whose ULID timestamp is before beforeMs.
func (l *Ledger) Trim(ctx context.Context, beforeMs int64) error {
	if beforeMs <= 0 {
		return nil
	}
	return l.db.DeleteRange(ctx, keyPrefix, boundKey(beforeMs))
}

// Stats counts entries and reports the oldest and newest IDs.
func (l *Ledger) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	first, err := l.db.First(keyPrefix)
	if err != nil || first == nil {
		return st, err
	}
	last, err := l.db.Last(keyPrefix)
	if err != nil {
		return st, err
	}
	st.First, _ = idFromKey(first)
	st.Last, _ = idFromKey(last)
	err = l.db.Scan(ctx, keyPrefix, pebblestore.PrefixEnd(keyPrefix), false, func(_, _ []byte) (bool, error) {
		st.Count++
		return true, nil
	})
	return st, err
}
