// Package ledger records issued ULIDs in Pebble so operators can audit what a
// ulidd instance handed out and when.
//
// Keys are "ulid/" followed by the 16 raw ULID bytes. ULID bytes sort by
// timestamp, so a key range is a time window and List never needs a
// secondary index. Values are small JSON records (mode, source, issue time).
//
// The generator never reads the ledger back; it is an audit trail only.
package ledger
