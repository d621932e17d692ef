package ledger

import (
	"lukechampine.com/uint128"

	pebblestore "github.com/rzbill/ulidd/internal/storage/pebble"
	"github.com/rzbill/ulidd/pkg/ulid"
)

// Keyspace:
// - ulid/{16 bytes}

var keyPrefix = []byte("ulid/")

func entryKey(id ulid.ULID) []byte {
	b := make([]byte, 0, len(keyPrefix)+ulid.BinarySize)
	b = append(b, keyPrefix...)
	return append(b, id[:]...)
}

// boundKey is the first key at or after millisecond ms.
func boundKey(ms int64) []byte {
	if ms <= 0 {
		return keyPrefix
	}
	if uint64(ms) > ulid.MaxTimestamp {
		return pebblestore.PrefixEnd(keyPrefix)
	}
	return entryKey(ulid.FromParts(uint64(ms), uint128.Zero))
}

func idFromKey(k []byte) (ulid.ULID, bool) {
	var id ulid.ULID
	if len(k) != len(keyPrefix)+ulid.BinarySize {
		return id, false
	}
	copy(id[:], k[len(keyPrefix):])
	return id, true
}
