// Package pebblestore wraps Pebble with an fsync policy, batches, range
// deletes, ordered scans and a metrics hook. The issuance ledger is its only
// consumer.
//
// Usage:
//
//	db, err := pebblestore.Open(pebblestore.Options{
//	    DataDir: "./data",
//	    Fsync:   pebblestore.FsyncModeInterval,
//	    Logger:  logger,
//	})
//	if err != nil { /* handle */ }
//	defer db.Close()
//
//	b := db.NewBatch()
//	_ = b.Set([]byte("k"), []byte("v"), nil)
//	_ = db.CommitBatch(ctx, b)
//	b.Close()
//
//	_ = db.Scan(ctx, []byte("k"), pebblestore.PrefixEnd([]byte("k")), false,
//	    func(k, v []byte) (bool, error) { return true, nil })
package pebblestore
