// Package client provides the `ulidd` command-line client.
//
// Local commands run in-process against the ULID library and need no server:
//
//	ulidd new -n 5                 # permissive mode
//	ulidd new --monotonic          # strict mode
//	ulidd at 1469922850259
//	ulidd at 2016-07-30T23:54:10.259Z
//	ulidd inspect 01ARZ3NDEKTSV4RRFFQ69G5FAV
//	ulidd valid 01ARZ3NDEKTSV4RRFFQ69G5FAV
//	ulidd normalize 01arz3ndektsv4rrffq69g5fav
//	ulidd uuid 01ARZ3NDEKTSV4RRFFQ69G5FAV
//	ulidd from-uuid 01563e3a-b5d3-d676-4c61-efb99302bd5b
//	ulidd base32 encode 1024
//	ulidd base32 decode 100
//
// # Address configuration
//
// The gRPC address for `remote` is read from ULIDD_GRPC (default
// 127.0.0.1:50051). The HTTP base URL for `ledger` comes from the embedding
// application's BaseURLFunc, by default ULIDD_HTTP or http://127.0.0.1:8080.
//
//	ulidd remote new -n 3 --mode strict
//	ulidd remote inspect 01ARZ3NDEKTSV4RRFFQ69G5FAV
//	ulidd ledger list --from 2025-01-01T00:00:00Z --filter 'source == "http"'
//	ulidd ledger stats
package client
