// Package idsvc is the operation layer shared by the gRPC, HTTP and CLI
// surfaces: generation with batch limits and ledger recording, inspection,
// validation, UUID conversion and raw Base32 codec access.
//
// Example:
//
//	svc := idsvc.New(rt)
//	ids, _ := svc.Generate(ctx, ulid.Strict, 10, idsvc.SourceHTTP)
//	d, _ := svc.Inspect(ids[0].String())
//	fmt.Println(d.Time, d.UUID)
//
// Generation failures are logged at WARN with the mode and error. A failed
// ledger write is logged too but never fails the request.
package idsvc
