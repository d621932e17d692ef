// Package httpserver provides the JSON REST gateway for ulidd. Routes are
// grouped into controllers (general, ulids, codec, ledger) that delegate to
// the shared ids service.
//
// Example:
//
//	rt, _ := runtime.Open(runtime.Options{Config: config.Default()})
//	s := httpserver.New(rt, logger)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":8080")
//
//	curl -XPOST localhost:8080/v1/ulids -d '{"mode":"strict","count":3}'
//	curl localhost:8080/v1/ulids/01ARZ3NDEKTSV4RRFFQ69G5FAV
package httpserver
