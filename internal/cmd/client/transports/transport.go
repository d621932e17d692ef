package transports

import "context"

// Details mirrors the server's Inspect result.
type Details struct {
	ULID        string `json:"ulid"`
	TimestampMs uint64 `json:"timestamp_ms"`
	Time        string `json:"time"`
	Random      string `json:"random"`
	RandomHex   string `json:"random_hex"`
	UUID        string `json:"uuid"`
}

// IDTransport abstracts how the CLI reaches a running ulidd.
type IDTransport interface {
	Generate(ctx context.Context, mode string, count int) ([]string, error)
	Inspect(ctx context.Context, text string) (Details, error)
	Validate(ctx context.Context, text string) (bool, error)
}
