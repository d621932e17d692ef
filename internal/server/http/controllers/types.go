package controllers

import (
	"github.com/rzbill/ulidd/internal/ledger"
	"github.com/rzbill/ulidd/internal/runtime"
)

// Common request/response types for HTTP controllers

type errorResp struct {
	Error string `json:"error"`
}

// generateReq is the body of POST /v1/ulids. Mode defaults to the configured
// generator.defaultMode and Count to 1.
type generateReq struct {
	Mode  string `json:"mode"`
	Count int    `json:"count"`
}

type generateResp struct {
	ULIDs []string `json:"ulids"`
}

type atReq struct {
	TimestampMs uint64 `json:"timestamp_ms"`
}

type ulidResp struct {
	ULID string `json:"ulid"`
}

type uuidResp struct {
	UUID string `json:"uuid"`
}

type validResp struct {
	Valid bool `json:"valid"`
}

type encodeReq struct {
	Value string `json:"value"`
}

type encodeResp struct {
	Text string `json:"text"`
}

type decodeReq struct {
	Text string `json:"text"`
}

type decodeResp struct {
	Value string `json:"value"`
}

type ledgerResp struct {
	Entries []ledger.Entry `json:"entries"`
}

type statsResp struct {
	Ledger  *ledger.Stats           `json:"ledger,omitempty"`
	Storage runtime.StorageSnapshot `json:"storage"`
}
