package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	idsvc "github.com/rzbill/ulidd/internal/services/ids"
)

// Helper functions for common HTTP responses

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResp{Error: message})
}

// writeServiceError maps a service error to its HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch idsvc.Classify(err) {
	case idsvc.KindInvalid:
		return http.StatusBadRequest
	case idsvc.KindExhausted, idsvc.KindUnavailable:
		return http.StatusServiceUnavailable
	case idsvc.KindNotFound:
		return http.StatusNotFound
	}
	// clock regression included: the server's clock is at fault, not the caller
	return http.StatusInternalServerError
}

// writeJSON writes a JSON response with the given data.
func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// decodeBody decodes a JSON request body into v. An empty body leaves v as is.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// parseLimit parses a limit string. Returns 0 for empty or invalid values.
func parseLimit(limitStr string) int {
	if limitStr == "" {
		return 0
	}
	if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
		return limit
	}
	return 0
}

// parseTimestamp accepts Unix milliseconds or RFC3339. Returns 0 for empty or
// invalid values.
func parseTimestamp(ts string) int64 {
	if ts == "" {
		return 0
	}
	if ms, err := strconv.ParseInt(ts, 10, 64); err == nil {
		return ms
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.UnixMilli()
	}
	return 0
}

// parseBool returns true for "true" or "1".
func parseBool(s string) bool {
	return s == "true" || s == "1"
}
