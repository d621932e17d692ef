package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

// BaseURLFromEnv reads ULIDD_HTTP, defaulting to http://127.0.0.1:8080.
func BaseURLFromEnv() string {
	if u := os.Getenv("ULIDD_HTTP"); u != "" {
		if !strings.Contains(u, "://") {
			u = "http://" + u
		}
		return strings.TrimRight(u, "/")
	}
	return "http://127.0.0.1:8080"
}

// grpcAddrFromEnv returns the gRPC server address from ULIDD_GRPC or a default.
func grpcAddrFromEnv() string {
	if addr := os.Getenv("ULIDD_GRPC"); addr != "" {
		return addr
	}
	return "127.0.0.1:50051"
}

// dialGRPCContext opens a client connection with insecure transport for
// local/dev use. The connection is lazy; errors surface on the first call.
func dialGRPCContext(_ context.Context) (*grpc.ClientConn, error) {
	return grpc.NewClient(grpcAddrFromEnv(), grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// printJSON writes v indented to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// getJSON GETs url and decodes a JSON body into out. Non-2xx responses
// become errors carrying the server's error message when present.
func getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		body, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("http error: %s: %s", resp.Status, e.Error)
		}
		return fmt.Errorf("http error: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// parseTimeArg accepts Unix milliseconds or RFC3339.
func parseTimeArg(s string) (int64, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("timestamp must not be negative: %d", ms)
		}
		return ms, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: use milliseconds or RFC3339", s)
	}
	return t.UnixMilli(), nil
}
