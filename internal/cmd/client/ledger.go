package client

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

// NewLedgerCommand constructs the `ledger` group, read over the HTTP API.
func NewLedgerCommand(baseURL BaseURLFunc) *cobra.Command {
	cmd := &cobra.Command{Use: "ledger", Short: "Inspect the issuance ledger"}
	cmd.AddCommand(newLedgerListCommand(baseURL), newLedgerStatsCommand(baseURL))
	return cmd
}

func newLedgerListCommand(baseURL BaseURLFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issued ULIDs in a time window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			filter, _ := cmd.Flags().GetString("filter")
			limit, _ := cmd.Flags().GetInt("limit")
			reverse, _ := cmd.Flags().GetBool("reverse")

			q := url.Values{}
			for name, v := range map[string]string{"from": from, "to": to} {
				if v == "" {
					continue
				}
				ms, err := parseTimeArg(v)
				if err != nil {
					return fmt.Errorf("--%s: %w", name, err)
				}
				q.Set(name, strconv.FormatInt(ms, 10))
			}
			if filter != "" {
				q.Set("filter", filter)
			}
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}
			if reverse {
				q.Set("reverse", "true")
			}
			var data struct {
				Entries []struct {
					ID       string `json:"id"`
					Mode     string `json:"mode"`
					Source   string `json:"source"`
					IssuedMs int64  `json:"issued_ms"`
				} `json:"entries"`
			}
			if err := getJSON(cmd.Context(), baseURL()+"/v1/ledger?"+q.Encode(), &data); err != nil {
				return err
			}
			return printJSON(cmd, data)
		},
	}
	cmd.Flags().String("from", "", "Start time (inclusive): ms or RFC3339")
	cmd.Flags().String("to", "", "End time (exclusive): ms or RFC3339")
	cmd.Flags().String("filter", "", "CEL filter over ts_ms, text, random_hex, mode, source, issued_ms, now_ms")
	cmd.Flags().Int("limit", 100, "Max entries to return")
	cmd.Flags().Bool("reverse", false, "Newest first")
	return cmd
}

func newLedgerStatsCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ledger and storage counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var data map[string]any
			if err := getJSON(cmd.Context(), baseURL()+"/v1/stats", &data); err != nil {
				return err
			}
			return printJSON(cmd, data)
		},
	}
}
