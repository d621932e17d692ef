package client

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	idsvc "github.com/rzbill/ulidd/internal/services/ids"
	"github.com/rzbill/ulidd/pkg/ulid"
)

// NewLocalCommands returns the commands that run in-process without a server.
func NewLocalCommands() []*cobra.Command {
	return []*cobra.Command{
		newNewCommand(),
		newAtCommand(),
		newInspectCommand(),
		newValidCommand(),
		newNormalizeCommand(),
		newUUIDCommand(),
		newFromUUIDCommand(),
		NewBase32Command(),
	}
}

func newNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate ULIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("count")
			monotonic, _ := cmd.Flags().GetBool("monotonic")
			if n < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			mode := ulid.Permissive
			if monotonic {
				mode = ulid.Strict
			}
			ids, err := ulid.Default().Batch(mode, n)
			for _, id := range ids {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return err
		},
	}
	cmd.Flags().IntP("count", "n", 1, "Number of ULIDs")
	cmd.Flags().Bool("monotonic", false, "Strict mode: fail on clock regression or random overflow")
	return cmd
}

func newAtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "at <ms|RFC3339>",
		Short: "Generate a ULID for a fixed timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseTimeArg(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ulid.WithTimestamp(uint64(ms)))
			return nil
		},
	}
}

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <ulid>",
		Short: "Show the timestamp, random payload and UUID of a ULID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ulid.Parse(args[0])
			if err != nil {
				return err
			}
			d := idsvc.DetailsOf(id)
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd, d)
			}
			printDetails(cmd, d)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print JSON")
	return cmd
}

func printDetails(cmd *cobra.Command, d idsvc.Details) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "ulid:       %s\n", d.ULID)
	_, _ = fmt.Fprintf(w, "timestamp:  %d\n", d.Timestamp)
	_, _ = fmt.Fprintf(w, "time:       %s (%s)\n", d.Time.Format(time.RFC3339Nano), humanize.Time(d.Time))
	_, _ = fmt.Fprintf(w, "random:     %s\n", d.Random)
	_, _ = fmt.Fprintf(w, "random_hex: %s\n", d.RandomHex)
	_, _ = fmt.Fprintf(w, "uuid:       %s\n", d.UUID)
}

func newValidCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "valid <text>",
		Short: "Report whether text is a well-formed ULID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ulid.IsValid(args[0]))
			return nil
		},
	}
}

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>",
		Short: "Check a ULID and print it in canonical uppercase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ulid.Normalize(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newUUIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uuid <ulid>",
		Short: "Print a ULID as a UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ulid.ToUUID(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newFromUUIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "from-uuid <uuid>",
		Short: "Print a UUID as a ULID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ulid.FromUUID(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
