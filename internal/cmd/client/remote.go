package client

import (
	"fmt"

	"github.com/spf13/cobra"

	transports "github.com/rzbill/ulidd/internal/cmd/client/transports"
)

func getTransport() transports.IDTransport {
	// For now, only gRPC transport; the HTTP API covers the same operations.
	return transports.NewGrpcTransport(dialGRPCContext)
}

// NewRemoteCommand constructs the `remote` group, which calls a running
// server over gRPC (ULIDD_GRPC, default 127.0.0.1:50051).
func NewRemoteCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "remote", Short: "Call a running ulidd over gRPC"}
	cmd.AddCommand(newRemoteNewCommand(), newRemoteInspectCommand(), newRemoteValidCommand())
	return cmd
}

func newRemoteNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate ULIDs on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("count")
			mode, _ := cmd.Flags().GetString("mode")
			ids, err := getTransport().Generate(cmd.Context(), mode, n)
			if err != nil {
				return err
			}
			for _, id := range ids {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1, "Number of ULIDs")
	cmd.Flags().String("mode", "", "strict|permissive (default: server's generator.defaultMode)")
	return cmd
}

func newRemoteInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <ulid>",
		Short: "Decode a ULID on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := getTransport().Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, d)
		},
	}
}

func newRemoteValidCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "valid <text>",
		Short: "Validate a ULID on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := getTransport().Validate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}
