package client

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs a root Cobra command with every client command: the
// local operations plus the remote and ledger groups.
func NewRoot(baseURL BaseURLFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "ulidd",
		Short:         "ULID generation and inspection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	Register(root, baseURL)
	return root
}

// Register adds the client commands to an existing root.
func Register(root *cobra.Command, baseURL BaseURLFunc) {
	if baseURL == nil {
		baseURL = BaseURLFromEnv
	}
	root.AddCommand(NewLocalCommands()...)
	root.AddCommand(NewRemoteCommand())
	root.AddCommand(NewLedgerCommand(baseURL))
}
