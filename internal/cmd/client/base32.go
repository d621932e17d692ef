package client

import (
	"fmt"

	"github.com/spf13/cobra"
	"lukechampine.com/uint128"

	"github.com/rzbill/ulidd/pkg/base32"
)

// NewBase32Command constructs the `base32` group: raw codec access over
// decimal 128-bit integers.
func NewBase32Command() *cobra.Command {
	cmd := &cobra.Command{Use: "base32", Short: "Crockford Base32 codec"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode <decimal>",
			Short: "Encode a base-10 integer as 26 symbols",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := uint128.FromString(args[0])
				if err != nil {
					return fmt.Errorf("invalid 128-bit decimal %q: %w", args[0], err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), base32.Encode(v))
				return nil
			},
		},
		&cobra.Command{
			Use:   "decode <text>",
			Short: "Decode symbols to a base-10 integer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := base32.Decode(args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
	)
	return cmd
}
