package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/stockroom"
)

const modulePath = "github.com/mesh-intelligence/stockroom"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stockroom version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "stockroom v%s\nmodule: %s\n", stockroom.Version, modulePath)
			return nil
		},
	}
}
