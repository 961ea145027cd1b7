package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/tui"
)

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive inventory screens",
		Long: `UI opens the terminal front end. Diagnostics are written to
stockroom.log in the data directory unless log.file is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(uiLogPath())
			if err != nil {
				return err
			}
			defer s.close()

			if err := tui.Run(s.store, resolved.GetTitle()); err != nil {
				return sysError(fmt.Errorf("run ui: %w", err))
			}
			return nil
		},
	}
}
