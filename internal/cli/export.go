package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/export"
	"github.com/mesh-intelligence/stockroom/internal/logging"
)

func newExportCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the inventory to an xlsx or csv file",
		Long: `Export writes every item and its quantity to a spreadsheet.

The format defaults to the extension of --out, and to xlsx when the
extension is not recognised.

Example:
  stockroom export --out stock.xlsx
  stockroom export --out stock.txt --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = export.FormatFromPath(out)
				if format != export.FormatCSV {
					format = export.FormatXLSX
				}
			}
			if format != export.FormatXLSX && format != export.FormatCSV {
				return userError(fmt.Errorf("%w: %q", export.ErrUnknownFormat, format))
			}

			s, err := openSession(logging.OutputStderr)
			if err != nil {
				return err
			}
			defer s.close()

			if err := export.WriteFile(out, format, s.store.List()); err != nil {
				return sysError(fmt.Errorf("export: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d item(s) to %s\n", s.store.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (required)")
	cmd.Flags().StringVar(&format, "format", "", "xlsx or csv (default: from --out extension)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
