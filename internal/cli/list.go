package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/logging"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all items",
		Long: `List prints every item and its quantity in the order items were added.

Example:
  stockroom list
  stockroom list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(logging.OutputStderr)
			if err != nil {
				return err
			}
			defer s.close()

			items := make([]itemJSON, 0, s.store.Len())
			for name, qty := range s.store.List() {
				items = append(items, itemJSON{Name: name, Quantity: qty})
			}

			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			printItemTable(cmd.OutOrStdout(), items)
			return nil
		},
	}
}

// printItemTable prints items in a human-readable table format.
func printItemTable(out io.Writer, items []itemJSON) {
	if len(items) == 0 {
		fmt.Fprintln(out, "No items found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ITEM NAME\tQUANTITY")
	fmt.Fprintln(w, "---------\t--------")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%d\n", it.Name, it.Quantity)
	}
	w.Flush()

	// Print output, trimming trailing whitespace from each line
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}

	fmt.Fprintf(out, "Total: %d item(s)\n", len(items))
}
