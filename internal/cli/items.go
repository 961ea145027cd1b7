package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/inventory"
	"github.com/mesh-intelligence/stockroom/internal/logging"
)

func newAddCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "add NAME QUANTITY",
		Short: "Add an item or increase its quantity",
		Long: `Add stores QUANTITY under NAME, or adds it to the existing quantity.

QUANTITY must be made of digits only. Invalid input is ignored silently
unless --strict is given.

Example:
  stockroom add "Protein Shake" 12
  stockroom add "Aloe Vera" 3 --strict`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(logging.OutputStderr)
			if err != nil {
				return err
			}
			defer s.close()

			res, err := s.store.AddOrIncrement(args[0], args[1])
			if err != nil {
				return sysError(err)
			}
			if !res.Applied {
				if strict {
					return userError(fmt.Errorf("add %q: name must not be empty and quantity must be digits only", args[0]))
				}
				return nil
			}

			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), itemJSON{Name: args[0], Quantity: res.Quantity})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", args[0], res.Quantity)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "report invalid input as an error")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an item",
		Long: `Remove deletes NAME from the inventory. Removing an item that does not
exist does nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(logging.OutputStderr)
			if err != nil {
				return err
			}
			defer s.close()

			removed, err := s.store.Remove(args[0])
			if err != nil {
				return sysError(err)
			}
			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), struct {
					Name    string `json:"name"`
					Removed bool   `json:"removed"`
				}{args[0], removed})
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			}
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update NAME QUANTITY",
		Short: "Replace the quantity of an existing item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(logging.OutputStderr)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.store.UpdateQuantity(args[0], args[1]); err != nil {
				if inventory.IsValidationError(err) {
					return userError(err)
				}
				return sysError(err)
			}

			qty, _ := s.store.Get(args[0])
			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), itemJSON{Name: args[0], Quantity: qty})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", args[0], qty)
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [TERM...]",
		Short: "Find the first item whose name contains TERM",
		Long: `Search looks for TERM in item names, ignoring case, and prints the first
match in the order items were added.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(logging.OutputStderr)
			if err != nil {
				return err
			}
			defer s.close()

			res := s.store.Search(strings.Join(args, " "))
			if flags.jsonMode {
				out := struct {
					Status   string `json:"status"`
					Name     string `json:"name,omitempty"`
					Quantity *int   `json:"quantity,omitempty"`
				}{Status: searchStatusName(res.Status)}
				if res.Status == inventory.SearchFound {
					out.Name = res.Name
					out.Quantity = &res.Quantity
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.String())
			return nil
		},
	}
}

func searchStatusName(s inventory.SearchStatus) string {
	switch s {
	case inventory.SearchFound:
		return "found"
	case inventory.SearchNotFound:
		return "not_found"
	default:
		return "empty_term"
	}
}
