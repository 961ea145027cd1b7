// Package cli implements the stockroom command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/config"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	file      string
	backend   string
	jsonMode  bool
}

var flags rootFlags

// resolved holds the configuration loaded by PersistentPreRunE.
var resolved types.Config

// NewRootCmd creates the top-level "stockroom" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stockroom",
		Short: "A single-user inventory tracker",
		Long: "Stockroom keeps named items with whole-number quantities in a local\n" +
			"JSON file. Run \"stockroom ui\" for the interactive screens.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// version needs no config; init writes its own.
			if cmd.Name() == "version" || cmd.Name() == "init" {
				return nil
			}
			cfg, err := config.Resolve(overrides())
			if err != nil {
				return sysError(fmt.Errorf("load config: %w", err))
			}
			resolved = cfg
			return nil
		},
	}

	flags = rootFlags{}
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: current directory)")
	root.PersistentFlags().StringVar(&flags.file, "file", "", "inventory file name or path (default: items.json)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "storage backend: json or sqlite")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newUpdateCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newUICmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(ExitCode(err))
	}
}

func overrides() config.Overrides {
	return config.Overrides{
		ConfigDir: flags.configDir,
		DataDir:   flags.dataDir,
		File:      flags.file,
		Backend:   flags.backend,
	}
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// ExitCode maps an error returned by the root command to an exit code.
// Errors raised by cobra itself (unknown command, wrong argument count) are
// user errors.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
