package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockroom/internal/config"
	"github.com/mesh-intelligence/stockroom/internal/inventory"
	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	File      string `yaml:"file,omitempty"`
	WriteMode string `yaml:"write_mode"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize stockroom storage",
		Long: "Create the configuration directory and config.yaml, then create the\n" +
			"inventory file if it does not exist yet.",
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	// Write config.yaml if missing, recording the flags given to init.
	configPath := filepath.Join(configDir, config.FileName)
	if err := writeConfigIfMissing(configPath); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	cfg, err := config.Resolve(overrides())
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}

	path, err := ensureStore(cfg)
	if err != nil {
		return sysError(fmt.Errorf("initialize storage: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stockroom initialized: %s\n", path)
	return nil
}

// ensureStore loads the inventory, which fails on malformed data, and writes
// an empty one when nothing has been persisted yet. It returns the store path.
func ensureStore(cfg types.Config) (string, error) {
	p, err := inventory.OpenPersister(cfg)
	if err != nil {
		return "", err
	}
	defer p.Close()

	inv, err := p.Load()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(p.Path()); errors.Is(err, fs.ErrNotExist) {
		if err := p.Save(inv); err != nil {
			return "", err
		}
	}
	return p.Path(), nil
}

// writeConfigIfMissing creates config.yaml from the global flags if the file
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Backend:   types.BackendJSON,
		DataDir:   flags.dataDir,
		File:      flags.file,
		WriteMode: types.WriteTruncate,
	}
	if flags.backend != "" {
		cfg.Backend = flags.backend
	}
	if cfg.DataDir != "" {
		abs, err := filepath.Abs(cfg.DataDir)
		if err != nil {
			return err
		}
		cfg.DataDir = abs
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
