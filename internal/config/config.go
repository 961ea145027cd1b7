// Package config loads Stockroom configuration from config.yaml with Viper
// and resolves it, together with command-line overrides, into types.Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// FileName is the config file created inside the config directory.
	FileName = "config.yaml"

	envPrefix = "STOCKROOM"
)

// Config keys.
const (
	KeyBackend   = "backend"
	KeyDataDir   = "data_dir"
	KeyFile      = "file"
	KeyWriteMode = "write_mode"
	KeyTitle     = "title"
	KeyLogLevel  = "log.level"
	KeyLogFile   = "log.file"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Stockroom configuration

# Backend selection: json or sqlite
backend: json

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Inventory file name inside the data directory
# file: items.json

# truncate rewrites the file in place; atomic writes a temp file and renames it
write_mode: truncate

log:
  level: info
`

// Overrides carries values from command-line flags. Empty fields do not
// override anything.
type Overrides struct {
	ConfigDir string
	DataDir   string
	File      string
	Backend   string
}

var validate = validator.New()

// Load reads config.yaml from configDir using Viper. It creates the config
// directory and a default config.yaml on first run. A missing config.yaml is
// not an error.
func Load(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyBackend, types.BackendJSON)
	v.SetDefault(KeyWriteMode, types.WriteTruncate)
	v.SetDefault(KeyTitle, types.DefaultTitle)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// data_dir is left to paths.ResolveDataDir, which ranks the config file
	// above the environment.
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{KeyBackend, KeyFile, KeyWriteMode, KeyTitle} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	if err := v.BindEnv(KeyLogLevel, envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("bind env %s: %w", KeyLogLevel, err)
	}
	if err := v.BindEnv(KeyLogFile, envPrefix+"_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("bind env %s: %w", KeyLogFile, err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// Resolve loads the configuration and applies overrides. DataDir in the
// result is always absolute.
func Resolve(o Overrides) (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(o.ConfigDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := Load(configDir)
	if err != nil {
		return types.Config{}, err
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.DataDir, err = paths.ResolveDataDir(o.DataDir, v.GetString(KeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	if o.File != "" {
		cfg.File = o.File
	}
	if o.Backend != "" {
		cfg.Backend = o.Backend
	}

	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg with its sentinel rules first, then the struct tags.
func Validate(cfg types.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, FileName)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
