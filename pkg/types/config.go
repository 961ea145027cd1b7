package types

import (
	"errors"
	"path/filepath"
)

// Config holds backend selection and parameters for opening an item store.
type Config struct {
	Backend   string    `json:"backend" yaml:"backend" mapstructure:"backend" validate:"required,oneof=json sqlite"`
	DataDir   string    `json:"data_dir" yaml:"data_dir,omitempty" mapstructure:"data_dir"`
	File      string    `json:"file" yaml:"file,omitempty" mapstructure:"file"`
	WriteMode string    `json:"write_mode" yaml:"write_mode,omitempty" mapstructure:"write_mode" validate:"omitempty,oneof=truncate atomic"`
	Title     string    `json:"title" yaml:"title,omitempty" mapstructure:"title"`
	Log       LogConfig `json:"log" yaml:"log,omitempty" mapstructure:"log"`
}

// LogConfig selects the diagnostic log level and destination. An empty
// File means the caller picks the destination.
type LogConfig struct {
	Level string `json:"level" yaml:"level,omitempty" mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `json:"file" yaml:"file,omitempty" mapstructure:"file"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Write modes for the JSON backend. Truncate overwrites the file in place;
// atomic writes a temp file, syncs it, and renames it over the target.
const (
	WriteTruncate = "truncate"
	WriteAtomic   = "atomic"
)

// Default file names inside the data directory.
const (
	DefaultJSONFile   = "items.json"
	DefaultSQLiteFile = "stockroom.db"
	DefaultTitle      = "STOCKROOM"
)

// Config validation errors.
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrWriteModeUnknown = errors.New("unknown write mode")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	switch c.WriteMode {
	case "", WriteTruncate, WriteAtomic:
	default:
		return ErrWriteModeUnknown
	}
	return nil
}

// GetWriteMode returns the effective write mode, defaulting to truncate.
func (c Config) GetWriteMode() string {
	if c.WriteMode == "" {
		return WriteTruncate
	}
	return c.WriteMode
}

// GetTitle returns the window title for the terminal UI.
func (c Config) GetTitle() string {
	if c.Title == "" {
		return DefaultTitle
	}
	return c.Title
}

// StorePath returns the path of the persisted inventory. An absolute File is
// used as is; a relative one resolves against DataDir. When File is empty the
// backend's default file name is used.
func (c Config) StorePath() string {
	name := c.File
	if name == "" {
		if c.Backend == BackendSQLite {
			name = DefaultSQLiteFile
		} else {
			name = DefaultJSONFile
		}
	}
	if filepath.IsAbs(name) {
		return name
	}
	dir := c.DataDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}
