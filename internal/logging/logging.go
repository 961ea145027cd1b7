// Package logging builds the zap logger used as Stockroom's diagnostic
// channel. Diagnostics never reach the terminal UI; they go to stderr for
// CLI commands and to a log file while the UI owns the terminal.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// OutputStderr is the zap sink name for standard error.
const OutputStderr = "stderr"

// DefaultLevel applies when the config leaves the level empty.
const DefaultLevel = "info"

// New builds a console logger. cfg.File wins over fallbackOutput; when both
// are empty the logger writes to stderr.
func New(cfg types.LogConfig, fallbackOutput string) (*zap.Logger, error) {
	levelName := cfg.Level
	if levelName == "" {
		levelName = DefaultLevel
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	output := cfg.File
	if output == "" {
		output = fallbackOutput
	}
	if output == "" {
		output = OutputStderr
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.DisableStacktrace = true
	zapConfig.OutputPaths = []string{output}
	zapConfig.ErrorOutputPaths = []string{OutputStderr}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Named("stockroom"), nil
}

