package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/internal/inventory"
	"github.com/mesh-intelligence/stockroom/internal/logging"
)

// logFileName is the diagnostic log written next to the inventory while the
// terminal UI owns the screen.
const logFileName = "stockroom.log"

// session bundles an opened store with its logger. The caller must defer
// close.
type session struct {
	store  *inventory.Store
	logger *zap.Logger
}

func (s *session) close() {
	s.store.Close()
	_ = s.logger.Sync()
}

// openSession builds the logger and opens the store from the resolved
// config. A malformed inventory file is a system error.
func openSession(logOutput string) (*session, error) {
	logger, err := logging.New(resolved.Log, logOutput)
	if err != nil {
		return nil, userError(fmt.Errorf("configure logging: %w", err))
	}

	store, err := inventory.Open(resolved, inventory.WithLogger(logger))
	if err != nil {
		_ = logger.Sync()
		return nil, sysError(fmt.Errorf("open inventory: %w", err))
	}

	logger.Debug("inventory opened",
		zap.String("backend", resolved.Backend),
		zap.String("path", store.Path()),
	)
	return &session{store: store, logger: logger}, nil
}

// uiLogPath returns where the UI writes diagnostics by default.
func uiLogPath() string {
	return filepath.Join(resolved.DataDir, logFileName)
}

// itemJSON is the --json shape of a single item.
type itemJSON struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(w, string(output))
	return nil
}
