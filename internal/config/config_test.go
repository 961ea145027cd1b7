package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		paths.EnvConfigDir, paths.EnvDataDir,
		"STOCKROOM_BACKEND", "STOCKROOM_FILE", "STOCKROOM_WRITE_MODE",
		"STOCKROOM_TITLE", "STOCKROOM_LOG_LEVEL", "STOCKROOM_LOG_FILE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "cfg")

	v, err := Load(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, types.BackendJSON, v.GetString(KeyBackend))
	assert.Equal(t, types.WriteTruncate, v.GetString(KeyWriteMode))
	assert.Equal(t, "info", v.GetString(KeyLogLevel))
}

func TestLoadKeepsExistingConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("backend: sqlite\ntitle: HERBALIFE PRODUCTS\n"), 0o644))

	v, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, v.GetString(KeyBackend))
	assert.Equal(t, "HERBALIFE PRODUCTS", v.GetString(KeyTitle))
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("backend: [json\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	clearEnv(t)
	configDir := t.TempDir()
	yamlDataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, FileName),
		[]byte("backend: json\ndata_dir: "+yamlDataDir+"\nwrite_mode: atomic\nlog:\n  level: debug\n"), 0o644))

	cfg, err := Resolve(Overrides{ConfigDir: configDir})
	require.NoError(t, err)
	assert.Equal(t, types.BackendJSON, cfg.Backend)
	assert.Equal(t, yamlDataDir, cfg.DataDir)
	assert.Equal(t, types.WriteAtomic, cfg.WriteMode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(yamlDataDir, types.DefaultJSONFile), cfg.StorePath())
}

func TestResolveOverridesWin(t *testing.T) {
	clearEnv(t)
	configDir := t.TempDir()
	flagDataDir := t.TempDir()

	cfg, err := Resolve(Overrides{
		ConfigDir: configDir,
		DataDir:   flagDataDir,
		File:      "stock.db",
		Backend:   types.BackendSQLite,
	})
	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, cfg.Backend)
	assert.Equal(t, filepath.Join(flagDataDir, "stock.db"), cfg.StorePath())
}

func TestResolveEnvBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STOCKROOM_BACKEND", "sqlite")

	cfg, err := Resolve(Overrides{ConfigDir: t.TempDir(), DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, cfg.Backend)
}

func TestResolveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"unknown backend", "backend: redis\n", types.ErrBackendUnknown},
		{"unknown write mode", "backend: json\nwrite_mode: append\n", types.ErrWriteModeUnknown},
		{"unknown log level", "backend: json\nlog:\n  level: chatty\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			configDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(configDir, FileName), []byte(tt.yaml), 0o644))

			_, err := Resolve(Overrides{ConfigDir: configDir, DataDir: t.TempDir()})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
