package types

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "unknown write mode returns ErrWriteModeUnknown",
			config:  Config{Backend: "json", WriteMode: "append"},
			wantErr: ErrWriteModeUnknown,
		},
		{
			name:    "valid json config",
			config:  Config{Backend: "json", DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "valid sqlite config with atomic mode",
			config:  Config{Backend: "sqlite", WriteMode: "atomic"},
			wantErr: nil,
		},
		{
			name:    "json with empty DataDir is valid at config level",
			config:  Config{Backend: "json", DataDir: ""},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigStorePath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere.json")

	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"json default", Config{Backend: BackendJSON, DataDir: "/data"}, filepath.Join("/data", DefaultJSONFile)},
		{"sqlite default", Config{Backend: BackendSQLite, DataDir: "/data"}, filepath.Join("/data", DefaultSQLiteFile)},
		{"relative file", Config{Backend: BackendJSON, DataDir: "/data", File: "stock.json"}, filepath.Join("/data", "stock.json")},
		{"absolute file ignores data dir", Config{Backend: BackendJSON, DataDir: "/data", File: abs}, abs},
		{"empty data dir is cwd", Config{Backend: BackendJSON}, DefaultJSONFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.StorePath(); got != tt.want {
				t.Fatalf("StorePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	var c Config
	if got := c.GetWriteMode(); got != WriteTruncate {
		t.Errorf("GetWriteMode() = %q, want %q", got, WriteTruncate)
	}
	if got := c.GetTitle(); got != DefaultTitle {
		t.Errorf("GetTitle() = %q, want %q", got, DefaultTitle)
	}
}
