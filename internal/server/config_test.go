package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/planning-trap/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("expected default body size, got %d", cfg.BodySizeBytes())
	}
	if cfg.RateLimit.RequestsPerMinute != constants.DefaultRequestsPerMinute || cfg.RateLimit.Burst != constants.DefaultRateBurst {
		t.Fatalf("unexpected rate limit defaults %+v", cfg.RateLimit)
	}
	if cfg.ShutdownTimeout != constants.DefaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Storage.Backend != constants.StorageBackendMemory {
		t.Fatalf("expected memory storage, got %q", cfg.Storage.Backend)
	}
	if cfg.Share.SiteURL != constants.DefaultShareURL {
		t.Fatalf("expected default share url, got %q", cfg.Share.SiteURL)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxBodySize: 256K
rateLimit:
  requestsPerMinute: 120
  burst: 5
shutdownTimeout: 3s
logging:
  level: debug
  format: console
storage:
  backend: sqlite
  path: /tmp/prefs.db
share:
  siteURL: https://example.com
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 256*1024 {
		t.Fatalf("expected body size override, got %d", cfg.BodySizeBytes())
	}
	if cfg.RateLimit.RequestsPerMinute != 120 || cfg.RateLimit.Burst != 5 {
		t.Fatalf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
	if cfg.Storage.Backend != "sqlite" || cfg.Storage.Path != "/tmp/prefs.db" {
		t.Fatalf("unexpected storage %+v", cfg.Storage)
	}
	if cfg.Storage.Key != constants.PreferencesKey {
		t.Fatalf("expected default preferences key, got %q", cfg.Storage.Key)
	}
	if cfg.Share.SiteURL != "https://example.com" {
		t.Fatalf("unexpected share site %q", cfg.Share.SiteURL)
	}
	if cfg.Share.CTAURL != constants.DefaultCTAURL {
		t.Fatalf("expected default cta url, got %q", cfg.Share.CTAURL)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: etcd\n"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unknown storage backend")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	if err := os.WriteFile(path, []byte("address: [unterminated"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSetBodySizeBytes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetBodySizeBytes(1024)
	if cfg.BodySizeBytes() != 1024 || cfg.MaxBodySize != "1024" {
		t.Fatalf("unexpected body size %d (%s)", cfg.BodySizeBytes(), cfg.MaxBodySize)
	}
	cfg.SetBodySizeBytes(0)
	if cfg.BodySizeBytes() != 1024 {
		t.Fatalf("non-positive override should be ignored, got %d", cfg.BodySizeBytes())
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"", constants.DefaultMaxBodySizeBytes, false},
		{"512", 512, false},
		{"512B", 512, false},
		{"64k", 64 * 1024, false},
		{"1 MB", 1024 * 1024, false},
		{"10G", 0, true},
		{"MB", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSize(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.want)
			}
		})
	}
}
