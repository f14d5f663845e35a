package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMustLoad(t *testing.T) {
	dir := t.TempDir()
	raw := []byte("listen_addr: ':9090'\napi_base_url: 'http://api:8000'\nlog_level: debug\nread_timeout: 2s\nseed_posts: false\n")
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := MustLoad(path)

	if cfg.ListenAddr != ":9090" {
		t.Errorf("unexpected listen_addr: %s", cfg.ListenAddr)
	}
	if cfg.APIBaseURL != "http://api:8000" {
		t.Errorf("unexpected api_base_url: %s", cfg.APIBaseURL)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Errorf("unexpected read_timeout: %s", cfg.ReadTimeout)
	}
	if cfg.SeedPosts {
		t.Error("seed_posts should be overridable to false")
	}
	// untouched fields keep defaults
	if cfg.WriteTimeout != 10*time.Second {
		t.Errorf("expected default write_timeout, got %s", cfg.WriteTimeout)
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config file, got none")
		}
	}()

	_ = MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
}
