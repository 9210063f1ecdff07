package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunFailsOnInvalidConfig(t *testing.T) {
	t.Setenv("BACKEND_MODE", "carrier-pigeon")
	if err := run(); err == nil {
		t.Fatalf("expected config error")
	}
}

func TestRunFailsOnUnknownConfigFileKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.toml")
	if err := os.WriteFile(path, []byte("colour = \"blue\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	if err := run(); err == nil {
		t.Fatalf("expected unknown key error")
	}
}
