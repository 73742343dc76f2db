package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate keeps the loader away from any real runbox.yaml in cwd or $HOME.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 8004 {
		t.Errorf("port = %d, want 8004", cfg.Server.Port)
	}
	if cfg.Exec.DefaultTimeout != 10 {
		t.Errorf("default timeout = %d, want 10", cfg.Exec.DefaultTimeout)
	}
	if cfg.Exec.TempRoot != os.TempDir() {
		t.Errorf("temp root = %q, want %q", cfg.Exec.TempRoot, os.TempDir())
	}
}

func TestLoadPortFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("PORT", "")

	yaml := "server:\n  port: 1234\nexec:\n  default_timeout: 3\n  toolchains: /etc/runbox/toolchains.yaml\n"
	if err := os.WriteFile(filepath.Join(dir, "runbox.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 1234 {
		t.Errorf("port = %d, want 1234", cfg.Server.Port)
	}
	if cfg.Exec.DefaultTimeout != 3 {
		t.Errorf("default timeout = %d, want 3", cfg.Exec.DefaultTimeout)
	}
	if cfg.Exec.Toolchains != "/etc/runbox/toolchains.yaml" {
		t.Errorf("toolchains = %q", cfg.Exec.Toolchains)
	}
}
