package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{Theme: "classic", Log: Log{Level: "info"}}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Fatalf("defaults (-want +got):\n%s", d)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	body := "theme: neon\nseed: list.json\nhide_completed: true\nlog:\n  file: /tmp/shopping.log\n  level: debug\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("SHOPPING_THEME", "mono")
	t.Setenv("SHOPPING_LOG_LEVEL", "warn")

	cfg, err := Load(viper.New(), p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		Theme:         "mono",
		SeedFile:      "list.json",
		HideCompleted: true,
		Log:           Log{File: "/tmp/shopping.log", Level: "warn"},
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Fatalf("config (-want +got):\n%s", d)
	}
}

func TestLoad_DiscoversWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	if err := os.WriteFile(filepath.Join(dir, "shopping.yaml"), []byte("search: milk\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SearchTerm != "milk" {
		t.Fatalf("expected search from discovered file, got %q", cfg.SearchTerm)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}
