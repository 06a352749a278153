package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_BASE_URL", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr)
	}
	if cfg.AnthropicBaseURL != "https://api.anthropic.com/v1/messages" {
		t.Errorf("AnthropicBaseURL = %q", cfg.AnthropicBaseURL)
	}
	if err := cfg.RequireAPIKey(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("RequireAPIKey = %v, want ErrMissingAPIKey", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "addr = \":8080\"\ndb_path = \"x.db\"\ndemo_date = \"2025-02-05\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9999")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-REDACTED")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want env to win over file", cfg.Addr)
	}
	if cfg.DBPath != "x.db" {
		t.Errorf("DBPath = %q, want file value", cfg.DBPath)
	}
	if cfg.DemoDate != "2025-02-05" {
		t.Errorf("DemoDate = %q", cfg.DemoDate)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		t.Errorf("RequireAPIKey = %v, want nil", err)
	}
}

func TestExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load with explicit missing file succeeded")
	}
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("PORT", "abc")
	if _, err := Load(""); err == nil {
		t.Error("Load accepted non-numeric PORT")
	}
}

func TestRedactedKey(t *testing.T) {
	c := Config{AnthropicAPIKey: "sk-ant-REDACTED"}
	want := "sk-ant-api03...mnop"
	if got := c.RedactedKey(); got != want {
		t.Errorf("RedactedKey = %q, want %q", got, want)
	}
	short := Config{AnthropicAPIKey: "kurz"}
	if got := short.RedactedKey(); got != "****" {
		t.Errorf("RedactedKey short = %q, want masked", got)
	}
}
