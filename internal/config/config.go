// Package config loads the server configuration: defaults, then an
// optional TOML file, then environment variables (highest precedence). A
// .env file next to the binary is read first so the API key can live
// outside the shell profile.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the resolved server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string `toml:"addr"`
	// DBPath is the SQLite file for snapshots and the audit log.
	DBPath string `toml:"db_path"`
	// StaticDir holds the built dashboard; empty disables static serving.
	StaticDir string `toml:"static_dir"`
	// DemoDate pins "today" to a fixed ISO date. Empty means real time.
	DemoDate string `toml:"demo_date"`
	// EnableMetrics exposes /metrics.
	EnableMetrics bool `toml:"enable_metrics"`

	// AnthropicAPIKey authenticates the AI proxy. Env only, never TOML,
	// so the key cannot end up in a committed config file.
	AnthropicAPIKey string `toml:"-"`
	// AnthropicBaseURL overrides the upstream endpoint, for tests.
	AnthropicBaseURL string `toml:"-"`
}

// ErrMissingAPIKey means the AI proxy cannot start.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY fehlt")

const defaultUpstream = "https://api.anthropic.com/v1/messages"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:             ":3000",
		DBPath:           "cees-dashboard.db",
		StaticDir:        "public",
		AnthropicBaseURL: defaultUpstream,
	}
}

// Load resolves the configuration. tomlPath may be empty; a missing file
// at the given path is an error, a missing default file is not.
func Load(tomlPath string) (Config, error) {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	cfg := Default()

	path := tomlPath
	explicit := path != ""
	if path == "" {
		path = "config.toml"
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit || !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Addr = ":" + port
	}
	if v := os.Getenv("CEES_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CEES_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("CEES_DEMO_DATE"); v != "" {
		cfg.DemoDate = v
	}
	if v := os.Getenv("CEES_METRICS"); v != "" {
		cfg.EnableMetrics = v == "1" || v == "true"
	}
	cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	if v := os.Getenv("ANTHROPIC_BASE_URL"); v != "" {
		cfg.AnthropicBaseURL = v
	}
	return cfg, nil
}

// RequireAPIKey validates that the AI proxy can run. The caller prints
// the setup instructions and exits non-zero.
func (c Config) RequireAPIKey() error {
	if c.AnthropicAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// RedactedKey renders the API key for startup logs: first 12 and last 4
// characters, never the middle.
func (c Config) RedactedKey() string {
	k := c.AnthropicAPIKey
	if len(k) <= 16 {
		return "****"
	}
	return k[:12] + "..." + k[len(k)-4:]
}
