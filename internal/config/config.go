// Package config loads and saves finchat configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all finchat configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Granite GraniteConfig `toml:"granite"`
	Watson  WatsonConfig  `toml:"watson"`
	Display DisplayConfig `toml:"display"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultBackend string `toml:"default_backend"`
	DefaultPersona string `toml:"default_persona"`
}

// GraniteConfig holds Hugging Face Inference API settings for Granite.
type GraniteConfig struct {
	APIToken string `toml:"api_token,omitempty"`
	Model    string `toml:"model,omitempty"`
}

// WatsonConfig holds Watson Assistant settings.
type WatsonConfig struct {
	APIKey      string `toml:"api_key,omitempty"`
	URL         string `toml:"url,omitempty"`
	AssistantID string `toml:"assistant_id,omitempty"`
}

// DisplayConfig holds output formatting settings.
type DisplayConfig struct {
	Currency string `toml:"currency"`
}

// DefaultModel is used when no Granite model is configured.
const DefaultModel = "ibm-granite/granite-3.3-2b-instruct"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultBackend: "granite",
			DefaultPersona: "student",
		},
		Display: DisplayConfig{
			Currency: "₹",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finchat")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finchat")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment variables override file values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Env wins over the file
// so tokens never have to be written to disk.
func applyEnv(cfg *Config) {
	if v := os.Getenv("HUGGINGFACE_API_TOKEN"); v != "" {
		cfg.Granite.APIToken = v
	}
	if v := os.Getenv("GRANITE_MODEL"); v != "" {
		cfg.Granite.Model = v
	}
	if v := os.Getenv("WATSON_APIKEY"); v != "" {
		cfg.Watson.APIKey = v
	}
	if v := os.Getenv("WATSON_URL"); v != "" {
		cfg.Watson.URL = v
	}
	if v := os.Getenv("WATSON_ASSISTANT_ID"); v != "" {
		cfg.Watson.AssistantID = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// GraniteModel returns the configured model or the default.
func (c Config) GraniteModel() string {
	if c.Granite.Model != "" {
		return c.Granite.Model
	}
	return DefaultModel
}

// WatsonConfigured reports whether all three Watson values are present.
func (c Config) WatsonConfigured() bool {
	return c.Watson.APIKey != "" && c.Watson.URL != "" && c.Watson.AssistantID != ""
}
