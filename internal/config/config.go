// Package config handles quarry configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	// Engine is the provider used when none is selected on the
	// command line (e.g. "Bing", "Yahoo! BOSS").
	Engine string `toml:"engine"`

	// Engines maps provider names to their credentials. Bing takes
	// "key" and optionally "type"; Yahoo! BOSS takes "key" and
	// "secret".
	Engines map[string]map[string]string `toml:"engines"`

	// Proxy is an optional SOCKS5 proxy URL for outbound requests.
	Proxy string `toml:"proxy"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "quarry.toml"
	}
	return filepath.Join(home, ".quarry", "config.toml")
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save saves configuration to a file.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// Add header comment
	content := `# Quarry Configuration

# Credentials are stored per provider under [engines.<name>].
# They are read once at startup and never logged.
` + string(data)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Exists checks if a config file exists.
func Exists(path string) bool {
	if path == "" {
		path = DefaultConfigPath()
	}
	_, err := os.Stat(path)
	return err == nil
}

// CreateDefault creates a default config file with empty credentials.
func CreateDefault(path string) error {
	cfg := &Config{
		Engine: "Yahoo! BOSS",
		Engines: map[string]map[string]string{
			"Bing":        {"key": "", "type": "searchweb"},
			"Yahoo! BOSS": {"key": "", "secret": ""},
		},
	}
	return Save(cfg, path)
}
