// Package config loads pipseek settings from an optional TOML file.
//
// Settings live in ~/.config/pipseek/config.toml by default. The file is
// optional; when it is absent pipseek runs with built-in defaults. The
// PIPSEEK_CONFIG environment variable or an explicit path names an
// alternate file, which must then exist. GITHUB_TOKEN in the environment
// always wins over the github_token key in the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	defaultWorkers = 20 // concurrent package fetches per result page
	maxWorkers     = 64 // keeps pools from flooding the registry
)

// Config holds the user-tunable settings.
type Config struct {
	// Workers is the size of the pool fetching package details for a page.
	Workers int `toml:"workers"`

	// GithubToken authenticates GitHub API calls, raising the rate limit
	// from 60 to 5000 requests per hour. Optional.
	GithubToken string `toml:"github_token"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Workers: defaultWorkers}
}

// Load reads the configuration from path. An empty path falls back to
// $PIPSEEK_CONFIG, then to ~/.config/pipseek/config.toml. A missing file
// at the default location yields Default(); an explicitly named file must
// exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv("PIPSEEK_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			p, err := defaultPath()
			if err != nil {
				return cfg, err
			}
			path = p
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file, run with defaults.
	default:
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.GithubToken = token
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "pipseek", "config.toml"), nil
}

func (c Config) validate() error {
	if c.Workers < 1 || c.Workers > maxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", maxWorkers, c.Workers)
	}
	return nil
}
