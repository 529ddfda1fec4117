package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/woozymasta/jamle"

	"github.com/woozymasta/overviewer-util/internal/logger"
)

// Config is the root configuration object loaded from YAML/JSON.
type Config struct {
	// Resolver controls how the build hash and version are detected.
	Resolver ResolverConfig `json:"resolver"`

	// Server configures the --serve HTTP endpoint.
	Server ServerConfig `json:"server"`

	// Logger config is applied after load+validate.
	Logger logger.Logger `json:"log"`
}

// ResolverConfig controls revision hash and release version lookup.
type ResolverConfig struct {
	// Root is the checkout root holding .git. Empty means the parent of
	// the directory containing the executable.
	Root string `json:"root"`

	// Git is the git executable used for "git describe --tags".
	Git string `json:"git" default:"git"`

	// DescribeTimeout bounds "git describe". "unbounded" or a negative
	// value waits forever.
	DescribeTimeout Duration `json:"describe_timeout" default:"10s"`
}

// ServerConfig controls the build info HTTP server.
type ServerConfig struct {
	// Auth is used for /metrics.
	Auth AuthConfig `json:"auth"`

	// ListenAddr is the TCP address the server listens on.
	ListenAddr string `json:"listen_addr" default:":8099"`
}

// AuthConfig controls Basic Auth for /metrics.
type AuthConfig struct {
	// User is Basic Auth username.
	User string `json:"user" default:"overviewer"`

	// Pass is Basic Auth password. Empty disables auth.
	Pass string `json:"password"`
}

// LoadConfig reads config from path (YAML/JSON), applies defaults, validates, and configures logger.
// A missing file is not an error: defaults are used.
func LoadConfig(path string) (*Config, error) {
	cfg := new(Config)

	_, err := os.Stat(path)
	if err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := jamle.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	// Apply defaults after parsing so config file overrides defaults
	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := cfg.Logger.Setup(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks configuration for logical errors
func (cfg *Config) validate() error {
	if cfg.Resolver.Git == "" {
		return fmt.Errorf("resolver.git is empty")
	}

	if cfg.Server.Auth.Pass != "" && cfg.Server.Auth.User == "" {
		return fmt.Errorf("server.auth: password set but user is empty")
	}

	return nil
}
