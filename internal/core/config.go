// Package core wires configuration, profile discovery, selection and
// export into a single run.
package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmreicha/awsp/internal/profiles"
	"github.com/jmreicha/awsp/internal/selector"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultStateFile is the state file name inside the home directory.
	DefaultStateFile = ".awsp"
)

// Config represents the awsp configuration.
// It can be loaded from YAML files or set via CLI flags.
type Config struct {
	// CredentialsFile is the AWS shared credentials file.
	CredentialsFile string `yaml:"credentials_file"`

	// ConfigFile is the AWS shared config file.
	ConfigFile string `yaml:"config_file"`

	// StateFile receives the export statement for the parent shell.
	StateFile string `yaml:"state_file"`

	// PageSize is the number of profiles visible in the selector.
	PageSize int `yaml:"page_size"`
}

// DefaultConfig returns the configuration derived from the environment.
// AWS_SHARED_CREDENTIALS_FILE and AWS_CONFIG_FILE take the place of the
// files under ~/.aws when set.
func DefaultConfig(env Env) *Config {
	cfg := &Config{
		CredentialsFile: filepath.Join(env.Home, ".aws", "credentials"),
		ConfigFile:      filepath.Join(env.Home, ".aws", "config"),
		StateFile:       filepath.Join(env.Home, DefaultStateFile),
		PageSize:        selector.DefaultPageSize,
	}

	if env.CredentialsFile != "" {
		cfg.CredentialsFile = env.CredentialsFile
	}
	if env.ConfigFile != "" {
		cfg.ConfigFile = env.ConfigFile
	}

	return cfg
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
// If path is empty the standard locations are searched. A missing file
// yields the defaults. The precedence order is: CLI flags > YAML config >
// environment > defaults.
func LoadConfig(path string, env Env) (*Config, error) {
	if err := env.RequireHome(); err != nil {
		return nil, err
	}

	cfg := DefaultConfig(env)

	if path == "" {
		path = FindConfigFile(env.Home)
	}

	if path == "" {
		return cfg, nil
	}

	// #nosec G304 -- config file path is from user input or searched standard locations
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: failed to read config file: %w", ErrConfig, err)
	}

	fileCfg := &Config{}
	if err := yaml.Unmarshal(data, fileCfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrConfig, err)
	}

	cfg.Merge(fileCfg)
	return cfg, nil
}

// FindConfigFile searches for an awsp configuration file in standard locations.
// Returns an empty string if no config file is found.
func FindConfigFile(home string) string {
	searchPaths := []string{
		"./awsp.yaml",
		"./awsp.yml",
	}
	if home != "" {
		searchPaths = append(searchPaths,
			filepath.Join(home, ".config", "awsp", "config.yaml"),
			filepath.Join(home, ".config", "awsp", "config.yml"),
		)
	}

	for _, path := range searchPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}

// Merge merges another configuration into this one.
// Non-zero values from the other configuration take precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if strings.TrimSpace(other.CredentialsFile) != "" {
		c.CredentialsFile = other.CredentialsFile
	}
	if strings.TrimSpace(other.ConfigFile) != "" {
		c.ConfigFile = other.ConfigFile
	}
	if strings.TrimSpace(other.StateFile) != "" {
		c.StateFile = other.StateFile
	}
	if other.PageSize != 0 {
		c.PageSize = other.PageSize
	}
}

// Validate expands the configured paths against env. Relative paths are
// resolved against the working directory.
func (c *Config) Validate(env Env) error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrConfig)
	}

	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrConfig, c.PageSize)
	}

	var err error
	if c.CredentialsFile, err = normalizePath(c.CredentialsFile, env); err != nil {
		return fmt.Errorf("%w: credentials file: %w", ErrConfig, err)
	}
	if c.ConfigFile, err = normalizePath(c.ConfigFile, env); err != nil {
		return fmt.Errorf("%w: config file: %w", ErrConfig, err)
	}
	if c.StateFile, err = normalizePath(c.StateFile, env); err != nil {
		return fmt.Errorf("%w: state file: %w", ErrConfig, err)
	}

	return nil
}

// Sources returns the AWS shared file locations.
func (c *Config) Sources() profiles.Sources {
	return profiles.Sources{
		CredentialsPath: c.CredentialsFile,
		ConfigPath:      c.ConfigFile,
	}
}

func expandHomeDir(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if path == "~" {
		return home
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}

	return path
}

func normalizePath(path string, env Env) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("path cannot be empty")
	}

	expanded := expandHomeDir(os.Expand(path, env.Getenv), env.Home)
	if strings.TrimSpace(expanded) == "" {
		return "", fmt.Errorf("path expands to nothing: %s", path)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}

	return abs, nil
}
