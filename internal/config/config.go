package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the SDK and job configuration for a project.
type Config struct {
	Version int         `yaml:"version"`
	SDK     SDKConfig   `yaml:"sdk"`
	Job     JobConfig   `yaml:"job"`
	Tools   ToolsConfig `yaml:"tools"`
}

// SDKConfig points at the SDK installation to use.
type SDKConfig struct {
	// Home is the configured SDK root. May contain unexpanded ${VAR}
	// tokens; empty means "discover".
	Home string `yaml:"home"`
	// Lenient relaxes validation for interactive configuration checks.
	Lenient bool `yaml:"lenient"`
}

// JobConfig carries job-scoped variables, which override host environment
// variables on collision.
type JobConfig struct {
	Variables map[string]string `yaml:"variables,omitempty"`
}

// ToolsConfig holds per-tool default arguments, prepended to arguments given
// on the command line.
type ToolsConfig struct {
	DefaultArgs map[string]string `yaml:"default_args,omitempty"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to sensible defaults when the YAML
// omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Job.Variables == nil {
		c.Job.Variables = map[string]string{}
	}
	if c.Tools.DefaultArgs == nil {
		c.Tools.DefaultArgs = map[string]string{}
	}
}

// DefaultArgs returns the configured default arguments for a tool, or "".
func (c Config) DefaultArgs(tool string) string {
	return c.Tools.DefaultArgs[tool]
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}
