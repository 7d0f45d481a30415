package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all Scribe configuration. Precedence, lowest to highest:
// defaults, YAML file, SCRIBE_* environment variables, command-line flags
// (applied by the CLI layer).
type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SourceConfig selects where session logs are read from.
type SourceConfig struct {
	Provider string `yaml:"provider"` // "codex" or "claude"
	Path     string `yaml:"path"`     // file or directory; empty = provider default
	Pattern  string `yaml:"pattern"`  // glob under a directory path
}

// OutputConfig selects where the generated document goes.
type OutputConfig struct {
	Mode   string `yaml:"mode"`   // "file" or "stdout"
	Dir    string `yaml:"dir"`    // output directory for mode=file
	Prefix string `yaml:"prefix"` // generated filename prefix
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source: SourceConfig{
			Provider: "codex",
			Pattern:  "**/*.jsonl",
		},
		Output: OutputConfig{
			Mode:   "file",
			Dir:    "generatedMD",
			Prefix: "ChatHistory",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Source.Provider = getenv("SCRIBE_SOURCE", c.Source.Provider)
	c.Source.Path = getenv("SCRIBE_PATH", c.Source.Path)
	c.Source.Pattern = getenv("SCRIBE_PATTERN", c.Source.Pattern)
	c.Output.Mode = getenv("SCRIBE_OUTPUT", c.Output.Mode)
	c.Output.Dir = getenv("SCRIBE_OUTDIR", c.Output.Dir)
	c.Output.Prefix = getenv("SCRIBE_PREFIX", c.Output.Prefix)
	c.Log.Level = getenv("SCRIBE_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenv("SCRIBE_LOG_FORMAT", c.Log.Format)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
