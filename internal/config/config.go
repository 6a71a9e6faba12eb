package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "postindex.yaml"

// Config represents the postindex configuration file.
type Config struct {
	Version     string            `yaml:"version"`
	Source      SourceConfig      `yaml:"source"`
	Output      OutputConfig      `yaml:"output"`
	Permalink   PermalinkConfig   `yaml:"permalink"`
	Frontmatter FrontmatterConfig `yaml:"frontmatter"`
	Policy      PolicyConfig      `yaml:"policy"`
	Watch       WatchConfig       `yaml:"watch"`
	Logging     LoggingConfig     `yaml:"logging"`
	Metrics     MetricsConfig     `yaml:"metrics"`

	// LoadedFrom is the file the configuration was read from; empty when defaults are in use.
	LoadedFrom string `yaml:"-"`
}

// SourceConfig describes where posts are read from.
type SourceConfig struct {
	Directory  string   `yaml:"directory"`
	Extensions []string `yaml:"extensions,omitempty"` // case-sensitive suffixes, defaults to .md and .mdx
}

// OutputConfig describes where the JSON index is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// PermalinkConfig controls permalink construction.
type PermalinkConfig struct {
	Prefix string `yaml:"prefix"`
}

// FrontmatterConfig selects the front matter parser.
type FrontmatterConfig struct {
	Mode FrontmatterMode `yaml:"mode"`
}

// PolicyConfig holds failure handling policies.
type PolicyConfig struct {
	ReadErrors ReadErrorPolicy `yaml:"read_errors"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	Debounce     string `yaml:"debounce"`
	DailyRefresh *bool  `yaml:"daily_refresh,omitempty"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig configures the optional Prometheus endpoint (watch mode only).
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// DebounceDuration returns the parsed watch debounce (validated during Load).
func (w WatchConfig) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

// DailyRefreshEnabled reports whether the watch command refreshes at UTC midnight.
func (w WatchConfig) DailyRefreshEnabled() bool {
	return w.DailyRefresh == nil || *w.DailyRefresh
}

// Load reads configuration from configPath. A missing file is not an error:
// the defaults are returned with LoadedFrom left empty.
func Load(configPath string) (*Config, error) {
	// .env files are optional
	_ = loadEnvFile()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := finalize(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	// Relative paths in a config file are anchored at the file's directory.
	base := filepath.Dir(configPath)
	cfg.Source.Directory = anchor(base, cfg.Source.Directory)
	cfg.Output.Path = anchor(base, cfg.Output.Path)
	cfg.LoadedFrom = configPath
	return cfg, nil
}

// Parse decodes YAML configuration content, expanding ${VAR} references,
// then normalizes, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := finalize(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func finalize(cfg *Config) error {
	if err := normalize(cfg); err != nil {
		return err
	}
	applyDefaults(cfg)
	return Validate(cfg)
}

func anchor(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
