package config

import "time"

// Default values used when the configuration file or a field is absent.
const (
	DefaultSourceDir       = "blog"
	DefaultOutputPath      = "src/data/blogPosts.json"
	DefaultPermalinkPrefix = "/blog/"
	DefaultDebounce        = 500 * time.Millisecond
)

// DefaultExtensions are the document suffixes indexed when none are configured.
var DefaultExtensions = []string{".md", ".mdx"}

// Default returns a configuration populated entirely with defaults.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Source.Directory == "" {
		cfg.Source.Directory = DefaultSourceDir
	}
	if len(cfg.Source.Extensions) == 0 {
		cfg.Source.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultOutputPath
	}
	if cfg.Permalink.Prefix == "" {
		cfg.Permalink.Prefix = DefaultPermalinkPrefix
	}
	if cfg.Frontmatter.Mode == "" {
		cfg.Frontmatter.Mode = FrontmatterLenient
	}
	if cfg.Policy.ReadErrors == "" {
		cfg.Policy.ReadErrors = ReadErrorsAbort
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = DefaultDebounce.String()
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}
