package config

import (
	"log/slog"
	"strings"
)

// FrontmatterMode selects how front matter blocks are parsed.
type FrontmatterMode string

const (
	// FrontmatterLenient is the line based key: value parser.
	FrontmatterLenient FrontmatterMode = "lenient"
	// FrontmatterYAML decodes the block as YAML.
	FrontmatterYAML FrontmatterMode = "yaml"
)

// ReadErrorPolicy decides what happens when a document cannot be read.
type ReadErrorPolicy string

const (
	ReadErrorsAbort ReadErrorPolicy = "abort"
	ReadErrorsSkip  ReadErrorPolicy = "skip"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// SlogLevel maps the configured level onto slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// normalizeEnum lower-cases and trims raw; it returns false when the result is
// not one of valid. Empty input is accepted and left empty for defaulting.
func normalizeEnum[T ~string](raw T, valid ...T) (T, bool) {
	s := T(strings.ToLower(strings.TrimSpace(string(raw))))
	if s == "" {
		return s, true
	}
	for _, v := range valid {
		if s == v {
			return s, true
		}
	}
	return s, false
}
