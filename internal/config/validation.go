package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	ierrors "git.home.luguber.info/inful/postindex/internal/errors"
)

func normalize(cfg *Config) error {
	var ok bool
	if cfg.Frontmatter.Mode, ok = normalizeEnum(cfg.Frontmatter.Mode, FrontmatterLenient, FrontmatterYAML); !ok {
		return ierrors.ValidationFailed("frontmatter.mode", fmt.Sprintf("unknown mode %q (want lenient or yaml)", cfg.Frontmatter.Mode))
	}
	if cfg.Policy.ReadErrors, ok = normalizeEnum(cfg.Policy.ReadErrors, ReadErrorsAbort, ReadErrorsSkip); !ok {
		return ierrors.ValidationFailed("policy.read_errors", fmt.Sprintf("unknown policy %q (want abort or skip)", cfg.Policy.ReadErrors))
	}
	if cfg.Logging.Level, ok = normalizeEnum(cfg.Logging.Level, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError); !ok {
		return ierrors.ValidationFailed("logging.level", fmt.Sprintf("unknown level %q", cfg.Logging.Level))
	}
	if cfg.Logging.Format, ok = normalizeEnum(cfg.Logging.Format, LogFormatText, LogFormatJSON); !ok {
		return ierrors.ValidationFailed("logging.format", fmt.Sprintf("unknown format %q (want text or json)", cfg.Logging.Format))
	}
	for i, ext := range cfg.Source.Extensions {
		cfg.Source.Extensions[i] = strings.TrimSpace(ext)
	}
	return nil
}

var (
	extensionPattern = regexp.MustCompile(`^\.[^/\s]+$`)
	prefixPattern    = regexp.MustCompile(`^/`)
)

type fieldCheck struct {
	field string
	value any
	rules []validation.Rule
}

// Validate checks a normalized, defaulted configuration. The first failing
// field is reported.
func Validate(cfg *Config) error {
	checks := []fieldCheck{
		{"version", cfg.Version, []validation.Rule{
			validation.Required,
			validation.In("1").Error("unsupported configuration version (expected 1)"),
		}},
		{"source.directory", cfg.Source.Directory, []validation.Rule{validation.Required}},
		{"source.extensions", cfg.Source.Extensions, []validation.Rule{
			validation.Each(validation.Match(extensionPattern).Error("extension must start with a dot")),
		}},
		{"output.path", cfg.Output.Path, []validation.Rule{validation.Required}},
		{"permalink.prefix", cfg.Permalink.Prefix, []validation.Rule{
			validation.Required,
			validation.Match(prefixPattern).Error("must start with /"),
		}},
		{"watch.debounce", cfg.Watch.Debounce, []validation.Rule{validation.By(positiveDuration)}},
	}
	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return ierrors.ValidationFailed(c.field, err.Error())
		}
	}
	return nil
}

func positiveDuration(value any) error {
	s, _ := value.(string)
	if d, err := time.ParseDuration(s); err != nil || d <= 0 {
		return fmt.Errorf("invalid duration %q", s)
	}
	return nil
}
