package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const exampleConfig = `# postindex configuration
version: "1"

source:
  # Directory scanned (non-recursively) for posts.
  directory: blog
  extensions: [".md", ".mdx"]

output:
  # JSON index consumed by the site components.
  path: src/data/blogPosts.json

permalink:
  prefix: /blog/

frontmatter:
  # lenient: line based "key: value" parsing; yaml: full YAML decoding.
  mode: lenient

policy:
  # abort: an unreadable post fails the run; skip: warn and continue.
  read_errors: abort

watch:
  debounce: 500ms
  daily_refresh: true

logging:
  level: info
  format: text

metrics:
  # Serve Prometheus metrics while watching, e.g. ":9090". Empty disables.
  addr: ""
`

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
