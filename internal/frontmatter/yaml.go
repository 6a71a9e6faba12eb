package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser decodes the frontmatter block as YAML. Values keep their source
// text: `slug: 007` stays "007" and dates are not reformatted. Sequences
// become lists of their scalar items; nested mappings and empty values are
// dropped.
//
// Blocks that are not valid YAML, such as `title: Go: the good parts`, are
// parsed line by line like LenientParser, so either mode accepts any block
// the lenient rules accept.
type YAMLParser struct {
	// Warn, if set, receives decode errors before the line based fallback.
	Warn func(err error)
}

// Parse implements Parser.
func (p YAMLParser) Parse(content []byte) Record {
	block, _, had, err := Split(content)
	if err != nil || !had {
		return Record{}
	}

	var fields map[string]yaml.Node
	if err := yaml.Unmarshal(block, &fields); err != nil {
		if p.Warn != nil {
			p.Warn(fmt.Errorf("decode yaml frontmatter: %w", err))
		}
		return ParseBlock(block)
	}

	rec := Record{}
	for key, node := range fields {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if v, ok := nodeValue(&node); ok {
			rec[key] = v
		}
	}
	return rec
}

func nodeValue(n *yaml.Node) (Value, bool) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return Value{}, false
		}
		return Scalar(n.Value), true
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item = resolveAlias(item); item.Kind == yaml.ScalarNode {
				items = append(items, item.Value)
			}
		}
		return List(items...), true
	default:
		return Value{}, false
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// ParserFor returns the parser for a configured mode ("lenient" or "yaml").
func ParserFor(mode string, warn func(error)) (Parser, error) {
	switch mode {
	case "", "lenient":
		return LenientParser{}, nil
	case "yaml":
		return YAMLParser{Warn: warn}, nil
	default:
		return nil, fmt.Errorf("unknown frontmatter mode %q", mode)
	}
}
