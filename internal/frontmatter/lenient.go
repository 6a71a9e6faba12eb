package frontmatter

import "strings"

// LenientParser reads `key: value` lines.
//
//   - only the first ':' separates key and value
//   - values wrapped in matching single or double quotes are unquoted
//   - values wrapped in [ ] become comma separated lists, items trimmed
//   - keys with an empty value are dropped
type LenientParser struct{}

// Parse implements Parser.
func (LenientParser) Parse(content []byte) Record {
	block, _, had, err := Split(content)
	if err != nil || !had {
		return Record{}
	}
	return ParseBlock(block)
}

// ParseBlock parses a raw frontmatter block (without delimiters).
func ParseBlock(block []byte) Record {
	rec := Record{}
	for _, line := range strings.Split(string(NormalizeNewlines(block)), "\n") {
		key, raw, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value, ok := parseValue(raw)
		if !ok {
			continue
		}
		rec[key] = value
	}
	return rec
}

func parseValue(raw string) (Value, bool) {
	s := unquote(strings.TrimSpace(raw))
	if s == "" {
		return Value{}, false
	}
	if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
		inner := s[1 : len(s)-1]
		if strings.TrimSpace(inner) == "" {
			return List(), true
		}
		parts := strings.Split(inner, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return List(parts...), true
	}
	return Scalar(s), true
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' || first == '\'') && first == last {
		return s[1 : len(s)-1]
	}
	return s
}
