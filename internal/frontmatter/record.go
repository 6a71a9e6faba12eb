package frontmatter

import "strings"

// Value is a frontmatter value: either a plain string or an ordered list of strings.
type Value struct {
	text   string
	list   []string
	isList bool
}

// Scalar builds a plain string value.
func Scalar(s string) Value { return Value{text: s} }

// List builds a list value. A nil or empty items yields an empty list.
func List(items ...string) Value {
	return Value{list: append([]string{}, items...), isList: true}
}

// IsList reports whether the value is a list.
func (v Value) IsList() bool { return v.isList }

// String returns the scalar text; lists are joined with ",".
func (v Value) String() string {
	if v.isList {
		return strings.Join(v.list, ",")
	}
	return v.text
}

// Strings returns the list items; a scalar becomes a one-element list.
func (v Value) Strings() []string {
	if v.isList {
		return append([]string{}, v.list...)
	}
	return []string{v.text}
}

// Record maps frontmatter keys to values. Keys without a value are never present.
type Record map[string]Value

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	v, ok := r[key]
	return v, ok
}

// String returns the string form of key, or "" when absent.
func (r Record) String(key string) string {
	if v, ok := r[key]; ok {
		return v.String()
	}
	return ""
}

// Strings returns the list form of key, or nil when absent.
func (r Record) Strings(key string) []string {
	if v, ok := r[key]; ok {
		return v.Strings()
	}
	return nil
}

// Parser turns a whole document into a Record. Implementations never fail:
// malformed or absent frontmatter yields an empty Record.
type Parser interface {
	Parse(content []byte) Record
}
