package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYAMLParser_MapsShapes(t *testing.T) {
	doc := `---
title: "Post: Title"
date: 2024-01-15
draft: false
weight: 3
tags:
  - go
  - yaml
author:
  name: someone
empty:
---
body
`
	rec := YAMLParser{}.Parse([]byte(doc))

	require.Equal(t, "Post: Title", rec.String("title"))
	require.Equal(t, "2024-01-15", rec.String("date"))
	require.Equal(t, "false", rec.String("draft"))
	require.Equal(t, "3", rec.String("weight"))
	require.Equal(t, []string{"go", "yaml"}, rec.Strings("tags"))
	_, hasAuthor := rec.Get("author")
	require.False(t, hasAuthor)
	_, hasEmpty := rec.Get("empty")
	require.False(t, hasEmpty)
}

func TestYAMLParser_FlowSequence(t *testing.T) {
	rec := YAMLParser{}.Parse([]byte("---\ntags: [a, b, c]\n---\n"))
	require.Equal(t, []string{"a", "b", "c"}, rec.Strings("tags"))
}

func TestYAMLParser_InvalidYAMLFallsBackToLines(t *testing.T) {
	var warned error
	p := YAMLParser{Warn: func(err error) { warned = err }}

	rec := p.Parse([]byte("---\ntitle: Go: the good parts\ndescription: a, b: c\n---\nbody"))
	require.Error(t, warned)
	require.Equal(t, "Go: the good parts", rec.String("title"))
	require.Equal(t, "a, b: c", rec.String("description"))
}

func TestYAMLParser_KeepsSourceText(t *testing.T) {
	doc := "---\ntitle: 1.0\nslug: 007\ndate: 2024-01-15T10:00:00+02:00\nnothing: null\ntags: [1.50, 0x10]\n---\n"
	yamlRec := YAMLParser{}.Parse([]byte(doc))
	lenientRec := LenientParser{}.Parse([]byte(doc))

	require.Equal(t, "1.0", yamlRec.String("title"))
	require.Equal(t, "007", yamlRec.String("slug"))
	require.Equal(t, "2024-01-15T10:00:00+02:00", yamlRec.String("date"))
	require.Equal(t, "null", yamlRec.String("nothing"))
	require.Equal(t, []string{"1.50", "0x10"}, yamlRec.Strings("tags"))
	require.Equal(t, lenientRec, yamlRec)
}

func TestYAMLParser_BlockMustOpenTheFile(t *testing.T) {
	for name, doc := range map[string]string{
		"leading blank lines": "\n\n---\ntitle: Late\n---\n",
		"indented delimiter":  "  ---  \ntitle: Late\n---\n",
		"unclosed":            "---\ntitle: Late\n",
	} {
		t.Run(name, func(t *testing.T) {
			require.Empty(t, YAMLParser{}.Parse([]byte(doc)))
			require.Empty(t, LenientParser{}.Parse([]byte(doc)))
		})
	}
}

func TestYAMLParser_NoFrontmatter(t *testing.T) {
	require.Empty(t, YAMLParser{}.Parse([]byte("# Just a heading\n")))
}

func TestParserFor(t *testing.T) {
	p, err := ParserFor("lenient", nil)
	require.NoError(t, err)
	require.IsType(t, LenientParser{}, p)

	p, err = ParserFor("yaml", nil)
	require.NoError(t, err)
	require.IsType(t, YAMLParser{}, p)

	_, err = ParserFor("toml", nil)
	require.Error(t, err)
}
