package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/postindex/internal/frontmatter"
)

var testOpts = Options{Today: "2025-06-01"}

func doc(name, content string) Document {
	return Document{Name: name, Content: []byte(content)}
}

func TestParseDocuments_TitleRequired(t *testing.T) {
	entries := ParseDocuments([]Document{
		doc("a.md", "---\ntitle: Hello\n---\nbody"),
		doc("b.md", "---\ndate: 2024-01-01\n---\nbody"),
		doc("c.md", "no frontmatter at all"),
	}, testOpts)
	require.Len(t, entries, 1)
	require.Equal(t, "a.md", entries[0].ID)
}

func TestParseDocuments_SlugPrecedence(t *testing.T) {
	entries := ParseDocuments([]Document{
		doc("a.md", "---\ntitle: A\nslug: custom\n---\n"),
		doc("b.mdx", "---\ntitle: B\nslug: /leading\n---\n"),
		doc("c.mdx", "---\ntitle: C\n---\n"),
	}, testOpts)
	byID := map[string]Entry{}
	for _, e := range entries {
		byID[e.ID] = e
	}
	require.Equal(t, "/blog/custom", byID["a.md"].Permalink)
	require.Equal(t, "/blog/leading", byID["b.mdx"].Permalink)
	require.Equal(t, "/blog/c", byID["c.mdx"].Permalink)
}

func TestBuildEntry_FilenameFallbackStripsOnlyExtension(t *testing.T) {
	entry, ok := BuildEntry("my.post.mdx", frontmatter.Record{"title": frontmatter.Scalar("X")}, testOpts)
	require.True(t, ok)
	require.Equal(t, "/blog/my.post", entry.Permalink)
}

func TestBuildEntry_Defaults(t *testing.T) {
	entry, ok := BuildEntry("x.md", frontmatter.Record{"title": frontmatter.Scalar("X")}, testOpts)
	require.True(t, ok)
	require.Equal(t, Entry{
		ID:        "x.md",
		Title:     "X",
		Date:      "2025-06-01",
		Permalink: "/blog/x",
		Tags:      []string{},
	}, entry)
}

func TestBuildEntry_MissingTitle(t *testing.T) {
	_, ok := BuildEntry("x.md", frontmatter.Record{"slug": frontmatter.Scalar("s")}, testOpts)
	require.False(t, ok)
}

func TestBuildEntry_ScalarTagsBecomeList(t *testing.T) {
	entry, ok := BuildEntry("x.md", frontmatter.Record{
		"title": frontmatter.Scalar("X"),
		"tags":  frontmatter.Scalar("solo"),
	}, testOpts)
	require.True(t, ok)
	require.Equal(t, []string{"solo"}, entry.Tags)
}

func TestParseDocuments_ArraysAndQuotes(t *testing.T) {
	entries := ParseDocuments([]Document{
		doc("q.md", "---\ntitle: \"Quoted: title\"\ndescription: 'single'\ntags: [a, b]\n---\n"),
	}, testOpts)
	require.Len(t, entries, 1)
	require.Equal(t, "Quoted: title", entries[0].Title)
	require.Equal(t, "single", entries[0].Description)
	require.Equal(t, []string{"a", "b"}, entries[0].Tags)
}

func TestParseDocuments_CRLFMatchesLF(t *testing.T) {
	lf := ParseDocuments([]Document{doc("a.md", "---\ntitle: T\ndate: 2024-02-02\ntags: [x]\n---\nbody\n")}, testOpts)
	crlf := ParseDocuments([]Document{doc("a.md", "---\r\ntitle: T\r\ndate: 2024-02-02\r\ntags: [x]\r\n---\r\nbody\r\n")}, testOpts)
	require.Equal(t, lf, crlf)
}

func TestParseDocuments_IgnoresOtherExtensions(t *testing.T) {
	entries := ParseDocuments([]Document{
		doc("a.txt", "---\ntitle: A\n---\n"),
		doc("b.MD", "---\ntitle: B\n---\n"),
		doc("c.md", "---\ntitle: C\n---\n"),
	}, testOpts)
	require.Len(t, entries, 1)
	require.Equal(t, "c.md", entries[0].ID)
}

func TestParseDocuments_CustomPrefixAndExtensions(t *testing.T) {
	entries := ParseDocuments([]Document{
		doc("a.markdown", "---\ntitle: A\n---\n"),
		doc("b.md", "---\ntitle: B\n---\n"),
	}, Options{Today: "2025-01-01", PermalinkPrefix: "/posts/", Extensions: []string{".markdown"}})
	require.Len(t, entries, 1)
	require.Equal(t, "/posts/a", entries[0].Permalink)
}

func TestParseDocuments_Empty(t *testing.T) {
	require.Empty(t, ParseDocuments(nil, testOpts))
}

func TestMatchExtension_Longest(t *testing.T) {
	ext, ok := MatchExtension("a.mdx", []string{".x", ".mdx"})
	require.True(t, ok)
	require.Equal(t, ".mdx", ext)

	_, ok = MatchExtension("a.md.bak", DefaultExtensions)
	require.False(t, ok)
}
