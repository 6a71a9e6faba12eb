// Package index builds the JSON post index from a directory of Markdown posts.
//
// The pure part (ParseDocuments, BuildEntry, SortEntries, Encode) works on
// in-memory documents; Generator wraps it with directory reading and the
// atomic write of the artifact.
package index

import (
	"strings"
	"time"

	"git.home.luguber.info/inful/postindex/internal/config"
	"git.home.luguber.info/inful/postindex/internal/frontmatter"
)

// DefaultPermalinkPrefix is prepended to slugs when no prefix is configured.
const DefaultPermalinkPrefix = config.DefaultPermalinkPrefix

// DefaultExtensions are the indexed suffixes when none are configured.
var DefaultExtensions = config.DefaultExtensions

// Document is one source file: its name inside the source directory and its raw content.
type Document struct {
	Name    string
	Content []byte
}

// Entry is one post in the generated index. Field order is the JSON order.
type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Permalink   string   `json:"permalink"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// Options control how documents become entries.
type Options struct {
	// Today is the fallback date (YYYY-MM-DD) for documents without one.
	Today string
	// PermalinkPrefix is prepended to the slug or file stem.
	PermalinkPrefix string
	// Extensions are the case-sensitive suffixes of indexed files.
	Extensions []string
	// Parser reads the frontmatter; nil means the lenient parser.
	Parser frontmatter.Parser
}

func (o Options) withDefaults() Options {
	if o.Today == "" {
		o.Today = FormatDate(time.Now())
	}
	if o.PermalinkPrefix == "" {
		o.PermalinkPrefix = DefaultPermalinkPrefix
	}
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}
	if o.Parser == nil {
		o.Parser = frontmatter.LenientParser{}
	}
	return o
}

// FormatDate renders t as a UTC calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// ParseDocuments turns documents into sorted entries. Documents whose name
// has no indexed extension or whose frontmatter has no title are left out.
func ParseDocuments(docs []Document, opts Options) []Entry {
	opts = opts.withDefaults()
	entries := make([]Entry, 0, len(docs))
	for _, doc := range docs {
		ext, ok := MatchExtension(doc.Name, opts.Extensions)
		if !ok {
			continue
		}
		rec := opts.Parser.Parse(doc.Content)
		if entry, ok := buildEntry(doc.Name, ext, rec, opts); ok {
			entries = append(entries, entry)
		}
	}
	SortEntries(entries)
	return entries
}

// BuildEntry maps one document's frontmatter onto an Entry. It reports false
// when the record has no title.
func BuildEntry(name string, rec frontmatter.Record, opts Options) (Entry, bool) {
	opts = opts.withDefaults()
	ext, _ := MatchExtension(name, opts.Extensions)
	return buildEntry(name, ext, rec, opts)
}

func buildEntry(name, ext string, rec frontmatter.Record, opts Options) (Entry, bool) {
	title := rec.String("title")
	if title == "" {
		return Entry{}, false
	}

	date := rec.String("date")
	if date == "" {
		date = opts.Today
	}

	stem := strings.TrimSuffix(name, ext)
	if slug := rec.String("slug"); slug != "" {
		stem = strings.TrimPrefix(slug, "/")
	}

	tags := rec.Strings("tags")
	if tags == nil {
		tags = []string{}
	}

	return Entry{
		ID:          name,
		Title:       title,
		Date:        date,
		Permalink:   opts.PermalinkPrefix + stem,
		Tags:        tags,
		Description: rec.String("description"),
	}, true
}

// MatchExtension returns the longest extension that name ends with.
func MatchExtension(name string, exts []string) (string, bool) {
	best := ""
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) && len(ext) > len(best) {
			best = ext
		}
	}
	return best, best != ""
}
