// Package catalog is a read-only view over a generated post index. It offers
// what the site's pages need from the file: tag counts, tag filtering,
// pagination and a random pick.
package catalog

import (
	"fmt"
	"math/rand/v2"
	"os"
	"slices"

	ierrors "git.home.luguber.info/inful/postindex/internal/errors"
	"git.home.luguber.info/inful/postindex/internal/index"
)

// Catalog holds index entries in artifact order (newest first).
type Catalog struct {
	posts []index.Entry
}

// TagCount is a tag and the number of posts carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// Page is one page of posts.
type Page struct {
	Number     int
	TotalPages int
	Items      []index.Entry
	HasPrev    bool
	HasNext    bool
}

// New wraps entries without re-sorting them.
func New(entries []index.Entry) *Catalog {
	return &Catalog{posts: append([]index.Entry{}, entries...)}
}

// Load reads the artifact at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ierrors.IndexNotFound(path, err)
		}
		return nil, ierrors.ReadFailed(path, err)
	}
	entries, err := index.Decode(data)
	if err != nil {
		return nil, ierrors.Wrap(err, ierrors.CategoryValidation, ierrors.SeverityFatal, "index file is not valid").
			WithContext("path", path)
	}
	return New(entries), nil
}

// Len returns the number of posts.
func (c *Catalog) Len() int { return len(c.posts) }

// Posts returns a copy of all posts.
func (c *Catalog) Posts() []index.Entry { return append([]index.Entry{}, c.posts...) }

// Tags counts tag occurrences across posts, like the blog list's category
// bar: a tag listed twice on one post counts twice. Empty tags are ignored.
// Higher counts come first; equal counts keep first-appearance order.
func (c *Catalog) Tags() []TagCount {
	pos := map[string]int{}
	var out []TagCount
	for _, p := range c.posts {
		for _, tag := range p.Tags {
			if tag == "" {
				continue
			}
			if i, ok := pos[tag]; ok {
				out[i].Count++
				continue
			}
			pos[tag] = len(out)
			out = append(out, TagCount{Tag: tag, Count: 1})
		}
	}
	slices.SortStableFunc(out, func(a, b TagCount) int { return b.Count - a.Count })
	return out
}

// FilterByTag returns a catalog of the posts carrying tag. An empty tag
// returns every post.
func (c *Catalog) FilterByTag(tag string) *Catalog {
	if tag == "" {
		return New(c.posts)
	}
	var out []index.Entry
	for _, p := range c.posts {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return New(out)
}

// Page returns the 1-based page number of size posts. An empty catalog has a
// single empty page.
func (c *Catalog) Page(number, size int) (Page, error) {
	if size <= 0 {
		return Page{}, ierrors.ValidationFailed("per-page", fmt.Sprintf("must be positive, got %d", size))
	}
	total := (len(c.posts) + size - 1) / size
	if total == 0 {
		total = 1
	}
	if number < 1 || number > total {
		return Page{}, ierrors.ValidationFailed("page", fmt.Sprintf("must be between 1 and %d, got %d", total, number))
	}

	start := (number - 1) * size
	end := min(start+size, len(c.posts))
	return Page{
		Number:     number,
		TotalPages: total,
		Items:      append([]index.Entry{}, c.posts[start:end]...),
		HasPrev:    number > 1,
		HasNext:    number < total,
	}, nil
}

// Random picks a post uniformly. A nil rng uses the global source.
func (c *Catalog) Random(rng *rand.Rand) (index.Entry, bool) {
	if len(c.posts) == 0 {
		return index.Entry{}, false
	}
	var i int
	if rng == nil {
		i = rand.IntN(len(c.posts))
	} else {
		i = rng.IntN(len(c.posts))
	}
	return c.posts[i], true
}
