// Package testutil contains helpers for building blog fixtures in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Blog is a temporary site root with a posts directory inside it.
type Blog struct {
	t      *testing.T
	Root   string
	Source string
}

// NewBlog creates a site root under t.TempDir() with an empty "blog" directory.
func NewBlog(t *testing.T) *Blog {
	t.Helper()
	root := t.TempDir()
	src := filepath.Join(root, "blog")
	require.NoError(t, os.MkdirAll(src, dirPermissions))
	return &Blog{t: t, Root: root, Source: src}
}

// Post writes a file into the posts directory, creating subdirectories in name.
func (b *Blog) Post(name, content string) *Blog {
	b.t.Helper()
	WriteFile(b.t, filepath.Join(b.Source, name), content)
	return b
}

// Remove deletes a file from the posts directory.
func (b *Blog) Remove(name string) {
	b.t.Helper()
	require.NoError(b.t, os.Remove(filepath.Join(b.Source, name)))
}

// Path joins elems onto the site root.
func (b *Blog) Path(elems ...string) string {
	return filepath.Join(append([]string{b.Root}, elems...)...)
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPermissions))
	require.NoError(t, os.WriteFile(path, []byte(content), filePermissions))
}

// RequireFileContent asserts that path holds exactly want.
func RequireFileContent(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, string(got))
}

// RequireFileContains asserts that path exists and contains substr.
func RequireFileContains(t *testing.T, path, substr string) {
	t.Helper()
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(got), substr)
}
