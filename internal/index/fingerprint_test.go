package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := doc("a.md", "---\ntitle: A\n---\nbody")
	b := doc("b.md", "---\ntitle: B\n---\nbody")
	require.Equal(t, Fingerprint([]Document{a, b}), Fingerprint([]Document{b, a}))
}

func TestFingerprint_ChangesWithContentAndName(t *testing.T) {
	base := Fingerprint([]Document{doc("a.md", "---\ntitle: A\n---\nbody")})
	require.NotEqual(t, base, Fingerprint([]Document{doc("a.md", "---\ntitle: B\n---\nbody")}))
	require.NotEqual(t, base, Fingerprint([]Document{doc("a.md", "---\ntitle: A\n---\nother")}))
	require.NotEqual(t, base, Fingerprint([]Document{doc("z.md", "---\ntitle: A\n---\nbody")}))
}

func TestFingerprint_HandlesMalformedFrontmatter(t *testing.T) {
	require.NotEmpty(t, Fingerprint([]Document{doc("a.md", "---\ntitle: unclosed\n")}))
	require.NotEmpty(t, Fingerprint(nil))
}
