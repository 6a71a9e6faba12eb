package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	block, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, block)
	require.Equal(t, input, body)
}

func TestSplit_SplitsBlockAndBody(t *testing.T) {
	input := []byte("---\nkey: value\n---\n# Title\n")

	block, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\n"), block)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_ClosingDelimiterAtEOF(t *testing.T) {
	block, body, had, err := Split([]byte("---\ntitle: x\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: x\n"), block)
	require.Empty(t, body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, err := Split([]byte("---\nkey: value\n# Title\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_ClosingLineMustBeExact(t *testing.T) {
	// "----" and "--- x" do not close the block.
	_, _, _, err := Split([]byte("---\ntitle: x\n----\n--- x\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestSplit_CRLF_NormalizedToLF(t *testing.T) {
	block, body, had, err := Split([]byte("---\r\nkey: value\r\n---\r\n# Title\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\n"), block)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_EmptyBlock(t *testing.T) {
	block, body, had, err := Split([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, block)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_DelimiterMustOpenTheFile(t *testing.T) {
	input := []byte("\n---\ntitle: x\n---\n")
	_, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Equal(t, input, body)
}
