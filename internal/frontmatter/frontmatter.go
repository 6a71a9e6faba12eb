// Package frontmatter locates the `---` delimited metadata block at the very
// start of a Markdown document and parses it into a Record.
package frontmatter

import (
	"bytes"
	"errors"
)

const delimiter = "---"

// ErrMissingClosingDelimiter indicates the document started with a frontmatter
// delimiter but did not contain a closing delimiter line.
var ErrMissingClosingDelimiter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

// Split separates the frontmatter block from the Markdown body.
//
// The block opens with a first line equal to `---` and ends at the first later
// line equal to `---`. CRLF line endings are normalized to LF, so the returned
// slices always use LF.
//
// If the document does not start with a delimiter line, had is false and body
// is the full (normalized) input.
func Split(content []byte) (block []byte, body []byte, had bool, err error) {
	content = NormalizeNewlines(content)

	open := []byte(delimiter + "\n")
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	pos := start
	for pos <= len(content) {
		end := bytes.IndexByte(content[pos:], '\n')
		var line []byte
		next := len(content) + 1
		if end < 0 {
			line = content[pos:]
		} else {
			line = content[pos : pos+end]
			next = pos + end + 1
		}
		if string(line) == delimiter {
			bodyStart := min(next, len(content))
			return content[start:pos], content[bodyStart:], true, nil
		}
		if end < 0 {
			break
		}
		pos = next
	}

	return nil, nil, false, ErrMissingClosingDelimiter
}

// NormalizeNewlines converts CRLF line endings to LF.
func NormalizeNewlines(content []byte) []byte {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content
	}
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
}
