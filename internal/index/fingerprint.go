package index

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/postindex/internal/frontmatter"
)

// Fingerprint summarizes a document set: file names plus the mdfp fingerprint
// of each document's frontmatter and body. Order of docs does not matter.
func Fingerprint(docs []Document) string {
	lines := make([]string, 0, len(docs))
	for _, doc := range docs {
		block, body, had, err := frontmatter.Split(doc.Content)
		if err != nil || !had {
			block, body = nil, frontmatter.NormalizeNewlines(doc.Content)
		}
		fp := mdfp.CalculateFingerprintFromParts(string(block), string(body))
		lines = append(lines, doc.Name+"\x00"+fp)
	}
	slices.Sort(lines)

	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])
}
