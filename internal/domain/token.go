package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOptionToken derives the machine token for an option label:
// accents folded, lowercase, whitespace runs become "_", anything
// outside [a-z0-9_] dropped. "Needs Repair" becomes "needs_repair".
func NormalizeOptionToken(label string) string {
	folder := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(folder, label)
	if err != nil {
		folded = label
	}

	joined := strings.Join(strings.Fields(strings.ToLower(folded)), "_")

	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
