package align

import (
	"regexp"
	"strings"
)

// Hebrew niqqud and cantillation marks, plus maqaf and the other in-range
// joiners (U+0591 through U+05C7).
var hebrewMarksRe = regexp.MustCompile("[֑-ׇ]")

// Everything that is not a letter, digit, or whitespace in any script.
var nonTextRe = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// Normalize prepares text for comparison: it strips Hebrew diacritic and
// cantillation code points, drops punctuation, lower-cases, and collapses
// whitespace runs to single spaces. Scripts other than Hebrew degrade to
// case, punctuation, and whitespace normalization only. Normalize is
// idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = hebrewMarksRe.ReplaceAllString(s, "")
	s = nonTextRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
