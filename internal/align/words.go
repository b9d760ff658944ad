package align

import (
	"math"
	"strings"

	"makhela/internal/transcript"
)

// wordMatch is a successful tier-1 match: the line's timestamp, the cursor
// position just past the matched window, and per-word timings for every
// transcript word inside the window.
type wordMatch struct {
	startMs    int
	nextCursor int
	words      []WordTiming
}

// matchLineToWords slides a bounded window over transcript words starting at
// startIdx and scores candidate windows against the normalized line. The
// single best-scoring window wins, and only if its score strictly exceeds
// the word threshold. The search never looks behind startIdx.
func (a *Aligner) matchLineToWords(normalizedLine string, words []transcript.Word, startIdx int) (wordMatch, bool) {
	lineWordCount := len(strings.Fields(normalizedLine))
	if lineWordCount == 0 || startIdx >= len(words) {
		return wordMatch{}, false
	}

	minWordsToMatch := int(math.Floor(a.opts.MinWordRatio * float64(lineWordCount)))
	if minWordsToMatch < 1 {
		minWordsToMatch = 1
	}
	maxWindow := lineWordCount + a.opts.WindowSlack

	searchEnd := startIdx + a.opts.SearchRange
	if searchEnd > len(words) {
		searchEnd = len(words)
	}

	bestScore := 0.0
	bestStart, bestEnd := -1, -1

	for i := startIdx; i < searchEnd; i++ {
		var window strings.Builder
		windowEnd := i + maxWindow
		if windowEnd > len(words) {
			windowEnd = len(words)
		}
		for j := i; j < windowEnd; j++ {
			word := Normalize(words[j].Word)
			if word != "" {
				if window.Len() > 0 {
					window.WriteByte(' ')
				}
				window.WriteString(word)
			}
			if j-i+1 < minWordsToMatch {
				continue
			}
			score := Similarity(normalizedLine, window.String())
			if score > bestScore {
				bestScore = score
				bestStart, bestEnd = i, j
			}
		}
	}

	if bestStart < 0 || bestScore <= a.opts.WordThreshold {
		return wordMatch{}, false
	}

	matched := make([]WordTiming, 0, bestEnd-bestStart+1)
	for j := bestStart; j <= bestEnd; j++ {
		matched = append(matched, WordTiming{
			Word:    strings.TrimSpace(words[j].Word),
			StartMs: toMillis(words[j].Start),
			EndMs:   toMillis(words[j].End),
		})
	}

	return wordMatch{
		startMs:    toMillis(words[bestStart].Start),
		nextCursor: bestEnd + 1,
		words:      matched,
	}, true
}

func toMillis(seconds float64) int {
	return int(math.Round(seconds * 1000))
}
