package align

import (
	"strings"

	"makhela/internal/transcript"
)

// matchLineToSegments is the tier-2 fallback: it searches coarse transcript
// segments at or after the last accepted timestamp (with a fixed slack,
// since a segment may span several lines) for containment or high
// similarity. Containment short-circuits immediately; it is treated as
// stronger evidence than any similarity score.
func (a *Aligner) matchLineToSegments(normalizedLine string, segments []transcript.Segment, lastTsMs int) (int, bool) {
	bestScore := 0.0
	bestMs := 0
	found := false

	for _, seg := range segments {
		segMs := toMillis(seg.Start)
		if segMs < lastTsMs-a.opts.SegmentSlackMs {
			continue
		}
		segText := Normalize(seg.Text)
		if segText == "" {
			continue
		}

		if strings.Contains(segText, normalizedLine) || strings.Contains(normalizedLine, segText) {
			return segMs, true
		}

		if score := Similarity(normalizedLine, segText); score > bestScore {
			bestScore = score
			bestMs = segMs
			found = true
		}
	}

	if !found || bestScore <= a.opts.SegmentThreshold {
		return 0, false
	}
	return bestMs, true
}
