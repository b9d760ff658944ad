package review

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/antzucaro/matchr"

	"makhela/internal/align"
	"makhela/internal/lyrics"
	"makhela/internal/transcript"
)

// Confidence bands for flagging chunks in the song editor.
const (
	goodThreshold = 0.8
	fairThreshold = 0.5
)

// Band classifies a chunk's alignment confidence.
type Band string

const (
	// BandGood chunks need no attention.
	BandGood Band = "good"
	// BandFair chunks are usable but worth a listen.
	BandFair Band = "fair"
	// BandLow chunks should be re-synced manually.
	BandLow Band = "low"
)

// Classify maps a confidence ratio to a band.
func Classify(confidence float64) Band {
	switch {
	case confidence >= goodThreshold:
		return BandGood
	case confidence >= fairThreshold:
		return BandFair
	default:
		return BandLow
	}
}

// Finding is one interpolated line with diagnostics against the transcript
// segment nearest its synthesized timestamp.
type Finding struct {
	ChunkID        string  `json:"chunkId"`
	LineIndex      int     `json:"lineIndex"`
	Line           string  `json:"line"`
	TimestampMs    int     `json:"timestampMs"`
	NearestSegment string  `json:"nearestSegment,omitempty"`
	EditDistance   int     `json:"editDistance"`
	JaroWinkler    float64 `json:"jaroWinkler"`
}

// Inspect reports every interpolated line of an alignment run with
// similarity diagnostics. A high edit distance together with a low
// Jaro-Winkler score suggests the line genuinely is not in the recording
// (an ad-lib, or a transcription gap); borderline scores suggest the
// thresholds simply rejected a noisy but real match.
func Inspect(chunks []lyrics.Chunk, results []align.Result, tr transcript.Transcript) []Finding {
	byID := make(map[string]lyrics.Chunk, len(chunks))
	for _, chunk := range chunks {
		byID[chunk.ID] = chunk
	}

	var findings []Finding
	for _, result := range results {
		chunk, ok := byID[result.ChunkID]
		if !ok {
			continue
		}
		lines := scorableLines(chunk)
		for i, source := range result.Sources {
			if source != align.SourceInterpolated || i >= len(lines) || i >= len(result.Timestamps) {
				continue
			}
			finding := Finding{
				ChunkID:     result.ChunkID,
				LineIndex:   i,
				Line:        lines[i],
				TimestampMs: result.Timestamps[i],
			}
			if seg, ok := nearestSegment(tr.Segments, result.Timestamps[i]); ok {
				normLine := align.Normalize(lines[i])
				normSeg := align.Normalize(seg.Text)
				finding.NearestSegment = strings.TrimSpace(seg.Text)
				finding.EditDistance = levenshtein.ComputeDistance(normLine, normSeg)
				finding.JaroWinkler = matchr.JaroWinkler(normLine, normSeg, false)
			}
			findings = append(findings, finding)
		}
	}
	return findings
}

// scorableLines returns the chunk's lines in output order: non-blank lines,
// including ones that normalize to nothing (those occupy output slots too).
func scorableLines(chunk lyrics.Chunk) []string {
	var lines []string
	for _, line := range chunk.Lines() {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func nearestSegment(segments []transcript.Segment, tsMs int) (transcript.Segment, bool) {
	if len(segments) == 0 {
		return transcript.Segment{}, false
	}
	best := segments[0]
	bestDiff := math.Abs(best.Start*1000 - float64(tsMs))
	for _, seg := range segments[1:] {
		diff := math.Abs(seg.Start*1000 - float64(tsMs))
		if diff < bestDiff {
			best = seg
			bestDiff = diff
		}
	}
	return best, true
}
