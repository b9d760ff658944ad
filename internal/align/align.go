package align

import (
	"log/slog"
	"sort"
	"strings"

	"makhela/internal/logging"
	"makhela/internal/lyrics"
	"makhela/internal/transcript"
)

// WordTiming is one matched transcript word attached to a lyric line, in
// integer milliseconds. Word-level timings are only available for lines the
// word matcher resolved; consumers must treat an empty per-line slice as
// "word data unavailable, use the line timestamp".
type WordTiming struct {
	Word    string `json:"word"`
	StartMs int    `json:"startMs"`
	EndMs   int    `json:"endMs"`
}

// LineSource identifies which strategy produced a line's timestamp.
type LineSource int

const (
	// SourceWordMatch marks a line resolved by the word-window matcher.
	SourceWordMatch LineSource = iota
	// SourceSegmentMatch marks a line resolved by the segment fallback.
	SourceSegmentMatch
	// SourceInterpolated marks a line whose timestamp was synthesized from
	// the previous line.
	SourceInterpolated
	// SourceBlank marks a line that normalized to nothing (pure punctuation
	// or diacritics) and reused the previous timestamp.
	SourceBlank
)

// String returns the source name used in logs and reports.
func (s LineSource) String() string {
	switch s {
	case SourceWordMatch:
		return "words"
	case SourceSegmentMatch:
		return "segments"
	case SourceInterpolated:
		return "interpolated"
	case SourceBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Result is the alignment output for one chunk. Timestamps carries one
// integer-millisecond value per non-empty lyric line, in line order,
// non-decreasing within the chunk and across chunk boundaries of the same
// run. WordTimestamps parallels Timestamps; its entries are empty for lines
// the word matcher did not resolve. Confidence is the fraction of scorable
// lines resolved by a real match rather than interpolation.
type Result struct {
	ChunkID        string         `json:"chunkId"`
	Timestamps     []int          `json:"timestamps"`
	WordTimestamps [][]WordTiming `json:"wordTimestamps"`
	Sources        []LineSource   `json:"-"`
	Confidence     float64        `json:"confidence"`
}

// Aligner runs lyrics-to-transcript forced alignment. It is read-only after
// construction and safe for concurrent use; all per-run state lives on the
// Align call stack.
type Aligner struct {
	opts Options
	log  *slog.Logger
}

// New constructs an Aligner. Zero-valued option fields fall back to the
// calibrated defaults; a nil logger disables logging.
func New(opts Options, logger *slog.Logger) *Aligner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Aligner{opts: opts.normalize(), log: logger}
}

// lineOutcome is the tagged per-line result the driver accumulates from the
// three matching tiers. cursor is only meaningful for word matches and holds
// the index just past the matched window.
type lineOutcome struct {
	ms     int
	source LineSource
	words  []WordTiming
	cursor int
}

// Align maps every non-empty lyric line of every chunk to a transcript
// timestamp. Chunks are sorted by Order first; a single word cursor is
// threaded across chunk boundaries so no chunk can claim audio earlier than
// an already-aligned predecessor. Align never fails: lines nothing matched
// degrade to interpolation and lower the chunk's confidence instead.
func (a *Aligner) Align(chunks []lyrics.Chunk, tr transcript.Transcript) []Result {
	ordered := append([]lyrics.Chunk(nil), chunks...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	wordCursor := 0
	lastTs := 0
	hasPrev := false

	results := make([]Result, 0, len(ordered))
	for _, chunk := range ordered {
		var (
			timestamps []int
			wordTimes  [][]WordTiming
			sources    []LineSource
			matched    int
			scorable   int
		)

		for _, raw := range chunk.Lines() {
			if strings.TrimSpace(raw) == "" {
				continue
			}

			normalized := Normalize(raw)
			if normalized == "" {
				// Pure punctuation or diacritics: structural no-op that
				// reuses the previous timestamp and stays out of the
				// confidence ratio.
				outcome := lineOutcome{ms: previousTs(lastTs, hasPrev), source: SourceBlank, words: []WordTiming{}}
				timestamps = append(timestamps, outcome.ms)
				wordTimes = append(wordTimes, outcome.words)
				sources = append(sources, outcome.source)
				lastTs, hasPrev = outcome.ms, true
				continue
			}

			scorable++
			outcome := a.resolveLine(normalized, tr, wordCursor, lastTs, hasPrev)
			if outcome.source == SourceWordMatch || outcome.source == SourceSegmentMatch {
				matched++
			}
			if outcome.source == SourceWordMatch && outcome.cursor > wordCursor {
				wordCursor = outcome.cursor
			}

			// Clamp so timestamps never move backward across lines; the
			// segment slack can otherwise admit a slightly earlier start.
			if hasPrev && outcome.ms < lastTs {
				outcome.ms = lastTs
			}
			timestamps = append(timestamps, outcome.ms)
			wordTimes = append(wordTimes, outcome.words)
			sources = append(sources, outcome.source)
			lastTs, hasPrev = outcome.ms, true
		}

		confidence := 0.0
		if scorable > 0 {
			confidence = float64(matched) / float64(scorable)
		}
		a.log.Debug("chunk aligned",
			logging.String("chunk_id", chunk.ID),
			logging.Int("lines", len(timestamps)),
			logging.Int("matched", matched),
			logging.Float64("confidence", confidence))

		results = append(results, Result{
			ChunkID:        chunk.ID,
			Timestamps:     emptyIfNil(timestamps),
			WordTimestamps: emptyWordsIfNil(wordTimes),
			Sources:        sources,
			Confidence:     confidence,
		})
	}
	return results
}

// resolveLine applies the three tiers in priority order.
func (a *Aligner) resolveLine(normalizedLine string, tr transcript.Transcript, cursor, lastTs int, hasPrev bool) lineOutcome {
	if m, ok := a.matchLineToWords(normalizedLine, tr.Words, cursor); ok {
		return lineOutcome{ms: m.startMs, source: SourceWordMatch, words: m.words, cursor: m.nextCursor}
	}
	if ms, ok := a.matchLineToSegments(normalizedLine, tr.Segments, previousTs(lastTs, hasPrev)); ok {
		return lineOutcome{ms: ms, source: SourceSegmentMatch, words: []WordTiming{}}
	}
	ms := 0
	if hasPrev {
		ms = lastTs + a.opts.InterpolationGapMs
	}
	return lineOutcome{ms: ms, source: SourceInterpolated, words: []WordTiming{}}
}

func previousTs(lastTs int, hasPrev bool) int {
	if hasPrev {
		return lastTs
	}
	return 0
}

func emptyIfNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func emptyWordsIfNil(v [][]WordTiming) [][]WordTiming {
	if v == nil {
		return [][]WordTiming{}
	}
	return v
}
