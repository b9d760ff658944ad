package store

import (
	"time"

	"makhela/internal/align"
)

// Song is one stored song with its lyric chunks.
type Song struct {
	ID        string
	Title     string
	CreatedAt time.Time
}

// Run is one alignment run over a song. Confidence is the mean of the run's
// per-chunk confidences.
type Run struct {
	ID         string
	SongID     string
	CreatedAt  time.Time
	Confidence float64
}

// ChunkResult is the stored alignment output for one chunk of a run.
// Timestamps and WordTimestamps round-trip through JSON columns unchanged.
type ChunkResult struct {
	RunID          string
	ChunkID        string
	ChunkOrder     int
	Label          string
	Lyrics         string
	Timestamps     []int
	WordTimestamps [][]align.WordTiming
	Confidence     float64
}
