package transcriber

import (
	"context"

	"makhela/internal/transcript"
)

// Engine supplies word- and segment-level timings for one audio recording.
// Implementations must return transcripts ordered ascending by start time.
type Engine interface {
	// Transcribe resolves the transcript for the recording at audioPath.
	Transcribe(ctx context.Context, audioPath string) (transcript.Transcript, error)
}
