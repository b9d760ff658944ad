package transcriber

import (
	"context"

	"makhela/internal/transcript"
)

// Stub is a canned-response engine for tests and wiring code.
type Stub struct {
	Result transcript.Transcript
	Err    error
	Calls  []string
}

// Transcribe records the requested path and returns the canned result.
func (s *Stub) Transcribe(ctx context.Context, audioPath string) (transcript.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return transcript.Transcript{}, err
	}
	s.Calls = append(s.Calls, audioPath)
	if s.Err != nil {
		return transcript.Transcript{}, s.Err
	}
	return s.Result, nil
}
