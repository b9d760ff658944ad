package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"makhela/internal/transcript"
)

// WhisperXFiles resolves transcripts from WhisperX JSON output files in a
// directory, keyed by the audio file's base name.
type WhisperXFiles struct {
	dir string
}

// NewWhisperXFiles creates a file-backed engine reading from dir.
func NewWhisperXFiles(dir string) *WhisperXFiles {
	return &WhisperXFiles{dir: dir}
}

// Transcribe loads <dir>/<base>.json for the given audio path.
func (w *WhisperXFiles) Transcribe(ctx context.Context, audioPath string) (transcript.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return transcript.Transcript{}, err
	}

	base := filepath.Base(audioPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	path := filepath.Join(w.dir, base+".json")

	tr, err := transcript.LoadWhisperX(path)
	if err != nil {
		if os.IsNotExist(err) {
			return transcript.Transcript{}, fmt.Errorf("no transcript for %q (expected %s): %w", audioPath, path, err)
		}
		return transcript.Transcript{}, fmt.Errorf("load transcript for %q: %w", audioPath, err)
	}
	return tr, nil
}
