package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type whisperXPayload struct {
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// LoadWhisperX reads a WhisperX JSON output file and returns the transcript
// it encodes. Word timings nested inside segments are flattened into the
// transcript's word list.
func LoadWhisperX(path string) (Transcript, error) {
	if strings.TrimSpace(path) == "" {
		return Transcript{}, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Transcript{}, err
	}
	var payload whisperXPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Transcript{}, fmt.Errorf("parse whisperx json: %w", err)
	}
	return New(payload.Language, payload.Segments), nil
}
