package lyrics

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Chunk is one ordered section of a song's lyrics. Lyrics holds the raw
// newline-separated line text; Order sequences chunks within the song and is
// the only field alignment depends on for chunk ordering.
type Chunk struct {
	ID     string
	Label  string
	Lyrics string
	Order  int
}

// Lines splits the chunk's lyric text into lines, preserving blank lines so
// callers can keep their own "line N of M" indexing intact.
func (c Chunk) Lines() []string {
	return strings.Split(c.Lyrics, "\n")
}

// NonEmptyLineCount reports how many lines carry any non-whitespace text.
func (c Chunk) NonEmptyLineCount() int {
	count := 0
	for _, line := range c.Lines() {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// LoadFile reads a UTF-8 lyric file and splits it into chunks on runs of
// blank lines. Each chunk receives a fresh id and an order matching its
// position in the file.
func LoadFile(path string) ([]Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lyrics: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	var chunks []Chunk
	for _, block := range splitBlocks(content) {
		chunks = append(chunks, Chunk{
			ID:     uuid.NewString(),
			Label:  fmt.Sprintf("Section %d", len(chunks)+1),
			Lyrics: block,
			Order:  len(chunks),
		})
	}
	return chunks, nil
}

// splitBlocks separates text into blocks on one or more consecutive blank
// lines. Blank lines inside a block are impossible by construction; blank
// lines at the edges are trimmed.
func splitBlocks(content string) []string {
	var blocks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}
