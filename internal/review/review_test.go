package review

import (
	"encoding/json"
	"strings"
	"testing"

	"makhela/internal/align"
	"makhela/internal/lyrics"
	"makhela/internal/transcript"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		confidence float64
		expected   Band
	}{
		{1.0, BandGood},
		{0.8, BandGood},
		{0.79, BandFair},
		{0.5, BandFair},
		{0.49, BandLow},
		{0, BandLow},
	}
	for _, tt := range tests {
		if got := Classify(tt.confidence); got != tt.expected {
			t.Errorf("Classify(%f) = %s, want %s", tt.confidence, got, tt.expected)
		}
	}
}

func TestInspectReportsInterpolatedLines(t *testing.T) {
	chunks := []lyrics.Chunk{
		{ID: "c1", Lyrics: "שלום עולם\nשורה שלא שרו", Order: 0},
	}
	results := []align.Result{
		{
			ChunkID:        "c1",
			Timestamps:     []int{0, 2000},
			WordTimestamps: [][]align.WordTiming{{{Word: "שלום"}}, {}},
			Sources:        []align.LineSource{align.SourceWordMatch, align.SourceInterpolated},
			Confidence:     0.5,
		},
	}
	tr := transcript.Transcript{
		Segments: []transcript.Segment{
			{Text: "שלום עולם", Start: 0.0, End: 1.0},
			{Text: "משהו אחר לגמרי", Start: 2.0, End: 3.0},
		},
	}

	findings := Inspect(chunks, results, tr)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.LineIndex != 1 || f.Line != "שורה שלא שרו" {
		t.Errorf("finding line = %d %q", f.LineIndex, f.Line)
	}
	if f.NearestSegment != "משהו אחר לגמרי" {
		t.Errorf("nearest segment = %q", f.NearestSegment)
	}
	if f.EditDistance == 0 {
		t.Error("edit distance should be non-zero for dissimilar text")
	}
	if f.JaroWinkler < 0 || f.JaroWinkler > 1 {
		t.Errorf("jaro-winkler %f out of range", f.JaroWinkler)
	}
}

func TestFindingJSONKeys(t *testing.T) {
	// Findings ride along in the CLI's JSON output next to camelCase
	// fields; their keys must match that surface.
	data, err := json.Marshal(Finding{ChunkID: "c1", Line: "שורה", TimestampMs: 100, EditDistance: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"chunkId"`, `"lineIndex"`, `"line"`, `"timestampMs"`, `"editDistance"`, `"jaroWinkler"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("encoded finding missing key %s: %s", key, data)
		}
	}
}

func TestInspectNoSegments(t *testing.T) {
	chunks := []lyrics.Chunk{{ID: "c1", Lyrics: "שורה", Order: 0}}
	results := []align.Result{{
		ChunkID:        "c1",
		Timestamps:     []int{0},
		WordTimestamps: [][]align.WordTiming{{}},
		Sources:        []align.LineSource{align.SourceInterpolated},
	}}

	findings := Inspect(chunks, results, transcript.Transcript{})
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].NearestSegment != "" {
		t.Errorf("nearest segment should be empty, got %q", findings[0].NearestSegment)
	}
}

func TestInspectSkipsMatchedLines(t *testing.T) {
	chunks := []lyrics.Chunk{{ID: "c1", Lyrics: "שלום", Order: 0}}
	results := []align.Result{{
		ChunkID:        "c1",
		Timestamps:     []int{100},
		WordTimestamps: [][]align.WordTiming{{{Word: "שלום"}}},
		Sources:        []align.LineSource{align.SourceWordMatch},
		Confidence:     1,
	}}

	if findings := Inspect(chunks, results, transcript.Transcript{}); len(findings) != 0 {
		t.Errorf("expected no findings, got %d", len(findings))
	}
}
