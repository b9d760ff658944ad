package align

import (
	"testing"

	"makhela/internal/transcript"
)

func TestMatchLineToSegmentsContainment(t *testing.T) {
	segments := []transcript.Segment{
		{Text: "פתיחה כלשהי", Start: 1.0, End: 3.0},
		{Text: "ואז שלום עולם ועוד מילים", Start: 5.0, End: 8.0},
	}
	ms, ok := testAligner().matchLineToSegments(Normalize("שלום עולם"), segments, 0)
	if !ok {
		t.Fatal("expected containment match")
	}
	if ms != 5000 {
		t.Errorf("ms = %d, want 5000", ms)
	}
}

func TestMatchLineToSegmentsReverseContainment(t *testing.T) {
	// The line contains the (shorter) segment text.
	segments := []transcript.Segment{
		{Text: "שלום", Start: 2.5, End: 3.0},
	}
	ms, ok := testAligner().matchLineToSegments(Normalize("שלום עולם ומלואו"), segments, 0)
	if !ok {
		t.Fatal("expected reverse containment match")
	}
	if ms != 2500 {
		t.Errorf("ms = %d, want 2500", ms)
	}
}

func TestMatchLineToSegmentsForwardOnly(t *testing.T) {
	// A perfect match sits more than the slack before lastTs and must be
	// skipped.
	segments := []transcript.Segment{
		{Text: "שלום עולם", Start: 1.0, End: 2.0},
	}
	if _, ok := testAligner().matchLineToSegments(Normalize("שלום עולם"), segments, 10_000); ok {
		t.Error("segment starting far before lastTs must be skipped")
	}
}

func TestMatchLineToSegmentsSlackWindow(t *testing.T) {
	// Within the 1000ms slack the segment is still eligible.
	segments := []transcript.Segment{
		{Text: "שלום עולם", Start: 9.5, End: 11.0},
	}
	ms, ok := testAligner().matchLineToSegments(Normalize("שלום עולם"), segments, 10_000)
	if !ok {
		t.Fatal("segment within slack must be eligible")
	}
	if ms != 9500 {
		t.Errorf("ms = %d, want 9500", ms)
	}
}

func TestMatchLineToSegmentsThreshold(t *testing.T) {
	segments := []transcript.Segment{
		{Text: "entirely different words", Start: 1.0, End: 2.0},
	}
	if _, ok := testAligner().matchLineToSegments(Normalize("שלום עולם"), segments, 0); ok {
		t.Error("dissimilar segment must not match")
	}
}

func TestMatchLineToSegmentsIgnoresEmptyText(t *testing.T) {
	// A segment that normalizes to nothing must not containment-match
	// everything.
	segments := []transcript.Segment{
		{Text: "...", Start: 0.0, End: 1.0},
	}
	if _, ok := testAligner().matchLineToSegments(Normalize("שלום עולם"), segments, 0); ok {
		t.Error("punctuation-only segment must be ignored")
	}
}
