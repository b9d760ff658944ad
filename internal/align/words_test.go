package align

import (
	"testing"

	"makhela/internal/transcript"
)

func testAligner() *Aligner {
	return New(DefaultOptions(), nil)
}

func TestMatchLineToWordsExact(t *testing.T) {
	words := []transcript.Word{
		{Word: "שלום", Start: 0.0, End: 0.5},
		{Word: "עולם", Start: 0.5, End: 1.1},
		{Word: "ברוכים", Start: 2.0, End: 2.4},
		{Word: "הבאים", Start: 2.4, End: 3.0},
	}

	m, ok := testAligner().matchLineToWords(Normalize("שלום עולם"), words, 0)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.startMs != 0 {
		t.Errorf("startMs = %d, want 0", m.startMs)
	}
	if m.nextCursor != 2 {
		t.Errorf("nextCursor = %d, want 2", m.nextCursor)
	}
	if len(m.words) != 2 {
		t.Fatalf("expected 2 word timings, got %d", len(m.words))
	}
	if m.words[1].StartMs != 500 || m.words[1].EndMs != 1100 {
		t.Errorf("word 1 timings = %d-%d, want 500-1100", m.words[1].StartMs, m.words[1].EndMs)
	}
}

func TestMatchLineToWordsRespectsStartIdx(t *testing.T) {
	// An identical (better) candidate exists before startIdx; it must not
	// be considered.
	words := []transcript.Word{
		{Word: "שיר", Start: 0.0, End: 0.3},
		{Word: "חדש", Start: 0.3, End: 0.7},
		{Word: "לא", Start: 5.0, End: 5.2},
		{Word: "שיר", Start: 5.2, End: 5.5},
		{Word: "חדש", Start: 5.5, End: 5.9},
	}

	m, ok := testAligner().matchLineToWords(Normalize("שיר חדש"), words, 2)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.startMs < 5000 {
		t.Errorf("match took words before startIdx: startMs = %d", m.startMs)
	}
}

func TestMatchLineToWordsBelowThreshold(t *testing.T) {
	words := []transcript.Word{
		{Word: "completely", Start: 0.0, End: 0.4},
		{Word: "unrelated", Start: 0.4, End: 0.9},
		{Word: "content", Start: 0.9, End: 1.3},
	}
	if _, ok := testAligner().matchLineToWords(Normalize("שלום עולם"), words, 0); ok {
		t.Error("expected no match for dissimilar text")
	}
}

func TestMatchLineToWordsEmptyInputs(t *testing.T) {
	a := testAligner()
	if _, ok := a.matchLineToWords("", []transcript.Word{{Word: "x", Start: 0, End: 1}}, 0); ok {
		t.Error("empty line must not match")
	}
	if _, ok := a.matchLineToWords("שלום", nil, 0); ok {
		t.Error("no words must not match")
	}
	if _, ok := a.matchLineToWords("שלום", []transcript.Word{{Word: "שלום", Start: 0, End: 1}}, 5); ok {
		t.Error("startIdx past end must not match")
	}
}

func TestMatchLineToWordsSearchRangeBound(t *testing.T) {
	opts := DefaultOptions()
	opts.SearchRange = 3
	a := New(opts, nil)

	// Candidate windows start at indices 0-2 and may span up to
	// lineWordCount+WindowSlack words, so the real match must sit past
	// index searchRange+maxWindow-1 to be truly unreachable.
	words := []transcript.Word{
		{Word: "la", Start: 0.0, End: 0.2},
		{Word: "la", Start: 0.2, End: 0.4},
		{Word: "la", Start: 0.4, End: 0.6},
		{Word: "la", Start: 0.6, End: 0.8},
		{Word: "la", Start: 0.8, End: 1.0},
		{Word: "la", Start: 1.0, End: 1.2},
		{Word: "la", Start: 1.2, End: 1.4},
		{Word: "שלום", Start: 9.0, End: 9.5},
		{Word: "עולם", Start: 9.5, End: 9.9},
	}
	if _, ok := a.matchLineToWords(Normalize("שלום עולם"), words, 0); ok {
		t.Error("match beyond the search range must not be found")
	}

	// Only candidate start positions are bounded: a window starting inside
	// the range may extend past the range end and still claim the match.
	reachable := []transcript.Word{
		{Word: "la", Start: 0.0, End: 0.2},
		{Word: "la", Start: 0.2, End: 0.4},
		{Word: "la", Start: 0.4, End: 0.6},
		{Word: "שלום", Start: 9.0, End: 9.5},
		{Word: "עולם", Start: 9.5, End: 9.9},
	}
	m, ok := a.matchLineToWords(Normalize("שלום עולם"), reachable, 0)
	if !ok {
		t.Fatal("expected a match reachable from an in-range window start")
	}
	if m.startMs != 400 {
		t.Errorf("startMs = %d, want 400 (window starts at the last in-range index)", m.startMs)
	}
	if m.nextCursor != 5 {
		t.Errorf("nextCursor = %d, want 5", m.nextCursor)
	}
}

func TestMatchLineToWordsPicksBestWindow(t *testing.T) {
	// A weaker partial candidate appears first; the stronger full match
	// later in range must win.
	words := []transcript.Word{
		{Word: "שלום", Start: 1.0, End: 1.4},
		{Word: "חבר", Start: 1.4, End: 1.8},
		{Word: "שלום", Start: 4.0, End: 4.4},
		{Word: "עולם", Start: 4.4, End: 4.9},
	}
	m, ok := testAligner().matchLineToWords(Normalize("שלום עולם"), words, 0)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.startMs != 4000 {
		t.Errorf("startMs = %d, want 4000 (best window, not first)", m.startMs)
	}
}
