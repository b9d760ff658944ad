package transcript

import "sort"

// Word is a single transcribed word with start/end times in seconds.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Segment is a coarser transcribed phrase with start/end times in seconds.
// Words is populated when the engine produced word-level alignment for the
// segment and may be empty otherwise.
type Segment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Words []Word  `json:"words,omitempty"`
}

// Transcript is the full engine output for one audio recording.
//
// Words and Segments are ordered ascending by start time. Both are treated
// as read-only by every consumer in this repository.
type Transcript struct {
	Language string    `json:"language,omitempty"`
	Words    []Word    `json:"words"`
	Segments []Segment `json:"segments"`
}

// New assembles a transcript from segments, flattening nested word timings
// into the word list and enforcing the ascending-by-start ordering guarantee.
func New(language string, segments []Segment) Transcript {
	var words []Word
	for _, seg := range segments {
		words = append(words, seg.Words...)
	}
	sort.SliceStable(words, func(i, j int) bool { return words[i].Start < words[j].Start })

	ordered := append([]Segment(nil), segments...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })

	return Transcript{
		Language: language,
		Words:    words,
		Segments: ordered,
	}
}

// Empty reports whether the transcript carries no timing data at all.
func (t Transcript) Empty() bool {
	return len(t.Words) == 0 && len(t.Segments) == 0
}
