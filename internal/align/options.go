package align

// Options carries the alignment tuning knobs. The defaults were calibrated
// empirically against real choir recordings; treat them as configuration
// rather than derived constants and change them only when re-tuning against
// a labeled dataset.
type Options struct {
	// WordThreshold is the similarity a word-window candidate must strictly
	// exceed to be accepted.
	WordThreshold float64
	// SegmentThreshold is the similarity a segment candidate must strictly
	// exceed. Looser than WordThreshold because segment text is noisier.
	SegmentThreshold float64
	// SearchRange bounds how many transcript words past the cursor the word
	// matcher examines, keeping whole-song alignment near-linear in
	// transcript length.
	SearchRange int
	// WindowSlack is how many words beyond the line's own word count a
	// candidate window may grow.
	WindowSlack int
	// MinWordRatio sets the minimum window size as a fraction of the line's
	// word count before a window is scored.
	MinWordRatio float64
	// InterpolationGapMs is the offset added to the previous line's
	// timestamp when both real matchers fail.
	InterpolationGapMs int
	// SegmentSlackMs is how far before the last accepted timestamp a
	// segment may start and still be considered.
	SegmentSlackMs int
}

// DefaultOptions returns the calibrated alignment constants.
func DefaultOptions() Options {
	return Options{
		WordThreshold:      0.35,
		SegmentThreshold:   0.3,
		SearchRange:        200,
		WindowSlack:        3,
		MinWordRatio:       0.4,
		InterpolationGapMs: 2000,
		SegmentSlackMs:     1000,
	}
}

// normalize fills zero-valued fields with defaults so a partially populated
// Options (e.g. from config) behaves sensibly.
func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.WordThreshold <= 0 {
		o.WordThreshold = def.WordThreshold
	}
	if o.SegmentThreshold <= 0 {
		o.SegmentThreshold = def.SegmentThreshold
	}
	if o.SearchRange <= 0 {
		o.SearchRange = def.SearchRange
	}
	if o.WindowSlack <= 0 {
		o.WindowSlack = def.WindowSlack
	}
	if o.MinWordRatio <= 0 {
		o.MinWordRatio = def.MinWordRatio
	}
	if o.InterpolationGapMs <= 0 {
		o.InterpolationGapMs = def.InterpolationGapMs
	}
	if o.SegmentSlackMs <= 0 {
		o.SegmentSlackMs = def.SegmentSlackMs
	}
	return o
}
