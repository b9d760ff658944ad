package align

// Similarity scores two normalized strings in [0,1] using the Dice
// coefficient over their character bigram sets. It returns 0 if either
// string is empty and 1 on exact match, and is symmetric in its arguments.
//
// The metric is deliberately cheap: lyric lines are a handful of words and
// the word matcher calls this inside a bounded inner loop, so an
// edit-distance DP would cost more than the extra accuracy is worth.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	bigramsA := bigrams(a)
	bigramsB := bigrams(b)
	if len(bigramsA) == 0 || len(bigramsB) == 0 {
		return 0
	}

	shared := 0
	for g := range bigramsA {
		if _, ok := bigramsB[g]; ok {
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(bigramsA)+len(bigramsB))
}

func bigrams(s string) map[string]struct{} {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil
	}
	set := make(map[string]struct{}, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		set[string(runes[i:i+2])] = struct{}{}
	}
	return set
}
