// Package align computes best-effort timestamps for song lyric lines from a
// time-stamped speech-to-text transcript (forced alignment).
//
// For every non-empty lyric line the aligner tries three strategies in
// order: a bounded forward window search over transcript words, a looser
// containment/similarity search over coarser transcript segments, and
// finally interpolation from the previous line's timestamp. A single
// forward-only cursor into the transcript word list is threaded across all
// chunks of a song so alignment never rewinds backward in time.
//
// The aligner is deterministic and holds no state between calls; every
// Align invocation owns its cursor for the duration of that call, so whole
// songs can be aligned concurrently with one Aligner per goroutine or a
// shared Aligner, as Aligner itself is read-only after construction.
package align
