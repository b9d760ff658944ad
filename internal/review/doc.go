// Package review turns alignment confidence into an editor-facing quality
// signal.
//
// The alignment core only reports a confidence ratio per chunk; deciding
// what to do with it is caller policy, and that policy lives here:
// confidence bands for flagging chunks that need manual re-sync, and
// per-line diagnostics for interpolated lines so an editor can judge
// whether the transcript simply missed the line or the lyrics diverge from
// what was sung.
package review
