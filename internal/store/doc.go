// Package store persists songs, lyric chunks, and alignment runs in SQLite.
//
// Timestamps and word timings are stored verbatim as JSON arrays against
// each chunk result, which is the shape downstream consumers (karaoke
// display, recall drills) read them in. The store serializes cross-process
// access with a sidecar file lock so concurrent CLI invocations cannot race
// schema creation.
package store
