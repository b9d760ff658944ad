// Package transcript models the time-stamped output of an external
// speech-to-text engine.
//
// The package owns the word- and segment-level timing types consumed by the
// alignment engine and a loader for the WhisperX JSON payload format, which
// is the transcript shape the rest of the system is built around.
package transcript
