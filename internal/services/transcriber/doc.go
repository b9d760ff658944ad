// Package transcriber is the boundary to the external speech-to-text
// engine.
//
// Transcription itself happens outside this repository; the engine drops
// WhisperX JSON files into a transcript directory and this package resolves
// and loads them. The Engine interface keeps alignment code independent of
// where transcripts come from, and the stub implementation backs tests.
package transcriber
