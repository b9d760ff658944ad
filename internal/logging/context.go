package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldSongID is the structured logging key for song identifiers.
	FieldSongID = "song_id"
	// FieldRunID is the structured logging key for alignment run identifiers.
	FieldRunID = "run_id"
	// FieldChunkID is the structured logging key for chunk identifiers.
	FieldChunkID = "chunk_id"
)

type contextKey int

const (
	songIDKey contextKey = iota
	runIDKey
)

// WithSongID attaches a song identifier to the context.
func WithSongID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, songIDKey, id)
}

// SongIDFromContext extracts the song identifier, if present.
func SongIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(songIDKey).(string)
	return id, ok && id != ""
}

// WithRunID attaches an alignment run identifier to the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the alignment run identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := SongIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSongID, id))
	}
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	return fields
}

// WithContext returns a logger augmented with fields derived from the context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
