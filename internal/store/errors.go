package store

import "errors"

var (
	// ErrNotFound indicates the requested song, run, or chunk does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrLocked indicates another process holds the store lock.
	ErrLocked = errors.New("store: database locked by another process")
	// ErrSchemaMismatch indicates the database schema version doesn't match
	// the expected version.
	ErrSchemaMismatch = errors.New("store: schema version mismatch")
)
