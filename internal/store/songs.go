package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"makhela/internal/lyrics"
)

// SaveSong stores a song and its chunks, assigning ids where missing.
// The returned chunks carry their final ids.
func (s *Store) SaveSong(ctx context.Context, title string, chunks []lyrics.Chunk) (Song, []lyrics.Chunk, error) {
	ctx = ensureContext(ctx)
	song := Song{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Song{}, nil, fmt.Errorf("begin song tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO songs (id, title, created_at) VALUES (?, ?, ?)",
		song.ID, song.Title, song.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return Song{}, nil, fmt.Errorf("insert song: %w", err)
	}

	saved := make([]lyrics.Chunk, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.ID == "" {
			chunk.ID = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO chunks (id, song_id, label, chunk_order, lyrics) VALUES (?, ?, ?, ?, ?)",
			chunk.ID, song.ID, chunk.Label, chunk.Order, chunk.Lyrics,
		); err != nil {
			return Song{}, nil, fmt.Errorf("insert chunk: %w", err)
		}
		saved = append(saved, chunk)
	}

	if err := tx.Commit(); err != nil {
		return Song{}, nil, fmt.Errorf("commit song: %w", err)
	}
	return song, saved, nil
}

// GetSong fetches one song by id.
func (s *Store) GetSong(ctx context.Context, id string) (Song, error) {
	ctx = ensureContext(ctx)
	var song Song
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, created_at FROM songs WHERE id = ?", id,
	).Scan(&song.ID, &song.Title, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Song{}, ErrNotFound
	}
	if err != nil {
		return Song{}, fmt.Errorf("query song: %w", err)
	}
	song.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return song, nil
}

// ListSongs returns all songs, newest first.
func (s *Store) ListSongs(ctx context.Context) ([]Song, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, created_at FROM songs ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		var createdAt string
		if err := rows.Scan(&song.ID, &song.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		song.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// DeleteSong removes a song and, via cascading foreign keys, its chunks,
// runs, and chunk results.
func (s *Store) DeleteSong(ctx context.Context, id string) error {
	res, err := s.execWithRetry(ctx, "DELETE FROM songs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetChunks returns a song's chunks in chunk order.
func (s *Store) GetChunks(ctx context.Context, songID string) ([]lyrics.Chunk, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, label, chunk_order, lyrics FROM chunks WHERE song_id = ? ORDER BY chunk_order", songID)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []lyrics.Chunk
	for rows.Next() {
		var chunk lyrics.Chunk
		if err := rows.Scan(&chunk.ID, &chunk.Label, &chunk.Order, &chunk.Lyrics); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		chunks = append(chunks, chunk)
	}
	return chunks, rows.Err()
}
