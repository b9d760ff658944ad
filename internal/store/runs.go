package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"makhela/internal/align"
)

// SaveRun stores the results of one alignment run over a song. The run's
// aggregate confidence is the mean of the per-chunk confidences.
func (s *Store) SaveRun(ctx context.Context, songID string, results []align.Result) (Run, error) {
	ctx = ensureContext(ctx)

	confidence := 0.0
	for _, r := range results {
		confidence += r.Confidence
	}
	if len(results) > 0 {
		confidence /= float64(len(results))
	}

	run := Run{
		ID:         uuid.NewString(),
		SongID:     songID,
		CreatedAt:  time.Now().UTC(),
		Confidence: confidence,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO alignment_runs (id, song_id, created_at, confidence) VALUES (?, ?, ?, ?)",
		run.ID, run.SongID, run.CreatedAt.Format(time.RFC3339), run.Confidence,
	); err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	for _, r := range results {
		timestamps, err := json.Marshal(r.Timestamps)
		if err != nil {
			return Run{}, fmt.Errorf("encode timestamps: %w", err)
		}
		wordTimestamps, err := json.Marshal(r.WordTimestamps)
		if err != nil {
			return Run{}, fmt.Errorf("encode word timestamps: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO chunk_results (run_id, chunk_id, timestamps, word_timestamps, confidence) VALUES (?, ?, ?, ?, ?)",
			run.ID, r.ChunkID, string(timestamps), string(wordTimestamps), r.Confidence,
		); err != nil {
			return Run{}, fmt.Errorf("insert chunk result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("commit run: %w", err)
	}
	return run, nil
}

// GetRun fetches one alignment run by id.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	ctx = ensureContext(ctx)
	var run Run
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, song_id, created_at, confidence FROM alignment_runs WHERE id = ?", id,
	).Scan(&run.ID, &run.SongID, &createdAt, &run.Confidence)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("query run: %w", err)
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return run, nil
}

// ListRuns returns a song's alignment runs, newest first.
func (s *Store) ListRuns(ctx context.Context, songID string) ([]Run, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, song_id, created_at, confidence FROM alignment_runs WHERE song_id = ? ORDER BY created_at DESC, id", songID)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.SongID, &createdAt, &run.Confidence); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRunResults returns a run's chunk results joined with chunk text, in
// chunk order.
func (s *Store) GetRunResults(ctx context.Context, runID string) ([]ChunkResult, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
		SELECT cr.run_id, cr.chunk_id, c.chunk_order, c.label, c.lyrics,
		       cr.timestamps, cr.word_timestamps, cr.confidence
		FROM chunk_results cr
		JOIN chunks c ON c.id = cr.chunk_id
		WHERE cr.run_id = ?
		ORDER BY c.chunk_order`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run results: %w", err)
	}
	defer rows.Close()

	var results []ChunkResult
	for rows.Next() {
		var (
			cr             ChunkResult
			timestamps     string
			wordTimestamps string
		)
		if err := rows.Scan(&cr.RunID, &cr.ChunkID, &cr.ChunkOrder, &cr.Label, &cr.Lyrics,
			&timestamps, &wordTimestamps, &cr.Confidence); err != nil {
			return nil, fmt.Errorf("scan chunk result: %w", err)
		}
		if err := json.Unmarshal([]byte(timestamps), &cr.Timestamps); err != nil {
			return nil, fmt.Errorf("decode timestamps: %w", err)
		}
		if err := json.Unmarshal([]byte(wordTimestamps), &cr.WordTimestamps); err != nil {
			return nil, fmt.Errorf("decode word timestamps: %w", err)
		}
		results = append(results, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		// Distinguish "no such run" from a run with no chunks.
		if _, err := s.GetRun(ctx, runID); err != nil {
			return nil, err
		}
	}
	return results, nil
}
