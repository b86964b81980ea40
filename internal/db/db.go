// Package db provides PostgreSQL persistence for wizard analysis records.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmoreno/resume-wizard/internal/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the analyses table when it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			job_text TEXT NOT NULL,
			resume_text TEXT NOT NULL,
			language TEXT NOT NULL,
			score INT NOT NULL,
			explanation TEXT NOT NULL,
			rewritten_text TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// SaveAnalysis stores one analysis record, assigning its ID and creation
// time when missing.
func (db *DB) SaveAnalysis(ctx context.Context, rec *types.AnalysisRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (id, job_text, resume_text, language, score, explanation, rewritten_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		rec.ID, rec.JobText, rec.ResumeText, string(rec.Language),
		rec.Score, rec.Explanation, rec.RewrittenText,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis fetches one record by ID.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.AnalysisRecord, error) {
	rec := &types.AnalysisRecord{}
	var lang string
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_text, resume_text, language, score, explanation, rewritten_text, created_at
		 FROM analyses WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.JobText, &rec.ResumeText, &lang,
		&rec.Score, &rec.Explanation, &rec.RewrittenText, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	rec.Language = types.Language(lang)
	return rec, nil
}

// ListAnalyses returns the most recent records, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]*types.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, job_text, resume_text, language, score, explanation, rewritten_text, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []*types.AnalysisRecord
	for rows.Next() {
		rec := &types.AnalysisRecord{}
		var lang string
		if err := rows.Scan(&rec.ID, &rec.JobText, &rec.ResumeText, &lang,
			&rec.Score, &rec.Explanation, &rec.RewrittenText, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		rec.Language = types.Language(lang)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis rows: %w", err)
	}
	return records, nil
}
