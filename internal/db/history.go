package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-scorer/internal/types"
)

// AnalysisSummary is one row of the analysis history listing.
type AnalysisSummary struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	OverallScore   float64   `json:"overall_score"`
	Interpretation string    `json:"interpretation"`
	Degraded       bool      `json:"degraded"`
}

// SaveAnalysis stores a completed analysis result. The full result is
// serialized to JSONB; the score and interpretation are duplicated into
// columns so listings avoid unpacking the document.
func (db *DB) SaveAnalysis(ctx context.Context, result *types.AnalysisResult, resumeHash, jdHash string) error {
	if result.Score == nil {
		return fmt.Errorf("cannot save analysis %s without a score", result.ID)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, resume_hash, jd_hash, overall_score, interpretation, degraded, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.ID, resumeHash, jdHash,
		result.Score.Overall, result.Score.Interpretation, result.Degraded(), payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves a stored analysis result by ID. Returns nil when
// no row matches.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.AnalysisResult, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT result FROM analyses WHERE id = $1`, id,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", id, err)
	}
	return &result, nil
}

// ListAnalyses returns the most recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, created_at, overall_score, interpretation, degraded
		 FROM analyses ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.OverallScore, &s.Interpretation, &s.Degraded); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis rows: %w", err)
	}
	return summaries, nil
}
