package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"odyssey-lab/internal/domain/models"
	"odyssey-lab/internal/infrastructure/database"
	"odyssey-lab/pkg/logger"
)

// ErrNotFound is returned when no stored analysis matches
var ErrNotFound = errors.New("analysis not found")

// FootprintRepository persists completed analyses for history lookups
type FootprintRepository struct {
	db     *database.PostgresDB
	logger *logger.Logger
}

// NewFootprintRepository creates a new footprint repository
func NewFootprintRepository(db *database.PostgresDB, log *logger.Logger) *FootprintRepository {
	return &FootprintRepository{
		db:     db,
		logger: log.WithComponent("footprint-repository"),
	}
}

// Save stores a completed analysis. The full result is kept as JSONB;
// score and email are lifted into columns for history queries.
func (r *FootprintRepository) Save(ctx context.Context, result *models.DigitalFootprintResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	const query = `
INSERT INTO footprint_analyses (id, email, privacy_score, payload, analyzed_at)
VALUES ($1, $2, $3, $4, $5)`

	if err := r.db.Exec(ctx, query, result.ID, result.Email, result.PrivacyScore, payload, result.AnalyzedAt); err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}

	r.logger.Debug().Str("analysis_id", result.ID.String()).Msg("analysis stored")
	return nil
}

// GetByID returns a stored analysis by its ID
func (r *FootprintRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DigitalFootprintResult, error) {
	const query = `SELECT payload FROM footprint_analyses WHERE id = $1`

	var payload []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query analysis: %w", err)
	}

	var result models.DigitalFootprintResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &result, nil
}

// ListByEmail returns recent analysis summaries for an email, newest first
func (r *FootprintRepository) ListByEmail(ctx context.Context, email string, limit int) ([]models.AnalysisSummary, error) {
	const query = `
SELECT id, email, privacy_score, analyzed_at
FROM footprint_analyses
WHERE lower(email) = $1
ORDER BY analyzed_at DESC
LIMIT $2`

	rows, err := r.db.Query(ctx, query, strings.ToLower(email), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.AnalysisSummary, 0, limit)
	for rows.Next() {
		var s models.AnalysisSummary
		if err := rows.Scan(&s.ID, &s.Email, &s.PrivacyScore, &s.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return summaries, nil
}
