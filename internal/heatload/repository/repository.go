package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"heatload_backend/platform/apperr"
)

const reportNotFoundMessage = "heat-load report not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new heat-load report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Upsert saves a report, replacing any existing report for the same
// (user, quote) pair.
func (r *Repo) Upsert(ctx context.Context, params UpsertParams) (Report, error) {
	query := `
		INSERT INTO heat_load_reports (user_id, quote_id, project_name, input, results)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, quote_id) DO UPDATE SET
			project_name = EXCLUDED.project_name,
			input = EXCLUDED.input,
			results = EXCLUDED.results,
			updated_at = now()
		RETURNING id, user_id, quote_id, project_name, input, results, created_at, updated_at`

	var report Report
	err := r.pool.QueryRow(ctx, query,
		params.UserID, params.QuoteID, params.ProjectName, params.Input, params.Results,
	).Scan(
		&report.ID, &report.UserID, &report.QuoteID, &report.ProjectName,
		&report.Input, &report.Results, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return Report{}, fmt.Errorf("upsert heat-load report: %w", err)
	}

	return report, nil
}

// GetByID retrieves a report by its ID, scoped to the owning user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (Report, error) {
	query := `
		SELECT id, user_id, quote_id, project_name, input, results, created_at, updated_at
		FROM heat_load_reports
		WHERE id = $1 AND user_id = $2`

	var report Report
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&report.ID, &report.UserID, &report.QuoteID, &report.ProjectName,
		&report.Input, &report.Results, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Report{}, apperr.NotFound(reportNotFoundMessage)
		}
		return Report{}, fmt.Errorf("get heat-load report by id: %w", err)
	}

	return report, nil
}

// GetByQuoteID retrieves the report attached to a quote, scoped to the user.
func (r *Repo) GetByQuoteID(ctx context.Context, userID uuid.UUID, quoteID string) (Report, error) {
	query := `
		SELECT id, user_id, quote_id, project_name, input, results, created_at, updated_at
		FROM heat_load_reports
		WHERE quote_id = $1 AND user_id = $2`

	var report Report
	err := r.pool.QueryRow(ctx, query, quoteID, userID).Scan(
		&report.ID, &report.UserID, &report.QuoteID, &report.ProjectName,
		&report.Input, &report.Results, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Report{}, apperr.NotFound(reportNotFoundMessage)
		}
		return Report{}, fmt.Errorf("get heat-load report by quote id: %w", err)
	}

	return report, nil
}

// List retrieves all reports of a user, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]Report, error) {
	query := `
		SELECT id, user_id, quote_id, project_name, input, results, created_at, updated_at
		FROM heat_load_reports
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list heat-load reports: %w", err)
	}
	defer rows.Close()

	var results []Report
	for rows.Next() {
		var report Report
		err := rows.Scan(
			&report.ID, &report.UserID, &report.QuoteID, &report.ProjectName,
			&report.Input, &report.Results, &report.CreatedAt, &report.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan heat-load report: %w", err)
		}
		results = append(results, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate heat-load reports: %w", err)
	}

	return results, nil
}

// Delete removes a report by ID, scoped to the owning user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM heat_load_reports WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete heat-load report: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(reportNotFoundMessage)
	}

	return nil
}
