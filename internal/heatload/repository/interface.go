package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Report is a stored heat-load report. Input and Results hold the normalized
// calculation input and the computed output as JSONB documents.
type Report struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	QuoteID     string    `db:"quote_id"`
	ProjectName string    `db:"project_name"`
	Input       []byte    `db:"input"`
	Results     []byte    `db:"results"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// UpsertParams contains parameters for saving a report. Reports are unique
// per (user, quote); saving again replaces input and results in place.
type UpsertParams struct {
	UserID      uuid.UUID
	QuoteID     string
	ProjectName string
	Input       []byte
	Results     []byte
}

// ReportReader provides read operations for heat-load reports.
type ReportReader interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (Report, error)
	GetByQuoteID(ctx context.Context, userID uuid.UUID, quoteID string) (Report, error)
	List(ctx context.Context, userID uuid.UUID) ([]Report, error)
}

// ReportWriter provides write operations for heat-load reports.
type ReportWriter interface {
	Upsert(ctx context.Context, params UpsertParams) (Report, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Repository combines all heat-load report operations.
type Repository interface {
	ReportReader
	ReportWriter
}
