package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// HeatmapOutput maps UTC dates (YYYY-MM-DD) to rounded hours worked.
type HeatmapOutput struct {
	Year int                `json:"year"`
	Days map[string]float64 `json:"days"`
}

// ReportUsecase serves the read-only aggregates over closed entries.
// Every read closes an expired open entry first.
type ReportUsecase interface {
	// CurrentElapsed returns the open session, or nil when the user is not working.
	CurrentElapsed(ctx context.Context, userID uuid.UUID) (*CurrentSession, error)
	YearTotal(ctx context.Context, userID uuid.UUID, year int) (float64, error)
	// Heatmap defaults to the current UTC year when year is nil.
	Heatmap(ctx context.Context, userID uuid.UUID, year *int) (*HeatmapOutput, error)
	// Export writes all closed entries as CSV, oldest first.
	Export(ctx context.Context, userID uuid.UUID, w io.Writer) error
}
