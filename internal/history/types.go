// Package history persists a reduced projection of each prediction so the
// clinician dashboard can aggregate risk levels over time. Two backends are
// provided: an embedded SQLite store for single-node deployments and a
// PostgreSQL store for shared ones.
package history

import (
	"context"

	"github.com/disease-risk-server/internal/domain"
)

// Store is the prediction-history persistence interface. Writes are atomic
// per record and independent of concurrent aggregate reads.
type Store interface {
	// Save persists one prediction record. A missing ID is assigned.
	Save(ctx context.Context, rec *domain.PredictionRecord) error

	// List returns the most recent records, newest first.
	List(ctx context.Context, limit, offset int) ([]domain.PredictionRecord, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int, error)

	// RiskLevelCounts returns per-level record counts in ascending severity
	// order (low, medium, high, critical).
	RiskLevelCounts(ctx context.Context) ([4]int, error)

	// Close releases the underlying database handle.
	Close() error
}
