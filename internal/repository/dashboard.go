// Package repository provides read-side aggregation queries over the
// prediction history for the clinician dashboard.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/disease-risk-server/internal/domain"
)

// DiseaseCount is one row of the per-disease prediction breakdown.
type DiseaseCount struct {
	Disease string `json:"disease"`
	Count   int    `json:"count"`
}

// DashboardRepository runs aggregate queries against the postgres prediction
// history. It is read-only; writes go through the history store.
type DashboardRepository struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

// NewDashboardRepository creates a dashboard repository over a connection pool.
func NewDashboardRepository(pool *pgxpool.Pool, logger *logrus.Logger) *DashboardRepository {
	return &DashboardRepository{pool: pool, log: logger}
}

// RiskLevelCounts returns per-level prediction counts in ascending severity
// order (low, medium, high, critical).
func (r *DashboardRepository) RiskLevelCounts(ctx context.Context) ([4]int, error) {
	var counts [4]int

	rows, err := r.pool.Query(ctx,
		"SELECT risk_level, COUNT(*) FROM predictions GROUP BY risk_level")
	if err != nil {
		return counts, fmt.Errorf("querying risk level counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var n int
		if err := rows.Scan(&level, &n); err != nil {
			return counts, fmt.Errorf("scanning risk level count: %w", err)
		}
		for i, rl := range domain.RiskLevels {
			if domain.RiskLevel(level) == rl {
				counts[i] = n
				break
			}
		}
	}
	return counts, rows.Err()
}

// TopDiseases returns the most frequently predicted diseases, highest count
// first, ties broken by disease key for a stable dashboard ordering.
func (r *DashboardRepository) TopDiseases(ctx context.Context, limit int) ([]DiseaseCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT disease, COUNT(*) AS n
		FROM predictions
		GROUP BY disease
		ORDER BY n DESC, disease
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying top diseases: %w", err)
	}
	defer rows.Close()

	var out []DiseaseCount
	for rows.Next() {
		var dc DiseaseCount
		if err := rows.Scan(&dc.Disease, &dc.Count); err != nil {
			return nil, fmt.Errorf("scanning disease count: %w", err)
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

// RecentActivity returns the number of predictions recorded within the given
// window ending now.
func (r *DashboardRepository) RecentActivity(ctx context.Context, window time.Duration) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM predictions WHERE created_at >= $1",
		time.Now().UTC().Add(-window),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("querying recent activity: %w", err)
	}
	return n, nil
}
