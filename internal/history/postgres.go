package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/disease-risk-server/internal/domain"
)

// PostgresStore implements the Store interface using PostgreSQL, for
// deployments where several instances share one history.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL prediction-history store from a
// connection string and ensures the schema exists.
func NewPostgresStore(connString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return store, nil
}

// NewPostgresStoreWithDB wraps an existing connection. Used by tests.
func NewPostgresStoreWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS predictions (
		id UUID PRIMARY KEY,
		disease TEXT NOT NULL,
		symptoms JSONB NOT NULL DEFAULT '[]',
		raw_probability DOUBLE PRECISION NOT NULL,
		posterior DOUBLE PRECISION NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		risk_level TEXT NOT NULL,
		age INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_predictions_risk_level ON predictions(risk_level);
	CREATE INDEX IF NOT EXISTS idx_predictions_disease ON predictions(disease);
	CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save persists one prediction record, assigning an ID and timestamp when
// they are missing.
func (s *PostgresStore) Save(ctx context.Context, rec *domain.PredictionRecord) error {
	if !rec.RiskLevel.IsValid() {
		return domain.NewValidationError("risk_level", "unknown risk level", string(rec.RiskLevel))
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	symptomsJSON, err := json.Marshal(rec.Symptoms)
	if err != nil {
		return fmt.Errorf("failed to encode symptoms: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO predictions (id, disease, symptoms, raw_probability, posterior, confidence, risk_level, age, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.Disease, string(symptomsJSON),
		rec.RawProbability, rec.Posterior, rec.Confidence,
		string(rec.RiskLevel), rec.Age, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save prediction: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first.
func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]domain.PredictionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, disease, symptoms, raw_probability, posterior, confidence, risk_level, age, created_at
		FROM predictions
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	var records []domain.PredictionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Count returns the total number of stored records.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM predictions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count predictions: %w", err)
	}
	return count, nil
}

// RiskLevelCounts returns per-level counts in ascending severity order.
func (s *PostgresStore) RiskLevelCounts(ctx context.Context) ([4]int, error) {
	var counts [4]int

	rows, err := s.db.QueryContext(ctx,
		"SELECT risk_level, COUNT(*) FROM predictions GROUP BY risk_level")
	if err != nil {
		return counts, fmt.Errorf("failed to count risk levels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var n int
		if err := rows.Scan(&level, &n); err != nil {
			return counts, err
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

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
