package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/disease-risk-server/internal/domain"
)

// SQLiteStore implements the Store interface using an embedded SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite prediction-history store.
// It creates the database file and schema if they don't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets dashboard reads proceed while predictions are being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// createSchema creates the database tables and indexes.
func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS predictions (
		id TEXT PRIMARY KEY,
		disease TEXT NOT NULL,
		symptoms TEXT NOT NULL DEFAULT '[]',
		raw_probability REAL NOT NULL,
		posterior REAL NOT NULL,
		confidence REAL NOT NULL,
		risk_level TEXT NOT NULL,
		age INTEGER,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_predictions_risk_level ON predictions(risk_level);
	CREATE INDEX IF NOT EXISTS idx_predictions_disease ON predictions(disease);
	CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// scanner is an interface for sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord scans a row into a PredictionRecord.
func scanRecord(s scanner) (*domain.PredictionRecord, error) {
	rec := &domain.PredictionRecord{}
	var symptomsJSON string
	var riskLevel string

	err := s.Scan(
		&rec.ID, &rec.Disease, &symptomsJSON,
		&rec.RawProbability, &rec.Posterior, &rec.Confidence,
		&riskLevel, &rec.Age, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(symptomsJSON), &rec.Symptoms); err != nil {
		return nil, fmt.Errorf("failed to decode symptoms: %w", err)
	}
	rec.RiskLevel = domain.RiskLevel(riskLevel)
	return rec, nil
}

// Save persists one prediction record, assigning an ID and timestamp when
// they are missing.
func (s *SQLiteStore) Save(ctx context.Context, rec *domain.PredictionRecord) error {
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
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
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]domain.PredictionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, disease, symptoms, raw_probability, posterior, confidence, risk_level, age, created_at
		FROM predictions
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`,
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
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM predictions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count predictions: %w", err)
	}
	return count, nil
}

// RiskLevelCounts returns per-level counts in ascending severity order.
func (s *SQLiteStore) RiskLevelCounts(ctx context.Context) ([4]int, error) {
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
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
