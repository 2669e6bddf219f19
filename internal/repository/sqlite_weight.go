package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/meridian/internal/db"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/google/uuid"
)

// SQLiteWeightRepo implements WeightRepo using a SQLite database.
type SQLiteWeightRepo struct {
	db db.DBTX
}

// NewSQLiteWeightRepo creates a new SQLiteWeightRepo.
func NewSQLiteWeightRepo(conn db.DBTX) *SQLiteWeightRepo {
	return &SQLiteWeightRepo{db: conn}
}

// Append stores a new sample, assigning an ID and creation time when unset.
func (r *SQLiteWeightRepo) Append(ctx context.Context, w *domain.WeightSample) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO weight_samples (id, profile_id, date, weight_kg, body_fat_pct, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.ProfileID,
		formatDate(w.Date),
		w.WeightKG,
		nullableFloatToValue(w.BodyFatPct),
		w.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending weight sample: %w", err)
	}
	return nil
}

// ListRecent returns the n most recent samples, oldest first.
func (r *SQLiteWeightRepo) ListRecent(ctx context.Context, profileID string, n int) ([]domain.WeightSample, error) {
	query := `SELECT id, profile_id, date, weight_kg, body_fat_pct, created_at
		FROM weight_samples
		WHERE profile_id = ?
		ORDER BY date DESC, created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, profileID, n)
	if err != nil {
		return nil, fmt.Errorf("listing weight samples: %w", err)
	}
	defer rows.Close()

	var out []domain.WeightSample
	for rows.Next() {
		var w domain.WeightSample
		var date, createdAt string
		var bodyFat sql.NullFloat64
		if err := rows.Scan(&w.ID, &w.ProfileID, &date, &w.WeightKG, &bodyFat, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning weight sample: %w", err)
		}
		if w.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		w.BodyFatPct = floatPtr(bodyFat)
		w.CreatedAt = parseTimestamp(createdAt)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weight samples: %w", err)
	}
	return domain.SortSamplesByDate(out), nil
}

// Purge deletes every sample for the profile and reports how many were removed.
func (r *SQLiteWeightRepo) Purge(ctx context.Context, profileID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM weight_samples WHERE profile_id = ?`, profileID)
	if err != nil {
		return 0, fmt.Errorf("purging weight samples: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purging weight samples: %w", err)
	}
	return n, nil
}
