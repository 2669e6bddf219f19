package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/meridian/internal/db"
	"github.com/alexanderramin/meridian/internal/domain"
)

// SQLiteCalibrationRepo implements CalibrationRepo using a SQLite database.
type SQLiteCalibrationRepo struct {
	db db.DBTX
}

// NewSQLiteCalibrationRepo creates a new SQLiteCalibrationRepo.
func NewSQLiteCalibrationRepo(conn db.DBTX) *SQLiteCalibrationRepo {
	return &SQLiteCalibrationRepo{db: conn}
}

func (r *SQLiteCalibrationRepo) Get(ctx context.Context, profileID string) (*domain.CalibrationState, error) {
	query := `SELECT profile_id, estimate_kcal, confidence, last_calibrated_at
		FROM calibration_state WHERE profile_id = ?`
	row := r.db.QueryRowContext(ctx, query, profileID)

	var s domain.CalibrationState
	var last sql.NullString
	if err := row.Scan(&s.ProfileID, &s.EstimateKcal, &s.Confidence, &last); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("calibration state %s: %w", profileID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning calibration state: %w", err)
	}
	s.LastCalibratedAt = parseNullableTime(last, time.RFC3339)

	points, err := r.listPoints(ctx, profileID)
	if err != nil {
		return nil, err
	}
	s.Points = points
	return &s, nil
}

func (r *SQLiteCalibrationRepo) listPoints(ctx context.Context, profileID string) ([]domain.CalibrationPoint, error) {
	query := `SELECT date, weight_kg, target_intake_kcal
		FROM calibration_points WHERE profile_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing calibration points: %w", err)
	}
	defer rows.Close()

	var out []domain.CalibrationPoint
	for rows.Next() {
		var p domain.CalibrationPoint
		var date string
		if err := rows.Scan(&date, &p.WeightKG, &p.TargetIntakeKcal); err != nil {
			return nil, fmt.Errorf("scanning calibration point: %w", err)
		}
		if p.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calibration points: %w", err)
	}
	return out, nil
}

// Save writes the state and replaces its point history. Callers that need
// both writes to land together run Save inside a unit of work.
func (r *SQLiteCalibrationRepo) Save(ctx context.Context, s *domain.CalibrationState) error {
	query := `INSERT OR REPLACE INTO calibration_state (profile_id, estimate_kcal, confidence, last_calibrated_at)
		VALUES (?, ?, ?, ?)`
	var last *time.Time
	if s.LastCalibratedAt != nil {
		t := s.LastCalibratedAt.UTC()
		last = &t
	}
	if _, err := r.db.ExecContext(ctx, query,
		s.ProfileID,
		s.EstimateKcal,
		s.Confidence,
		nullableTimeToString(last, time.RFC3339),
	); err != nil {
		return fmt.Errorf("saving calibration state: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM calibration_points WHERE profile_id = ?`, s.ProfileID); err != nil {
		return fmt.Errorf("clearing calibration points: %w", err)
	}
	for i, p := range s.Points {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO calibration_points (profile_id, seq, date, weight_kg, target_intake_kcal)
			VALUES (?, ?, ?, ?, ?)`,
			s.ProfileID, i, formatDate(p.Date), p.WeightKG, p.TargetIntakeKcal,
		); err != nil {
			return fmt.Errorf("saving calibration point %d: %w", i, err)
		}
	}
	return nil
}
