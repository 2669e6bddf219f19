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

// SQLiteHealthLogRepo implements HealthLogRepo using a SQLite database.
type SQLiteHealthLogRepo struct {
	db db.DBTX
}

// NewSQLiteHealthLogRepo creates a new SQLiteHealthLogRepo.
func NewSQLiteHealthLogRepo(conn db.DBTX) *SQLiteHealthLogRepo {
	return &SQLiteHealthLogRepo{db: conn}
}

const healthLogColumns = `profile_id, date, sleep_hours, sleep_quality, stress_level, mood, energy,
	soreness, water_liters, ill, workout_done, workout_skipped, skip_reason,
	protein_completion_pct, food_compliance_pct, updated_at`

func (r *SQLiteHealthLogRepo) Get(ctx context.Context, profileID string, date time.Time) (*domain.DailyHealthLog, error) {
	query := `SELECT ` + healthLogColumns + ` FROM health_logs WHERE profile_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, profileID, formatDate(date))
	l, err := scanHealthLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("health log %s: %w", formatDate(date), ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}

func (r *SQLiteHealthLogRepo) Upsert(ctx context.Context, l *domain.DailyHealthLog) error {
	query := `INSERT OR REPLACE INTO health_logs (` + healthLogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ProfileID,
		formatDate(l.Date),
		nullableFloatToValue(l.SleepHours),
		nullableIntToValue(l.SleepQuality),
		nullableIntToValue(l.StressLevel),
		nullableIntToValue(l.Mood),
		nullableIntToValue(l.Energy),
		nullableIntToValue(l.Soreness),
		nullableFloatToValue(l.WaterLiters),
		boolToInt(l.Ill),
		nullableBoolToValue(l.WorkoutDone),
		boolToInt(l.WorkoutSkipped),
		string(l.SkipReason),
		nullableFloatToValue(l.ProteinCompletionPct),
		nullableFloatToValue(l.FoodCompliancePct),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting health log: %w", err)
	}
	return nil
}

func (r *SQLiteHealthLogRepo) ListRecent(ctx context.Context, profileID string, before time.Time, n int) ([]domain.DailyHealthLog, error) {
	query := `SELECT ` + healthLogColumns + ` FROM health_logs
		WHERE profile_id = ? AND date <= ?
		ORDER BY date DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, profileID, formatDate(before), n)
	if err != nil {
		return nil, fmt.Errorf("listing recent health logs: %w", err)
	}
	defer rows.Close()

	var out []domain.DailyHealthLog
	for rows.Next() {
		l, err := scanHealthLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating health logs: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHealthLog(row rowScanner) (*domain.DailyHealthLog, error) {
	var l domain.DailyHealthLog
	var date, updatedAt, skipReason string
	var sleep, water, protein, food sql.NullFloat64
	var quality, stress, mood, energy, soreness, workoutDone sql.NullInt64
	var ill, skipped int

	err := row.Scan(
		&l.ProfileID, &date, &sleep, &quality, &stress, &mood, &energy,
		&soreness, &water, &ill, &workoutDone, &skipped, &skipReason,
		&protein, &food, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning health log: %w", err)
	}

	if l.Date, err = parseDate(date); err != nil {
		return nil, err
	}
	l.SleepHours = floatPtr(sleep)
	l.SleepQuality = intPtr(quality)
	l.StressLevel = intPtr(stress)
	l.Mood = intPtr(mood)
	l.Energy = intPtr(energy)
	l.Soreness = intPtr(soreness)
	l.WaterLiters = floatPtr(water)
	l.Ill = intToBool(ill)
	l.WorkoutDone = boolPtr(workoutDone)
	l.WorkoutSkipped = intToBool(skipped)
	l.SkipReason = domain.SkipReason(skipReason)
	l.ProteinCompletionPct = floatPtr(protein)
	l.FoodCompliancePct = floatPtr(food)
	l.UpdatedAt = parseTimestamp(updatedAt)
	return &l, nil
}
