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

// SQLiteLooksLogRepo implements LooksLogRepo using a SQLite database.
type SQLiteLooksLogRepo struct {
	db db.DBTX
}

// NewSQLiteLooksLogRepo creates a new SQLiteLooksLogRepo.
func NewSQLiteLooksLogRepo(conn db.DBTX) *SQLiteLooksLogRepo {
	return &SQLiteLooksLogRepo{db: conn}
}

func (r *SQLiteLooksLogRepo) Get(ctx context.Context, profileID string, date time.Time) (*domain.DailyLooksLog, error) {
	query := `SELECT profile_id, date, skincare_am, skincare_pm, skin_condition, hair_care, grooming_done, updated_at
		FROM looks_logs WHERE profile_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, profileID, formatDate(date))

	var l domain.DailyLooksLog
	var day, updatedAt string
	var am, pm, hair, grooming int
	var skin sql.NullInt64
	err := row.Scan(&l.ProfileID, &day, &am, &pm, &skin, &hair, &grooming, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("looks log %s: %w", formatDate(date), ErrNotFound)
		}
		return nil, fmt.Errorf("scanning looks log: %w", err)
	}
	if l.Date, err = parseDate(day); err != nil {
		return nil, err
	}
	l.SkincareAM = intToBool(am)
	l.SkincarePM = intToBool(pm)
	l.SkinCondition = intPtr(skin)
	l.HairCare = intToBool(hair)
	l.GroomingDone = intToBool(grooming)
	l.UpdatedAt = parseTimestamp(updatedAt)
	return &l, nil
}

func (r *SQLiteLooksLogRepo) Upsert(ctx context.Context, l *domain.DailyLooksLog) error {
	query := `INSERT OR REPLACE INTO looks_logs
		(profile_id, date, skincare_am, skincare_pm, skin_condition, hair_care, grooming_done, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ProfileID,
		formatDate(l.Date),
		boolToInt(l.SkincareAM),
		boolToInt(l.SkincarePM),
		nullableIntToValue(l.SkinCondition),
		boolToInt(l.HairCare),
		boolToInt(l.GroomingDone),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting looks log: %w", err)
	}
	return nil
}

// SQLiteRoutineLogRepo implements RoutineLogRepo using a SQLite database.
type SQLiteRoutineLogRepo struct {
	db db.DBTX
}

// NewSQLiteRoutineLogRepo creates a new SQLiteRoutineLogRepo.
func NewSQLiteRoutineLogRepo(conn db.DBTX) *SQLiteRoutineLogRepo {
	return &SQLiteRoutineLogRepo{db: conn}
}

func (r *SQLiteRoutineLogRepo) Get(ctx context.Context, profileID string, date time.Time) (*domain.DailyRoutineLog, error) {
	query := `SELECT profile_id, date, wake_time, bed_time, completion_pct, screen_time_min,
		focus_minutes, habits_done, habits_total, updated_at
		FROM routine_logs WHERE profile_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, profileID, formatDate(date))

	var l domain.DailyRoutineLog
	var day, updatedAt string
	var completion sql.NullFloat64
	var screen, focus sql.NullInt64
	err := row.Scan(&l.ProfileID, &day, &l.WakeTime, &l.BedTime, &completion, &screen,
		&focus, &l.HabitsDone, &l.HabitsTotal, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("routine log %s: %w", formatDate(date), ErrNotFound)
		}
		return nil, fmt.Errorf("scanning routine log: %w", err)
	}
	if l.Date, err = parseDate(day); err != nil {
		return nil, err
	}
	l.CompletionPct = floatPtr(completion)
	l.ScreenTimeMin = intPtr(screen)
	l.FocusMinutes = intPtr(focus)
	l.UpdatedAt = parseTimestamp(updatedAt)
	return &l, nil
}

func (r *SQLiteRoutineLogRepo) Upsert(ctx context.Context, l *domain.DailyRoutineLog) error {
	query := `INSERT OR REPLACE INTO routine_logs
		(profile_id, date, wake_time, bed_time, completion_pct, screen_time_min,
		 focus_minutes, habits_done, habits_total, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ProfileID,
		formatDate(l.Date),
		l.WakeTime,
		l.BedTime,
		nullableFloatToValue(l.CompletionPct),
		nullableIntToValue(l.ScreenTimeMin),
		nullableIntToValue(l.FocusMinutes),
		l.HabitsDone,
		l.HabitsTotal,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting routine log: %w", err)
	}
	return nil
}
