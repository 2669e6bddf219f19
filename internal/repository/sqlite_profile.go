package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/meridian/internal/db"
	"github.com/alexanderramin/meridian/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, sex, age, height_cm, weight_kg, activity_level, goal, diet, job,
		conditions, cycle_phase, target_daily_delta_kcal, created_at, updated_at
		FROM profiles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var p domain.Profile
	var conditions, createdAt, updatedAt string
	err := row.Scan(
		&p.ID,
		&p.Sex,
		&p.Age,
		&p.HeightCM,
		&p.WeightKG,
		&p.ActivityLevel,
		&p.Goal,
		&p.Diet,
		&p.Job,
		&conditions,
		&p.CyclePhase,
		&p.TargetDailyDeltaKcal,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.Conditions = splitConditions(conditions)
	p.CreatedAt = parseTimestamp(createdAt)
	p.UpdatedAt = parseTimestamp(updatedAt)
	return &p, nil
}

// Upsert inserts the profile or replaces every editable field, keeping the
// original creation time.
func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO profiles (id, sex, age, height_cm, weight_kg, activity_level, goal, diet, job,
		conditions, cycle_phase, target_daily_delta_kcal, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			sex = excluded.sex,
			age = excluded.age,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			activity_level = excluded.activity_level,
			goal = excluded.goal,
			diet = excluded.diet,
			job = excluded.job,
			conditions = excluded.conditions,
			cycle_phase = excluded.cycle_phase,
			target_daily_delta_kcal = excluded.target_daily_delta_kcal,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Sex,
		p.Age,
		p.HeightCM,
		p.WeightKG,
		p.ActivityLevel,
		p.Goal,
		p.Diet,
		p.Job,
		joinConditions(p.Conditions),
		p.CyclePhase,
		p.TargetDailyDeltaKcal,
		p.CreatedAt.UTC().Format(time.RFC3339),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func joinConditions(cs []domain.Condition) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func splitConditions(s string) []domain.Condition {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.Condition, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, domain.Condition(p))
		}
	}
	return out
}
