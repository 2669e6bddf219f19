package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is re-run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id                      TEXT PRIMARY KEY,
		sex                     TEXT NOT NULL CHECK(sex IN ('male','female')),
		age                     INTEGER NOT NULL,
		height_cm               REAL NOT NULL,
		weight_kg               REAL NOT NULL,
		activity_level          TEXT NOT NULL,
		goal                    TEXT NOT NULL
		                        CHECK(goal IN ('fat_loss','maintenance','muscle_gain')),
		diet                    TEXT NOT NULL DEFAULT '',
		job                     TEXT NOT NULL DEFAULT '',
		conditions              TEXT NOT NULL DEFAULT '',
		cycle_phase             TEXT NOT NULL DEFAULT '',
		target_daily_delta_kcal INTEGER NOT NULL DEFAULT 0,
		created_at              TEXT NOT NULL,
		updated_at              TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS health_logs (
		profile_id             TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		date                   TEXT NOT NULL,
		sleep_hours            REAL,
		sleep_quality          INTEGER,
		stress_level           INTEGER,
		mood                   INTEGER,
		energy                 INTEGER,
		soreness               INTEGER,
		water_liters           REAL,
		ill                    INTEGER NOT NULL DEFAULT 0,
		workout_done           INTEGER,
		workout_skipped        INTEGER NOT NULL DEFAULT 0,
		skip_reason            TEXT NOT NULL DEFAULT '',
		protein_completion_pct REAL,
		updated_at             TEXT NOT NULL,
		PRIMARY KEY (profile_id, date)
	)`,

	// Food plan compliance was added after the first release.
	`ALTER TABLE health_logs ADD COLUMN food_compliance_pct REAL`,

	`CREATE TABLE IF NOT EXISTS looks_logs (
		profile_id     TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		date           TEXT NOT NULL,
		skincare_am    INTEGER NOT NULL DEFAULT 0,
		skincare_pm    INTEGER NOT NULL DEFAULT 0,
		skin_condition INTEGER,
		hair_care      INTEGER NOT NULL DEFAULT 0,
		grooming_done  INTEGER NOT NULL DEFAULT 0,
		updated_at     TEXT NOT NULL,
		PRIMARY KEY (profile_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS routine_logs (
		profile_id      TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		date            TEXT NOT NULL,
		wake_time       TEXT NOT NULL DEFAULT '',
		bed_time        TEXT NOT NULL DEFAULT '',
		completion_pct  REAL,
		screen_time_min INTEGER,
		focus_minutes   INTEGER,
		habits_done     INTEGER NOT NULL DEFAULT 0,
		habits_total    INTEGER NOT NULL DEFAULT 0,
		updated_at      TEXT NOT NULL,
		PRIMARY KEY (profile_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS weight_samples (
		id           TEXT PRIMARY KEY,
		profile_id   TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		weight_kg    REAL NOT NULL,
		body_fat_pct REAL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_weight_samples_profile_date ON weight_samples(profile_id, date)`,

	`CREATE TABLE IF NOT EXISTS calibration_state (
		profile_id         TEXT PRIMARY KEY REFERENCES profiles(id) ON DELETE CASCADE,
		estimate_kcal      REAL NOT NULL DEFAULT 0,
		confidence         REAL NOT NULL DEFAULT 0,
		last_calibrated_at TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS calibration_points (
		profile_id         TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		seq                INTEGER NOT NULL,
		date               TEXT NOT NULL,
		weight_kg          REAL NOT NULL,
		target_intake_kcal INTEGER NOT NULL,
		PRIMARY KEY (profile_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_snapshots (
		id         TEXT NOT NULL UNIQUE,
		profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		date       TEXT NOT NULL,
		mode       TEXT NOT NULL,
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (profile_id, date)
	)`,
}
