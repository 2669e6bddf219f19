package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/meridian/internal/db"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/google/uuid"
)

// SQLitePlanSnapshotRepo implements PlanSnapshotRepo using a SQLite database.
type SQLitePlanSnapshotRepo struct {
	db db.DBTX
}

// NewSQLitePlanSnapshotRepo creates a new SQLitePlanSnapshotRepo.
func NewSQLitePlanSnapshotRepo(conn db.DBTX) *SQLitePlanSnapshotRepo {
	return &SQLitePlanSnapshotRepo{db: conn}
}

func (r *SQLitePlanSnapshotRepo) Get(ctx context.Context, profileID string, date time.Time) (*PlanSnapshot, error) {
	query := `SELECT id, profile_id, date, mode, payload, created_at
		FROM plan_snapshots WHERE profile_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, profileID, formatDate(date))

	var s PlanSnapshot
	var day, mode, payload, createdAt string
	if err := row.Scan(&s.ID, &s.ProfileID, &day, &mode, &payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan snapshot %s: %w", formatDate(date), ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan snapshot: %w", err)
	}
	var err error
	if s.Date, err = parseDate(day); err != nil {
		return nil, err
	}
	s.Mode = domain.UserMode(mode)
	s.Payload = []byte(payload)
	s.CreatedAt = parseTimestamp(createdAt)
	return &s, nil
}

// Put replaces the snapshot for the profile and date.
func (r *SQLitePlanSnapshotRepo) Put(ctx context.Context, s *PlanSnapshot) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	query := `INSERT OR REPLACE INTO plan_snapshots (id, profile_id, date, mode, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProfileID,
		formatDate(s.Date),
		string(s.Mode),
		string(s.Payload),
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving plan snapshot: %w", err)
	}
	return nil
}
