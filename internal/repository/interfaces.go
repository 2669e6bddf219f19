package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
)

type ProfileRepo interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

// HealthLogRepo stores one health log per profile and date. Upsert replaces
// the day's record. ListRecent returns the n most recent logs dated on or
// before the given date, most recent first.
type HealthLogRepo interface {
	Get(ctx context.Context, profileID string, date time.Time) (*domain.DailyHealthLog, error)
	Upsert(ctx context.Context, l *domain.DailyHealthLog) error
	ListRecent(ctx context.Context, profileID string, before time.Time, n int) ([]domain.DailyHealthLog, error)
}

type LooksLogRepo interface {
	Get(ctx context.Context, profileID string, date time.Time) (*domain.DailyLooksLog, error)
	Upsert(ctx context.Context, l *domain.DailyLooksLog) error
}

type RoutineLogRepo interface {
	Get(ctx context.Context, profileID string, date time.Time) (*domain.DailyRoutineLog, error)
	Upsert(ctx context.Context, l *domain.DailyRoutineLog) error
}

// WeightRepo is append-only; samples leave only through Purge.
type WeightRepo interface {
	Append(ctx context.Context, w *domain.WeightSample) error
	ListRecent(ctx context.Context, profileID string, n int) ([]domain.WeightSample, error)
	Purge(ctx context.Context, profileID string) (int64, error)
}

type CalibrationRepo interface {
	Get(ctx context.Context, profileID string) (*domain.CalibrationState, error)
	Save(ctx context.Context, s *domain.CalibrationState) error
}

// PlanSnapshot is a rendered plan persisted for a profile and date.
type PlanSnapshot struct {
	ID        string
	ProfileID string
	Date      time.Time
	Mode      domain.UserMode
	Payload   []byte
	CreatedAt time.Time
}

// PlanSnapshotRepo keeps the last computed plan per profile and date.
type PlanSnapshotRepo interface {
	Get(ctx context.Context, profileID string, date time.Time) (*PlanSnapshot, error)
	Put(ctx context.Context, s *PlanSnapshot) error
}
