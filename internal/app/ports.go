package app

import (
	"context"
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
)

type PlanUseCase interface {
	Generate(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

type AdaptationUseCase interface {
	Report(ctx context.Context, req AdaptationRequest) (*AdaptationResponse, error)
}

type CalibrateUseCase interface {
	Recalibrate(ctx context.Context, req CalibrateRequest) (*CalibrateResponse, error)
}

type ProfileUseCase interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
}

type LogUseCase interface {
	LogHealth(ctx context.Context, l *domain.DailyHealthLog) error
	LogLooks(ctx context.Context, l *domain.DailyLooksLog) error
	LogRoutine(ctx context.Context, l *domain.DailyRoutineLog) error
	AddWeight(ctx context.Context, w *domain.WeightSample) error
	ListWeights(ctx context.Context, profileID string, n int) ([]domain.WeightSample, error)
	PurgeWeights(ctx context.Context, profileID string) (int64, error)
	HealthLog(ctx context.Context, profileID string, date time.Time) (*domain.DailyHealthLog, error)
}
