package service

import (
	"context"
	"time"

	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
)

type ProfileService interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
}

type LogService interface {
	LogHealth(ctx context.Context, l *domain.DailyHealthLog) error
	LogLooks(ctx context.Context, l *domain.DailyLooksLog) error
	LogRoutine(ctx context.Context, l *domain.DailyRoutineLog) error
	HealthLog(ctx context.Context, profileID string, date time.Time) (*domain.DailyHealthLog, error)
	AddWeight(ctx context.Context, w *domain.WeightSample) error
	ListWeights(ctx context.Context, profileID string, n int) ([]domain.WeightSample, error)
	PurgeWeights(ctx context.Context, profileID string) (int64, error)
}

type PlanService interface {
	Generate(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type AdaptationService interface {
	Report(ctx context.Context, req contract.AdaptationRequest) (*contract.AdaptationResponse, error)
}

type CalibrationService interface {
	Recalibrate(ctx context.Context, req contract.CalibrateRequest) (*contract.CalibrateResponse, error)
}
