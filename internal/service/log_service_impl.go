package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/meridian/internal/app"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/repository"
)

type logService struct {
	profiles repository.ProfileRepo
	health   repository.HealthLogRepo
	looks    repository.LooksLogRepo
	routine  repository.RoutineLogRepo
	weights  repository.WeightRepo
	observer UseCaseObserver
}

func NewLogService(
	profiles repository.ProfileRepo,
	health repository.HealthLogRepo,
	looks repository.LooksLogRepo,
	routine repository.RoutineLogRepo,
	weights repository.WeightRepo,
	observers ...UseCaseObserver,
) LogService {
	return &logService{
		profiles: profiles,
		health:   health,
		looks:    looks,
		routine:  routine,
		weights:  weights,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *logService) LogHealth(ctx context.Context, l *domain.DailyHealthLog) (err error) {
	defer observe(ctx, s.observer, "log-health", time.Now(), &err, logFields(l.ProfileID, l.Date))
	l.Date = domain.TruncateDate(l.Date)
	if err = s.admit(ctx, l.ProfileID, l.Validate()); err != nil {
		return err
	}
	return s.health.Upsert(ctx, l)
}

func (s *logService) LogLooks(ctx context.Context, l *domain.DailyLooksLog) (err error) {
	defer observe(ctx, s.observer, "log-looks", time.Now(), &err, logFields(l.ProfileID, l.Date))
	l.Date = domain.TruncateDate(l.Date)
	if err = s.admit(ctx, l.ProfileID, l.Validate()); err != nil {
		return err
	}
	return s.looks.Upsert(ctx, l)
}

func (s *logService) LogRoutine(ctx context.Context, l *domain.DailyRoutineLog) (err error) {
	defer observe(ctx, s.observer, "log-routine", time.Now(), &err, logFields(l.ProfileID, l.Date))
	l.Date = domain.TruncateDate(l.Date)
	if err = s.admit(ctx, l.ProfileID, l.Validate()); err != nil {
		return err
	}
	return s.routine.Upsert(ctx, l)
}

func (s *logService) HealthLog(ctx context.Context, profileID string, date time.Time) (*domain.DailyHealthLog, error) {
	return s.health.Get(ctx, profileID, domain.TruncateDate(date))
}

func (s *logService) AddWeight(ctx context.Context, w *domain.WeightSample) (err error) {
	defer observe(ctx, s.observer, "add-weight", time.Now(), &err, logFields(w.ProfileID, w.Date))
	w.Date = domain.TruncateDate(w.Date)
	if err = s.admit(ctx, w.ProfileID, w.Validate()); err != nil {
		return err
	}
	return s.weights.Append(ctx, w)
}

func (s *logService) ListWeights(ctx context.Context, profileID string, n int) ([]domain.WeightSample, error) {
	if n <= 0 {
		n = domain.MaxCalibrationPoints
	}
	return s.weights.ListRecent(ctx, profileID, n)
}

func (s *logService) PurgeWeights(ctx context.Context, profileID string) (n int64, err error) {
	defer observe(ctx, s.observer, "purge-weights", time.Now(), &err, map[string]any{"profile_id": profileID})
	return s.weights.Purge(ctx, profileID)
}

// admit turns a validation failure or an unknown profile into a LogError.
func (s *logService) admit(ctx context.Context, profileID string, validationErr error) error {
	if validationErr != nil {
		return &app.LogError{Code: app.LogErrInvalid, Message: validationErr.Error()}
	}
	if _, err := s.profiles.Get(ctx, profileID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &app.LogError{Code: app.LogErrProfileNotFound, Message: fmt.Sprintf("profile %q does not exist", profileID)}
		}
		return fmt.Errorf("loading profile: %w", err)
	}
	return nil
}

func logFields(profileID string, date time.Time) map[string]any {
	return map[string]any{
		"profile_id": profileID,
		"date":       date.Format(domain.DateLayout),
	}
}
