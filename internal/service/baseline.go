package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/app"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/metrics"
	"github.com/alexanderramin/meridian/internal/repository"
)

// dailyBaseline is the numeric starting point of one day: formula targets,
// replaced by the calibrated expenditure once one exists.
type dailyBaseline struct {
	targets    metrics.Targets
	baseline   adaptation.Baseline
	formula    metrics.Targets
	calibrated bool
}

func loadBaseline(ctx context.Context, p *domain.Profile, calibrations repository.CalibrationRepo) (dailyBaseline, error) {
	formula, ok := metrics.ComputeTargets(*p)
	if !ok {
		return dailyBaseline{}, &app.PlanError{
			Code:    app.PlanErrInvalidProfile,
			Message: fmt.Sprintf("cannot compute targets: activity level %q or body metrics invalid", p.ActivityLevel),
		}
	}
	b := dailyBaseline{targets: formula, formula: formula}

	state, err := calibrations.Get(ctx, p.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return dailyBaseline{}, fmt.Errorf("loading calibration state: %w", err)
	case state.EstimateKcal > 0:
		b.targets = metrics.TargetsFromTDEE(*p, float64(formula.BMR), state.EstimateKcal)
		b.calibrated = true
	}

	b.baseline = adaptation.Baseline{
		CalorieTarget:  b.targets.CalorieTarget,
		TDEE:           b.targets.TDEE,
		ProteinTargetG: b.targets.Macros.ProteinG,
	}
	return b, nil
}

// loadProfile maps a missing profile to a PlanError.
func loadProfile(ctx context.Context, profiles repository.ProfileRepo, id string) (*domain.Profile, error) {
	p, err := profiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.PlanErrProfileNotFound,
				Message: fmt.Sprintf("profile %q does not exist; run 'meridian profile init'", id),
			}
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}

// optional turns ErrNotFound into a nil record.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
