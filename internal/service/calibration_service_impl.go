package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/meridian/internal/app"
	"github.com/alexanderramin/meridian/internal/calibration"
	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/db"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/metrics"
	"github.com/alexanderramin/meridian/internal/repository"
)

type calibrationService struct {
	profiles     repository.ProfileRepo
	weights      repository.WeightRepo
	calibrations repository.CalibrationRepo
	uow          db.UnitOfWork
	observer     UseCaseObserver
}

func NewCalibrationService(
	profiles repository.ProfileRepo,
	weights repository.WeightRepo,
	calibrations repository.CalibrationRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CalibrationService {
	return &calibrationService{
		profiles:     profiles,
		weights:      weights,
		calibrations: calibrations,
		uow:          uow,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// Recalibrate fits the expenditure estimate to the recent weight history.
// A successful fit updates the rolling state, its point history and the
// profile's body weight in one transaction. An unsuccessful fit writes
// nothing.
func (s *calibrationService) Recalibrate(ctx context.Context, req contract.CalibrateRequest) (resp *contract.CalibrateResponse, err error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	n := req.Samples
	if n <= 0 {
		n = domain.MaxCalibrationPoints
	}
	fields := map[string]any{"profile_id": req.ProfileID, "samples": n}
	defer observe(ctx, s.observer, "recalibrate", time.Now(), &err, fields)

	profile, err := loadProfile(ctx, s.profiles, req.ProfileID)
	if err != nil {
		return nil, err
	}
	formula, ok := metrics.ComputeTargets(*profile)
	if !ok {
		return nil, &app.PlanError{Code: app.PlanErrInvalidProfile, Message: "cannot compute expenditure for this profile"}
	}

	state := domain.CalibrationState{ProfileID: profile.ID}
	existing, err := s.calibrations.Get(ctx, profile.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("loading calibration state: %w", err)
	default:
		state = *existing
	}

	samples, err := s.weights.ListRecent(ctx, profile.ID, n)
	if err != nil {
		return nil, fmt.Errorf("loading weight history: %w", err)
	}

	estimate := state.EstimateKcal
	if estimate <= 0 {
		estimate = float64(formula.TDEE)
	}
	result := calibration.CalibrateFromSamples(estimate, float64(profile.TargetDailyDeltaKcal), samples)
	fields["status"] = string(result.Status)

	resp = &app.CalibrateResponse{
		Result:      result,
		FormulaTDEE: formula.TDEE,
		Previous:    state,
		Current:     state,
	}
	if !result.OK() {
		return resp, nil
	}

	next := calibration.Apply(state, result, now)
	latest := samples[len(samples)-1]
	next.AppendPoint(domain.CalibrationPoint{
		Date:             latest.Date,
		WeightKG:         latest.WeightKG,
		TargetIntakeKcal: metrics.TargetsFromTDEE(*profile, float64(formula.BMR), estimate).CalorieTarget,
	})
	updated := *profile
	updated.WeightKG = latest.WeightKG

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProfileRepo(tx).Upsert(ctx, &updated); err != nil {
			return err
		}
		return repository.NewSQLiteCalibrationRepo(tx).Save(ctx, &next)
	})
	if err != nil {
		return nil, fmt.Errorf("saving calibration: %w", err)
	}

	fields["estimate_kcal"] = next.EstimateKcal
	resp.Current = next
	resp.Applied = true
	return resp, nil
}
