package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/app"
	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/repository"
)

type adaptationService struct {
	profiles      repository.ProfileRepo
	health        repository.HealthLogRepo
	weights       repository.WeightRepo
	calibrations  repository.CalibrationRepo
	safety        adaptation.SafetyValidator
	weightSamples int
	observer      UseCaseObserver
}

// NewAdaptationService builds the report use case. A nil safety validator
// uses the default bounds.
func NewAdaptationService(
	profiles repository.ProfileRepo,
	health repository.HealthLogRepo,
	weights repository.WeightRepo,
	calibrations repository.CalibrationRepo,
	safety adaptation.SafetyValidator,
	weightSamples int,
	observers ...UseCaseObserver,
) AdaptationService {
	if weightSamples <= 0 {
		weightSamples = domain.MaxCalibrationPoints
	}
	return &adaptationService{
		profiles:      profiles,
		health:        health,
		weights:       weights,
		calibrations:  calibrations,
		safety:        safety,
		weightSamples: weightSamples,
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *adaptationService) Report(ctx context.Context, req contract.AdaptationRequest) (resp *contract.AdaptationResponse, err error) {
	date := domain.TruncateDate(time.Now().UTC())
	if req.Date != nil {
		date = domain.TruncateDate(*req.Date)
	}
	window := req.WindowDays
	if window <= 0 {
		window = adaptation.DefaultWindow
	}
	fields := map[string]any{"profile_id": req.ProfileID, "window": window}
	defer observe(ctx, s.observer, "adaptation-report", time.Now(), &err, fields)

	profile, err := loadProfile(ctx, s.profiles, req.ProfileID)
	if err != nil {
		return nil, err
	}
	base, err := loadBaseline(ctx, profile, s.calibrations)
	if err != nil {
		return nil, err
	}
	logs, err := s.health.ListRecent(ctx, profile.ID, date, window)
	if err != nil {
		return nil, fmt.Errorf("loading recent health logs: %w", err)
	}
	weights, err := s.weights.ListRecent(ctx, profile.ID, s.weightSamples)
	if err != nil {
		return nil, fmt.Errorf("loading weight history: %w", err)
	}

	report := adaptation.BuildReport(adaptation.ReportInput{
		Profile:    *profile,
		Logs:       logs,
		Weights:    weights,
		WindowSize: window,
		Baseline:   base.baseline,
		Safety:     s.safety,
	})
	fields["adjustments"] = len(report.Adjustments)
	fields["insufficient_data"] = report.InsufficientData

	return &app.AdaptationResponse{
		ProfileID: profile.ID,
		Date:      date,
		Baseline:  base.baseline,
		Report:    report,
	}, nil
}
