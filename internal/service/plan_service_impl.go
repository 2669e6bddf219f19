package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/advisor"
	"github.com/alexanderramin/meridian/internal/app"
	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/repository"
	"golang.org/x/sync/singleflight"
)

// PlanRepos groups the storage the plan use case reads and writes.
type PlanRepos struct {
	Profiles     repository.ProfileRepo
	Health       repository.HealthLogRepo
	Looks        repository.LooksLogRepo
	Routine      repository.RoutineLogRepo
	Weights      repository.WeightRepo
	Calibrations repository.CalibrationRepo
	Snapshots    repository.PlanSnapshotRepo
}

type planService struct {
	repos         PlanRepos
	advisor       *advisor.Advisor
	weightSamples int
	observer      UseCaseObserver
	group         singleflight.Group
}

// NewPlanService builds the plan use case. weightSamples bounds the history
// used for stall detection; logger receives skipped-rule events.
func NewPlanService(repos PlanRepos, weightSamples int, logger *slog.Logger, observers ...UseCaseObserver) PlanService {
	if weightSamples <= 0 {
		weightSamples = domain.MaxCalibrationPoints
	}
	return &planService{
		repos:         repos,
		advisor:       advisor.New(advisor.WithLogger(logger)),
		weightSamples: weightSamples,
		observer:      useCaseObserverOrNoop(observers),
	}
}

// Generate computes the plan for one profile and day. Concurrent identical
// requests share one computation and one snapshot write.
func (s *planService) Generate(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	date := domain.TruncateDate(time.Now().UTC())
	if req.Date != nil {
		date = domain.TruncateDate(*req.Date)
	}
	mode := req.Mode
	if mode == "" {
		mode = domain.ModeNormal
	}
	fields := map[string]any{
		"profile_id": req.ProfileID,
		"date":       date.Format(domain.DateLayout),
		"mode":       string(mode),
	}
	defer observe(ctx, s.observer, "generate-plan", time.Now(), &err, fields)

	v, err, shared := s.group.Do(planKey(req, date, mode), func() (any, error) {
		return s.generate(ctx, req, date, mode)
	})
	fields["shared"] = shared
	if err != nil {
		return nil, err
	}
	resp = v.(*app.PlanResponse)
	fields["life_score"] = resp.Plan.LifeScore
	fields["explanations"] = len(resp.Plan.Explanations)
	return resp, nil
}

// planKey identifies requests that produce the same plan. Every request
// field that changes the result or its side effects is part of it; goals
// are compared as a set.
func planKey(req app.PlanRequest, date time.Time, mode domain.UserMode) string {
	window := req.WindowDays
	if window <= 0 {
		window = adaptation.DefaultWindow
	}
	goals := make([]string, len(req.Goals))
	for i, g := range req.Goals {
		goals[i] = string(g)
	}
	slices.Sort(goals)
	goals = slices.Compact(goals)

	return strings.Join([]string{
		req.ProfileID,
		date.Format(domain.DateLayout),
		string(mode),
		strings.Join(goals, ","),
		strconv.Itoa(window),
		strconv.FormatBool(req.Persist),
	}, "|")
}

func (s *planService) generate(ctx context.Context, req app.PlanRequest, date time.Time, mode domain.UserMode) (*app.PlanResponse, error) {
	profile, err := loadProfile(ctx, s.repos.Profiles, req.ProfileID)
	if err != nil {
		return nil, err
	}
	base, err := loadBaseline(ctx, profile, s.repos.Calibrations)
	if err != nil {
		return nil, err
	}

	health, err := optional(s.repos.Health.Get(ctx, profile.ID, date))
	if err != nil {
		return nil, fmt.Errorf("loading health log: %w", err)
	}
	looks, err := optional(s.repos.Looks.Get(ctx, profile.ID, date))
	if err != nil {
		return nil, fmt.Errorf("loading looks log: %w", err)
	}
	routine, err := optional(s.repos.Routine.Get(ctx, profile.ID, date))
	if err != nil {
		return nil, fmt.Errorf("loading routine log: %w", err)
	}

	window := req.WindowDays
	if window <= 0 {
		window = adaptation.DefaultWindow
	}
	recent, err := s.repos.Health.ListRecent(ctx, profile.ID, date, window)
	if err != nil {
		return nil, fmt.Errorf("loading recent health logs: %w", err)
	}
	weights, err := s.repos.Weights.ListRecent(ctx, profile.ID, s.weightSamples)
	if err != nil {
		return nil, fmt.Errorf("loading weight history: %w", err)
	}

	report := adaptation.BuildReport(adaptation.ReportInput{
		Profile:    *profile,
		Logs:       recent,
		Weights:    weights,
		WindowSize: window,
		Baseline:   base.baseline,
	})

	plan := s.advisor.Generate(advisor.PlanContext{
		Date:        date,
		Profile:     *profile,
		Health:      health,
		Looks:       looks,
		Routine:     routine,
		Trailing:    excludeDay(recent, date),
		Goals:       req.Goals,
		Mode:        mode,
		Baseline:    base.baseline,
		Adaptations: report.Adjustments,
	})
	for _, w := range report.Warnings {
		plan.Warnings = append(plan.Warnings, "adaptation: "+w)
	}

	if req.Persist {
		payload, err := contract.MarshalPlan(plan)
		if err != nil {
			return nil, &app.PlanError{Code: app.PlanErrInternal, Message: err.Error()}
		}
		snap := &repository.PlanSnapshot{
			ProfileID: profile.ID,
			Date:      date,
			Mode:      plan.Mode,
			Payload:   payload,
		}
		if err := s.repos.Snapshots.Put(ctx, snap); err != nil {
			return nil, fmt.Errorf("saving plan snapshot: %w", err)
		}
	}

	return &app.PlanResponse{
		ProfileID:  profile.ID,
		Plan:       plan,
		Targets:    base.targets,
		Baseline:   base.baseline,
		Calibrated: base.calibrated,
		Report:     report,
	}, nil
}

// excludeDay drops the log for date, leaving prior days most recent first.
func excludeDay(logs []domain.DailyHealthLog, date time.Time) []domain.DailyHealthLog {
	out := make([]domain.DailyHealthLog, 0, len(logs))
	for _, l := range logs {
		if !l.Date.Equal(date) {
			out = append(out, l)
		}
	}
	return out
}
