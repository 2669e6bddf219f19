package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/meridian/internal/app"
	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/repository"
	"github.com/alexanderramin/meridian/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planRequest(mode domain.UserMode) contract.PlanRequest {
	req := contract.NewPlanRequest("p")
	day := testutil.Day
	req.Date = &day
	req.Mode = mode
	return req
}

func ruleIDs(resp *contract.PlanResponse) []string {
	ids := make([]string, len(resp.Plan.Explanations))
	for i, e := range resp.Plan.Explanations {
		ids[i] = e.RuleID
	}
	return ids
}

func TestPlanService_ProfileNotFound(t *testing.T) {
	r := newTestRepos(t)
	svc := NewPlanService(r.planRepos(), 0, nil)

	_, err := svc.Generate(context.Background(), planRequest(domain.ModeNormal))
	require.Error(t, err)
	var planErr *app.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, app.PlanErrProfileNotFound, planErr.Code)
}

func TestPlanService_NoLogsGivesModeDefaults(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	svc := NewPlanService(r.planRepos(), 0, nil)

	resp, err := svc.Generate(context.Background(), planRequest(domain.ModeNormal))
	require.NoError(t, err)

	assert.Empty(t, resp.Plan.Explanations)
	assert.Empty(t, resp.Plan.Warnings)
	assert.Equal(t, 0, resp.Plan.LifeScore)
	assert.Equal(t, 1.0, resp.Plan.Adjustments.WorkoutIntensity)
	assert.False(t, resp.Plan.Adjustments.RestDay)
	assert.Equal(t, 160.0, resp.Plan.Adjustments.ProteinTargetG)
	assert.Equal(t, 2759, resp.Baseline.TDEE)
	assert.Equal(t, 2259, resp.Baseline.CalorieTarget)
	assert.False(t, resp.Calibrated)
	require.NotNil(t, resp.Report)
	assert.True(t, resp.Report.InsufficientData)
}

func TestPlanService_CriticalSleepOnMuscleGain(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t, testutil.WithGoal(domain.GoalMuscleGain, 300))
	r.seedHealth(t, testutil.NewTestHealthLog("p", testutil.Day, testutil.WithSleep(3), testutil.WithEnergy(8)))
	svc := NewPlanService(r.planRepos(), 0, nil)

	resp, err := svc.Generate(context.Background(), planRequest(domain.ModeNormal))
	require.NoError(t, err)

	adj := resp.Plan.Adjustments
	assert.True(t, adj.RestDay)
	assert.Zero(t, adj.WorkoutIntensity)
	assert.False(t, adj.ProgressiveOverload, "overload never survives a rest day")
	ids := ruleIDs(resp)
	require.NotEmpty(t, ids)
	assert.Equal(t, "critical_sleep", ids[0])
	assert.Contains(t, ids, "muscle_gain_protein")
}

func TestPlanService_TrailingSkipStreak(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	for i := 1; i <= 3; i++ {
		r.seedHealth(t, testutil.NewTestHealthLog("p", testutil.Day.AddDate(0, 0, -i), testutil.WithSkip(domain.SkipBusy)))
	}
	svc := NewPlanService(r.planRepos(), 0, nil)

	resp, err := svc.Generate(context.Background(), planRequest(domain.ModeNormal))
	require.NoError(t, err)

	assert.Contains(t, ruleIDs(resp), "skip_streak")
	assert.Equal(t, domain.RoutineReduced, resp.Plan.Adjustments.RoutineLevel)
	require.NotNil(t, resp.Report.Summary)
	assert.Equal(t, 3, resp.Report.Summary.ConsecutiveSkips)
}

func TestPlanService_SickMode(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	svc := NewPlanService(r.planRepos(), 0, nil)

	resp, err := svc.Generate(context.Background(), planRequest(domain.ModeSick))
	require.NoError(t, err)

	assert.Equal(t, domain.ModeSick, resp.Plan.Mode)
	assert.True(t, resp.Plan.Adjustments.RestDay)
	assert.False(t, resp.Plan.Adjustments.NotificationsEnabled)
	require.NotEmpty(t, resp.Plan.Explanations)
	assert.Equal(t, "mode_sick", resp.Plan.Explanations[0].RuleID)
}

func TestPlanService_UnknownModeFallsBack(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	svc := NewPlanService(r.planRepos(), 0, nil)

	resp, err := svc.Generate(context.Background(), planRequest("vacation"))
	require.NoError(t, err)
	assert.Equal(t, domain.ModeNormal, resp.Plan.Mode)
	require.Len(t, resp.Plan.Warnings, 1)
	assert.Contains(t, resp.Plan.Warnings[0], "unknown mode")
}

func TestPlanService_UsesCalibratedEstimate(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	require.NoError(t, r.calibrations.Save(context.Background(), &domain.CalibrationState{
		ProfileID: "p", EstimateKcal: 2500, Confidence: 0.5,
	}))
	svc := NewPlanService(r.planRepos(), 0, nil)

	resp, err := svc.Generate(context.Background(), planRequest(domain.ModeNormal))
	require.NoError(t, err)
	assert.True(t, resp.Calibrated)
	assert.Equal(t, 2500, resp.Baseline.TDEE)
	assert.Equal(t, 2000, resp.Baseline.CalorieTarget)
	assert.Equal(t, 1780, resp.Targets.BMR)
}

func TestPlanService_PersistsSnapshot(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	r.seedHealth(t, testutil.NewTestHealthLog("p", testutil.Day, testutil.WithSleep(5)))
	svc := NewPlanService(r.planRepos(), 0, nil)
	ctx := context.Background()

	resp, err := svc.Generate(ctx, planRequest(domain.ModeExam))
	require.NoError(t, err)

	snap, err := r.snapshots.Get(ctx, "p", testutil.Day)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeExam, snap.Mode)
	want, err := contract.MarshalPlan(resp.Plan)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(snap.Payload))
}

func TestPlanService_NoPersist(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	svc := NewPlanService(r.planRepos(), 0, nil)
	ctx := context.Background()

	req := planRequest(domain.ModeNormal)
	req.Persist = false
	_, err := svc.Generate(ctx, req)
	require.NoError(t, err)

	_, err = r.snapshots.Get(ctx, "p", testutil.Day)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanService_RepeatedOutputIsIdentical(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t, testutil.WithConditions(domain.ConditionHypertension), testutil.WithJob(domain.JobDesk))
	r.seedHealth(t, testutil.NewTestHealthLog("p", testutil.Day, testutil.WithSleep(5), testutil.WithStress(8), testutil.WithWater(1)))
	svc := NewPlanService(r.planRepos(), 0, nil)
	ctx := context.Background()

	first, err := svc.Generate(ctx, planRequest(domain.ModeNormal))
	require.NoError(t, err)
	second, err := svc.Generate(ctx, planRequest(domain.ModeNormal))
	require.NoError(t, err)

	a, err := contract.MarshalPlan(first.Plan)
	require.NoError(t, err)
	b, err := contract.MarshalPlan(second.Plan)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestPlanService_ConcurrentRequestsWriteOneSnapshot(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	r.seedHealth(t, testutil.NewTestHealthLog("p", testutil.Day, testutil.WithSleep(7)))
	svc := NewPlanService(r.planRepos(), 0, nil)
	ctx := context.Background()

	const callers = 8
	var wg sync.WaitGroup
	scores := make([]int, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.Generate(ctx, planRequest(domain.ModeNormal))
			errs[i] = err
			if err == nil {
				scores[i] = resp.Plan.LifeScore
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, scores[0], scores[i])
	}
	var count int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM plan_snapshots`).Scan(&count))
	assert.Equal(t, 1, count)
}

// gatedProfiles holds every Get until release is closed, so concurrent
// Generate calls are guaranteed to overlap.
type gatedProfiles struct {
	repository.ProfileRepo
	entered chan struct{}
	release chan struct{}
}

func newGatedProfiles(inner repository.ProfileRepo) *gatedProfiles {
	return &gatedProfiles{ProfileRepo: inner, entered: make(chan struct{}, 8), release: make(chan struct{})}
}

func (g *gatedProfiles) Get(ctx context.Context, id string) (*domain.Profile, error) {
	g.entered <- struct{}{}
	<-g.release
	return g.ProfileRepo.Get(ctx, id)
}

// runOverlapping starts both requests, waits until each has reached the
// profile read and then lets them finish together.
func runOverlapping(t *testing.T, svc PlanService, gate *gatedProfiles, a, b contract.PlanRequest) (*contract.PlanResponse, *contract.PlanResponse) {
	t.Helper()
	ctx := context.Background()
	var (
		wg           sync.WaitGroup
		respA, respB *contract.PlanResponse
		errA, errB   error
	)
	wg.Add(2)
	go func() { defer wg.Done(); respA, errA = svc.Generate(ctx, a) }()
	go func() { defer wg.Done(); respB, errB = svc.Generate(ctx, b) }()

	entered := 0
	timeout := time.After(2 * time.Second)
	for entered < 2 {
		select {
		case <-gate.entered:
			entered++
		case <-timeout:
			close(gate.release)
			wg.Wait()
			t.Fatalf("only %d of 2 requests computed a plan; the other joined a different request", entered)
		}
	}
	close(gate.release)
	wg.Wait()

	require.NoError(t, errA)
	require.NoError(t, errB)
	return respA, respB
}

func TestPlanService_ConcurrentRequestsWithDifferentGoalsAreNotShared(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	r.seedHealth(t, testutil.NewTestHealthLog("p", testutil.Day, testutil.WithSleep(7)))
	repos := r.planRepos()
	gate := newGatedProfiles(repos.Profiles)
	repos.Profiles = gate
	svc := NewPlanService(repos, 0, nil)

	plain := planRequest(domain.ModeNormal)
	withGoal := planRequest(domain.ModeNormal)
	withGoal.Goals = []domain.GoalType{domain.GoalMuscleGain}

	respA, respB := runOverlapping(t, svc, gate, plain, withGoal)
	assert.NotContains(t, ruleIDs(respA), "muscle_gain_protein")
	assert.Contains(t, ruleIDs(respB), "muscle_gain_protein")
}

func TestPlanService_PersistingRequestDoesNotJoinDryRun(t *testing.T) {
	r := newTestRepos(t)
	r.seedProfile(t)
	repos := r.planRepos()
	gate := newGatedProfiles(repos.Profiles)
	repos.Profiles = gate
	svc := NewPlanService(repos, 0, nil)

	dryRun := planRequest(domain.ModeNormal)
	dryRun.Persist = false
	persist := planRequest(domain.ModeNormal)

	runOverlapping(t, svc, gate, dryRun, persist)

	var count int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM plan_snapshots`).Scan(&count))
	assert.Equal(t, 1, count, "the persisting request writes its snapshot")
}

func TestPlanKey(t *testing.T) {
	day := testutil.Day
	base := planRequest(domain.ModeNormal)

	reordered := base
	reordered.Goals = []domain.GoalType{domain.GoalMuscleGain, domain.GoalFatLoss}
	swapped := base
	swapped.Goals = []domain.GoalType{domain.GoalFatLoss, domain.GoalMuscleGain, domain.GoalFatLoss}
	assert.Equal(t, planKey(reordered, day, domain.ModeNormal), planKey(swapped, day, domain.ModeNormal))

	defaulted := base
	defaulted.WindowDays = 0
	assert.Equal(t, planKey(base, day, domain.ModeNormal), planKey(defaulted, day, domain.ModeNormal))

	wider := base
	wider.WindowDays = 14
	dry := base
	dry.Persist = false
	key := planKey(base, day, domain.ModeNormal)
	assert.NotEqual(t, key, planKey(reordered, day, domain.ModeNormal))
	assert.NotEqual(t, key, planKey(wider, day, domain.ModeNormal))
	assert.NotEqual(t, key, planKey(dry, day, domain.ModeNormal))
	assert.NotEqual(t, key, planKey(base, day, domain.ModeExam))
	assert.NotEqual(t, key, planKey(base, day.AddDate(0, 0, 1), domain.ModeNormal))
}
