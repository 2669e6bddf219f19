package advisor

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planDate = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

// quietProfile matches no profile-driven rule.
func quietProfile() domain.Profile {
	return domain.Profile{
		ID: "p", Sex: domain.SexFemale, Age: 30, HeightCM: 165, WeightKG: 60,
		ActivityLevel: domain.ActivityModerate, Goal: domain.GoalMaintenance,
		Job: domain.JobActive,
	}
}

func ruleIDs(p Plan) []string {
	ids := make([]string, len(p.Explanations))
	for i, e := range p.Explanations {
		ids[i] = e.RuleID
	}
	return ids
}

func TestGeneratePlan_NoMatchReturnsModeDefaults(t *testing.T) {
	for mode := range domain.ValidModes {
		t.Run(string(mode), func(t *testing.T) {
			plan := GeneratePlan(PlanContext{Date: planDate, Profile: quietProfile(), Mode: mode}, DefaultScorers())

			want := modeTable[mode].apply(defaultAdjustments())
			assert.Equal(t, want, plan.Adjustments)
			assert.Empty(t, plan.Warnings)
			if mode == domain.ModeNormal {
				assert.Empty(t, plan.Explanations)
				return
			}
			require.Len(t, plan.Explanations, 1)
			assert.Equal(t, "mode_"+string(mode), plan.Explanations[0].RuleID)
			assert.Equal(t, PriorityMode, plan.Explanations[0].Priority)
		})
	}
}

func TestGeneratePlan_EmptyModeIsNormal(t *testing.T) {
	plan := GeneratePlan(PlanContext{Profile: quietProfile()}, DefaultScorers())
	assert.Equal(t, domain.ModeNormal, plan.Mode)
	assert.Equal(t, defaultAdjustments(), plan.Adjustments)
}

func TestGeneratePlan_UnknownModeFallsBackWithWarning(t *testing.T) {
	plan := GeneratePlan(PlanContext{Profile: quietProfile(), Mode: "holiday"}, DefaultScorers())
	assert.Equal(t, domain.ModeNormal, plan.Mode)
	require.Len(t, plan.Warnings, 1)
	assert.Contains(t, plan.Warnings[0], "holiday")
}

func TestGeneratePlan_SickModeDisablesNotifications(t *testing.T) {
	plan := GeneratePlan(PlanContext{Profile: quietProfile(), Mode: domain.ModeSick}, DefaultScorers())
	assert.True(t, plan.Adjustments.RestDay)
	assert.Zero(t, plan.Adjustments.WorkoutIntensity)
	assert.False(t, plan.Adjustments.NotificationsEnabled)
}

func TestGeneratePlan_CriticalSleepOverridesMuscleGain(t *testing.T) {
	p := quietProfile()
	p.Goal = domain.GoalMuscleGain
	plan := GeneratePlan(PlanContext{
		Date:    planDate,
		Profile: p,
		Health:  &domain.DailyHealthLog{SleepHours: domain.Ptr(3.0), Energy: domain.Ptr(8)},
	}, DefaultScorers())

	assert.True(t, plan.Adjustments.RestDay)
	assert.Zero(t, plan.Adjustments.WorkoutIntensity)
	assert.False(t, plan.Adjustments.ProgressiveOverload, "rest day disables overload")

	require.NotEmpty(t, plan.Explanations)
	first := plan.Explanations[0]
	assert.Equal(t, "critical_sleep", first.RuleID)
	assert.Equal(t, "Critical sleep deprivation", first.Reason)
	assert.Equal(t, PrioritySafety, first.Priority)
	assert.Contains(t, ruleIDs(plan), "muscle_gain_overload", "the rule still fires; the conflict pass wins")
}

func TestGeneratePlan_LowSleepWithoutStress(t *testing.T) {
	plan := GeneratePlan(PlanContext{
		Date:    planDate,
		Profile: quietProfile(),
		Health:  &domain.DailyHealthLog{SleepHours: domain.Ptr(5.0)},
	}, DefaultScorers())

	assert.Equal(t, 0.7, plan.Adjustments.WorkoutIntensity)
	assert.True(t, plan.Adjustments.AddRecoveryFocus)
	assert.False(t, plan.Adjustments.RestDay)
	assert.Equal(t, []string{"low_sleep"}, ruleIDs(plan))
	assert.Empty(t, plan.Warnings)
}

func TestGeneratePlan_ExplanationsSortedWithDeclarationTieBreak(t *testing.T) {
	p := quietProfile()
	p.Conditions = []domain.Condition{domain.ConditionHypertension, domain.ConditionHeartCondition}
	p.Job = domain.JobDesk
	plan := GeneratePlan(PlanContext{
		Date:    planDate,
		Profile: p,
		Health:  &domain.DailyHealthLog{StressLevel: domain.Ptr(8)},
		Routine: &domain.DailyRoutineLog{ScreenTimeMin: domain.Ptr(300)},
	}, DefaultScorers())

	assert.Equal(t, []string{
		"heart_condition_cap",
		"hypertension_stress",
		"high_stress",
		"stress_caffeine",
		"desk_job_mobility",
		"screen_time",
	}, ruleIDs(plan))
	// cap 0.6, cap 0.5, then x0.8
	assert.Equal(t, 0.4, plan.Adjustments.WorkoutIntensity)
}

func TestGenerate_CustomTableSortsStably(t *testing.T) {
	always := func(*PlanContext) (bool, error) { return true, nil }
	same := func(a Adjustments, _ *PlanContext) Adjustments { return a }
	a := New(WithRules([]Rule{
		{ID: "b", Priority: PriorityRecovery, Predicate: always, Effect: same, Explain: message("b")},
		{ID: "a", Priority: PrioritySafety, Predicate: always, Effect: same, Explain: message("a")},
		{ID: "c", Priority: PriorityRecovery, Predicate: always, Effect: same, Explain: message("c")},
		{ID: "d", Priority: PrioritySafety, Predicate: always, Effect: same, Explain: message("d")},
	}))
	plan := a.Generate(PlanContext{Profile: quietProfile()})
	assert.Equal(t, []string{"a", "d", "b", "c"}, ruleIDs(plan))
}

func TestWithRules_EmptyTablePanics(t *testing.T) {
	assert.Panics(t, func() { New(WithRules(nil)) })
}

func TestRules_TableIsSortedByTier(t *testing.T) {
	rs := Rules()
	require.Len(t, rs, len(ruleTable))
	for i := 1; i < len(rs); i++ {
		assert.LessOrEqual(t, rs[i-1].Priority, rs[i].Priority)
	}
	seen := map[string]bool{}
	for _, r := range rs {
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
		assert.NotNil(t, r.Predicate, r.ID)
		assert.NotNil(t, r.Effect, r.ID)
		assert.NotNil(t, r.Explain, r.ID)
	}
}

func TestGenerate_MalformedFieldSkipsRuleAndWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	plan := New(WithLogger(logger)).Generate(PlanContext{
		Date:    planDate,
		Profile: quietProfile(),
		Health:  &domain.DailyHealthLog{SleepHours: domain.Ptr(30.0), StressLevel: domain.Ptr(9)},
	})

	assert.Contains(t, plan.Warnings, "rule critical_sleep skipped: sleep_hours out of range [0, 24]: 30")
	assert.Contains(t, plan.Warnings, "rule low_sleep skipped: sleep_hours out of range [0, 24]: 30")
	assert.Contains(t, ruleIDs(plan), "high_stress", "other rules still run")
	assert.Contains(t, buf.String(), "rule_skipped")
	assert.Contains(t, buf.String(), "rule_id=critical_sleep")
}

func TestGenerate_PanickingRuleIsRecovered(t *testing.T) {
	boom := Rule{
		ID: "boom", Priority: PrioritySafety, Reason: "boom",
		Predicate: func(c *PlanContext) (bool, error) { return *c.Health.SleepHours < 4, nil },
		Effect:    func(a Adjustments, _ *PlanContext) Adjustments { return a },
		Explain:   message("boom"),
	}
	rest := Rule{
		ID: "rest", Priority: PriorityRecovery, Reason: "rest",
		Predicate: func(*PlanContext) (bool, error) { return true, nil },
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.WorkoutIntensity = 0.5
			return a
		},
		Explain: message("rest"),
	}

	var plan Plan
	require.NotPanics(t, func() {
		plan = New(WithRules([]Rule{boom, rest})).Generate(PlanContext{Profile: quietProfile()})
	})
	require.Len(t, plan.Warnings, 1)
	assert.Contains(t, plan.Warnings[0], "rule boom skipped: panic:")
	assert.Equal(t, []string{"rest"}, ruleIDs(plan))
	assert.Equal(t, 0.5, plan.Adjustments.WorkoutIntensity)
}

func TestGeneratePlan_AdaptationLayer(t *testing.T) {
	base := adaptation.Baseline{CalorieTarget: 1800, TDEE: 2300, ProteinTargetG: 96}
	plan := GeneratePlan(PlanContext{
		Date:     planDate,
		Profile:  quietProfile(),
		Baseline: base,
		Adaptations: []adaptation.Adjustment{
			{Kind: adaptation.KindWorkoutVolume, Value: -0.1, Priority: 70, Rationale: "trim"},
			{Kind: adaptation.KindCalorieDelta, Value: -150, Priority: 60, Rationale: "deficit"},
			{Kind: adaptation.KindProteinTarget, Value: 110, Priority: 40, Rationale: "protein"},
		},
	}, DefaultScorers())

	assert.Equal(t, 0.9, plan.Adjustments.WorkoutIntensity)
	assert.Equal(t, -150, plan.Adjustments.CalorieDelta)
	assert.Equal(t, 110.0, plan.Adjustments.ProteinTargetG)
	assert.True(t, plan.Adjustments.IncreaseProtein)
	assert.Equal(t, []string{"adaptation_calorie_shift", "adaptation_volume_shift"}, ruleIDs(plan))
	assert.Equal(t, "deficit", plan.Explanations[0].Message)
}

func TestGeneratePlan_AdaptationRestDay(t *testing.T) {
	plan := GeneratePlan(PlanContext{
		Profile: quietProfile(),
		Adaptations: []adaptation.Adjustment{
			{Kind: adaptation.KindRestDay, Value: 1, Priority: 100, Rationale: "tired all week"},
		},
	}, DefaultScorers())
	assert.True(t, plan.Adjustments.RestDay)
	assert.Zero(t, plan.Adjustments.WorkoutIntensity)
	assert.Equal(t, "tired all week", plan.Explanations[0].Message)
}

func TestGeneratePlan_SleepDebtAndSkipStreakUseTrailingDays(t *testing.T) {
	var trailing []domain.DailyHealthLog
	for i := 3; i >= 1; i-- {
		trailing = append(trailing, domain.DailyHealthLog{
			Date:           planDate.AddDate(0, 0, -i),
			SleepHours:     domain.Ptr(5.5),
			WorkoutSkipped: true,
			SkipReason:     domain.SkipBusy,
		})
	}
	plan := GeneratePlan(PlanContext{Date: planDate, Profile: quietProfile(), Trailing: trailing}, DefaultScorers())

	assert.Equal(t, []string{"sleep_debt", "skip_streak"}, ruleIDs(plan))
	assert.True(t, plan.Adjustments.EarlyBedtime)
	assert.Equal(t, domain.RoutineReduced, plan.Adjustments.RoutineLevel)
	assert.Equal(t, 0.68, plan.Adjustments.WorkoutIntensity)
}

func TestResolveConflicts(t *testing.T) {
	p := quietProfile()

	a := defaultAdjustments()
	a.RestDay = true
	a.ProgressiveOverload = true
	got := resolveConflicts(a, p, 0)
	assert.Zero(t, got.WorkoutIntensity)
	assert.False(t, got.ProgressiveOverload)

	a = defaultAdjustments()
	a.WorkoutIntensity = 1.4
	assert.Equal(t, 1.0, resolveConflicts(a, p, 0).WorkoutIntensity)
	a.WorkoutIntensity = -0.2
	assert.Zero(t, resolveConflicts(a, p, 0).WorkoutIntensity)

	a = defaultAdjustments()
	a.CalorieDelta = 450
	assert.Equal(t, 300, resolveConflicts(a, p, 2000).CalorieDelta)
	a.CalorieDelta = -250
	assert.Equal(t, -50, resolveConflicts(a, p, 1250).CalorieDelta, "female intake floor is 1200")
}

func TestGeneratePlan_IsDeterministic(t *testing.T) {
	p := quietProfile()
	p.Conditions = []domain.Condition{domain.ConditionPCOS}
	p.CyclePhase = domain.CycleLuteal
	pctx := PlanContext{
		Date:    planDate,
		Profile: p,
		Mode:    domain.ModeExam,
		Health: &domain.DailyHealthLog{
			SleepHours: domain.Ptr(5.5), StressLevel: domain.Ptr(8), Energy: domain.Ptr(3),
			WaterLiters: domain.Ptr(1.0),
		},
		Looks:   &domain.DailyLooksLog{SkinCondition: domain.Ptr(8), SkincareAM: true},
		Routine: &domain.DailyRoutineLog{HabitsDone: 1, HabitsTotal: 4, ScreenTimeMin: domain.Ptr(320)},
	}

	first, err := json.Marshal(GeneratePlan(pctx, DefaultScorers()))
	require.NoError(t, err)
	second, err := json.Marshal(GeneratePlan(pctx, DefaultScorers()))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

// TestGeneratePlan_Invariants property-tests the conflict pass over random
// contexts: a rest day always has zero intensity and intensity stays in [0, 1].
func TestGeneratePlan_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	modes := []domain.UserMode{domain.ModeNormal, domain.ModeTravel, domain.ModeSick, domain.ModeExam, domain.ModeFestival}
	goals := []domain.GoalType{domain.GoalFatLoss, domain.GoalMaintenance, domain.GoalMuscleGain}
	conditions := []domain.Condition{domain.ConditionDiabetes, domain.ConditionHypertension, domain.ConditionHeartCondition}
	phases := []domain.CyclePhase{domain.CycleNone, domain.CycleMenstrual, domain.CycleLuteal}

	maybeInt := func() *int {
		if rng.Intn(3) == 0 {
			return nil
		}
		return domain.Ptr(rng.Intn(10) + 1)
	}

	for trial := 0; trial < 300; trial++ {
		p := quietProfile()
		p.Goal = goals[rng.Intn(len(goals))]
		p.CyclePhase = phases[rng.Intn(len(phases))]
		for _, c := range conditions {
			if rng.Intn(4) == 0 {
				p.Conditions = append(p.Conditions, c)
			}
		}

		health := &domain.DailyHealthLog{
			SleepHours:  domain.Ptr(rng.Float64() * 10),
			StressLevel: maybeInt(),
			Mood:        maybeInt(),
			Energy:      maybeInt(),
			Soreness:    maybeInt(),
			Ill:         rng.Intn(10) == 0,
		}
		var adaptations []adaptation.Adjustment
		if rng.Intn(4) == 0 {
			adaptations = append(adaptations, adaptation.Adjustment{Kind: adaptation.KindRestDay, Value: 1, Priority: 100})
		}
		if rng.Intn(2) == 0 {
			adaptations = append(adaptations, adaptation.Adjustment{
				Kind: adaptation.KindWorkoutVolume, Value: rng.Float64() - 0.5, Priority: 70,
			})
		}

		plan := GeneratePlan(PlanContext{
			Date:        planDate,
			Profile:     p,
			Mode:        modes[rng.Intn(len(modes))],
			Health:      health,
			Adaptations: adaptations,
		}, DefaultScorers())

		adj := plan.Adjustments
		if adj.RestDay {
			assert.Zero(t, adj.WorkoutIntensity, "trial %d: rest day must have zero intensity", trial)
			assert.False(t, adj.ProgressiveOverload, "trial %d", trial)
		}
		assert.GreaterOrEqual(t, adj.WorkoutIntensity, 0.0, "trial %d", trial)
		assert.LessOrEqual(t, adj.WorkoutIntensity, 1.0, "trial %d", trial)
		assert.Empty(t, plan.Warnings, "trial %d: all inputs are in range", trial)
		for i := 1; i < len(plan.Explanations); i++ {
			assert.LessOrEqual(t, plan.Explanations[i-1].Priority, plan.Explanations[i].Priority, "trial %d", trial)
		}
	}
}
