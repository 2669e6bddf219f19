package advisor

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/domain"
)

// Priority is a rule tier. Lower values are more urgent and fire first.
type Priority int

const (
	PrioritySafety     Priority = 1
	PriorityRecovery   Priority = 2
	PriorityNutrition  Priority = 3
	PriorityWorkout    Priority = 4
	PriorityLooks      Priority = 5
	PriorityDiscipline Priority = 6
)

// Rule is one row of the static rule table. Predicate returns an error when
// the field it reads is malformed; the rule is then skipped.
type Rule struct {
	ID        string
	Priority  Priority
	Reason    string
	Action    string
	Predicate func(*PlanContext) (bool, error)
	Effect    func(Adjustments, *PlanContext) Adjustments
	Explain   func(*PlanContext) string
}

func message(s string) func(*PlanContext) string {
	return func(*PlanContext) string { return s }
}

// ruleTable is declaration-ordered. Within a tier, declaration order is the
// firing and display order.
var ruleTable = []Rule{
	// Safety
	{
		ID: "critical_sleep", Priority: PrioritySafety,
		Reason: "Critical sleep deprivation", Action: "force_rest_day",
		Predicate: func(c *PlanContext) (bool, error) {
			h, err := c.sleepHours()
			return h != nil && *h < 4, err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.RestDay = true
			a.WorkoutIntensity = 0
			a.AddRecoveryFocus = true
			return a
		},
		Explain: func(c *PlanContext) string {
			return fmt.Sprintf("Only %.1fh of sleep. Training today raises injury risk, so today is a rest day.", *c.Health.SleepHours)
		},
	},
	{
		ID: "illness_reported", Priority: PrioritySafety,
		Reason: "Illness reported", Action: "force_rest_day",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.Health != nil && c.Health.Ill, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.RestDay = true
			a.HydrationBoost = true
			return a.simplifyMeals(domain.MealSimple).reduceRoutine(domain.RoutineMinimal)
		},
		Explain: message("You reported feeling ill. Rest, keep fluids up and stick to simple food."),
	},
	{
		ID: "heart_condition_cap", Priority: PrioritySafety,
		Reason: "Heart condition", Action: "cap_intensity",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.Profile.HasCondition(domain.ConditionHeartCondition), nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			return a.capIntensity(0.6)
		},
		Explain: message("Workout intensity is capped at 60% because of a tracked heart condition."),
	},
	{
		ID: "hypertension_stress", Priority: PrioritySafety,
		Reason: "High stress with hypertension", Action: "cap_intensity",
		Predicate: func(c *PlanContext) (bool, error) {
			s, err := c.stress()
			return c.Profile.HasCondition(domain.ConditionHypertension) && s != nil && *s >= 7, err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a = a.capIntensity(0.5)
			a.AddBreathingExercise = true
			a.LimitCaffeine = true
			return a
		},
		Explain: message("High stress and hypertension: keep effort moderate, skip caffeine and add a breathing session."),
	},

	// Recovery
	{
		ID: "adaptation_rest_day", Priority: PriorityRecovery,
		Reason: "Accumulated fatigue", Action: "insert_rest_day",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.adaptation(adaptation.KindRestDay) != nil, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.RestDay = true
			a.AddRecoveryFocus = true
			return a
		},
		Explain: func(c *PlanContext) string {
			return c.adaptation(adaptation.KindRestDay).Rationale
		},
	},
	{
		ID: "low_sleep", Priority: PriorityRecovery,
		Reason: "Low sleep", Action: "reduce_intensity",
		Predicate: func(c *PlanContext) (bool, error) {
			h, err := c.sleepHours()
			return h != nil && *h >= 4 && *h < 6, err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a = a.scaleIntensity(0.7)
			a.AddRecoveryFocus = true
			return a
		},
		Explain: func(c *PlanContext) string {
			return fmt.Sprintf("%.1fh of sleep: workout intensity reduced by 30%% with extra recovery work.", *c.Health.SleepHours)
		},
	},
	{
		ID: "sleep_debt", Priority: PriorityRecovery,
		Reason: "Sleep debt", Action: "early_bedtime",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.shortSleepStreak(3)
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.EarlyBedtime = true
			return a.scaleIntensity(0.85)
		},
		Explain: message("Three short nights in a row. Go to bed early tonight and ease off in training."),
	},
	{
		ID: "high_stress", Priority: PriorityRecovery,
		Reason: "High stress", Action: "reduce_intensity",
		Predicate: func(c *PlanContext) (bool, error) {
			s, err := c.stress()
			return s != nil && *s >= 8, err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a = a.scaleIntensity(0.8)
			a.AddBreathingExercise = true
			return a
		},
		Explain: message("Stress is high. Training is lighter today and a breathing exercise is added."),
	},
	{
		ID: "high_soreness", Priority: PriorityRecovery,
		Reason: "High soreness", Action: "reduce_intensity",
		Predicate: func(c *PlanContext) (bool, error) {
			s, err := c.intField("soreness", func(l *domain.DailyHealthLog) *int { return l.Soreness })
			return s != nil && *s >= 8, err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a = a.scaleIntensity(0.6)
			a.AddRecoveryFocus = true
			return a
		},
		Explain: message("Muscles are very sore. Intensity drops by 40% and recovery work is added."),
	},
	{
		ID: "menstrual_phase", Priority: PriorityRecovery,
		Reason: "Menstrual phase", Action: "reduce_intensity",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.Profile.EffectiveCyclePhase() == domain.CycleMenstrual, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a = a.scaleIntensity(0.8)
			a.AddRecoveryFocus = true
			return a
		},
		Explain: message("Menstrual phase: slightly lighter training and more recovery."),
	},
	{
		ID: "low_mood", Priority: PriorityRecovery,
		Reason: "Low mood", Action: "reduce_routine",
		Predicate: func(c *PlanContext) (bool, error) {
			m, err := c.intField("mood", func(l *domain.DailyHealthLog) *int { return l.Mood })
			return m != nil && *m <= 3, err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a = a.reduceRoutine(domain.RoutineReduced)
			a.AddBreathingExercise = true
			return a
		},
		Explain: message("Mood is low. The routine is shorter today, with a few minutes of calm breathing."),
	},

	// Nutrition
	{
		ID: "low_energy_deficit", Priority: PriorityNutrition,
		Reason: "Low energy on a deficit", Action: "raise_calories",
		Predicate: func(c *PlanContext) (bool, error) {
			e, err := c.energy()
			return e != nil && *e <= 3 && c.hasGoal(domain.GoalFatLoss), err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.CalorieDelta += 200
			return a
		},
		Explain: message("Energy is very low while cutting. Eat 200 kcal more today."),
	},
	{
		ID: "dehydration", Priority: PriorityNutrition,
		Reason: "Low water intake", Action: "hydration_boost",
		Predicate: func(c *PlanContext) (bool, error) {
			if c.Health == nil {
				return false, nil
			}
			if err := domain.CheckFloatRange("water_liters", c.Health.WaterLiters, 0, 15); err != nil {
				return false, err
			}
			return c.Health.WaterLiters != nil && *c.Health.WaterLiters < 1.5, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.HydrationBoost = true
			return a
		},
		Explain: func(c *PlanContext) string {
			return fmt.Sprintf("Only %.1f L of water logged. Aim for at least 2 L today.", *c.Health.WaterLiters)
		},
	},
	{
		ID: "stress_caffeine", Priority: PriorityNutrition,
		Reason: "Stress and caffeine", Action: "limit_caffeine",
		Predicate: func(c *PlanContext) (bool, error) {
			s, err := c.stress()
			return s != nil && *s >= 7, err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.LimitCaffeine = true
			return a
		},
		Explain: message("Stress is elevated. Keep caffeine to one cup, before noon."),
	},
	{
		ID: "diabetes_sugar", Priority: PriorityNutrition,
		Reason: "Blood sugar management", Action: "limit_added_sugar",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.Profile.HasCondition(domain.ConditionDiabetes) || c.Profile.HasCondition(domain.ConditionPCOS), nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.LimitAddedSugar = true
			return a
		},
		Explain: message("Limit added sugar and pair carbs with protein to keep blood sugar steady."),
	},
	{
		ID: "muscle_gain_protein", Priority: PriorityNutrition,
		Reason: "Muscle gain goal", Action: "increase_protein",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.hasGoal(domain.GoalMuscleGain), nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.IncreaseProtein = true
			return a
		},
		Explain: message("Building muscle: hit your protein target, spread over every meal."),
	},
	{
		ID: "adaptation_calorie_shift", Priority: PriorityNutrition,
		Reason: "Weekly nutrition adjustment", Action: "shift_nutrition",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.adaptation(adaptation.KindCalorieDelta) != nil || c.adaptation(adaptation.KindProteinTarget) != nil, nil
		},
		Effect: func(a Adjustments, c *PlanContext) Adjustments {
			if adj := c.adaptation(adaptation.KindCalorieDelta); adj != nil {
				a.CalorieDelta += int(adj.Value)
			}
			if adj := c.adaptation(adaptation.KindProteinTarget); adj != nil {
				a.ProteinTargetG = adj.Value
				a.IncreaseProtein = true
			}
			return a
		},
		Explain: func(c *PlanContext) string {
			if adj := c.adaptation(adaptation.KindCalorieDelta); adj != nil {
				return adj.Rationale
			}
			return c.adaptation(adaptation.KindProteinTarget).Rationale
		},
	},

	// Workout
	{
		ID: "adaptation_volume_shift", Priority: PriorityWorkout,
		Reason: "Weekly training adjustment", Action: "shift_volume",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.adaptation(adaptation.KindWorkoutVolume) != nil, nil
		},
		Effect: func(a Adjustments, c *PlanContext) Adjustments {
			return a.scaleIntensity(1 + c.adaptation(adaptation.KindWorkoutVolume).Value)
		},
		Explain: func(c *PlanContext) string {
			return c.adaptation(adaptation.KindWorkoutVolume).Rationale
		},
	},
	{
		ID: "skip_streak", Priority: PriorityWorkout,
		Reason: "Missed workouts", Action: "restart_gently",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.trailingSkips() >= 3, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			return a.scaleIntensity(0.8).reduceRoutine(domain.RoutineReduced)
		},
		Explain: func(c *PlanContext) string {
			return fmt.Sprintf("%d workouts missed in a row. Ease back in with a shorter session.", c.trailingSkips())
		},
	},
	{
		ID: "muscle_gain_overload", Priority: PriorityWorkout,
		Reason: "Good energy for growth", Action: "progressive_overload",
		Predicate: func(c *PlanContext) (bool, error) {
			e, err := c.energy()
			return c.hasGoal(domain.GoalMuscleGain) && e != nil && *e >= 7, err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.ProgressiveOverload = true
			a = a.scaleIntensity(1.1)
			return a.capIntensity(1)
		},
		Explain: message("Energy is high: add a little weight or one more rep on your main lifts."),
	},
	{
		ID: "desk_job_mobility", Priority: PriorityWorkout,
		Reason: "Desk job", Action: "mobility_breaks",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.Profile.Job == domain.JobDesk, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.AddMobilityBreaks = true
			return a
		},
		Explain: message("Long sitting hours: stand up and move for a few minutes every 90 minutes."),
	},

	// Looks
	{
		ID: "breakout_care", Priority: PriorityLooks,
		Reason: "Skin breakout", Action: "gentle_skincare",
		Predicate: func(c *PlanContext) (bool, error) {
			if c.Looks == nil {
				return false, nil
			}
			if err := domain.CheckIntRange("skin_condition", c.Looks.SkinCondition, 1, 10); err != nil {
				return false, err
			}
			return c.Looks.SkinCondition != nil && *c.Looks.SkinCondition >= 7, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.GentleSkincare = true
			return a
		},
		Explain: message("Skin is irritated. Use a gentle cleanser and skip exfoliants."),
	},
	{
		ID: "luteal_skin", Priority: PriorityLooks,
		Reason: "Luteal phase", Action: "gentle_skincare",
		Predicate: func(c *PlanContext) (bool, error) {
			return c.Profile.EffectiveCyclePhase() == domain.CycleLuteal, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.GentleSkincare = true
			return a
		},
		Explain: message("Luteal phase often brings breakouts. Keep skincare gentle and consistent."),
	},
	{
		ID: "low_energy_skincare", Priority: PriorityLooks,
		Reason: "Very low energy", Action: "skip_skincare",
		Predicate: func(c *PlanContext) (bool, error) {
			e, err := c.energy()
			return e != nil && *e <= 3, err
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.SkipSkincare = true
			return a
		},
		Explain: message("Energy is very low. Skip the full skincare routine tonight; cleansing is enough."),
	},

	// Discipline
	{
		ID: "screen_time", Priority: PriorityDiscipline,
		Reason: "High screen time", Action: "digital_detox",
		Predicate: func(c *PlanContext) (bool, error) {
			if c.Routine == nil {
				return false, nil
			}
			if err := domain.CheckIntRange("screen_time_min", c.Routine.ScreenTimeMin, 0, 24*60); err != nil {
				return false, err
			}
			return c.Routine.ScreenTimeMin != nil && *c.Routine.ScreenTimeMin > 240, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			a.DigitalDetox = true
			return a
		},
		Explain: func(c *PlanContext) string {
			return fmt.Sprintf("%dh%02dm of screen time logged. Screens off an hour before bed.",
				*c.Routine.ScreenTimeMin/60, *c.Routine.ScreenTimeMin%60)
		},
	},
	{
		ID: "low_routine_completion", Priority: PriorityDiscipline,
		Reason: "Low routine completion", Action: "reduce_routine",
		Predicate: func(c *PlanContext) (bool, error) {
			if c.Routine == nil {
				return false, nil
			}
			pct := c.Routine.EffectiveCompletionPct()
			if err := domain.CheckFloatRange("completion_pct", pct, 0, 100); err != nil {
				return false, err
			}
			return pct != nil && *pct < 50, nil
		},
		Effect: func(a Adjustments, _ *PlanContext) Adjustments {
			return a.reduceRoutine(domain.RoutineReduced)
		},
		Explain: message("Less than half the routine got done. Today's list is shorter so it can be finished."),
	},
}

// rules is ruleTable sorted by tier, stable so declaration order breaks ties.
var rules = sortRules(ruleTable)

func sortRules(in []Rule) []Rule {
	if len(in) == 0 {
		panic("advisor: rule table is empty")
	}
	out := make([]Rule, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// Rules returns a copy of the evaluation-ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
