package advisor

import "github.com/alexanderramin/meridian/internal/domain"

// Adjustments is the day's merged set of plan deltas. Rules never mutate a
// shared record: each step receives a value and returns the next one.
type Adjustments struct {
	WorkoutIntensity    float64
	RestDay             bool
	AddRecoveryFocus    bool
	ProgressiveOverload bool

	MealComplexity  domain.MealComplexity
	RoutineLevel    domain.RoutineLevel
	CalorieDelta    int
	ProteinTargetG  float64
	HydrationBoost  bool
	LimitCaffeine   bool
	LimitAddedSugar bool
	IncreaseProtein bool

	SkipSkincare   bool
	GentleSkincare bool

	AddBreathingExercise bool
	AddMobilityBreaks    bool
	EarlyBedtime         bool
	DigitalDetox         bool
	NotificationsEnabled bool
}

// defaultAdjustments is the normal-mode starting point.
func defaultAdjustments() Adjustments {
	return Adjustments{
		WorkoutIntensity:     1,
		MealComplexity:       domain.MealStandard,
		RoutineLevel:         domain.RoutineFull,
		NotificationsEnabled: true,
	}
}

// scaleIntensity multiplies intensity by f.
func (a Adjustments) scaleIntensity(f float64) Adjustments {
	a.WorkoutIntensity *= f
	return a
}

// capIntensity lowers intensity to at most max.
func (a Adjustments) capIntensity(max float64) Adjustments {
	if a.WorkoutIntensity > max {
		a.WorkoutIntensity = max
	}
	return a
}

// reduceRoutine steps the routine level down to at most level.
func (a Adjustments) reduceRoutine(level domain.RoutineLevel) Adjustments {
	if routineRank[level] < routineRank[a.RoutineLevel] {
		a.RoutineLevel = level
	}
	return a
}

// simplifyMeals steps meal complexity down to at most level.
func (a Adjustments) simplifyMeals(level domain.MealComplexity) Adjustments {
	if mealRank[level] < mealRank[a.MealComplexity] {
		a.MealComplexity = level
	}
	return a
}

var routineRank = map[domain.RoutineLevel]int{
	domain.RoutineMinimal: 0,
	domain.RoutineReduced: 1,
	domain.RoutineFull:    2,
}

var mealRank = map[domain.MealComplexity]int{
	domain.MealSimple:    0,
	domain.MealStandard:  1,
	domain.MealElaborate: 2,
}

// AsMap renders the adjustments with the camelCase keys of the plan output
// contract.
func (a Adjustments) AsMap() map[string]any {
	return map[string]any{
		"workoutIntensity":     a.WorkoutIntensity,
		"restDay":              a.RestDay,
		"addRecoveryFocus":     a.AddRecoveryFocus,
		"progressiveOverload":  a.ProgressiveOverload,
		"mealComplexity":       string(a.MealComplexity),
		"routineLevel":         string(a.RoutineLevel),
		"calorieDelta":         a.CalorieDelta,
		"proteinTargetG":       a.ProteinTargetG,
		"hydrationBoost":       a.HydrationBoost,
		"limitCaffeine":        a.LimitCaffeine,
		"limitAddedSugar":      a.LimitAddedSugar,
		"increaseProtein":      a.IncreaseProtein,
		"skipSkincare":         a.SkipSkincare,
		"gentleSkincare":       a.GentleSkincare,
		"addBreathingExercise": a.AddBreathingExercise,
		"addMobilityBreaks":    a.AddMobilityBreaks,
		"earlyBedtime":         a.EarlyBedtime,
		"digitalDetox":         a.DigitalDetox,
		"notificationsEnabled": a.NotificationsEnabled,
	}
}
