package adaptation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/metrics"
)

type Kind string

const (
	KindCalorieDelta      Kind = "calorie_delta"
	KindWorkoutVolume     Kind = "workout_volume"
	KindRestDay           Kind = "rest_day"
	KindProteinTarget     Kind = "protein_target"
	KindLifestylePriority Kind = "lifestyle_priority"
)

// Adjustment is one proposed plan delta. Value is kcal for calorie_delta,
// a signed fraction for workout_volume, grams for protein_target and 1 for
// flags. Higher Priority is more consequential.
type Adjustment struct {
	Kind      Kind
	Value     float64
	Priority  int
	Action    string
	Rationale string

	Clamped bool
	Warning string
}

// SafetyValidator checks proposed calorie and protein changes. A rejected
// value comes back replaced by the nearest safe value.
type SafetyValidator interface {
	ValidateCalorieDelta(p domain.Profile, currentTarget, tdee, delta int) metrics.Validation
	ValidateProteinTarget(p domain.Profile, grams float64) metrics.Validation
}

// Baseline is the day's numeric starting point from the metric calculator
// and calibrator.
type Baseline struct {
	CalorieTarget  int
	TDEE           int
	ProteinTargetG float64
}

const (
	stallCalorieStep = 150

	priorityRestDay        = 100
	priorityVolumeHigh     = 80
	priorityRestartGently  = 75
	priorityVolumeModerate = 70
	priorityCalorie        = 60
	priorityRecoverFirst   = 55
	priorityProtein        = 40
	prioritySimplifyMeals  = 30
)

type Generator struct {
	safety SafetyValidator
}

// NewGenerator returns a generator routing nutrition changes through v.
// A nil v uses metrics.Safety.
func NewGenerator(v SafetyValidator) *Generator {
	if v == nil {
		v = metrics.Safety{}
	}
	return &Generator{safety: v}
}

// GenerateAdjustments maps the window's classifications to plan deltas,
// most consequential first. Equal priorities keep generation order.
func (g *Generator) GenerateAdjustments(p domain.Profile, s *PatternSummary, stall WeightStall, goal domain.GoalType, base Baseline) []Adjustment {
	var out []Adjustment
	fatigue := ClassifyFatigue(s)

	switch fatigue.Level {
	case FatigueHigh:
		out = append(out,
			Adjustment{
				Kind: KindRestDay, Value: 1, Priority: priorityRestDay, Action: "insert_rest_day",
				Rationale: "Several fatigue signals this week (" + strings.Join(fatigue.Issues, ", ") + "); take a full rest day.",
			},
			Adjustment{
				Kind: KindWorkoutVolume, Value: -0.2, Priority: priorityVolumeHigh, Action: "reduce_volume",
				Rationale: "Cut training volume by 20% until recovery improves.",
			})
	case FatigueModerate:
		out = append(out, Adjustment{
			Kind: KindWorkoutVolume, Value: -0.1, Priority: priorityVolumeModerate, Action: "reduce_volume",
			Rationale: "Fatigue signal this week (" + strings.Join(fatigue.Issues, ", ") + "); trim training volume by 10%.",
		})
	}

	if stall.Stalled && base.CalorieTarget > 0 {
		switch {
		case stall.Direction == NeedMoreDeficit && fatigue.Level == FatigueHigh:
			out = append(out, Adjustment{
				Kind: KindLifestylePriority, Value: 1, Priority: priorityRecoverFirst, Action: "recover_before_cutting",
				Rationale: "Weight has stalled, but recovery comes first; hold calories until fatigue clears.",
			})
		case stall.Direction == NeedMoreDeficit:
			out = append(out, g.calorieAdjustment(p, base, -stallCalorieStep, goal,
				fmt.Sprintf("Weight changed %+.1f kg over %.0f days; a slightly larger deficit restarts progress.", stall.ChangeKG, stall.SpanDays)))
		case stall.Direction == NeedMoreSurplus:
			out = append(out, g.calorieAdjustment(p, base, stallCalorieStep, goal,
				fmt.Sprintf("Weight changed %+.1f kg over %.0f days; a slightly larger surplus supports growth.", stall.ChangeKG, stall.SpanDays)))
		}
	}

	for _, issue := range ClassifyCompliance(s) {
		switch issue.Action {
		case ActionRestartGently:
			out = append(out, Adjustment{
				Kind: KindWorkoutVolume, Value: -0.3, Priority: priorityRestartGently, Action: string(issue.Action),
				Rationale: capitalize(issue.Detail) + "; restart with shorter, easier sessions.",
			})
		case ActionIncreaseProtein:
			if base.ProteinTargetG > 0 {
				v := g.safety.ValidateProteinTarget(p, base.ProteinTargetG)
				out = append(out, Adjustment{
					Kind: KindProteinTarget, Value: v.Value, Priority: priorityProtein, Action: string(issue.Action),
					Rationale: capitalize(issue.Detail) + "; put a protein source in every meal.",
					Clamped:   v.Clamped, Warning: v.Warning,
				})
			}
		case ActionSimplifyMeals:
			out = append(out, Adjustment{
				Kind: KindLifestylePriority, Value: 1, Priority: prioritySimplifyMeals, Action: string(issue.Action),
				Rationale: capitalize(issue.Detail) + "; switch to simpler meals that are easier to stick to.",
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

func (g *Generator) calorieAdjustment(p domain.Profile, base Baseline, delta int, goal domain.GoalType, rationale string) Adjustment {
	v := g.safety.ValidateCalorieDelta(p, base.CalorieTarget, base.TDEE, delta)
	action := "increase_deficit"
	if goal == domain.GoalMuscleGain {
		action = "increase_surplus"
	}
	return Adjustment{
		Kind:      KindCalorieDelta,
		Value:     v.Value,
		Priority:  priorityCalorie,
		Action:    action,
		Rationale: rationale,
		Clamped:   v.Clamped,
		Warning:   v.Warning,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
