package advisor

import (
	"fmt"

	"github.com/alexanderramin/meridian/internal/domain"
)

// PriorityMode orders a mode's explanation ahead of every rule tier.
const PriorityMode Priority = 0

type modeSpec struct {
	apply   func(Adjustments) Adjustments
	reason  string
	message string
}

// modeTable holds the static defaults each mode applies before rules run.
var modeTable = map[domain.UserMode]modeSpec{
	domain.ModeNormal: {
		apply: func(a Adjustments) Adjustments { return a },
	},
	domain.ModeTravel: {
		apply: func(a Adjustments) Adjustments {
			a.WorkoutIntensity = 0.7
			a.MealComplexity = domain.MealSimple
			a.RoutineLevel = domain.RoutineReduced
			a.HydrationBoost = true
			return a
		},
		reason:  "Travel mode",
		message: "Travelling: short bodyweight sessions, simple meals and a reduced routine.",
	},
	domain.ModeSick: {
		apply: func(a Adjustments) Adjustments {
			a.WorkoutIntensity = 0
			a.RestDay = true
			a.MealComplexity = domain.MealSimple
			a.RoutineLevel = domain.RoutineMinimal
			a.HydrationBoost = true
			a.NotificationsEnabled = false
			return a
		},
		reason:  "Sick mode",
		message: "You are unwell: no training, easy meals, plenty of fluids and no reminders.",
	},
	domain.ModeExam: {
		apply: func(a Adjustments) Adjustments {
			a.WorkoutIntensity = 0.6
			a.MealComplexity = domain.MealSimple
			a.RoutineLevel = domain.RoutineReduced
			a.EarlyBedtime = true
			return a
		},
		reason:  "Exam mode",
		message: "Exam period: lighter training, simple meals and protected sleep.",
	},
	domain.ModeFestival: {
		apply: func(a Adjustments) Adjustments {
			a.WorkoutIntensity = 0.8
			a.MealComplexity = domain.MealElaborate
			a.RoutineLevel = domain.RoutineReduced
			a.HydrationBoost = true
			return a
		},
		reason:  "Festival mode",
		message: "Festival day: enjoy the food, keep moving and stay hydrated.",
	},
}

func init() {
	for m := range domain.ValidModes {
		if _, ok := modeTable[m]; !ok {
			panic(fmt.Sprintf("advisor: mode %q has no defaults", m))
		}
	}
}

// seedMode returns the mode's default adjustments and, for non-normal
// modes, the mode explanation. Unknown modes fall back to normal.
func seedMode(mode domain.UserMode) (domain.UserMode, Adjustments, *Explanation, bool) {
	if mode == "" {
		mode = domain.ModeNormal
	}
	def, known := modeTable[mode]
	if !known {
		mode = domain.ModeNormal
		def = modeTable[mode]
	}
	adj := def.apply(defaultAdjustments())
	if mode == domain.ModeNormal {
		return mode, adj, nil, known
	}
	return mode, adj, &Explanation{
		Reason:   def.reason,
		RuleID:   "mode_" + string(mode),
		Action:   "apply_mode_defaults",
		Message:  def.message,
		Priority: PriorityMode,
	}, known
}
