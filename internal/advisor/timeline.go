package advisor

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/meridian/internal/domain"
)

type TimelineDomain string

const (
	TimelineHealth     TimelineDomain = "health"
	TimelineNutrition  TimelineDomain = "nutrition"
	TimelineWorkout    TimelineDomain = "workout"
	TimelineLooks      TimelineDomain = "looks"
	TimelineDiscipline TimelineDomain = "discipline"
)

type TimelineEntry struct {
	Time     string
	Activity string
	Domain   TimelineDomain
}

var mealLabels = map[domain.MealComplexity]string{
	domain.MealSimple:    "simple, minimal-prep",
	domain.MealStandard:  "balanced",
	domain.MealElaborate: "festive",
}

var routineLabels = map[domain.RoutineLevel]string{
	domain.RoutineMinimal: "Core habits only",
	domain.RoutineReduced: "Shortened habit list",
	domain.RoutineFull:    "Full habit routine",
}

// BuildTimeline lays out the day from the final adjustments. Entries are
// ordered by clock time; the same adjustments always give the same timeline.
func BuildTimeline(a Adjustments) []TimelineEntry {
	var out []TimelineEntry
	add := func(at, activity string, d TimelineDomain) {
		out = append(out, TimelineEntry{Time: at, Activity: activity, Domain: d})
	}

	if a.HydrationBoost {
		add("07:00", "Wake up and drink 500 ml of water", TimelineHealth)
	} else {
		add("07:00", "Wake up and drink a glass of water", TimelineHealth)
	}
	if !a.SkipSkincare {
		if a.GentleSkincare {
			add("07:15", "Gentle cleanse, moisturizer and sunscreen", TimelineLooks)
		} else {
			add("07:15", "Morning skincare", TimelineLooks)
		}
	}
	add("07:30", "Breakfast: "+mealLabels[a.MealComplexity]+breakfastNote(a), TimelineNutrition)
	if a.AddBreathingExercise {
		add("08:00", "Five minutes of box breathing", TimelineHealth)
	}
	add("09:00", routineLabels[a.RoutineLevel], TimelineDiscipline)
	if a.AddMobilityBreaks {
		add("10:30", "Mobility break: stand, stretch, walk", TimelineWorkout)
		add("15:30", "Mobility break: stand, stretch, walk", TimelineWorkout)
	}
	add("13:00", "Lunch: "+mealLabels[a.MealComplexity], TimelineNutrition)

	switch {
	case a.RestDay:
		add("18:00", "Rest day: easy walk and light stretching", TimelineWorkout)
	case a.WorkoutIntensity > 0:
		activity := fmt.Sprintf("Workout at %d%% intensity", int(a.WorkoutIntensity*100+0.5))
		if a.ProgressiveOverload {
			activity += " with progressive overload"
		}
		add("18:00", activity, TimelineWorkout)
	}
	if a.AddRecoveryFocus {
		add("18:45", "Recovery: foam rolling and stretching", TimelineWorkout)
	}
	add("19:30", "Dinner: "+mealLabels[a.MealComplexity], TimelineNutrition)
	if a.DigitalDetox {
		add("21:00", "Screens off", TimelineDiscipline)
	}
	if !a.SkipSkincare {
		add("21:30", "Evening skincare", TimelineLooks)
	}
	if a.EarlyBedtime {
		add("21:45", "Lights out (early night)", TimelineHealth)
	} else {
		add("23:00", "Lights out", TimelineHealth)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func breakfastNote(a Adjustments) string {
	var note string
	switch {
	case a.IncreaseProtein:
		note = ", protein-first"
	case a.LimitAddedSugar:
		note = ", no added sugar"
	}
	if a.LimitCaffeine {
		note += ", one coffee at most"
	}
	return note
}
