package advisor

import (
	"testing"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/stretchr/testify/assert"
)

func activities(tl []TimelineEntry) []string {
	out := make([]string, len(tl))
	for i, e := range tl {
		out[i] = e.Time + " " + e.Activity
	}
	return out
}

func TestBuildTimeline_Defaults(t *testing.T) {
	tl := BuildTimeline(defaultAdjustments())
	assert.Equal(t, []string{
		"07:00 Wake up and drink a glass of water",
		"07:15 Morning skincare",
		"07:30 Breakfast: balanced",
		"09:00 Full habit routine",
		"13:00 Lunch: balanced",
		"18:00 Workout at 100% intensity",
		"19:30 Dinner: balanced",
		"21:30 Evening skincare",
		"23:00 Lights out",
	}, activities(tl))
}

func TestBuildTimeline_FollowsAdjustments(t *testing.T) {
	a := defaultAdjustments()
	a.SkipSkincare = true
	a.AddBreathingExercise = true
	a.AddMobilityBreaks = true
	a.EarlyBedtime = true
	a.DigitalDetox = true
	a.RestDay = true
	a.WorkoutIntensity = 0
	a.LimitCaffeine = true
	a.MealComplexity = domain.MealSimple

	tl := BuildTimeline(a)
	assert.Equal(t, []string{
		"07:00 Wake up and drink a glass of water",
		"07:30 Breakfast: simple, minimal-prep, one coffee at most",
		"08:00 Five minutes of box breathing",
		"09:00 Full habit routine",
		"10:30 Mobility break: stand, stretch, walk",
		"13:00 Lunch: simple, minimal-prep",
		"15:30 Mobility break: stand, stretch, walk",
		"18:00 Rest day: easy walk and light stretching",
		"19:30 Dinner: simple, minimal-prep",
		"21:00 Screens off",
		"21:45 Lights out (early night)",
	}, activities(tl))
}

func TestBuildTimeline_NoWorkoutBlockAtZeroIntensity(t *testing.T) {
	a := defaultAdjustments()
	a.WorkoutIntensity = 0
	for _, e := range BuildTimeline(a) {
		assert.NotEqual(t, "18:00", e.Time)
	}
}

func TestBuildTimeline_Overload(t *testing.T) {
	a := defaultAdjustments()
	a.WorkoutIntensity = 0.85
	a.ProgressiveOverload = true
	a.AddRecoveryFocus = true
	a.GentleSkincare = true
	a.IncreaseProtein = true

	got := activities(BuildTimeline(a))
	assert.Contains(t, got, "18:00 Workout at 85% intensity with progressive overload")
	assert.Contains(t, got, "18:45 Recovery: foam rolling and stretching")
	assert.Contains(t, got, "07:15 Gentle cleanse, moisturizer and sunscreen")
	assert.Contains(t, got, "07:30 Breakfast: balanced, protein-first")
}
