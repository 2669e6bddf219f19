package domain

import (
	"slices"
	"time"
)

// DefaultProfileID is used when the caller does not name a profile.
const DefaultProfileID = "default"

type Profile struct {
	ID            string
	Sex           Sex
	Age           int
	HeightCM      float64
	WeightKG      float64
	ActivityLevel ActivityLevel
	Goal          GoalType
	Diet          DietPreference
	Job           JobType
	Conditions    []Condition
	CyclePhase    CyclePhase

	// TargetDailyDeltaKcal is the intended daily energy balance:
	// negative for a deficit, positive for a surplus.
	TargetDailyDeltaKcal int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCondition reports whether the profile tracks condition c.
func (p *Profile) HasCondition(c Condition) bool {
	return slices.Contains(p.Conditions, c)
}

// EffectiveCyclePhase treats an unset phase as CycleNone.
func (p *Profile) EffectiveCyclePhase() CyclePhase {
	if p.CyclePhase == "" {
		return CycleNone
	}
	return p.CyclePhase
}

// Validate checks enumerations and physical ranges.
func (p *Profile) Validate() error {
	v := newValidator("profile")
	if p.ID == "" {
		v.add("id", "is required")
	}
	if p.Sex != SexMale && p.Sex != SexFemale {
		v.add("sex", "must be male or female, got %q", p.Sex)
	}
	if p.Age < 13 || p.Age > 120 {
		v.add("age", "must be between 13 and 120, got %d", p.Age)
	}
	if p.HeightCM < 100 || p.HeightCM > 250 {
		v.add("height_cm", "must be between 100 and 250, got %g", p.HeightCM)
	}
	if p.WeightKG < 30 || p.WeightKG > 350 {
		v.add("weight_kg", "must be between 30 and 350, got %g", p.WeightKG)
	}
	if !ValidActivityLevels[p.ActivityLevel] {
		v.add("activity_level", "unknown value %q", p.ActivityLevel)
	}
	if !ValidGoals[p.Goal] {
		v.add("goal", "unknown value %q", p.Goal)
	}
	if p.Diet != "" && !ValidDiets[p.Diet] {
		v.add("diet", "unknown value %q", p.Diet)
	}
	if p.Job != "" && !ValidJobs[p.Job] {
		v.add("job", "unknown value %q", p.Job)
	}
	for _, c := range p.Conditions {
		if !ValidConditions[c] {
			v.add("conditions", "unknown value %q", c)
		}
	}
	if p.CyclePhase != "" && !ValidCyclePhases[p.CyclePhase] {
		v.add("cycle_phase", "unknown value %q", p.CyclePhase)
	}
	if p.TargetDailyDeltaKcal < -1500 || p.TargetDailyDeltaKcal > 1000 {
		v.add("target_daily_delta_kcal", "must be between -1500 and 1000, got %d", p.TargetDailyDeltaKcal)
	}
	return v.err()
}
