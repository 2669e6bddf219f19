package metrics

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/meridian/internal/domain"
)

// Safety bounds for energy and protein changes.
const (
	MinCaloriesFemale = 1200
	MinCaloriesMale   = 1500

	// MaxStepKcal bounds a single proposed calorie change.
	MaxStepKcal = 300
	// MaxDeficitKcal and MaxSurplusKcal bound the resulting target relative to TDEE.
	MaxDeficitKcal = 1000
	MaxSurplusKcal = 500

	MinProteinPerKG = 0.8
	MaxProteinPerKG = 2.2
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityCaution Severity = "caution"
	SeverityHigh    Severity = "high"
)

// Validation is the outcome of a safety check. Value is always usable: a
// rejected request is replaced by the nearest safe value, never dropped.
//
// A request can be clamped more than once. Warnings and Codes list every
// clamp in the order applied, Warning joins the messages, Code is the last
// (binding) clamp and Severity the highest seen.
type Validation struct {
	Requested float64
	Value     float64
	Clamped   bool
	Code      string
	Codes     []string
	Severity  Severity
	Warning   string
	Warnings  []string
}

// MinimumCalories returns the daily intake floor for sex.
func MinimumCalories(sex domain.Sex) int {
	if sex == domain.SexMale {
		return MinCaloriesMale
	}
	return MinCaloriesFemale
}

// Safety is the default calorie/protein validator.
type Safety struct{}

// ValidateCalorieDelta checks a proposed change to the daily calorie target.
// currentTarget is today's target and tdee the expenditure it is based on.
func (Safety) ValidateCalorieDelta(p domain.Profile, currentTarget, tdee, delta int) Validation {
	v := Validation{Requested: float64(delta), Value: float64(delta)}

	if delta > MaxStepKcal || delta < -MaxStepKcal {
		v.Value = math.Copysign(MaxStepKcal, float64(delta))
		v.clamp("calorie_step_limit", SeverityCaution,
			fmt.Sprintf("Calorie change of %+d kcal limited to %+d kcal per adjustment.", delta, int(v.Value)))
	}

	next := currentTarget + int(v.Value)
	if tdee > 0 {
		if lo := tdee - MaxDeficitKcal; next < lo {
			next = lo
			v.Value = float64(next - currentTarget)
			v.clamp("calorie_deficit_limit", SeverityHigh,
				fmt.Sprintf("Deficit capped at %d kcal below expenditure.", MaxDeficitKcal))
		}
		if hi := tdee + MaxSurplusKcal; next > hi {
			next = hi
			v.Value = float64(next - currentTarget)
			v.clamp("calorie_surplus_limit", SeverityCaution,
				fmt.Sprintf("Surplus capped at %d kcal above expenditure.", MaxSurplusKcal))
		}
	}

	if floor := MinimumCalories(p.Sex); next < floor {
		v.Value = float64(floor - currentTarget)
		v.clamp("calorie_floor", SeverityHigh,
			fmt.Sprintf("Daily intake may not drop below %d kcal.", floor))
	}
	return v
}

// ValidateProteinTarget checks a proposed daily protein target in grams.
func (Safety) ValidateProteinTarget(p domain.Profile, grams float64) Validation {
	v := Validation{Requested: grams, Value: grams}
	if p.WeightKG <= 0 {
		return v
	}
	lo := round1(MinProteinPerKG * p.WeightKG)
	hi := round1(MaxProteinPerKG * p.WeightKG)
	switch {
	case grams < lo:
		v.Value = lo
		v.clamp("protein_floor", SeverityCaution,
			fmt.Sprintf("Protein raised to the %.1f g/kg minimum (%.0f g).", MinProteinPerKG, lo))
	case grams > hi:
		v.Value = hi
		v.clamp("protein_ceiling", SeverityCaution,
			fmt.Sprintf("Protein limited to %.1f g/kg (%.0f g).", MaxProteinPerKG, hi))
	}
	return v
}

var severityRank = map[Severity]int{
	"":              0,
	SeverityInfo:    1,
	SeverityCaution: 2,
	SeverityHigh:    3,
}

func (v *Validation) clamp(code string, sev Severity, msg string) {
	v.Clamped = true
	v.Code = code
	v.Codes = append(v.Codes, code)
	if severityRank[sev] > severityRank[v.Severity] {
		v.Severity = sev
	}
	v.Warnings = append(v.Warnings, msg)
	v.Warning = strings.Join(v.Warnings, " ")
}
