package metrics

import (
	"math"

	"github.com/alexanderramin/meridian/internal/domain"
)

// activityMultipliers maps activity level to its TDEE multiplier. This is the
// single source of truth for valid activity levels in energy math.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// proteinPerKG is grams of protein per kg of body weight by goal.
var proteinPerKG = map[domain.GoalType]float64{
	domain.GoalFatLoss:     2.0,
	domain.GoalMaintenance: 1.6,
	domain.GoalMuscleGain:  2.0,
}

const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarb    = 4.0
	kcalPerGramFat     = 9.0

	ketoCarbCapG = 30.0
)

// ActivityMultiplier returns the multiplier for level and whether it is known.
func ActivityMultiplier(level domain.ActivityLevel) (float64, bool) {
	m, ok := activityMultipliers[level]
	return m, ok
}

// BMR returns basal metabolic rate via Mifflin-St Jeor.
func BMR(sex domain.Sex, weightKG, heightCM float64, age int) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == domain.SexMale {
		return bmr + 5
	}
	return bmr - 161
}

type Macros struct {
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// Targets is the theoretical daily baseline derived from a profile snapshot.
type Targets struct {
	BMR           int
	TDEE          int
	CalorieTarget int
	Macros        Macros
}

// ComputeTargets derives BMR, TDEE, calorie target and macro split.
// Returns ok=false when the activity level is unknown or a body metric is
// missing; callers render a neutral state instead of guessing.
func ComputeTargets(p domain.Profile) (Targets, bool) {
	mult, found := activityMultipliers[p.ActivityLevel]
	if !found || p.WeightKG <= 0 || p.HeightCM <= 0 || p.Age <= 0 {
		return Targets{}, false
	}
	bmr := BMR(p.Sex, p.WeightKG, p.HeightCM, p.Age)
	tdee := bmr * mult
	return TargetsFromTDEE(p, bmr, tdee), true
}

// TargetsFromTDEE builds targets around an externally supplied expenditure,
// used when a calibrated estimate replaces the formula.
func TargetsFromTDEE(p domain.Profile, bmr, tdee float64) Targets {
	target := tdee + float64(p.TargetDailyDeltaKcal)
	floor := float64(MinimumCalories(p.Sex))
	if target < floor {
		target = floor
	}
	return Targets{
		BMR:           int(math.Round(bmr)),
		TDEE:          int(math.Round(tdee)),
		CalorieTarget: int(math.Round(target)),
		Macros:        MacroSplit(p, target),
	}
}

// MacroSplit divides calories into protein, fat and carbs. Protein is set
// per kg of body weight, fat takes a fixed share, carbs take the remainder.
func MacroSplit(p domain.Profile, calories float64) Macros {
	perKG, ok := proteinPerKG[p.Goal]
	if !ok {
		perKG = proteinPerKG[domain.GoalMaintenance]
	}
	protein := perKG * p.WeightKG

	fatShare := 0.25
	if p.Diet == domain.DietKeto {
		fatShare = 0.70
	}
	fat := calories * fatShare / kcalPerGramFat

	carbs := (calories - protein*kcalPerGramProtein - fat*kcalPerGramFat) / kcalPerGramCarb
	if carbs < 0 {
		carbs = 0
	}
	if p.Diet == domain.DietKeto && carbs > ketoCarbCapG {
		// Calories freed by the carb cap move to fat.
		fat += (carbs - ketoCarbCapG) * kcalPerGramCarb / kcalPerGramFat
		carbs = ketoCarbCapG
	}
	return Macros{
		ProteinG: round1(protein),
		CarbsG:   round1(carbs),
		FatG:     round1(fat),
	}
}

type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// BMI returns body-mass index and its WHO category. Zero height yields 0.
func BMI(weightKG, heightCM float64) (float64, BMICategory) {
	if heightCM <= 0 {
		return 0, ""
	}
	m := heightCM / 100
	bmi := round1(weightKG / (m * m))
	switch {
	case bmi < 18.5:
		return bmi, BMIUnderweight
	case bmi < 25:
		return bmi, BMINormal
	case bmi < 30:
		return bmi, BMIOverweight
	default:
		return bmi, BMIObese
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
