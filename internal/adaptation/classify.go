package adaptation

import "fmt"

type FatigueLevel string

const (
	FatigueNone     FatigueLevel = "none"
	FatigueModerate FatigueLevel = "moderate"
	FatigueHigh     FatigueLevel = "high"
)

const (
	lowEnergyAvg         = 4.0
	lowSleepAvg          = 6.0
	poorRecoveryDaysHigh = 3

	lowProteinPct     = 70.0
	lowFoodPct        = 60.0
	skipStreakRestart = 3
)

type Fatigue struct {
	Level  FatigueLevel
	Issues []string
}

// ClassifyFatigue counts co-occurring fatigue signals: one is moderate, two
// or more is high.
func ClassifyFatigue(s *PatternSummary) Fatigue {
	f := Fatigue{Level: FatigueNone}
	if s == nil {
		return f
	}
	if s.AvgEnergy != nil && *s.AvgEnergy < lowEnergyAvg {
		f.Issues = append(f.Issues, fmt.Sprintf("average energy %.1f/10", *s.AvgEnergy))
	}
	if s.AvgSleepHours != nil && *s.AvgSleepHours < lowSleepAvg {
		f.Issues = append(f.Issues, fmt.Sprintf("average sleep %.1fh", *s.AvgSleepHours))
	}
	if s.PoorRecoveryDays >= poorRecoveryDaysHigh {
		f.Issues = append(f.Issues, fmt.Sprintf("%d poor-recovery days", s.PoorRecoveryDays))
	}
	switch len(f.Issues) {
	case 0:
	case 1:
		f.Level = FatigueModerate
	default:
		f.Level = FatigueHigh
	}
	return f
}

type ComplianceAction string

const (
	ActionIncreaseProtein ComplianceAction = "increase_protein"
	ActionSimplifyMeals   ComplianceAction = "simplify_meals"
	ActionRestartGently   ComplianceAction = "restart_gently"
)

type ComplianceIssue struct {
	Action ComplianceAction
	Detail string
}

// ClassifyCompliance flags each compliance gap separately.
func ClassifyCompliance(s *PatternSummary) []ComplianceIssue {
	if s == nil {
		return nil
	}
	var out []ComplianceIssue
	if s.AvgProteinCompletion != nil && *s.AvgProteinCompletion < lowProteinPct {
		out = append(out, ComplianceIssue{
			Action: ActionIncreaseProtein,
			Detail: fmt.Sprintf("protein completion averaged %.0f%%", *s.AvgProteinCompletion),
		})
	}
	if s.AvgFoodCompliance != nil && *s.AvgFoodCompliance < lowFoodPct {
		out = append(out, ComplianceIssue{
			Action: ActionSimplifyMeals,
			Detail: fmt.Sprintf("food plan compliance averaged %.0f%%", *s.AvgFoodCompliance),
		})
	}
	if s.ConsecutiveSkips >= skipStreakRestart {
		out = append(out, ComplianceIssue{
			Action: ActionRestartGently,
			Detail: fmt.Sprintf("%d workouts skipped in a row", s.ConsecutiveSkips),
		})
	}
	return out
}
