package contract

import (
	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/domain"
)

type AdaptationJSON struct {
	InsufficientData bool                `json:"insufficientData"`
	Summary          *PatternSummaryJSON `json:"summary"`
	Stall            WeightStallJSON     `json:"weightStall"`
	Fatigue          FatigueJSON         `json:"fatigue"`
	Compliance       []ComplianceJSON    `json:"compliance"`
	Adjustments      []AdjustmentJSON    `json:"adjustments"`
	Warnings         []string            `json:"warnings"`
}

type PatternSummaryJSON struct {
	WindowSize            int      `json:"windowSize"`
	Days                  int      `json:"days"`
	From                  string   `json:"from"`
	To                    string   `json:"to"`
	AvgSleepHours         *float64 `json:"avgSleepHours"`
	AvgEnergy             *float64 `json:"avgEnergy"`
	AvgStress             *float64 `json:"avgStress"`
	AvgMood               *float64 `json:"avgMood"`
	AvgProteinCompletion  *float64 `json:"avgProteinCompletion"`
	AvgFoodCompliance     *float64 `json:"avgFoodCompliance"`
	PoorRecoveryDays      int      `json:"poorRecoveryDays"`
	IllDays               int      `json:"illDays"`
	WorkoutsDone          int      `json:"workoutsDone"`
	WorkoutsSkipped       int      `json:"workoutsSkipped"`
	WorkoutCompletionRate *float64 `json:"workoutCompletionRate"`
	ConsecutiveSkips      int      `json:"consecutiveSkips"`
	RecoverySkips         int      `json:"recoverySkips"`
}

type WeightStallJSON struct {
	Insufficient     bool    `json:"insufficient"`
	Stalled          bool    `json:"stalled"`
	Direction        string  `json:"direction"`
	ChangeKG         float64 `json:"changeKg"`
	SpanDays         float64 `json:"spanDays"`
	ThresholdKG      float64 `json:"thresholdKg"`
	ExpectedChangeKG float64 `json:"expectedChangeKg"`
}

type FatigueJSON struct {
	Level  string   `json:"level"`
	Issues []string `json:"issues"`
}

type ComplianceJSON struct {
	Action string `json:"action"`
	Detail string `json:"detail"`
}

type AdjustmentJSON struct {
	Kind      string  `json:"kind"`
	Value     float64 `json:"value"`
	Priority  int     `json:"priority"`
	Action    string  `json:"action"`
	Rationale string  `json:"rationale"`
	Clamped   bool    `json:"clamped"`
	Warning   string  `json:"warning,omitempty"`
}

func FromReport(r *adaptation.AdaptationReport) AdaptationJSON {
	out := AdaptationJSON{
		Compliance:  []ComplianceJSON{},
		Adjustments: []AdjustmentJSON{},
		Warnings:    []string{},
		Fatigue:     FatigueJSON{Issues: []string{}},
	}
	if r == nil {
		out.InsufficientData = true
		return out
	}
	out.InsufficientData = r.InsufficientData
	out.Stall = WeightStallJSON{
		Insufficient:     r.Stall.Insufficient,
		Stalled:          r.Stall.Stalled,
		Direction:        string(r.Stall.Direction),
		ChangeKG:         r.Stall.ChangeKG,
		SpanDays:         r.Stall.SpanDays,
		ThresholdKG:      r.Stall.ThresholdKG,
		ExpectedChangeKG: r.Stall.ExpectedChangeKG,
	}
	out.Fatigue.Level = string(r.Fatigue.Level)
	out.Fatigue.Issues = append(out.Fatigue.Issues, r.Fatigue.Issues...)
	for _, c := range r.Compliance {
		out.Compliance = append(out.Compliance, ComplianceJSON{Action: string(c.Action), Detail: c.Detail})
	}
	for _, a := range r.Adjustments {
		out.Adjustments = append(out.Adjustments, AdjustmentJSON{
			Kind:      string(a.Kind),
			Value:     a.Value,
			Priority:  a.Priority,
			Action:    a.Action,
			Rationale: a.Rationale,
			Clamped:   a.Clamped,
			Warning:   a.Warning,
		})
	}
	out.Warnings = append(out.Warnings, r.Warnings...)

	if s := r.Summary; s != nil {
		out.Summary = &PatternSummaryJSON{
			WindowSize:            s.WindowSize,
			Days:                  s.Days,
			From:                  s.From.Format(domain.DateLayout),
			To:                    s.To.Format(domain.DateLayout),
			AvgSleepHours:         s.AvgSleepHours,
			AvgEnergy:             s.AvgEnergy,
			AvgStress:             s.AvgStress,
			AvgMood:               s.AvgMood,
			AvgProteinCompletion:  s.AvgProteinCompletion,
			AvgFoodCompliance:     s.AvgFoodCompliance,
			PoorRecoveryDays:      s.PoorRecoveryDays,
			IllDays:               s.IllDays,
			WorkoutsDone:          s.WorkoutsDone,
			WorkoutsSkipped:       s.WorkoutsSkipped,
			WorkoutCompletionRate: s.WorkoutCompletionRate,
			ConsecutiveSkips:      s.ConsecutiveSkips,
			RecoverySkips:         s.RecoverySkips,
		}
	}
	return out
}
