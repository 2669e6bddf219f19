package adaptation

import "github.com/alexanderramin/meridian/internal/domain"

type ReportInput struct {
	Profile    domain.Profile
	Logs       []domain.DailyHealthLog
	Weights    []domain.WeightSample
	WindowSize int
	Baseline   Baseline
	Safety     SafetyValidator
}

// AdaptationReport is derived on demand and never persisted.
type AdaptationReport struct {
	InsufficientData bool
	Summary          *PatternSummary
	Stall            WeightStall
	Fatigue          Fatigue
	Compliance       []ComplianceIssue
	Adjustments      []Adjustment
	Warnings         []string
}

// BuildReport runs the analyzer, classifiers and generator over in. With no
// logs it returns InsufficientData and no adjustments; weight stall is still
// evaluated.
func BuildReport(in ReportInput) *AdaptationReport {
	r := &AdaptationReport{
		Stall: DetectWeightStall(in.Weights, in.Profile.Goal, in.Profile.TargetDailyDeltaKcal),
	}
	r.Summary = AnalyzeWindow(in.Logs, in.WindowSize)
	if r.Summary == nil {
		r.InsufficientData = true
		r.Fatigue = Fatigue{Level: FatigueNone}
		return r
	}
	r.Fatigue = ClassifyFatigue(r.Summary)
	r.Compliance = ClassifyCompliance(r.Summary)
	r.Adjustments = NewGenerator(in.Safety).GenerateAdjustments(in.Profile, r.Summary, r.Stall, in.Profile.Goal, in.Baseline)
	for _, a := range r.Adjustments {
		if a.Clamped && a.Warning != "" {
			r.Warnings = append(r.Warnings, a.Warning)
		}
	}
	return r
}
