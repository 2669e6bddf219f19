package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
)

// FormatAdaptation renders the pattern report and proposed adjustments.
func FormatAdaptation(resp *contract.AdaptationResponse) string {
	r := resp.Report
	var b strings.Builder

	if r == nil || r.InsufficientData {
		b.WriteString(Dim("Not enough logged days to analyze yet.") + "\n")
	}
	if r != nil && r.Summary != nil {
		s := r.Summary
		b.WriteString(fmt.Sprintf("%s to %s, %d of %d days logged\n\n",
			s.From.Format(domain.DateLayout), s.To.Format(domain.DateLayout), s.Days, s.WindowSize))
		b.WriteString(KeyValue([][2]string{
			{"Sleep", OptionalFloat(s.AvgSleepHours, "h")},
			{"Energy", OptionalFloat(s.AvgEnergy, "")},
			{"Stress", OptionalFloat(s.AvgStress, "")},
			{"Protein", OptionalFloat(s.AvgProteinCompletion, "%")},
			{"Food", OptionalFloat(s.AvgFoodCompliance, "%")},
			{"Workouts", fmt.Sprintf("%d done, %d skipped", s.WorkoutsDone, s.WorkoutsSkipped)},
			{"Fatigue", FatigueIndicator(r.Fatigue.Level)},
		}))
	}

	if r != nil {
		b.WriteString("\n" + Header("Weight") + "\n")
		b.WriteString(stallSummary(r.Stall) + "\n")

		if len(r.Adjustments) > 0 {
			b.WriteString("\n" + Header("Adjustments") + "\n")
			rows := make([][]string, 0, len(r.Adjustments))
			for _, a := range r.Adjustments {
				value := fmt.Sprintf("%g", a.Value)
				if a.Clamped {
					value += StyleYellow.Render(" (clamped)")
				}
				rows = append(rows, []string{
					Bold(string(a.Kind)),
					value,
					a.Action,
					Dim(a.Rationale),
				})
			}
			b.WriteString(RenderTable([]string{"KIND", "VALUE", "ACTION", "WHY"}, rows))
		}

		if len(r.Warnings) > 0 {
			b.WriteString("\n")
			for _, w := range r.Warnings {
				b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
			}
		}
	}

	return RenderBox("Adaptation", b.String())
}

func stallSummary(s adaptation.WeightStall) string {
	switch {
	case s.Insufficient:
		return Dim("Not enough weight samples.")
	case s.Stalled:
		return StyleYellow.Render(fmt.Sprintf("Stalled: %+.1f kg over %.0f days (%s)", s.ChangeKG, s.SpanDays, s.Direction))
	default:
		return StyleGreen.Render(fmt.Sprintf("Moving: %+.1f kg over %.0f days", s.ChangeKG, s.SpanDays))
	}
}
