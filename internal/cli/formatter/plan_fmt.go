package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
)

// FormatPlan renders a generated plan as a styled dashboard.
func FormatPlan(resp *contract.PlanResponse) string {
	p := resp.Plan
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s  Life score %s\n\n",
		Bold(p.Date.Format(domain.DateLayout)),
		ModeIndicator(p.Mode),
		ScoreStyle(p.LifeScore).Render(fmt.Sprintf("%d", p.LifeScore)),
	))

	source := "formula"
	if resp.Calibrated {
		source = "calibrated"
	}
	a := p.Adjustments
	target := resp.Baseline.CalorieTarget + a.CalorieDelta
	b.WriteString(KeyValue([][2]string{
		{"Calories", fmt.Sprintf("%s (%s)", Kcal(target), SignedKcal(a.CalorieDelta))},
		{"TDEE", fmt.Sprintf("%s %s", Kcal(resp.Baseline.TDEE), Dim(source))},
		{"Protein", fmt.Sprintf("%.0f g", a.ProteinTargetG)},
		{"Workout", workoutSummary(a.RestDay, a.WorkoutIntensity)},
		{"Meals", string(a.MealComplexity)},
		{"Routine", string(a.RoutineLevel)},
	}))

	if len(p.Timeline) > 0 {
		b.WriteString("\n" + Header("Timeline") + "\n")
		for _, t := range p.Timeline {
			b.WriteString(fmt.Sprintf("%s  %s\n", DomainStyle(t.Domain).Render(t.Time), t.Activity))
		}
	}

	if len(p.Explanations) > 0 {
		b.WriteString("\n" + Header("Why") + "\n")
		for _, e := range p.Explanations {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				PriorityStyle(e.Priority).Render(fmt.Sprintf("P%d", e.Priority)),
				e.Message,
				Dim("("+e.RuleID+")"),
			))
		}
	}

	if len(p.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range p.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}

	return RenderBox("Daily plan", b.String())
}

func workoutSummary(rest bool, intensity float64) string {
	if rest {
		return StyleYellow.Render("rest day")
	}
	return fmt.Sprintf("%s intensity", Percent(intensity))
}
