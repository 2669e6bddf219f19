package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/metrics"
)

// FormatProfile renders a profile with its formula-based targets.
func FormatProfile(p *domain.Profile) string {
	conditions := Dim("none")
	if len(p.Conditions) > 0 {
		names := make([]string, len(p.Conditions))
		for i, c := range p.Conditions {
			names[i] = string(c)
		}
		conditions = strings.Join(names, ", ")
	}

	pairs := [][2]string{
		{"Profile", Bold(p.ID)},
		{"Body", fmt.Sprintf("%s, %d y, %.0f cm, %.1f kg", p.Sex, p.Age, p.HeightCM, p.WeightKG)},
		{"Activity", string(p.ActivityLevel)},
		{"Goal", fmt.Sprintf("%s (%s/day)", p.Goal, SignedKcal(p.TargetDailyDeltaKcal))},
		{"Diet", string(p.Diet)},
		{"Job", string(p.Job)},
		{"Conditions", conditions},
	}
	if bmi, cat := metrics.BMI(p.WeightKG, p.HeightCM); bmi > 0 {
		pairs = append(pairs, [2]string{"BMI", fmt.Sprintf("%.1f %s", bmi, Dim(string(cat)))})
	}
	if t, ok := metrics.ComputeTargets(*p); ok {
		pairs = append(pairs,
			[2]string{"BMR", Kcal(t.BMR)},
			[2]string{"TDEE", Kcal(t.TDEE)},
			[2]string{"Target", Bold(Kcal(t.CalorieTarget))},
			[2]string{"Macros", fmt.Sprintf("P %.0f g  F %.0f g  C %.0f g", t.Macros.ProteinG, t.Macros.FatG, t.Macros.CarbsG)},
		)
	}
	return RenderBox("Profile", KeyValue(pairs))
}

// FormatWeights renders weight samples oldest first.
func FormatWeights(samples []domain.WeightSample) string {
	if len(samples) == 0 {
		return Dim("No weight samples recorded.") + "\n"
	}
	rows := make([][]string, 0, len(samples))
	for i, s := range samples {
		change := Dim("—")
		if i > 0 {
			change = fmt.Sprintf("%+.1f", s.WeightKG-samples[i-1].WeightKG)
		}
		fat := Dim("—")
		if s.BodyFatPct != nil {
			fat = fmt.Sprintf("%.1f%%", *s.BodyFatPct)
		}
		rows = append(rows, []string{
			s.Date.Format(domain.DateLayout),
			fmt.Sprintf("%.1f kg", s.WeightKG),
			change,
			fat,
		})
	}
	return RenderBox("Weight", RenderTable([]string{"DATE", "WEIGHT", "CHANGE", "BODY FAT"}, rows))
}
