package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/meridian/internal/contract"
)

// FormatCalibration renders a recalibration outcome.
func FormatCalibration(resp *contract.CalibrateResponse) string {
	var b strings.Builder
	r := resp.Result

	if !r.OK() {
		b.WriteString(StyleYellow.Render("Cannot calibrate: "+r.Reason) + "\n\n")
		b.WriteString(KeyValue([][2]string{
			{"Formula TDEE", Kcal(resp.FormulaTDEE)},
			{"Estimate", estimateOrDash(resp.Current.EstimateKcal)},
		}))
		return RenderBox("Calibration", b.String())
	}

	b.WriteString(KeyValue([][2]string{
		{"Observed", fmt.Sprintf("%+.2f kg over %.0f days", r.ObservedChangeKG, r.PeriodDays)},
		{"Balance", fmt.Sprintf("%s actual vs %s intended", SignedKcal(int(r.ActualDailyBalance)), SignedKcal(int(r.IntendedDailyBalance)))},
		{"Suggested", fmt.Sprintf("%s (%s)", Kcal(int(r.SuggestedEstimate)), SignedKcal(int(r.AdjustmentDelta)))},
		{"Estimate", fmt.Sprintf("%s → %s", estimateOrDash(resp.Previous.EstimateKcal), Bold(Kcal(int(resp.Current.EstimateKcal))))},
		{"Confidence", Percent(resp.Current.Confidence)},
		{"Formula TDEE", Dim(Kcal(resp.FormulaTDEE))},
	}))
	return RenderBox("Calibration", b.String())
}

func estimateOrDash(v float64) string {
	if v <= 0 {
		return Dim("—")
	}
	return Kcal(int(v))
}
