package contract

import (
	"time"

	"github.com/alexanderramin/meridian/internal/app"
)

type CalibrationJSON struct {
	Status               string  `json:"status"`
	Reason               string  `json:"reason,omitempty"`
	Applied              bool    `json:"applied"`
	FormulaTDEE          int     `json:"formulaTdee"`
	PreviousEstimate     float64 `json:"previousEstimate"`
	Estimate             float64 `json:"estimate"`
	SuggestedEstimate    float64 `json:"suggestedEstimate"`
	AdjustmentDelta      float64 `json:"adjustmentDelta"`
	Confidence           float64 `json:"confidence"`
	ActualDailyBalance   float64 `json:"actualDailyBalance"`
	IntendedDailyBalance float64 `json:"intendedDailyBalance"`
	ObservedChangeKG     float64 `json:"observedChangeKg"`
	PeriodDays           float64 `json:"periodDays"`
	LastCalibratedAt     *string `json:"lastCalibratedAt"`
}

func FromCalibration(r *app.CalibrateResponse) CalibrationJSON {
	out := CalibrationJSON{
		Status:               string(r.Result.Status),
		Reason:               r.Result.Reason,
		Applied:              r.Applied,
		FormulaTDEE:          r.FormulaTDEE,
		PreviousEstimate:     r.Previous.EstimateKcal,
		Estimate:             r.Current.EstimateKcal,
		SuggestedEstimate:    r.Result.SuggestedEstimate,
		AdjustmentDelta:      r.Result.AdjustmentDelta,
		Confidence:           r.Current.Confidence,
		ActualDailyBalance:   r.Result.ActualDailyBalance,
		IntendedDailyBalance: r.Result.IntendedDailyBalance,
		ObservedChangeKG:     r.Result.ObservedChangeKG,
		PeriodDays:           r.Result.PeriodDays,
	}
	if t := r.Current.LastCalibratedAt; t != nil {
		s := t.UTC().Format(time.RFC3339)
		out.LastCalibratedAt = &s
	}
	return out
}
