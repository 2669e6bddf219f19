package calibration

import (
	"math"
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
)

// KcalPerKG is the energy-balance identity: roughly 7700 kcal per kg of
// body-mass change.
const KcalPerKG = 7700.0

const (
	// fullConfidenceDays is the observation period at which a calibration
	// is trusted fully.
	fullConfidenceDays = 28.0
	// maxCorrectionPct bounds a single suggestion relative to the current estimate.
	maxCorrectionPct = 0.25
	// smoothingWeight is the share of a fully-confident suggestion blended
	// into the rolling estimate.
	smoothingWeight = 0.3
)

type Status string

const (
	StatusOK              Status = "ok"
	StatusCannotCalibrate Status = "cannot_calibrate"
)

type Result struct {
	Status Status
	// Reason explains a cannot_calibrate result.
	Reason string

	SuggestedEstimate float64
	AdjustmentDelta   float64
	Confidence        float64

	// ActualDailyBalance is the average daily energy balance implied by the
	// observed weight change; IntendedDailyBalance is the planned one.
	ActualDailyBalance   float64
	IntendedDailyBalance float64
	ObservedChangeKG     float64
	PeriodDays           float64
}

// OK reports whether the result carries a usable estimate.
func (r Result) OK() bool { return r.Status == StatusOK }

func cannot(reason string) Result {
	return Result{Status: StatusCannotCalibrate, Reason: reason}
}

// Calibrate infers the real expenditure from observed weight change.
//
// The observed change over periodDays implies an actual daily balance; the
// estimate moves by (actual - intended). Losing less than planned on a cut
// raises the estimate, losing more lowers it. The correction is bounded to
// ±25% of the current estimate.
func Calibrate(currentEstimate, targetDailyDelta, observedWeightChange, periodDays float64) Result {
	if !finite(currentEstimate, targetDailyDelta, observedWeightChange, periodDays) {
		return cannot("calibration inputs must be finite numbers")
	}
	if currentEstimate <= 0 {
		return cannot("no current expenditure estimate")
	}
	if periodDays <= 0 {
		return cannot("observation period must be positive")
	}

	actual := observedWeightChange * KcalPerKG / periodDays
	correction := actual - targetDailyDelta

	limit := currentEstimate * maxCorrectionPct
	correction = math.Max(-limit, math.Min(limit, correction))
	suggested := math.Round(currentEstimate + correction)

	return Result{
		Status:               StatusOK,
		SuggestedEstimate:    suggested,
		AdjustmentDelta:      suggested - currentEstimate,
		Confidence:           math.Min(1, periodDays/fullConfidenceDays),
		ActualDailyBalance:   math.Round(actual),
		IntendedDailyBalance: targetDailyDelta,
		ObservedChangeKG:     math.Round(observedWeightChange*100) / 100,
		PeriodDays:           periodDays,
	}
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CalibrateFromSamples calibrates over the span between the oldest and
// newest sample. Fewer than two samples, or samples on a single day, cannot
// calibrate.
func CalibrateFromSamples(currentEstimate, targetDailyDelta float64, samples []domain.WeightSample) Result {
	if len(samples) < 2 {
		return cannot("at least two weight samples are required")
	}
	sorted := domain.SortSamplesByDate(samples)
	first, last := sorted[0], sorted[len(sorted)-1]
	days := last.Date.Sub(first.Date).Hours() / 24
	if days <= 0 {
		return cannot("weight samples must span more than one day")
	}
	return Calibrate(currentEstimate, targetDailyDelta, last.WeightKG-first.WeightKG, days)
}

// Apply folds a successful result into the rolling state. The blend weight
// scales with confidence so short observation windows move the estimate
// less. Unsuccessful results leave the state untouched.
func Apply(state domain.CalibrationState, r Result, now time.Time) domain.CalibrationState {
	if !r.OK() {
		return state
	}
	next := state
	next.Points = append([]domain.CalibrationPoint(nil), state.Points...)

	if state.EstimateKcal <= 0 {
		next.EstimateKcal = r.SuggestedEstimate
	} else {
		w := smoothingWeight * r.Confidence
		next.EstimateKcal = math.Round((1-w)*state.EstimateKcal + w*r.SuggestedEstimate)
	}
	next.Confidence = r.Confidence
	at := now
	next.LastCalibratedAt = &at
	return next
}
