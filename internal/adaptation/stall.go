package adaptation

import (
	"math"

	"github.com/alexanderramin/meridian/internal/calibration"
	"github.com/alexanderramin/meridian/internal/domain"
)

type StallDirection string

const (
	DirectionNone   StallDirection = "none"
	NeedMoreDeficit StallDirection = "need_more_deficit"
	NeedMoreSurplus StallDirection = "need_more_surplus"
)

const (
	// stallThresholdKG is the smallest change over stallReferenceDays that
	// counts as movement. Shorter or longer spans scale it linearly.
	stallThresholdKG   = 0.3
	stallReferenceDays = 14.0
	minStallSpanDays   = 7.0
)

type WeightStall struct {
	Insufficient bool
	Stalled      bool
	Direction    StallDirection

	ChangeKG    float64
	SpanDays    float64
	ThresholdKG float64
	// ExpectedChangeKG is what the intended daily balance predicts for the span.
	ExpectedChangeKG float64
}

// DetectWeightStall compares the first and last sample of the history. It
// needs at least two samples spanning a week. A stall on a maintenance goal
// is reported with DirectionNone since holding weight is the goal.
func DetectWeightStall(samples []domain.WeightSample, goal domain.GoalType, targetDailyDelta int) WeightStall {
	if len(samples) < 2 {
		return WeightStall{Insufficient: true, Direction: DirectionNone}
	}
	sorted := domain.SortSamplesByDate(samples)
	first, last := sorted[0], sorted[len(sorted)-1]
	span := last.Date.Sub(first.Date).Hours() / 24
	if span < minStallSpanDays {
		return WeightStall{Insufficient: true, Direction: DirectionNone, SpanDays: span}
	}

	change := last.WeightKG - first.WeightKG
	threshold := stallThresholdKG * span / stallReferenceDays
	st := WeightStall{
		Direction:        DirectionNone,
		ChangeKG:         math.Round(change*100) / 100,
		SpanDays:         span,
		ThresholdKG:      math.Round(threshold*100) / 100,
		ExpectedChangeKG: math.Round(float64(targetDailyDelta)*span/calibration.KcalPerKG*100) / 100,
	}
	if math.Abs(change) >= threshold {
		return st
	}
	st.Stalled = true
	switch goal {
	case domain.GoalFatLoss:
		st.Direction = NeedMoreDeficit
	case domain.GoalMuscleGain:
		st.Direction = NeedMoreSurplus
	}
	return st
}
