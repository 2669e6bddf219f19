package adaptation

import (
	"testing"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/stretchr/testify/assert"
)

func weights(stepDays int, kg ...float64) []domain.WeightSample {
	out := make([]domain.WeightSample, len(kg))
	for i, w := range kg {
		out[i] = domain.WeightSample{Date: today.AddDate(0, 0, -(len(kg)-1-i)*stepDays), WeightKG: w}
	}
	return out
}

func TestDetectWeightStall_FatLossScenario(t *testing.T) {
	st := DetectWeightStall(weights(7, 80, 79.9, 79.8), domain.GoalFatLoss, -500)
	assert.False(t, st.Insufficient)
	assert.True(t, st.Stalled)
	assert.Equal(t, NeedMoreDeficit, st.Direction)
	assert.Equal(t, -0.2, st.ChangeKG)
	assert.Equal(t, 14.0, st.SpanDays)
	assert.Equal(t, -0.91, st.ExpectedChangeKG)
}

func TestDetectWeightStall_MuscleGain(t *testing.T) {
	st := DetectWeightStall(weights(7, 70, 70.1, 70.1), domain.GoalMuscleGain, 300)
	assert.True(t, st.Stalled)
	assert.Equal(t, NeedMoreSurplus, st.Direction)
}

func TestDetectWeightStall_MaintenanceIsNotFlagged(t *testing.T) {
	st := DetectWeightStall(weights(7, 70, 70, 70.1), domain.GoalMaintenance, 0)
	assert.True(t, st.Stalled)
	assert.Equal(t, DirectionNone, st.Direction)
}

func TestDetectWeightStall_Progressing(t *testing.T) {
	st := DetectWeightStall(weights(7, 80, 79.5, 79), domain.GoalFatLoss, -500)
	assert.False(t, st.Stalled)
	assert.Equal(t, DirectionNone, st.Direction)
}

func TestDetectWeightStall_ThresholdScalesWithSpan(t *testing.T) {
	// 0.2 kg over 7 days beats the 0.15 kg threshold for that span.
	st := DetectWeightStall(weights(7, 80, 79.8), domain.GoalFatLoss, -500)
	assert.Equal(t, 0.15, st.ThresholdKG)
	assert.False(t, st.Stalled)
}

func TestDetectWeightStall_Insufficient(t *testing.T) {
	assert.True(t, DetectWeightStall(nil, domain.GoalFatLoss, -500).Insufficient)
	assert.True(t, DetectWeightStall(weights(7, 80), domain.GoalFatLoss, -500).Insufficient)
	assert.True(t, DetectWeightStall(weights(2, 80, 80, 80), domain.GoalFatLoss, -500).Insufficient,
		"4 days is too short to call a stall")
}
