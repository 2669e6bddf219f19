package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/advisor"
	"github.com/alexanderramin/meridian/internal/calibration"
	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/stretchr/testify/assert"
)

var day = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"wide value", "x"}, {"y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[0], "LONGER"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatPlan(t *testing.T) {
	resp := &contract.PlanResponse{
		ProfileID: "p",
		Plan: advisor.Plan{
			Date: day,
			Mode: domain.ModeSick,
			Adjustments: advisor.Adjustments{
				RestDay:        true,
				CalorieDelta:   -150,
				ProteinTargetG: 160,
				MealComplexity: domain.MealSimple,
				RoutineLevel:   domain.RoutineMinimal,
			},
			Explanations: []advisor.Explanation{
				{RuleID: "mode_sick", Message: "Recovery comes first today.", Priority: 0},
			},
			Timeline:  []advisor.TimelineEntry{{Time: "08:00", Activity: "Breakfast", Domain: advisor.TimelineNutrition}},
			LifeScore: 62,
			Warnings:  []string{"rule x skipped: boom"},
		},
		Baseline:   adaptation.Baseline{CalorieTarget: 2259, TDEE: 2759, ProteinTargetG: 160},
		Calibrated: true,
	}

	out := FormatPlan(resp)
	assert.Contains(t, out, "2025-03-15")
	assert.Contains(t, out, "SICK")
	assert.Contains(t, out, "2109 kcal")
	assert.Contains(t, out, "calibrated")
	assert.Contains(t, out, "rest day")
	assert.Contains(t, out, "Breakfast")
	assert.Contains(t, out, "mode_sick")
	assert.Contains(t, out, "WARNING: rule x skipped: boom")
}

func TestFormatAdaptation_InsufficientData(t *testing.T) {
	out := FormatAdaptation(&contract.AdaptationResponse{ProfileID: "p", Date: day})
	assert.Contains(t, out, "Not enough logged days")
}

func TestFormatAdaptation_WithAdjustments(t *testing.T) {
	sleep := 5.5
	resp := &contract.AdaptationResponse{
		ProfileID: "p",
		Date:      day,
		Report: &adaptation.AdaptationReport{
			Summary: &adaptation.PatternSummary{WindowSize: 7, Days: 5, From: day.AddDate(0, 0, -6), To: day, AvgSleepHours: &sleep},
			Stall:   adaptation.WeightStall{Stalled: true, ChangeKG: -0.1, SpanDays: 14, Direction: adaptation.NeedMoreDeficit},
			Fatigue: adaptation.Fatigue{Level: adaptation.FatigueHigh},
			Adjustments: []adaptation.Adjustment{
				{Kind: adaptation.KindRestDay, Value: 1, Action: "take_rest_day", Rationale: "high fatigue"},
			},
		},
	}

	out := FormatAdaptation(resp)
	assert.Contains(t, out, "5 of 7 days logged")
	assert.Contains(t, out, "5.5 h")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "Stalled")
	assert.Contains(t, out, "rest_day")
	assert.NotContains(t, out, "Not enough logged days")
}

func TestFormatCalibration(t *testing.T) {
	ok := &contract.CalibrateResponse{
		Result:      calibration.Calibrate(2759, -500, -0.5, 14),
		FormulaTDEE: 2759,
		Previous:    domain.CalibrationState{},
		Current:     domain.CalibrationState{EstimateKcal: 2984, Confidence: 0.5},
		Applied:     true,
	}
	out := FormatCalibration(ok)
	assert.Contains(t, out, "-0.50 kg over 14 days")
	assert.Contains(t, out, "2984 kcal")
	assert.Contains(t, out, "50%")

	cannot := &contract.CalibrateResponse{
		Result:      calibration.CalibrateFromSamples(2759, -500, nil),
		FormulaTDEE: 2759,
	}
	assert.Contains(t, FormatCalibration(cannot), "Cannot calibrate")
}

func TestFormatWeights(t *testing.T) {
	assert.Contains(t, FormatWeights(nil), "No weight samples")

	out := FormatWeights([]domain.WeightSample{
		{Date: day, WeightKG: 80},
		{Date: day.AddDate(0, 0, 7), WeightKG: 79.4},
	})
	assert.Contains(t, out, "80.0 kg")
	assert.Contains(t, out, "-0.6")
}

func TestFormatProfile(t *testing.T) {
	p := &domain.Profile{
		ID: "alice", Sex: domain.SexMale, Age: 30, HeightCM: 180, WeightKG: 80,
		ActivityLevel: domain.ActivityModerate, Goal: domain.GoalFatLoss, TargetDailyDeltaKcal: -500,
	}
	out := FormatProfile(p)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "2759 kcal")
	assert.Contains(t, out, "2259 kcal")
	assert.Contains(t, out, "24.7")
}
