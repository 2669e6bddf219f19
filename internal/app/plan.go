package app

import (
	"time"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/advisor"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/metrics"
)

type PlanRequest struct {
	ProfileID string
	// Date defaults to today (UTC) when nil.
	Date *time.Time
	Mode domain.UserMode
	// Goals adds secondary goals to the profile's primary one.
	Goals      []domain.GoalType
	WindowDays int
	Persist    bool
}

func NewPlanRequest(profileID string) PlanRequest {
	return PlanRequest{
		ProfileID:  profileID,
		Mode:       domain.ModeNormal,
		WindowDays: adaptation.DefaultWindow,
		Persist:    true,
	}
}

type PlanResponse struct {
	ProfileID string
	Plan      advisor.Plan
	Targets   metrics.Targets
	Baseline  adaptation.Baseline
	// Calibrated is true when the baseline TDEE came from the calibrated
	// estimate instead of the formula.
	Calibrated bool
	Report     *adaptation.AdaptationReport
}

type PlanErrorCode string

const (
	PlanErrProfileNotFound PlanErrorCode = "PROFILE_NOT_FOUND"
	PlanErrInvalidProfile  PlanErrorCode = "INVALID_PROFILE"
	PlanErrDataIntegrity   PlanErrorCode = "DATA_INTEGRITY"
	PlanErrInternal        PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
