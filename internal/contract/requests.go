package contract

import "github.com/alexanderramin/meridian/internal/app"

type PlanRequest = app.PlanRequest

func NewPlanRequest(profileID string) PlanRequest {
	return app.NewPlanRequest(profileID)
}

type PlanResponse = app.PlanResponse

type AdaptationRequest = app.AdaptationRequest

func NewAdaptationRequest(profileID string) AdaptationRequest {
	return app.NewAdaptationRequest(profileID)
}

type AdaptationResponse = app.AdaptationResponse

type CalibrateRequest = app.CalibrateRequest

func NewCalibrateRequest(profileID string) CalibrateRequest {
	return app.NewCalibrateRequest(profileID)
}

type CalibrateResponse = app.CalibrateResponse

type PlanErrorCode = app.PlanErrorCode

const (
	PlanErrProfileNotFound PlanErrorCode = app.PlanErrProfileNotFound
	PlanErrInvalidProfile  PlanErrorCode = app.PlanErrInvalidProfile
	PlanErrDataIntegrity   PlanErrorCode = app.PlanErrDataIntegrity
	PlanErrInternal        PlanErrorCode = app.PlanErrInternal
)

type PlanError = app.PlanError

type LogErrorCode = app.LogErrorCode

const (
	LogErrInvalid         LogErrorCode = app.LogErrInvalid
	LogErrProfileNotFound LogErrorCode = app.LogErrProfileNotFound
)

type LogError = app.LogError
