package app

import (
	"time"

	"github.com/alexanderramin/meridian/internal/calibration"
	"github.com/alexanderramin/meridian/internal/domain"
)

type CalibrateRequest struct {
	ProfileID string
	Now       *time.Time
	// Samples is how many of the most recent weight samples to fit.
	Samples int
}

func NewCalibrateRequest(profileID string) CalibrateRequest {
	return CalibrateRequest{
		ProfileID: profileID,
		Samples:   domain.MaxCalibrationPoints,
	}
}

type CalibrateResponse struct {
	Result calibration.Result
	// FormulaTDEE is the Mifflin-St Jeor estimate used when no calibrated
	// estimate exists yet.
	FormulaTDEE int
	Previous    domain.CalibrationState
	Current     domain.CalibrationState
	Applied     bool
}
