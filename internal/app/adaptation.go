package app

import (
	"time"

	"github.com/alexanderramin/meridian/internal/adaptation"
)

type AdaptationRequest struct {
	ProfileID  string
	Date       *time.Time
	WindowDays int
}

func NewAdaptationRequest(profileID string) AdaptationRequest {
	return AdaptationRequest{
		ProfileID:  profileID,
		WindowDays: adaptation.DefaultWindow,
	}
}

type AdaptationResponse struct {
	ProfileID string
	Date      time.Time
	Baseline  adaptation.Baseline
	Report    *adaptation.AdaptationReport
}
