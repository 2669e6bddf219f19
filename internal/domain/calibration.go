package domain

import "time"

// MaxCalibrationPoints bounds how many (weight, intake) pairs are kept.
const MaxCalibrationPoints = 8

type CalibrationPoint struct {
	Date             time.Time
	WeightKG         float64
	TargetIntakeKcal int
}

// CalibrationState is the persisted, per-profile expenditure estimate that
// improves as weight history accumulates.
type CalibrationState struct {
	ProfileID        string
	EstimateKcal     float64
	Confidence       float64
	LastCalibratedAt *time.Time
	Points           []CalibrationPoint
}

// AppendPoint adds p and drops the oldest points beyond MaxCalibrationPoints.
func (s *CalibrationState) AppendPoint(p CalibrationPoint) {
	s.Points = append(s.Points, p)
	if over := len(s.Points) - MaxCalibrationPoints; over > 0 {
		s.Points = append([]CalibrationPoint(nil), s.Points[over:]...)
	}
}
