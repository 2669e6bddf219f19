package advisor

import (
	"math"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/scoring"
)

// Scorers score one day's log for a domain on a 0..100 scale. A nil scorer
// leaves its domain out of the life score.
type Scorers struct {
	Health  func(*domain.DailyHealthLog) float64
	Looks   func(*domain.DailyLooksLog) float64
	Routine func(*domain.DailyRoutineLog) float64
}

func DefaultScorers() Scorers {
	return Scorers{
		Health:  scoring.Health,
		Looks:   scoring.Looks,
		Routine: scoring.Routine,
	}
}

const (
	weightHealth  = 0.5
	weightRoutine = 0.3
	weightLooks   = 0.2
)

// LifeScore blends the domain scores of the logs that are present,
// re-normalizing the weights over them. No logs scores 0.
func LifeScore(s Scorers, health *domain.DailyHealthLog, looks *domain.DailyLooksLog, routine *domain.DailyRoutineLog) int {
	var sum, weights float64
	add := func(w, score float64) {
		sum += w * math.Max(0, math.Min(100, score))
		weights += w
	}
	if health != nil && s.Health != nil {
		add(weightHealth, s.Health(health))
	}
	if routine != nil && s.Routine != nil {
		add(weightRoutine, s.Routine(routine))
	}
	if looks != nil && s.Looks != nil {
		add(weightLooks, s.Looks(looks))
	}
	if weights == 0 {
		return 0
	}
	return int(math.Round(sum / weights))
}
