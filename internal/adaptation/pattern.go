// Package adaptation turns a trailing window of daily logs and weight history
// into classified patterns and a prioritized list of plan adjustments.
package adaptation

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
)

// DefaultWindow is the number of most recent logs analyzed when the caller
// does not choose a window.
const DefaultWindow = 7

// PatternSummary is the statistics of one analysis window. Averages are nil
// when no log in the window carried the field.
type PatternSummary struct {
	WindowSize int
	Days       int
	From       time.Time
	To         time.Time

	AvgSleepHours        *float64
	AvgEnergy            *float64
	AvgStress            *float64
	AvgMood              *float64
	AvgProteinCompletion *float64
	AvgFoodCompliance    *float64

	PoorRecoveryDays int
	IllDays          int

	WorkoutsDone          int
	WorkoutsSkipped       int
	WorkoutCompletionRate *float64
	// ConsecutiveSkips counts skipped workouts back from the most recent day.
	ConsecutiveSkips int
	// RecoverySkips counts skips whose reason says the body needed rest.
	RecoverySkips int
}

type runningMean struct {
	sum float64
	n   int
}

func (m *runningMean) add(v float64) {
	m.sum += v
	m.n++
}

func (m *runningMean) value() *float64 {
	if m.n == 0 {
		return nil
	}
	v := math.Round(m.sum/float64(m.n)*100) / 100
	return &v
}

// AnalyzeWindow summarizes the windowSize most recent logs. It returns nil
// when there are no logs. A non-positive windowSize means DefaultWindow.
func AnalyzeWindow(logs []domain.DailyHealthLog, windowSize int) *PatternSummary {
	if len(logs) == 0 {
		return nil
	}
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}

	recent := make([]domain.DailyHealthLog, len(logs))
	copy(recent, logs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > windowSize {
		recent = recent[:windowSize]
	}

	s := &PatternSummary{
		WindowSize: windowSize,
		Days:       len(recent),
		From:       recent[len(recent)-1].Date,
		To:         recent[0].Date,
	}

	var sleep, energy, stress, mood, protein, food runningMean
	trailing := true
	for i := range recent {
		l := &recent[i]
		if l.SleepHours != nil {
			sleep.add(*l.SleepHours)
		}
		if l.Energy != nil {
			energy.add(float64(*l.Energy))
		}
		if l.StressLevel != nil {
			stress.add(float64(*l.StressLevel))
		}
		if l.Mood != nil {
			mood.add(float64(*l.Mood))
		}
		if l.ProteinCompletionPct != nil {
			protein.add(*l.ProteinCompletionPct)
		}
		if l.FoodCompliancePct != nil {
			food.add(*l.FoodCompliancePct)
		}
		if l.PoorRecovery() {
			s.PoorRecoveryDays++
		}
		if l.Ill {
			s.IllDays++
		}

		switch {
		case l.WorkoutSkipped:
			s.WorkoutsSkipped++
			if domain.SkipReasons[l.SkipReason].Recovery {
				s.RecoverySkips++
			}
			if trailing {
				s.ConsecutiveSkips++
			}
		case l.WorkoutDone != nil && *l.WorkoutDone:
			s.WorkoutsDone++
			trailing = false
		default:
			trailing = false
		}
	}

	s.AvgSleepHours = sleep.value()
	s.AvgEnergy = energy.value()
	s.AvgStress = stress.value()
	s.AvgMood = mood.value()
	s.AvgProteinCompletion = protein.value()
	s.AvgFoodCompliance = food.value()

	if total := s.WorkoutsDone + s.WorkoutsSkipped; total > 0 {
		rate := math.Round(float64(s.WorkoutsDone)/float64(total)*1000) / 10
		s.WorkoutCompletionRate = &rate
	}
	return s
}
