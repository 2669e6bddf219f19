package advisor

import (
	"slices"
	"sort"
	"time"

	"github.com/alexanderramin/meridian/internal/adaptation"
	"github.com/alexanderramin/meridian/internal/domain"
)

// PlanContext is everything one plan computation reads. It is never
// modified by the advisor.
type PlanContext struct {
	Date    time.Time
	Profile domain.Profile

	Health  *domain.DailyHealthLog
	Looks   *domain.DailyLooksLog
	Routine *domain.DailyRoutineLog

	// Trailing holds prior days' health logs, most recent first.
	Trailing []domain.DailyHealthLog
	// Goals lists active goals in addition to Profile.Goal.
	Goals []domain.GoalType
	Mode  domain.UserMode

	Baseline    adaptation.Baseline
	Adaptations []adaptation.Adjustment
}

func (c *PlanContext) hasGoal(g domain.GoalType) bool {
	return c.Profile.Goal == g || slices.Contains(c.Goals, g)
}

func (c *PlanContext) sleepHours() (*float64, error) {
	if c.Health == nil {
		return nil, nil
	}
	if err := domain.CheckFloatRange("sleep_hours", c.Health.SleepHours, 0, 24); err != nil {
		return nil, err
	}
	return c.Health.SleepHours, nil
}

// intField returns a validated 1..10 rating from today's health log.
func (c *PlanContext) intField(name string, get func(*domain.DailyHealthLog) *int) (*int, error) {
	if c.Health == nil {
		return nil, nil
	}
	v := get(c.Health)
	if err := domain.CheckIntRange(name, v, 1, 10); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *PlanContext) stress() (*int, error) {
	return c.intField("stress_level", func(l *domain.DailyHealthLog) *int { return l.StressLevel })
}

func (c *PlanContext) energy() (*int, error) {
	return c.intField("energy", func(l *domain.DailyHealthLog) *int { return l.Energy })
}

// shortSleepStreak reports whether the n most recent trailing days all had
// under six hours of sleep.
func (c *PlanContext) shortSleepStreak(n int) (bool, error) {
	if len(c.Trailing) < n {
		return false, nil
	}
	for i := 0; i < n; i++ {
		h := c.Trailing[i].SleepHours
		if err := domain.CheckFloatRange("trailing sleep_hours", h, 0, 24); err != nil {
			return false, err
		}
		if h == nil || *h >= 6 {
			return false, nil
		}
	}
	return true, nil
}

// trailingSkips counts skipped workouts back from the most recent prior day.
func (c *PlanContext) trailingSkips() int {
	n := 0
	for _, l := range c.Trailing {
		if !l.WorkoutSkipped {
			break
		}
		n++
	}
	return n
}

// adaptation returns the highest-priority adaptation adjustment of kind.
func (c *PlanContext) adaptation(kind adaptation.Kind) *adaptation.Adjustment {
	for i := range c.Adaptations {
		if c.Adaptations[i].Kind == kind {
			return &c.Adaptations[i]
		}
	}
	return nil
}

// normalized returns a copy with trailing logs ordered most recent first
// and adaptations ordered by descending priority.
func (c PlanContext) normalized() PlanContext {
	trailing := make([]domain.DailyHealthLog, len(c.Trailing))
	copy(trailing, c.Trailing)
	sort.SliceStable(trailing, func(i, j int) bool {
		return trailing[i].Date.After(trailing[j].Date)
	})
	c.Trailing = trailing

	adaptations := make([]adaptation.Adjustment, len(c.Adaptations))
	copy(adaptations, c.Adaptations)
	sort.SliceStable(adaptations, func(i, j int) bool {
		return adaptations[i].Priority > adaptations[j].Priority
	})
	c.Adaptations = adaptations
	return c
}
