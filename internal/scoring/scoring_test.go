package scoring

import (
	"testing"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	assert.Zero(t, Health(nil))
	assert.Equal(t, neutral, Health(&domain.DailyHealthLog{}))

	great := &domain.DailyHealthLog{
		SleepHours:  domain.Ptr(8.0),
		StressLevel: domain.Ptr(1),
		Mood:        domain.Ptr(10),
		Energy:      domain.Ptr(10),
		WaterLiters: domain.Ptr(3.0),
	}
	assert.Equal(t, 100.0, Health(great))

	great.Ill = true
	assert.Equal(t, 80.0, Health(great))
}

func TestHealth_ShortSleepScalesDown(t *testing.T) {
	h := Health(&domain.DailyHealthLog{SleepHours: domain.Ptr(3.5)})
	assert.InDelta(t, 50.0, h, 0.001)
}

func TestLooks(t *testing.T) {
	assert.Zero(t, Looks(nil))

	all := &domain.DailyLooksLog{
		SkincareAM: true, SkincarePM: true, HairCare: true, GroomingDone: true,
		SkinCondition: domain.Ptr(1),
	}
	assert.Equal(t, 100.0, Looks(all))

	assert.Equal(t, 10.0, Looks(&domain.DailyLooksLog{}), "unrated skin counts as average")
}

func TestRoutine(t *testing.T) {
	assert.Zero(t, Routine(nil))
	assert.Equal(t, neutral, Routine(&domain.DailyRoutineLog{}))

	l := &domain.DailyRoutineLog{HabitsDone: 3, HabitsTotal: 4, ScreenTimeMin: domain.Ptr(360)}
	assert.Equal(t, 65.0, Routine(l))

	l.FocusMinutes = domain.Ptr(600)
	assert.Equal(t, 75.0, Routine(l))
}

func TestScoresStayInRange(t *testing.T) {
	worst := &domain.DailyHealthLog{
		SleepHours: domain.Ptr(0.0), StressLevel: domain.Ptr(10), Mood: domain.Ptr(1),
		Energy: domain.Ptr(1), WaterLiters: domain.Ptr(0.0), Ill: true,
	}
	assert.Zero(t, Health(worst))

	r := &domain.DailyRoutineLog{CompletionPct: domain.Ptr(100.0), FocusMinutes: domain.Ptr(900)}
	assert.Equal(t, 100.0, Routine(r))
}
