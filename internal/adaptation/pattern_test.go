package adaptation

import (
	"testing"
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

// day returns a log for today minus ago days.
func day(ago int, opts ...func(*domain.DailyHealthLog)) domain.DailyHealthLog {
	l := domain.DailyHealthLog{ProfileID: "p", Date: today.AddDate(0, 0, -ago)}
	for _, o := range opts {
		o(&l)
	}
	return l
}

func sleep(h float64) func(*domain.DailyHealthLog) {
	return func(l *domain.DailyHealthLog) { l.SleepHours = &h }
}

func energy(v int) func(*domain.DailyHealthLog) {
	return func(l *domain.DailyHealthLog) { l.Energy = &v }
}

func protein(pct float64) func(*domain.DailyHealthLog) {
	return func(l *domain.DailyHealthLog) { l.ProteinCompletionPct = &pct }
}

func food(pct float64) func(*domain.DailyHealthLog) {
	return func(l *domain.DailyHealthLog) { l.FoodCompliancePct = &pct }
}

func skipped(reason domain.SkipReason) func(*domain.DailyHealthLog) {
	return func(l *domain.DailyHealthLog) {
		l.WorkoutSkipped = true
		l.SkipReason = reason
	}
}

func trained(l *domain.DailyHealthLog) { l.WorkoutDone = domain.Ptr(true) }

func TestAnalyzeWindow_NoLogs(t *testing.T) {
	assert.Nil(t, AnalyzeWindow(nil, 7))
}

func TestAnalyzeWindow_UsesMostRecentWindow(t *testing.T) {
	var logs []domain.DailyHealthLog
	for ago := 9; ago >= 0; ago-- {
		h := 8.0
		if ago >= 7 {
			h = 2 // outside a 7-day window
		}
		logs = append(logs, day(ago, sleep(h)))
	}

	s := AnalyzeWindow(logs, 0)
	require.NotNil(t, s)
	assert.Equal(t, DefaultWindow, s.WindowSize)
	assert.Equal(t, 7, s.Days)
	assert.Equal(t, today, s.To)
	assert.Equal(t, today.AddDate(0, 0, -6), s.From)
	require.NotNil(t, s.AvgSleepHours)
	assert.Equal(t, 8.0, *s.AvgSleepHours)
	assert.Zero(t, s.PoorRecoveryDays)
}

func TestAnalyzeWindow_AveragesOnlyPresentValues(t *testing.T) {
	s := AnalyzeWindow([]domain.DailyHealthLog{
		day(0, energy(3)),
		day(1, energy(6)),
		day(2, sleep(7)),
	}, 7)
	require.NotNil(t, s)
	assert.Equal(t, 4.5, *s.AvgEnergy)
	assert.Equal(t, 7.0, *s.AvgSleepHours)
	assert.Nil(t, s.AvgMood)
	assert.Equal(t, 1, s.PoorRecoveryDays)
}

func TestAnalyzeWindow_ConsecutiveSkipsCountFromMostRecent(t *testing.T) {
	s := AnalyzeWindow([]domain.DailyHealthLog{
		day(0, skipped(domain.SkipTired)),
		day(1, skipped(domain.SkipBusy)),
		day(2, skipped(domain.SkipSick)),
		day(3, trained),
		day(4, skipped(domain.SkipBusy)),
	}, 7)
	require.NotNil(t, s)
	assert.Equal(t, 3, s.ConsecutiveSkips)
	assert.Equal(t, 4, s.WorkoutsSkipped)
	assert.Equal(t, 1, s.WorkoutsDone)
	assert.Equal(t, 2, s.RecoverySkips)
	assert.Equal(t, 20.0, *s.WorkoutCompletionRate)
}

func TestAnalyzeWindow_InputOrderDoesNotMatter(t *testing.T) {
	a := []domain.DailyHealthLog{day(2, sleep(5)), day(0, sleep(7)), day(1, sleep(6))}
	b := []domain.DailyHealthLog{day(0, sleep(7)), day(1, sleep(6)), day(2, sleep(5))}
	assert.Equal(t, AnalyzeWindow(a, 2), AnalyzeWindow(b, 2))
	assert.Equal(t, 6.5, *AnalyzeWindow(a, 2).AvgSleepHours)
}

func TestClassifyFatigue(t *testing.T) {
	assert.Equal(t, FatigueNone, ClassifyFatigue(nil).Level)

	rested := AnalyzeWindow([]domain.DailyHealthLog{day(0, sleep(8), energy(7))}, 7)
	assert.Equal(t, FatigueNone, ClassifyFatigue(rested).Level)

	lowSleep := AnalyzeWindow([]domain.DailyHealthLog{day(0, sleep(5.5), energy(6))}, 7)
	f := ClassifyFatigue(lowSleep)
	assert.Equal(t, FatigueModerate, f.Level)
	assert.Len(t, f.Issues, 1)

	var logs []domain.DailyHealthLog
	for i := 0; i < 4; i++ {
		logs = append(logs, day(i, sleep(5), energy(3)))
	}
	f = ClassifyFatigue(AnalyzeWindow(logs, 7))
	assert.Equal(t, FatigueHigh, f.Level)
	assert.Len(t, f.Issues, 3)
}

func TestClassifyCompliance(t *testing.T) {
	s := AnalyzeWindow([]domain.DailyHealthLog{
		day(0, protein(50), food(55), skipped(domain.SkipBusy)),
		day(1, protein(60), food(50), skipped(domain.SkipBusy)),
		day(2, protein(70), food(65), skipped(domain.SkipUnmotivated)),
	}, 7)
	issues := ClassifyCompliance(s)
	require.Len(t, issues, 3)
	assert.Equal(t, ActionIncreaseProtein, issues[0].Action)
	assert.Equal(t, ActionSimplifyMeals, issues[1].Action)
	assert.Equal(t, ActionRestartGently, issues[2].Action)

	good := AnalyzeWindow([]domain.DailyHealthLog{day(0, protein(95), food(90), trained)}, 7)
	assert.Empty(t, ClassifyCompliance(good))
	assert.Nil(t, ClassifyCompliance(nil))
}
