package domain

import (
	"regexp"
	"time"
)

// DateLayout is the calendar-date format used for every per-day record.
const DateLayout = "2006-01-02"

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// DailyHealthLog holds one day of health signals. Pointer fields are nil
// when the user did not log them.
type DailyHealthLog struct {
	ProfileID string
	Date      time.Time

	SleepHours   *float64
	SleepQuality *int
	StressLevel  *int
	Mood         *int
	Energy       *int
	Soreness     *int
	WaterLiters  *float64
	Ill          bool

	WorkoutDone    *bool
	WorkoutSkipped bool
	SkipReason     SkipReason

	ProteinCompletionPct *float64
	FoodCompliancePct    *float64

	UpdatedAt time.Time
}

// PoorRecovery reports whether the day shows any poor-recovery signal.
func (l *DailyHealthLog) PoorRecovery() bool {
	if l.SleepHours != nil && *l.SleepHours < 6 {
		return true
	}
	if l.Soreness != nil && *l.Soreness >= 8 {
		return true
	}
	return l.Energy != nil && *l.Energy <= 3
}

func (l *DailyHealthLog) Validate() error {
	v := newValidator("health log")
	if l.Date.IsZero() {
		v.add("date", "is required")
	}
	v.floatRange("sleep_hours", l.SleepHours, 0, 24)
	v.intRange("sleep_quality", l.SleepQuality, 1, 10)
	v.intRange("stress_level", l.StressLevel, 1, 10)
	v.intRange("mood", l.Mood, 1, 10)
	v.intRange("energy", l.Energy, 1, 10)
	v.intRange("soreness", l.Soreness, 1, 10)
	v.floatRange("water_liters", l.WaterLiters, 0, 15)
	v.floatRange("protein_completion_pct", l.ProteinCompletionPct, 0, 200)
	v.floatRange("food_compliance_pct", l.FoodCompliancePct, 0, 200)
	if l.SkipReason != "" {
		if _, ok := SkipReasons[l.SkipReason]; !ok {
			v.add("skip_reason", "unknown value %q", l.SkipReason)
		}
	}
	if l.WorkoutSkipped && l.WorkoutDone != nil && *l.WorkoutDone {
		v.add("workout_skipped", "cannot be set when workout_done is true")
	}
	return v.err()
}

type DailyLooksLog struct {
	ProfileID     string
	Date          time.Time
	SkincareAM    bool
	SkincarePM    bool
	SkinCondition *int
	HairCare      bool
	GroomingDone  bool
	UpdatedAt     time.Time
}

func (l *DailyLooksLog) Validate() error {
	v := newValidator("looks log")
	if l.Date.IsZero() {
		v.add("date", "is required")
	}
	v.intRange("skin_condition", l.SkinCondition, 1, 10)
	return v.err()
}

type DailyRoutineLog struct {
	ProfileID     string
	Date          time.Time
	WakeTime      string
	BedTime       string
	CompletionPct *float64
	ScreenTimeMin *int
	FocusMinutes  *int
	HabitsDone    int
	HabitsTotal   int
	UpdatedAt     time.Time
}

func (l *DailyRoutineLog) Validate() error {
	v := newValidator("routine log")
	if l.Date.IsZero() {
		v.add("date", "is required")
	}
	if l.WakeTime != "" && !clockPattern.MatchString(l.WakeTime) {
		v.add("wake_time", "must be HH:MM, got %q", l.WakeTime)
	}
	if l.BedTime != "" && !clockPattern.MatchString(l.BedTime) {
		v.add("bed_time", "must be HH:MM, got %q", l.BedTime)
	}
	v.floatRange("completion_pct", l.CompletionPct, 0, 100)
	v.intRange("screen_time_min", l.ScreenTimeMin, 0, 24*60)
	v.intRange("focus_minutes", l.FocusMinutes, 0, 24*60)
	if l.HabitsDone < 0 || l.HabitsTotal < 0 || l.HabitsDone > l.HabitsTotal {
		v.add("habits_done", "must be between 0 and habits_total (%d), got %d", l.HabitsTotal, l.HabitsDone)
	}
	return v.err()
}

// EffectiveCompletionPct prefers the explicit completion percentage and
// falls back to the habit ratio. Returns nil when neither is available.
func (l *DailyRoutineLog) EffectiveCompletionPct() *float64 {
	if l.CompletionPct != nil {
		return l.CompletionPct
	}
	if l.HabitsTotal > 0 {
		pct := float64(l.HabitsDone) / float64(l.HabitsTotal) * 100
		return &pct
	}
	return nil
}

// TruncateDate drops the time-of-day component, returning midnight UTC.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
