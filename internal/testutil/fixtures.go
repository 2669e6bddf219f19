package testutil

import (
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/google/uuid"
)

// Day is the reference date fixtures are built around.
var Day = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

// Profile options
type ProfileOption func(*domain.Profile)

func WithGoal(g domain.GoalType, delta int) ProfileOption {
	return func(p *domain.Profile) {
		p.Goal = g
		p.TargetDailyDeltaKcal = delta
	}
}

func WithSex(s domain.Sex) ProfileOption {
	return func(p *domain.Profile) {
		p.Sex = s
	}
}

func WithBody(age int, heightCM, weightKG float64) ProfileOption {
	return func(p *domain.Profile) {
		p.Age = age
		p.HeightCM = heightCM
		p.WeightKG = weightKG
	}
}

func WithConditions(c ...domain.Condition) ProfileOption {
	return func(p *domain.Profile) {
		p.Conditions = c
	}
}

func WithJob(j domain.JobType) ProfileOption {
	return func(p *domain.Profile) {
		p.Job = j
	}
}

func WithCyclePhase(c domain.CyclePhase) ProfileOption {
	return func(p *domain.Profile) {
		p.CyclePhase = c
	}
}

// NewTestProfile returns a valid profile: a moderately active 30-year-old
// man on a 500 kcal cut.
func NewTestProfile(id string, opts ...ProfileOption) *domain.Profile {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Profile{
		ID:                   id,
		Sex:                  domain.SexMale,
		Age:                  30,
		HeightCM:             180,
		WeightKG:             80,
		ActivityLevel:        domain.ActivityModerate,
		Goal:                 domain.GoalFatLoss,
		Diet:                 domain.DietOmnivore,
		Job:                  domain.JobActive,
		TargetDailyDeltaKcal: -500,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Health log options
type HealthOption func(*domain.DailyHealthLog)

func WithSleep(h float64) HealthOption {
	return func(l *domain.DailyHealthLog) {
		l.SleepHours = &h
	}
}

func WithStress(v int) HealthOption {
	return func(l *domain.DailyHealthLog) {
		l.StressLevel = &v
	}
}

func WithEnergy(v int) HealthOption {
	return func(l *domain.DailyHealthLog) {
		l.Energy = &v
	}
}

func WithMood(v int) HealthOption {
	return func(l *domain.DailyHealthLog) {
		l.Mood = &v
	}
}

func WithWater(liters float64) HealthOption {
	return func(l *domain.DailyHealthLog) {
		l.WaterLiters = &liters
	}
}

func WithProteinCompletion(pct float64) HealthOption {
	return func(l *domain.DailyHealthLog) {
		l.ProteinCompletionPct = &pct
	}
}

func WithWorkoutDone() HealthOption {
	return func(l *domain.DailyHealthLog) {
		done := true
		l.WorkoutDone = &done
	}
}

func WithSkip(reason domain.SkipReason) HealthOption {
	return func(l *domain.DailyHealthLog) {
		l.WorkoutSkipped = true
		l.SkipReason = reason
	}
}

func NewTestHealthLog(profileID string, date time.Time, opts ...HealthOption) *domain.DailyHealthLog {
	l := &domain.DailyHealthLog{
		ProfileID: profileID,
		Date:      domain.TruncateDate(date),
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func NewTestLooksLog(profileID string, date time.Time, skin int) *domain.DailyLooksLog {
	return &domain.DailyLooksLog{
		ProfileID:     profileID,
		Date:          domain.TruncateDate(date),
		SkincareAM:    true,
		SkinCondition: &skin,
		UpdatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func NewTestRoutineLog(profileID string, date time.Time, done, total int) *domain.DailyRoutineLog {
	return &domain.DailyRoutineLog{
		ProfileID:   profileID,
		Date:        domain.TruncateDate(date),
		WakeTime:    "07:00",
		BedTime:     "23:00",
		HabitsDone:  done,
		HabitsTotal: total,
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func NewTestWeightSample(profileID string, date time.Time, kg float64) *domain.WeightSample {
	return &domain.WeightSample{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		Date:      domain.TruncateDate(date),
		WeightKG:  kg,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
