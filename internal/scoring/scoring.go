// Package scoring holds the default per-domain day scores blended into the
// life score. Every scorer is pure and returns a value in [0, 100].
package scoring

import (
	"math"

	"github.com/alexanderramin/meridian/internal/domain"
)

// neutral is returned when a log carries no scorable field.
const neutral = 50.0

// Health scores sleep, stress, mood, energy and hydration, averaged over the
// fields that were logged. Reporting illness costs a flat 20 points.
func Health(l *domain.DailyHealthLog) float64 {
	if l == nil {
		return 0
	}
	var parts []float64
	if l.SleepHours != nil {
		parts = append(parts, sleepScore(*l.SleepHours))
	}
	if l.SleepQuality != nil {
		parts = append(parts, scale10(*l.SleepQuality))
	}
	if l.StressLevel != nil {
		parts = append(parts, 100-scale10(*l.StressLevel))
	}
	if l.Mood != nil {
		parts = append(parts, scale10(*l.Mood))
	}
	if l.Energy != nil {
		parts = append(parts, scale10(*l.Energy))
	}
	if l.WaterLiters != nil {
		parts = append(parts, math.Min(1, *l.WaterLiters/2.5)*100)
	}
	score := neutral
	if len(parts) > 0 {
		score = mean(parts)
	}
	if l.Ill {
		score -= 20
	}
	return clamp(score)
}

// Looks scores the skincare, hair and grooming checklist plus skin
// condition, where 1 is clear skin and 10 a severe breakout.
func Looks(l *domain.DailyLooksLog) float64 {
	if l == nil {
		return 0
	}
	score := 0.0
	if l.SkincareAM {
		score += 25
	}
	if l.SkincarePM {
		score += 25
	}
	if l.HairCare {
		score += 15
	}
	if l.GroomingDone {
		score += 15
	}
	if l.SkinCondition != nil {
		score += float64(10-*l.SkinCondition) / 9 * 20
	} else {
		score += 10
	}
	return clamp(score)
}

// Routine scores habit completion, minus a penalty for screen time above
// four hours, plus a small bonus for focused work.
func Routine(l *domain.DailyRoutineLog) float64 {
	if l == nil {
		return 0
	}
	score := neutral
	if pct := l.EffectiveCompletionPct(); pct != nil {
		score = *pct
	}
	if l.ScreenTimeMin != nil && *l.ScreenTimeMin > 240 {
		score -= math.Min(20, float64(*l.ScreenTimeMin-240)/12)
	}
	if l.FocusMinutes != nil {
		score += math.Min(10, float64(*l.FocusMinutes)/12)
	}
	return clamp(score)
}

func sleepScore(h float64) float64 {
	switch {
	case h >= 7 && h <= 9:
		return 100
	case h < 7:
		return h / 7 * 100
	default:
		return math.Max(0, 100-(h-9)*15)
	}
}

// scale10 maps a 1..10 rating onto 0..100.
func scale10(v int) float64 {
	return float64(v-1) / 9 * 100
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
