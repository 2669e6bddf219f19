package domain

import (
	"sort"
	"time"
)

type WeightSample struct {
	ID         string
	ProfileID  string
	Date       time.Time
	WeightKG   float64
	BodyFatPct *float64
	CreatedAt  time.Time
}

func (w *WeightSample) Validate() error {
	v := newValidator("weight sample")
	if w.Date.IsZero() {
		v.add("date", "is required")
	}
	if w.WeightKG < 30 || w.WeightKG > 350 {
		v.add("weight_kg", "must be between 30 and 350, got %g", w.WeightKG)
	}
	v.floatRange("body_fat_pct", w.BodyFatPct, 2, 70)
	return v.err()
}

// SortSamplesByDate returns a copy of samples ordered oldest first.
func SortSamplesByDate(samples []WeightSample) []WeightSample {
	out := make([]WeightSample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
