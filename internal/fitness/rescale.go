// ABOUTME: Rescaling and per-type editing of a computed workout distribution.
// ABOUTME: Ratios always come from the original targets to avoid compounding rounding drift.
package fitness

import "fmt"

// RescaleField selects which distribution field an edit applies to.
type RescaleField string

const (
	RescaleMinutes  RescaleField = "minutes"
	RescaleSessions RescaleField = "sessions"
)

// ParseRescaleField accepts "minutes" or "sessions".
func ParseRescaleField(s string) (RescaleField, error) {
	switch RescaleField(s) {
	case RescaleMinutes, RescaleSessions:
		return RescaleField(s), nil
	}
	return "", fmt.Errorf("unknown field %q (use minutes or sessions)", s)
}

func (d WorkoutTypeDistribution) get(field RescaleField) int {
	if field == RescaleMinutes {
		return d.WeeklyMinutes
	}
	return d.WeeklySessions
}

func (d *WorkoutTypeDistribution) set(field RescaleField, v int) {
	if field == RescaleMinutes {
		d.WeeklyMinutes = v
		return
	}
	d.WeeklySessions = v
}

// Total returns the weekly total for the given field.
func (t FitnessTargets) Total(field RescaleField) int {
	if field == RescaleMinutes {
		return t.WeeklyWorkoutMinutes
	}
	return t.WeeklyWorkoutFrequencyTarget
}

func (t *FitnessTargets) setTotal(field RescaleField, v int) {
	if field == RescaleMinutes {
		t.WeeklyWorkoutMinutes = v
		t.DailyExerciseTarget = roundInt(float64(v) / 7)
		return
	}
	t.WeeklyWorkoutFrequencyTarget = v
}

// RescaleDistribution spreads newTotal over the original distribution using
// the original per-type ratios. The last entry takes whatever remains, so the
// rescaled field sums to newTotal. The other field is copied unchanged.
// A non-positive newTotal or an empty original returns a copy of the original.
func RescaleDistribution(original FitnessTargets, newTotal int, field RescaleField) []WorkoutTypeDistribution {
	dist := cloneDistribution(original.WorkoutTypeDistribution)
	originalTotal := original.Total(field)
	if newTotal <= 0 || originalTotal <= 0 || len(dist) == 0 {
		return dist
	}

	remaining := newTotal
	last := len(dist) - 1
	for i := range dist {
		if i == last {
			dist[i].set(field, max(0, remaining))
			break
		}
		ratio := float64(dist[i].get(field)) / float64(originalTotal)
		share := min(roundInt(ratio*float64(newTotal)), remaining)
		remaining -= share
		dist[i].set(field, share)
	}
	return dist
}

// ApplyTotal returns working with a new weekly total and a distribution
// rescaled from original. A non-positive total leaves working untouched.
func ApplyTotal(original, working FitnessTargets, newTotal int, field RescaleField) FitnessTargets {
	out := working.Clone()
	if newTotal <= 0 {
		return out
	}
	out.setTotal(field, newTotal)
	out.WorkoutTypeDistribution = RescaleDistribution(original, newTotal, field)
	return out
}

// EditDistribution sets one entry's minutes or sessions and recomputes the
// weekly totals as the sums of the distribution. Negative values become 0.
func EditDistribution(working FitnessTargets, index int, field RescaleField, value int) (FitnessTargets, error) {
	out := working.Clone()
	if index < 0 || index >= len(out.WorkoutTypeDistribution) {
		return working, fmt.Errorf("edit distribution entry %d: %w", index, ErrIndexOutOfRange)
	}
	out.WorkoutTypeDistribution[index].set(field, max(0, value))

	sessions, minutes := out.DistributionTotals()
	out.WeeklyWorkoutFrequencyTarget = sessions
	out.setTotal(RescaleMinutes, minutes)
	return out, nil
}
