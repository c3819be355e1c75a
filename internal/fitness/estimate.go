// ABOUTME: MET-based calorie estimation and step-count estimation for single activities.
// ABOUTME: Both scale linearly with duration and accept fractional minutes from live timers.
package fitness

import (
	"math"
	"strings"
)

// metValues are metabolic equivalents per activity type.
var metValues = map[string]float64{
	"strength":   6.0,
	"cardio":     8.0,
	"yoga":       3.0,
	"hiit":       11.0,
	"pilates":    3.5,
	"sports":     7.0,
	"crossfit":   10.0,
	"swimming":   8.0,
	"walking":    3.5,
	"meditation": 1.3,
	"breathing":  1.3,
}

// stepsPerMinute are cadence estimates per activity type.
var stepsPerMinute = map[string]float64{
	"running":  160,
	"cardio":   140,
	"walking":  100,
	"hiking":   110,
	"sports":   120,
	"dance":    110,
	"hiit":     130,
	"strength": 30,
	"yoga":     5,
	"pilates":  5,
	"cycling":  0,
	"swimming": 0,
	"rowing":   0,
}

const (
	fallbackMET            = 3.5
	fallbackStepsPerMinute = 80
)

// MET returns the metabolic equivalent for an activity type (3.5 when unknown).
func MET(activityType string) float64 {
	if met, ok := metValues[normalizeType(activityType)]; ok {
		return met
	}
	return fallbackMET
}

// METValues returns a copy of the MET table.
func METValues() map[string]float64 {
	out := make(map[string]float64, len(metValues))
	for k, v := range metValues {
		out[k] = v
	}
	return out
}

// EstimateCalories returns round(MET * weight * hours) for one activity.
// Negative or NaN durations count as zero; an unusable weight falls back to
// DefaultWeightKg.
func EstimateCalories(activityType string, durationMinutes, weightKg float64) int {
	if !(durationMinutes > 0) || math.IsInf(durationMinutes, 0) {
		return 0
	}
	weight := orDefault(weightKg, DefaultWeightKg)
	return roundInt(MET(activityType) * weight * (durationMinutes / 60))
}

// StepsPerMinute returns the cadence for an activity type (80 when unknown).
func StepsPerMinute(activityType string) float64 {
	if spm, ok := stepsPerMinute[normalizeType(activityType)]; ok {
		return spm
	}
	return fallbackStepsPerMinute
}

// EstimateSteps returns round(stepsPerMinute * minutes) for one activity.
func EstimateSteps(activityType string, durationMinutes float64) int {
	if !(durationMinutes > 0) || math.IsInf(durationMinutes, 0) {
		return 0
	}
	return roundInt(StepsPerMinute(activityType) * durationMinutes)
}

func normalizeType(activityType string) string {
	return strings.ToLower(strings.TrimSpace(activityType))
}
