// ABOUTME: Energy model and frequency planner for fitness targets.
// ABOUTME: Computes age, BMR (Mifflin-St Jeor), TDEE, goal-adjusted calories, and session counts.
package fitness

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var activityMultipliers = map[ActivityLevel]float64{
	LevelSedentary:        1.2,
	LevelLightlyActive:    1.375,
	LevelModeratelyActive: 1.55,
	LevelVeryActive:       1.725,
	LevelExtremelyActive:  1.9,
}

var weeklySessionsByLevel = map[ActivityLevel]int{
	LevelSedentary:        2,
	LevelLightlyActive:    3,
	LevelModeratelyActive: 4,
	LevelVeryActive:       5,
	LevelExtremelyActive:  6,
}

const (
	defaultMultiplier     = 1.2
	defaultWeeklySessions = 3

	loseWeightDeficit  = 500.0
	buildMuscleSurplus = 300.0

	maxPlausibleAge = 130
)

// birthdateLayouts are tried in order when parsing a birthdate.
var birthdateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ComputeTargets turns a biometric snapshot into weekly and daily targets.
// now is the reference instant for the age calculation.
func ComputeTargets(in BiometricInput, now time.Time) FitnessTargets {
	weight := orDefault(in.WeightKg, DefaultWeightKg)
	height := orDefault(in.HeightCm, DefaultHeightCm)
	age := AgeAt(in.Birthdate, now)

	tdee := BMR(weight, height, age, in.Gender) * ActivityMultiplier(in.ActivityLevel)
	daily := DailyCalorieGoal(tdee, in.FitnessGoal)

	sessions := WeeklySessions(in.ActivityLevel)
	minutes := sessions * DefaultSessionMinutes

	return FitnessTargets{
		WeeklyCalorieBurnTarget:      roundInt(daily * 7),
		WeeklyWorkoutMinutes:         minutes,
		WeeklyWorkoutFrequencyTarget: sessions,
		DailyMoveTarget:              roundInt(daily),
		DailyExerciseTarget:          roundInt(float64(minutes) / 7),
		WorkoutTypeDistribution:      AllocateDistribution(in.FitnessGoal, in.preferences(), sessions, minutes),
	}
}

// ComputeTargetsNow is ComputeTargets with the current time.
func ComputeTargetsNow(in BiometricInput) FitnessTargets {
	return ComputeTargets(in, time.Now())
}

// AgeAt returns whole years between birthdate and now.
// Unparseable dates and implausible ages yield DefaultAge.
func AgeAt(birthdate string, now time.Time) int {
	born, ok := parseBirthdate(birthdate, now.Location())
	if !ok {
		return DefaultAge
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	// A user born this year (or in the future) is treated as missing data.
	if age < 1 || age > maxPlausibleAge {
		return DefaultAge
	}
	return age
}

func parseBirthdate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range birthdateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
// Only the literal gender "male" takes the male offset.
func BMR(weightKg, heightCm float64, age int, gender string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier returns the TDEE multiplier for a level (1.2 when unknown).
func ActivityMultiplier(level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return defaultMultiplier
}

// DailyCalorieGoal applies the goal adjustment to a TDEE value.
func DailyCalorieGoal(tdee float64, goal Goal) float64 {
	switch goal {
	case GoalLoseWeight:
		return tdee - loseWeightDeficit
	case GoalBuildMuscle:
		return tdee + buildMuscleSurplus
	default:
		return tdee
	}
}

// WeeklySessions maps an activity level to a weekly session count (3 when unknown).
func WeeklySessions(level ActivityLevel) int {
	if n, ok := weeklySessionsByLevel[level]; ok {
		return n
	}
	return defaultWeeklySessions
}

// ParseMeasurement parses a raw form value such as "82.5".
// Returns 0 for anything unusable so ComputeTargets applies its fallback.
func ParseMeasurement(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !usable(v) {
		return 0
	}
	return v
}

// IsValidGoal reports whether g is one of AllGoals.
func IsValidGoal(g string) bool {
	for _, known := range AllGoals {
		if string(known) == g {
			return true
		}
	}
	return false
}

// ParseGoal resolves a goal name case-insensitively, also accepting
// snake_case and kebab-case spellings such as "lose_weight".
func ParseGoal(s string) (Goal, bool) {
	key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, g := range AllGoals {
		if strings.ToLower(string(g)) == key {
			return g, true
		}
	}
	return "", false
}

// IsValidActivityLevel reports whether l is one of AllActivityLevels.
func IsValidActivityLevel(l string) bool {
	_, ok := activityMultipliers[ActivityLevel(l)]
	return ok
}

func orDefault(v, fallback float64) float64 {
	if !usable(v) {
		return fallback
	}
	return v
}

func usable(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundInt rounds half away from zero.
func roundInt(v float64) int {
	return int(math.Round(v))
}
