// ABOUTME: Core types for the fitness target and schedule engine.
// ABOUTME: Defines biometric input, targets, distribution entries, and sentinel errors.
package fitness

import "errors"

// Goal is the user's primary fitness goal.
type Goal string

const (
	GoalLoseWeight       Goal = "LoseWeight"
	GoalBuildMuscle      Goal = "BuildMuscle"
	GoalStayFit          Goal = "StayFit"
	GoalImproveEndurance Goal = "ImproveEndurance"
)

// AllGoals lists the goals the engine knows about.
var AllGoals = []Goal{GoalLoseWeight, GoalBuildMuscle, GoalStayFit, GoalImproveEndurance}

// ActivityLevel is the self-reported everyday activity level.
type ActivityLevel string

const (
	LevelSedentary        ActivityLevel = "sedentary"
	LevelLightlyActive    ActivityLevel = "lightly_active"
	LevelModeratelyActive ActivityLevel = "moderately_active"
	LevelVeryActive       ActivityLevel = "very_active"
	LevelExtremelyActive  ActivityLevel = "extremely_active"
)

// AllActivityLevels lists the activity levels in ascending order.
var AllActivityLevels = []ActivityLevel{
	LevelSedentary, LevelLightlyActive, LevelModeratelyActive, LevelVeryActive, LevelExtremelyActive,
}

// Fallbacks applied when biometric input is missing or malformed.
const (
	DefaultWeightKg = 70.0
	DefaultHeightCm = 170.0
	DefaultAge      = 25

	// DefaultSessionMinutes is the fixed length of one planned session.
	DefaultSessionMinutes = 45
)

var (
	ErrIndexOutOfRange = errors.New("distribution index out of range")
	ErrInvalidTime     = errors.New("invalid time of day")
	ErrUnknownWeekday  = errors.New("unknown weekday")
)

// DefaultPreferences returns the preference list used when the user picked none.
func DefaultPreferences() []string {
	return []string{"strength", "cardio"}
}

// BiometricInput is the snapshot captured once at plan creation time.
type BiometricInput struct {
	WeightKg           float64       `json:"weight_kg" yaml:"weight_kg"`
	HeightCm           float64       `json:"height_cm" yaml:"height_cm"`
	Birthdate          string        `json:"birthdate" yaml:"birthdate"`
	Gender             string        `json:"gender" yaml:"gender"`
	ActivityLevel      ActivityLevel `json:"activity_level" yaml:"activity_level"`
	FitnessGoal        Goal          `json:"fitness_goal" yaml:"fitness_goal"`
	WorkoutPreferences []string      `json:"workout_preferences" yaml:"workout_preferences"`
}

// preferences returns the workout preferences, falling back to the defaults.
func (b BiometricInput) preferences() []string {
	if len(b.WorkoutPreferences) == 0 {
		return DefaultPreferences()
	}
	return b.WorkoutPreferences
}

// WorkoutTypeDistribution is one workout type's share of the weekly plan.
type WorkoutTypeDistribution struct {
	WorkoutType    string `json:"workout_type" yaml:"workout_type"`
	WeeklyMinutes  int    `json:"weekly_minutes" yaml:"weekly_minutes"`
	WeeklySessions int    `json:"weekly_sessions" yaml:"weekly_sessions"`
}

// FitnessTargets holds the computed weekly and daily goals.
//
// The distribution always sums exactly to WeeklyWorkoutFrequencyTarget
// sessions and WeeklyWorkoutMinutes minutes.
type FitnessTargets struct {
	WeeklyCalorieBurnTarget      int                       `json:"weekly_calorie_burn_target" yaml:"weekly_calorie_burn_target"`
	WeeklyWorkoutMinutes         int                       `json:"weekly_workout_minutes" yaml:"weekly_workout_minutes"`
	WeeklyWorkoutFrequencyTarget int                       `json:"weekly_workout_frequency_target" yaml:"weekly_workout_frequency_target"`
	DailyMoveTarget              int                       `json:"daily_move_target" yaml:"daily_move_target"`
	DailyExerciseTarget          int                       `json:"daily_exercise_target" yaml:"daily_exercise_target"`
	WorkoutTypeDistribution      []WorkoutTypeDistribution `json:"workout_type_distribution" yaml:"workout_type_distribution"`
}

// Clone returns a deep copy so edits never alias the original distribution.
func (t FitnessTargets) Clone() FitnessTargets {
	t.WorkoutTypeDistribution = cloneDistribution(t.WorkoutTypeDistribution)
	return t
}

// DistributionTotals sums sessions and minutes across the distribution.
func (t FitnessTargets) DistributionTotals() (sessions, minutes int) {
	for _, d := range t.WorkoutTypeDistribution {
		sessions += d.WeeklySessions
		minutes += d.WeeklyMinutes
	}
	return sessions, minutes
}

func cloneDistribution(dist []WorkoutTypeDistribution) []WorkoutTypeDistribution {
	if dist == nil {
		return nil
	}
	out := make([]WorkoutTypeDistribution, len(dist))
	copy(out, dist)
	return out
}
