// ABOUTME: Tests for the energy model and frequency planner.
// ABOUTME: Covers age fallbacks, BMR branches, goal adjustments, and the reference scenario.
package fitness

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var refNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func baseInput() BiometricInput {
	return BiometricInput{
		WeightKg:           70,
		HeightCm:           170,
		Birthdate:          "1990-01-01",
		Gender:             "male",
		ActivityLevel:      LevelModeratelyActive,
		FitnessGoal:        GoalStayFit,
		WorkoutPreferences: []string{"strength", "cardio"},
	}
}

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name      string
		birthdate string
		want      int
	}{
		{"birthday passed", "1990-01-01", 35},
		{"birthday today", "1990-06-15", 35},
		{"birthday tomorrow", "1990-06-16", 34},
		{"later month", "1990-12-01", 34},
		{"rfc3339", "1990-01-01T00:00:00Z", 35},
		{"invalid", "invalid-date", DefaultAge},
		{"empty", "", DefaultAge},
		{"born today", "2025-06-15", DefaultAge},
		{"future", "2030-01-01", DefaultAge},
		{"implausibly old", "1800-01-01", DefaultAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeAt(tt.birthdate, refNow); got != tt.want {
				t.Errorf("AgeAt(%q) = %d, want %d", tt.birthdate, got, tt.want)
			}
		})
	}
}

func TestBMRGenderBranch(t *testing.T) {
	male := BMR(70, 170, 35, "male")
	if male != 1592.5 {
		t.Errorf("male BMR = %v, want 1592.5", male)
	}

	// Everything that is not the literal "male" takes the -161 branch.
	for _, g := range []string{"female", "", "other", "prefer not to say", "Male"} {
		if got := BMR(70, 170, 35, g); got != 1426.5 {
			t.Errorf("BMR(gender=%q) = %v, want 1426.5", g, got)
		}
	}
}

func TestActivityMultiplier(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  float64
	}{
		{LevelSedentary, 1.2},
		{LevelLightlyActive, 1.375},
		{LevelModeratelyActive, 1.55},
		{LevelVeryActive, 1.725},
		{LevelExtremelyActive, 1.9},
		{"couch_potato", 1.2},
	}
	for _, tt := range tests {
		if got := ActivityMultiplier(tt.level); got != tt.want {
			t.Errorf("ActivityMultiplier(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestWeeklySessions(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  int
	}{
		{LevelSedentary, 2},
		{LevelLightlyActive, 3},
		{LevelModeratelyActive, 4},
		{LevelVeryActive, 5},
		{LevelExtremelyActive, 6},
		{"", 3},
	}
	for _, tt := range tests {
		if got := WeeklySessions(tt.level); got != tt.want {
			t.Errorf("WeeklySessions(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestDailyCalorieGoal(t *testing.T) {
	if got := DailyCalorieGoal(2000, GoalLoseWeight); got != 1500 {
		t.Errorf("LoseWeight = %v, want 1500", got)
	}
	if got := DailyCalorieGoal(2000, GoalBuildMuscle); got != 2300 {
		t.Errorf("BuildMuscle = %v, want 2300", got)
	}
	for _, g := range []Goal{GoalStayFit, GoalImproveEndurance, "lose_weight", ""} {
		if got := DailyCalorieGoal(2000, g); got != 2000 {
			t.Errorf("DailyCalorieGoal(%q) = %v, want 2000", g, got)
		}
	}
}

func TestComputeTargetsReferenceScenario(t *testing.T) {
	got := ComputeTargets(baseInput(), refNow)

	want := FitnessTargets{
		WeeklyCalorieBurnTarget:      17279,
		WeeklyWorkoutMinutes:         180,
		WeeklyWorkoutFrequencyTarget: 4,
		DailyMoveTarget:              2468,
		DailyExerciseTarget:          26,
		WorkoutTypeDistribution: []WorkoutTypeDistribution{
			{WorkoutType: "strength", WeeklyMinutes: 90, WeeklySessions: 2},
			{WorkoutType: "cardio", WeeklyMinutes: 90, WeeklySessions: 2},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeTargets mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeTargetsFemaleLower(t *testing.T) {
	male := ComputeTargets(baseInput(), refNow)
	in := baseInput()
	in.Gender = "female"
	female := ComputeTargets(in, refNow)

	if female.DailyMoveTarget != 2211 {
		t.Errorf("female DailyMoveTarget = %d, want 2211", female.DailyMoveTarget)
	}
	if female.DailyMoveTarget >= male.DailyMoveTarget {
		t.Errorf("female %d should be below male %d", female.DailyMoveTarget, male.DailyMoveTarget)
	}
}

func TestComputeTargetsGoalAdjustments(t *testing.T) {
	base := ComputeTargets(baseInput(), refNow)

	in := baseInput()
	in.FitnessGoal = GoalLoseWeight
	lose := ComputeTargets(in, refNow)
	if base.DailyMoveTarget-lose.DailyMoveTarget != 500 {
		t.Errorf("LoseWeight deficit = %d, want 500", base.DailyMoveTarget-lose.DailyMoveTarget)
	}

	in.FitnessGoal = GoalBuildMuscle
	build := ComputeTargets(in, refNow)
	if build.DailyMoveTarget-base.DailyMoveTarget != 300 {
		t.Errorf("BuildMuscle surplus = %d, want 300", build.DailyMoveTarget-base.DailyMoveTarget)
	}
}

func TestComputeTargetsFallbacks(t *testing.T) {
	in := baseInput()
	in.WeightKg = 0
	in.HeightCm = math.NaN()
	in.Birthdate = "not a date"
	got := ComputeTargets(in, refNow)

	// 70kg, 170cm, age 25, male, moderately active
	want := roundInt((10*70 + 6.25*170 - 5*25 + 5) * 1.55)
	if got.DailyMoveTarget != want {
		t.Errorf("DailyMoveTarget = %d, want %d", got.DailyMoveTarget, want)
	}
}

func TestComputeTargetsDefaultPreferences(t *testing.T) {
	in := baseInput()
	in.WorkoutPreferences = nil
	got := ComputeTargets(in, refNow)

	if len(got.WorkoutTypeDistribution) != 2 {
		t.Fatalf("expected 2 distribution entries, got %d", len(got.WorkoutTypeDistribution))
	}
	if got.WorkoutTypeDistribution[0].WorkoutType != "strength" || got.WorkoutTypeDistribution[1].WorkoutType != "cardio" {
		t.Errorf("unexpected default types: %+v", got.WorkoutTypeDistribution)
	}
}

func TestComputeTargetsFrequencyScalesWithLevel(t *testing.T) {
	in := baseInput()
	in.ActivityLevel = LevelSedentary
	sedentary := ComputeTargets(in, refNow)
	in.ActivityLevel = LevelVeryActive
	veryActive := ComputeTargets(in, refNow)

	if sedentary.WeeklyWorkoutMinutes != 90 || veryActive.WeeklyWorkoutMinutes != 225 {
		t.Errorf("minutes = %d/%d, want 90/225", sedentary.WeeklyWorkoutMinutes, veryActive.WeeklyWorkoutMinutes)
	}
	if veryActive.DailyExerciseTarget != 32 {
		t.Errorf("DailyExerciseTarget = %d, want 32", veryActive.DailyExerciseTarget)
	}
}

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"82.5", 82.5},
		{" 70 ", 70},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tt := range tests {
		if got := ParseMeasurement(tt.in); got != tt.want {
			t.Errorf("ParseMeasurement(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidGoalAndLevel(t *testing.T) {
	if !IsValidGoal("BuildMuscle") || IsValidGoal("build_muscle") {
		t.Error("IsValidGoal should accept only canonical goal keys")
	}
	if !IsValidActivityLevel("very_active") || IsValidActivityLevel("active") {
		t.Error("IsValidActivityLevel should accept only known levels")
	}
}

func TestParseGoal(t *testing.T) {
	tests := []struct {
		in   string
		want Goal
		ok   bool
	}{
		{"LoseWeight", GoalLoseWeight, true},
		{"lose_weight", GoalLoseWeight, true},
		{"build-muscle", GoalBuildMuscle, true},
		{" stayfit ", GoalStayFit, true},
		{"IMPROVE_ENDURANCE", GoalImproveEndurance, true},
		{"get_huge", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseGoal(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseGoal(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
