// ABOUTME: Tests for activity timing and progress roll-ups.
// ABOUTME: Exercises in-progress durations, week boundaries, and percent calculations.
package fitness

import (
	"testing"
	"time"
)

func TestElapsedMinutes(t *testing.T) {
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry ActivityEntry
		want  float64
	}{
		{
			name:  "in progress counts to now",
			entry: ActivityEntry{Status: StatusInProgress, StartedAt: now.Add(-30 * time.Minute)},
			want:  30,
		},
		{
			name: "completed uses start and end",
			entry: ActivityEntry{
				Status:    StatusCompleted,
				StartedAt: now.Add(-2 * time.Hour),
				EndedAt:   now.Add(-2*time.Hour + 45*time.Minute + 45*time.Second),
			},
			want: 45.75,
		},
		{
			name:  "completed without times uses duration",
			entry: ActivityEntry{Status: StatusCompleted, DurationMinutes: 20},
			want:  20,
		},
		{
			name:  "end before start clamps",
			entry: ActivityEntry{Status: StatusCompleted, StartedAt: now, EndedAt: now.Add(-time.Minute)},
			want:  0,
		},
		{
			name:  "future start clamps",
			entry: ActivityEntry{Status: StatusInProgress, StartedAt: now.Add(time.Hour)},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.ElapsedMinutes(now); got != tt.want {
				t.Errorf("ElapsedMinutes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActivityEntryEstimates(t *testing.T) {
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	e := ActivityEntry{Type: "walking", Status: StatusInProgress, StartedAt: now.Add(-10 * time.Minute), WeightKg: 70}

	if got := e.Steps(now); got != 1000 {
		t.Errorf("Steps = %d, want 1000", got)
	}
	if got := e.Calories(now); got != 41 {
		t.Errorf("Calories = %d, want 41", got)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC), time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := WeekStart(tt.in); !got.Equal(tt.want) {
			t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWeeklyProgress(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC) // Wednesday
	targets := FitnessTargets{
		WeeklyCalorieBurnTarget:      1000,
		WeeklyWorkoutMinutes:         180,
		WeeklyWorkoutFrequencyTarget: 4,
	}
	entries := []ActivityEntry{
		{Type: "strength", Status: StatusCompleted, StartedAt: time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC), DurationMinutes: 60, WeightKg: 70},
		{Type: "cardio", Status: StatusCompleted, StartedAt: time.Date(2025, 6, 17, 18, 0, 0, 0, time.UTC), DurationMinutes: 30, WeightKg: 70},
		{Type: "walking", Status: StatusInProgress, StartedAt: now.Add(-30 * time.Minute), WeightKg: 70},
		// Previous week, ignored.
		{Type: "hiit", Status: StatusCompleted, StartedAt: time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC), DurationMinutes: 30, WeightKg: 70},
	}

	p := WeeklyProgress(targets, entries, now)

	if p.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", p.Sessions)
	}
	if p.Minutes != 120 {
		t.Errorf("Minutes = %v, want 120", p.Minutes)
	}
	// 420 + 280 + 123 (walking 30min)
	if p.Calories != 823 {
		t.Errorf("Calories = %d, want 823", p.Calories)
	}
	if p.SessionPercent != 50 {
		t.Errorf("SessionPercent = %v, want 50", p.SessionPercent)
	}
	if p.MinutePercent != 120.0/180*100 {
		t.Errorf("MinutePercent = %v", p.MinutePercent)
	}
	if !p.From.Equal(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("From = %v", p.From)
	}
}

func TestDailyProgress(t *testing.T) {
	now := time.Date(2025, 6, 18, 20, 0, 0, 0, time.UTC)
	targets := FitnessTargets{DailyMoveTarget: 420, DailyExerciseTarget: 30}
	entries := []ActivityEntry{
		{Type: "strength", Status: StatusCompleted, StartedAt: time.Date(2025, 6, 18, 7, 0, 0, 0, time.UTC), DurationMinutes: 60, WeightKg: 70},
		{Type: "strength", Status: StatusCompleted, StartedAt: time.Date(2025, 6, 17, 7, 0, 0, 0, time.UTC), DurationMinutes: 60, WeightKg: 70},
	}

	p := DailyProgress(targets, entries, now)
	if p.Sessions != 1 || p.Minutes != 60 || p.Calories != 420 {
		t.Errorf("unexpected progress: %+v", p)
	}
	if p.CaloriePercent != 100 || p.MinutePercent != 200 {
		t.Errorf("unexpected percents: %+v", p)
	}
	if p.SessionTarget != 0 || p.SessionPercent != 0 {
		t.Errorf("daily progress has no session target: %+v", p)
	}
}
