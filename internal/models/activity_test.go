// ABOUTME: Tests for the Activity model.
// ABOUTME: Validates constructors, duration builders, stopping live activities, and estimates.
package models

import (
	"testing"
	"time"

	"github.com/harperreed/fitplan/internal/fitness"
)

func TestNewActivity(t *testing.T) {
	a := NewActivity("cardio")

	if a.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if a.Type != "cardio" {
		t.Errorf("Type = %s, want cardio", a.Type)
	}
	if !a.IsRunning() {
		t.Error("new activity should be in progress")
	}
	if a.EndedAt != nil {
		t.Error("new activity should have no end time")
	}
}

func TestActivityWithDuration(t *testing.T) {
	start := time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC)
	a := NewActivity("strength").WithStartedAt(start).WithDuration(60).WithWeight(70)

	if a.Status != fitness.StatusCompleted {
		t.Errorf("Status = %s, want completed", a.Status)
	}
	if a.EndedAt == nil || !a.EndedAt.Equal(start.Add(time.Hour)) {
		t.Errorf("EndedAt = %v, want %v", a.EndedAt, start.Add(time.Hour))
	}

	a.Estimate(start.Add(2 * time.Hour))
	if a.Calories != 420 {
		t.Errorf("Calories = %d, want 420", a.Calories)
	}
	if a.Steps != 1800 {
		t.Errorf("Steps = %d, want 1800", a.Steps)
	}
}

func TestActivityWithStartedAtKeepsDuration(t *testing.T) {
	a := NewActivity("yoga").WithDuration(30)
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	a.WithStartedAt(start)

	if a.EndedAt == nil || !a.EndedAt.Equal(start.Add(30*time.Minute)) {
		t.Errorf("EndedAt = %v, want %v", a.EndedAt, start.Add(30*time.Minute))
	}
}

func TestActivityStop(t *testing.T) {
	start := time.Date(2025, 6, 16, 7, 0, 0, 0, time.UTC)
	a := NewActivity("walking").WithStartedAt(start).WithWeight(70)

	a.Stop(start.Add(10 * time.Minute))

	if a.IsRunning() {
		t.Error("stopped activity should not be running")
	}
	if a.DurationMinutes != 10 {
		t.Errorf("DurationMinutes = %v, want 10", a.DurationMinutes)
	}
	if a.Steps != 1000 {
		t.Errorf("Steps = %d, want 1000", a.Steps)
	}
	if a.Calories != 41 {
		t.Errorf("Calories = %d, want 41", a.Calories)
	}
}

func TestActivityStopBeforeStartClamps(t *testing.T) {
	start := time.Date(2025, 6, 16, 7, 0, 0, 0, time.UTC)
	a := NewActivity("hiit").WithStartedAt(start)
	a.Stop(start.Add(-time.Minute))

	if a.DurationMinutes != 0 || a.Calories != 0 {
		t.Errorf("expected zero duration and calories, got %v / %d", a.DurationMinutes, a.Calories)
	}
}

func TestEntries(t *testing.T) {
	acts := []*Activity{NewActivity("yoga").WithDuration(20), NewActivity("cardio")}
	entries := Entries(acts)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Status != fitness.StatusCompleted || entries[1].Status != fitness.StatusInProgress {
		t.Errorf("unexpected statuses: %+v", entries)
	}
}
