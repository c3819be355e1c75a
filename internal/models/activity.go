// ABOUTME: Activity model for logged and live-timed workout sessions.
// ABOUTME: Activities carry calorie and step estimates filled in from the fitness engine.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitplan/internal/fitness"
)

// Activity represents one workout session, either running or finished.
type Activity struct {
	ID              uuid.UUID              `json:"id" yaml:"id"`
	Type            string                 `json:"type" yaml:"type"`
	Status          fitness.ActivityStatus `json:"status" yaml:"status"`
	StartedAt       time.Time              `json:"started_at" yaml:"started_at"`
	EndedAt         *time.Time             `json:"ended_at,omitempty" yaml:"ended_at,omitempty"`
	DurationMinutes float64                `json:"duration_minutes" yaml:"duration_minutes"`
	WeightKg        float64                `json:"weight_kg" yaml:"weight_kg"`
	Calories        int                    `json:"calories" yaml:"calories"`
	Steps           int                    `json:"steps" yaml:"steps"`
	Notes           *string                `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at" yaml:"created_at"`
}

// NewActivity starts a live activity at the current time.
func NewActivity(activityType string) *Activity {
	now := time.Now()
	return &Activity{
		ID:        uuid.New(),
		Type:      activityType,
		Status:    fitness.StatusInProgress,
		StartedAt: now,
		CreatedAt: now,
	}
}

// WithDuration marks the activity finished after the given number of minutes.
func (a *Activity) WithDuration(minutes float64) *Activity {
	minutes = max(minutes, 0)
	end := a.StartedAt.Add(time.Duration(minutes * float64(time.Minute)))
	a.EndedAt = &end
	a.DurationMinutes = minutes
	a.Status = fitness.StatusCompleted
	return a
}

// WithStartedAt sets a custom start timestamp, shifting EndedAt to keep the duration.
func (a *Activity) WithStartedAt(t time.Time) *Activity {
	a.StartedAt = t
	if a.EndedAt != nil {
		end := t.Add(time.Duration(a.DurationMinutes * float64(time.Minute)))
		a.EndedAt = &end
	}
	return a
}

// WithWeight sets the body weight used for calorie estimates.
func (a *Activity) WithWeight(kg float64) *Activity {
	a.WeightKg = kg
	return a
}

// WithNotes sets notes on the activity.
func (a *Activity) WithNotes(notes string) *Activity {
	a.Notes = &notes
	return a
}

// Stop finishes a live activity at the given time and refreshes its estimates.
func (a *Activity) Stop(at time.Time) {
	if at.Before(a.StartedAt) {
		at = a.StartedAt
	}
	a.EndedAt = &at
	a.Status = fitness.StatusCompleted
	a.DurationMinutes = a.Entry().ElapsedMinutes(at)
	a.Estimate(at)
}

// Entry converts the activity to the engine's view of it.
func (a *Activity) Entry() fitness.ActivityEntry {
	e := fitness.ActivityEntry{
		Type:            a.Type,
		Status:          a.Status,
		StartedAt:       a.StartedAt,
		DurationMinutes: a.DurationMinutes,
		WeightKg:        a.WeightKg,
	}
	if a.EndedAt != nil {
		e.EndedAt = *a.EndedAt
	}
	return e
}

// Estimate fills Calories and Steps as of now.
func (a *Activity) Estimate(now time.Time) *Activity {
	e := a.Entry()
	a.Calories = e.Calories(now)
	a.Steps = e.Steps(now)
	return a
}

// IsRunning reports whether the activity is still being timed.
func (a *Activity) IsRunning() bool {
	return a.Status == fitness.StatusInProgress
}

// Entries converts a list of activities for the progress summaries.
func Entries(activities []*Activity) []fitness.ActivityEntry {
	out := make([]fitness.ActivityEntry, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.Entry())
	}
	return out
}
