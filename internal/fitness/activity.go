// ABOUTME: Activity timing and progress summaries against computed targets.
// ABOUTME: Handles live (in-progress) durations and weekly/daily roll-ups for the dashboard.
package fitness

import (
	"math"
	"time"
)

// ActivityStatus is the lifecycle state of a logged activity.
type ActivityStatus string

const (
	StatusInProgress ActivityStatus = "in_progress"
	StatusCompleted  ActivityStatus = "completed"
)

// ActivityEntry is the slice of a logged activity the summaries need.
type ActivityEntry struct {
	Type            string
	Status          ActivityStatus
	StartedAt       time.Time
	EndedAt         time.Time
	DurationMinutes float64
	WeightKg        float64
}

// ElapsedMinutes returns the precise duration of an entry. In-progress
// entries count up to now; finished ones use their start and end times, or
// the recorded duration when either is missing. Never negative.
func (e ActivityEntry) ElapsedMinutes(now time.Time) float64 {
	switch {
	case e.Status == StatusInProgress && !e.StartedAt.IsZero():
		return math.Max(0, now.Sub(e.StartedAt).Minutes())
	case !e.StartedAt.IsZero() && !e.EndedAt.IsZero():
		return math.Max(0, e.EndedAt.Sub(e.StartedAt).Minutes())
	default:
		return math.Max(0, e.DurationMinutes)
	}
}

// Calories estimates the entry's energy expenditure as of now.
func (e ActivityEntry) Calories(now time.Time) int {
	return EstimateCalories(e.Type, e.ElapsedMinutes(now), e.WeightKg)
}

// Steps estimates the entry's step count as of now.
func (e ActivityEntry) Steps(now time.Time) int {
	return EstimateSteps(e.Type, e.ElapsedMinutes(now))
}

// WeekStart returns midnight on the Monday of t's week, in t's location.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(WeekdayOf(t)))
}

// Progress rolls up activity totals for a period and compares them to targets.
type Progress struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Sessions int       `json:"sessions"`
	Minutes  float64   `json:"minutes"`
	Calories int       `json:"calories"`
	Steps    int       `json:"steps"`

	SessionTarget int `json:"session_target"`
	MinuteTarget  int `json:"minute_target"`
	CalorieTarget int `json:"calorie_target"`

	SessionPercent float64 `json:"session_percent"`
	MinutePercent  float64 `json:"minute_percent"`
	CaloriePercent float64 `json:"calorie_percent"`
}

// WeeklyProgress summarizes entries started during now's week against the
// weekly targets. Only completed entries count as sessions.
func WeeklyProgress(targets FitnessTargets, entries []ActivityEntry, now time.Time) Progress {
	from := WeekStart(now)
	p := summarize(entries, from, from.AddDate(0, 0, DaysPerWeek), now)
	p.SessionTarget = targets.WeeklyWorkoutFrequencyTarget
	p.MinuteTarget = targets.WeeklyWorkoutMinutes
	p.CalorieTarget = targets.WeeklyCalorieBurnTarget
	p.fillPercents()
	return p
}

// DailyProgress summarizes entries started on now's day against the daily
// move (calories) and exercise (minutes) targets.
func DailyProgress(targets FitnessTargets, entries []ActivityEntry, now time.Time) Progress {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	p := summarize(entries, from, from.AddDate(0, 0, 1), now)
	p.MinuteTarget = targets.DailyExerciseTarget
	p.CalorieTarget = targets.DailyMoveTarget
	p.fillPercents()
	return p
}

func summarize(entries []ActivityEntry, from, to, now time.Time) Progress {
	p := Progress{From: from, To: to}
	for _, e := range entries {
		if e.StartedAt.Before(from) || !e.StartedAt.Before(to) {
			continue
		}
		if e.Status != StatusInProgress {
			p.Sessions++
		}
		p.Minutes += e.ElapsedMinutes(now)
		p.Calories += e.Calories(now)
		p.Steps += e.Steps(now)
	}
	return p
}

func (p *Progress) fillPercents() {
	p.SessionPercent = percent(float64(p.Sessions), p.SessionTarget)
	p.MinutePercent = percent(p.Minutes, p.MinuteTarget)
	p.CaloriePercent = percent(float64(p.Calories), p.CalorieTarget)
}

func percent(v float64, target int) float64 {
	if target <= 0 {
		return 0
	}
	return v / float64(target) * 100
}
