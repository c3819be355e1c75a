// ABOUTME: Tests for weekly schedule generation and per-day edits.
// ABOUTME: Checks slot spacing, overflow handling, weekday parsing, and toggle behaviour.
package fitness

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetsWith(freq int, dist ...WorkoutTypeDistribution) FitnessTargets {
	return FitnessTargets{WeeklyWorkoutFrequencyTarget: freq, WorkoutTypeDistribution: dist}
}

func TestGenerateScheduleAlwaysSevenDays(t *testing.T) {
	for sessions := 0; sessions <= 9; sessions++ {
		targets := targetsWith(sessions, WorkoutTypeDistribution{WorkoutType: "cardio", WeeklyMinutes: sessions * 30, WeeklySessions: sessions})
		s := GenerateSchedule(targets)

		require.Len(t, s, DaysPerWeek)
		for i, item := range s {
			assert.Equal(t, Weekday(i), item.DayOfWeek)
			assert.Equal(t, DefaultTimeOfDay, item.TimeOfDay)
			if item.IsRestDay {
				assert.Empty(t, item.WorkoutType)
				assert.Zero(t, item.DurationMinutes)
			}
		}
		assert.Equal(t, min(sessions, DaysPerWeek), s.WorkoutDays(), "sessions=%d", sessions)
	}
}

func TestGenerateScheduleReferencePlacement(t *testing.T) {
	targets := targetsWith(4,
		WorkoutTypeDistribution{WorkoutType: "strength", WeeklyMinutes: 90, WeeklySessions: 2},
		WorkoutTypeDistribution{WorkoutType: "cardio", WeeklyMinutes: 90, WeeklySessions: 2},
	)
	s := GenerateSchedule(targets)

	want := map[Weekday]string{
		Monday:   "strength",
		Tuesday:  "strength",
		Thursday: "cardio",
		Saturday: "cardio",
	}
	for _, item := range s {
		workout, ok := want[item.DayOfWeek]
		if !ok {
			assert.True(t, item.IsRestDay, "%s should be a rest day", item.DayOfWeek)
			continue
		}
		assert.False(t, item.IsRestDay)
		assert.Equal(t, workout, item.WorkoutType, item.DayOfWeek.String())
		assert.Equal(t, 45, item.DurationMinutes)
	}
	assert.Equal(t, 180, s.TotalMinutes())
}

func TestGenerateScheduleSixSessions(t *testing.T) {
	s := GenerateSchedule(targetsWith(6,
		WorkoutTypeDistribution{WorkoutType: "strength", WeeklyMinutes: 135, WeeklySessions: 3},
		WorkoutTypeDistribution{WorkoutType: "cardio", WeeklyMinutes: 135, WeeklySessions: 3},
	))
	assert.Equal(t, 6, s.WorkoutDays())
}

func TestGenerateScheduleOverflowDropped(t *testing.T) {
	targets := targetsWith(9,
		WorkoutTypeDistribution{WorkoutType: "strength", WeeklyMinutes: 225, WeeklySessions: 5},
		WorkoutTypeDistribution{WorkoutType: "yoga", WeeklyMinutes: 120, WeeklySessions: 4},
	)
	s := GenerateSchedule(targets)

	assert.Equal(t, DaysPerWeek, s.WorkoutDays())
	assert.Equal(t, 2, Overflow(targets))
	assert.Zero(t, Overflow(targetsWith(4, WorkoutTypeDistribution{WorkoutType: "cardio", WeeklyMinutes: 180, WeeklySessions: 4})))
}

func TestGenerateScheduleSkipsZeroSessionEntries(t *testing.T) {
	s := GenerateSchedule(targetsWith(1,
		WorkoutTypeDistribution{WorkoutType: "strength", WeeklyMinutes: 90, WeeklySessions: 0},
		WorkoutTypeDistribution{WorkoutType: "cardio", WeeklyMinutes: 40, WeeklySessions: 1},
	))
	assert.Equal(t, 1, s.WorkoutDays())
	assert.Equal(t, "cardio", s[Monday].WorkoutType)
	assert.Equal(t, 40, s[Monday].DurationMinutes)
}

func TestGenerateScheduleEmptyDistribution(t *testing.T) {
	s := GenerateSchedule(targetsWith(0))
	assert.Zero(t, s.WorkoutDays())
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    Weekday
		wantErr bool
	}{
		{"monday", Monday, false},
		{"Tue", Tuesday, false},
		{" SUNDAY ", Sunday, false},
		{"fri", Friday, false},
		{"th", 0, true},
		{"someday", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownWeekday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2025-06-15 is a Sunday, 2025-06-16 a Monday.
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, Monday, WeekdayOf(time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)))
}

func TestScheduleJSONUsesDayNames(t *testing.T) {
	s := GenerateSchedule(targetsWith(1, WorkoutTypeDistribution{WorkoutType: "yoga", WeeklyMinutes: 40, WeeklySessions: 1}))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"day_of_week":"Monday"`)

	var decoded Schedule
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)
}

func TestScheduleEdits(t *testing.T) {
	targets := targetsWith(2,
		WorkoutTypeDistribution{WorkoutType: "pilates", WeeklyMinutes: 70, WeeklySessions: 2},
	)
	s := GenerateSchedule(targets)

	require.NoError(t, s.SetTime(Monday, "07:30"))
	require.NoError(t, s.SetRest(Monday))
	assert.True(t, s[Monday].IsRestDay)
	assert.Equal(t, "07:30", s[Monday].TimeOfDay, "rest keeps the time of day")

	require.NoError(t, s.SetWorkout(Wednesday, "swimming", 0))
	assert.Equal(t, "swimming", s[Wednesday].WorkoutType)
	assert.Equal(t, DefaultSessionMinutes, s[Wednesday].DurationMinutes)

	assert.Error(t, s.SetWorkout(Wednesday, "  ", 30))
	assert.ErrorIs(t, s.SetTime(Friday, "25:99"), ErrInvalidTime)
	assert.ErrorIs(t, s.SetRest(Weekday(9)), ErrUnknownWeekday)
}

func TestToggleRest(t *testing.T) {
	targets := targetsWith(1, WorkoutTypeDistribution{WorkoutType: "hiit", WeeklyMinutes: 30, WeeklySessions: 1})
	s := GenerateSchedule(targets)

	require.True(t, s[Sunday].IsRestDay)
	require.NoError(t, s.ToggleRest(Sunday, targets))
	assert.Equal(t, "hiit", s[Sunday].WorkoutType)
	assert.Equal(t, DefaultSessionMinutes, s[Sunday].DurationMinutes)

	require.NoError(t, s.ToggleRest(Sunday, targets))
	assert.True(t, s[Sunday].IsRestDay)

	require.NoError(t, s.ToggleRest(Saturday, FitnessTargets{}))
	assert.Equal(t, "strength", s[Saturday].WorkoutType)
}

func TestScheduleToday(t *testing.T) {
	s := GenerateSchedule(targetsWith(1, WorkoutTypeDistribution{WorkoutType: "yoga", WeeklyMinutes: 40, WeeklySessions: 1}))
	monday := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "yoga", s.Today(monday).WorkoutType)
	assert.True(t, s.Today(monday.AddDate(0, 0, 1)).IsRestDay)

	_, err := s.Day(Weekday(-1))
	assert.True(t, errors.Is(err, ErrUnknownWeekday))
}
