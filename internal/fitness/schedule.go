// ABOUTME: Weekly schedule generator laying planned sessions onto seven day slots.
// ABOUTME: Spaces sessions evenly with linear conflict probing; also provides cell-by-cell edits.
package fitness

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DaysPerWeek is the number of slots in a Schedule.
const DaysPerWeek = 7

// DefaultTimeOfDay is assigned to every generated slot.
const DefaultTimeOfDay = "18:00"

// Weekday is a schedule slot index with Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// MarshalText encodes the weekday by name.
func (d Weekday) MarshalText() ([]byte, error) {
	if d < Monday || d > Sunday {
		return nil, fmt.Errorf("marshal weekday %d: %w", int(d), ErrUnknownWeekday)
	}
	return []byte(weekdayNames[d]), nil
}

// UnmarshalText decodes a weekday name.
func (d *Weekday) UnmarshalText(b []byte) error {
	w, err := ParseWeekday(string(b))
	if err != nil {
		return err
	}
	*d = w
	return nil
}

// ParseWeekday accepts full or three-letter day names, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range weekdayNames {
		lower := strings.ToLower(name)
		if s == lower || (len(s) == 3 && strings.HasPrefix(lower, s)) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("parse %q: %w", s, ErrUnknownWeekday)
}

// WeekdayOf converts a time.Weekday (Sunday first) to a schedule Weekday.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % DaysPerWeek)
}

// ScheduleItem is one day of the weekly schedule.
type ScheduleItem struct {
	DayOfWeek       Weekday `json:"day_of_week" yaml:"day_of_week"`
	WorkoutType     string  `json:"workout_type,omitempty" yaml:"workout_type,omitempty"`
	DurationMinutes int     `json:"duration_minutes" yaml:"duration_minutes"`
	TimeOfDay       string  `json:"time_of_day" yaml:"time_of_day"`
	IsRestDay       bool    `json:"is_rest_day" yaml:"is_rest_day"`
}

// Schedule holds exactly one item per day, Monday through Sunday.
type Schedule [DaysPerWeek]ScheduleItem

func restItem(day Weekday, timeOfDay string) ScheduleItem {
	return ScheduleItem{
		DayOfWeek: day,
		TimeOfDay: timeOfDay,
		IsRestDay: true,
	}
}

type plannedSession struct {
	workoutType string
	minutes     int
}

// flattenSessions expands the distribution into individual sessions, each
// type's minutes split evenly across its sessions.
func flattenSessions(dist []WorkoutTypeDistribution) []plannedSession {
	var out []plannedSession
	for _, d := range dist {
		if d.WeeklySessions <= 0 {
			continue
		}
		per := roundInt(float64(d.WeeklyMinutes) / float64(d.WeeklySessions))
		for range d.WeeklySessions {
			out = append(out, plannedSession{workoutType: d.WorkoutType, minutes: per})
		}
	}
	return out
}

// GenerateSchedule lays the planned sessions onto the week. Session i aims at
// slot floor(i*7/freq) and probes forward, wrapping, until it finds a rest
// day. Sessions that find no free slot are dropped.
func GenerateSchedule(targets FitnessTargets) Schedule {
	var s Schedule
	for i := range s {
		s[i] = restItem(Weekday(i), DefaultTimeOfDay)
	}

	freq := min(max(targets.WeeklyWorkoutFrequencyTarget, 1), DaysPerWeek)
	stride := float64(DaysPerWeek) / float64(freq)

	for i, session := range flattenSessions(targets.WorkoutTypeDistribution) {
		target := int(math.Floor(float64(i)*stride)) % DaysPerWeek
		for probe := range DaysPerWeek {
			slot := (target + probe) % DaysPerWeek
			if !s[slot].IsRestDay {
				continue
			}
			s[slot] = ScheduleItem{
				DayOfWeek:       Weekday(slot),
				WorkoutType:     session.workoutType,
				DurationMinutes: session.minutes,
				TimeOfDay:       DefaultTimeOfDay,
			}
			break
		}
	}

	return s
}

// Overflow reports how many planned sessions GenerateSchedule drops because
// the week has no free slot left for them.
func Overflow(targets FitnessTargets) int {
	return max(0, len(flattenSessions(targets.WorkoutTypeDistribution))-DaysPerWeek)
}

// WorkoutDays counts the non-rest days.
func (s Schedule) WorkoutDays() int {
	n := 0
	for _, item := range s {
		if !item.IsRestDay {
			n++
		}
	}
	return n
}

// TotalMinutes sums scheduled workout minutes across the week.
func (s Schedule) TotalMinutes() int {
	total := 0
	for _, item := range s {
		total += item.DurationMinutes
	}
	return total
}

// Day returns the item for a weekday.
func (s Schedule) Day(d Weekday) (ScheduleItem, error) {
	if d < Monday || d > Sunday {
		return ScheduleItem{}, fmt.Errorf("day %d: %w", int(d), ErrUnknownWeekday)
	}
	return s[d], nil
}

// Today returns the item for t's weekday.
func (s Schedule) Today(t time.Time) ScheduleItem {
	return s[WeekdayOf(t)]
}

// SetRest turns a day into a rest day, keeping its time of day.
func (s *Schedule) SetRest(d Weekday) error {
	item, err := s.Day(d)
	if err != nil {
		return err
	}
	s[d] = restItem(d, item.TimeOfDay)
	return nil
}

// SetWorkout assigns a workout to a day. Non-positive minutes fall back to
// the default session length.
func (s *Schedule) SetWorkout(d Weekday, workoutType string, minutes int) error {
	item, err := s.Day(d)
	if err != nil {
		return err
	}
	workoutType = strings.TrimSpace(workoutType)
	if workoutType == "" {
		return fmt.Errorf("set workout on %s: workout type is required", d)
	}
	if minutes <= 0 {
		minutes = DefaultSessionMinutes
	}
	item.WorkoutType = workoutType
	item.DurationMinutes = minutes
	item.IsRestDay = false
	s[d] = item
	return nil
}

// SetTime changes a day's time of day; the value must be HH:MM.
func (s *Schedule) SetTime(d Weekday, timeOfDay string) error {
	if _, err := s.Day(d); err != nil {
		return err
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return fmt.Errorf("set time %q on %s: %w", timeOfDay, d, ErrInvalidTime)
	}
	s[d].TimeOfDay = timeOfDay
	return nil
}

// ToggleRest flips a day between rest and workout. A rest day becomes a
// default-length session of the plan's first workout type.
func (s *Schedule) ToggleRest(d Weekday, targets FitnessTargets) error {
	item, err := s.Day(d)
	if err != nil {
		return err
	}
	if !item.IsRestDay {
		return s.SetRest(d)
	}
	workoutType := "strength"
	if len(targets.WorkoutTypeDistribution) > 0 {
		workoutType = targets.WorkoutTypeDistribution[0].WorkoutType
	}
	return s.SetWorkout(d, workoutType, DefaultSessionMinutes)
}
