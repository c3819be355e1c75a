// ABOUTME: Distribution allocator splitting weekly sessions and minutes across workout types.
// ABOUTME: Uses goal-dependent weights; the last preference absorbs rounding slack so sums stay exact.
package fitness

// goalWeights biases the split toward workout types that serve each goal.
// Types missing from a table weigh 1, as does every type for a goal with no table.
var goalWeights = map[Goal]map[string]float64{
	GoalLoseWeight: {
		"cardio":   3,
		"hiit":     3,
		"swimming": 2,
		"walking":  2,
		"crossfit": 2,
		"sports":   2,
	},
	GoalBuildMuscle: {
		"strength": 3,
		"crossfit": 2,
	},
	GoalImproveEndurance: {
		"cardio":   3,
		"swimming": 3,
		"sports":   2,
		"hiit":     2,
		"walking":  2,
	},
}

// GoalWeight returns the allocation weight of a workout type under a goal.
func GoalWeight(goal Goal, workoutType string) float64 {
	if w, ok := goalWeights[goal][workoutType]; ok {
		return w
	}
	return 1
}

// AllocateDistribution splits sessions and minutes across the ordered
// preference list. Every entry but the last receives its rounded weighted
// share, clamped to what is left; the last receives the remainder. Entries
// with zero sessions are omitted and never hold minutes, so the result always
// sums to exactly sessions and minutes whenever sessions > 0.
func AllocateDistribution(goal Goal, prefs []string, sessions, minutes int) []WorkoutTypeDistribution {
	if len(prefs) == 0 {
		prefs = DefaultPreferences()
	}
	sessions = max(sessions, 0)
	minutes = max(minutes, 0)

	var totalWeight float64
	for _, p := range prefs {
		totalWeight += GoalWeight(goal, p)
	}

	remainingSessions, remainingMinutes := sessions, minutes
	out := make([]WorkoutTypeDistribution, 0, len(prefs))

	for i, p := range prefs {
		var s, m int
		if i == len(prefs)-1 {
			s, m = remainingSessions, remainingMinutes
		} else {
			share := GoalWeight(goal, p) / totalWeight
			s = min(roundInt(share*float64(sessions)), remainingSessions)
			if s > 0 {
				m = min(roundInt(share*float64(minutes)), remainingMinutes)
			}
		}
		remainingSessions -= s
		remainingMinutes -= m

		if s == 0 {
			// Only the last entry can reach here holding minutes.
			if m > 0 && len(out) > 0 {
				out[len(out)-1].WeeklyMinutes += m
			}
			continue
		}

		out = append(out, WorkoutTypeDistribution{
			WorkoutType:    p,
			WeeklyMinutes:  m,
			WeeklySessions: s,
		})
	}

	return out
}
