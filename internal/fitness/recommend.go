// ABOUTME: Static workout template catalog and the daily recommendation selector.
// ABOUTME: Rest days favour mindfulness then physical recovery; training days follow preferences.
package fitness

import "slices"

// Intensity is a template's effort tag.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// WorkoutTemplate is a read-only catalog entry.
type WorkoutTemplate struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Type        string    `json:"type" yaml:"type"`
	Duration    int       `json:"duration" yaml:"duration"`
	Intensity   Intensity `json:"intensity" yaml:"intensity"`
	Tag         string    `json:"tag" yaml:"tag"`
}

// Recommendation is a template annotated with a calorie estimate.
type Recommendation struct {
	WorkoutTemplate
	Calories int `json:"calories" yaml:"calories"`
}

// DefaultRecommendationLimit applies when the caller passes a non-positive limit.
const DefaultRecommendationLimit = 3

var workoutTemplates = []WorkoutTemplate{
	{ID: "up-power", Title: "Upper Body Power", Description: "Chest, shoulders & arms with heavy resistance", Type: "strength", Duration: 45, Intensity: IntensityHigh, Tag: "upper body"},
	{ID: "low-strength", Title: "Leg Day Essentials", Description: "Squats, lunges and glute focus", Type: "strength", Duration: 50, Intensity: IntensityHigh, Tag: "legs"},
	{ID: "hiit-max", Title: "HIIT Cardio Blast", Description: "High intensity intervals for maximum burn", Type: "hiit", Duration: 30, Intensity: IntensityHigh, Tag: "intervals"},
	{ID: "yoga-flow", Title: "Zen Yoga Flow", Description: "Flexibility and balance for recovery", Type: "yoga", Duration: 40, Intensity: IntensityLow, Tag: "flexibility"},
	{ID: "core-stable", Title: "Core Stability", Description: "Deep abs and back strengthening", Type: "pilates", Duration: 35, Intensity: IntensityModerate, Tag: "core"},
	{ID: "swim-endurance", Title: "Endurance Swim", Description: "Continuous laps for cardiovascular health", Type: "swimming", Duration: 45, Intensity: IntensityModerate, Tag: "endurance"},
	{ID: "brisk-walk", Title: "Brisk Nature Walk", Description: "Active recovery in the fresh air", Type: "walking", Duration: 60, Intensity: IntensityLow, Tag: "outdoors"},
	{ID: "cross-total", Title: "Total CrossFit", Description: "Functional movements at high intensity", Type: "crossfit", Duration: 45, Intensity: IntensityHigh, Tag: "functional"},
	{ID: "med-deep", Title: "Mindful Meditation", Description: "Find your center with guided mindfulness", Type: "meditation", Duration: 15, Intensity: IntensityLow, Tag: "mindfulness"},
	{ID: "breath-work", Title: "Deep Breathing", Description: "Box breathing techniques for stress relief", Type: "breathing", Duration: 10, Intensity: IntensityLow, Tag: "breathwork"},
	{ID: "relax-muscle", Title: "Progressive Relaxation", Description: "Release tension from every muscle group", Type: "meditation", Duration: 20, Intensity: IntensityLow, Tag: "relaxation"},
}

var (
	recoveryTypes       = []string{"meditation", "breathing", "yoga", "walking", "pilates", "swimming"}
	mentalWellnessTypes = []string{"meditation", "breathing"}
)

const maxMentalWellnessPicks = 2

// Catalog returns a copy of the workout template catalog.
func Catalog() []WorkoutTemplate {
	return slices.Clone(workoutTemplates)
}

// RecoveryTypes returns the workout types allowed on rest days.
func RecoveryTypes() []string {
	return slices.Clone(recoveryTypes)
}

// RecommendWorkouts picks up to limit templates for today and annotates each
// with a calorie estimate for weightKg.
//
// On rest days only recovery types qualify: at most two mental-wellness
// templates come first, followed by every physical-recovery template. On
// training days templates matching the preferred types are used, or the whole
// catalog when none match.
func RecommendWorkouts(preferredTypes []string, weightKg float64, limit int, isRestDay bool) []Recommendation {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	var library []WorkoutTemplate
	if isRestDay {
		var mental, physical []WorkoutTemplate
		for _, t := range workoutTemplates {
			switch {
			case !slices.Contains(recoveryTypes, t.Type):
			case slices.Contains(mentalWellnessTypes, t.Type):
				mental = append(mental, t)
			default:
				physical = append(physical, t)
			}
		}
		library = append(mental[:min(len(mental), maxMentalWellnessPicks)], physical...)
	} else {
		for _, t := range workoutTemplates {
			if slices.Contains(preferredTypes, t.Type) {
				library = append(library, t)
			}
		}
		if len(library) == 0 {
			library = workoutTemplates
		}
	}

	if len(library) == 0 {
		library = workoutTemplates
	}
	library = library[:min(len(library), limit)]

	out := make([]Recommendation, 0, len(library))
	for _, t := range library {
		out = append(out, Recommendation{
			WorkoutTemplate: t,
			Calories:        EstimateCalories(t.Type, float64(t.Duration), weightKg),
		})
	}
	return out
}
