// ABOUTME: CLI command for workout recommendations.
// ABOUTME: Uses the plan's preferences and today's schedule to pick training or recovery sessions.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/storage"
	"github.com/spf13/cobra"
)

var (
	recommendDay   string
	recommendLimit int
	recommendTypes string
)

var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Aliases: []string{"rec"},
	Short:   "Suggest workouts for today",
	Long: `Suggest workouts from the built-in catalog.

On rest days only recovery sessions (mindfulness, yoga, walking, ...) are
suggested. By default the day kind comes from today's schedule.

Examples:
  fitplan recommend
  fitplan recommend --day rest
  fitplan recommend --types running,yoga -n 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var prefs []string
		restDay := false

		p, err := repo.GetCurrentPlan()
		switch {
		case err == nil:
			prefs = p.Biometrics.WorkoutPreferences
			restDay = p.Schedule.Today(time.Now()).IsRestDay
		case !errors.Is(err, storage.ErrNoPlan):
			return err
		}

		switch recommendDay {
		case "":
		case "rest":
			restDay = true
		case "training":
			restDay = false
		default:
			return fmt.Errorf("invalid --day %q (use rest or training)", recommendDay)
		}
		if recommendTypes != "" {
			prefs = splitList(recommendTypes)
		}

		limit := recommendLimit
		if limit <= 0 {
			limit = cfg.GetRecommendLimit()
		}

		out := cmd.OutOrStdout()
		if restDay {
			fmt.Fprintln(out, "Rest day. Recovery suggestions:")
		} else {
			fmt.Fprintln(out, "Training suggestions:")
		}
		for _, r := range fitness.RecommendWorkouts(prefs, currentWeight(), limit, restDay) {
			fmt.Fprintf(out, "  %s %s %3d min  %-8s ~%d kcal\n",
				padRight(r.Title, 24),
				faint.Sprint(padRight(r.Type, 16)),
				r.Duration, r.Intensity, r.Calories)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendDay, "day", "", "rest or training (default: from today's schedule)")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "number of suggestions (default: from config)")
	recommendCmd.Flags().StringVar(&recommendTypes, "types", "", "comma-separated preferred types (default: plan preferences)")
	rootCmd.AddCommand(recommendCmd)
}
