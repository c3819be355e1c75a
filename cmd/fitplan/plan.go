// ABOUTME: CLI commands for creating and editing fitness plans.
// ABOUTME: Supports create, show, list, rescale, edit, reset, and delete subcommands.
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/models"
	"github.com/spf13/cobra"
)

var (
	planWeight    string
	planHeight    string
	planBirthdate string
	planGender    string
	planLevel     string
	planGoal      string
	planPrefs     string
	planName      string
	planField     string
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"p"},
	Short:   "Manage fitness plans",
	Long: `Create and edit fitness plans.

A plan is computed once from a biometric snapshot. The computed (original)
targets never change; rescales and edits apply to a working copy, and
'fitplan plan reset' restores it.

COMMANDS:

  create    Compute a new plan from biometrics
  show      Show targets, distribution, and schedule
  list      List saved plans
  rescale   Set a new weekly minutes or sessions total
  edit      Change one workout type's minutes or sessions
  reset     Restore the computed targets and schedule
  delete    Delete a plan`,
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Compute a new plan from biometrics",
	Long: `Compute weekly targets, a workout split, and a schedule from biometrics.

Missing or malformed values fall back to defaults (70 kg, 170 cm, age 25).

GOALS:       LoseWeight, BuildMuscle, StayFit, ImproveEndurance
             (snake_case like build_muscle also works)
LEVELS:      sedentary, lightly_active, moderately_active, very_active, extremely_active
PREFERENCES: comma separated workout types, e.g. strength,cardio,hiit

Examples:
  fitplan plan create --weight 70 --height 170 --birthdate 1990-01-01 --gender male
  fitplan plan create --goal lose_weight --prefs cardio,hiit,strength --name "Summer cut"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, ok := fitness.ParseGoal(planGoal)
		if !ok {
			return fmt.Errorf("unknown goal: %s (use LoseWeight, BuildMuscle, StayFit, or ImproveEndurance)", planGoal)
		}
		if !fitness.IsValidActivityLevel(planLevel) {
			return fmt.Errorf("unknown activity level: %s", planLevel)
		}

		in := fitness.BiometricInput{
			WeightKg:           fitness.ParseMeasurement(planWeight),
			HeightCm:           fitness.ParseMeasurement(planHeight),
			Birthdate:          planBirthdate,
			Gender:             strings.ToLower(planGender),
			ActivityLevel:      fitness.ActivityLevel(planLevel),
			FitnessGoal:        goal,
			WorkoutPreferences: splitList(planPrefs),
		}

		p := models.NewPlan(in)
		if planName != "" {
			p.WithName(planName)
		}
		if err := repo.SavePlan(p); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		out := cmd.OutOrStdout()
		success(out, "Created %s", p.DisplayName())
		printPlan(out, p)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a plan (the current one by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(firstArg(args))
		if err != nil {
			return err
		}
		printPlan(cmd.OutOrStdout(), p)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved plans, most recently updated first",
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := repo.ListPlans()
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(plans) == 0 {
			fmt.Fprintln(out, "No plans found.")
			return nil
		}
		for i, p := range plans {
			marker := " "
			if i == 0 {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s %s %s %d min / %d sessions\n",
				marker,
				shortID(p.ID),
				faint.Sprint(p.UpdatedAt.Format("2006-01-02 15:04")),
				padRight(truncate(p.DisplayName(), 24), 24),
				p.Working.WeeklyWorkoutMinutes,
				p.Working.WeeklyWorkoutFrequencyTarget)
		}
		return nil
	},
}

var planRescaleCmd = &cobra.Command{
	Use:   "rescale <total> [id]",
	Short: "Set a new weekly total, keeping the original split",
	Long: `Set a new weekly minutes (default) or sessions total. Every workout type
keeps its share of the originally computed split, and the totals always add
up exactly. The schedule is regenerated afterwards.

Examples:
  fitplan plan rescale 200
  fitplan plan rescale 5 --field sessions`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := strconv.Atoi(args[0])
		if err != nil || total <= 0 {
			return fmt.Errorf("invalid total: %s (must be a positive whole number)", args[0])
		}
		field, err := fitness.ParseRescaleField(planField)
		if err != nil {
			return err
		}

		p, err := loadPlan(secondArg(args))
		if err != nil {
			return err
		}
		p.Rescale(total, field)
		p.RegenerateSchedule()
		if err := repo.SavePlan(p); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		out := cmd.OutOrStdout()
		success(out, "Rescaled weekly %s to %d", field, total)
		printDistribution(out, p.Working)
		warnOverflow(out, p.Working)
		return nil
	},
}

var planEditCmd = &cobra.Command{
	Use:   "edit <type> <value> [id]",
	Short: "Change one workout type's minutes or sessions",
	Long: `Overwrite the minutes (default) or sessions for one workout type. Weekly
totals become the sum of the distribution. The schedule is regenerated.

Examples:
  fitplan plan edit cardio 120
  fitplan plan edit strength 3 --field sessions`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}
		field, err := fitness.ParseRescaleField(planField)
		if err != nil {
			return err
		}

		var id string
		if len(args) == 3 {
			id = args[2]
		}
		p, err := loadPlan(id)
		if err != nil {
			return err
		}

		index := distributionIndex(p.Working, args[0])
		if index < 0 {
			return fmt.Errorf("workout type %q is not in this plan", args[0])
		}
		if err := p.EditDistribution(index, field, value); err != nil {
			return err
		}
		p.RegenerateSchedule()
		if err := repo.SavePlan(p); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		out := cmd.OutOrStdout()
		success(out, "Set %s %s to %d", args[0], field, max(value, 0))
		printDistribution(out, p.Working)
		warnOverflow(out, p.Working)
		return nil
	},
}

var planResetCmd = &cobra.Command{
	Use:   "reset [id]",
	Short: "Restore the computed targets and schedule",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(firstArg(args))
		if err != nil {
			return err
		}
		p.Reset()
		if err := repo.SavePlan(p); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		out := cmd.OutOrStdout()
		success(out, "Reset %s", p.DisplayName())
		printDistribution(out, p.Working)
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a plan",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetPlan(args[0])
		if err != nil {
			return err
		}
		if err := repo.DeletePlan(p.ID.String()); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}

		removed(cmd.OutOrStdout(), "Deleted %s %s", p.DisplayName(), shortID(p.ID))
		return nil
	},
}

func distributionIndex(t fitness.FitnessTargets, workoutType string) int {
	for i, d := range t.WorkoutTypeDistribution {
		if strings.EqualFold(d.WorkoutType, workoutType) {
			return i
		}
	}
	return -1
}

func printPlan(w io.Writer, p *models.Plan) {
	t := p.Working
	fmt.Fprintf(w, "%s %s (%s)\n", shortID(p.ID), p.DisplayName(), p.Biometrics.FitnessGoal)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Weekly burn     %d kcal\n", t.WeeklyCalorieBurnTarget)
	fmt.Fprintf(w, "  Weekly workouts %d sessions, %d min\n", t.WeeklyWorkoutFrequencyTarget, t.WeeklyWorkoutMinutes)
	fmt.Fprintf(w, "  Daily move      %d kcal\n", t.DailyMoveTarget)
	fmt.Fprintf(w, "  Daily exercise  %d min\n", t.DailyExerciseTarget)
	fmt.Fprintln(w)
	printDistribution(w, t)
	fmt.Fprintln(w)
	printSchedule(w, p.Schedule)
	warnOverflow(w, t)
}

func printDistribution(w io.Writer, t fitness.FitnessTargets) {
	for _, d := range t.WorkoutTypeDistribution {
		fmt.Fprintf(w, "  %s %d sessions  %d min\n", padRight(d.WorkoutType, 12), d.WeeklySessions, d.WeeklyMinutes)
	}
}

func warnOverflow(w io.Writer, t fitness.FitnessTargets) {
	if n := fitness.Overflow(t); n > 0 {
		warn(w, "%d session(s) do not fit in a 7-day week and were not scheduled", n)
	}
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func secondArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}

func init() {
	planCreateCmd.Flags().StringVar(&planWeight, "weight", "", "body weight in kg")
	planCreateCmd.Flags().StringVar(&planHeight, "height", "", "height in cm")
	planCreateCmd.Flags().StringVar(&planBirthdate, "birthdate", "", "birthdate (YYYY-MM-DD)")
	planCreateCmd.Flags().StringVar(&planGender, "gender", "", "male or female")
	planCreateCmd.Flags().StringVar(&planLevel, "level", string(fitness.LevelModeratelyActive), "activity level")
	planCreateCmd.Flags().StringVar(&planGoal, "goal", string(fitness.GoalStayFit), "fitness goal")
	planCreateCmd.Flags().StringVar(&planPrefs, "prefs", "", "preferred workout types, comma separated (default strength,cardio)")
	planCreateCmd.Flags().StringVar(&planName, "name", "", "plan name")

	planRescaleCmd.Flags().StringVar(&planField, "field", string(fitness.RescaleMinutes), "minutes or sessions")
	planEditCmd.Flags().StringVar(&planField, "field", string(fitness.RescaleMinutes), "minutes or sessions")

	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planRescaleCmd)
	planCmd.AddCommand(planEditCmd)
	planCmd.AddCommand(planResetCmd)
	planCmd.AddCommand(planDeleteCmd)
	rootCmd.AddCommand(planCmd)
}
