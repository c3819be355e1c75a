// ABOUTME: CLI commands for one-off calorie and step estimates.
// ABOUTME: Nothing is stored; the figures come straight from the MET and cadence tables.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/spf13/cobra"
)

var estimateWeight float64

var estimateCmd = &cobra.Command{
	Use:     "estimate",
	Aliases: []string{"est"},
	Short:   "Estimate calories or steps for an activity",
}

var estimateCaloriesCmd = &cobra.Command{
	Use:   "calories <type> <minutes>",
	Short: "Estimate calories burned (MET x weight x hours)",
	Long: `Estimate calories burned for an activity type and duration.

Unknown activity types use a MET of 3.5. The weight defaults to your
latest logged weight.

Examples:
  fitplan estimate calories running 30
  fitplan estimate calories yoga 60 --weight 55`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := parseMinutes(args[1])
		if err != nil {
			return err
		}
		weight := estimateWeight
		if weight <= 0 {
			weight = currentWeight()
		}

		kcal := fitness.EstimateCalories(args[0], minutes, weight)
		fmt.Fprintf(cmd.OutOrStdout(), "%s for %g min at %.1f kg: %d kcal (MET %.1f)\n",
			args[0], minutes, weight, kcal, fitness.MET(args[0]))
		return nil
	},
}

var estimateStepsCmd = &cobra.Command{
	Use:   "steps <type> <minutes>",
	Short: "Estimate steps for an activity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := parseMinutes(args[1])
		if err != nil {
			return err
		}

		steps := fitness.EstimateSteps(args[0], minutes)
		fmt.Fprintf(cmd.OutOrStdout(), "%s for %g min: %d steps (%.0f/min)\n",
			args[0], minutes, steps, fitness.StepsPerMinute(args[0]))
		return nil
	},
}

func parseMinutes(s string) (float64, error) {
	minutes, err := strconv.ParseFloat(s, 64)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("invalid minutes: %s", s)
	}
	return minutes, nil
}

func init() {
	estimateCaloriesCmd.Flags().Float64Var(&estimateWeight, "weight", 0, "body weight in kg (default: latest logged)")

	estimateCmd.AddCommand(estimateCaloriesCmd)
	estimateCmd.AddCommand(estimateStepsCmd)
	rootCmd.AddCommand(estimateCmd)
}
