// ABOUTME: CLI command for logging and listing body weight.
// ABOUTME: The latest weight feeds calorie estimates for new activities.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/fitplan/internal/models"
	"github.com/spf13/cobra"
)

var (
	weightBodyFat float64
	weightAt      string
	weightNotes   string
	weightLimit   int
)

var weightCmd = &cobra.Command{
	Use:     "weight [kg]",
	Aliases: []string{"wt"},
	Short:   "Log body weight, or list recent entries",
	Long: `Log a body weight measurement in kg. Without an argument, list recent entries.

Examples:
  fitplan weight 82.5
  fitplan weight 82.1 --body-fat 18.5 --at "2025-06-14 07:00"
  fitplan weight -n 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			metrics, err := repo.ListBodyMetrics(weightLimit)
			if err != nil {
				return fmt.Errorf("failed to list weights: %w", err)
			}
			if len(metrics) == 0 {
				fmt.Fprintln(out, "No weight entries found.")
				return nil
			}
			for _, m := range metrics {
				fat := ""
				if m.BodyFatPercent != nil {
					fat = fmt.Sprintf("  %.1f%% fat", *m.BodyFatPercent)
				}
				fmt.Fprintf(out, "%s %s %.1f kg%s\n",
					shortID(m.ID),
					faint.Sprint(m.RecordedAt.Format("2006-01-02 15:04")),
					m.WeightKg, fat)
			}
			return nil
		}

		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil || kg <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		m := models.NewBodyMetric(kg)
		if weightBodyFat > 0 {
			m.WithBodyFat(weightBodyFat)
		}
		if weightAt != "" {
			t, err := parseTime(weightAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", weightAt)
			}
			m.WithRecordedAt(t)
		}
		if weightNotes != "" {
			m.WithNotes(weightNotes)
		}

		if err := repo.CreateBodyMetric(m); err != nil {
			return fmt.Errorf("failed to log weight: %w", err)
		}

		success(out, "Logged weight")
		fmt.Fprintf(out, "  %s %.1f kg\n", shortID(m.ID), m.WeightKg)
		return nil
	},
}

func init() {
	weightCmd.Flags().Float64Var(&weightBodyFat, "body-fat", 0, "body fat percentage")
	weightCmd.Flags().StringVar(&weightAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	weightCmd.Flags().StringVar(&weightNotes, "notes", "", "notes for the entry")
	weightCmd.Flags().IntVarP(&weightLimit, "limit", "n", 10, "entries to list")
	rootCmd.AddCommand(weightCmd)
}
