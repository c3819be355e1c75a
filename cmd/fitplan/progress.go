// ABOUTME: CLI command for progress against the plan's targets.
// ABOUTME: Shows weekly sessions, minutes, and calories, or the daily move and exercise rings.
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/models"
	"github.com/spf13/cobra"
)

var (
	progressDaily bool
	progressPlan  string
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"prog", "status"},
	Short:   "Show progress toward this week's targets",
	Long: `Show progress toward the plan's targets.

Weekly progress counts completed sessions, minutes, and calories since
Monday. With --day, progress is today's calories against the daily move
target and minutes against the daily exercise target.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(progressPlan)
		if err != nil {
			return err
		}

		now := time.Now()
		since := fitness.WeekStart(now)
		activities, err := repo.ListActivities(nil, &since, 0)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}
		entries := models.Entries(activities)

		out := cmd.OutOrStdout()
		if progressDaily {
			pr := fitness.DailyProgress(p.Working, entries, now)
			fmt.Fprintf(out, "Today (%s)\n", now.Format("Mon Jan 2"))
			printBar(out, "Move", float64(pr.Calories), pr.CalorieTarget, pr.CaloriePercent, "kcal")
			printBar(out, "Exercise", pr.Minutes, pr.MinuteTarget, pr.MinutePercent, "min")
			fmt.Fprintf(out, "  %-9s %d\n", "Steps", pr.Steps)
			return nil
		}

		pr := fitness.WeeklyProgress(p.Working, entries, now)
		fmt.Fprintf(out, "Week of %s\n", pr.From.Format("Mon Jan 2"))
		printBar(out, "Sessions", float64(pr.Sessions), pr.SessionTarget, pr.SessionPercent, "")
		printBar(out, "Minutes", pr.Minutes, pr.MinuteTarget, pr.MinutePercent, "min")
		printBar(out, "Calories", float64(pr.Calories), pr.CalorieTarget, pr.CaloriePercent, "kcal")
		fmt.Fprintf(out, "  %-9s %d\n", "Steps", pr.Steps)
		return nil
	},
}

const barWidth = 20

func printBar(w io.Writer, label string, value float64, target int, pct float64, unit string) {
	filled := min(int(pct/100*barWidth), barWidth)
	filled = max(filled, 0)
	bar := strings.Repeat("█", filled) + faint.Sprint(strings.Repeat("░", barWidth-filled))
	fmt.Fprintf(w, "  %-9s %s %.0f/%d %s (%.0f%%)\n", label, bar, value, target, unit, pct)
}

func init() {
	progressCmd.Flags().BoolVar(&progressDaily, "day", false, "show today's move and exercise progress")
	progressCmd.Flags().StringVar(&progressPlan, "plan", "", "plan ID (default: current plan)")
	rootCmd.AddCommand(progressCmd)
}
