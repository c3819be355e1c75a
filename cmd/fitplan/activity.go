// ABOUTME: CLI commands for logging, timing, listing, and deleting activities.
// ABOUTME: Calories and steps are estimated from MET values and step cadence on save.
package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/harperreed/fitplan/internal/models"
	"github.com/harperreed/fitplan/internal/storage"
	"github.com/spf13/cobra"
)

var (
	logDuration float64
	logAt       string
	logNotes    string
	logWeight   float64

	activitiesType  string
	activitiesLimit int
	activitiesSince string
)

var logCmd = &cobra.Command{
	Use:     "log <type>",
	Aliases: []string{"add", "a"},
	Short:   "Log a completed activity",
	Long: `Log a completed activity. Calories and steps are estimated from the
activity type, duration, and your latest logged weight.

Examples:
  fitplan log running --duration 30
  fitplan log strength --duration 45 --at "2025-06-10 07:00"
  fitplan log yoga -d 40 --notes "hips"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if logDuration <= 0 {
			return fmt.Errorf("--duration must be positive")
		}

		weight := logWeight
		if weight <= 0 {
			weight = currentWeight()
		}

		start := time.Now().Add(-time.Duration(logDuration * float64(time.Minute)))
		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			start = t
		}

		a := models.NewActivity(args[0]).WithWeight(weight).WithStartedAt(start).WithDuration(logDuration)
		if logNotes != "" {
			a.WithNotes(logNotes)
		}
		a.Estimate(time.Now())

		if err := repo.CreateActivity(a); err != nil {
			return fmt.Errorf("failed to log activity: %w", err)
		}

		out := cmd.OutOrStdout()
		success(out, "Logged %s", a.Type)
		printActivity(out, a, time.Now())
		return nil
	},
}

var startCmd = &cobra.Command{
	Use:   "start <type>",
	Short: "Start timing a live activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := models.NewActivity(args[0]).WithWeight(currentWeight())
		if logNotes != "" {
			a.WithNotes(logNotes)
		}
		if err := repo.CreateActivity(a); err != nil {
			return fmt.Errorf("failed to start activity: %w", err)
		}

		success(cmd.OutOrStdout(), "Started %s %s", a.Type, shortID(a.ID))
		fmt.Fprintf(cmd.OutOrStdout(), "  Stop it with: fitplan stop %s\n", a.ID.String()[:8])
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop [id]",
	Short: "Stop a live activity (the most recent running one by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var a *models.Activity
		var err error
		if len(args) == 1 {
			a, err = repo.GetActivity(args[0])
		} else {
			a, err = latestRunning()
		}
		if err != nil {
			return err
		}
		if !a.IsRunning() {
			return fmt.Errorf("activity %s is not running", a.ID.String()[:8])
		}

		now := time.Now()
		a.Stop(now)
		if err := repo.UpdateActivity(a); err != nil {
			return fmt.Errorf("failed to stop activity: %w", err)
		}

		out := cmd.OutOrStdout()
		success(out, "Stopped %s", a.Type)
		printActivity(out, a, now)
		return nil
	},
}

var activitiesCmd = &cobra.Command{
	Use:     "activities",
	Aliases: []string{"list", "ls"},
	Short:   "List recent activities",
	Long: `List recent activities, most recent first.

OUTPUT FORMAT:

  ID  STARTED  TYPE  MINUTES  KCAL  STEPS  (NOTES)

  Running activities show their live elapsed time and estimates.

EXAMPLES:

  fitplan activities                  # Last 20 activities
  fitplan activities --type running   # Only running
  fitplan activities --since 2025-06-01 -n 50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var activityType *string
		if activitiesType != "" {
			activityType = &activitiesType
		}
		var since *time.Time
		if activitiesSince != "" {
			t, err := parseTime(activitiesSince)
			if err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", activitiesSince)
			}
			since = &t
		}

		activities, err := repo.ListActivities(activityType, since, activitiesLimit)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(activities) == 0 {
			fmt.Fprintln(out, "No activities found.")
			return nil
		}

		now := time.Now()
		for _, a := range activities {
			printActivity(out, a, now)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an activity or weight entry",
	Long: `Delete an activity or a weight entry by its ID or ID prefix.

The ID prefix is shown in the first column of 'fitplan activities' and
'fitplan weight' output. If the prefix matches multiple records, an error
is returned.

CAUTION:

  This permanently deletes the record. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		a, err := repo.GetActivity(args[0])
		if err == nil {
			if err := repo.DeleteActivity(a.ID.String()); err != nil {
				return fmt.Errorf("failed to delete activity: %w", err)
			}
			removed(out, "Deleted %s", a.Type)
			printActivity(out, a, time.Now())
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		if err := repo.DeleteBodyMetric(args[0]); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no activity or weight entry matches %s", args[0])
			}
			return fmt.Errorf("failed to delete weight entry: %w", err)
		}
		removed(out, "Deleted weight entry %s", args[0])
		return nil
	},
}

func latestRunning() (*models.Activity, error) {
	activities, err := repo.ListActivities(nil, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	for _, a := range activities {
		if a.IsRunning() {
			return a, nil
		}
	}
	return nil, errors.New("no running activity")
}

func printActivity(w io.Writer, a *models.Activity, now time.Time) {
	e := a.Entry()
	notes := ""
	if a.Notes != nil && *a.Notes != "" {
		notes = faint.Sprintf(" (%s)", truncate(*a.Notes, 30))
	}
	status := ""
	if a.IsRunning() {
		status = " running"
	}
	fmt.Fprintf(w, "%s %s %s %5.1f min %4d kcal %5d steps%s%s\n",
		shortID(a.ID),
		faint.Sprint(a.StartedAt.Format("2006-01-02 15:04")),
		padRight(a.Type, 12),
		e.ElapsedMinutes(now),
		e.Calories(now),
		e.Steps(now),
		status,
		notes)
}

func init() {
	logCmd.Flags().Float64VarP(&logDuration, "duration", "d", 0, "duration in minutes")
	logCmd.Flags().StringVar(&logAt, "at", "", "start time (YYYY-MM-DD HH:MM)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "notes for the activity")
	logCmd.Flags().Float64Var(&logWeight, "weight", 0, "body weight in kg for the estimate (default: latest logged)")

	startCmd.Flags().StringVar(&logNotes, "notes", "", "notes for the activity")

	activitiesCmd.Flags().StringVarP(&activitiesType, "type", "t", "", "filter by activity type")
	activitiesCmd.Flags().IntVarP(&activitiesLimit, "limit", "n", 20, "max number of results")
	activitiesCmd.Flags().StringVar(&activitiesSince, "since", "", "only activities since date (YYYY-MM-DD)")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(activitiesCmd)
	rootCmd.AddCommand(deleteCmd)
}
