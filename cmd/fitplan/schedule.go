// ABOUTME: CLI commands for viewing and editing the weekly schedule.
// ABOUTME: Supports show, today, set, rest, time, toggle, and regenerate subcommands.
package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/models"
	"github.com/spf13/cobra"
)

var schedulePlanID string

var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"sched", "week"},
	Short:   "Show or edit the weekly schedule",
	Long: `Show or edit the current plan's weekly schedule (Monday first).

COMMANDS:

  (none)      Show the week
  today       Show today's slot
  set         Put a workout on a day
  rest        Make a day a rest day
  time        Change a day's time (HH:MM)
  toggle      Flip a day between rest and workout
  regenerate  Rebuild the week from the distribution (drops manual edits)

Days accept full names or three-letter abbreviations (mon, tue, ...).

Examples:
  fitplan schedule set friday yoga 40
  fitplan schedule time monday 06:30
  fitplan schedule toggle sun`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(schedulePlanID)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printSchedule(out, p.Schedule)
		fmt.Fprintf(out, "\n  %d workout days, %d min scheduled\n", p.Schedule.WorkoutDays(), p.Schedule.TotalMinutes())
		return nil
	},
}

var scheduleTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's scheduled session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(schedulePlanID)
		if err != nil {
			return err
		}
		item := p.Schedule.Today(time.Now())
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", item.DayOfWeek, item.TimeOfDay, describeItem(item))
		return nil
	},
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set <day> <type> [minutes]",
	Short: "Put a workout on a day",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes := 0
		if len(args) == 3 {
			m, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid minutes: %s", args[2])
			}
			minutes = m
		}
		return editSchedule(cmd, args[0], func(p *models.Plan, d fitness.Weekday) error {
			return p.Schedule.SetWorkout(d, args[1], minutes)
		})
	},
}

var scheduleRestCmd = &cobra.Command{
	Use:   "rest <day>",
	Short: "Make a day a rest day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSchedule(cmd, args[0], func(p *models.Plan, d fitness.Weekday) error {
			return p.Schedule.SetRest(d)
		})
	},
}

var scheduleTimeCmd = &cobra.Command{
	Use:   "time <day> <HH:MM>",
	Short: "Change a day's time of day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSchedule(cmd, args[0], func(p *models.Plan, d fitness.Weekday) error {
			return p.Schedule.SetTime(d, args[1])
		})
	},
}

var scheduleToggleCmd = &cobra.Command{
	Use:   "toggle <day>",
	Short: "Flip a day between rest and workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSchedule(cmd, args[0], func(p *models.Plan, d fitness.Weekday) error {
			return p.Schedule.ToggleRest(d, p.Working)
		})
	},
}

var scheduleRegenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Rebuild the week from the current distribution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(schedulePlanID)
		if err != nil {
			return err
		}
		p.RegenerateSchedule()
		if err := repo.SavePlan(p); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		out := cmd.OutOrStdout()
		success(out, "Regenerated schedule")
		printSchedule(out, p.Schedule)
		warnOverflow(out, p.Working)
		return nil
	},
}

func editSchedule(cmd *cobra.Command, day string, edit func(*models.Plan, fitness.Weekday) error) error {
	d, err := fitness.ParseWeekday(day)
	if err != nil {
		return err
	}
	p, err := loadPlan(schedulePlanID)
	if err != nil {
		return err
	}
	if err := edit(p, d); err != nil {
		return err
	}
	p.Touch()
	if err := repo.SavePlan(p); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	item := p.Schedule[d]
	success(cmd.OutOrStdout(), "%s %s  %s", item.DayOfWeek, item.TimeOfDay, describeItem(item))
	return nil
}

func printSchedule(w io.Writer, s fitness.Schedule) {
	for _, item := range s {
		fmt.Fprintf(w, "  %s %s  %s\n", padRight(item.DayOfWeek.String(), 10), item.TimeOfDay, describeItem(item))
	}
}

func describeItem(item fitness.ScheduleItem) string {
	if item.IsRestDay {
		return faint.Sprint("rest")
	}
	return fmt.Sprintf("%s (%d min)", item.WorkoutType, item.DurationMinutes)
}

func init() {
	scheduleCmd.PersistentFlags().StringVar(&schedulePlanID, "plan", "", "plan ID or prefix (default: current plan)")

	scheduleCmd.AddCommand(scheduleTodayCmd)
	scheduleCmd.AddCommand(scheduleSetCmd)
	scheduleCmd.AddCommand(scheduleRestCmd)
	scheduleCmd.AddCommand(scheduleTimeCmd)
	scheduleCmd.AddCommand(scheduleToggleCmd)
	scheduleCmd.AddCommand(scheduleRegenerateCmd)
	rootCmd.AddCommand(scheduleCmd)
}
