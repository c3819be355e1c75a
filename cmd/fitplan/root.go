// ABOUTME: Root Cobra command for the fitplan CLI.
// ABOUTME: Loads config, builds the logger, and manages the storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fitplan/internal/config"
	"github.com/harperreed/fitplan/internal/logging"
	"github.com/harperreed/fitplan/internal/models"
	"github.com/harperreed/fitplan/internal/storage"
	"github.com/spf13/cobra"
)

// skipRepo marks commands that never touch the configured store.
const skipRepo = "skip-repo"

var (
	repo    storage.Repository
	cfg     *config.Config
	logger  = logging.Discard()
	dbPath  string
	verbose bool

	faint = color.New(color.Faint)
)

var rootCmd = &cobra.Command{
	Use:   "fitplan",
	Short: "Personal fitness targets, weekly schedule, and activity tracker",
	Long: `Fitplan turns a few biometrics into weekly fitness targets and a schedule,
then tracks your activities against them.

WHAT IT COMPUTES:

  Targets        weekly calorie burn, workout minutes and sessions,
                 daily move (kcal) and exercise (min) goals
  Distribution   how the weekly minutes and sessions split across your
                 preferred workout types
  Schedule       which day each session lands on (Monday first)

QUICK START:

  $ fitplan plan create --weight 82 --height 180 --birthdate 1990-04-12 \
      --gender male --level moderately_active --goal build_muscle
  $ fitplan schedule                    # See the week
  $ fitplan log running --duration 30   # Log a workout
  $ fitplan progress                    # This week vs. targets
  $ fitplan recommend                   # What to do today

EDITING:

  $ fitplan plan rescale 200                   # 200 weekly minutes
  $ fitplan plan rescale 5 --field sessions    # 5 weekly sessions
  $ fitplan schedule rest wednesday            # Make Wednesday a rest day

MCP INTEGRATION:

  Run 'fitplan mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "fitplan": { "command": "fitplan", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  SQLite at ~/.local/share/fitplan/fitplan.db by default. Set "backend": "charm"
  in ~/.config/fitplan/config.json (or FITPLAN_BACKEND=charm) to sync through
  Charm Cloud instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.GetLogLevel()
		if verbose {
			level = slog.LevelDebug
		}
		logger = logging.NewLogger(cmd.ErrOrStderr(), level)

		if cmd.Name() == "help" || cmd.Annotations[skipRepo] == "true" {
			return nil
		}

		if dbPath != "" {
			repo, err = storage.Open(config.ExpandPath(dbPath))
		} else {
			repo, err = cfg.OpenStorage()
		}
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		logger.Debug("storage opened", "backend", cfg.GetBackend(), "command", cmd.CommandPath())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo == nil {
			return nil
		}
		err := repo.Close()
		repo = nil
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides the configured backend)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}

func success(w io.Writer, format string, a ...any) {
	color.New(color.FgGreen).Fprintf(w, "✓ "+format+"\n", a...)
}

func warn(w io.Writer, format string, a ...any) {
	color.New(color.FgYellow).Fprintf(w, "⚠ "+format+"\n", a...)
}

func removed(w io.Writer, format string, a ...any) {
	color.New(color.FgYellow).Fprintf(w, "✗ "+format+"\n", a...)
}

func shortID(id fmt.Stringer) string {
	return faint.Sprint(id.String()[:8])
}

// loadPlan returns the plan with the given ID prefix, or the current plan.
func loadPlan(id string) (*models.Plan, error) {
	if id != "" {
		return repo.GetPlan(id)
	}
	return repo.GetCurrentPlan()
}

// currentWeight prefers the latest logged weight, then the plan snapshot, then the configured default.
func currentWeight() float64 {
	if m, err := repo.GetLatestBodyMetric(); err == nil {
		return m.WeightKg
	}
	if p, err := repo.GetCurrentPlan(); err == nil && p.Biometrics.WeightKg > 0 {
		return p.Biometrics.WeightKg
	}
	return cfg.GetDefaultWeightKg()
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
