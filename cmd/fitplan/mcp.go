// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server exposing the planning engine and activity log.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitplan/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "fitplan": {
        "command": "fitplan",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  compute_targets       Compute targets, distribution, and schedule from biometrics
  rescale_distribution  Rescale a plan's distribution to a new weekly total
  edit_distribution     Set one workout type's sessions, minutes, or calories
  generate_schedule     Rebuild a plan's weekly schedule
  estimate_calories     MET-based calorie estimate
  estimate_steps        Step estimate for an activity
  recommend_workouts    Suggest training or recovery workouts
  create_plan           Compute and save a plan
  get_plan              Show a saved plan
  log_activity          Log a finished activity
  start_activity        Start timing a live activity
  stop_activity         Stop a live activity
  list_activities       List recent activities
  get_progress          Weekly or daily progress against targets
  log_weight            Record body weight

AVAILABLE RESOURCES:

  fitplan://plan      Current plan
  fitplan://today     Today's session, progress, and suggestions
  fitplan://catalog   Workout templates and MET values`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, logger, mcp.Options{
			DefaultWeightKg: cfg.GetDefaultWeightKg(),
			RecommendLimit:  cfg.GetRecommendLimit(),
		})
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
