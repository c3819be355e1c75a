// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies plans, activities, and weights from the active backend into another one.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/fitplan/internal/config"
	"github.com/harperreed/fitplan/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo           string
	migrateDryRun       bool
	migrateSwitchConfig bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data to another storage backend",
	Long: `Copy all plans, activities, and weights from the active backend into
another backend.

BACKENDS:

  sqlite   Local database at <data_dir>/fitplan.db (default)
  charm    Charm KV, encrypted and synced through Charm Cloud

IMPORTANT:

  - The destination must be empty; duplicates cause errors
  - Run with --dry-run first to see what would be migrated
  - Use --switch to make the destination the configured backend

USAGE:

  fitplan migrate --to charm --dry-run
  fitplan migrate --to charm --switch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		target := &config.Config{
			Backend: migrateTo,
			DataDir: cfg.DataDir,
		}
		switch target.GetBackend() {
		case config.BackendSQLite, config.BackendCharm:
		default:
			return fmt.Errorf("unknown backend: %s (use sqlite or charm)", migrateTo)
		}
		if dbPath == "" && target.GetBackend() == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", target.GetBackend())
		}

		src, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("read source data: %w", err)
		}

		if migrateDryRun {
			warn(out, "Dry run mode - no changes will be made")
			fmt.Fprintf(out, "Would migrate to %s:\n", target.GetBackend())
			printCounts(out, len(src.Plans), len(src.Activities), len(src.BodyMetrics))
			return nil
		}

		dst, err := target.OpenStorage()
		if err != nil {
			return fmt.Errorf("open destination: %w", err)
		}
		defer dst.Close()

		existing, err := dst.GetAllData()
		if err != nil {
			return fmt.Errorf("read destination data: %w", err)
		}
		if n := len(existing.Plans) + len(existing.Activities) + len(existing.BodyMetrics); n > 0 {
			return fmt.Errorf("destination %s backend already has %d records", target.GetBackend(), n)
		}

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		success(out, "Migrated to %s", target.GetBackend())
		printCounts(out, summary.Plans, summary.Activities, summary.BodyMetrics)
		logger.Info("migration complete", "to", target.GetBackend(),
			"plans", summary.Plans, "activities", summary.Activities, "body_metrics", summary.BodyMetrics)

		if migrateSwitchConfig {
			cfg.Backend = target.GetBackend()
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			success(out, "Backend set to %s in %s", cfg.Backend, config.GetConfigPath())
		}
		return nil
	},
}

func printCounts(w io.Writer, plans, activities, metrics int) {
	fmt.Fprintf(w, "  Plans:      %d\n", plans)
	fmt.Fprintf(w, "  Activities: %d\n", activities)
	fmt.Fprintf(w, "  Weights:    %d\n", metrics)
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend (sqlite or charm)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	migrateCmd.Flags().BoolVar(&migrateSwitchConfig, "switch", false, "save the destination as the configured backend")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
