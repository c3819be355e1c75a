// ABOUTME: CLI commands for Charm-based sync of the charm backend.
// ABOUTME: Supports link, unlink, status, now, repair, reset, and wipe operations.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/charm/kv"
	"github.com/harperreed/fitplan/internal/charm"
	"github.com/spf13/cobra"
)

const charmDBName = "fitplan"

var syncRepairForce bool

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync fitplan data across devices",
	Long: `Sync fitplan data across devices using Charm Cloud.

Sync applies to the charm backend. Select it with backend "charm" in
~/.config/fitplan/config.json or FITPLAN_BACKEND=charm, or copy existing
data over with 'fitplan migrate --to charm --switch'.

Your data is E2E encrypted with your SSH key before upload.

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and record counts
  now         Sync immediately
  repair      Repair database corruption (checkpoints WAL, removes SHM, vacuums)
  reset       Reset local data and restore from cloud (destructive)
  wipe        Delete cloud and local data (destructive)

Data syncs automatically after each write on the charm backend.`,
	Annotations: map[string]string{skipRepo: "true"},
}

var syncLinkCmd = &cobra.Command{
	Use:         "link",
	Short:       "Link this device to Charm",
	Annotations: map[string]string{skipRepo: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("link"); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		out := cmd.OutOrStdout()
		success(out, "Device linked to Charm")

		c, err := charm.InitClient()
		if err != nil {
			warn(out, "Initial sync skipped: %v", err)
			return nil
		}
		defer c.Close()
		if err := c.Sync(); err != nil {
			warn(out, "Initial sync failed: %v", err)
		} else {
			success(out, "Initial sync complete")
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:         "unlink",
	Short:       "Disconnect from Charm",
	Annotations: map[string]string{skipRepo: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("unlink"); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}
		success(cmd.OutOrStdout(), "Device unlinked from Charm")
		fmt.Fprintln(cmd.OutOrStdout(), "Your local fitplan data is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:         "status",
	Short:       "Show sync status",
	Annotations: map[string]string{skipRepo: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Configured backend:", cfg.GetBackend())

		c, err := charm.InitClient()
		if err != nil {
			warn(out, "Charm KV unavailable: %v", err)
			return nil
		}
		defer c.Close()

		id, err := c.ID()
		if err != nil {
			warn(out, "Not linked to Charm")
			fmt.Fprintln(out, "\nRun 'fitplan sync link' to connect to Charm.")
			return nil
		}

		stats, err := c.Stats()
		if err != nil {
			return fmt.Errorf("failed to count records: %w", err)
		}

		fmt.Fprintln(out, "Charm ID:", id)
		if c.IsReadOnly() {
			warn(out, "Opened read-only (another process holds the lock)")
		}
		success(out, "Connected to Charm")
		printCounts(out, stats.Plans, stats.Activities, stats.BodyMetrics)
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:         "now",
	Short:       "Sync with Charm Cloud immediately",
	Annotations: map[string]string{skipRepo: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("open charm kv: %w", err)
		}
		defer c.Close()

		if err := c.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		success(cmd.OutOrStdout(), "Synced with Charm Cloud")
		return nil
	},
}

var syncRepairCmd = &cobra.Command{
	Use:         "repair",
	Short:       "Repair database corruption",
	Annotations: map[string]string{skipRepo: "true"},
	Long: `Repair database corruption by checkpointing WAL, removing SHM files, checking integrity, and vacuuming.

Use this when you encounter database lock errors or corruption.
Run with --force to attempt recovery even if integrity checks fail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Repairing fitplan database...")
		result, err := kv.Repair(charmDBName, syncRepairForce)

		if result.WalCheckpointed {
			success(out, "  WAL checkpointed")
		}
		if result.ShmRemoved {
			success(out, "  SHM file removed")
		}
		if result.IntegrityOK {
			success(out, "  Integrity check passed")
		} else {
			removed(out, "  Integrity check failed")
		}
		if result.Vacuumed {
			success(out, "  Database vacuumed")
		}

		if err != nil {
			if !syncRepairForce {
				warn(out, "Run with --force to attempt recovery.")
			}
			return fmt.Errorf("repair failed: %w", err)
		}

		success(out, "Repair complete")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:         "reset",
	Short:       "Reset local data and restore from cloud",
	Annotations: map[string]string{skipRepo: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "This will DELETE all local fitplan data and restore from cloud.")
		if !confirm(cmd.InOrStdin(), out, "Continue? [y/N]: ", "y", "yes") {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		if err := kv.Reset(charmDBName); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		success(out, "Local data reset and restored from cloud")
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:         "wipe",
	Short:       "Delete all cloud and local data",
	Annotations: map[string]string{skipRepo: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "This will PERMANENTLY DELETE all cloud backups and local fitplan data.")
		if !confirm(cmd.InOrStdin(), out, "Type 'wipe' to confirm: ", "wipe") {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		result, err := kv.Wipe(charmDBName)
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		success(out, "Data wiped successfully")
		fmt.Fprintf(out, "  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Fprintf(out, "  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	},
}

func runCharm(arg string) error {
	c := exec.Command("charm", arg)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// confirm reads one line from r and reports whether it matches an accepted answer.
func confirm(r io.Reader, w io.Writer, prompt string, accepted ...string) bool {
	fmt.Fprint(w, prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	for _, a := range accepted {
		if answer == a {
			return true
		}
	}
	return false
}

func init() {
	syncRepairCmd.Flags().BoolVar(&syncRepairForce, "force", false, "attempt recovery even if integrity checks fail")

	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncRepairCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)

	rootCmd.AddCommand(syncCmd)
}
