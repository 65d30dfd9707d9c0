package cmd

import (
	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/offline"
)

// syncCmd runs a one-off notes sync.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync notes once",
	Long: `Run a single notes sync. The daemon does this automatically every
five minutes; this command triggers one on demand.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	syncFn := offline.NewSyncFunc(ctx.Repo)
	if err := syncFn(cmd.Context()); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{"status": "synced"})
	}

	ctx.CLIFormatter().Success("Notes synced")
	return nil
}
