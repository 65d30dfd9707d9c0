package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/tui"
)

// Dashboard command flags.
var (
	dashboardFlagRefresh int
	dashboardFlagMax     int
)

// dashboardCmd launches the interactive terminal dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open a live terminal dashboard showing recent notes, open tasks,
and upcoming reminders.

Keys:
  r  refresh now
  n  toggle drawings
  t  toggle completed tasks
  q  quit`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().IntVar(&dashboardFlagRefresh, "refresh", 1,
		"Refresh interval in seconds")
	dashboardCmd.Flags().IntVar(&dashboardFlagMax, "max", 5,
		"Maximum items per section")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.DashboardConfig{
		Repo:            ctx.Repo,
		RefreshInterval: time.Duration(dashboardFlagRefresh) * time.Second,
		MaxPerSection:   dashboardFlagMax,
	})
}
