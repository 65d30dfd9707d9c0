package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/daemon"
	"github.com/notepal/notepal/internal/errors"
)

// Daemon command flags.
var (
	daemonFlagForeground bool
	daemonFlagServe      bool
)

// daemonCmd manages the background reminder daemon.
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the background reminder daemon",
	Long: `Run the daemon that fires reminders, sweeps for newly due ones
every minute, autosaves, and periodically syncs notes.

Examples:
  notepal daemon start
  notepal daemon start --foreground --serve
  notepal daemon status
  notepal daemon stop`,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the daemon",
	RunE:  runDaemonStart,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the daemon",
	RunE:  runDaemonStop,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	RunE:  runDaemonStatus,
}

func init() {
	daemonStartCmd.Flags().BoolVar(&daemonFlagForeground, "foreground", false,
		"Run in the foreground instead of detaching")
	daemonStartCmd.Flags().BoolVar(&daemonFlagServe, "serve", false,
		"Also serve the cached app shell over HTTP")

	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStopCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
	rootCmd.AddCommand(daemonCmd)
}

// daemonRunning reports whether a daemon process currently holds the
// PID file. Used by commands that want to hint the user.
func daemonRunning() bool {
	return daemon.NewPIDFile().IsRunning()
}

func runDaemonStart(cmd *cobra.Command, args []string) error {
	d := daemon.NewDaemon(ctx.DB, ctx.Repo)
	d.SetDebug(flagDebug)
	d.SetServeShell(daemonFlagServe)

	if daemonFlagForeground {
		return d.Start(cmd.Context())
	}

	// Release the database so the spawned daemon can take the lock.
	if err := ctx.Close(); err != nil {
		return err
	}

	pid, err := d.StartBackground()
	if err != nil {
		if err == daemon.ErrAlreadyRunning {
			return errors.NewUserError(
				"The daemon is already running.",
				"Check it with 'notepal daemon status'.")
		}
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "started",
			"pid":    pid,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Daemon started (PID %d)", pid))
	cli.Muted("  Logs: " + daemon.GetLogPath())
	return nil
}

func runDaemonStop(cmd *cobra.Command, args []string) error {
	d := daemon.NewDaemon(ctx.DB, ctx.Repo)

	if err := d.Stop(); err != nil {
		if err == daemon.ErrNotRunning {
			return errors.NewUserError(
				"The daemon is not running.",
				"Start it with 'notepal daemon start'.")
		}
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{"status": "stopped"})
	}

	ctx.CLIFormatter().Success("Daemon stopped")
	return nil
}

func runDaemonStatus(cmd *cobra.Command, args []string) error {
	d := daemon.NewDaemon(ctx.DB, ctx.Repo)
	status := d.GetStatus()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(status)
	}

	cli := ctx.CLIFormatter()
	if !status.Running {
		cli.Muted("Daemon is not running.")
		cli.Muted("  Start it with 'notepal daemon start'.")
		return nil
	}

	cli.Success(fmt.Sprintf("Daemon is running (PID %d)", status.PID))
	if status.Uptime != "" {
		cli.Muted("  Uptime: " + status.Uptime)
	}
	cli.Muted("  Logs:   " + daemon.GetLogPath())
	return nil
}
