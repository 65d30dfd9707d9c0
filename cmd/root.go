// Package cmd provides the CLI commands for NotePal.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/errors"
	"github.com/notepal/notepal/internal/logging"
	"github.com/notepal/notepal/internal/output"
	"github.com/notepal/notepal/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "notepal",
	Short: "Notes, tasks, drawings, and reminders from your terminal",
	Long: `NotePal keeps your notes, tasks, drawings, and reminders in one
local store that works offline.

Examples:
  notepal note add "Meeting notes" --content "Discuss roadmap"
  notepal task add "Pay rent" --due "next friday" --priority high
  notepal remind "Stand-up" tomorrow 9am --repeat daily
  notepal search roadmap
  notepal daemon start`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands (but allow __complete for dynamic completions)
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		if flagDebug {
			logging.InitDebug()
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show an overview of the store
		return runOverview(cmd, args)
	},
}

// runOverview prints a summary of notes, tasks, and reminders.
func runOverview(cmd *cobra.Command, args []string) error {
	store := ctx.Repo.Store()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"notes":     len(store.Notes),
			"drawings":  len(store.Drawings()),
			"tasks":     len(store.Tasks),
			"reminders": len(ctx.Repo.PendingReminders()),
			"theme":     store.Settings.Theme,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("NotePal")
	cli.Printf("Notes:      %d (%d drawings)\n", len(store.Notes), len(store.Drawings()))
	cli.Printf("Tasks:      %d\n", len(store.Tasks))
	cli.Printf("Reminders:  %d scheduled\n", len(ctx.Repo.PendingReminders()))
	cli.Printf("Theme:      %s\n", store.Settings.Theme)
	cli.Muted("\nUse 'notepal note list', 'notepal task list', or 'notepal remind list'.")
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("notepal %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.Formatter.JSON(output.ErrorResponse{
			Status:  "error",
			Error:   err.Error(),
			Message: errors.GetSuggestion(err),
		})
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
	os.Exit(1)
}
