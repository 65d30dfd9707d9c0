package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/errors"
	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/validate"
)

// settingsCmd represents the settings command.
var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config", "set"},
	Short:   "Show and change settings",
	Long: `Show the current settings or change one. Unknown fields in the
stored settings are preserved.

Examples:
  notepal settings
  notepal settings theme dark
  notepal settings font "JetBrains Mono"
  notepal settings autosave 60
  notepal settings shortcut newNote "Ctrl+Alt+N"
  notepal settings reset`,
	RunE: runSettingsShow,
}

// settingsThemeCmd changes the theme.
var settingsThemeCmd = &cobra.Command{
	Use:   "theme NAME",
	Short: "Change the theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTheme,
}

// settingsFontCmd changes the default font.
var settingsFontCmd = &cobra.Command{
	Use:   "font NAME",
	Short: "Change the default font",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsFont,
}

// settingsAutosaveCmd changes the autosave interval.
var settingsAutosaveCmd = &cobra.Command{
	Use:   "autosave SECONDS",
	Short: "Change the autosave interval in seconds",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsAutosave,
}

// settingsShortcutCmd rebinds a keyboard shortcut.
var settingsShortcutCmd = &cobra.Command{
	Use:   "shortcut ACTION COMBO",
	Short: "Rebind a keyboard shortcut",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsShortcut,
}

// settingsThemesCmd lists the available themes.
var settingsThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	RunE:  runSettingsThemes,
}

// settingsResetCmd restores the default settings.
var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsThemesCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsFontCmd)
	settingsCmd.AddCommand(settingsAutosaveCmd)
	settingsCmd.AddCommand(settingsShortcutCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	s := ctx.Repo.Settings()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(s)
	}

	ctx.CLIFormatter().PrintSettings(s)
	return nil
}

func runSettingsThemes(cmd *cobra.Command, args []string) error {
	s := ctx.Repo.Settings()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"themes":  s.AvailableThemes,
			"current": s.Theme,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Available themes")
	for _, name := range s.AvailableThemes {
		if name == s.Theme {
			cli.Success(name + " (current)")
			continue
		}
		cli.Println("  " + name)
	}
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	s := ctx.Repo.Settings()
	if err := validate.Theme(args[0], s); err != nil {
		return errors.Wrap(errors.ErrInvalidTheme, err.Error())
	}

	if err := ctx.Repo.UpdateSettings(model.Settings{Theme: args[0]}); err != nil {
		return err
	}

	ctx.CLIFormatter().Success("Theme set to " + args[0])
	return nil
}

func runSettingsFont(cmd *cobra.Command, args []string) error {
	if err := validate.NonEmpty("font", args[0]); err != nil {
		return err
	}

	if err := ctx.Repo.UpdateSettings(model.Settings{DefaultFont: args[0]}); err != nil {
		return err
	}

	ctx.CLIFormatter().Success("Default font set to " + args[0])
	return nil
}

func runSettingsAutosave(cmd *cobra.Command, args []string) error {
	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.NewUserError("Autosave interval must be a number",
			"Try: notepal settings autosave 30")
	}
	if err := validate.InRange("autosave", seconds, 5, 3600); err != nil {
		return err
	}

	if err := ctx.Repo.UpdateSettings(model.Settings{AutoSaveInterval: seconds}); err != nil {
		return err
	}

	ctx.CLIFormatter().Success("Autosave interval set to " + args[0] + "s")
	return nil
}

func runSettingsShortcut(cmd *cobra.Command, args []string) error {
	action, combo := args[0], args[1]
	if err := validate.Shortcut(combo); err != nil {
		return err
	}

	s := ctx.Repo.Settings()
	shortcuts := make(map[string]string, len(s.Shortcuts)+1)
	for k, v := range s.Shortcuts {
		shortcuts[k] = v
	}
	shortcuts[action] = combo

	if err := ctx.Repo.UpdateSettings(model.Settings{Shortcuts: shortcuts}); err != nil {
		return err
	}

	ctx.CLIFormatter().Success("Shortcut " + action + " set to " + combo)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if err := ctx.Repo.UpdateSettings(model.DefaultSettings()); err != nil {
		return err
	}

	ctx.CLIFormatter().Success("Settings restored to defaults")
	return nil
}
