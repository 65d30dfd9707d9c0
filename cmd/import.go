package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Import command flags.
var (
	importFlagForce bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"restore"},
	Short:   "Import data from a JSON export",
	Long: `Replace the whole document with the contents of a JSON export.
The file must contain at least "notes" and "tasks" arrays; anything
else is rejected before the current data is touched.

This overwrites all current data. You will be asked to confirm
unless --force is given.

Examples:
  notepal import notepal-data.json
  notepal import backup.json --force`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlagForce, "force", false, "Skip confirmation")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	cli := ctx.CLIFormatter()

	if !importFlagForce {
		cli.Warning("Importing replaces ALL current notes, tasks, drawings, and reminders.")
		cli.Print("Continue? [y/N] ")

		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			cli.Muted("Import cancelled.")
			return nil
		}
	}

	store, err := ctx.Docs.Import(data)
	if err != nil {
		return err
	}

	// Pick up the imported document in the live repository.
	if err := ctx.Repo.Reload(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status":    "imported",
			"notes":     len(store.Notes),
			"tasks":     len(store.Tasks),
			"reminders": len(store.Reminders),
		})
	}

	cli.Success(fmt.Sprintf("Imported %d notes, %d tasks, %d reminders from %s",
		len(store.Notes), len(store.Tasks), len(store.Reminders), filename))
	return nil
}
