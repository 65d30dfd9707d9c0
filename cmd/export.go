package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/storage"
)

// Export command flags.
var (
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"backup", "dump"},
	Short:   "Export all data as JSON",
	Long: `Write the full document (notes, tasks, drawings, reminders, and
settings) as indented JSON. The file can be imported again with
'notepal import'.

Examples:
  notepal export
  notepal export -o my-backup.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", storage.ExportFilename,
		"Output file ('-' for stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := ctx.Docs.Export(ctx.Repo.Store())
	if err != nil {
		return err
	}

	if exportFlagOutput == "-" {
		ctx.Formatter.Println(string(data))
		return nil
	}

	if err := os.WriteFile(exportFlagOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "exported",
			"file":   exportFlagOutput,
			"bytes":  len(data),
		})
	}

	ctx.CLIFormatter().Success("Data exported to " + exportFlagOutput)
	return nil
}
