package cmd

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/output"
	"github.com/notepal/notepal/internal/validate"
)

// Draw command flags.
var (
	drawAddFlagImage string
	drawExportFlagTo string
)

// drawCmd represents the draw command.
var drawCmd = &cobra.Command{
	Use:     "draw",
	Aliases: []string{"drawing", "drawings"},
	Short:   "Manage drawings",
	Long: `Store and list drawings. A drawing is a note whose content is
an image; it shows up in the drawings view but not in the text
note list.

Examples:
  notepal draw add "Whiteboard sketch" --image ./sketch.png
  notepal draw list
  notepal draw export 4f2c --to sketch.png
  notepal draw delete 4f2c`,
	RunE: runDrawList,
}

// drawAddCmd stores a new drawing.
var drawAddCmd = &cobra.Command{
	Use:     "add TITLE",
	Aliases: []string{"create", "new"},
	Short:   "Store a drawing from an image file",
	Args:    cobra.ExactArgs(1),
	RunE:    runDrawAdd,
}

// drawListCmd lists drawings.
var drawListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drawings",
	RunE:  runDrawList,
}

// drawExportCmd writes a drawing's image back to a file.
var drawExportCmd = &cobra.Command{
	Use:   "export ID",
	Short: "Export a drawing's image to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrawExport,
}

// drawDeleteCmd deletes a drawing.
var drawDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a drawing",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteDelete,
}

func init() {
	drawAddCmd.Flags().StringVarP(&drawAddFlagImage, "image", "i", "", "Image file to store (required)")
	drawAddCmd.MarkFlagRequired("image")

	drawExportCmd.Flags().StringVar(&drawExportFlagTo, "to", "", "Output file (required)")
	drawExportCmd.MarkFlagRequired("to")

	drawCmd.AddCommand(drawAddCmd)
	drawCmd.AddCommand(drawListCmd)
	drawCmd.AddCommand(drawExportCmd)
	drawCmd.AddCommand(drawDeleteCmd)
	rootCmd.AddCommand(drawCmd)
}

func runDrawAdd(cmd *cobra.Command, args []string) error {
	title := validate.SanitizeTitle(args[0])
	if err := validate.Title(title); err != nil {
		return err
	}

	data, err := os.ReadFile(drawAddFlagImage)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

	drawing := model.NewDrawing(title, dataURI)
	if err := ctx.Repo.AddDrawing(drawing); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNoteOutput(drawing))
	}

	cli := ctx.CLIFormatter()
	cli.Success("Drawing stored: " + drawing.Title)
	cli.Muted("  ID: " + drawing.ID)
	return nil
}

func runDrawList(cmd *cobra.Command, args []string) error {
	drawings := ctx.Repo.Drawings()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNotesResponse(drawings))
	}

	cli := ctx.CLIFormatter()
	if len(drawings) == 0 {
		cli.Muted("No drawings yet. Use 'notepal draw add \"Title\" --image file.png'.")
		return nil
	}

	for _, d := range drawings {
		cli.PrintNote(d)
	}
	return nil
}

func runDrawExport(cmd *cobra.Command, args []string) error {
	drawing, err := findNote(args[0])
	if err != nil {
		return err
	}
	if !drawing.IsDrawing() {
		return fmt.Errorf("note %s is not a drawing", drawing.ID)
	}

	const prefix = "data:image/png;base64,"
	payload := drawing.Content
	if len(payload) > len(prefix) && payload[:len(prefix)] == prefix {
		payload = payload[len(prefix):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("drawing content is not valid image data: %w", err)
	}

	if err := os.WriteFile(drawExportFlagTo, data, 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	ctx.CLIFormatter().Success("Drawing exported to " + drawExportFlagTo)
	return nil
}
