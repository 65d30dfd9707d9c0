package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/config"
	"github.com/notepal/notepal/internal/errors"
	"github.com/notepal/notepal/internal/ocr"
	"github.com/notepal/notepal/internal/output"
)

// OCR command flags.
var (
	ocrFlagNote string
	ocrFlagAt   int
)

// ocrCmd recognizes text in an image and inserts it into a note.
var ocrCmd = &cobra.Command{
	Use:   "ocr FILE",
	Short: "Recognize text in an image",
	Long: `Send an image to the configured OCR service and print the
recognized text, or insert it into a note with --note.

Examples:
  notepal ocr scan.png
  notepal ocr scan.png --note a1b2c3d4
  notepal ocr scan.png --note a1b2c3d4 --at 120`,
	Args: cobra.ExactArgs(1),
	RunE: runOCR,
}

func init() {
	ocrCmd.Flags().StringVar(&ocrFlagNote, "note", "",
		"Insert the recognized text into this note")
	ocrCmd.Flags().IntVar(&ocrFlagAt, "at", -1,
		"Character offset to insert at (default: end of note)")
	rootCmd.AddCommand(ocrCmd)
}

func runOCR(cmd *cobra.Command, args []string) error {
	endpoint := config.Global.OCR.Endpoint
	if endpoint == "" {
		return errors.NewUserError(
			"No OCR service is configured.",
			"Set NOTEPAL_OCR_ENDPOINT to the service URL.")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return errors.NewUserError(
			fmt.Sprintf("Cannot read image file: %v", err),
			"Check that the file exists and is readable.")
	}
	defer f.Close()

	recognizer := ocr.NewHTTPRecognizer(endpoint)
	text, err := recognizer.RecognizeText(cmd.Context(), f)
	if err != nil {
		return err
	}

	if ocrFlagNote == "" {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]interface{}{"text": text})
		}
		ctx.Formatter.Println(text)
		return nil
	}

	note, err := findNote(ocrFlagNote)
	if err != nil {
		return err
	}

	at := ocrFlagAt
	if at < 0 {
		at = len([]rune(note.Content))
	}
	note.Content = ocr.InsertText(note.Content, text, at)

	if err := ctx.Repo.UpdateNote(note); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNoteOutput(note))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Inserted %d characters into %q",
		len([]rune(text)), note.Title))
	return nil
}
