package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/errors"
	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/output"
	"github.com/notepal/notepal/internal/validate"
)

// Note command flags.
var (
	noteAddFlagContent  string
	noteAddFlagFile     string
	noteEditFlagTitle   string
	noteEditFlagContent string
	noteListFlagAll     bool
)

// noteCmd represents the note command.
var noteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"notes", "n"},
	Short:   "Manage notes",
	Long: `Create, list, edit, and delete notes. Notes are listed
most recently updated first.

Examples:
  notepal note add "Meeting notes" --content "Discuss roadmap"
  notepal note add "Long note" --from-file ./draft.md
  notepal note list
  notepal note show 4f2c
  notepal note edit 4f2c --content "Updated text"
  notepal note delete 4f2c`,
	RunE: runNoteList,
}

// noteAddCmd creates a new note.
var noteAddCmd = &cobra.Command{
	Use:     "add TITLE",
	Aliases: []string{"create", "new"},
	Short:   "Create a new note",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteAdd,
}

// noteListCmd lists notes.
var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, most recently updated first",
	RunE:  runNoteList,
}

// noteShowCmd shows a single note.
var noteShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a note's full content",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteShow,
}

// noteEditCmd edits an existing note.
var noteEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteEdit,
}

// noteDeleteCmd deletes a note.
var noteDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteDelete,
}

func init() {
	noteAddCmd.Flags().StringVarP(&noteAddFlagContent, "content", "c", "", "Note content")
	noteAddCmd.Flags().StringVar(&noteAddFlagFile, "from-file", "", "Read content from a file")

	noteEditCmd.Flags().StringVarP(&noteEditFlagTitle, "title", "t", "", "Update title")
	noteEditCmd.Flags().StringVarP(&noteEditFlagContent, "content", "c", "", "Update content")

	noteListCmd.Flags().BoolVarP(&noteListFlagAll, "all", "a", false, "Include drawings")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	title := validate.SanitizeTitle(args[0])
	if err := validate.Title(title); err != nil {
		return err
	}

	content := noteAddFlagContent
	if noteAddFlagFile != "" {
		data, err := os.ReadFile(noteAddFlagFile)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		content = string(data)
	}
	content = validate.SanitizeContent(content)
	if err := validate.Content(content); err != nil {
		return err
	}

	note := model.NewNote(title, content)
	if err := ctx.Repo.AddNote(note); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNoteOutput(note))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Note created: %s", note.Title))
	cli.Muted("  ID: " + note.ID)
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	notes := ctx.Repo.SortedNotes()
	if !noteListFlagAll {
		var text []*model.Note
		for _, n := range notes {
			if !n.IsDrawing() {
				text = append(text, n)
			}
		}
		notes = text
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNotesResponse(notes))
	}

	cli := ctx.CLIFormatter()
	if len(notes) == 0 {
		cli.Muted("No notes yet. Use 'notepal note add \"Title\"' to create one.")
		return nil
	}

	for _, n := range notes {
		cli.PrintNote(n)
	}
	return nil
}

func runNoteShow(cmd *cobra.Command, args []string) error {
	note, err := findNote(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNoteOutput(note))
	}

	cli := ctx.CLIFormatter()
	cli.Title(note.Title)
	if note.IsDrawing() {
		cli.Muted("(drawing; content is image data)")
	} else if note.Content != "" {
		cli.Println(note.Content)
	}
	cli.Muted(fmt.Sprintf("\nCreated: %s  Updated: %s",
		output.FormatTimeShort(note.CreatedAt), output.FormatTimeShort(note.UpdatedAt)))
	return nil
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	note, err := findNote(args[0])
	if err != nil {
		return err
	}

	if noteEditFlagTitle == "" && noteEditFlagContent == "" {
		return errors.NewUserError("Nothing to update", "Pass --title or --content")
	}

	if noteEditFlagTitle != "" {
		title := validate.SanitizeTitle(noteEditFlagTitle)
		if err := validate.Title(title); err != nil {
			return err
		}
		note.Title = title
	}
	if noteEditFlagContent != "" {
		content := validate.SanitizeContent(noteEditFlagContent)
		if err := validate.Content(content); err != nil {
			return err
		}
		note.Content = content
	}
	note.Touch()

	if err := ctx.Repo.UpdateNote(note); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNoteOutput(note))
	}

	ctx.CLIFormatter().Success("Note updated: " + note.Title)
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	note, err := findNote(args[0])
	if err != nil {
		return err
	}

	deleted, err := ctx.Repo.DeleteNote(note.ID)
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	if !deleted {
		cli.Warning("Note was already gone.")
		return nil
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": note.ID})
	}

	cli.Success("Note deleted: " + note.Title)
	return nil
}

// findNote resolves a note by full id or unique id prefix.
func findNote(idOrPrefix string) (*model.Note, error) {
	if n := ctx.Repo.GetNote(idOrPrefix); n != nil {
		return n, nil
	}

	var match *model.Note
	for _, n := range ctx.Repo.Store().Notes {
		if len(idOrPrefix) >= 4 && len(n.ID) >= len(idOrPrefix) && n.ID[:len(idOrPrefix)] == idOrPrefix {
			if match != nil {
				return nil, errors.NewUserError("Ambiguous note id prefix", "Use more characters of the id")
			}
			match = n
		}
	}
	if match == nil {
		return nil, errors.ErrNoteNotFound
	}
	return match, nil
}
