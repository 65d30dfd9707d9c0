package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/errors"
	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/output"
	"github.com/notepal/notepal/internal/parser"
	"github.com/notepal/notepal/internal/validate"
)

// Remind command flags.
var (
	remindFlagRepeat string
	remindFlagEvery  int
	remindFlagNote   string
	remindFlagTask   string
	remindListAll    bool
)

// remindCmd represents the remind command.
var remindCmd = &cobra.Command{
	Use:     "remind [TITLE] [WHEN]",
	Aliases: []string{"r", "rem", "reminder", "reminders"},
	Short:   "Manage reminders",
	Long: `Create and manage reminders with natural language times.

When called with arguments, creates a new reminder. Otherwise, lists
scheduled reminders. A reminder can point at a note or a task.

Time formats:
  - Relative: +5m, +1h, +2d, +1w
  - Natural language: "friday 5pm", "tomorrow 2pm", "next monday 10am"
  - Date/time: "2026-01-15 14:00"

Repeating reminders re-arm themselves after firing: daily, weekly,
monthly, or custom with --every N days.

Examples:
  notepal remind "Stand-up" tomorrow 9am --repeat daily
  notepal remind "Water plants" +2d --repeat custom --every 3
  notepal remind "Review notes" friday 5pm --note 4f2c
  notepal remind list
  notepal remind delete abc123`,
	RunE: runRemindCreate,
}

// remindListCmd lists reminders.
var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders",
	Long: `List scheduled reminders. Use --all to include fired ones.

Examples:
  notepal remind list
  notepal remind list --all`,
	RunE: runRemindList,
}

// remindDeleteCmd deletes a reminder.
var remindDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a reminder",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemindDelete,
}

func init() {
	remindCmd.Flags().StringVarP(&remindFlagRepeat, "repeat", "r", model.RepeatNone,
		"Recurrence: none, daily, weekly, monthly, custom")
	remindCmd.Flags().IntVar(&remindFlagEvery, "every", 0,
		"Day interval for --repeat custom")
	remindCmd.Flags().StringVar(&remindFlagNote, "note", "",
		"Attach the reminder to a note id")
	remindCmd.Flags().StringVar(&remindFlagTask, "task", "",
		"Attach the reminder to a task id")

	remindListCmd.Flags().BoolVarP(&remindListAll, "all", "a", false,
		"Include fired reminders")

	remindCmd.AddCommand(remindListCmd)
	remindCmd.AddCommand(remindDeleteCmd)
	rootCmd.AddCommand(remindCmd)
}

func runRemindCreate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runRemindList(cmd, args)
	}
	if len(args) < 2 {
		return errors.NewUserError("A reminder needs a title and a time",
			"Try: notepal remind \"Stand-up\" tomorrow 9am")
	}

	title := validate.SanitizeTitle(args[0])
	if err := validate.Title(title); err != nil {
		return err
	}
	if err := validate.RepeatRule(remindFlagRepeat, remindFlagEvery); err != nil {
		return err
	}
	if remindFlagNote != "" && remindFlagTask != "" {
		return errors.NewUserError("A reminder can point at a note or a task, not both",
			"Pass only one of --note and --task")
	}

	when := parser.ParseWhenArgs(args[1:])
	if when.Error != nil {
		return errors.Wrap(errors.ErrInvalidDateTime, when.Error.Error())
	}

	itemID := ""
	itemType := model.ItemNote
	if remindFlagNote != "" {
		note, err := findNote(remindFlagNote)
		if err != nil {
			return err
		}
		itemID = note.ID
	}
	if remindFlagTask != "" {
		task, err := findTask(remindFlagTask)
		if err != nil {
			return err
		}
		itemID = task.ID
		itemType = model.ItemTask
	}

	r := model.NewReminder(title, when.Time, itemID, itemType)
	r.Repeat = remindFlagRepeat
	if remindFlagRepeat == model.RepeatCustom {
		r.CustomRepeatDays = remindFlagEvery
	}

	if err := ctx.Repo.AddReminder(r); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewReminderOutput(r))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Reminder set: %s at %s (%s)",
		r.Title, parser.FormatDateTime(r.DateTime), parser.FormatTimeUntil(r.DateTime)))
	if r.IsRecurring() {
		cli.Muted("  Repeats: " + r.Repeat)
	}
	if r.TimeUntil() <= 0 {
		cli.Warning("This time is in the past; the reminder will not fire.")
	} else if !daemonRunning() {
		cli.Muted("  Start the daemon so it fires: notepal daemon start")
	}
	return nil
}

func runRemindList(cmd *cobra.Command, args []string) error {
	var reminders []*model.Reminder
	if remindListAll {
		reminders = ctx.Repo.Reminders()
	} else {
		reminders = ctx.Repo.PendingReminders()
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewRemindersResponse(reminders))
	}

	cli := ctx.CLIFormatter()
	if len(reminders) == 0 {
		cli.Muted("No reminders. Use 'notepal remind \"Title\" tomorrow 9am'.")
		return nil
	}

	for _, r := range reminders {
		cli.PrintReminder(r)
	}
	return nil
}

func runRemindDelete(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])

	r := ctx.Repo.GetReminder(id)
	if r == nil {
		// Try short id prefix
		for _, cand := range ctx.Repo.Reminders() {
			if strings.HasPrefix(cand.ID, id) {
				r = cand
				break
			}
		}
	}
	if r == nil {
		return errors.ErrReminderNotFound
	}

	deleted, err := ctx.Repo.DeleteReminder(r.ID)
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	if !deleted {
		cli.Warning("Reminder was already gone.")
		return nil
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": r.ID})
	}

	cli.Success("Reminder deleted: " + r.Title)
	return nil
}
