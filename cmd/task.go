package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/errors"
	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/output"
	"github.com/notepal/notepal/internal/parser"
	"github.com/notepal/notepal/internal/validate"
)

// Task command flags.
var (
	taskAddFlagDue         string
	taskAddFlagPriority    string
	taskAddFlagCategory    string
	taskAddFlagDescription string
	taskEditFlagTitle      string
	taskEditFlagDue        string
	taskEditFlagPriority   string
	taskEditFlagCategory   string
	taskListFlagAll        bool
	taskListFlagOverdue    bool
)

// taskCmd represents the task command.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "t"},
	Short:   "Manage tasks",
	Long: `Create, list, complete, and delete tasks. Tasks are listed by
due date, soonest first.

Examples:
  notepal task add "Pay rent" --due "next friday" --priority high
  notepal task list
  notepal task list --overdue
  notepal task done 8a1b
  notepal task delete 8a1b`,
	RunE: runTaskList,
}

// taskAddCmd creates a new task.
var taskAddCmd = &cobra.Command{
	Use:     "add TITLE",
	Aliases: []string{"create", "new"},
	Short:   "Create a new task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskAdd,
}

// taskListCmd lists tasks.
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks ordered by due date",
	RunE:  runTaskList,
}

// taskDoneCmd toggles a task's completion.
var taskDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark a task complete (or incomplete if already done)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

// taskEditCmd edits an existing task.
var taskEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

// taskDeleteCmd deletes a task.
var taskDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDelete,
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskAddFlagDue, "due", "d", "", "Due date (natural language or YYYY-MM-DD)")
	taskAddCmd.Flags().StringVarP(&taskAddFlagPriority, "priority", "p", model.PriorityMedium, "Priority: low, medium, high")
	taskAddCmd.Flags().StringVarP(&taskAddFlagCategory, "category", "c", "", "Category label")
	taskAddCmd.Flags().StringVar(&taskAddFlagDescription, "description", "", "Longer description")

	taskEditCmd.Flags().StringVarP(&taskEditFlagTitle, "title", "t", "", "Update title")
	taskEditCmd.Flags().StringVarP(&taskEditFlagDue, "due", "d", "", "Update due date")
	taskEditCmd.Flags().StringVarP(&taskEditFlagPriority, "priority", "p", "", "Update priority")
	taskEditCmd.Flags().StringVarP(&taskEditFlagCategory, "category", "c", "", "Update category")

	taskListCmd.Flags().BoolVarP(&taskListFlagAll, "all", "a", false, "Include completed tasks")
	taskListCmd.Flags().BoolVar(&taskListFlagOverdue, "overdue", false, "Only overdue tasks")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	title := validate.SanitizeTitle(args[0])
	if err := validate.Title(title); err != nil {
		return err
	}
	if err := validate.Priority(taskAddFlagPriority); err != nil {
		return err
	}

	task := model.NewTask(title)
	task.Priority = taskAddFlagPriority
	task.Description = validate.SanitizeContent(taskAddFlagDescription)
	if taskAddFlagCategory != "" {
		task.Category = validate.SanitizeCategory(taskAddFlagCategory)
	}
	if taskAddFlagDue != "" {
		due, err := parser.ParseDueDate(taskAddFlagDue)
		if err != nil {
			return errors.Wrap(errors.ErrInvalidDateTime, err.Error())
		}
		task.DueDate = due
	}

	if err := ctx.Repo.AddTask(task); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTaskOutput(task))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Task created: %s (due %s)", task.Title, task.DueDate))
	cli.Muted("  ID: " + task.ID)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	var tasks []*model.Task
	for _, t := range ctx.Repo.SortedTasks() {
		if taskListFlagOverdue && !t.IsOverdue() {
			continue
		}
		if t.Completed && !taskListFlagAll && !taskListFlagOverdue {
			continue
		}
		tasks = append(tasks, t)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTasksResponse(tasks))
	}

	cli := ctx.CLIFormatter()
	if len(tasks) == 0 {
		cli.Muted("No tasks. Use 'notepal task add \"Title\"' to create one.")
		return nil
	}

	for _, t := range tasks {
		cli.PrintTask(t)
	}
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	task, err := findTask(args[0])
	if err != nil {
		return err
	}

	task.Completed = !task.Completed
	task.Touch()
	if err := ctx.Repo.UpdateTask(task); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTaskOutput(task))
	}

	cli := ctx.CLIFormatter()
	if task.Completed {
		cli.Success("Task completed: " + task.Title)
	} else {
		cli.Success("Task reopened: " + task.Title)
	}
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	task, err := findTask(args[0])
	if err != nil {
		return err
	}

	if taskEditFlagTitle == "" && taskEditFlagDue == "" &&
		taskEditFlagPriority == "" && taskEditFlagCategory == "" {
		return errors.NewUserError("Nothing to update",
			"Pass --title, --due, --priority, or --category")
	}

	if taskEditFlagTitle != "" {
		title := validate.SanitizeTitle(taskEditFlagTitle)
		if err := validate.Title(title); err != nil {
			return err
		}
		task.Title = title
	}
	if taskEditFlagDue != "" {
		due, err := parser.ParseDueDate(taskEditFlagDue)
		if err != nil {
			return errors.Wrap(errors.ErrInvalidDateTime, err.Error())
		}
		task.DueDate = due
	}
	if taskEditFlagPriority != "" {
		if err := validate.Priority(taskEditFlagPriority); err != nil {
			return err
		}
		task.Priority = taskEditFlagPriority
	}
	if taskEditFlagCategory != "" {
		task.Category = validate.SanitizeCategory(taskEditFlagCategory)
	}
	task.Touch()

	if err := ctx.Repo.UpdateTask(task); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTaskOutput(task))
	}

	ctx.CLIFormatter().Success("Task updated: " + task.Title)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	task, err := findTask(args[0])
	if err != nil {
		return err
	}

	deleted, err := ctx.Repo.DeleteTask(task.ID)
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	if !deleted {
		cli.Warning("Task was already gone.")
		return nil
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": task.ID})
	}

	cli.Success("Task deleted: " + task.Title)
	return nil
}

// findTask resolves a task by full id or unique id prefix.
func findTask(idOrPrefix string) (*model.Task, error) {
	if t := ctx.Repo.GetTask(idOrPrefix); t != nil {
		return t, nil
	}

	var match *model.Task
	for _, t := range ctx.Repo.Store().Tasks {
		if len(idOrPrefix) >= 4 && len(t.ID) >= len(idOrPrefix) && t.ID[:len(idOrPrefix)] == idOrPrefix {
			if match != nil {
				return nil, errors.NewUserError("Ambiguous task id prefix", "Use more characters of the id")
			}
			match = t
		}
	}
	if match == nil {
		return nil, errors.ErrTaskNotFound
	}
	return match, nil
}
