package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/output"
	"github.com/notepal/notepal/internal/validate"
)

// searchCmd represents the search command.
var searchCmd = &cobra.Command{
	Use:     "search TERM...",
	Aliases: []string{"find", "s"},
	Short:   "Search notes and tasks",
	Long: `Search note titles and content, and task titles and descriptions.
Matching is case-insensitive substring matching.

Examples:
  notepal search roadmap
  notepal search "login bug"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")
	if err := validate.SearchTerm(term); err != nil {
		return err
	}

	result := ctx.Repo.Search(term)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewSearchResponse(term, result.Notes, result.Tasks))
	}

	ctx.CLIFormatter().PrintSearchResults(term, result.Notes, result.Tasks)
	return nil
}
