package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeNotes returns a completion function for note IDs.
func completeNotes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Repo == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, n := range ctx.Repo.SortedNotes() {
		if strings.HasPrefix(n.ID, toComplete) {
			completions = append(completions, n.ShortID()+"\t"+n.Title)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeTasks returns a completion function for task IDs.
func completeTasks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Repo == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, t := range ctx.Repo.SortedTasks() {
		if strings.HasPrefix(t.ID, toComplete) {
			completions = append(completions, t.ShortID()+"\t"+t.Title)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeWebhooks returns a completion function for webhook names.
func completeWebhooks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.WebhookRepo == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	webhooks, err := ctx.WebhookRepo.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, w := range webhooks {
		if strings.HasPrefix(w.Name, toComplete) {
			completions = append(completions, w.Name+"\t"+w.MaskedURL())
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	noteShowCmd.ValidArgsFunction = completeNotes
	noteEditCmd.ValidArgsFunction = completeNotes
	noteDeleteCmd.ValidArgsFunction = completeNotes
	taskDoneCmd.ValidArgsFunction = completeTasks
	taskEditCmd.ValidArgsFunction = completeTasks
	taskDeleteCmd.ValidArgsFunction = completeTasks
	webhookEnableCmd.ValidArgsFunction = completeWebhooks
	webhookDisableCmd.ValidArgsFunction = completeWebhooks
	webhookDeleteCmd.ValidArgsFunction = completeWebhooks
	webhookTestCmd.ValidArgsFunction = completeWebhooks
}
