package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/errors"
	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/notify"
	"github.com/notepal/notepal/internal/output"
	"github.com/notepal/notepal/internal/validate"
)

// webhookCmd manages notification webhooks.
var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Manage notification webhooks",
	Long: `Register HTTP endpoints that receive a JSON payload whenever a
reminder fires.

Examples:
  notepal webhook add phone https://ntfy.example.com/notepal
  notepal webhook test phone
  notepal webhook list`,
}

var webhookAddCmd = &cobra.Command{
	Use:   "add NAME URL",
	Short: "Register a webhook",
	Args:  cobra.ExactArgs(2),
	RunE:  runWebhookAdd,
}

var webhookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered webhooks",
	RunE:  runWebhookList,
}

var webhookEnableCmd = &cobra.Command{
	Use:   "enable NAME",
	Short: "Enable a webhook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setWebhookEnabled(args[0], true)
	},
}

var webhookDisableCmd = &cobra.Command{
	Use:   "disable NAME",
	Short: "Disable a webhook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setWebhookEnabled(args[0], false)
	},
}

var webhookDeleteCmd = &cobra.Command{
	Use:     "delete NAME",
	Aliases: []string{"rm"},
	Short:   "Delete a webhook",
	Args:    cobra.ExactArgs(1),
	RunE:    runWebhookDelete,
}

var webhookTestCmd = &cobra.Command{
	Use:   "test NAME",
	Short: "Send a test notification to a webhook",
	Args:  cobra.ExactArgs(1),
	RunE:  runWebhookTest,
}

func init() {
	webhookCmd.AddCommand(webhookAddCmd)
	webhookCmd.AddCommand(webhookListCmd)
	webhookCmd.AddCommand(webhookEnableCmd)
	webhookCmd.AddCommand(webhookDisableCmd)
	webhookCmd.AddCommand(webhookDeleteCmd)
	webhookCmd.AddCommand(webhookTestCmd)
	rootCmd.AddCommand(webhookCmd)
}

func runWebhookAdd(cmd *cobra.Command, args []string) error {
	name, url := args[0], args[1]

	if !model.IsValidWebhookName(name) {
		return errors.NewUserErrorWithField("name", name,
			"Webhook names use letters, digits, dash, and underscore (max 50).",
			"Try something like 'phone' or 'ntfy-alerts'.")
	}
	if err := validate.URL(url); err != nil {
		return err
	}

	webhook := model.NewWebhook(name, url)
	if err := ctx.WebhookRepo.Create(webhook); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(webhook)
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Webhook %q registered", name))
	cli.Muted("  Verify it with 'notepal webhook test " + name + "'.")
	return nil
}

func runWebhookList(cmd *cobra.Command, args []string) error {
	webhooks, err := ctx.WebhookRepo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"webhooks": webhooks,
			"count":    len(webhooks),
		})
	}

	cli := ctx.CLIFormatter()
	if len(webhooks) == 0 {
		cli.Muted("No webhooks registered. Use 'notepal webhook add NAME URL'.")
		return nil
	}

	rows := make([]output.TableRow, len(webhooks))
	for i, w := range webhooks {
		state := "enabled"
		if !w.Enabled {
			state = "disabled"
		}
		lastUsed := "never"
		if !w.LastUsed.IsZero() {
			lastUsed = output.FormatTimeShort(w.LastUsed)
		}
		rows[i] = output.TableRow{Columns: []string{
			w.Name, w.MaskedURL(), state, lastUsed,
		}}
	}
	cli.PrintTable([]string{"Name", "URL", "State", "Last used"}, rows)
	return nil
}

func setWebhookEnabled(name string, enabled bool) error {
	webhook, err := ctx.WebhookRepo.Get(name)
	if err != nil {
		return err
	}

	webhook.Enabled = enabled
	if err := ctx.WebhookRepo.Update(webhook); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(webhook)
	}

	verb := "enabled"
	if !enabled {
		verb = "disabled"
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Webhook %q %s", name, verb))
	return nil
}

func runWebhookDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if _, err := ctx.WebhookRepo.Get(name); err != nil {
		return err
	}
	if err := ctx.WebhookRepo.Delete(name); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "deleted",
			"name":   name,
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Webhook %q deleted", name))
	return nil
}

func runWebhookTest(cmd *cobra.Command, args []string) error {
	name := args[0]

	dispatcher := notify.NewDispatcher(ctx.WebhookRepo)
	dispatcher.SetDebug(ctx.Debug)

	result := dispatcher.TestWebhook(cmd.Context(), name)
	if result.Error != nil {
		return errors.NewUserError(
			fmt.Sprintf("Test delivery to %q failed: %v", name, result.Error),
			"Check the URL and that the endpoint accepts POST requests.")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status":  "delivered",
			"webhook": name,
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Test notification delivered to %q", name))
	return nil
}
