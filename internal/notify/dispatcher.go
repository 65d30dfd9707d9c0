package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/storage"
)

// Dispatcher sends notifications to all enabled webhooks.
type Dispatcher struct {
	webhookRepo *storage.WebhookRepo
	httpClient  *HTTPClient
	formatter   Formatter
	debug       bool
}

// NewDispatcher creates a new notification dispatcher.
func NewDispatcher(webhookRepo *storage.WebhookRepo) *Dispatcher {
	return &Dispatcher{
		webhookRepo: webhookRepo,
		httpClient:  NewHTTPClient(),
		formatter:   &JSONFormatter{},
	}
}

// SetDebug enables or disables debug output.
func (d *Dispatcher) SetDebug(debug bool) {
	d.debug = debug
}

// DispatchResult contains the result of dispatching to a single webhook.
type DispatchResult struct {
	WebhookName string
	Success     bool
	StatusCode  int
	Duration    time.Duration
	Error       error
}

// Notify implements Notifier by fanning the notification out to all
// enabled webhooks and returning the first delivery error.
func (d *Dispatcher) Notify(ctx context.Context, n *model.Notification) error {
	for _, r := range d.SendNotification(ctx, n) {
		if r.Error != nil {
			return r.Error
		}
	}
	return nil
}

// SendNotification sends a notification to all enabled webhooks.
func (d *Dispatcher) SendNotification(ctx context.Context, n *model.Notification) []DispatchResult {
	webhooks, err := d.webhookRepo.ListEnabled()
	if err != nil {
		return []DispatchResult{{
			WebhookName: "all",
			Success:     false,
			Error:       fmt.Errorf("failed to list webhooks: %w", err),
		}}
	}

	if len(webhooks) == 0 {
		return nil // No webhooks configured
	}

	// Send to all webhooks concurrently
	var wg sync.WaitGroup
	results := make([]DispatchResult, len(webhooks))

	for i, webhook := range webhooks {
		wg.Add(1)
		go func(idx int, wh *model.Webhook) {
			defer wg.Done()
			results[idx] = d.sendToWebhook(ctx, n, wh)
		}(i, webhook)
	}

	wg.Wait()
	return results
}

// sendToWebhook sends a notification to a single webhook.
func (d *Dispatcher) sendToWebhook(ctx context.Context, n *model.Notification, webhook *model.Webhook) DispatchResult {
	result := DispatchResult{
		WebhookName: webhook.Name,
	}

	payload, err := d.formatter.Format(n)
	if err != nil {
		result.Error = fmt.Errorf("failed to format notification: %w", err)
		d.updateWebhookStatus(webhook.Name, result.Error)
		return result
	}

	sendResult := d.httpClient.Send(ctx, webhook.URL, d.formatter.ContentType(), payload)

	result.StatusCode = sendResult.StatusCode
	result.Duration = sendResult.Duration
	result.Error = sendResult.Error
	result.Success = sendResult.Error == nil

	// Update webhook last used status
	d.updateWebhookStatus(webhook.Name, sendResult.Error)

	return result
}

// updateWebhookStatus updates the last used timestamp and error for a webhook.
func (d *Dispatcher) updateWebhookStatus(name string, err error) {
	// Ignore errors from updating status - it's not critical
	_ = d.webhookRepo.UpdateLastUsed(name, err)
}

// SendToSingle sends a notification to a single webhook by name.
func (d *Dispatcher) SendToSingle(ctx context.Context, n *model.Notification, webhookName string) DispatchResult {
	webhook, err := d.webhookRepo.Get(webhookName)
	if err != nil {
		return DispatchResult{
			WebhookName: webhookName,
			Success:     false,
			Error:       fmt.Errorf("webhook not found: %w", err),
		}
	}

	if !webhook.Enabled {
		return DispatchResult{
			WebhookName: webhookName,
			Success:     false,
			Error:       fmt.Errorf("webhook %q is disabled", webhookName),
		}
	}

	return d.sendToWebhook(ctx, n, webhook)
}

// TestWebhook sends a test notification to the named webhook.
func (d *Dispatcher) TestWebhook(ctx context.Context, webhookName string) DispatchResult {
	n := &model.Notification{
		Type:      model.NotifyTest,
		Title:     "NotePal test notification",
		Body:      "If you can read this, the webhook is wired up correctly.",
		Timestamp: time.Now(),
	}
	return d.SendToSingle(ctx, n, webhookName)
}
