// Package notify delivers notifications to the terminal and to
// configured webhooks.
package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/notepal/notepal/internal/model"
)

// Notifier delivers a notification to the user through some channel.
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification) error
}

// TerminalNotifier writes notifications to a terminal stream. It is the
// default channel when no webhooks are configured.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier creates a notifier writing to stdout.
func NewTerminalNotifier() *TerminalNotifier {
	return &TerminalNotifier{out: os.Stdout}
}

// NewTerminalNotifierTo creates a notifier writing to the given stream.
func NewTerminalNotifierTo(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

// Notify prints the notification title and body.
func (t *TerminalNotifier) Notify(_ context.Context, n *model.Notification) error {
	if n.Body != "" {
		_, err := fmt.Fprintf(t.out, "\n🔔 %s: %s\n", n.Title, n.Body)
		return err
	}
	_, err := fmt.Fprintf(t.out, "\n🔔 %s\n", n.Title)
	return err
}

// MultiNotifier fans a notification out to several channels. Errors are
// collected; delivery to one channel does not block the others.
type MultiNotifier struct {
	channels []Notifier
}

// NewMultiNotifier combines the given channels into one notifier.
func NewMultiNotifier(channels ...Notifier) *MultiNotifier {
	return &MultiNotifier{channels: channels}
}

// Notify delivers to every channel and returns the first error seen.
func (m *MultiNotifier) Notify(ctx context.Context, n *model.Notification) error {
	var firstErr error
	for _, c := range m.channels {
		if err := c.Notify(ctx, n); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
