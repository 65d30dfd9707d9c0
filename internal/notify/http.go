package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient delivers webhook payloads with bounded retries. Server
// errors and rate limiting are retried on a fixed backoff ladder;
// client errors are not.
type HTTPClient struct {
	client     *http.Client
	maxRetries int
	retryDelay []time.Duration
}

// NewHTTPClient returns a client with the default retry ladder.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: 3,
		retryDelay: []time.Duration{0, 5 * time.Second, 30 * time.Second},
	}
}

// SendResult describes one delivery, across all attempts made for it.
type SendResult struct {
	StatusCode int
	Duration   time.Duration
	Attempts   int
	Error      error
}

// Send POSTs the payload to a webhook URL. It returns after the first
// 2xx, the first non-retryable failure, or when the retry ladder is
// exhausted; the result carries the last status and error seen.
func (c *HTTPClient) Send(ctx context.Context, url string, contentType string, body []byte) *SendResult {
	result := &SendResult{}
	start := time.Now()

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		result.Attempts = attempt + 1

		if attempt > 0 && attempt < len(c.retryDelay) {
			select {
			case <-ctx.Done():
				result.Error = ctx.Err()
				result.Duration = time.Since(start)
				return result
			case <-time.After(c.retryDelay[attempt]):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			result.Error = fmt.Errorf("failed to create request: %w", err)
			continue
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("User-Agent", "NotePal/1.0")

		resp, err := c.client.Do(req)
		if err != nil {
			result.Error = fmt.Errorf("request failed: %w", err)
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		result.StatusCode = resp.StatusCode

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			result.Error = nil
			result.Duration = time.Since(start)
			return result
		case resp.StatusCode == http.StatusTooManyRequests:
			result.Error = fmt.Errorf("rate limited (HTTP 429)")
		case resp.StatusCode >= 500:
			result.Error = fmt.Errorf("server error (HTTP %d): %s", resp.StatusCode, string(respBody))
		default:
			// 4xx besides 429: the endpoint rejected the payload,
			// retrying will not change that.
			result.Error = fmt.Errorf("client error (HTTP %d): %s", resp.StatusCode, string(respBody))
			result.Duration = time.Since(start)
			return result
		}
	}

	result.Duration = time.Since(start)
	if result.Error == nil {
		result.Error = fmt.Errorf("max retries exceeded")
	}
	return result
}
