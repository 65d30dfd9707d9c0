// Package ocr extracts text from images so it can be inserted into
// notes.
package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Recognizer extracts text from an image.
type Recognizer interface {
	RecognizeText(ctx context.Context, image io.Reader) (string, error)
}

// HTTPRecognizer sends images to an OCR service and returns the
// recognized text. The service is expected to answer POSTs with a JSON
// body of the form {"text": "..."}.
type HTTPRecognizer struct {
	endpoint string
	client   *http.Client
}

// NewHTTPRecognizer creates a recognizer talking to the given endpoint.
func NewHTTPRecognizer(endpoint string) *HTTPRecognizer {
	return &HTTPRecognizer{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// recognizeResponse is the OCR service's answer.
type recognizeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// RecognizeText posts the image and returns the recognized text with
// surrounding whitespace trimmed.
func (r *HTTPRecognizer) RecognizeText(ctx context.Context, image io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, image)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("User-Agent", "NotePal/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ocr service returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var parsed recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode ocr response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ocr service error: %s", parsed.Error)
	}

	return strings.TrimSpace(parsed.Text), nil
}
