package ocr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// InsertText Tests
// =============================================================================

func TestInsertText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		text    string
		at      int
		want    string
	}{
		{"middle", "hello world", "brave ", 6, "hello brave world"},
		{"start", "world", "hello ", 0, "hello world"},
		{"end", "hello", " world", 5, "hello world"},
		{"past_end_clamps", "hi", "!", 99, "hi!"},
		{"negative_clamps", "hi", "!", -3, "!hi"},
		{"empty_content", "", "text", 0, "text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InsertText(tc.content, tc.text, tc.at))
		})
	}
}

func TestInsertTextRuneOffsets(t *testing.T) {
	// Offsets count runes, not bytes.
	got := InsertText("héllo", "X", 2)
	assert.Equal(t, "héXllo", got)
}

// =============================================================================
// HTTP Recognizer Tests
// =============================================================================

func TestRecognizeText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "fake image bytes", string(body))
		_, _ = w.Write([]byte(`{"text": "  recognized words \n"}`))
	}))
	defer srv.Close()

	r := NewHTTPRecognizer(srv.URL)
	text, err := r.RecognizeText(context.Background(), strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "recognized words", text)
}

func TestRecognizeTextServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "unreadable image"}`))
	}))
	defer srv.Close()

	r := NewHTTPRecognizer(srv.URL)
	_, err := r.RecognizeText(context.Background(), strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreadable image")
}

func TestRecognizeTextHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewHTTPRecognizer(srv.URL)
	_, err := r.RecognizeText(context.Background(), strings.NewReader("x"))
	assert.Error(t, err)
}
