package anthropic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSummarizeRequestShape(t *testing.T) {
	var gotPath string
	var gotHeader http.Header
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeader = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	todo := "buy milk\nwalk the \"dog\" <later>"
	resp, err := c.Summarize(context.Background(), "sk-test", todo)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	resp.Body.Close()

	if gotPath != "/v1/messages" {
		t.Fatalf("path = %q, want /v1/messages", gotPath)
	}
	if got := gotHeader.Get("x-api-key"); got != "sk-test" {
		t.Fatalf("x-api-key = %q", got)
	}
	if got := gotHeader.Get("anthropic-version"); got != "2023-06-01" {
		t.Fatalf("anthropic-version = %q", got)
	}
	if got := gotHeader.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}

	var req MessageRequest
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("outbound body is not JSON: %v", err)
	}
	if req.Model != Model {
		t.Fatalf("model = %q, want %q", req.Model, Model)
	}
	if req.MaxTokens != MaxTokens {
		t.Fatalf("max_tokens = %d, want %d", req.MaxTokens, MaxTokens)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages has %d entries, want 1", len(req.Messages))
	}
	if req.Messages[0].Role != "user" {
		t.Fatalf("role = %q, want user", req.Messages[0].Role)
	}
	// The todo text must appear verbatim, newlines and quotes included.
	if !strings.HasSuffix(req.Messages[0].Content, todo) {
		t.Fatalf("content does not end with the todo text: %q", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "summary and analysis") {
		t.Fatalf("content missing the instruction preamble: %q", req.Messages[0].Content)
	}
}

func TestSummarizeEmptyTodoText(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	resp, err := c.Summarize(context.Background(), "sk-test", "")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	resp.Body.Close()

	var req MessageRequest
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("outbound body is not JSON: %v", err)
	}
	if len(req.Messages) != 1 || req.Messages[0].Content == "" {
		t.Fatalf("empty todo text should still produce the instruction message")
	}
}

func TestSummarizeHonorsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	resp, err := c.Summarize(context.Background(), "sk-test", "x")
	if err == nil {
		resp.Body.Close()
		t.Fatalf("expected a timeout error")
	}
}
