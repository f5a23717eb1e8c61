package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const (
	messagesPath = "/v1/messages"
	apiVersion   = "2023-06-01"

	// Model and MaxTokens are fixed; the relay exposes no way to tune them.
	Model     = "claude-3-sonnet-20240229"
	MaxTokens = 500

	promptTemplate = "Please provide a helpful summary and analysis of this todo list. Include insights about productivity patterns, priorities, and any recommendations:\n\n"
)

// Client represents a client to communicate with the Anthropic API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Client rooted at baseURL. The timeout bounds each
// outbound request end to end.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Summarize sends one messages request asking for a summary of todoText and
// returns the raw upstream response. The caller owns the response body.
// The API key travels only in the request header.
func (c *Client) Summarize(ctx context.Context, apiKey, todoText string) (*http.Response, error) {
	payload := MessageRequest{
		Model:     Model,
		MaxTokens: MaxTokens,
		Messages: []Message{
			{Role: "user", Content: promptTemplate + todoText},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	return c.httpClient.Do(req)
}
