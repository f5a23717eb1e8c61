package anthropic

// Message is a single entry in the messages sequence sent upstream.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MessageRequest is the JSON body for the messages endpoint.
type MessageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}
