package handler

// SummarizeRequest represents the expected JSON structure in the request body.
type SummarizeRequest struct {
	APIKey   string `json:"apiKey"`
	TodoText string `json:"todoText"`
}
