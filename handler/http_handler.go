package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"relay/anthropic"
)

// Route is the only path the relay serves.
const Route = "/api/claude"

// RelayHandler handles incoming HTTP requests and relays them to the
// Anthropic API with the caller-supplied credential injected upstream.
type RelayHandler struct {
	Backend *anthropic.Client
}

// NewRelayHandler creates a new instance of RelayHandler.
func NewRelayHandler(backend *anthropic.Client) *RelayHandler {
	return &RelayHandler{
		Backend: backend,
	}
}

// result is the terminal outcome of one request. Every branch of the handler
// produces exactly one result, and write is the only place headers are set.
type result struct {
	status int
	body   []byte
	json   bool
}

// errorResult wraps a message in the {"error":{"message":...}} shape the
// client-side code expects on every failure.
func errorResult(status int, message string) result {
	body, _ := json.Marshal(map[string]map[string]string{
		"error": {"message": message},
	})
	return result{status: status, body: body, json: true}
}

// ServeHTTP implements the http.Handler interface for RelayHandler.
func (h *RelayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writePreflight(w)
		logRequest(r, http.StatusOK)
		return
	}

	if r.Method != http.MethodPost || r.URL.Path != Route {
		write(w, result{status: http.StatusNotFound})
		log.Debugf("%s -- %s %s -- no such route", r.RemoteAddr, r.Method, r.URL.Path)
		return
	}

	res := h.relay(r)
	write(w, res)
	logRequest(r, res.status)
}

// relay validates the local request and performs the single outbound call.
func (h *RelayHandler) relay(r *http.Request) result {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errorResult(http.StatusBadRequest, "unable to read request body")
	}

	var payload SummarizeRequest
	if err := json.Unmarshal(body, &payload); err != nil {
		return errorResult(http.StatusBadRequest, "request body is not valid JSON")
	}

	if payload.APIKey == "" {
		return errorResult(http.StatusBadRequest, "API key is required")
	}

	// The outbound call is detached from the inbound context: a client
	// disconnect must not abort it. The backend client's own timeout
	// bounds it instead.
	resp, err := h.Backend.Summarize(context.Background(), payload.APIKey, payload.TodoText)
	if err != nil {
		// err carries the upstream URL at most, never the credential.
		return errorResult(http.StatusInternalServerError, fmt.Sprintf("upstream request failed: %s", err))
	}
	defer resp.Body.Close()

	upstream, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorResult(http.StatusInternalServerError, "unable to read upstream response")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return result{status: http.StatusOK, body: upstream, json: true}
	}

	// Mirror the upstream error verbatim when it is JSON, otherwise
	// synthesize a body in the same shape.
	if json.Valid(upstream) && len(upstream) > 0 {
		return result{status: resp.StatusCode, body: upstream, json: true}
	}
	return errorResult(resp.StatusCode, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
}

// write emits one result. The CORS origin header goes on every response so
// browser callers can read failures too.
func write(w http.ResponseWriter, res result) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if res.json {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(res.status)
	if len(res.body) > 0 {
		w.Write(res.body)
	}
}

// writePreflight answers a CORS preflight for any path.
func writePreflight(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusOK)
}
