// Package backend wraps the remote action-dispatch endpoint that owns all
// booking state. Every operation is a POST of {"action": name, ...fields}
// answered by {"success": bool, ...}; the client renders results and never
// keeps authoritative state of its own.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// NetworkErrorText is the uniform error surfaced for any transport-level
// failure: endpoint unreachable, non-JSON body, closed connection. Callers
// show it (or a stage-specific fallback) instead of the raw error.
const NetworkErrorText = "Network error"

// maxResponseBytes bounds how much of a response body we are willing to read.
const maxResponseBytes = 4 << 20

// Result is the decoded response envelope for one backend call.
// Exactly one of Message or ErrorText is typically set on failure: Message
// carries an application-level rejection, ErrorText a transport failure.
type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorText string `json:"error"`

	raw json.RawMessage
}

// FailureText returns the user-facing failure message, preferring the
// application message, then the transport error, then the given fallback.
func (r Result) FailureText(fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	if r.ErrorText != "" {
		return r.ErrorText
	}
	return fallback
}

// Decode unmarshals the full response body into dst. Only meaningful on a
// successful result; the extra success fields (slots, bookings, laneCode...)
// live alongside the envelope flags in the same JSON object.
func (r Result) Decode(dst any) error {
	if len(r.raw) == 0 {
		return errors.New("empty result body")
	}
	return json.Unmarshal(r.raw, dst)
}

func networkFailure() Result {
	return Result{Success: false, ErrorText: NetworkErrorText}
}

// Config captures the subset of endpoint behaviour we need.
type Config struct {
	// EndpointURL is the deployed script endpoint, e.g.
	// https://script.google.com/macros/s/<id>/exec.
	EndpointURL string
	Timeout     time.Duration
	Client      *http.Client
	Logger      *slog.Logger
}

// Client dispatches actions to the booking backend.
type Client struct {
	endpointURL string
	client      *http.Client
	logger      *slog.Logger
}

// NewClient builds a backend client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	endpointURL := strings.TrimSpace(cfg.EndpointURL)
	if endpointURL == "" {
		return nil, errors.New("backend endpoint url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpointURL: endpointURL,
		client:      hc,
		logger:      logger,
	}, nil
}

// Call posts one action to the backend and decodes the result envelope.
// It never returns a Go error: any transport or decoding failure is absorbed
// into Result{Success:false, ErrorText:"Network error"} so view code has a
// single failure shape to render. No retries; each call is issued once.
func (c *Client) Call(ctx context.Context, action string, fields map[string]any) Result {
	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["action"] = action

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.ErrorContext(ctx, "encode backend payload", "action", action, "error", err)
		return networkFailure()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		c.logger.ErrorContext(ctx, "build backend request", "action", action, "error", err)
		return networkFailure()
	}
	// The script endpoint only accepts simple requests; a JSON content type
	// would trigger a preflight it cannot answer.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "backend call failed", "action", action, "error", err)
		return networkFailure()
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.WarnContext(ctx, "read backend response", "action", action, "error", err)
		return networkFailure()
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		c.logger.WarnContext(ctx, "malformed backend response",
			"action", action, "status", resp.StatusCode, "error", err)
		return networkFailure()
	}
	result.raw = raw
	return result
}
