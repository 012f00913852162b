// Package api is the HTTP client for the barhop REST backend.
//
// The client reads the bearer token from the credential store immediately
// before every outbound request, never from session state: tokens change
// over the process lifetime while clients are constructed once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/barhopapp/barhop/internal/errors"
	"github.com/barhopapp/barhop/internal/log"
)

// TokenSource yields the current bearer token at request time. An empty
// token with a nil error means "send the request unauthenticated".
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

// Client is the barhop platform API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *log.Logger
}

// NewClient creates a new platform API client. tokens may be nil for a
// client that only hits public endpoints.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		logger: log.DefaultLogger().With("component", "api"),
	}
}

// SetHTTPClient replaces the underlying HTTP client (used in tests).
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// doRequest performs an HTTP request, attaching the bearer credential when
// one is stored.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		// Read the store at request time. A failed read degrades to an
		// unauthenticated request; the server decides whether that matters.
		token, err := c.tokens.Get(ctx)
		if err != nil {
			c.logger.WithError(err).Warn("credential read failed, sending unauthenticated", "request_id", requestID)
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.NewNetworkError(err)
	}

	c.logger.Debug("request complete",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return resp, nil
}

// errorResponse covers the error body shapes the backend emits, with or
// without a success wrapper.
type errorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// parseResponse normalizes a response into the target struct or a typed
// error. All shape-sniffing of backend payloads happens here and nowhere
// else.
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := errorMessage(body)

		if resp.StatusCode == http.StatusUnauthorized {
			authErr := errors.NewAuthExpiredError()
			if message != "" {
				authErr.Message = message
			}
			return authErr
		}

		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return errors.New(errors.ErrCodeServerRejected, message)
	}

	if target != nil {
		if err := json.Unmarshal(unwrapEnvelope(body), target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// errorMessage extracts the human-readable message from an error body.
func errorMessage(body []byte) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	if errResp.Message != "" {
		return errResp.Message
	}
	return errResp.Error
}

// unwrapEnvelope unwraps `{"success": true, "data": {...}}` bodies to the
// inner object, and passes raw objects through untouched.
func unwrapEnvelope(body []byte) []byte {
	var envelope struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return body
	}
	if envelope.Success != nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return body
}
