// Package api contains typed clients for the BookMatch REST backend.
//
// One client per resource (auth, books, library, quiz, recommendations,
// reviews), all sharing a Client core that performs JSON transport,
// bearer-token attachment, and error classification. Clients carry no
// business logic; view state machines own all transient state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/desertthunder/bookmatch/internal/shared"
)

// TokenSource supplies the current bearer token, or "" when the client is
// unauthenticated. The session store implements this.
type TokenSource interface {
	Token() string
}

// Client is the shared HTTP core for all resource clients.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a transport core for the backend at baseURL.
// The URL should not include the /api suffix. A nil http.Client falls back
// to [http.DefaultClient]; a nil TokenSource leaves every request anonymous.
func NewClient(baseURL string, client *http.Client, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		tokens:     tokens,
	}
}

// raw performs a request against path (e.g. "/api/books/search") and
// returns the successful response body. A non-nil body is JSON-encoded.
// Non-2xx responses are classified into the error taxonomy.
func (c *Client) raw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(resp.StatusCode, data)
	}

	return data, nil
}

// do performs a JSON request; a non-nil result receives the decoded
// response body.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	data, err := c.raw(ctx, method, path, body)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// text performs a GET whose successful response body is plain text rather
// than JSON (the email verification endpoint).
func (c *Client) text(ctx context.Context, method, path string) (string, error) {
	data, err := c.raw(ctx, method, path, nil)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// textPost posts a JSON body and returns the plain-text response (the
// registration endpoint answers with a confirmation sentence).
func (c *Client) textPost(ctx context.Context, path string, body any) (string, error) {
	data, err := c.raw(ctx, http.MethodPost, path, body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// classifyStatus maps a rejection to the client error taxonomy.
//
// An unverified account is a 403 whose message carries the backend's
// verification hint; any other 401/403 is a plain credential rejection.
func classifyStatus(status int, body []byte) error {
	msg := extractMessage(body)

	switch {
	case status == http.StatusForbidden && strings.Contains(strings.ToLower(msg), "verific"):
		return fmt.Errorf("%w: %s", shared.ErrUnverifiedAccount, msg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", shared.ErrUnauthorized, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", shared.ErrNotFound, msg)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", shared.ErrConflict, msg)
	default:
		return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, status, msg)
	}
}

// extractMessage pulls a human-readable message out of an error response
// body, which may be a JSON object with a message/error field or raw text.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
