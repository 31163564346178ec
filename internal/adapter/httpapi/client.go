package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/algoarena-2025.net/internal/config"
	"gitlab.com/algoarena-2025.net/internal/core/ports/primary"
	"gitlab.com/algoarena-2025.net/internal/domain"
)

const profilePath = "/auth/profile"

// TokenSource yields the current credential token, or "" when the
// session holds none.
type TokenSource func() string

// Client is the single gateway to every remote collaborator. It
// attaches the bearer credential, tags each request with a
// correlation id and normalizes all failures to domain.APIError.
//
// An unauthorized response from the identity-profile endpoint fires
// onSessionExpired; unauthorized responses from any other endpoint
// propagate to the caller, who decides what to do about them.
type Client struct {
	baseURL  string
	http     *http.Client
	evalHTTP *http.Client

	token            TokenSource
	onSessionExpired func()
	logger           primary.Logger
}

func NewClient(cfg *config.APIConfig, token TokenSource, onSessionExpired func(), logger primary.Logger) *Client {
	if onSessionExpired == nil {
		onSessionExpired = func() {}
	}
	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		http:             &http.Client{Timeout: cfg.RequestTimeout},
		evalHTTP:         &http.Client{Timeout: cfg.EvaluationTimeout},
		token:            token,
		onSessionExpired: onSessionExpired,
		logger:           logger,
	}
}

func (c *Client) do(ctx context.Context, httpClient *http.Client, method, path string, query url.Values, body, out interface{}) error {
	requestID := uuid.NewString()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("Gateway request", "method", method, "path", path, "requestId", requestID)

	resp, err := httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Gateway transport failure", "path", path, "requestId", requestID, "error", err)
		return &domain.APIError{
			Message:   "unable to reach AlgoArena services",
			RequestID: requestID,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &domain.APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body, resp.StatusCode),
			RequestID:  requestID,
		}
		if resp.StatusCode == http.StatusUnauthorized && path == profilePath {
			c.logger.Info("Stored credentials rejected, forcing logout", "requestId", requestID)
			c.onSessionExpired()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.APIError{
			StatusCode: resp.StatusCode,
			Message:    "malformed response from server",
			RequestID:  requestID,
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, c.http, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, c.http, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, c.http, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, c.http, http.MethodDelete, path, nil, nil, nil)
}

// postEval is post with the longer evaluation budget; run and submit
// wait on the remote executor.
func (c *Client) postEval(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, c.evalHTTP, http.MethodPost, path, nil, body, out)
}

func errorMessage(body io.Reader, status int) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
