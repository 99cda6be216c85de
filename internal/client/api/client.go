// Package api contains the typed resource fetchers for the TeamUp backend:
// one pure async function per endpoint over a single shared request helper.
// Fetchers never retry and never cache; every call is a fresh round trip.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teamup-uiuc/teamup-cli/internal/client/session"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// basePath is the fixed prefix every endpoint lives under.
const basePath = "/api"

// Client issues JSON requests against the TeamUp backend. A bearer token is
// attached whenever the session store holds one.
type Client struct {
	baseURL string
	http    *http.Client
	store   *session.Store
	log     logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, store *session.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// do performs one request. path is the endpoint below /api; query may be
// nil; in is marshalled as the JSON body when non-nil; out, when non-nil,
// receives the decoded JSON response.
//
// Non-2xx responses become *Error carrying the message from a {detail} or
// {message} body, falling back to the status text. Transport failures wrap
// ErrUnavailable. do never panics and never retries.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	reqURL := c.baseURL + basePath + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.store.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request finished",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", req.Header.Get("X-Request-Id"),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.normalizeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// normalizeError extracts a message from a structured error body when one
// is present; otherwise the transport status text stands in.
func (c *Client) normalizeError(resp *http.Response) error {
	msg := fmt.Sprintf("API error: %s", resp.Status)

	var errBody struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
		if errBody.Detail != "" {
			msg = errBody.Detail
		} else if errBody.Message != "" {
			msg = errBody.Message
		}
	}

	return &Error{Status: resp.StatusCode, Message: msg}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, in, out any) error {
	return c.do(ctx, http.MethodPost, path, query, in, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, in, out any) error {
	return c.do(ctx, http.MethodPut, path, query, in, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}
