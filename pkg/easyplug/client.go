// Package easyplug is the HTTP client for the EasyPlug marketplace REST API.
// Every admin operation in this service goes through it.
package easyplug

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenSource supplies the bearer token attached to outbound requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource, mostly for tests and scripts.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client wraps the EasyPlug REST API.
type Client struct {
	http   *resty.Client
	tokens TokenSource
}

// NewClient creates a client for the API at baseURL. Tokens are read from the
// given source on every request, so sign-in/sign-out take effect immediately.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "EasyPlug-Admin/1.0")

	return &Client{
		http:   httpClient,
		tokens: tokens,
	}
}

// req builds a request with context and, when present, the bearer token.
// Content-Type defaults to JSON; resty overrides it for multipart bodies.
func (c *Client) req(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			r.SetAuthToken(tok)
		}
	}
	return r
}

// APIError is a non-2xx response from the EasyPlug API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("easyplug api error %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a definitive 401 from the API,
// as opposed to a transport failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ServerMessage extracts the server-provided message from err, falling back
// to the given default. Transport errors never carry a server message.
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// apiError converts an error response into an *APIError, pulling the
// server-supplied message out of the body when one is present.
func apiError(resp *resty.Response) error {
	msg := http.StatusText(resp.StatusCode())

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    msg,
	}
}
