// Package client provides a Go client for the Inkwell API.
//
// All failures are normalized into the closed taxonomy in errors.go before
// they reach the caller; UI code never needs to inspect transport details.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// DefaultTimeout is generous because sibling endpoints elsewhere in the
	// platform can be slow; the image endpoints inherit the same bound.
	DefaultTimeout = 3 * time.Minute

	// DefaultMaxBodySize admits inline-encoded images.
	DefaultMaxBodySize = 50 << 20
)

type Config struct {
	// BaseURL of the API, including the /api prefix, e.g.
	// "https://inkwell.example.com/api".
	BaseURL string

	// Timeout bounds every request; it is the only cancellation mechanism
	// besides the caller's context.
	Timeout time.Duration

	// MaxBodySize caps both outgoing and incoming payload sizes in bytes.
	MaxBodySize int64

	// Session to read the bearer credential from. A fresh one is created
	// when nil.
	Session *Session
}

type Client struct {
	baseURL string
	maxBody int64
	session *Session
	http    *http.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.Session == nil {
		cfg.Session = new(Session)
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		maxBody: cfg.MaxBodySize,
		session: cfg.Session,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Session() *Session {
	return c.session
}

// Logout drops the active credential locally.
func (c *Client) Logout() {
	c.session.Clear()
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := codec.Marshal(payload)
		if err != nil {
			return &Error{Kind: KindUnknown, Message: fmt.Sprintf("unable to encode request body: %v", err)}
		}
		if int64(len(raw)) > c.maxBody {
			return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf("request body exceeds the %d byte limit", c.maxBody)}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf("unable to build request: %v", err)}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.normalizeTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return c.normalizeTransportError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.normalizeStatus(path, resp.StatusCode, raw)
	}

	if out != nil {
		if err := codec.Unmarshal(raw, out); err != nil {
			return &Error{Kind: KindUnknown, Status: resp.StatusCode, Message: fmt.Sprintf("malformed response body: %v", err)}
		}
	}

	return nil
}

func isAuthPath(path string) bool {
	return strings.Contains(path, "/auth/")
}

func (c *Client) normalizeStatus(path string, status int, raw []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = codec.Unmarshal(raw, &payload)
	message := payload.Message

	switch {
	case status == http.StatusUnauthorized:
		// Losing the credential mid-login must not wipe a session the user
		// is trying to establish.
		if !isAuthPath(path) {
			c.session.Clear()
		}
		if len(message) == 0 {
			message = "unauthorized, please login again"
		}
		return &Error{Kind: KindUnauthorized, Status: status, Message: message}
	case status == http.StatusForbidden:
		if len(message) == 0 {
			message = "access forbidden"
		}
		return &Error{Kind: KindForbidden, Status: status, Message: message}
	case status == http.StatusNotFound:
		if len(message) == 0 {
			message = "resource not found"
		}
		return &Error{Kind: KindNotFound, Status: status, Message: message}
	case status == http.StatusBadRequest:
		if len(message) == 0 {
			message = "invalid request"
		}
		return &Error{Kind: KindInvalidRequest, Status: status, Message: message}
	case status >= http.StatusInternalServerError:
		if len(message) == 0 {
			message = "server error, please try again later"
		}
		return &Error{Kind: KindServerError, Status: status, Message: message}
	default:
		if len(message) == 0 {
			message = http.StatusText(status)
		}
		return &Error{Kind: KindUnknown, Status: status, Message: message}
	}
}

func (c *Client) normalizeTransportError(err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return &Error{Kind: KindTimeout, Message: "request timeout, server took too long to respond"}
	}

	return &Error{
		Kind:    KindNetworkUnreachable,
		Message: fmt.Sprintf("cannot connect to server at %s: %v", c.baseURL, err),
	}
}
