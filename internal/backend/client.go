package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"example.com/fleetdesk/config"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client talks to the remote fleet REST backend. Every method issues exactly
// one network call: there are no retries, no batching and no caching at this
// layer.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logrus.Logger
}

// New creates a backend client from configuration
func New(cfg config.BackendConfig, log *logrus.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Error is a non-2xx response from the backend. Message is taken from the
// JSON body when one is present, otherwise it is derived from the status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}

// IsValidation reports whether err is a backend semantic validation failure
// (HTTP 400). The delivery wizard renders these distinctly from generic
// failures.
func IsValidation(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.StatusCode == http.StatusBadRequest
}

// IsNotFound reports whether err is a backend HTTP 404
func IsNotFound(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.StatusCode == http.StatusNotFound
}

// do issues a single JSON request and returns the raw response body
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request payload")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.send(req)
}

// send executes a prepared request and applies the error taxonomy
func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "backend request %s %s failed", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read backend response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
			"status": resp.StatusCode,
		}).Warn("Backend returned error status")
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(data, resp.StatusCode),
		}
	}

	return data, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// extractMessage pulls a server-supplied message out of an error body,
// falling back to a status-derived message when the body is not parseable
func extractMessage(body []byte, status int) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return fmt.Sprintf("backend returned status %d", status)
}
