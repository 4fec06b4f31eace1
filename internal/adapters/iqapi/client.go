// Package iqapi talks to the IQ agent-trading platform's public HTTP API.
// It is the single place where remote failures are classified: callers get
// either a usable Document or an explicit error, never a silent empty value.
package iqapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production IQ platform endpoint.
const DefaultBaseURL = "https://app.iqai.com"

// Client performs requests against the IQ platform API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a platform API client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RequestOptions carries the optional method/body/header configuration for a
// single fetch. The zero value means a plain GET.
type RequestOptions struct {
	Method string
	Body   []byte
	Header http.Header
}

// StatusError reports a non-2xx platform response. The numeric code and the
// HTTP status text are preserved for the tool boundary to surface.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Status)
}

// Get issues a GET against path with the given query.
func (c *Client) Get(ctx context.Context, path string, q *Query) (*Document, error) {
	return c.Do(ctx, path, q, nil)
}

// Do issues one request and classifies the outcome. A 2xx response yields a
// Document (parsed JSON when the body is valid JSON, the raw text otherwise);
// a non-2xx response yields a *StatusError; transport failures are wrapped.
func (c *Client) Do(ctx context.Context, path string, q *Query, opts *RequestOptions) (*Document, error) {
	method := http.MethodGet
	var body io.Reader
	if opts != nil {
		if opts.Method != "" {
			method = opts.Method
		}
		if len(opts.Body) > 0 {
			body = bytes.NewReader(opts.Body)
		}
	}

	fullURL := c.baseURL + path + q.Encode()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if opts != nil {
		for key, values := range opts.Header {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		status := resp.Status
		// resp.Status already starts with the code ("500 Internal Server
		// Error"); keep only the text part.
		if len(status) > 4 {
			status = status[4:]
		}
		return nil, &StatusError{Code: resp.StatusCode, Status: status}
	}

	return ParseDocument(raw), nil
}
