// Package transport sends authenticated HTTP requests to the Anthropic
// API. It owns header assembly and nothing else: status handling and body
// decoding stay with the caller.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client issues requests against one API endpoint with one credential.
type Client struct {
	BaseURL string
	APIKey  string
	Version string
	Betas   []string
	HTTP    *http.Client
}

// PostJSON sends a JSON payload to path. When stream is set the request
// asks for a server-sent event response. The caller owns the returned
// response body.
func (c *Client) PostJSON(
	ctx context.Context,
	path string,
	payload any,
	stream bool,
) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+path,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", c.Version)
	for _, beta := range c.Betas {
		req.Header.Add("anthropic-beta", beta)
	}
	req.Header.Set("content-type", "application/json")
	if stream {
		req.Header.Set("accept", "text/event-stream")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	return resp, nil
}
