package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/glacierlab/go-anthropic/internal/transport"
	"github.com/glacierlab/go-anthropic/pkg/anthropic/messages"
	"github.com/glacierlab/go-anthropic/pkg/anthropic/streaming"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	messagesPath   = "/v1/messages"

	// apiKeyEnv is the environment variable read by NewClientFromEnv.
	apiKeyEnv = "ANTHROPIC_API_KEY"
)

// Client calls the Messages endpoint family. A Client is safe for
// concurrent use; each streaming call returns its own independent stream.
type Client struct {
	transport transport.Client
}

// NewClient creates a client for the given API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{transport: transport.Client{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		Version: string(DefaultVersion),
		HTTP:    http.DefaultClient,
	}}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NewClientFromEnv creates a client with the API key loaded from the
// ANTHROPIC_API_KEY environment variable.
func NewClientFromEnv(opts ...Option) (*Client, error) {
	return NewClient(os.Getenv(apiKeyEnv), opts...)
}

// CreateMessage sends a structured list of input messages and returns the
// generated next message. The request must not ask for streaming; use
// CreateMessageStream for that.
func (c *Client) CreateMessage(
	ctx context.Context,
	req *messages.MessagesRequest,
) (*messages.MessagesResponse, error) {
	if req.Stream {
		return nil, ErrStreamMismatch
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.transport.PostJSON(ctx, messagesPath, req, false)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("anthropic: read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var out messages.MessagesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        err,
		}
	}

	return &out, nil
}

// CreateMessageStream sends the request with streaming enabled and
// returns the decoded event stream. The caller must close the stream.
//
// The stream flag on the request is set by this method; any value the
// caller put there is ignored.
func (c *Client) CreateMessageStream(
	ctx context.Context,
	req *messages.MessagesRequest,
) (*streaming.Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := *req
	body.Stream = true

	resp, err := c.transport.PostJSON(ctx, messagesPath, &body, true)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		text, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("anthropic: read response body: %w", err)
		}

		return nil, decodeAPIError(resp.StatusCode, text)
	}

	return streaming.NewStream(resp.Body), nil
}

// decodeAPIError turns a non-2xx body into an *APIError, or a
// *ResponseError when the vendor envelope itself does not parse.
func decodeAPIError(status int, body []byte) error {
	var envelope messages.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &ResponseError{
			StatusCode: status,
			Body:       string(body),
			Err:        err,
		}
	}

	return &APIError{
		StatusCode: status,
		Type:       apiErrorTypeForStatus(status),
		Response:   envelope,
	}
}
