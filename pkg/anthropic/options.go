package anthropic

import "net/http"

// Version is the anthropic-version header value.
type Version string

const (
	Version20230101 Version = "2023-01-01"
	Version20230601 Version = "2023-06-01"

	DefaultVersion = Version20230601
)

// Beta is an anthropic-beta header value enabling a beta feature.
type Beta string

const (
	BetaTools20240404 Beta = "tools-2024-04-04"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for all requests. Socket-level
// policy (timeouts, proxies, retries) belongs there, not in this library.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.transport.HTTP = httpClient }
}

// WithBaseURL overrides the API endpoint, e.g. for proxies or tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.transport.BaseURL = baseURL }
}

// WithVersion pins the API version header.
func WithVersion(version Version) Option {
	return func(c *Client) { c.transport.Version = string(version) }
}

// WithBetas enables beta features via the anthropic-beta header.
func WithBetas(betas ...Beta) Option {
	return func(c *Client) {
		for _, beta := range betas {
			c.transport.Betas = append(c.transport.Betas, string(beta))
		}
	}
}
