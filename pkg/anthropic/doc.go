// Package anthropic provides an unofficial client for the Anthropic
// Messages API.
//
// This package wraps request construction, authentication headers,
// response parsing, and server-sent-event streaming decoding behind a
// typed interface for creating messages and consuming their streamed
// responses.
package anthropic
