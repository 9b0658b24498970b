package messages

import "fmt"

// MessagesRequest is the request body for POST /v1/messages.
type MessagesRequest struct {
	Model         Model       `json:"model"`
	Messages      []Message   `json:"messages"`
	System        string      `json:"system,omitempty"`
	MaxTokens     int         `json:"max_tokens"`
	Metadata      *Metadata   `json:"metadata,omitempty"`
	StopSequences []string    `json:"stop_sequences,omitempty"`
	Stream        bool        `json:"stream,omitempty"`
	Temperature   *float64    `json:"temperature,omitempty"`
	TopP          *float64    `json:"top_p,omitempty"`
	TopK          *int        `json:"top_k,omitempty"`
	Tools         []Tool      `json:"tools,omitempty"`
	ToolChoice    *ToolChoice `json:"tool_choice,omitempty"`
}

// ValidationError reports a request field outside its published range.
type ValidationError struct {
	Field    string
	Expected string
	Actual   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"anthropic: invalid %s: expected %s, got %v",
		e.Field, e.Expected, e.Actual,
	)
}

// Validate checks the request against the vendor's published parameter
// ranges. Model-specific token limits apply only to models in the
// published table.
func (r *MessagesRequest) Validate() error {
	if len(r.Messages) == 0 {
		return &ValidationError{
			Field:    "messages",
			Expected: "at least one message",
			Actual:   0,
		}
	}
	if r.MaxTokens < 1 {
		return &ValidationError{
			Field:    "max_tokens",
			Expected: ">= 1",
			Actual:   r.MaxTokens,
		}
	}
	if limit := r.Model.MaxOutputTokens(); limit > 0 && r.MaxTokens > limit {
		return &ValidationError{
			Field:    "max_tokens",
			Expected: fmt.Sprintf("<= %d for %s", limit, r.Model),
			Actual:   r.MaxTokens,
		}
	}
	if r.Temperature != nil && (*r.Temperature < 0 || *r.Temperature > 1) {
		return &ValidationError{
			Field:    "temperature",
			Expected: "in [0.0, 1.0]",
			Actual:   *r.Temperature,
		}
	}
	if r.TopP != nil && (*r.TopP < 0 || *r.TopP > 1) {
		return &ValidationError{
			Field:    "top_p",
			Expected: "in [0.0, 1.0]",
			Actual:   *r.TopP,
		}
	}
	if r.TopK != nil && *r.TopK < 1 {
		return &ValidationError{
			Field:    "top_k",
			Expected: ">= 1",
			Actual:   *r.TopK,
		}
	}

	return nil
}
