package messages

// StopReason explains why generation stopped. It is null in streaming
// message_start events and non-null everywhere else.
type StopReason string

const (
	StopReasonEndTurn      StopReason = "end_turn"
	StopReasonMaxTokens    StopReason = "max_tokens"
	StopReasonStopSequence StopReason = "stop_sequence"
	StopReasonToolUse      StopReason = "tool_use"
)

// MessagesResponse is the response body for POST /v1/messages and the
// message envelope carried by streaming message_start events.
type MessagesResponse struct {
	ID           string           `json:"id"`
	Type         string           `json:"type"`
	Role         Role             `json:"role"`
	Content      BlockListContent `json:"content"`
	Model        Model            `json:"model"`
	StopReason   StopReason       `json:"stop_reason,omitempty"`
	StopSequence string           `json:"stop_sequence,omitempty"`
	Usage        Usage            `json:"usage"`
}

// Text concatenates text blocks of the response content.
func (r *MessagesResponse) Text() string {
	return r.Content.Text()
}

// ToolUses returns the tool_use blocks of the response content, in order.
func (r *MessagesResponse) ToolUses() []ToolUseBlock {
	var uses []ToolUseBlock
	for _, block := range r.Content {
		if use, ok := block.(ToolUseBlock); ok {
			uses = append(uses, use)
		}
	}

	return uses
}

// Usage is the cumulative billing and rate-limit token usage.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// DeltaUsage is the usage update carried by message_delta events.
// Output tokens are cumulative, not incremental.
type DeltaUsage struct {
	OutputTokens int `json:"output_tokens"`
}

// ErrorResponse is the vendor error envelope, both as an HTTP error body
// and as the payload of streaming error events.
type ErrorResponse struct {
	Type  string      `json:"type"`
	Error ErrorDetail `json:"error"`
}

// ErrorDetail is the vendor error code and message.
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
