package messages

import "encoding/json"

// Tool is a tool definition the model may invoke. InputSchema is a JSON
// Schema object describing the tool's arguments.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// ToolChoiceType selects how the model picks among the provided tools.
type ToolChoiceType string

const (
	// ToolChoiceAuto lets the model decide whether to use a tool.
	ToolChoiceAuto ToolChoiceType = "auto"
	// ToolChoiceAny forces the model to use one of the provided tools.
	ToolChoiceAny ToolChoiceType = "any"
	// ToolChoiceTool forces the model to use the named tool.
	ToolChoiceTool ToolChoiceType = "tool"
)

// ToolChoice constrains the model's tool selection. Name is required only
// for ToolChoiceTool.
type ToolChoice struct {
	Type ToolChoiceType `json:"type"`
	Name string         `json:"name,omitempty"`
}
