// Package tools builds Messages API tool definitions.
//
// Definitions come from three sources: Go structs (input schemas
// reflected via JSON Schema), tools exposed by MCP servers through the
// official MCP Go SDK, and tool definitions written with mcp-go. The
// package also dispatches tool_use blocks back to an MCP session and
// packages the outcome as a tool_result block.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/glacierlab/go-anthropic/pkg/anthropic/messages"
)

// New builds a tool definition whose input schema is reflected from the
// struct type T. Schema details (descriptions, required fields) follow
// the json and jsonschema struct tags.
func New[T any](name, description string) (messages.Tool, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	var input T
	schema, err := json.Marshal(reflector.Reflect(&input))
	if err != nil {
		return messages.Tool{}, fmt.Errorf(
			"anthropic: reflect input schema for tool %q: %w", name, err,
		)
	}

	return messages.Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
	}, nil
}

// MustNew is New for static tool definitions; it panics on schema
// reflection failure.
func MustNew[T any](name, description string) messages.Tool {
	tool, err := New[T](name, description)
	if err != nil {
		panic(err)
	}

	return tool
}

// DecodeInput decodes a tool_use input into the tool's argument struct.
func DecodeInput[T any](block messages.ToolUseBlock) (T, error) {
	var input T
	if err := json.Unmarshal(block.Input, &input); err != nil {
		return input, fmt.Errorf(
			"anthropic: decode input for tool %q: %w", block.Name, err,
		)
	}

	return input, nil
}
