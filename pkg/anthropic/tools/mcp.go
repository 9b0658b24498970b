package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/glacierlab/go-anthropic/pkg/anthropic/messages"
)

// FromMCP converts MCP tool definitions into Messages API tool
// definitions. Tools without an input schema get an empty object schema,
// which the API requires.
func FromMCP(mcpTools []*mcp.Tool) ([]messages.Tool, error) {
	tools := make([]messages.Tool, 0, len(mcpTools))
	for _, t := range mcpTools {
		schema := json.RawMessage(`{"type":"object"}`)
		if t.InputSchema != nil {
			encoded, err := json.Marshal(t.InputSchema)
			if err != nil {
				return nil, fmt.Errorf(
					"anthropic: encode input schema for MCP tool %q: %w",
					t.Name, err,
				)
			}
			schema = encoded
		}
		tools = append(tools, messages.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: schema,
		})
	}

	return tools, nil
}

// ListMCPTools lists the tools of a connected MCP session as Messages API
// tool definitions, ready to put on a request.
func ListMCPTools(
	ctx context.Context,
	session *mcp.ClientSession,
) ([]messages.Tool, error) {
	result, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, fmt.Errorf("anthropic: list MCP tools: %w", err)
	}

	return FromMCP(result.Tools)
}

// CallMCPTool dispatches a tool_use block to the MCP session and packages
// the outcome as the tool_result block for the next user message. MCP
// execution errors (IsError results) become error tool results rather
// than Go errors, so the model can observe and recover from them.
func CallMCPTool(
	ctx context.Context,
	session *mcp.ClientSession,
	block messages.ToolUseBlock,
) (messages.ToolResultBlock, error) {
	var args map[string]any
	if len(block.Input) > 0 {
		if err := json.Unmarshal(block.Input, &args); err != nil {
			return messages.ToolResultBlock{}, fmt.Errorf(
				"anthropic: decode input for MCP tool %q: %w",
				block.Name, err,
			)
		}
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      block.Name,
		Arguments: args,
	})
	if err != nil {
		return messages.ToolResultBlock{}, fmt.Errorf(
			"anthropic: call MCP tool %q: %w", block.Name, err,
		)
	}

	return messages.ToolResultBlock{
		ToolUseID: block.ID,
		Content:   messages.StringContent(flattenMCPContent(result.Content)),
		IsError:   result.IsError,
	}, nil
}

// flattenMCPContent joins the textual parts of an MCP result. Non-text
// parts carry no representation in a tool_result and are skipped.
func flattenMCPContent(content []mcp.Content) string {
	var out string
	for _, part := range content {
		if text, ok := part.(*mcp.TextContent); ok {
			out += text.Text
		}
	}

	return out
}
