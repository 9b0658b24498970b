package tools

import (
	"encoding/json"
	"fmt"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/glacierlab/go-anthropic/pkg/anthropic/messages"
)

// FromMCPGo converts tool definitions written with mcp-go (the mark3labs
// SDK) into Messages API tool definitions. A raw schema on the tool takes
// precedence over the structured one, matching mcp-go's own marshaling.
func FromMCPGo(mcpTools ...mcpgo.Tool) ([]messages.Tool, error) {
	tools := make([]messages.Tool, 0, len(mcpTools))
	for _, t := range mcpTools {
		schema := json.RawMessage(t.RawInputSchema)
		if schema == nil {
			encoded, err := json.Marshal(t.InputSchema)
			if err != nil {
				return nil, fmt.Errorf(
					"anthropic: encode input schema for mcp-go tool %q: %w",
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
