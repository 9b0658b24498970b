// Package main demonstrates tool use: the model requests a tool call, the
// program executes it and reports the result for the final answer.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/glacierlab/go-anthropic/pkg/anthropic"
	"github.com/glacierlab/go-anthropic/pkg/anthropic/messages"
	"github.com/glacierlab/go-anthropic/pkg/anthropic/tools"
)

// weatherInput is the argument schema for the get_weather tool.
type weatherInput struct {
	Location string `json:"location" jsonschema:"description=The city and state"`
}

func main() {
	ctx := context.Background()

	client, err := anthropic.NewClientFromEnv(
		anthropic.WithBetas(anthropic.BetaTools20240404),
	)
	if err != nil {
		log.Fatal(err)
	}

	weatherTool := tools.MustNew[weatherInput](
		"get_weather",
		"Retrieves the current weather for a specified location.",
	)

	conversation := []messages.Message{
		messages.NewUserMessage("What is the weather in Paris?"),
	}

	resp, err := client.CreateMessage(ctx, &messages.MessagesRequest{
		Model:     messages.ModelClaude3Sonnet20240229,
		Messages:  conversation,
		MaxTokens: 1024,
		Tools:     []messages.Tool{weatherTool},
	})
	if err != nil {
		log.Fatal(err)
	}

	if resp.StopReason != messages.StopReasonToolUse {
		fmt.Println(resp.Text())

		return
	}

	// Answer every tool call and ask for the final message.
	conversation = append(
		conversation,
		messages.Message{Role: resp.Role, Content: resp.Content},
	)
	var results []messages.ContentBlock
	for _, use := range resp.ToolUses() {
		input, err := tools.DecodeInput[weatherInput](use)
		if err != nil {
			log.Fatal(err)
		}
		results = append(results, messages.ToolResultBlock{
			ToolUseID: use.ID,
			Content: messages.StringContent(
				fmt.Sprintf("15 degrees and cloudy in %s", input.Location),
			),
		})
	}
	conversation = append(conversation, messages.NewUserMessageBlocks(results...))

	final, err := client.CreateMessage(ctx, &messages.MessagesRequest{
		Model:     messages.ModelClaude3Sonnet20240229,
		Messages:  conversation,
		MaxTokens: 1024,
		Tools:     []messages.Tool{weatherTool},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(final.Text())
}
