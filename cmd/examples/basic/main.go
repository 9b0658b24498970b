// Package main demonstrates a single (non-streaming) message request.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/glacierlab/go-anthropic/pkg/anthropic"
	"github.com/glacierlab/go-anthropic/pkg/anthropic/messages"
)

func main() {
	ctx := context.Background()

	client, err := anthropic.NewClientFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	resp, err := client.CreateMessage(ctx, &messages.MessagesRequest{
		Model: messages.ModelClaude3Sonnet20240229,
		Messages: []messages.Message{
			messages.NewUserMessage("Where is the capital of France?"),
		},
		System:    "You are an excellent AI assistant.",
		MaxTokens: 1024,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(resp.Text())
	fmt.Printf(
		"tokens: %d in, %d out\n",
		resp.Usage.InputTokens,
		resp.Usage.OutputTokens,
	)
}
