// Package main demonstrates consuming a streamed message response.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/glacierlab/go-anthropic/pkg/anthropic"
	"github.com/glacierlab/go-anthropic/pkg/anthropic/messages"
	"github.com/glacierlab/go-anthropic/pkg/anthropic/streaming"
)

func main() {
	ctx := context.Background()

	client, err := anthropic.NewClientFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	stream, err := client.CreateMessageStream(ctx, &messages.MessagesRequest{
		Model: messages.ModelClaude3Sonnet20240229,
		Messages: []messages.Message{
			messages.NewUserMessage("Write a haiku about the sea."),
		},
		MaxTokens: 256,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer stream.Close()

	for event, err := range stream.All() {
		if err != nil {
			// Decode errors are recoverable; anything else ended the stream.
			log.Printf("stream: %v", err)

			continue
		}

		switch event := event.(type) {
		case streaming.ContentBlockDeltaEvent:
			if delta, ok := event.Delta.(streaming.TextDelta); ok {
				fmt.Print(delta.Text)
			}
		case streaming.MessageDeltaEvent:
			fmt.Printf("\n[stop: %s]\n", event.Delta.StopReason)
		case streaming.ErrorEvent:
			fmt.Fprintf(
				os.Stderr,
				"API error: %s: %s\n",
				event.Error.Type,
				event.Error.Message,
			)
		}
	}
}
