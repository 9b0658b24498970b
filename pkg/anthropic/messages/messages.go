// Package messages defines the request and response schema for the
// Anthropic Messages API.
//
// The types in this package mirror the vendor's JSON wire format exactly:
// discriminated unions (message content, content blocks) are modeled as
// sealed interfaces with custom JSON (de)serialization keyed on the
// vendor's "type" field.
package messages

import (
	"encoding/json"
	"fmt"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversational turn.
type Message struct {
	Role    Role
	Content MessageContent
}

// NewUserMessage creates a user message from plain text.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Content: StringContent(text)}
}

// NewUserMessageBlocks creates a user message from content blocks.
func NewUserMessageBlocks(blocks ...ContentBlock) Message {
	return Message{Role: RoleUser, Content: BlockListContent(blocks)}
}

// NewAssistantMessage creates an assistant message from plain text.
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: StringContent(text)}
}

// NewAssistantMessageBlocks creates an assistant message from content blocks.
func NewAssistantMessageBlocks(blocks ...ContentBlock) Message {
	return Message{Role: RoleAssistant, Content: BlockListContent(blocks)}
}

type messageWire struct {
	Role    Role            `json:"role"`
	Content json.RawMessage `json:"content"`
}

// MarshalJSON encodes the content as either a plain string or a block
// array, matching the vendor's string-or-blocks union.
func (m Message) MarshalJSON() ([]byte, error) {
	if m.Content == nil {
		return nil, fmt.Errorf("anthropic: message with nil content")
	}
	content, err := json.Marshal(m.Content)
	if err != nil {
		return nil, err
	}

	return json.Marshal(messageWire{Role: m.Role, Content: content})
}

// UnmarshalJSON decodes content delivered as either form of the union.
func (m *Message) UnmarshalJSON(data []byte) error {
	var wire messageWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	content, err := decodeMessageContent(wire.Content)
	if err != nil {
		return err
	}

	m.Role = wire.Role
	m.Content = content

	return nil
}

func decodeMessageContent(raw json.RawMessage) (MessageContent, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("anthropic: message without content")
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}

		return StringContent(s), nil
	case '[':
		var blocks BlockListContent
		if err := json.Unmarshal(raw, &blocks); err != nil {
			return nil, err
		}

		return blocks, nil
	default:
		return nil, fmt.Errorf(
			"anthropic: message content must be a string or an array, got %s",
			raw,
		)
	}
}

// MessageContent is the string-or-blocks union for message content.
type MessageContent interface {
	messageContent()
}

// StringContent is plain-text message content.
type StringContent string

func (StringContent) messageContent() {}

// BlockListContent is message content made of typed blocks.
type BlockListContent []ContentBlock

func (BlockListContent) messageContent() {}

// UnmarshalJSON decodes each element through the content block union.
func (b *BlockListContent) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	blocks := make(BlockListContent, 0, len(raws))
	for _, raw := range raws {
		block, err := DecodeContentBlock(raw)
		if err != nil {
			return err
		}
		blocks = append(blocks, block)
	}
	*b = blocks

	return nil
}

// Text concatenates the text of all text blocks, in order.
func (b BlockListContent) Text() string {
	var out string
	for _, block := range b {
		if t, ok := block.(TextBlock); ok {
			out += t.Text
		}
	}

	return out
}
