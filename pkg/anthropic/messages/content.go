package messages

import (
	"encoding/json"
	"fmt"
)

// ContentBlock is the discriminated union of message content blocks.
// The concrete types marshal to the vendor's tagged JSON objects.
type ContentBlock interface {
	contentBlock()
}

// TextBlock is a text content block.
type TextBlock struct {
	Text string
}

func (TextBlock) contentBlock() {}

// ImageBlock is a base64-encoded image content block.
type ImageBlock struct {
	Source ImageSource
}

func (ImageBlock) contentBlock() {}

// ImageSource carries the encoded image payload.
type ImageSource struct {
	Type      ImageSourceType `json:"type"`
	MediaType ImageMediaType  `json:"media_type"`
	Data      string          `json:"data"`
}

// ImageSourceType is the encoding of an image source.
type ImageSourceType string

const ImageSourceBase64 ImageSourceType = "base64"

// ImageMediaType is the media type of an image source.
type ImageMediaType string

const (
	ImageMediaTypeJPEG ImageMediaType = "image/jpeg"
	ImageMediaTypePNG  ImageMediaType = "image/png"
	ImageMediaTypeGIF  ImageMediaType = "image/gif"
	ImageMediaTypeWebP ImageMediaType = "image/webp"
)

// NewImageBlock creates a base64 image block.
func NewImageBlock(mediaType ImageMediaType, data string) ImageBlock {
	return ImageBlock{Source: ImageSource{
		Type:      ImageSourceBase64,
		MediaType: mediaType,
		Data:      data,
	}}
}

// ToolUseBlock is the model's request to invoke a tool. Input is the raw
// JSON arguments object, left for the caller to decode against the tool's
// own input schema.
type ToolUseBlock struct {
	ID    string
	Name  string
	Input json.RawMessage
}

func (ToolUseBlock) contentBlock() {}

// ToolResultBlock reports the outcome of a tool invocation back to the
// model. Content follows the same string-or-blocks union as messages.
type ToolResultBlock struct {
	ToolUseID string
	Content   MessageContent
	IsError   bool
}

func (ToolResultBlock) contentBlock() {}

type textBlockWire struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type imageBlockWire struct {
	Type   string      `json:"type"`
	Source ImageSource `json:"source"`
}

type toolUseBlockWire struct {
	Type  string          `json:"type"`
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

type toolResultBlockWire struct {
	Type      string          `json:"type"`
	ToolUseID string          `json:"tool_use_id"`
	Content   json.RawMessage `json:"content,omitempty"`
	IsError   bool            `json:"is_error,omitempty"`
}

// MarshalJSON tags the block with its vendor type.
func (b TextBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(textBlockWire{Type: "text", Text: b.Text})
}

// MarshalJSON tags the block with its vendor type.
func (b ImageBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(imageBlockWire{Type: "image", Source: b.Source})
}

// MarshalJSON tags the block with its vendor type.
func (b ToolUseBlock) MarshalJSON() ([]byte, error) {
	input := b.Input
	if input == nil {
		input = json.RawMessage(`{}`)
	}

	return json.Marshal(toolUseBlockWire{
		Type:  "tool_use",
		ID:    b.ID,
		Name:  b.Name,
		Input: input,
	})
}

// MarshalJSON tags the block with its vendor type.
func (b ToolResultBlock) MarshalJSON() ([]byte, error) {
	wire := toolResultBlockWire{
		Type:      "tool_result",
		ToolUseID: b.ToolUseID,
		IsError:   b.IsError,
	}
	if b.Content != nil {
		content, err := json.Marshal(b.Content)
		if err != nil {
			return nil, err
		}
		wire.Content = content
	}

	return json.Marshal(wire)
}

// DecodeContentBlock decodes one tagged content block object into its
// concrete type, dispatching on the vendor's "type" field.
func DecodeContentBlock(data []byte) (ContentBlock, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case "text":
		var wire textBlockWire
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}

		return TextBlock{Text: wire.Text}, nil
	case "image":
		var wire imageBlockWire
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}

		return ImageBlock{Source: wire.Source}, nil
	case "tool_use":
		var wire toolUseBlockWire
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}

		return ToolUseBlock{ID: wire.ID, Name: wire.Name, Input: wire.Input}, nil
	case "tool_result":
		var wire toolResultBlockWire
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		block := ToolResultBlock{ToolUseID: wire.ToolUseID, IsError: wire.IsError}
		if len(wire.Content) > 0 {
			content, err := decodeMessageContent(wire.Content)
			if err != nil {
				return nil, err
			}
			block.Content = content
		}

		return block, nil
	default:
		return nil, fmt.Errorf(
			"anthropic: unknown content block type %q",
			probe.Type,
		)
	}
}
