// Package streaming decodes the server-sent event stream produced by the
// Messages API into typed events.
//
// The decoder is a synchronous state machine over newline-delimited SSE
// frames: it owns one in-progress frame and nothing else. Each complete
// frame yields exactly one typed Event or one *DecodeError; malformed
// frames never poison the decoder, so callers can keep consuming after a
// decode failure. One decoder serves one stream; concurrent streams each
// get their own instance.
package streaming

import (
	"encoding/json"
	"fmt"

	"github.com/glacierlab/go-anthropic/pkg/anthropic/messages"
)

// EventType names a streaming event kind as it appears on the wire.
type EventType string

const (
	EventTypeMessageStart      EventType = "message_start"
	EventTypeContentBlockStart EventType = "content_block_start"
	EventTypeContentBlockDelta EventType = "content_block_delta"
	EventTypeContentBlockStop  EventType = "content_block_stop"
	EventTypeMessageDelta      EventType = "message_delta"
	EventTypeMessageStop       EventType = "message_stop"
	EventTypePing              EventType = "ping"
	EventTypeError             EventType = "error"
)

// Event is the sealed union of decoded streaming events. The unexported
// marker prevents external implementations.
type Event interface {
	Kind() EventType
	streamEvent()
}

// MessageStartEvent opens a message: the envelope with role, model, empty
// content, and usage so far.
type MessageStartEvent struct {
	Message messages.MessagesResponse `json:"message"`
}

func (MessageStartEvent) Kind() EventType { return EventTypeMessageStart }
func (MessageStartEvent) streamEvent()    {}

// ContentBlockStartEvent opens the content block at Index with an empty
// block of its declared type.
type ContentBlockStartEvent struct {
	Index        int
	ContentBlock messages.ContentBlock
}

func (ContentBlockStartEvent) Kind() EventType { return EventTypeContentBlockStart }
func (ContentBlockStartEvent) streamEvent()    {}

// UnmarshalJSON decodes the content block through the tagged union.
func (e *ContentBlockStartEvent) UnmarshalJSON(data []byte) error {
	var wire struct {
		Index        int             `json:"index"`
		ContentBlock json.RawMessage `json:"content_block"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	block, err := messages.DecodeContentBlock(wire.ContentBlock)
	if err != nil {
		return err
	}

	e.Index = wire.Index
	e.ContentBlock = block

	return nil
}

// ContentBlockDeltaEvent carries an incremental fragment for the content
// block at Index.
type ContentBlockDeltaEvent struct {
	Index int
	Delta Delta
}

func (ContentBlockDeltaEvent) Kind() EventType { return EventTypeContentBlockDelta }
func (ContentBlockDeltaEvent) streamEvent()    {}

// UnmarshalJSON dispatches the delta on its tagged type.
func (e *ContentBlockDeltaEvent) UnmarshalJSON(data []byte) error {
	var wire struct {
		Index int `json:"index"`
		Delta struct {
			Type        string `json:"type"`
			Text        string `json:"text"`
			PartialJSON string `json:"partial_json"`
		} `json:"delta"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	e.Index = wire.Index
	switch wire.Delta.Type {
	case "text_delta":
		e.Delta = TextDelta{Text: wire.Delta.Text}
	case "input_json_delta":
		e.Delta = InputJSONDelta{PartialJSON: wire.Delta.PartialJSON}
	default:
		return fmt.Errorf("anthropic: unknown delta type %q", wire.Delta.Type)
	}

	return nil
}

// Delta is the union of content block delta payloads.
type Delta interface {
	delta()
}

// TextDelta is an incremental text fragment.
type TextDelta struct {
	Text string
}

func (TextDelta) delta() {}

// InputJSONDelta is an incremental fragment of a tool_use input object.
// Fragments concatenate into the complete JSON arguments.
type InputJSONDelta struct {
	PartialJSON string
}

func (InputJSONDelta) delta() {}

// ContentBlockStopEvent marks the content block at Index complete.
type ContentBlockStopEvent struct {
	Index int `json:"index"`
}

func (ContentBlockStopEvent) Kind() EventType { return EventTypeContentBlockStop }
func (ContentBlockStopEvent) streamEvent()    {}

// MessageDeltaEvent carries top-level message updates: the stop reason
// and cumulative usage.
type MessageDeltaEvent struct {
	Delta MessageDelta        `json:"delta"`
	Usage messages.DeltaUsage `json:"usage"`
}

func (MessageDeltaEvent) Kind() EventType { return EventTypeMessageDelta }
func (MessageDeltaEvent) streamEvent()    {}

// MessageDelta is the field update payload of a message_delta event.
type MessageDelta struct {
	StopReason   messages.StopReason `json:"stop_reason,omitempty"`
	StopSequence string              `json:"stop_sequence,omitempty"`
}

// MessageStopEvent is the terminal event for the message.
type MessageStopEvent struct{}

func (MessageStopEvent) Kind() EventType { return EventTypeMessageStop }
func (MessageStopEvent) streamEvent()    {}

// PingEvent is a keep-alive with no payload semantics.
type PingEvent struct{}

func (PingEvent) Kind() EventType { return EventTypePing }
func (PingEvent) streamEvent()    {}

// ErrorEvent is a well-formed error event from the provider, delivered as
// a normal sequence item so the caller decides whether it is fatal.
type ErrorEvent struct {
	Error messages.ErrorDetail `json:"error"`
}

func (ErrorEvent) Kind() EventType { return EventTypeError }
func (ErrorEvent) streamEvent()    {}

// DecodeError reports one malformed or unrecognized event frame. It is
// recoverable: the decoder resets its frame and keeps processing, so
// callers may continue consuming the stream after observing it.
type DecodeError struct {
	// Event is the frame's event name, empty if none was received.
	Event string
	// Raw is the frame's joined data payload, kept for diagnostics.
	Raw string
	// Err is the underlying parse failure, nil for unrecognized names.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("anthropic: unknown stream event %q", e.Event)
	}

	return fmt.Sprintf(
		"anthropic: decode stream event %q: %v", e.Event, e.Err,
	)
}

func (e *DecodeError) Unwrap() error { return e.Err }
