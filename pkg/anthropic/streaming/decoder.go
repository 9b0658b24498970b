package streaming

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Decoder assembles newline-stripped SSE lines into typed events. The
// zero value is ready to use. A Decoder must not be fed from multiple
// goroutines.
type Decoder struct {
	// In-progress frame: event name plus data fragments in arrival order.
	event string
	data  []string
}

// Feed consumes one line and returns at most one emission.
//
// A blank line terminates the frame: an empty frame is stream padding and
// produces nothing; otherwise the data fragments are joined with newlines,
// parsed as JSON, and dispatched by event name. The frame is reset either
// way, so a failed frame never affects later ones.
//
// "event:" lines set the frame's event name; a repeated "event:" line
// overwrites the earlier value (deliberate leniency, vendors repeat the
// field defensively). "data:" lines append fragments. Any other non-blank
// line is ignored for forward compatibility.
func (d *Decoder) Feed(line string) (Event, error) {
	if line == "" {
		if d.event == "" && len(d.data) == 0 {
			return nil, nil
		}

		return d.finalize()
	}

	if rest, ok := strings.CutPrefix(line, "event:"); ok {
		d.event = strings.TrimPrefix(rest, " ")

		return nil, nil
	}
	if rest, ok := strings.CutPrefix(line, "data:"); ok {
		d.data = append(d.data, strings.TrimPrefix(rest, " "))

		return nil, nil
	}

	// Comment or unknown field.
	return nil, nil
}

// finalize decodes the completed frame and resets the buffer.
func (d *Decoder) finalize() (Event, error) {
	name := d.event
	payload := strings.Join(d.data, "\n")
	d.event = ""
	d.data = nil

	decode, ok := eventDecoders[EventType(name)]
	if !ok {
		return nil, &DecodeError{Event: name, Raw: payload}
	}

	event, err := decode([]byte(payload))
	if err != nil {
		return nil, &DecodeError{Event: name, Raw: payload, Err: err}
	}

	return event, nil
}

// eventDecoders is the static dispatch table from event name to payload
// decoder. It must match the vendor schema exactly.
var eventDecoders = map[EventType]func([]byte) (Event, error){
	EventTypeMessageStart: func(data []byte) (Event, error) {
		var event MessageStartEvent
		err := json.Unmarshal(data, &event)

		return event, err
	},
	EventTypeContentBlockStart: func(data []byte) (Event, error) {
		var event ContentBlockStartEvent
		err := json.Unmarshal(data, &event)

		return event, err
	},
	EventTypeContentBlockDelta: func(data []byte) (Event, error) {
		var event ContentBlockDeltaEvent
		err := json.Unmarshal(data, &event)

		return event, err
	},
	EventTypeContentBlockStop: func(data []byte) (Event, error) {
		var event ContentBlockStopEvent
		err := json.Unmarshal(data, &event)

		return event, err
	},
	EventTypeMessageDelta: func(data []byte) (Event, error) {
		var event MessageDeltaEvent
		err := json.Unmarshal(data, &event)

		return event, err
	},
	EventTypeMessageStop: func(data []byte) (Event, error) {
		if err := checkOptionalPayload(data); err != nil {
			return nil, err
		}

		return MessageStopEvent{}, nil
	},
	EventTypePing: func(data []byte) (Event, error) {
		if err := checkOptionalPayload(data); err != nil {
			return nil, err
		}

		return PingEvent{}, nil
	},
	EventTypeError: func(data []byte) (Event, error) {
		var wire struct {
			Error json.RawMessage `json:"error"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		var event ErrorEvent
		if err := json.Unmarshal(wire.Error, &event.Error); err != nil {
			return nil, err
		}

		return event, nil
	},
}

// checkOptionalPayload validates events whose payload carries no fields
// beyond the type tag. Some streams omit the data line entirely (e.g. for
// ping), which is accepted as an empty payload.
func checkOptionalPayload(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var payload struct{}

	return json.Unmarshal(data, &payload)
}
