package streaming_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/glacierlab/go-anthropic/pkg/anthropic/streaming"
)

const messageFixture = `event: message_start
data: {"type": "message_start", "message": {"id": "msg_1nZdL29xx5MUA1yADyHTEsnR8uuvGzszyY", "type": "message", "role": "assistant", "content": [], "model": "claude-3-opus-20240229", "stop_reason": null, "stop_sequence": null, "usage": {"input_tokens": 25, "output_tokens": 1}}}

event: content_block_start
data: {"type": "content_block_start", "index": 0, "content_block": {"type": "text", "text": ""}}

event: ping
data: {"type": "ping"}

event: content_block_delta
data: {"type": "content_block_delta", "index": 0, "delta": {"type": "text_delta", "text": "Hello"}}

event: content_block_delta
data: {"type": "content_block_delta", "index": 0, "delta": {"type": "text_delta", "text": "!"}}

event: content_block_stop
data: {"type": "content_block_stop", "index": 0}

event: message_delta
data: {"type": "message_delta", "delta": {"stop_reason": "end_turn", "stop_sequence": null}, "usage": {"output_tokens": 15}}

event: message_stop
data: {"type": "message_stop"}

`

func newFixtureStream(source string) *streaming.Stream {
	return streaming.NewStream(io.NopCloser(strings.NewReader(source)))
}

func TestStreamFullMessage(t *testing.T) {
	s := newFixtureStream(messageFixture)
	defer s.Close()

	wantKinds := []streaming.EventType{
		streaming.EventTypeMessageStart,
		streaming.EventTypeContentBlockStart,
		streaming.EventTypePing,
		streaming.EventTypeContentBlockDelta,
		streaming.EventTypeContentBlockDelta,
		streaming.EventTypeContentBlockStop,
		streaming.EventTypeMessageDelta,
		streaming.EventTypeMessageStop,
	}

	var text string
	for i, want := range wantKinds {
		event, err := s.Next()
		if err != nil {
			t.Fatalf("event %d: unexpected error: %v", i, err)
		}
		if event.Kind() != want {
			t.Fatalf("event %d: expected %s, got %s", i, want, event.Kind())
		}
		if delta, ok := event.(streaming.ContentBlockDeltaEvent); ok {
			text += delta.Delta.(streaming.TextDelta).Text
		}
		if delta, ok := event.(streaming.MessageDeltaEvent); ok {
			if delta.Delta.StopReason != "end_turn" {
				t.Errorf("expected end_turn, got %q", delta.Delta.StopReason)
			}
			if delta.Usage.OutputTokens != 15 {
				t.Errorf("expected 15 output tokens, got %d", delta.Usage.OutputTokens)
			}
		}
	}
	if text != "Hello!" {
		t.Errorf("expected accumulated text %q, got %q", "Hello!", text)
	}

	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after final event, got %v", err)
	}
	// Terminal state is sticky.
	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF to be sticky, got %v", err)
	}
}

func TestStreamMessageStopThenTermination(t *testing.T) {
	s := newFixtureStream("event: message_stop\ndata: {}\n\n")
	defer s.Close()

	event, err := s.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := event.(streaming.MessageStopEvent); !ok {
		t.Fatalf("expected MessageStopEvent, got %T", event)
	}

	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestStreamDiscardsUnterminatedTrailingFrame(t *testing.T) {
	// Event name and data present, but no trailing blank line.
	s := newFixtureStream(
		"event: ping\ndata: {\"type\": \"ping\"}\n\n" +
			"event: message_delta\ndata: {\"type\": \"message_delta\"",
	)
	defer s.Close()

	event, err := s.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := event.(streaming.PingEvent); !ok {
		t.Fatalf("expected PingEvent, got %T", event)
	}

	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("truncated frame must end the stream cleanly, got %v", err)
	}
}

func TestStreamCRLFLines(t *testing.T) {
	s := newFixtureStream("event: ping\r\ndata: {\"type\": \"ping\"}\r\n\r\n")
	defer s.Close()

	event, err := s.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := event.(streaming.PingEvent); !ok {
		t.Fatalf("expected PingEvent, got %T", event)
	}
}

func TestStreamContinuesAfterDecodeError(t *testing.T) {
	s := newFixtureStream(
		"event: telemetry\ndata: {\"type\": \"telemetry\"}\n\n" +
			"event: message_stop\ndata: {}\n\n",
	)
	defer s.Close()

	_, err := s.Next()
	var decodeErr *streaming.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}

	event, err := s.Next()
	if err != nil {
		t.Fatalf("stream must continue past a decode error, got %v", err)
	}
	if _, ok := event.(streaming.MessageStopEvent); !ok {
		t.Fatalf("expected MessageStopEvent, got %T", event)
	}
}

// failingReader delivers some bytes, then a read failure.
type failingReader struct {
	data string
	err  error
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true

		return copy(p, r.data), nil
	}

	return 0, r.err
}

func (r *failingReader) Close() error { return nil }

func TestStreamTransportErrorIsTerminal(t *testing.T) {
	cause := errors.New("connection reset")
	s := streaming.NewStream(&failingReader{
		data: "event: ping\ndata: {\"type\": \"ping\"}\n\n",
		err:  cause,
	})
	defer s.Close()

	if _, err := s.Next(); err != nil {
		t.Fatalf("unexpected error before failure: %v", err)
	}

	_, err := s.Next()
	var transportErr *streaming.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("transport error must wrap the cause")
	}

	// Sticky: the same terminal error again, not io.EOF.
	if _, err := s.Next(); !errors.As(err, &transportErr) {
		t.Fatalf("expected sticky transport error, got %v", err)
	}
}

func TestStreamAllIterator(t *testing.T) {
	s := newFixtureStream(
		"event: telemetry\ndata: {}\n\n" +
			"event: ping\ndata: {\"type\": \"ping\"}\n\n" +
			"event: message_stop\ndata: {}\n\n",
	)
	defer s.Close()

	var kinds []streaming.EventType
	var decodeErrs int
	for event, err := range s.All() {
		if err != nil {
			var decodeErr *streaming.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("unexpected terminal error: %v", err)
			}
			decodeErrs++

			continue
		}
		kinds = append(kinds, event.Kind())
	}

	if decodeErrs != 1 {
		t.Errorf("expected one decode error, got %d", decodeErrs)
	}
	want := []streaming.EventType{
		streaming.EventTypePing,
		streaming.EventTypeMessageStop,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestStreamCloseBeforeExhaustion(t *testing.T) {
	s := newFixtureStream(messageFixture)

	if _, err := s.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, err := s.Next(); !errors.Is(err, streaming.ErrClosed) {
		t.Fatalf("expected ErrClosed after Close, got %v", err)
	}
}
