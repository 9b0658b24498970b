package streaming

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("anthropic: stream closed")

// TransportError wraps a failure of the underlying byte stream. It is a
// different category than *DecodeError: transport failures terminate the
// event sequence, decode failures do not.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("anthropic: stream transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Stream is a lazy, single-pass sequence of streaming events read from an
// HTTP response body. It is not safe for concurrent use; each concurrent
// response gets its own Stream.
type Stream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	decoder Decoder

	// Terminal state, sticky once set: io.EOF, *TransportError, or
	// ErrClosed. Decode errors are never stored here.
	err error
}

// maxLineSize bounds one SSE line. Data lines carry whole JSON payloads,
// so the default scanner limit is too small.
const maxLineSize = 1 << 20

// NewStream creates a stream over the given body. The stream takes
// ownership of the body and closes it via Close.
func NewStream(body io.ReadCloser) *Stream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &Stream{body: body, scanner: scanner}
}

// Next returns the next event, blocking until the transport delivers
// enough lines to complete a frame.
//
// A returned *DecodeError covers one malformed frame only; the caller may
// keep calling Next. io.EOF signals clean end of stream and any other
// error is a terminal *TransportError; both are sticky. An unterminated
// trailing frame at end of stream is discarded without emission.
func (s *Stream) Next() (Event, error) {
	if s.err != nil {
		return nil, s.err
	}

	for s.scanner.Scan() {
		line := strings.TrimSuffix(s.scanner.Text(), "\r")

		event, err := s.decoder.Feed(line)
		if err != nil {
			return nil, err
		}
		if event != nil {
			return event, nil
		}
	}

	if err := s.scanner.Err(); err != nil {
		s.err = &TransportError{Err: err}
	} else {
		s.err = io.EOF
	}

	return nil, s.err
}

// All returns a single-use iterator over the remaining events. Decode
// errors are yielded with a nil event and iteration continues; a
// transport failure is yielded once and ends iteration; clean end of
// stream ends iteration without a yield.
func (s *Stream) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			event, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(event, err) {
				return
			}
			if err != nil {
				var decodeErr *DecodeError
				if !errors.As(err, &decodeErr) {
					return
				}
			}
		}
	}
}

// Close releases the underlying response body. It is safe to call Close
// before the stream is exhausted; a partially-built frame is abandoned.
func (s *Stream) Close() error {
	if s.err == nil {
		s.err = ErrClosed
	}

	return s.body.Close()
}
