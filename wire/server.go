package wire

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/safedep/hashbridge/host"
)

// Summary counts what a Serve call processed.
type Summary struct {
	Requests int `json:"requests"`
	Faults   int `json:"faults"`
}

// Server dispatches wire requests to a loaded module.
type Server struct {
	module *host.Module
	codec  Codec
}

// NewServer creates a server for module using codec.
func NewServer(module *host.Module, codec Codec) *Server {
	return &Server{
		module: module,
		codec:  codec,
	}
}

// Handle dispatches a single request. It never returns nil.
func (s *Server) Handle(req *Request) *Response {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	if req.Function == "" {
		return &Response{
			ID:    id,
			Error: &Fault{Kind: FaultUnknownFunction, Message: "request has no function name"},
		}
	}

	result, err := s.module.Call(req.Function, req.Values()...)
	if err != nil {
		return &Response{ID: id, Error: NewFault(err)}
	}

	return &Response{ID: id, Result: result.Native()}
}

// Serve reads requests from r until EOF and writes one response per request
// to w. A frame that is not well-formed ends the stream because framing cannot
// be recovered; a well-formed frame that is not a valid request gets an
// invalid_request fault and the stream continues. Cancellation is checked
// between requests.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) (*Summary, error) {
	frames := s.codec.NewFrameReader(r)
	enc := s.codec.NewEncoder(w)
	summary := &Summary{}

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		frame, err := frames.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return summary, nil
			}
			return summary, fmt.Errorf("decoding %s request: %w", s.codec.Name(), err)
		}

		resp := s.handleFrame(frame)
		summary.Requests++
		if resp.Error != nil {
			summary.Faults++
		}

		if err := enc.Encode(resp); err != nil {
			return summary, fmt.Errorf("encoding %s response: %w", s.codec.Name(), err)
		}
	}
}

func (s *Server) handleFrame(frame []byte) *Response {
	var req Request
	if err := s.codec.Unmarshal(frame, &req); err != nil {
		return &Response{
			ID: s.frameID(frame),
			Error: &Fault{
				Kind:    FaultInvalidRequest,
				Message: fmt.Sprintf("invalid %s request: %v", s.codec.Name(), err),
			},
		}
	}
	return s.Handle(&req)
}

// frameID recovers the caller's request ID from a frame that failed to decode
// as a Request, so the fault can still be correlated. Non-string IDs are
// rendered as text.
func (s *Server) frameID(frame []byte) string {
	var envelope struct {
		ID any `json:"id" cbor:"id"`
	}
	if err := s.codec.Unmarshal(frame, &envelope); err != nil {
		return uuid.NewString()
	}

	switch id := envelope.ID.(type) {
	case nil:
		return uuid.NewString()
	case string:
		if id == "" {
			return uuid.NewString()
		}
		return id
	default:
		return fmt.Sprint(id)
	}
}
