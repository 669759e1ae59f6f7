package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Codec names.
const (
	CodecJSON = "json"
	CodecCBOR = "cbor"
)

// FrameReader reads successive well-formed frames without interpreting them.
// ReadFrame returns io.EOF when the stream ends cleanly.
type FrameReader interface {
	ReadFrame() ([]byte, error)
}

// Encoder writes successive frames.
type Encoder interface {
	Encode(v any) error
}

// Codec frames and decodes messages of one wire format. Framing and decoding
// are separate steps so that a well-formed frame holding the wrong shape can be
// rejected without losing the rest of the stream.
type Codec interface {
	Name() string
	NewFrameReader(r io.Reader) FrameReader
	NewEncoder(w io.Writer) Encoder
	Unmarshal(data []byte, v any) error
}

// NewCodec returns the codec registered under name.
func NewCodec(name string) (Codec, error) {
	switch name {
	case CodecJSON, "":
		return jsonCodec{}, nil
	case CodecCBOR:
		return cborCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %q (must be json or cbor)", name)
	}
}

// jsonCodec frames messages as newline-delimited JSON.
type jsonCodec struct{}

func (jsonCodec) Name() string { return CodecJSON }

func (jsonCodec) NewFrameReader(r io.Reader) FrameReader {
	return &jsonFrameReader{dec: json.NewDecoder(r)}
}

// Unmarshal keeps numbers as json.Number so that integers survive intact.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func (jsonCodec) NewEncoder(w io.Writer) Encoder {
	return json.NewEncoder(w)
}

// cbor encoding uses Core Deterministic Encoding so that identical responses
// produce identical bytes.
var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("wire: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("wire: CBOR decoder initialization failed: " + err.Error())
	}
}

// cborCodec frames messages as a CBOR sequence (RFC 8742).
type cborCodec struct{}

func (cborCodec) Name() string { return CodecCBOR }

func (cborCodec) NewFrameReader(r io.Reader) FrameReader {
	return &cborFrameReader{dec: cborDecMode.NewDecoder(r)}
}

func (cborCodec) Unmarshal(data []byte, v any) error {
	return cborDecMode.Unmarshal(data, v)
}

func (cborCodec) NewEncoder(w io.Writer) Encoder {
	return cborEncMode.NewEncoder(w)
}

type jsonFrameReader struct {
	dec *json.Decoder
}

func (f *jsonFrameReader) ReadFrame() ([]byte, error) {
	var raw json.RawMessage
	if err := f.dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

type cborFrameReader struct {
	dec *cbor.Decoder
}

func (f *cborFrameReader) ReadFrame() ([]byte, error) {
	var raw cbor.RawMessage
	if err := f.dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
