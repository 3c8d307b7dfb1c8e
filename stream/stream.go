// Package stream implements the streaming encoder/decoder (spec.md §4.6,
// §4.8, §6.3): one header write followed by many body writes against a
// shared schema, with no per-body framing or length prefix — boundaries
// come entirely from the schema.
package stream

import (
	"io"

	"github.com/dlhn-go/dlhn/body"
	"github.com/dlhn-go/dlhn/codec"
	"github.com/dlhn-go/dlhn/errs"
	"github.com/dlhn-go/dlhn/header"
	"github.com/dlhn-go/dlhn/internal/options"
	"github.com/dlhn-go/dlhn/validate"
	"github.com/dlhn-go/dlhn/wire"
)

// Encoder writes one header followed by any number of bodies conforming to
// it onto a shared sink (spec.md §6.3: `<header> <body1> <body2> …`).
type Encoder struct {
	w      io.Writer
	schema header.Header
	opts   []wire.Option
}

// NewEncoder returns an Encoder that will serialize values under schema.
// opts (e.g. wire.WithBigEndian) are applied to every SerializeBody call.
func NewEncoder(w io.Writer, schema header.Header, opts ...wire.Option) *Encoder {
	return &Encoder{w: w, schema: schema, opts: opts}
}

// SerializeHeader writes the schema. The format does not track encoder
// state (spec.md §4.8 permits omitting this call for header-less raw-log
// streams), so it is the caller's responsibility to call it at most once.
func (e *Encoder) SerializeHeader() error {
	buf := e.schema.Serialize(nil)
	_, err := e.w.Write(buf)

	return err
}

// SerializeBody validates b against the schema and, only if it conforms,
// encodes and writes it. A validation failure writes nothing (spec.md §4.6).
func (e *Encoder) SerializeBody(b body.Body) error {
	if !validate.Conforms(e.schema, b) {
		return errs.ErrSchemaMismatch
	}

	buf, err := codec.EncodeWithOptions(e.schema, b, e.opts...)
	if err != nil {
		return err
	}
	_, err = e.w.Write(buf)

	return err
}

// Offset reports the sink's current position, when it is seekable.
func (e *Encoder) Offset() (int64, error) {
	seeker, ok := e.w.(io.Seeker)
	if !ok {
		return 0, errs.ErrNotSeekable
	}

	return seeker.Seek(0, io.SeekCurrent)
}

// decoderConfig aggregates the header-depth and wire-level options a
// Decoder forwards to header.Deserialize and wire.NewDecoder.
type decoderConfig struct {
	maxDepth int
	wireOpts []wire.Option
}

// DecoderOption configures a Decoder's header-deserialize depth limit and
// the wire.Decoder reading its bodies.
type DecoderOption = options.Option[*decoderConfig]

// WithMaxDepth overrides header.MaxDepth for the schema this Decoder reads.
func WithMaxDepth(n int) DecoderOption {
	return options.NoError(func(c *decoderConfig) { c.maxDepth = n })
}

// WithMaxSize caps the length prefix bodies' strings/bytes may declare
// (spec.md §5); see wire.WithMaxSize.
func WithMaxSize(n uint64) DecoderOption {
	return options.NoError(func(c *decoderConfig) { c.wireOpts = append(c.wireOpts, wire.WithMaxSize(n)) })
}

// WithBigEndian selects big-endian byte order for the wire.Decoder reading
// this stream's bodies; see wire.WithBigEndian.
func WithBigEndian() DecoderOption {
	return options.NoError(func(c *decoderConfig) { c.wireOpts = append(c.wireOpts, wire.WithBigEndian()) })
}

// Decoder reads one header on construction (or is configured with one
// out-of-band for a header-less stream) and pulls bodies one at a time.
type Decoder struct {
	dec    *wire.Decoder
	r      io.Reader
	schema header.Header
}

// NewDecoder reads a schema from r and returns a Decoder for the bodies
// that follow.
func NewDecoder(r io.Reader, opts ...DecoderOption) (*Decoder, error) {
	cfg := &decoderConfig{maxDepth: header.MaxDepth}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var headerOpts []header.DeserializeOption
	if cfg.maxDepth != header.MaxDepth {
		headerOpts = append(headerOpts, header.WithMaxDepth(cfg.maxDepth))
	}

	schema, err := header.Deserialize(r, headerOpts...)
	if err != nil {
		return nil, err
	}

	return &Decoder{dec: wire.NewDecoder(r, cfg.wireOpts...), r: r, schema: schema}, nil
}

// NewDecoderWithHeader builds a Decoder for a header-less raw-log stream:
// schema is supplied out-of-band instead of being read from r (spec.md §4.8).
func NewDecoderWithHeader(r io.Reader, schema header.Header, opts ...DecoderOption) *Decoder {
	cfg := &decoderConfig{}
	_ = options.Apply(cfg, opts...)

	return &Decoder{dec: wire.NewDecoder(r, cfg.wireOpts...), r: r, schema: schema}
}

// Schema returns the schema this Decoder's bodies conform to.
func (d *Decoder) Schema() header.Header { return d.schema }

// Deserialize pulls exactly one body from the source.
func (d *Decoder) Deserialize() (body.Body, error) {
	return codec.DecodeFrom(d.schema, d.dec)
}

// Offset reports the source's current position, when it is seekable.
func (d *Decoder) Offset() (int64, error) {
	seeker, ok := d.r.(io.Seeker)
	if !ok {
		return 0, errs.ErrNotSeekable
	}

	return seeker.Seek(0, io.SeekCurrent)
}
