// Package wire implements the primitive encoder and decoder (spec.md §4.5,
// §6.2): a byte-sink/byte-source-level operations interface that an external
// reflection framework can drive to encode application types without
// materializing a body.Body tree first. codec and stream build on top of it.
package wire

import (
	"math"
	"unicode/utf8"

	"github.com/dlhn-go/dlhn/endian"
	"github.com/dlhn-go/dlhn/internal/options"
	"github.com/dlhn-go/dlhn/internal/pool"
	"github.com/dlhn-go/dlhn/varint"
	"github.com/dlhn-go/dlhn/zigzag"
)

// config holds the settings NewEncoder/NewDecoder accept through Option.
// maxSize only affects a Decoder; an Encoder ignores it.
type config struct {
	engine  endian.EndianEngine
	maxSize uint64
}

// Option configures a wire Encoder or Decoder.
type Option = options.Option[*config]

// WithBigEndian selects big-endian byte order for Float32/64 values.
// Little-endian is the default. Fixed-width extension payloads are written
// and read as raw bytes under either byte order.
func WithBigEndian() Option {
	return options.NoError(func(c *config) { c.engine = endian.GetBigEndianEngine() })
}

// WithLittleEndian selects little-endian byte order. It is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) { c.engine = endian.GetLittleEndianEngine() })
}

// WithMaxSize caps the length prefix a Decoder's ReadStr/ReadBytes/KeyForMap
// will accept before returning ErrSizeLimitExceeded. Zero, the default,
// leaves it unbounded. Ignored by Encoder.
func WithMaxSize(n uint64) Option {
	return options.NoError(func(c *config) { c.maxSize = n })
}

// newConfig applies opts over the default config. Every Option this package
// builds is NoError, so Apply cannot fail; the error is only in the
// signature to satisfy the generic options.Apply contract.
func newConfig(opts []Option) *config {
	cfg := &config{engine: endian.GetLittleEndianEngine()}
	_ = options.Apply(cfg, opts...)

	return cfg
}

// Encoder accumulates the byte-level writes for one value tree into a
// pooled buffer. Call Bytes to obtain the encoded result and Release when
// done to return the buffer to its pool.
type Encoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewEncoder returns an Encoder backed by a pooled buffer, little-endian
// for Float32/64 unless WithBigEndian is passed.
func NewEncoder(opts ...Option) *Encoder {
	cfg := newConfig(opts)

	return &Encoder{
		buf:    pool.GetBodyBuffer(),
		engine: cfg.engine,
	}
}

// Release returns the Encoder's buffer to its pool. The Encoder must not be
// used afterward.
func (e *Encoder) Release() {
	pool.PutBodyBuffer(e.buf)
	e.buf = nil
}

// Bytes returns the bytes written so far. The slice is owned by the
// Encoder; copy it before calling Release if it must outlive the Encoder.
func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return e.buf.Len() }

// Reset clears the Encoder for reuse without returning its buffer to the pool.
func (e *Encoder) Reset() { e.buf.Reset() }

// WriteBool writes a single 0x00/0x01 byte.
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf.MustWrite([]byte{0x01})
	} else {
		e.buf.MustWrite([]byte{0x00})
	}
}

// WriteU8 writes a single raw byte.
func (e *Encoder) WriteU8(v uint8) { e.buf.MustWrite([]byte{v}) }

// WriteI8 writes a single raw byte (ZigZag is not applied to 8-bit signed
// values, spec.md §4.4).
func (e *Encoder) WriteI8(v int8) { e.buf.MustWrite([]byte{byte(v)}) }

// WriteU16 writes v as a prefix-varint.
func (e *Encoder) WriteU16(v uint16) { e.buf.B = varint.AppendU16(e.buf.B, v) }

// WriteU32 writes v as a prefix-varint.
func (e *Encoder) WriteU32(v uint32) { e.buf.B = varint.AppendU32(e.buf.B, v) }

// WriteU64 writes v as a prefix-varint.
func (e *Encoder) WriteU64(v uint64) { e.buf.B = varint.AppendU64(e.buf.B, v) }

// WriteI16 writes v ZigZag-encoded then as a prefix-varint.
func (e *Encoder) WriteI16(v int16) { e.buf.B = varint.AppendU16(e.buf.B, zigzag.EncodeI16(v)) }

// WriteI32 writes v ZigZag-encoded then as a prefix-varint.
func (e *Encoder) WriteI32(v int32) { e.buf.B = varint.AppendU32(e.buf.B, zigzag.EncodeI32(v)) }

// WriteI64 writes v ZigZag-encoded then as a prefix-varint.
func (e *Encoder) WriteI64(v int64) { e.buf.B = varint.AppendU64(e.buf.B, zigzag.EncodeI64(v)) }

// WriteU128 writes a 128-bit unsigned value (hi/lo limbs) as two LEB128
// integers, most-significant limb first.
func (e *Encoder) WriteU128(hi, lo uint64) {
	e.buf.B = varint.AppendLEB128U64(e.buf.B, hi)
	e.buf.B = varint.AppendLEB128U64(e.buf.B, lo)
}

// WriteI128 ZigZag-encodes a signed 128-bit value (hi/lo two's-complement
// limbs) and writes it as two LEB128 integers, most-significant limb first.
func (e *Encoder) WriteI128(hi int64, lo uint64) {
	zHi, zLo := zigzag.EncodeI128(hi, lo)
	e.buf.B = varint.AppendLEB128U64(e.buf.B, zHi)
	e.buf.B = varint.AppendLEB128U64(e.buf.B, zLo)
}

// WriteF32 writes v as 4 IEEE-754 bytes in the Encoder's byte order
// (little-endian unless WithBigEndian was passed), NaN payloads untouched.
func (e *Encoder) WriteF32(v float32) {
	e.buf.B = e.engine.AppendUint32(e.buf.B, math.Float32bits(v))
}

// WriteF64 writes v as 8 IEEE-754 bytes in the Encoder's byte order
// (little-endian unless WithBigEndian was passed), NaN payloads untouched.
func (e *Encoder) WriteF64(v float64) {
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
}

// WriteChar writes c the same way as WriteStr of its UTF-8 encoding.
func (e *Encoder) WriteChar(c rune) {
	var scratch [utf8.UTFMax]byte
	n := utf8.EncodeRune(scratch[:], c)
	e.WriteStr(string(scratch[:n]))
}

// WriteStr writes the LEB128 length of s followed by its UTF-8 bytes.
func (e *Encoder) WriteStr(s string) {
	e.buf.B = varint.AppendLEB128U64(e.buf.B, uint64(len(s)))
	e.buf.MustWrite([]byte(s))
}

// WriteBytes writes the LEB128 length of b followed by b itself.
func (e *Encoder) WriteBytes(b []byte) {
	e.buf.B = varint.AppendLEB128U64(e.buf.B, uint64(len(b)))
	e.buf.MustWrite(b)
}

// WriteRaw writes b with no length prefix, for fixed-width extension
// payloads whose size is implied by the header's extension kind.
func (e *Encoder) WriteRaw(b []byte) { e.buf.MustWrite(b) }

// WriteNone writes the Optional absent marker.
func (e *Encoder) WriteNone() { e.buf.MustWrite([]byte{0x00}) }

// WriteSome writes the Optional present marker; the caller writes the
// inner value immediately afterward.
func (e *Encoder) WriteSome() { e.buf.MustWrite([]byte{0x01}) }

// WriteUnit writes nothing: Unit has no payload.
func (e *Encoder) WriteUnit() {}

// BeginSeq writes the LEB128 element count; the caller writes len elements
// immediately afterward.
func (e *Encoder) BeginSeq(length int) { e.buf.B = varint.AppendLEB128U64(e.buf.B, uint64(length)) }

// BeginTuple writes nothing: arity comes from the schema, not the wire.
func (e *Encoder) BeginTuple(int) {}

// BeginStruct writes nothing: arity comes from the schema, not the wire.
func (e *Encoder) BeginStruct(int) {}

// BeginMap writes the LEB128 entry count; the caller writes len (key,
// value) pairs immediately afterward, keys sorted ascending by byte value.
func (e *Encoder) BeginMap(length int) { e.buf.B = varint.AppendLEB128U64(e.buf.B, uint64(length)) }

// BeginEnum writes the LEB128 variant index; the caller writes the
// selected variant's body immediately afterward.
func (e *Encoder) BeginEnum(variantIndex uint32) {
	e.buf.B = varint.AppendLEB128U64(e.buf.B, uint64(variantIndex))
}

// KeyForMap writes s as a map key. It is identical to WriteStr; the
// distinct name matches the primitive operations interface. Its parameter
// is a string, so a non-string key cannot reach it and it never returns
// ErrUnsupportedKeyType.
func (e *Encoder) KeyForMap(s string) { e.WriteStr(s) }
