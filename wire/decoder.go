package wire

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/dlhn-go/dlhn/endian"
	"github.com/dlhn-go/dlhn/errs"
	"github.com/dlhn-go/dlhn/varint"
	"github.com/dlhn-go/dlhn/zigzag"
)

// smallStrBufLen is the stack-allocated scratch size for strings and byte
// buffers shorter than this; longer payloads grow a heap buffer instead
// (spec.md §4.5 — a performance hint, not part of the wire format).
const smallStrBufLen = 128

// chunkSize bounds a single io.ReadFull call when filling a large
// heap-allocated string/byte buffer (spec.md §4.5).
const chunkSize = 4096

// Decoder reads the primitive operations interface's symmetric reads from
// an io.Reader.
type Decoder struct {
	r       io.Reader
	engine  endian.EndianEngine
	maxSize uint64
}

// NewDecoder returns a Decoder reading from r. By default ReadStr/ReadBytes
// accept any length prefix the source offers; pass WithMaxSize to reject a
// hostile oversized claim before allocating a buffer for it (spec.md §5).
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	cfg := newConfig(opts)

	return &Decoder{r: r, engine: cfg.engine, maxSize: cfg.maxSize}
}

// ReadBool reads a single boolean byte; any value other than 0x00/0x01 is
// ErrInvalidBoolByte.
func (d *Decoder) ReadBool() (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return false, wrapShortRead(err)
	}

	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errs.ErrInvalidBoolByte
	}
}

// ReadU8 reads a single raw byte.
func (d *Decoder) ReadU8() (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, wrapShortRead(err)
	}

	return b[0], nil
}

// ReadI8 reads a single raw byte (no ZigZag at 8-bit width).
func (d *Decoder) ReadI8() (int8, error) {
	v, err := d.ReadU8()
	return int8(v), err
}

// ReadU16 reads a prefix-varint.
func (d *Decoder) ReadU16() (uint16, error) { return varint.ReadU16(d.r) }

// ReadU32 reads a prefix-varint.
func (d *Decoder) ReadU32() (uint32, error) { return varint.ReadU32(d.r) }

// ReadU64 reads a prefix-varint.
func (d *Decoder) ReadU64() (uint64, error) { return varint.ReadU64(d.r) }

// ReadI16 reads a prefix-varint then ZigZag-decodes it.
func (d *Decoder) ReadI16() (int16, error) {
	v, err := varint.ReadU16(d.r)
	if err != nil {
		return 0, err
	}

	return zigzag.DecodeI16(v), nil
}

// ReadI32 reads a prefix-varint then ZigZag-decodes it.
func (d *Decoder) ReadI32() (int32, error) {
	v, err := varint.ReadU32(d.r)
	if err != nil {
		return 0, err
	}

	return zigzag.DecodeI32(v), nil
}

// ReadI64 reads a prefix-varint then ZigZag-decodes it.
func (d *Decoder) ReadI64() (int64, error) {
	v, err := varint.ReadU64(d.r)
	if err != nil {
		return 0, err
	}

	return zigzag.DecodeI64(v), nil
}

// ReadU128 reads a 128-bit unsigned value as two LEB128 integers,
// most-significant limb first.
func (d *Decoder) ReadU128() (hi, lo uint64, err error) {
	hi, err = varint.ReadLEB128U64(d.r)
	if err != nil {
		return 0, 0, err
	}
	lo, err = varint.ReadLEB128U64(d.r)
	if err != nil {
		return 0, 0, err
	}

	return hi, lo, nil
}

// ReadI128 reads a signed 128-bit value as two LEB128 integers, then
// ZigZag-decodes them into hi/lo two's-complement limbs.
func (d *Decoder) ReadI128() (hi int64, lo uint64, err error) {
	zHi, zLo, err := d.ReadU128()
	if err != nil {
		return 0, 0, err
	}
	hi, lo = zigzag.DecodeI128(zHi, zLo)

	return hi, lo, nil
}

// ReadF32 reads 4 IEEE-754 bytes in the Decoder's byte order (little-endian
// unless WithBigEndian was passed).
func (d *Decoder) ReadF32() (float32, error) {
	var b [4]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, wrapShortRead(err)
	}

	return math.Float32frombits(d.engine.Uint32(b[:])), nil
}

// ReadF64 reads 8 IEEE-754 bytes in the Decoder's byte order (little-endian
// unless WithBigEndian was passed).
func (d *Decoder) ReadF64() (float64, error) {
	var b [8]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, wrapShortRead(err)
	}

	return math.Float64frombits(d.engine.Uint64(b[:])), nil
}

// ReadChar reads one UTF-8 rune the same way as ReadStr.
func (d *Decoder) ReadChar() (rune, error) {
	s, err := d.ReadStr()
	if err != nil {
		return 0, err
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, errs.ErrInvalidUTF8
	}

	return r, nil
}

// ReadStr reads a LEB128 length then that many UTF-8 bytes, validating
// them. Strings shorter than smallStrBufLen decode through a stack
// buffer; longer ones grow a heap buffer and fill it in chunkSize chunks.
func (d *Decoder) ReadStr() (string, error) {
	b, err := d.readLenPrefixed()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errs.ErrInvalidUTF8
	}

	return string(b), nil
}

// ReadBytes reads a LEB128 length then that many raw bytes.
func (d *Decoder) ReadBytes() ([]byte, error) {
	return d.readLenPrefixed()
}

// ReadRaw reads exactly n bytes with no length prefix, for fixed-width
// extension payloads.
func (d *Decoder) ReadRaw(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, wrapShortRead(err)
	}

	return buf, nil
}

func (d *Decoder) readLenPrefixed() ([]byte, error) {
	n, err := varint.ReadLEB128U64(d.r)
	if err != nil {
		return nil, err
	}

	if d.maxSize != 0 && n > d.maxSize {
		return nil, errs.ErrSizeLimitExceeded
	}

	if n < smallStrBufLen {
		var scratch [smallStrBufLen]byte
		buf := scratch[:n]
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return nil, wrapShortRead(err)
		}

		return append([]byte(nil), buf...), nil
	}

	buf := make([]byte, n)
	for read := uint64(0); read < n; {
		end := read + chunkSize
		if end > n {
			end = n
		}
		if _, err := io.ReadFull(d.r, buf[read:end]); err != nil {
			return nil, wrapShortRead(err)
		}
		read = end
	}

	return buf, nil
}

// ReadOptionalFlag reads the Optional presence byte: false for absent,
// true for present (the caller then reads the inner value).
func (d *Decoder) ReadOptionalFlag() (bool, error) { return d.ReadBool() }

// ReadSeqLen reads a sequence's LEB128 element count.
func (d *Decoder) ReadSeqLen() (uint64, error) { return varint.ReadLEB128U64(d.r) }

// ReadMapLen reads a map's LEB128 entry count.
func (d *Decoder) ReadMapLen() (uint64, error) { return varint.ReadLEB128U64(d.r) }

// ReadEnumTag reads an enum's LEB128 variant index.
func (d *Decoder) ReadEnumTag() (uint32, error) {
	v, err := varint.ReadLEB128U64(d.r)
	return uint32(v), err
}

// KeyForMap reads a map key the same way as ReadStr.
func (d *Decoder) KeyForMap() (string, error) { return d.ReadStr() }

func wrapShortRead(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errs.ErrShortRead
	}

	return err
}
