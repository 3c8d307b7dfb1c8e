package varint

import (
	"io"

	"github.com/dlhn-go/dlhn/errs"
)

// Per-width maximum byte counts for the LEB128 codec (spec.md §4.1).
const (
	LEB128MaxBytesU8   = 2
	LEB128MaxBytesU16  = 3
	LEB128MaxBytesU32  = 5
	LEB128MaxBytesU64  = 10
	LEB128MaxBytesU128 = 19
)

// AppendLEB128U8 appends the LEB128 encoding of v to dst.
func AppendLEB128U8(dst []byte, v uint8) []byte {
	return appendLEB128(dst, uint64(v))
}

// AppendLEB128U16 appends the LEB128 encoding of v to dst.
func AppendLEB128U16(dst []byte, v uint16) []byte {
	return appendLEB128(dst, uint64(v))
}

// AppendLEB128U32 appends the LEB128 encoding of v to dst.
func AppendLEB128U32(dst []byte, v uint32) []byte {
	return appendLEB128(dst, uint64(v))
}

// AppendLEB128U64 appends the LEB128 encoding of v to dst.
func AppendLEB128U64(dst []byte, v uint64) []byte {
	return appendLEB128(dst, v)
}

// ReadLEB128U8 reads a LEB128 value from r, bounded to LEB128MaxBytesU8 bytes.
func ReadLEB128U8(r io.Reader) (uint8, error) {
	v, err := readLEB128(r, LEB128MaxBytesU8)
	return uint8(v), err
}

// ReadLEB128U16 reads a LEB128 value from r, bounded to LEB128MaxBytesU16 bytes.
func ReadLEB128U16(r io.Reader) (uint16, error) {
	v, err := readLEB128(r, LEB128MaxBytesU16)
	return uint16(v), err
}

// ReadLEB128U32 reads a LEB128 value from r, bounded to LEB128MaxBytesU32 bytes.
func ReadLEB128U32(r io.Reader) (uint32, error) {
	v, err := readLEB128(r, LEB128MaxBytesU32)
	return uint32(v), err
}

// ReadLEB128U64 reads a LEB128 value from r, bounded to LEB128MaxBytesU64 bytes.
func ReadLEB128U64(r io.Reader) (uint64, error) {
	return readLEB128(r, LEB128MaxBytesU64)
}

// appendLEB128 appends the 7-bits-per-byte, continuation-bit-high encoding of v.
func appendLEB128(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// readLEB128 reads one LEB128 value from r, one byte at a time, failing with
// ErrOverlongVarint if more than maxBytes bytes carry a continuation bit.
func readLEB128(r io.Reader, maxBytes int) (uint64, error) {
	var value uint64
	var shift uint

	for i := 0; i < maxBytes; i++ {
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, wrapShortRead(err)
		}

		value |= uint64(b[0]&0x7F) << shift
		if b[0]&0x80 == 0 {
			return value, nil
		}
		shift += 7
	}

	return 0, errs.ErrOverlongVarint
}
