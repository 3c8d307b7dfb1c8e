// Package varint implements the two variable-length unsigned integer codecs
// used by the dlhn wire format: LEB128 (body length prefixes, sequence/map
// counts, enum indices, u128 limbs) and prefix-varint (body integers wider
// than 8 bits, header element counts and extension ids).
//
// Encoders append to a caller-supplied byte slice and decoders read from an
// io.Reader; each value is staged in a small stack-allocated scratch array
// so encoding never allocates on the hot path, matching the per-width
// maximum byte counts spec.md §4.1 defines.
package varint

import (
	"io"

	"github.com/dlhn-go/dlhn/errs"
)

// Per-width maximum byte counts for the prefix-varint codec (spec.md §4.1).
const (
	MaxBytesU16 = 3
	MaxBytesU32 = 5
	MaxBytesU64 = 9
)

// AppendU16 appends the minimal prefix-varint encoding of v to dst and
// returns the extended slice.
func AppendU16(dst []byte, v uint16) []byte {
	return appendPrefixVarint(dst, uint64(v))
}

// AppendU32 appends the minimal prefix-varint encoding of v to dst and
// returns the extended slice.
func AppendU32(dst []byte, v uint32) []byte {
	return appendPrefixVarint(dst, uint64(v))
}

// AppendU64 appends the minimal prefix-varint encoding of v to dst and
// returns the extended slice.
func AppendU64(dst []byte, v uint64) []byte {
	return appendPrefixVarint(dst, v)
}

// ReadU16 reads a prefix-varint from r, bounded to MaxBytesU16 total bytes.
func ReadU16(r io.Reader) (uint16, error) {
	v, err := readPrefixVarint(r, MaxBytesU16)
	return uint16(v), err
}

// ReadU32 reads a prefix-varint from r, bounded to MaxBytesU32 total bytes.
func ReadU32(r io.Reader) (uint32, error) {
	v, err := readPrefixVarint(r, MaxBytesU32)
	return uint32(v), err
}

// ReadU64 reads a prefix-varint from r, bounded to MaxBytesU64 total bytes.
func ReadU64(r io.Reader) (uint64, error) {
	return readPrefixVarint(r, MaxBytesU64)
}

// appendPrefixVarint appends the minimum-byte prefix-varint form of v.
//
// The leading byte's unary run of one-bits gives the number of trailing
// bytes (0..7 trailing bytes for the 1..8 byte forms); a full run of eight
// one-bits (0xFF) signals the 9-byte form carrying all 64 value bits raw.
func appendPrefixVarint(dst []byte, v uint64) []byte {
	for k := 0; k < 7; k++ {
		if v < uint64(1)<<(7*(k+1)) {
			return appendForm(dst, v, k)
		}
	}
	if v < uint64(1)<<56 {
		return appendForm(dst, v, 7)
	}

	// 9-byte form: prefix 0xFF followed by the full 64-bit value, little-endian.
	var buf [9]byte
	buf[0] = 0xFF
	putLE(buf[1:9], v, 8)

	return append(dst, buf[:]...)
}

// appendForm writes the (k+1)-byte form: k leading one-bits in the prefix
// byte, followed by k little-endian trailing bytes.
func appendForm(dst []byte, v uint64, k int) []byte {
	var buf [8]byte
	lowBits := 7 - k
	prefix := byte(0xFF<<uint(8-k)) | byte(v&((1<<uint(lowBits))-1))
	putLE(buf[:k], v>>uint(lowBits), k)
	buf2 := append([]byte{prefix}, buf[:k]...)

	return append(dst, buf2...)
}

// putLE writes the low n bytes of v into dst in little-endian order.
func putLE(dst []byte, v uint64, n int) {
	for i := 0; i < n; i++ {
		dst[i] = byte(v >> uint(8*i))
	}
}

// readLE reads n little-endian bytes as an unsigned value.
func readLE(b []byte, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(b[i]) << uint(8*i)
	}

	return v
}

// leadingOnes counts the run of one-bits from the most significant bit of b,
// from 0 (top bit clear) to 8 (b == 0xFF).
func leadingOnes(b byte) int {
	n := 0
	for n < 8 && (b&(0x80>>uint(n))) != 0 {
		n++
	}

	return n
}

// readPrefixVarint reads one prefix-varint value from r.
//
// maxBytes bounds the total byte count accepted for the caller's width
// (3 for u16, 5 for u32, 9 for u64, per spec.md §4.1); a value whose form
// requires more bytes than that is a format error (width's byte budget
// exceeded). Non-minimal encodings within the byte budget are accepted,
// per spec.md §9.
func readPrefixVarint(r io.Reader, maxBytes int) (uint64, error) {
	var prefixBuf [1]byte
	if _, err := io.ReadFull(r, prefixBuf[:]); err != nil {
		return 0, wrapShortRead(err)
	}
	prefix := prefixBuf[0]
	k := leadingOnes(prefix)

	total := k + 1
	if k == 8 {
		total = 9
	}
	if total > maxBytes {
		return 0, errs.ErrOverlongVarint
	}

	if k == 8 {
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, wrapShortRead(err)
		}

		return readLE(buf[:], 8), nil
	}

	trailing := k
	lowBits := 7 - k
	var buf [7]byte
	if trailing > 0 {
		if _, err := io.ReadFull(r, buf[:trailing]); err != nil {
			return 0, wrapShortRead(err)
		}
	}

	lowMask := uint64(1)<<uint(lowBits) - 1
	value := (uint64(prefix) & lowMask) | (readLE(buf[:trailing], trailing) << uint(lowBits))

	return value, nil
}

func wrapShortRead(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errs.ErrShortRead
	}

	return err
}
