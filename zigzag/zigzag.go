// Package zigzag implements the bijective signed<->unsigned mapping used to
// prefix-varint-encode signed integers (spec.md §4.2). Small-magnitude
// signed values map to small unsigned values, which is why the mapping is
// applied before prefix-varint/LEB128 encoding rather than encoding the
// two's-complement bit pattern directly.
package zigzag

// EncodeI16 maps a signed 16-bit value to its zigzag-encoded unsigned form.
func EncodeI16(v int16) uint16 {
	return uint16(v<<1) ^ uint16(v>>15)
}

// DecodeI16 recovers the signed value from its zigzag-encoded form.
func DecodeI16(v uint16) int16 {
	return int16(v>>1) ^ -int16(v&1)
}

// EncodeI32 maps a signed 32-bit value to its zigzag-encoded unsigned form.
func EncodeI32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// DecodeI32 recovers the signed value from its zigzag-encoded form.
func DecodeI32(v uint32) int32 {
	return int32(v>>1) ^ -int32(v&1)
}

// EncodeI64 maps a signed 64-bit value to its zigzag-encoded unsigned form.
func EncodeI64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// DecodeI64 recovers the signed value from its zigzag-encoded form.
func DecodeI64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// EncodeI128 maps a signed 128-bit value, represented as a high/low pair of
// two's-complement uint64 limbs, to its zigzag-encoded unsigned 128-bit form.
//
// The width-matching arithmetic (right) shift on the sign limb is what keeps
// this bijective across the full range, including the minimum value: a
// logical shift would corrupt the sign-extension mask used by the XOR.
func EncodeI128(hi int64, lo uint64) (uint64, uint64) {
	signMask := uint64(hi >> 63) // all-1s if negative, all-0s if non-negative
	rHi := (uint64(hi) << 1) | (lo >> 63)
	rLo := lo << 1

	return rHi ^ signMask, rLo ^ signMask
}

// DecodeI128 recovers the signed 128-bit value (as hi/lo two's-complement
// limbs) from its zigzag-encoded unsigned form.
func DecodeI128(hi, lo uint64) (int64, uint64) {
	mask := -(lo & 1)
	rLo := (lo >> 1) | (hi << 63)
	rHi := hi >> 1

	return int64(rHi ^ mask), rLo ^ mask
}
