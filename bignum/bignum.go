// Package bignum implements the numeric auxiliary types from spec.md §3:
// BigUInt (little-endian magnitude bytes), BigInt (little-endian two's
// complement bytes), and BigDecimal (a BigInt digit sequence plus a scale).
//
// All three normalize zero to an empty byte sequence, grounded in
// original_source/dlhn/src/big_uint.rs, big_int.rs, and big_decimal.rs.
// math/big is used only for the normalization arithmetic; the little-endian
// wire representations themselves are hand-rolled, since no library in the
// example pack implements this exact encoding.
package bignum

import "math/big"

// NormalizeUInt returns the minimal little-endian magnitude byte sequence
// for b, with no trailing zero byte. Zero normalizes to an empty slice.
func NormalizeUInt(b *big.Int) []byte {
	if b.Sign() == 0 {
		return nil
	}

	be := b.Bytes() // big-endian, no leading zero byte
	le := make([]byte, len(be))
	for i, v := range be {
		le[len(be)-1-i] = v
	}

	return le
}

// UIntFromBytes reconstructs the magnitude from its normalized (or
// non-normalized) little-endian byte sequence. An empty sequence is zero.
func UIntFromBytes(le []byte) *big.Int {
	be := make([]byte, len(le))
	for i, v := range le {
		be[len(le)-1-i] = v
	}

	return new(big.Int).SetBytes(be)
}

// NormalizeInt returns the minimal-length signed little-endian
// two's-complement byte sequence for b. Zero normalizes to an empty slice.
func NormalizeInt(b *big.Int) []byte {
	if b.Sign() == 0 {
		return nil
	}

	// Grow from 1 byte until the round-trip decode reproduces b exactly;
	// the first length that works is the minimal one.
	return toTwosComplementLE(b, 1)
}

// toTwosComplementLE encodes b into n bytes of little-endian two's
// complement, growing n by one byte at a time until b fits without losing
// its sign (handles the boundary where the initial estimate is one short).
func toTwosComplementLE(b *big.Int, n int) []byte {
	for {
		le, ok := tryTwosComplementLE(b, n)
		if ok {
			return le
		}
		n++
	}
}

func tryTwosComplementLE(b *big.Int, n int) ([]byte, bool) {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(n*8))
	v := new(big.Int).Mod(b, mod)
	if v.Sign() < 0 {
		v.Add(v, mod)
	}

	be := v.Bytes()
	beFull := make([]byte, n)
	copy(beFull[n-len(be):], be)

	le := make([]byte, n)
	for i := 0; i < n; i++ {
		le[i] = beFull[n-1-i]
	}

	// Verify round-trip sign is preserved: decoding le as signed two's
	// complement must reproduce b exactly.
	got := IntFromBytes(le)

	return le, got.Cmp(b) == 0
}

// IntFromBytes reconstructs a signed value from its little-endian two's
// complement byte sequence. An empty sequence is zero.
func IntFromBytes(le []byte) *big.Int {
	if len(le) == 0 {
		return big.NewInt(0)
	}

	be := make([]byte, len(le))
	for i, v := range le {
		be[len(le)-1-i] = v
	}

	v := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(le)*8))
		v.Sub(v, mod)
	}

	return v
}

// Decimal is the (digits, scale) pair from spec.md §3: value = digits * 10^(-scale).
type Decimal struct {
	Digits *big.Int
	Scale  int64
}

// IsZero reports whether d represents the value zero.
func (d Decimal) IsZero() bool {
	return d.Digits == nil || d.Digits.Sign() == 0
}
