package zigzag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeI16_SmallValues(t *testing.T) {
	assert.Equal(t, uint16(0), EncodeI16(0))
	assert.Equal(t, uint16(1), EncodeI16(-1))
	assert.Equal(t, uint16(2), EncodeI16(1))
	assert.Equal(t, uint16(3), EncodeI16(-2))
}

func TestRoundTrip_I16(t *testing.T) {
	for _, v := range []int16{0, 1, -1, math.MaxInt16, math.MinInt16} {
		assert.Equal(t, v, DecodeI16(EncodeI16(v)))
	}
}

func TestRoundTrip_I32(t *testing.T) {
	for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		assert.Equal(t, v, DecodeI32(EncodeI32(v)))
	}
}

func TestRoundTrip_I64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		assert.Equal(t, v, DecodeI64(EncodeI64(v)))
	}
}

func TestRoundTrip_I128(t *testing.T) {
	tests := []struct {
		hi int64
		lo uint64
	}{
		{0, 0},
		{0, 1},
		{-1, ^uint64(0)},
		{math.MinInt64, 0},
		{math.MaxInt64, ^uint64(0)},
	}

	for _, tt := range tests {
		zHi, zLo := EncodeI128(tt.hi, tt.lo)
		gotHi, gotLo := DecodeI128(zHi, zLo)
		assert.Equal(t, tt.hi, gotHi)
		assert.Equal(t, tt.lo, gotLo)
	}
}
