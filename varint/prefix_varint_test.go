package varint

import (
	"bytes"
	"testing"

	"github.com/dlhn-go/dlhn/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendU64_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"max 1 byte", 1<<7 - 1, []byte{0x7F}},
		{"min 2 byte", 1 << 7, nil},
		{"u64 max", ^uint64(0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendU64(nil, tt.v)
			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			}

			decoded, err := ReadU64(bytes.NewReader(got))
			require.NoError(t, err)
			assert.Equal(t, tt.v, decoded)
		})
	}
}

func TestAppendU64_128IsTwoBytes(t *testing.T) {
	got := AppendU64(nil, 1<<7)
	require.Len(t, got, 2)
	assert.Equal(t, byte(0b10000000), got[0]&0b11000000)
}

func TestReadU64_AcceptsNonMinimalEncoding(t *testing.T) {
	// 9-byte form encoding a value that would fit in 1 byte.
	var buf [9]byte
	buf[0] = 0xFF
	buf[1] = 0x05
	got, err := ReadU64(bytes.NewReader(buf[:]))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got)
}

func TestReadU16_OverlongFails(t *testing.T) {
	// Four leading one-bits declare the 5-byte form, which exceeds MaxBytesU16 (3).
	buf := []byte{0b11110000, 0x00, 0x00, 0x00}
	_, err := ReadU16(bytes.NewReader(buf))
	require.ErrorIs(t, err, errs.ErrOverlongVarint)
}

func TestReadU64_ShortReadFails(t *testing.T) {
	buf := []byte{0b11000000} // declares 2 trailing bytes, provides none
	_, err := ReadU64(bytes.NewReader(buf))
	require.Error(t, err)
}

func TestRoundTrip_U16(t *testing.T) {
	for _, v := range []uint16{0, 1, 127, 128, 16383, 16384, 65535} {
		got := AppendU16(nil, v)
		decoded, err := ReadU16(bytes.NewReader(got))
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestRoundTrip_U32(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 1 << 20, ^uint32(0)} {
		got := AppendU32(nil, v)
		decoded, err := ReadU32(bytes.NewReader(got))
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}
