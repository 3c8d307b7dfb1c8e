package varint

import (
	"bytes"
	"testing"

	"github.com/dlhn-go/dlhn/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendLEB128U64_Boundaries(t *testing.T) {
	zero := AppendLEB128U64(nil, 0)
	assert.Equal(t, []byte{0x00}, zero)

	max := AppendLEB128U64(nil, ^uint64(0))
	require.Len(t, max, 10)
	assert.Equal(t, byte(0x01), max[9])
}

func TestReadLEB128U64_TenFFBytesIsOverlong(t *testing.T) {
	buf := bytes.Repeat([]byte{0xFF}, 10)
	_, err := ReadLEB128U64(bytes.NewReader(buf))
	require.ErrorIs(t, err, errs.ErrOverlongVarint)
}

func TestRoundTrip_LEB128U8(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 128, 255} {
		got := AppendLEB128U8(nil, v)
		decoded, err := ReadLEB128U8(bytes.NewReader(got))
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestRoundTrip_LEB128U32(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 1 << 20, ^uint32(0)} {
		got := AppendLEB128U32(nil, v)
		decoded, err := ReadLEB128U32(bytes.NewReader(got))
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestReadLEB128U8_ShortRead(t *testing.T) {
	buf := []byte{0x80} // continuation bit set, no following byte
	_, err := ReadLEB128U8(bytes.NewReader(buf))
	require.ErrorIs(t, err, errs.ErrShortRead)
}
