package wire

import (
	"bytes"
	"testing"

	"github.com/dlhn-go/dlhn/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStr_InvalidUTF8Fails(t *testing.T) {
	enc := NewEncoder()
	defer enc.Release()
	enc.WriteBytes([]byte{0xFF, 0xFE})

	dec := NewDecoder(bytes.NewReader(enc.Bytes()))
	_, err := dec.ReadStr()
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestReadChar_EmptyStringFails(t *testing.T) {
	enc := NewEncoder()
	defer enc.Release()
	enc.WriteStr("")

	dec := NewDecoder(bytes.NewReader(enc.Bytes()))
	_, err := dec.ReadChar()
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestReadOptionalFlag(t *testing.T) {
	enc := NewEncoder()
	defer enc.Release()
	enc.WriteNone()
	enc.WriteSome()

	dec := NewDecoder(bytes.NewReader(enc.Bytes()))
	present, err := dec.ReadOptionalFlag()
	require.NoError(t, err)
	assert.False(t, present)

	present, err = dec.ReadOptionalFlag()
	require.NoError(t, err)
	assert.True(t, present)
}

func TestReadU8_ShortReadFails(t *testing.T) {
	dec := NewDecoder(bytes.NewReader(nil))
	_, err := dec.ReadU8()
	require.ErrorIs(t, err, errs.ErrShortRead)
}

func TestReadRaw_ShortReadFails(t *testing.T) {
	dec := NewDecoder(bytes.NewReader([]byte{1, 2}))
	_, err := dec.ReadRaw(4)
	require.ErrorIs(t, err, errs.ErrShortRead)
}

func TestKeyForMap_RoundTrip(t *testing.T) {
	enc := NewEncoder()
	defer enc.Release()
	enc.KeyForMap("field-name")

	dec := NewDecoder(bytes.NewReader(enc.Bytes()))
	got, err := dec.KeyForMap()
	require.NoError(t, err)
	assert.Equal(t, "field-name", got)
}
