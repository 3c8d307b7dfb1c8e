package codec

import (
	"math/big"
	"testing"

	"github.com/dlhn-go/dlhn/body"
	"github.com/dlhn-go/dlhn/errs"
	"github.com/dlhn-go/dlhn/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_UInt8Max(t *testing.T) {
	got, err := Encode(header.UInt8(), body.UInt8(255))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF}, got)
}

func TestRoundTrip_OptionalBoolean(t *testing.T) {
	h := header.Optional(header.Boolean())

	some, err := Encode(h, body.Some(body.Boolean(true)))
	require.NoError(t, err)
	decodedSome, err := Decode(h, some)
	require.NoError(t, err)
	assert.True(t, decodedSome.Present)
	assert.True(t, decodedSome.Inner.Bool)

	none, err := Encode(h, body.None())
	require.NoError(t, err)
	decodedNone, err := Decode(h, none)
	require.NoError(t, err)
	assert.False(t, decodedNone.Present)
}

func TestEncode_ArrayOfBoolean(t *testing.T) {
	h := header.Array(header.Boolean())
	b := body.ArrayValue(body.Boolean(true), body.Boolean(false), body.Boolean(true))

	got, err := Encode(h, b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x01, 0x00, 0x01}, got)

	decoded, err := Decode(h, got)
	require.NoError(t, err)
	require.Len(t, decoded.Elems, 3)
	assert.True(t, decoded.Elems[0].Bool)
	assert.False(t, decoded.Elems[1].Bool)
	assert.True(t, decoded.Elems[2].Bool)
}

func TestEncode_MapCanonicalKeyOrder(t *testing.T) {
	h := header.Map(header.UInt8())
	b := body.MapValue(
		body.MapEntry{Key: "b", Value: body.UInt8(123)},
		body.MapEntry{Key: "a", Value: body.UInt8(0)},
	)

	got, err := Encode(h, b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01, 'a', 0x00, 0x01, 'b', 0x7B}, got)

	decoded, err := Decode(h, got)
	require.NoError(t, err)
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "a", decoded.Entries[0].Key)
	assert.Equal(t, "b", decoded.Entries[1].Key)
}

func TestRoundTrip_Struct(t *testing.T) {
	h := header.Struct(header.String(), header.UInt32())
	b := body.StructValue(body.String("hello"), body.UInt32(42))

	got, err := Encode(h, b)
	require.NoError(t, err)

	decoded, err := Decode(h, got)
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded.Elems[0].Str)
	assert.Equal(t, uint32(42), decoded.Elems[1].U32)
}

func TestRoundTrip_Enum(t *testing.T) {
	h := header.Enum(header.Unit(), header.String())

	got, err := Encode(h, body.EnumValue(1, body.String("variant-b")))
	require.NoError(t, err)

	decoded, err := Decode(h, got)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), decoded.Tag)
	assert.Equal(t, "variant-b", decoded.Variant.Str)
}

func TestDecode_EnumTagOutOfRangeFails(t *testing.T) {
	h := header.Enum(header.Unit())
	_, err := Decode(h, []byte{0x01}) // tag 1, only variant 0 exists
	require.ErrorIs(t, err, errs.ErrEnumTagOutOfRange)
}

func TestRoundTrip_BigDecimalZero(t *testing.T) {
	h := header.BigDecimal()
	b := body.BigDecimalValue(big.NewInt(0), 5)

	got, err := Encode(h, b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, got)

	decoded, err := Decode(h, got)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0), decoded.Big)
	assert.Equal(t, int64(0), decoded.Scale)
}

func TestRoundTrip_BigDecimalNonZero(t *testing.T) {
	h := header.BigDecimal()
	b := body.BigDecimalValue(big.NewInt(12345), 2)

	got, err := Encode(h, b)
	require.NoError(t, err)

	decoded, err := Decode(h, got)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(12345), decoded.Big)
	assert.Equal(t, int64(2), decoded.Scale)
}

func TestRoundTrip_BigUIntAndBigInt(t *testing.T) {
	uh := header.BigUInt()
	ub := body.BigUInt(big.NewInt(1_000_000_000_000))
	got, err := Encode(uh, ub)
	require.NoError(t, err)
	decoded, err := Decode(uh, got)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1_000_000_000_000), decoded.Big)

	ih := header.BigInt()
	ib := body.BigIntValue(big.NewInt(-99999))
	got, err = Encode(ih, ib)
	require.NoError(t, err)
	decoded, err = Decode(ih, got)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(-99999), decoded.Big)
}

func TestRoundTrip_DateAndDateTime(t *testing.T) {
	dh := header.Date()
	db := body.DateValue(0, 0)
	got, err := Encode(dh, db)
	require.NoError(t, err)
	decoded, err := Decode(dh, got)
	require.NoError(t, err)
	assert.Equal(t, int64(0), decoded.Year)
	assert.Equal(t, int64(0), decoded.Ordinal)

	dth := header.DateTime()
	dtb := body.DateTimeValue(0, 0)
	got, err = Encode(dth, dtb)
	require.NoError(t, err)
	decoded, err = Decode(dth, got)
	require.NoError(t, err)
	assert.Equal(t, int64(0), decoded.UnixSeconds)
	assert.Equal(t, uint32(0), decoded.Nanosecond)
}

func TestDecode_DateTimeNanosecondOverflowFails(t *testing.T) {
	h := header.DateTime()
	b := body.DateTimeValue(0, 1_000_000_000)
	got, err := Encode(h, b)
	require.NoError(t, err)

	_, err = Decode(h, got)
	require.ErrorIs(t, err, errs.ErrInvalidDateTime)
}

func TestRoundTrip_FixedWidthExtension(t *testing.T) {
	h := header.Extension32(9)
	b := body.ExtensionValue(body.KindExtension32, 9, []byte{1, 2, 3, 4})

	got, err := Encode(h, b)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)

	decoded, err := Decode(h, got)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), decoded.ExtensionID)
	assert.Equal(t, []byte{1, 2, 3, 4}, decoded.ExtensionPayload)
}

func TestRoundTrip_VariableExtension(t *testing.T) {
	h := header.Extension(3)
	b := body.ExtensionValue(body.KindExtension, 3, []byte{9, 9, 9})

	got, err := Encode(h, b)
	require.NoError(t, err)

	decoded, err := Decode(h, got)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), decoded.ExtensionID)
	assert.Equal(t, []byte{9, 9, 9}, decoded.ExtensionPayload)
}

func TestEncode_SchemaMismatchFailsFast(t *testing.T) {
	_, err := Encode(header.UInt8(), body.String("oops"))
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestRoundTrip_UInt128AndInt128(t *testing.T) {
	h := header.UInt128()
	b := body.Body{Kind: body.KindUInt128, U128Hi: 1, U128Lo: 2}
	got, err := Encode(h, b)
	require.NoError(t, err)
	decoded, err := Decode(h, got)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), decoded.U128Hi)
	assert.Equal(t, uint64(2), decoded.U128Lo)

	ih := header.Int128()
	ib := body.Body{Kind: body.KindInt128, I128Hi: -1, I128Lo: 42}
	got, err = Encode(ih, ib)
	require.NoError(t, err)
	decoded, err = Decode(ih, got)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), decoded.I128Hi)
	assert.Equal(t, uint64(42), decoded.I128Lo)
}
