// Package body implements the Body dynamic value tree (spec.md §3, §4.4):
// a runtime value encoded under a particular Header. A Body mirrors the
// shape of the Header it conforms to, one variant per Header variant with
// the payload substituted.
package body

import "math/big"

// Body is a tagged-union value node, mirroring header.Kind. Only the
// fields relevant to Kind are meaningful; the flat-struct, Kind-dispatched
// shape keeps variant walking a simple switch with no virtual dispatch.
type Body struct {
	Kind Kind

	Bool bool
	U8   uint8
	U16  uint16
	U32  uint32
	U64  uint64
	I8   int8
	I16  int16
	I32  int32
	I64  int64
	F32  float32
	F64  float64

	// U128/I128 hold 128-bit integers as hi/lo uint64 limbs (two's
	// complement for I128).
	U128Hi, U128Lo uint64
	I128Hi         int64
	I128Lo         uint64

	Big     *big.Int // BigUInt, BigInt, and BigDecimal digits
	Scale   int64     // BigDecimal scale
	Str     string
	Bytes   []byte

	// Year/Ordinal hold a Date; UnixSeconds/Nanosecond hold a DateTime.
	Year, Ordinal       int64
	UnixSeconds         int64
	Nanosecond          uint32

	// Present and Inner hold the Optional presence flag and payload (Inner
	// is nil when absent).
	Present bool
	Inner   *Body

	// Elems holds Array elements, Tuple/Struct fields in header order.
	Elems []Body

	// Entries holds Map entries; the canonical encoder sorts these by
	// Key before emitting (spec.md §4.4, §8).
	Entries []MapEntry

	// Tag selects the active Enum variant; Variant holds its body.
	Tag     uint32
	Variant *Body

	// ExtensionID echoes the header's id; ExtensionPayload holds the
	// fixed- or variable-width opaque bytes.
	ExtensionID      uint64
	ExtensionPayload []byte
}

// Kind mirrors header.Kind so a Body's variant can be checked without
// importing the header package from call sites that only need shape.
type Kind = uint8

// MapEntry is one (string key, value body) pair of a Map body.
type MapEntry struct {
	Key   string
	Value Body
}

// Variant tag constants, numerically identical to header.Kind so a
// conformance check is a plain equality test.
const (
	KindUnit Kind = iota
	KindOptional
	KindBoolean
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindUInt128
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindFloat32
	KindFloat64
	KindBigUInt
	KindBigInt
	KindBigDecimal
	KindString
	KindBinary
	KindArray
	KindTuple
	KindStruct
	KindMap
	KindEnum
	KindDate
	KindDateTime
	KindExtension8
	KindExtension16
	KindExtension32
	KindExtension64
	KindExtension128
	KindExtension
)

// Unit, Boolean, and the other atomic constructors build a Body holding a
// single scalar payload.
func Unit() Body                 { return Body{Kind: KindUnit} }
func Boolean(v bool) Body        { return Body{Kind: KindBoolean, Bool: v} }
func UInt8(v uint8) Body         { return Body{Kind: KindUInt8, U8: v} }
func UInt16(v uint16) Body       { return Body{Kind: KindUInt16, U16: v} }
func UInt32(v uint32) Body       { return Body{Kind: KindUInt32, U32: v} }
func UInt64(v uint64) Body       { return Body{Kind: KindUInt64, U64: v} }
func Int8(v int8) Body           { return Body{Kind: KindInt8, I8: v} }
func Int16(v int16) Body         { return Body{Kind: KindInt16, I16: v} }
func Int32(v int32) Body         { return Body{Kind: KindInt32, I32: v} }
func Int64(v int64) Body         { return Body{Kind: KindInt64, I64: v} }
func Float32(v float32) Body     { return Body{Kind: KindFloat32, F32: v} }
func Float64(v float64) Body     { return Body{Kind: KindFloat64, F64: v} }
func String(v string) Body       { return Body{Kind: KindString, Str: v} }
func Binary(v []byte) Body       { return Body{Kind: KindBinary, Bytes: v} }

// BigUInt builds a BigUInt body from an unsigned magnitude.
func BigUInt(v *big.Int) Body { return Body{Kind: KindBigUInt, Big: v} }

// BigIntValue builds a BigInt body from a signed value.
func BigIntValue(v *big.Int) Body { return Body{Kind: KindBigInt, Big: v} }

// BigDecimalValue builds a BigDecimal body from digits and scale.
func BigDecimalValue(digits *big.Int, scale int64) Body {
	return Body{Kind: KindBigDecimal, Big: digits, Scale: scale}
}

// DateValue builds a Date body from a year offset and ordinal-day offset.
func DateValue(yearOffset, ordinalOffset int64) Body {
	return Body{Kind: KindDate, Year: yearOffset, Ordinal: ordinalOffset}
}

// DateTimeValue builds a DateTime body.
func DateTimeValue(unixSeconds int64, nanosecond uint32) Body {
	return Body{Kind: KindDateTime, UnixSeconds: unixSeconds, Nanosecond: nanosecond}
}

// None builds an absent Optional body.
func None() Body { return Body{Kind: KindOptional, Present: false} }

// Some builds a present Optional body wrapping inner.
func Some(inner Body) Body {
	return Body{Kind: KindOptional, Present: true, Inner: &inner}
}

// ArrayValue builds an Array body from its elements in order.
func ArrayValue(elems ...Body) Body {
	return Body{Kind: KindArray, Elems: elems}
}

// TupleValue builds a Tuple body from its element values in order.
func TupleValue(elems ...Body) Body {
	return Body{Kind: KindTuple, Elems: elems}
}

// StructValue builds a Struct body from its field values in order.
func StructValue(elems ...Body) Body {
	return Body{Kind: KindStruct, Elems: elems}
}

// MapValue builds a Map body from entries; entries need not be pre-sorted,
// callers encoding this body get canonical (sorted) key order regardless.
func MapValue(entries ...MapEntry) Body {
	return Body{Kind: KindMap, Entries: entries}
}

// EnumValue builds an Enum body selecting variant tag with payload inner.
func EnumValue(tag uint32, inner Body) Body {
	return Body{Kind: KindEnum, Tag: tag, Variant: &inner}
}

// ExtensionValue builds an extension body of kind k, echoing id and
// carrying payload. k must be one of the Extension* kinds.
func ExtensionValue(k Kind, id uint64, payload []byte) Body {
	return Body{Kind: k, ExtensionID: id, ExtensionPayload: payload}
}
