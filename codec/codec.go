// Package codec glues header, body, and wire together: it implements the
// schema-driven body encode/decode algorithm of spec.md §4.4, dispatching
// on a header.Header to drive wire.Encoder/wire.Decoder calls and assemble
// or tear down a body.Body tree.
package codec

import (
	"bytes"
	"sort"

	"github.com/dlhn-go/dlhn/bignum"
	"github.com/dlhn-go/dlhn/body"
	"github.com/dlhn-go/dlhn/errs"
	"github.com/dlhn-go/dlhn/header"
	"github.com/dlhn-go/dlhn/validate"
	"github.com/dlhn-go/dlhn/wire"
)

// extensionWidth returns the fixed payload width in bytes for a
// fixed-width extension kind, or -1 for the variable-length kind.
func extensionWidth(k header.Kind) int {
	switch k {
	case header.KindExtension8:
		return 1
	case header.KindExtension16:
		return 2
	case header.KindExtension32:
		return 4
	case header.KindExtension64:
		return 8
	case header.KindExtension128:
		return 16
	default:
		return -1
	}
}

// Encode serializes b under h into a new byte slice.
//
// b must conform to h (validate.Conforms); non-conformance fails fast with
// ErrSchemaMismatch without writing any bytes.
func Encode(h header.Header, b body.Body) ([]byte, error) {
	return EncodeWithOptions(h, b)
}

// EncodeWithOptions is Encode, configuring the wire.Encoder backing it
// (e.g. WithBigEndian) — for callers like stream.Encoder that need the
// same options applied on every call.
func EncodeWithOptions(h header.Header, b body.Body, opts ...wire.Option) ([]byte, error) {
	if !validate.Conforms(h, b) {
		return nil, errs.ErrSchemaMismatch
	}

	enc := wire.NewEncoder(opts...)
	defer enc.Release()

	if err := encodeBody(enc, h, b); err != nil {
		return nil, err
	}

	out := make([]byte, enc.Len())
	copy(out, enc.Bytes())

	return out, nil
}

func encodeBody(enc *wire.Encoder, h header.Header, b body.Body) error {
	switch h.Kind {
	case header.KindUnit:
		enc.WriteUnit()

	case header.KindBoolean:
		enc.WriteBool(b.Bool)

	case header.KindUInt8:
		enc.WriteU8(b.U8)
	case header.KindUInt16:
		enc.WriteU16(b.U16)
	case header.KindUInt32:
		enc.WriteU32(b.U32)
	case header.KindUInt64:
		enc.WriteU64(b.U64)
	case header.KindUInt128:
		enc.WriteU128(b.U128Hi, b.U128Lo)

	case header.KindInt8:
		enc.WriteI8(b.I8)
	case header.KindInt16:
		enc.WriteI16(b.I16)
	case header.KindInt32:
		enc.WriteI32(b.I32)
	case header.KindInt64:
		enc.WriteI64(b.I64)
	case header.KindInt128:
		enc.WriteI128(b.I128Hi, b.I128Lo)

	case header.KindFloat32:
		enc.WriteF32(b.F32)
	case header.KindFloat64:
		enc.WriteF64(b.F64)

	case header.KindString:
		enc.WriteStr(b.Str)
	case header.KindBinary:
		enc.WriteBytes(b.Bytes)

	case header.KindBigUInt:
		enc.WriteBytes(bignum.NormalizeUInt(b.Big))
	case header.KindBigInt:
		enc.WriteBytes(bignum.NormalizeInt(b.Big))
	case header.KindBigDecimal:
		decimal := bignum.Decimal{Digits: b.Big, Scale: b.Scale}
		if decimal.IsZero() {
			enc.WriteBytes(nil)
		} else {
			enc.WriteBytes(bignum.NormalizeInt(b.Big))
			enc.WriteI64(b.Scale)
		}

	case header.KindDate:
		enc.WriteI32(int32(b.Year))
		enc.WriteU16(uint16(b.Ordinal))
	case header.KindDateTime:
		enc.WriteI64(b.UnixSeconds)
		enc.WriteU32(b.Nanosecond)

	case header.KindOptional:
		if b.Present {
			enc.WriteSome()
			return encodeBody(enc, *h.Inner, *b.Inner)
		}
		enc.WriteNone()

	case header.KindArray:
		enc.BeginSeq(len(b.Elems))
		for _, elem := range b.Elems {
			if err := encodeBody(enc, *h.Inner, elem); err != nil {
				return err
			}
		}

	case header.KindTuple:
		enc.BeginTuple(len(h.Elems))
		for i, elemHeader := range h.Elems {
			if err := encodeBody(enc, elemHeader, b.Elems[i]); err != nil {
				return err
			}
		}

	case header.KindStruct:
		enc.BeginStruct(len(h.Elems))
		for i, elemHeader := range h.Elems {
			if err := encodeBody(enc, elemHeader, b.Elems[i]); err != nil {
				return err
			}
		}

	case header.KindMap:
		entries := append([]body.MapEntry(nil), b.Entries...)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

		enc.BeginMap(len(entries))
		for _, entry := range entries {
			enc.KeyForMap(entry.Key)
			if err := encodeBody(enc, *h.Inner, entry.Value); err != nil {
				return err
			}
		}

	case header.KindEnum:
		enc.BeginEnum(b.Tag)
		return encodeBody(enc, h.Elems[b.Tag], *b.Variant)

	case header.KindExtension8, header.KindExtension16, header.KindExtension32,
		header.KindExtension64, header.KindExtension128:
		enc.WriteRaw(b.ExtensionPayload)

	case header.KindExtension:
		enc.WriteBytes(b.ExtensionPayload)
	}

	return nil
}

// Decode deserializes one Body conforming to h from data.
func Decode(h header.Header, data []byte) (body.Body, error) {
	dec := wire.NewDecoder(bytes.NewReader(data))
	return DecodeFrom(h, dec)
}

// DecodeFrom deserializes one Body conforming to h from dec, for callers
// streaming multiple bodies from the same source (see the stream package).
func DecodeFrom(h header.Header, dec *wire.Decoder) (body.Body, error) {
	switch h.Kind {
	case header.KindUnit:
		return body.Unit(), nil

	case header.KindBoolean:
		v, err := dec.ReadBool()
		return body.Boolean(v), err

	case header.KindUInt8:
		v, err := dec.ReadU8()
		return body.UInt8(v), err
	case header.KindUInt16:
		v, err := dec.ReadU16()
		return body.UInt16(v), err
	case header.KindUInt32:
		v, err := dec.ReadU32()
		return body.UInt32(v), err
	case header.KindUInt64:
		v, err := dec.ReadU64()
		return body.UInt64(v), err
	case header.KindUInt128:
		hi, lo, err := dec.ReadU128()
		return body.Body{Kind: body.KindUInt128, U128Hi: hi, U128Lo: lo}, err

	case header.KindInt8:
		v, err := dec.ReadI8()
		return body.Int8(v), err
	case header.KindInt16:
		v, err := dec.ReadI16()
		return body.Int16(v), err
	case header.KindInt32:
		v, err := dec.ReadI32()
		return body.Int32(v), err
	case header.KindInt64:
		v, err := dec.ReadI64()
		return body.Int64(v), err
	case header.KindInt128:
		hi, lo, err := dec.ReadI128()
		return body.Body{Kind: body.KindInt128, I128Hi: hi, I128Lo: lo}, err

	case header.KindFloat32:
		v, err := dec.ReadF32()
		return body.Float32(v), err
	case header.KindFloat64:
		v, err := dec.ReadF64()
		return body.Float64(v), err

	case header.KindString:
		v, err := dec.ReadStr()
		return body.String(v), err
	case header.KindBinary:
		v, err := dec.ReadBytes()
		return body.Binary(v), err

	case header.KindBigUInt:
		raw, err := dec.ReadBytes()
		if err != nil {
			return body.Body{}, err
		}
		return body.BigUInt(bignum.UIntFromBytes(raw)), nil

	case header.KindBigInt:
		raw, err := dec.ReadBytes()
		if err != nil {
			return body.Body{}, err
		}
		return body.BigIntValue(bignum.IntFromBytes(raw)), nil

	case header.KindBigDecimal:
		digitsRaw, err := dec.ReadBytes()
		if err != nil {
			return body.Body{}, err
		}
		if len(digitsRaw) == 0 {
			return body.BigDecimalValue(bignum.IntFromBytes(nil), 0), nil
		}
		scale, err := dec.ReadI64()
		if err != nil {
			return body.Body{}, err
		}
		return body.BigDecimalValue(bignum.IntFromBytes(digitsRaw), scale), nil

	case header.KindDate:
		year, err := dec.ReadI32()
		if err != nil {
			return body.Body{}, err
		}
		ordinal, err := dec.ReadU16()
		if err != nil {
			return body.Body{}, err
		}
		return body.DateValue(int64(year), int64(ordinal)), nil

	case header.KindDateTime:
		unixSeconds, err := dec.ReadI64()
		if err != nil {
			return body.Body{}, err
		}
		nanosecond, err := dec.ReadU32()
		if err != nil {
			return body.Body{}, err
		}
		if nanosecond >= 1_000_000_000 {
			return body.Body{}, errs.ErrInvalidDateTime
		}
		return body.DateTimeValue(unixSeconds, nanosecond), nil

	case header.KindOptional:
		present, err := dec.ReadOptionalFlag()
		if err != nil {
			return body.Body{}, err
		}
		if !present {
			return body.None(), nil
		}
		inner, err := DecodeFrom(*h.Inner, dec)
		if err != nil {
			return body.Body{}, err
		}
		return body.Some(inner), nil

	case header.KindArray:
		length, err := dec.ReadSeqLen()
		if err != nil {
			return body.Body{}, err
		}
		elems := make([]body.Body, length)
		for i := range elems {
			elems[i], err = DecodeFrom(*h.Inner, dec)
			if err != nil {
				return body.Body{}, err
			}
		}
		return body.ArrayValue(elems...), nil

	case header.KindTuple, header.KindStruct:
		elems := make([]body.Body, len(h.Elems))
		for i, elemHeader := range h.Elems {
			elem, err := DecodeFrom(elemHeader, dec)
			if err != nil {
				return body.Body{}, err
			}
			elems[i] = elem
		}
		return body.Body{Kind: body.Kind(h.Kind), Elems: elems}, nil

	case header.KindMap:
		length, err := dec.ReadMapLen()
		if err != nil {
			return body.Body{}, err
		}
		entries := make([]body.MapEntry, length)
		for i := range entries {
			key, err := dec.KeyForMap()
			if err != nil {
				return body.Body{}, err
			}
			value, err := DecodeFrom(*h.Inner, dec)
			if err != nil {
				return body.Body{}, err
			}
			entries[i] = body.MapEntry{Key: key, Value: value}
		}
		return body.MapValue(entries...), nil

	case header.KindEnum:
		tag, err := dec.ReadEnumTag()
		if err != nil {
			return body.Body{}, err
		}
		if int(tag) >= len(h.Elems) {
			return body.Body{}, errs.ErrEnumTagOutOfRange
		}
		inner, err := DecodeFrom(h.Elems[tag], dec)
		if err != nil {
			return body.Body{}, err
		}
		return body.EnumValue(tag, inner), nil

	case header.KindExtension8, header.KindExtension16, header.KindExtension32,
		header.KindExtension64, header.KindExtension128:
		payload, err := dec.ReadRaw(extensionWidth(h.Kind))
		if err != nil {
			return body.Body{}, err
		}
		return body.ExtensionValue(body.Kind(h.Kind), h.ExtensionID, payload), nil

	case header.KindExtension:
		payload, err := dec.ReadBytes()
		if err != nil {
			return body.Body{}, err
		}
		return body.ExtensionValue(body.Kind(h.Kind), h.ExtensionID, payload), nil

	default:
		return body.Body{}, errs.ErrUnknownHeaderTag
	}
}

