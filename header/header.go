// Package header implements the Header schema tree (spec.md §3, §4.3, §6.1):
// a recursive tagged union describing the shape of a value, independent of
// any particular value instance. A Header is constructed once and shared by
// every encode/decode of the bodies that conform to it.
package header

import (
	"io"

	"github.com/dlhn-go/dlhn/errs"
	"github.com/dlhn-go/dlhn/internal/hash"
	"github.com/dlhn-go/dlhn/internal/options"
	"github.com/dlhn-go/dlhn/varint"
)

// Kind identifies a Header variant. Values match the canonical tag byte
// table (§6.1); the historical Int8-at-7 draft is not implemented.
type Kind uint8

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

// MaxDepth bounds header recursion on decode, guarding against maliciously
// deep nesting exhausting the call stack (spec.md §9). Deserialize's default;
// override it with WithMaxDepth.
const MaxDepth = 1024

// Config holds Deserialize's configurable limits.
type Config struct {
	maxDepth int
}

// DeserializeOption configures a Deserialize call.
type DeserializeOption = options.Option[*Config]

// WithMaxDepth overrides MaxDepth for a single Deserialize call.
func WithMaxDepth(n int) DeserializeOption {
	return options.NoError(func(c *Config) { c.maxDepth = n })
}

// Header is a node in the schema tree. Only the fields relevant to Kind are
// meaningful: Inner for single-child composites, Elems for fixed-arity
// composites, ExtensionID for Extension variants.
type Header struct {
	Kind        Kind
	Inner       *Header
	Elems       []Header
	ExtensionID uint64
}

// Atomic variant constructors. Each is a zero-argument value with no
// recursive structure.
func Unit() Header       { return Header{Kind: KindUnit} }
func Boolean() Header    { return Header{Kind: KindBoolean} }
func UInt8() Header      { return Header{Kind: KindUInt8} }
func UInt16() Header     { return Header{Kind: KindUInt16} }
func UInt32() Header     { return Header{Kind: KindUInt32} }
func UInt64() Header     { return Header{Kind: KindUInt64} }
func UInt128() Header    { return Header{Kind: KindUInt128} }
func Int8() Header       { return Header{Kind: KindInt8} }
func Int16() Header      { return Header{Kind: KindInt16} }
func Int32() Header      { return Header{Kind: KindInt32} }
func Int64() Header      { return Header{Kind: KindInt64} }
func Int128() Header     { return Header{Kind: KindInt128} }
func Float32() Header    { return Header{Kind: KindFloat32} }
func Float64() Header    { return Header{Kind: KindFloat64} }
func BigUInt() Header    { return Header{Kind: KindBigUInt} }
func BigInt() Header     { return Header{Kind: KindBigInt} }
func BigDecimal() Header { return Header{Kind: KindBigDecimal} }
func String() Header     { return Header{Kind: KindString} }
func Binary() Header     { return Header{Kind: KindBinary} }
func Date() Header       { return Header{Kind: KindDate} }
func DateTime() Header   { return Header{Kind: KindDateTime} }

// Optional wraps inner as an Optional(H) header.
func Optional(inner Header) Header {
	return Header{Kind: KindOptional, Inner: &inner}
}

// Array wraps inner as an Array(H) header.
func Array(inner Header) Header {
	return Header{Kind: KindArray, Inner: &inner}
}

// Map builds a Map(H) header; the key type is always String (spec.md §3).
func Map(valueHeader Header) Header {
	return Header{Kind: KindMap, Inner: &valueHeader}
}

// Tuple builds a Tuple([H]) header from its element headers in order.
func Tuple(elems ...Header) Header {
	return Header{Kind: KindTuple, Elems: elems}
}

// Struct builds a Struct([H]) header from its field headers in order.
func Struct(elems ...Header) Header {
	return Header{Kind: KindStruct, Elems: elems}
}

// Enum builds an Enum([H]) header from its variant headers in order.
func Enum(elems ...Header) Header {
	return Header{Kind: KindEnum, Elems: elems}
}

// Extension8/16/32/64/128 build fixed-width extension headers identified by id.
func Extension8(id uint64) Header   { return Header{Kind: KindExtension8, ExtensionID: id} }
func Extension16(id uint64) Header  { return Header{Kind: KindExtension16, ExtensionID: id} }
func Extension32(id uint64) Header  { return Header{Kind: KindExtension32, ExtensionID: id} }
func Extension64(id uint64) Header  { return Header{Kind: KindExtension64, ExtensionID: id} }
func Extension128(id uint64) Header { return Header{Kind: KindExtension128, ExtensionID: id} }

// Extension builds a variable-length extension header identified by id.
func Extension(id uint64) Header { return Header{Kind: KindExtension, ExtensionID: id} }

// Serialize appends the tag-prefixed encoding of h to dst (spec.md §4.3).
func (h Header) Serialize(dst []byte) []byte {
	dst = append(dst, byte(h.Kind))

	switch h.Kind {
	case KindOptional, KindArray, KindMap:
		dst = h.Inner.Serialize(dst)
	case KindTuple, KindStruct, KindEnum:
		dst = varint.AppendU64(dst, uint64(len(h.Elems)))
		for _, elem := range h.Elems {
			dst = elem.Serialize(dst)
		}
	case KindExtension8, KindExtension16, KindExtension32, KindExtension64,
		KindExtension128, KindExtension:
		dst = varint.AppendU64(dst, h.ExtensionID)
	}

	return dst
}

// Deserialize reads one tag-prefixed header from r.
func Deserialize(r io.Reader, opts ...DeserializeOption) (Header, error) {
	cfg := &Config{maxDepth: MaxDepth}
	if err := options.Apply(cfg, opts...); err != nil {
		return Header{}, err
	}

	return deserialize(r, 0, cfg.maxDepth)
}

func deserialize(r io.Reader, depth, maxDepth int) (Header, error) {
	if depth > maxDepth {
		return Header{}, errs.ErrDepthExceeded
	}

	var tagBuf [1]byte
	if _, err := io.ReadFull(r, tagBuf[:]); err != nil {
		return Header{}, wrapShortRead(err)
	}
	kind := Kind(tagBuf[0])

	switch kind {
	case KindUnit, KindBoolean, KindUInt8, KindUInt16, KindUInt32, KindUInt64,
		KindUInt128, KindInt8, KindInt16, KindInt32, KindInt64, KindInt128,
		KindFloat32, KindFloat64, KindBigUInt, KindBigInt, KindBigDecimal,
		KindString, KindBinary, KindDate, KindDateTime:
		return Header{Kind: kind}, nil

	case KindOptional, KindArray, KindMap:
		inner, err := deserialize(r, depth+1, maxDepth)
		if err != nil {
			return Header{}, err
		}
		return Header{Kind: kind, Inner: &inner}, nil

	case KindTuple, KindStruct, KindEnum:
		count, err := varint.ReadU64(r)
		if err != nil {
			return Header{}, err
		}
		elems := make([]Header, count)
		for i := range elems {
			elem, err := deserialize(r, depth+1, maxDepth)
			if err != nil {
				return Header{}, err
			}
			elems[i] = elem
		}
		return Header{Kind: kind, Elems: elems}, nil

	case KindExtension8, KindExtension16, KindExtension32, KindExtension64,
		KindExtension128, KindExtension:
		id, err := varint.ReadU64(r)
		if err != nil {
			return Header{}, err
		}
		return Header{Kind: kind, ExtensionID: id}, nil

	default:
		return Header{}, errs.ErrUnknownHeaderTag
	}
}

// Fingerprint returns the xxHash64 of h's serialized bytes, a compact
// identifier for comparing or caching schemas without a full byte compare.
func (h Header) Fingerprint() uint64 {
	buf := h.Serialize(nil)
	return hash.ID(string(buf))
}

// Equal reports whether h and other describe the same schema tree.
func (h Header) Equal(other Header) bool {
	if h.Kind != other.Kind {
		return false
	}

	switch h.Kind {
	case KindOptional, KindArray, KindMap:
		return h.Inner.Equal(*other.Inner)
	case KindTuple, KindStruct, KindEnum:
		if len(h.Elems) != len(other.Elems) {
			return false
		}
		for i := range h.Elems {
			if !h.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	case KindExtension8, KindExtension16, KindExtension32, KindExtension64,
		KindExtension128, KindExtension:
		return h.ExtensionID == other.ExtensionID
	default:
		return true
	}
}

func wrapShortRead(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errs.ErrShortRead
	}

	return err
}
