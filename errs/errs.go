// Package errs collects the sentinel errors shared by every dlhn component.
//
// Callers should match these with errors.Is; components wrap them with
// fmt.Errorf("...: %w", errs.ErrXxx) when extra context helps debugging.
package errs

import "errors"

var (
	// ErrShortRead is returned when the underlying byte source ran out of
	// data before a codec operation could complete.
	ErrShortRead = errors.New("dlhn: short read")

	// ErrOverlongVarint is returned when a varint or LEB128 value exceeds
	// the maximum byte count for its declared width.
	ErrOverlongVarint = errors.New("dlhn: overlong varint")

	// ErrUnknownHeaderTag is returned when a header tag byte does not match
	// any known variant.
	ErrUnknownHeaderTag = errors.New("dlhn: unknown header tag")

	// ErrInvalidBoolByte is returned when a boolean body byte is not 0x00 or 0x01.
	ErrInvalidBoolByte = errors.New("dlhn: invalid boolean byte")

	// ErrInvalidUTF8 is returned when string bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("dlhn: invalid utf-8")

	// ErrEnumTagOutOfRange is returned when a decoded enum variant index is
	// not a valid index into the header's variant list.
	ErrEnumTagOutOfRange = errors.New("dlhn: enum tag out of range")

	// ErrInvalidDateTime is returned when DateTime nanoseconds >= 1e9, or
	// when Date components cannot be normalized to a valid calendar date.
	ErrInvalidDateTime = errors.New("dlhn: invalid date/time components")

	// ErrExtensionIDMismatch names a decoded extension body id that does
	// not match the id carried by its header. codec decoding copies the
	// header's id into the body and encoding reports a mismatched id as
	// ErrSchemaMismatch, so no function in this module returns it.
	ErrExtensionIDMismatch = errors.New("dlhn: extension id mismatch")

	// ErrSchemaMismatch is returned when encoding a Body whose shape does
	// not conform to the supplied Header.
	ErrSchemaMismatch = errors.New("dlhn: body does not conform to header")

	// ErrUnsupportedKeyType names a map-key primitive operation invoked with
	// anything other than a string key. The wire and codec map-key
	// operations take string keys, so no function in this module returns it.
	ErrUnsupportedKeyType = errors.New("dlhn: unsupported map key type")

	// ErrDepthExceeded is returned when a header or body tree nests deeper
	// than the configured maximum, guarding against stack exhaustion on
	// hostile input.
	ErrDepthExceeded = errors.New("dlhn: nesting depth exceeded")

	// ErrNotSeekable is returned by Offset() when the underlying sink or
	// source does not implement io.Seeker.
	ErrNotSeekable = errors.New("dlhn: underlying stream is not seekable")

	// ErrSizeLimitExceeded is returned when a decoded string or byte buffer
	// length prefix exceeds the configured maximum allowed size.
	ErrSizeLimitExceeded = errors.New("dlhn: decoded size exceeds configured limit")
)
