// Package validate implements structural Header/Body conformance checking
// (spec.md §4.7): a linear, allocation-free pass confirming a Body's shape
// matches a Header's before it is encoded.
package validate

import (
	"github.com/dlhn-go/dlhn/body"
	"github.com/dlhn-go/dlhn/header"
)

// Conforms reports whether b structurally conforms to h: same variant tag
// at every node, matching arity for tuple/struct/enum, in-range enum tags,
// and matching extension ids.
func Conforms(h header.Header, b body.Body) bool {
	if body.Kind(h.Kind) != b.Kind {
		return false
	}

	switch h.Kind {
	case header.KindOptional:
		if !b.Present {
			return true
		}
		return Conforms(*h.Inner, *b.Inner)

	case header.KindArray:
		for _, elem := range b.Elems {
			if !Conforms(*h.Inner, elem) {
				return false
			}
		}
		return true

	case header.KindMap:
		for _, entry := range b.Entries {
			if !Conforms(*h.Inner, entry.Value) {
				return false
			}
		}
		return true

	case header.KindTuple, header.KindStruct:
		if len(h.Elems) != len(b.Elems) {
			return false
		}
		for i, elemHeader := range h.Elems {
			if !Conforms(elemHeader, b.Elems[i]) {
				return false
			}
		}
		return true

	case header.KindEnum:
		if int(b.Tag) >= len(h.Elems) {
			return false
		}
		if b.Variant == nil {
			return false
		}
		return Conforms(h.Elems[b.Tag], *b.Variant)

	case header.KindExtension8, header.KindExtension16, header.KindExtension32,
		header.KindExtension64, header.KindExtension128, header.KindExtension:
		return h.ExtensionID == b.ExtensionID

	default:
		return true
	}
}
