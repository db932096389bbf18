package atom

import (
	"bytes"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Canonical produces the canonical single-line s-expression for a value.
// CRITICAL: This is the ONLY serialization used for content-addressed
// identity computation, snapshots, and golden files.
//
// Rules:
//  1. Nodes render as (Type "name") with the name NFC-normalized and
//     minimally escaped (backslash and double quote only).
//  2. Links render as (Type child child ...) with children in outgoing
//     order and a single space between elements.
//  3. FloatValues render as (FloatValue n n ...) using shortest
//     round-trip float formatting.
func Canonical(v Value) []byte {
	var buf bytes.Buffer
	writeCanonical(&buf, v)
	return buf.Bytes()
}

// CanonicalString is Canonical as a string, for logs and CLI output.
func CanonicalString(v Value) string {
	return string(Canonical(v))
}

func writeCanonical(buf *bytes.Buffer, v Value) {
	switch val := v.(type) {
	case *Node:
		buf.WriteByte('(')
		buf.WriteString(string(val.typ))
		buf.WriteString(` "`)
		writeEscaped(buf, val.name)
		buf.WriteString(`")`)
	case *Link:
		buf.WriteByte('(')
		buf.WriteString(string(val.typ))
		for _, child := range val.out {
			buf.WriteByte(' ')
			writeCanonical(buf, child)
		}
		buf.WriteByte(')')
	case *FloatValue:
		buf.WriteString("(FloatValue")
		if val.Len() > 0 {
			buf.WriteByte(' ')
			buf.WriteString(FormatFloats(val.vec))
		}
		buf.WriteByte(')')
	default:
		// Sealed interface; unreachable for values built through this
		// package.
		fmt.Fprintf(buf, "(?%T)", v)
	}
}

// writeEscaped writes a node name with backslash and quote escaped.
// Names are already NFC-normalized at construction, so no normalization
// happens here.
func writeEscaped(buf *bytes.Buffer, s string) {
	for _, r := range s {
		switch r {
		case '\\', '"':
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}
}

// normalizeName NFC-normalizes a node name at the construction boundary.
// CRITICAL: normalization must happen before hashing, or visually
// identical names would intern to distinct atoms.
func normalizeName(name string) string {
	return norm.NFC.String(name)
}
