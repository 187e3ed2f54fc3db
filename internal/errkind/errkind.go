// Package errkind defines the error taxonomy produced by the UTF-8
// validation scanner: a typed Kind plus a positional error type, in the
// same typed-const-with-Stringer idiom the rest of this module's lineage
// uses for its other enums.
package errkind

import "fmt"

// Kind identifies why a buffer failed validation (or that it passed).
//
// The three "counted" kinds (ExpectedCont, Trunc, SurrogateTrunc) carry a
// sibling Missing value of 1, 2, or 3 instead of being split into three
// enumerators apiece — see DESIGN.md for why this collapses the original
// C library's nineteen numeric codes into thirteen Kind values.
type Kind int

const (
	// OK means the buffer is well-formed under the requested flags.
	OK Kind = iota

	// UnexpectedCont means a continuation byte (0x80-0xBF) was found where
	// a sequence start byte was expected.
	UnexpectedCont

	// InvalidStartByte means a byte of 0xF8 or above started a sequence.
	InvalidStartByte

	// Range means a fully decoded sequence exceeds U+10FFFF.
	Range

	// Overlong means a sequence encodes a code point using more bytes than
	// the minimum required for it.
	Overlong

	// Noncharacter means a sequence decodes to a code point permanently
	// reserved as a noncharacter (U+FDD0-U+FDEF or any U+nFFFE/U+nFFFF).
	Noncharacter

	// NullByte means a zero byte was found while BanNullByte was set and
	// the buffer was scanned under an explicit length.
	NullByte

	// Surrogate means a sequence decodes to U+D800-U+DFFF and BanSurrogates
	// was set.
	Surrogate

	// SurrogateLow means an unpaired low surrogate was found under
	// CheckSurrogates (not immediately preceded by a high surrogate).
	SurrogateLow

	// SurrogateHigh means a high surrogate was found immediately after
	// another high surrogate under CheckSurrogates.
	SurrogateHigh

	// ExpectedCont means a continuation byte was expected but a
	// non-continuation, non-terminating byte was found instead. Missing
	// holds how many continuation bytes were still wanted (1, 2, or 3).
	ExpectedCont

	// Trunc means the buffer ended in the middle of a sequence. Missing
	// holds how many bytes were still wanted (1, 2, or 3).
	Trunc

	// SurrogateTrunc means the buffer (or a zero terminator) ended while a
	// high surrogate was still waiting for its pairing low surrogate.
	// Missing holds how many bytes of a started low surrogate's sequence
	// were still wanted (1, 2, or 3), and is 1 when the scan ends right
	// after the high surrogate; Offset/Length always point at the
	// orphaned high surrogate's own sequence.
	SurrogateTrunc
)

// String renders the kind in SHOUT_CASE. The three counted kinds render
// without a missing-count suffix; Error.Error appends it.
func (k Kind) String() string {
	base, known := kindNames[k]
	if !known {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return base
}

var kindNames = map[Kind]string{
	OK:               "OK",
	UnexpectedCont:   "UNEXPECTED_CONT",
	InvalidStartByte: "INVALID_START_BYTE",
	Range:            "RANGE",
	Overlong:         "OVERLONG",
	Noncharacter:     "NONCHARACTER",
	NullByte:         "NULL_BYTE",
	Surrogate:        "SURROGATE",
	SurrogateLow:     "SURROGATE_LOW",
	SurrogateHigh:    "SURROGATE_HIGH",
	ExpectedCont:     "EXPECTED_CONT",
	Trunc:            "TRUNC",
	SurrogateTrunc:   "SURROGATE_TRUNC",
}

// Suffixed reports whether k is one of the three kinds whose display name
// and semantics depend on a Missing count (1/2/3).
func (k Kind) Suffixed() bool {
	switch k {
	case ExpectedCont, Trunc, SurrogateTrunc:
		return true
	default:
		return false
	}
}

// Error is the positional error produced on a failed validation. It
// implements the standard error interface so callers that prefer idiomatic
// Go error-return plumbing over inspecting a raw Kind can use it directly.
type Error struct {
	Kind    Kind
	Offset  int
	Length  int
	Missing int // 1, 2, or 3; only meaningful when Kind.Suffixed()
}

func (e *Error) Error() string {
	name := e.Kind.String()
	if e.Kind.Suffixed() && e.Missing > 1 {
		name = fmt.Sprintf("%s%d", name, e.Missing)
	}
	return fmt.Sprintf("utf8check: %s at offset %d (%d byte(s) consumed)", name, e.Offset, e.Length)
}
