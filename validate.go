// Package utf8check validates byte buffers against standard UTF-8 and four
// closely related variants (MUTF-8, CESU-8, WTF-8, and a fully lax mode)
// selected by a Flag bitmask. It scans a buffer once, left to right, and
// reports the first offending sequence's exact byte offset and length
// rather than merely a pass/fail boolean — see Result.
//
// The validator never decodes to a rune sequence, never normalizes, and
// never transcodes between variants: it answers exactly one question, "is
// this buffer well-formed under these policies", as cheaply as possible.
package utf8check

import (
	"github.com/willabides/utf8check/internal/errkind"
	"github.com/willabides/utf8check/internal/scanner"
)

// Flag selects which UTF-8 variant policies a call to Validate enforces.
// Flags are independent and combinable with bitwise OR.
type Flag = scanner.Flag

// Individual policy flags. Combine with bitwise OR.
const (
	BanOverlong           = scanner.BanOverlong
	BanOverlongExceptNull = scanner.BanOverlongExceptNull
	BanSurrogates         = scanner.BanSurrogates
	CheckSurrogates       = scanner.CheckSurrogates
	BanNoncharacters      = scanner.BanNoncharacters
	BanNullByte           = scanner.BanNullByte
)

// Predefined variant flag combinations.
const (
	// UTF8 is standard UTF-8: overlong encodings and surrogates are both
	// errors.
	UTF8 = scanner.UTF8

	// MUTF8 is Modified UTF-8: overlong encodings are errors except the
	// 2-byte encoding of U+0000, and surrogates must form valid pairs.
	MUTF8 = scanner.MUTF8

	// CESU8 bans overlong encodings and requires valid surrogate pairs.
	CESU8 = scanner.CESU8

	// WTF8 bans overlong encodings but allows any surrogate, paired or not.
	WTF8 = scanner.WTF8

	// LAX enforces none of the optional policies.
	LAX = scanner.LAX

	// STRICT enforces every optional policy at once.
	STRICT = scanner.STRICT
)

// CString, passed as the length to Validate, means "scan until the first
// zero byte" instead of an explicit byte count.
const CString = scanner.CString

// Kind identifies why a buffer failed validation (or that it passed).
type Kind = errkind.Kind

// Kind values. ExpectedCont, Trunc, and SurrogateTrunc carry a Missing
// count (1, 2, or 3) on the Result instead of being split into three
// enumerators apiece.
const (
	OK               = errkind.OK
	UnexpectedCont   = errkind.UnexpectedCont
	InvalidStartByte = errkind.InvalidStartByte
	Range            = errkind.Range
	Overlong         = errkind.Overlong
	Noncharacter     = errkind.Noncharacter
	NullByte         = errkind.NullByte
	Surrogate        = errkind.Surrogate
	SurrogateLow     = errkind.SurrogateLow
	SurrogateHigh    = errkind.SurrogateHigh
	ExpectedCont     = errkind.ExpectedCont
	Trunc            = errkind.Trunc
	SurrogateTrunc   = errkind.SurrogateTrunc
)

// Result is the outcome of a single Validate call.
type Result struct {
	// Kind is OK if the buffer is well-formed, otherwise the specific
	// policy violation.
	Kind Kind
	// Offset is the end of the scan when Kind is OK; otherwise it is the
	// first byte of the offending sequence (for SurrogateTrunc, of the
	// orphaned high surrogate).
	Offset int
	// Length is the number of bytes belonging to the offending sequence
	// already consumed; 0 when Kind is OK.
	Length int
	// Missing is 1, 2, or 3 when Kind is ExpectedCont, Trunc, or
	// SurrogateTrunc, and meaningless otherwise.
	Missing int
}

// OK reports whether the buffer validated cleanly.
func (r Result) OK() bool {
	return r.Kind == OK
}

// Err adapts Result to the standard error interface: nil when OK, otherwise
// a *ValidationError describing the failure.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Kind: r.Kind, Offset: r.Offset, Length: r.Length, Missing: r.Missing}
}

// ValidationError is returned by Result.Err for a failed validation.
type ValidationError = errkind.Error

// fromScan copies scanner.Result field-for-field into the public Result.
// The two structs must be kept in sync; a field added to one belongs on
// the other too.
func fromScan(r scanner.Result) Result {
	return Result{Kind: r.Kind, Offset: r.Offset, Length: r.Length, Missing: r.Missing}
}

// Validate scans buf under flags. If length is CString, the scan stops at
// (and does not include) the first zero byte; otherwise it scans exactly
// the first length bytes of buf (length must be <= len(buf)).
func Validate(buf []byte, length int, flags Flag) Result {
	return fromScan(scanner.Scan(buf, length, flags))
}

// ValidateString scans all of s under flags, as if by Validate(s, len(s), flags).
func ValidateString(s string, flags Flag) Result {
	return Validate([]byte(s), len(s), flags)
}

// ValidateBytes scans all of buf under flags, as if by
// Validate(buf, len(buf), flags).
func ValidateBytes(buf []byte, flags Flag) Result {
	return Validate(buf, len(buf), flags)
}

// ValidateCString scans buf under flags up to (but not including) the
// first zero byte, as if by Validate(buf, CString, flags).
func ValidateCString(buf []byte, flags Flag) Result {
	return Validate(buf, CString, flags)
}
