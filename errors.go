package vocalize

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrNoMatch is returned by lenient matching if a transliteration cannot be
// aligned with its Arabic guide string. Strict matching returns a
// *MismatchError instead, which wraps ErrNoMatch.
var ErrNoMatch = errors.New("vocalize: unable to match Latin to Arabic")

// MismatchKind tells which side of an alignment has unmatched input left.
type MismatchKind int8

const (
	MismatchBoth           MismatchKind = iota // characters left on both sides
	MismatchTrailingNative                     // Latin exhausted, Arabic left
	MismatchTrailingLatin                      // Arabic exhausted, Latin left
)

func (k MismatchKind) String() string {
	switch k {
	case MismatchTrailingNative:
		return "trailing-native"
	case MismatchTrailingLatin:
		return "trailing-latin"
	}
	return "both"
}

// MismatchError describes where an alignment got stuck. Indices refer to the
// canonicalized inputs, counted in runes. Native and Latin are 0 for a side
// which has been consumed completely.
type MismatchError struct {
	Kind        MismatchKind
	NativeIndex int
	LatinIndex  int
	Native      rune
	Latin       rune
}

func (e *MismatchError) Error() string {
	switch e.Kind {
	case MismatchTrailingNative:
		return fmt.Sprintf("unable to match trailing Arabic character %q at index %d",
			e.Native, e.NativeIndex)
	case MismatchTrailingLatin:
		return fmt.Sprintf("unable to match trailing Latin character %q at index %d",
			e.Latin, e.LatinIndex)
	}
	return fmt.Sprintf("unable to match Arabic character %q at index %d, Latin character %q at index %d",
		e.Native, e.NativeIndex, e.Latin, e.LatinIndex)
}

// Unwrap makes errors.Is(err, ErrNoMatch) hold for every mismatch.
func (e *MismatchError) Unwrap() error {
	return ErrNoMatch
}

// UnrecognizedGraphemeError is returned, in strict and lenient mode alike,
// for an Arabic character which is missing from all candidate tables. It
// signals a gap in the tables rather than bad input.
type UnrecognizedGraphemeError struct {
	Grapheme rune
	Index    int
}

func (e *UnrecognizedGraphemeError) Error() string {
	return fmt.Sprintf("encountered non-Arabic (?) character %q (U+%04X) at index %d",
		e.Grapheme, e.Grapheme, e.Index)
}
