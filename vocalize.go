package vocalize

import (
	"github.com/cockroachdb/errors"
)

// Match aligns latin with native using the default tables. Failures to align
// are reported as ErrNoMatch without further detail.
func Match(latin, native string) (Result, error) {
	return defaultMatcher.Match(latin, native, false)
}

// MatchStrict is like Match, but reports failures to align as a
// *MismatchError.
func MatchStrict(latin, native string) (Result, error) {
	return defaultMatcher.Match(latin, native, true)
}

// Vocalize returns native with vowel marks inserted according to latin.
// It reports false if matching fails or the vocalized string equals native,
// i.e. whenever the caller should leave native unmodified.
func Vocalize(latin, native string) (string, bool) {
	return defaultMatcher.Vocalize(latin, native)
}

// NormalizeLatin returns latin rewritten in canonical spelling, consistent
// with native. It reports false if matching fails or nothing changes.
func NormalizeLatin(latin, native string) (string, bool) {
	return defaultMatcher.NormalizeLatin(latin, native)
}

// Vocalize is the matcher variant of package-level Vocalize.
func (m *Matcher) Vocalize(latin, native string) (string, bool) {
	r, ok := m.try(latin, native)
	if !ok {
		return "", false
	}
	if r.Vocalized == native {
		tracer().Debugf("no change in %s (Latin %s)", native, latin)
		return "", false
	}
	return r.Vocalized, true
}

// NormalizeLatin is the matcher variant of package-level NormalizeLatin.
func (m *Matcher) NormalizeLatin(latin, native string) (string, bool) {
	r, ok := m.try(latin, native)
	if !ok || r.Latin == latin {
		return "", false
	}
	return r.Latin, true
}

// try matches strictly to have a diagnostic for the trace, then swallows
// the error.
func (m *Matcher) try(latin, native string) (Result, bool) {
	r, err := m.Match(latin, native, true)
	if err != nil {
		var unknown *UnrecognizedGraphemeError
		if errors.As(err, &unknown) {
			tracer().Errorf("trying to vocalize %s (%s): %v", native, latin, err)
		} else {
			tracer().Infof("trying to vocalize %s (%s): %v", native, latin, err)
		}
		return Result{}, false
	}
	return r, true
}
