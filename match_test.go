package vocalize

import (
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"

	"github.com/npillmayer/vocalize/canon"
	"github.com/npillmayer/vocalize/graphemes"
)

// splitPair reads a transliteration and its guide string from the first two
// lines of a test case.
func splitPair(t *testing.T, d *datadriven.TestData) (string, string) {
	t.Helper()
	lines := strings.Split(d.Input, "\n")
	if len(lines) != 2 {
		d.Fatalf(t, "expected Latin and Arabic on two lines, have %d lines", len(lines))
	}
	return lines[0], lines[1]
}

func TestMatchDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/match", func(t *testing.T, d *datadriven.TestData) string {
		latin, native := splitPair(t, d)
		switch d.Cmd {
		case "match":
			r, err := defaultMatcher.Match(latin, native, d.HasArg("strict"))
			if err != nil {
				return "error: " + err.Error() + "\n"
			}
			return "vocalized: " + r.Vocalized + "\nlatin: " + r.Latin + "\n"
		case "vocalize":
			if v, ok := Vocalize(latin, native); ok {
				return v + "\n"
			}
			return "unchanged\n"
		case "normalize":
			if l, ok := NormalizeLatin(latin, native); ok {
				return l + "\n"
			}
			return "unchanged\n"
		}
		d.Fatalf(t, "unknown command %q", d.Cmd)
		return ""
	})
}

func TestMatchErrorTypes(t *testing.T) {
	_, err := Match("kat", "كتب")
	if err != ErrNoMatch {
		t.Fatalf("lenient mismatch should be ErrNoMatch, is %v", err)
	}
	_, err = MatchStrict("kat", "كتب")
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("strict mismatch should be a *MismatchError, is %T", err)
	}
	if mismatch.Kind != MismatchTrailingNative || mismatch.NativeIndex != 2 || mismatch.Native != 'ب' {
		t.Errorf("unexpected mismatch %+v", mismatch)
	}
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("mismatch should wrap ErrNoMatch")
	}
	for _, strict := range []bool{false, true} {
		_, err = defaultMatcher.Match("bay", "بی", strict)
		var unknown *UnrecognizedGraphemeError
		if !errors.As(err, &unknown) {
			t.Fatalf("strict=%v: expected *UnrecognizedGraphemeError, is %v", strict, err)
		}
		if unknown.Grapheme != 'ی' || unknown.Index != 1 {
			t.Errorf("strict=%v: unexpected error %+v", strict, unknown)
		}
		if errors.Is(err, ErrNoMatch) {
			t.Errorf("unrecognized grapheme should not count as a mismatch")
		}
	}
}

func TestMismatchKinds(t *testing.T) {
	tests := []struct {
		latin, native string
		kind          MismatchKind
	}{
		{"kat", "كتب", MismatchTrailingNative},
		{"kataban", "كتب", MismatchTrailingLatin},
		{"kitaab", "كتب", MismatchBoth},
		{"", "كتب", MismatchTrailingNative},
		{"x", "", MismatchTrailingLatin},
	}
	for _, tt := range tests {
		_, err := MatchStrict(tt.latin, tt.native)
		var mismatch *MismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("%s/%s: expected *MismatchError, is %v", tt.latin, tt.native, err)
		}
		if mismatch.Kind != tt.kind {
			t.Errorf("%s/%s: kind should be %s, is %s", tt.latin, tt.native, tt.kind, mismatch.Kind)
		}
	}
}

func TestMatchEmpty(t *testing.T) {
	r, err := Match("", "")
	if err != nil {
		t.Fatalf("empty input should match, has error %v", err)
	}
	if r.Vocalized != "" || r.Latin != "" {
		t.Errorf("empty input should give empty result, is %+v", r)
	}
}

// The cursors never move backwards, and every step consumes input.
func TestCursorsAdvance(t *testing.T) {
	for _, p := range SelfTestPairs {
		st := newMatchState(canon.Geminate(canon.Latin(p.Latin)), canon.Native(p.Native))
		for !st.done() {
			ni, li := st.ni, st.li
			ok, err := st.step(graphemes.Default())
			if err != nil || !ok {
				break
			}
			if st.ni < ni || st.li < li {
				t.Fatalf("%s/%s: cursors moved back from (%d,%d) to (%d,%d)",
					p.Latin, p.Native, ni, li, st.ni, st.li)
			}
			if st.ni == ni && st.li == li {
				t.Fatalf("%s/%s: step at (%d,%d) consumed nothing", p.Latin, p.Native, ni, li)
			}
		}
	}
}

func TestMatchDeterministic(t *testing.T) {
	for _, p := range SelfTestPairs {
		r1, err1 := MatchStrict(p.Latin, p.Native)
		r2, err2 := MatchStrict(p.Latin, p.Native)
		if r1 != r2 {
			t.Errorf("%s/%s: results differ, %+v vs %+v", p.Latin, p.Native, r1, r2)
		}
		if (err1 == nil) != (err2 == nil) || (err1 != nil && err1.Error() != err2.Error()) {
			t.Errorf("%s/%s: errors differ, %v vs %v", p.Latin, p.Native, err1, err2)
		}
	}
}

// A word-final tanwīn may be left out of the transliteration, a medial one
// may not.
func TestWordFinalCandidates(t *testing.T) {
	if _, err := Match("katab", "كتبٌ"); err != nil {
		t.Errorf("final dammatan should match the empty spelling, has error %v", err)
	}
	if _, err := Match("katab kitab", "كتبٌ كتب"); err != nil {
		t.Errorf("dammatan before a space should be word-final, has error %v", err)
	}
	if _, err := Match("kab", "كٌب"); err == nil {
		t.Errorf("medial dammatan should need its spelling")
	}
}

func TestMatcherWithLexicon(t *testing.T) {
	lex := NewLexicon()
	if err := lex.AddEntry(Entry{Latin: "hadha", Native: "هذا", Vocalized: "هٰذَا", Normalized: "hāḏā"}); err != nil {
		t.Fatal(err)
	}
	m := NewMatcher(nil, WithLexicon(lex))
	r, err := m.Match("Hadha", "هذا", true)
	if err != nil {
		t.Fatalf("lexicon entry should match, has error %v", err)
	}
	if r.Vocalized != "هٰذَا" || r.Latin != "hāḏā" {
		t.Errorf("unexpected result %+v", r)
	}
	if v, ok := m.Vocalize("katab", "كتب"); !ok || v != "كَتَب" {
		t.Errorf("words missing from the lexicon should be aligned, have %q", v)
	}
}
