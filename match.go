package vocalize

import (
	"github.com/npillmayer/vocalize/canon"
	"github.com/npillmayer/vocalize/graphemes"
)

// Result is the outcome of a successful match.
type Result struct {
	Vocalized string // Arabic with vowel and gemination marks inserted
	Latin     string // transliteration in canonical spelling
}

// Matcher aligns transliterations with Arabic guide strings. A Matcher holds
// no mutable state and may be used from multiple goroutines.
type Matcher struct {
	tables  *graphemes.Tables
	lexicon *Lexicon
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLexicon lets a matcher consult a lexicon of exceptions before aligning.
func WithLexicon(lex *Lexicon) Option {
	return func(m *Matcher) {
		m.lexicon = lex
	}
}

// NewMatcher creates a matcher for a set of candidate tables. If tables is
// nil, graphemes.Default() is used.
func NewMatcher(tables *graphemes.Tables, opts ...Option) *Matcher {
	if tables == nil {
		tables = graphemes.Default()
	}
	m := &Matcher{tables: tables}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMatcher = NewMatcher(nil)

// Match aligns latin with the Arabic guide string native.
//
// If the two cannot be aligned, Match returns ErrNoMatch, or a *MismatchError
// if strict is set. An Arabic character without table entry always results
// in an *UnrecognizedGraphemeError.
func (m *Matcher) Match(latin, native string, strict bool) (Result, error) {
	if m.lexicon != nil {
		if entry, ok := m.lexicon.Lookup(latin, native); ok {
			tracer().Debugf("lexicon entry for %s (%s)", native, latin)
			return Result{Vocalized: entry.Vocalized, Latin: entry.Normalized}, nil
		}
	}
	st := newMatchState(canon.Geminate(canon.Latin(latin)), canon.Native(native))
	for !st.done() {
		ok, err := st.step(m.tables)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			if strict {
				return Result{}, st.mismatch()
			}
			return Result{}, ErrNoMatch
		}
	}
	return Result{
		Vocalized: canon.PostNative(string(st.res)),
		Latin:     canon.PostLatin(string(st.lres)),
	}, nil
}

// --- Match state -----------------------------------------------------------

// matchState is the two-pointer walk over the canonical inputs.
//
// ni advances only when a grapheme is matched, li on every successful step.
// res and lres collect the Arabic and Latin output and may differ in length.
type matchState struct {
	native []rune
	latin  []rune
	ni, li int
	res    []rune
	lres   []rune
}

func newMatchState(latin, native string) *matchState {
	st := &matchState{
		native: []rune(native),
		latin:  []rune(latin),
	}
	st.res = make([]rune, 0, len(st.native)*2)
	st.lres = make([]rune, 0, len(st.latin))
	return st
}

func (st *matchState) done() bool {
	return st.ni >= len(st.native) && st.li >= len(st.latin)
}

// step performs one move of the walk: either a grapheme match, or the
// insertion of a mark for a Latin rune which has no Arabic counterpart.
// It returns false if neither is possible.
func (st *matchState) step(tables *graphemes.Tables) (bool, error) {
	if st.ni < len(st.native) {
		ok, err := st.matchGrapheme(tables)
		if err != nil || ok {
			return ok, err
		}
	}
	if st.li < len(st.latin) {
		c := st.latin[st.li]
		if mark, ok := tables.Unmatched(c); ok {
			tracer().Debugf("unmatched Latin %q at %d, inserting %q", c, st.li, mark)
			st.res = append(st.res, []rune(mark)...)
			st.lres = append(st.lres, c)
			st.li++
			return true, nil
		}
	}
	return false, nil
}

// matchGrapheme tries the candidate spellings of the current Arabic grapheme
// against the remaining Latin, in order. The first complete match wins.
func (st *matchState) matchGrapheme(tables *graphemes.Tables) (bool, error) {
	g := st.native[st.ni]
	initial := st.ni == 0 || st.native[st.ni-1] == ' '
	final := st.ni == len(st.native)-1 || st.native[st.ni+1] == ' '
	candidates, pos, ok := tables.Lookup(g, initial, final)
	if !ok {
		return false, &UnrecognizedGraphemeError{Grapheme: g, Index: st.ni}
	}
	for _, c := range candidates {
		n, ok := st.latinPrefix(c)
		if !ok {
			continue
		}
		tracer().Debugf("matched %q (%s) at %d with %q", g, pos, st.ni, c)
		st.res = append(st.res, g)
		st.emitLatin(g, candidates)
		st.li += n
		st.ni++
		return true, nil
	}
	return false, nil
}

// latinPrefix checks if spelling is a prefix of the Latin still to match and
// returns its length in runes.
func (st *matchState) latinPrefix(spelling string) (int, bool) {
	l := st.li
	for _, c := range spelling {
		if l >= len(st.latin) || st.latin[l] != c {
			return 0, false
		}
		l++
	}
	return l - st.li, true
}

// emitLatin writes the normalized Latin for a matched grapheme. It has to be
// called before the cursors advance.
func (st *matchState) emitLatin(g rune, candidates graphemes.Candidates) {
	switch g {
	case graphemes.TaMarbuta:
		if st.ni > 0 && st.native[st.ni-1] == graphemes.Alif {
			st.lres = append(st.lres, 'h') // written-out -āh
		}
	case graphemes.Waw, graphemes.Ya:
		// keep consonantal vs. vocalic spelling as written
		assert(st.li < len(st.latin), "semivowel matched without Latin input")
		st.lres = append(st.lres, st.latin[st.li])
	default:
		st.lres = append(st.lres, []rune(candidates.Canonical())...)
	}
}

// mismatch describes the position where the walk got stuck.
func (st *matchState) mismatch() *MismatchError {
	err := &MismatchError{NativeIndex: st.ni, LatinIndex: st.li}
	haveNative, haveLatin := st.ni < len(st.native), st.li < len(st.latin)
	if haveNative {
		err.Native = st.native[st.ni]
	}
	if haveLatin {
		err.Latin = st.latin[st.li]
	}
	switch {
	case haveNative && haveLatin:
		err.Kind = MismatchBoth
	case haveNative:
		err.Kind = MismatchTrailingNative
	default:
		err.Kind = MismatchTrailingLatin
	}
	return err
}
