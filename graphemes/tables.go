package graphemes

import (
	"slices"
)

// Position classifies a grapheme by its place in a word.
type Position int8

const (
	General     Position = iota // word-internal
	WordInitial                 // first in string or after a space
	WordFinal                   // last in string or before a space
)

func (p Position) String() string {
	switch p {
	case WordInitial:
		return "initial"
	case WordFinal:
		return "final"
	}
	return "general"
}

// Candidates is an ordered list of Latin spellings for one grapheme. The
// first entry is the canonical spelling. Spellings use the internal
// long-vowel convention of package canon (“ā” is written “aā”, etc.).
//
// Candidates returned from Tables are shared and must not be modified.
type Candidates []string

// Canonical returns the first spelling, or "" for an empty list.
func (c Candidates) Canonical() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Tables holds the three candidate tables, keyed by Arabic grapheme, and the
// fallback table for Latin runes which may be consumed without a grapheme.
//
// A Tables value is never modified after construction and may be shared
// between goroutines.
type Tables struct {
	general   map[rune]Candidates
	initial   map[rune]Candidates
	final     map[rune]Candidates
	unmatched map[rune]string
}

var (
	hamzaMatch        = Candidates{"ʾ", "’", "'", "`"}
	hamzaMatchOrEmpty = Candidates{"ʾ", "’", "'", "`", ""}
)

// NewTables builds a fresh set of candidate tables.
func NewTables() *Tables {
	return &Tables{
		general:   generalTable(),
		initial:   initialTable(),
		final:     finalTable(),
		unmatched: unmatchedTable(),
	}
}

var defaultTables = NewTables()

// Default returns the shared, read-only candidate tables.
func Default() *Tables {
	return defaultTables
}

// Lookup finds the candidate spellings for grapheme g. Word-initial entries
// take priority, then word-final entries, then general entries. The
// Position returned tells which table served the lookup.
func (t *Tables) Lookup(g rune, initial, final bool) (Candidates, Position, bool) {
	if initial {
		if c, ok := t.initial[g]; ok {
			return c, WordInitial, true
		}
	}
	if final {
		if c, ok := t.final[g]; ok {
			return c, WordFinal, true
		}
	}
	if c, ok := t.general[g]; ok {
		return c, General, true
	}
	return nil, General, false
}

// Candidates returns the entry for g in a single table, without fallback.
func (t *Tables) Candidates(p Position, g rune) (Candidates, bool) {
	var c Candidates
	var ok bool
	switch p {
	case WordInitial:
		c, ok = t.initial[g]
	case WordFinal:
		c, ok = t.final[g]
	default:
		c, ok = t.general[g]
	}
	return c, ok
}

// Unmatched returns the Arabic mark inserted for a Latin rune which has no
// counterpart in the guide string. The mark may be empty (hyphen).
func (t *Tables) Unmatched(r rune) (string, bool) {
	m, ok := t.unmatched[r]
	return m, ok
}

// Graphemes lists every grapheme known to any of the three tables, in
// ascending order.
func (t *Tables) Graphemes() []rune {
	seen := make(map[rune]bool, len(t.general))
	for _, m := range []map[rune]Candidates{t.general, t.initial, t.final} {
		for g := range m {
			seen[g] = true
		}
	}
	gg := make([]rune, 0, len(seen))
	for g := range seen {
		gg = append(gg, g)
	}
	slices.Sort(gg)
	return gg
}

// --- Table data ------------------------------------------------------------

// At the beginning of a word a plain alif usually corresponds to nothing, and
// hamza seats may stand for an omitted hamza. Mid-word this would break words
// like سألة “saʾala”, where أ would match nothing right after the “s”.
func initialTable() map[rune]Candidates {
	return map[rune]Candidates{
		Alif:       {""},
		HamzaAbove: hamzaMatchOrEmpty,
		HamzaBelow: hamzaMatchOrEmpty,
		AlifMadda:  {"ʾaā", "’aā", "'aā", "`aā", "aā"},
	}
}

// Some iʿrāb endings may appear in the Arabic but not in the transliteration.
func finalTable() map[rune]Candidates {
	return map[rune]Candidates{
		Dammatan: {"un", ""},
		Fatha:    {"a", ""}, // in plurals
		Damma:    {"u", ""}, // in diptotes
		Kasra:    {"i", ""}, // in duals
	}
}

func generalTable() map[rune]Candidates {
	return map[rune]Candidates{
		// consonants
		'ب': {"b"},
		'ت': {"t"},
		'ث': {"ṯ", "ŧ", "θ", "th"},
		'ج': {"j"},
		// h is allowed for ḥ as all input is lowercased
		'ح': {"ḥ", "ħ", "h"},
		'خ': {"ḵ", "x", "kh"},
		'د': {"d"},
		'ذ': {"ḏ", "đ", "ð", "dh"},
		'ر': {"r"},
		'ز': {"z"},
		'س': {"s"},
		'ش': {"š", "sh"},
		// non-emphatic spellings come from lowercased S, D, T, Z
		'ص': {"ṣ", "sʿ", "s"},
		'ض': {"ḍ", "dʿ", "d"},
		'ط': {"ṭ", "tʿ", "ṫ", "t"},
		'ظ': {"ẓ", "ðʿ", "đ̣", "z"},
		'ع': {"ʿ", "ʕ", "`", "‘", "ʻ", "3"},
		'غ': {"ḡ", "ġ", "ğ", "gh"},
		'ف': {"f"},
		'ق': {"q"},
		'ك': {"k"},
		'ل': {"l"},
		'م': {"m"},
		'ن': {"n"},
		'ه': {"h"},
		TaMarbuta: {"h", "t", "(t)", ""},
		ZWNJ:      {"-", ""},
		// rare letters
		'پ': {"p"},
		'چ': {"č", "ch"},
		'ڤ': {"v"},
		'گ': {"g"},
		'ڨ': {"g"},
		'ڧ': {"q"},
		// semivowels, long vowels, alif, hamza
		Alif:              {"ā"},
		SilentAlif:        {""},
		SilentAlifMaqsura: {""},
		HamzaAbove:        hamzaMatch,
		HamzaBelow:        hamzaMatch,
		WawHamza:          hamzaMatch,
		YaHamza:           hamzaMatch,
		Hamza:             hamzaMatch,
		Waw:               {"w", "ū"},
		Ya:                {"y", "ī"},
		AlifMaqsura:       {"ā"},
		AlifMadda:         {"ʾaā", "’aā", "'aā", "`aā"},
		AlifWasla:         {""},
		DaggerAlif:        {"aā"},
		// short vowels, šadda and sukūn
		Fathatan: {"an"},
		Dammatan: {"un"},
		Kasratan: {"in"},
		Fatha:    {"a"},
		Damma:    {"u"},
		Kasra:    {"i"},
		Shadda:   {"\u0651"},
		Sukun:    {""},
		// ligatures
		LamAlif: {"laā"},
		Allah:   {"l\u0651aāh"},
		Tatweel: {""},
		// numerals
		'١': {"1"}, '٢': {"2"}, '٣': {"3"}, '٤': {"4"}, '٥': {"5"},
		'٦': {"6"}, '٧': {"7"}, '٨': {"8"}, '٩': {"9"}, '٠': {"0"},
		// punctuation
		'؟': {"?"},
		'،': {","},
		'؛': {";"},
		' ': {" "},
	}
}

func unmatchedTable() map[rune]string {
	return map[rune]string{
		'a':    string(Fatha),
		'u':    string(Damma),
		'i':    string(Kasra),
		Shadda: string(Shadda),
		'-':    "",
	}
}
