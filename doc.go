/*
Package vocalize adds vowel marks to Arabic text, guided by a Latin
transliteration of the same word or phrase.

Arabic is usually written without short vowels and gemination marks, while a
transliteration like “kataba” spells them out. The matcher walks both strings
in lockstep: each Arabic grapheme is matched against a set of acceptable Latin
spellings (e.g. خ = “ḵ”, “x” or “kh”), and Latin vowels without a counterpart
in the Arabic are inserted as diacritics. The result is a fully vocalized
Arabic string together with a normalized transliteration:

	r, err := vocalize.Match("kataba", "كتب")
	// r.Vocalized == "كَتَبَ", r.Latin == "kataba"

Matching is a single left-to-right pass. Candidate spellings depend on the
position of a grapheme in its word (see package graphemes), and both inputs
are canonicalized before and after matching (see package canon).

The vocalization may be overridden for individual words by a Lexicon of
exceptions, in the same way a hyphenation dictionary carries exceptions to
its patterns.

Further Reading

	https://en.wiktionary.org/wiki/Wiktionary:Arabic_transliteration
	https://en.wikipedia.org/wiki/Arabic_diacritics

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package vocalize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vocalize'
func tracer() tracing.Trace {
	return tracing.Select("vocalize")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
