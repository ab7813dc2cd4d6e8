package canon

import (
	"slices"

	"github.com/npillmayer/vocalize/graphemes"
)

// Native prepares an unvocalized or partially vocalized Arabic guide string
// for grapheme-by-grapheme matching.
func Native(s string) string {
	r := []rune(s)
	r = reorderShadda(r)
	r = inferFathaBeforeTaMarbuta(r)
	r = silenceTanwinAlif(r)
	r = dropArticleShadda(r)
	return string(r)
}

// reorderShadda moves a šadda in front of the vowel marks directly preceding
// it. NFC normalization reorders šadda + vowel to vowel + šadda; matching
// needs the šadda first, as it follows a doubled Latin consonant.
func reorderShadda(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for _, c := range r {
		if c != graphemes.Shadda {
			out = append(out, c)
			continue
		}
		j := len(out)
		for j > 0 && graphemes.IsShortVowelMark(out[j-1]) {
			j--
		}
		out = slices.Insert(out, j, c)
	}
	return out
}

// inferFathaBeforeTaMarbuta makes the ending of tāʾ marbūṭa unambiguous: it
// is always preceded by fatḥa, alif or dagger alif. The fatḥa forces a match
// of “a” in the Latin, so that tāʾ marbūṭa itself may match “h”, “t” or
// nothing.
func inferFathaBeforeTaMarbuta(r []rune) []rune {
	out := make([]rune, 0, len(r)+1)
	for i, c := range r {
		if c == graphemes.TaMarbuta && i > 0 {
			switch r[i-1] {
			case graphemes.Fatha, graphemes.Alif, graphemes.DaggerAlif, graphemes.SilentAlif:
			default:
				out = append(out, graphemes.Fatha)
			}
		}
		out = append(out, c)
	}
	return out
}

// silenceTanwinAlif replaces an alif or alif maqṣūra adjacent to fatḥatan by
// its silent sentinel (tanwīn naṣb, e.g. عَصًا “ʿaṣan”, هُدًى “hudan”). The
// fatḥatan is expected before the alif, but is often placed over it.
func silenceTanwinAlif(r []rune) []rune {
	out := make([]rune, len(r))
	for i, c := range r {
		out[i] = c
		if !graphemes.IsAlif(c) {
			continue
		}
		if (i > 0 && r[i-1] == graphemes.Fathatan) || (i+1 < len(r) && r[i+1] == graphemes.Fathatan) {
			if c == graphemes.Alif {
				out[i] = graphemes.SilentAlif
			} else {
				out[i] = graphemes.SilentAlifMaqsura
			}
		}
	}
	return out
}

// dropArticleShadda removes the šadda of a sun letter after a word-initial
// definite article, as in الشّمس. The Latin side writes the article as
// “al-” followed by the plain consonant, so the šadda would find no match.
func dropArticleShadda(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		if k, ok := graphemes.ArticleEnd(r, i); ok && k+1 < len(r) &&
			graphemes.IsSunLetter(r[k]) && r[k+1] == graphemes.Shadda {
			out = append(out, r[i:k+1]...)
			i = k + 1
			for i+1 < len(r) && r[i+1] == graphemes.Shadda {
				i++
			}
			continue
		}
		out = append(out, r[i])
	}
	return out
}
