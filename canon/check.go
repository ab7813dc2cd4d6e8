package canon

import (
	"unicode"

	"github.com/npillmayer/vocalize/graphemes"
)

// Unvocalized returns the part of an Arabic string which is not accounted
// for by vocalization marks. The result is empty if s is fully vocalized.
//
// Word-final consonants are exempt, so words without iʿrāb count as
// vocalized. Characters outside the Arabic blocks are never reported.
func Unvocalized(s string) string {
	r := []rune(s)
	r = reorderShadda(r)
	r = dropOtioseAlif(r)
	r = dropTanwinAlif(r)
	r = inferFathaBeforeTaMarbuta(r)
	r = inferFathaBeforeMedialAlif(r)
	r = inferFathaBeforeDaggerAlif(r)
	r = inferKasraAfterHamzaBelow(r)
	r = dropDaggerOverAlif(r)
	r = dropArticleShadda(r)
	r = transliterateArticle(r)
	// everything prepared, now remove what is vocalized
	r = removeRunes(r, func(c rune) bool {
		return graphemes.IsPunctuation(c) || c == graphemes.Shadda
	})
	r = dropFinalConsonants(r)
	r = dropVocalizedLetters(r)
	r = dropLongVowels(r)
	r = removeRunes(r, graphemes.IsVowelMark)
	r = removeRunes(r, func(c rune) bool {
		return graphemes.IsDigit(c) || c == graphemes.AlifWasla || c == graphemes.AlifMadda
	})
	r = removeRunes(r, func(c rune) bool { return !graphemes.IsArabic(c) })
	return string(r)
}

func removeRunes(r []rune, drop func(rune) bool) []rune {
	out := make([]rune, 0, len(r))
	for _, c := range r {
		if !drop(c) {
			out = append(out, c)
		}
	}
	return out
}

// dropOtioseAlif ignores alif jamīla in 3pl verb forms: final “ُوا” is
// treated as “ُو” and “وْا” as “وْ”.
func dropOtioseAlif(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if c == graphemes.Alif && i >= 2 && r[i-2] == graphemes.Damma && r[i-1] == graphemes.Waw {
			continue
		}
		if c == graphemes.Alif && i >= 2 && r[i-2] == graphemes.Waw && r[i-1] == graphemes.Sukun {
			continue
		}
		out = append(out, c)
	}
	return out
}

// dropTanwinAlif ignores the alif or alif maqṣūra carrying or following
// fatḥatan.
func dropTanwinAlif(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if graphemes.IsAlif(c) &&
			((i > 0 && r[i-1] == graphemes.Fathatan) || (i+1 < len(r) && r[i+1] == graphemes.Fathatan)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// inferFathaBeforeMedialAlif vocalizes an alif between consonants, the first
// one possibly carrying šadda. Initial alif is silent when not marked with
// hamza; final alif might be pronounced -an.
func inferFathaBeforeMedialAlif(r []rune) []rune {
	out := make([]rune, 0, len(r)+1)
	for i, c := range r {
		if c == graphemes.Alif && i > 0 && i+1 < len(r) && graphemes.IsConsonant(r[i+1]) {
			prev := i - 1
			if r[prev] == graphemes.Shadda && prev > 0 {
				prev--
			}
			if graphemes.IsConsonant(r[prev]) {
				out = append(out, graphemes.Fatha)
			}
		}
		out = append(out, c)
	}
	return out
}

// inferFathaBeforeDaggerAlif vocalizes alif or alif maqṣūra + dagger alif.
func inferFathaBeforeDaggerAlif(r []rune) []rune {
	out := make([]rune, 0, len(r)+1)
	for i, c := range r {
		if graphemes.IsAlif(c) && i > 0 && r[i-1] != graphemes.Fatha &&
			i+1 < len(r) && r[i+1] == graphemes.DaggerAlif {
			out = append(out, graphemes.Fatha)
		}
		out = append(out, c)
	}
	return out
}

// inferKasraAfterHamzaBelow vocalizes hamza under alif with kasra.
func inferKasraAfterHamzaBelow(r []rune) []rune {
	out := make([]rune, 0, len(r)+1)
	for i, c := range r {
		out = append(out, c)
		if c == graphemes.HamzaBelow && i+1 < len(r) && r[i+1] != graphemes.Kasra {
			out = append(out, graphemes.Kasra)
		}
	}
	return out
}

// dropDaggerOverAlif ignores dagger alif written over alif or alif maqṣūra.
func dropDaggerOverAlif(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if c == graphemes.DaggerAlif && i > 0 && graphemes.IsAlif(r[i-1]) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// transliterateArticle replaces a word-initial definite article by “al-”,
// or by “l-” if written with alif waṣla. The article never needs vowels.
func transliterateArticle(r []rune) []rune {
	out := make([]rune, 0, len(r)+2)
	for i := 0; i < len(r); i++ {
		if k, ok := graphemes.ArticleEnd(r, i); ok {
			if r[i] == graphemes.AlifWasla {
				out = append(out, 'l', '-')
			} else {
				out = append(out, 'a', 'l', '-')
			}
			i = k - 1
			continue
		}
		out = append(out, r[i])
	}
	return out
}

// dropFinalConsonants exempts words without iʿrāb: a consonant at the end of
// the text or before white space is removed.
func dropFinalConsonants(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if graphemes.IsConsonant(c) && (i+1 == len(r) || unicode.IsSpace(r[i+1])) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// dropVocalizedLetters removes consonants and alif followed by a vowel mark.
// The marks stay, to recognize long vowels of mark + wāw/yāʾ/alif next.
func dropVocalizedLetters(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if (graphemes.IsConsonant(c) || c == graphemes.Alif) &&
			i+1 < len(r) && graphemes.IsVowelMark(r[i+1]) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// dropLongVowels removes ḍamma + wāw, kasra + yāʾ and fatḥa/fatḥatan +
// alif/alif maqṣūra.
func dropLongVowels(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		if i+1 < len(r) {
			c, next := r[i], r[i+1]
			if (c == graphemes.Damma && next == graphemes.Waw) ||
				(c == graphemes.Kasra && next == graphemes.Ya) ||
				((c == graphemes.Fatha || c == graphemes.Fathatan) && graphemes.IsAlif(next)) {
				i++
				continue
			}
		}
		out = append(out, r[i])
	}
	return out
}
