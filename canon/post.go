package canon

import (
	"strings"

	"github.com/npillmayer/vocalize/graphemes"
)

// PostNative turns the matcher's Arabic output into its surface form:
// sentinels become real letters again, consonant clusters receive sukūn, and
// a sun letter after the definite article receives its šadda back.
func PostNative(s string) string {
	r := []rune(s)
	r = restoreSilentAlif(r)
	r = insertSukun(r)
	r = dropSukunAfterLongVowel(r)
	r = assimilateArticle(r)
	return string(r)
}

func restoreSilentAlif(r []rune) []rune {
	out := make([]rune, len(r))
	for i, c := range r {
		switch c {
		case graphemes.SilentAlif:
			out[i] = graphemes.Alif
		case graphemes.SilentAlifMaqsura:
			out[i] = graphemes.AlifMaqsura
		default:
			out[i] = c
		}
	}
	return out
}

// insertSukun marks every consonant directly followed by another consonant.
// The matcher never inserts sukūn itself, as the Latin has no letter for it.
func insertSukun(r []rune) []rune {
	out := make([]rune, 0, len(r)+len(r)/2)
	for i, c := range r {
		out = append(out, c)
		if graphemes.IsConsonant(c) && i+1 < len(r) && graphemes.IsConsonant(r[i+1]) {
			out = append(out, graphemes.Sukun)
		}
	}
	return out
}

// dropSukunAfterLongVowel removes the sukūn from ḍamma + wāw and kasra + yāʾ,
// which spell the long vowels ū and ī rather than a consonant cluster.
func dropSukunAfterLongVowel(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if c == graphemes.Sukun && i >= 2 {
			if (r[i-1] == graphemes.Waw && r[i-2] == graphemes.Damma) ||
				(r[i-1] == graphemes.Ya && r[i-2] == graphemes.Kasra) {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// assimilateArticle rewrites definite article + sukūn + sun letter to
// article + sun letter + šadda.
func assimilateArticle(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		if k, ok := graphemes.ArticleEnd(r, i); ok && k+1 < len(r) &&
			r[k] == graphemes.Sukun && graphemes.IsSunLetter(r[k+1]) {
			out = append(out, r[i:k]...)
			out = append(out, r[k+1], graphemes.Shadda)
			i = k + 1
			continue
		}
		out = append(out, r[i])
	}
	return out
}

var longVowelContraction = strings.NewReplacer("aā", "ā", "iī", "ī", "uū", "ū")

// PostLatin turns the matcher's Latin output into its surface form: doubled
// consonants are spelled out again, and the short vowels inserted in front of
// long vowels by Latin are removed.
func PostLatin(s string) string {
	return contractLongVowels(degeminate(s))
}

// degeminate undoes Geminate: a rune followed by šadda is doubled.
func degeminate(s string) string {
	if !strings.ContainsRune(s, graphemes.Shadda) {
		return s
	}
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if c == graphemes.Shadda && i > 0 && r[i-1] != graphemes.Shadda {
			out = append(out, r[i-1])
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func contractLongVowels(s string) string {
	return longVowelContraction.Replace(s)
}
