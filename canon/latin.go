/*
Package canon holds the rewrite passes run before and after alignment.

Latin and Native bring the two inputs into the spelling conventions the
candidate tables of package graphemes are written in. PostNative and PostLatin
undo the internal conventions again and restore surface forms.

Every pass is total: any input string is accepted and none of them fails.
*/
package canon

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/vocalize/graphemes"
)

const (
	combiningAcute  = '\u0301'
	combiningMacron = '\u0304'
)

var longVowel = map[rune]rune{'a': 'ā', 'e': 'ē', 'i': 'ī', 'o': 'ō', 'u': 'ū'}

// shortOf maps the three long vowels of Arabic to their short counterparts.
var shortOf = map[rune]rune{'ā': 'a', 'ī': 'i', 'ū': 'u'}

func isPlainVowel(r rune) bool {
	_, ok := longVowel[r]
	return ok
}

// Latin rewrites a transliteration into the internal spelling: lowercase,
// without acute accents, long vowels written with a macron and preceded by
// their short vowel (“ā” becomes “aā”).
func Latin(s string) string {
	s = lowercase(s)
	s = stripAcute(s)
	s = collapseDoubledVowels(s)
	s = collapseColonVowels(s)
	s = joinDigraphs(s)
	s = splitLongGlides(s)
	s = diphthongs(s)
	return insertShortBeforeLong(s)
}

func lowercase(s string) string {
	return strings.ToLower(s)
}

// stripAcute removes acute accents from plain and macron vowels, whether
// precomposed (“á”, “ḗ”) or written as combining marks.
func stripAcute(s string) string {
	d := []rune(norm.NFD.String(s))
	out := make([]rune, 0, len(d))
	for i, r := range d {
		if r == combiningAcute && accentsVowel(d, i) {
			continue
		}
		out = append(out, r)
	}
	return norm.NFC.String(string(out))
}

// accentsVowel is true if the mark at i belongs to a plain vowel, possibly
// after other acute and macron marks or a length colon.
func accentsVowel(d []rune, i int) bool {
	j := i - 1
	for j >= 0 && (d[j] == combiningAcute || d[j] == combiningMacron || d[j] == ':') {
		j--
	}
	return j >= 0 && isPlainVowel(d[j])
}

// “aa” => “ā”
func collapseDoubledVowels(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		if long, ok := longVowel[r[i]]; ok && i+1 < len(r) && r[i+1] == r[i] {
			out = append(out, long)
			i++
			continue
		}
		out = append(out, r[i])
	}
	return string(out)
}

// “a:” => “ā”
func collapseColonVowels(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		if long, ok := longVowel[r[i]]; ok && i+1 < len(r) && r[i+1] == ':' {
			out = append(out, long)
			i++
			continue
		}
		out = append(out, r[i])
	}
	return string(out)
}

// joinDigraphs drops a hyphen or apostrophe in “t-h”, “t'h” etc., as used by
// transliteration styles spelling ث as “th”.
func joinDigraphs(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		out = append(out, r[i])
		if strings.ContainsRune("dtgkcs", r[i]) && i+2 < len(r) &&
			(r[i+1] == '-' || r[i+1] == '\'') && r[i+2] == 'h' {
			i++ // skip the separator
		}
	}
	return string(out)
}

// splitLongGlides resolves “ūw” to “uww” and “īy” to “iyy”.
func splitLongGlides(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r)+2)
	for i := 0; i < len(r); i++ {
		if i+1 < len(r) {
			if r[i] == 'ū' && r[i+1] == 'w' {
				out = appendGlide(out, 'u', 'w')
				i++
				continue
			}
			if r[i] == 'ī' && r[i+1] == 'y' {
				out = appendGlide(out, 'i', 'y')
				i++
				continue
			}
		}
		out = append(out, r[i])
	}
	return string(out)
}

func appendGlide(out []rune, short, glide rune) []rune {
	if len(out) == 0 || out[len(out)-1] != short {
		out = append(out, short)
	}
	return append(out, glide, glide)
}

// diphthongs rewrites “ai”, “au”, “āi”, “āu” to “ay”, “aw”, “āy”, “āw”.
func diphthongs(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		out = append(out, r[i])
		if (r[i] == 'a' || r[i] == 'ā') && i+1 < len(r) && !beforeOwnLong(r, i+1) {
			switch r[i+1] {
			case 'i':
				out = append(out, 'y')
				i++
			case 'u':
				out = append(out, 'w')
				i++
			}
		}
	}
	return string(out)
}

// beforeOwnLong is true if the short vowel at i has been inserted in front of
// its long vowel, as in “aiī”.
func beforeOwnLong(r []rune, i int) bool {
	return i+1 < len(r) && shortOf[r[i+1]] == r[i]
}

// insertShortBeforeLong writes a short vowel in front of each long vowel, as
// Arabic spells a short-vowel mark before the long-vowel letter. A long vowel
// already preceded by its short vowel is left alone.
func insertShortBeforeLong(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r)+len(r)/2)
	for _, c := range r {
		if short, ok := shortOf[c]; ok {
			if len(out) == 0 || out[len(out)-1] != short {
				out = append(out, short)
			}
		}
		out = append(out, c)
	}
	return string(out)
}

// Geminate rewrites a doubled consonant to the consonant followed by šadda.
// It is applied to an already canonical Latin string.
func Geminate(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		if i+1 < len(r) && r[i+1] == r[i] && geminable(r[i]) {
			out = append(out, r[i], graphemes.Shadda)
			i++
			continue
		}
		out = append(out, r[i])
	}
	return string(out)
}

func geminable(r rune) bool {
	if isPlainVowel(r) || unicode.IsSpace(r) || r == '-' || r == graphemes.Shadda {
		return false
	}
	_, long := shortOf[r]
	return !long
}
