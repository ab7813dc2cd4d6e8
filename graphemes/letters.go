package graphemes

import (
	"strings"
	"unicode"
)

// Arabic letters and marks which take part in alignment rules.
const (
	Alif        = 'ا' // U+0627
	AlifMaqsura = 'ى' // U+0649
	AlifMadda   = 'آ' // U+0622
	AlifWasla   = 'ٱ' // U+0671, hamzatu l-waṣl
	HamzaAbove  = 'أ' // U+0623
	HamzaBelow  = 'إ' // U+0625
	WawHamza    = 'ؤ' // U+0624
	YaHamza     = 'ئ' // U+0626
	Hamza       = 'ء' // U+0621
	Waw         = 'و' // U+0648
	Ya          = 'ي' // U+064A
	TaMarbuta   = 'ة' // U+0629
	Lam         = 'ل' // U+0644
	Tatweel     = 'ـ' // U+0640
	LamAlif     = 'ﻻ' // U+FEFB
	Allah       = 'ﷲ' // U+FDF2
)

// ZWNJ is the zero-width non-joiner.
const ZWNJ = '\u200C'

// Vowel and gemination marks.
const (
	Fathatan   = '\u064B'
	Dammatan   = '\u064C'
	Kasratan   = '\u064D'
	Fatha      = '\u064E'
	Damma      = '\u064F'
	Kasra      = '\u0650'
	Shadda     = '\u0651'
	Sukun      = '\u0652'
	DaggerAlif = '\u0670'
)

// Private sentinels for an alif or alif maqṣūra which is silent after
// fatḥatan. They never leave the package boundary of the matcher.
const (
	SilentAlif        = '\uFFF1'
	SilentAlifMaqsura = '\uFFF2'
)

const (
	consonantsNeedingVowels = "بتثجحخدذرزسشصضطظعغفقكلمنهپچڤگڨڧأإؤئءةﷲ"
	consonants              = consonantsNeedingVowels + "وي"
	sunLetters              = "تثدذرزسشصضطظلن"
	punctuation             = "؟،؛ـ"
	digits                  = "١٢٣٤٥٦٧٨٩٠"
)

// IsConsonant is true for letters which need a vowel or sukūn after them,
// including the semivowels wāw and yāʾ.
func IsConsonant(r rune) bool {
	return strings.ContainsRune(consonants, r)
}

// IsSunLetter is true for the 14 letters assimilating the lām of the
// definite article.
func IsSunLetter(r rune) bool {
	return strings.ContainsRune(sunLetters, r)
}

// IsPunctuation is true for Arabic question mark, comma, semicolon and taṭwīl.
func IsPunctuation(r rune) bool {
	return strings.ContainsRune(punctuation, r)
}

// IsDigit is true for Arabic-Indic digits.
func IsDigit(r rune) bool {
	return strings.ContainsRune(digits, r)
}

// IsShortVowelMark is true for the marks NFC normalization moves in front of
// a šadda: the short vowels, the tanwīn vowels and dagger alif.
func IsShortVowelMark(r rune) bool {
	return (r >= Fathatan && r <= Kasra) || r == DaggerAlif
}

// IsVowelMark is true for every vocalization diacritic except šadda.
func IsVowelMark(r rune) bool {
	return IsShortVowelMark(r) || r == Sukun
}

// IsAlif is true for plain alif and alif maqṣūra.
func IsAlif(r rune) bool {
	return r == Alif || r == AlifMaqsura
}

// IsArticleSeat is true for the letters which may start a definite article.
func IsArticleSeat(r rune) bool {
	return r == Alif || r == AlifWasla
}

// IsArabic reports whether r lies in one of the Arabic script blocks.
func IsArabic(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF,
		r >= 0x0750 && r <= 0x077F,
		r >= 0x08A1 && r <= 0x08FF,
		r >= 0xFB50 && r <= 0xFDFF,
		r >= 0xFE70 && r <= 0xFEFF:
		return true
	}
	return false
}

// ArticleEnd checks for a definite article (alif or alif waṣla, optional
// fatḥa, lām) starting at position i. If there is one, it returns the index
// just after the lām. The article has to start a word: i is 0 or follows
// white space.
func ArticleEnd(text []rune, i int) (int, bool) {
	if i < 0 || i >= len(text) {
		return 0, false
	}
	if i > 0 && !unicode.IsSpace(text[i-1]) {
		return 0, false
	}
	if !IsArticleSeat(text[i]) {
		return 0, false
	}
	j := i + 1
	if j < len(text) && text[j] == Fatha {
		j++
	}
	if j < len(text) && text[j] == Lam {
		return j + 1, true
	}
	return 0, false
}
