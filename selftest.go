package vocalize

import (
	"fmt"
	"io"
)

// Pair is a transliteration together with its Arabic guide string.
type Pair struct {
	Latin  string
	Native string
}

// SelfTestPairs is a fixed set of inputs exercising the matcher: plain
// consonant skeletons, definite articles with and without assimilation,
// tāʾ marbūṭa, tanwīn naṣb, accents and diverse hamza spellings. Some of
// them are expected to fail.
var SelfTestPairs = []Pair{
	{"katab", "كتب"},
	{"kátab", "كتب"},
	{"katab", "كتبٌ"},
	{"kat", "كتب"},
	{"kataban", "كتب"},
	{"dakhala", "دخل"},
	{"al-dakhala", "الدخل"},
	{"wa-dakhala", "ودخل"},
	{"wadakhala", "ودخل"},
	{"duuba", "دوبة"},
	{"duwba", "دوبة"},
	{"duubah", "دوبة"},
	{"duubaa", "دوباة"},
	{"duubaah", "دوباة"},
	{"al-duuba", "اَلدّوبة"},
	{"al-duuba", "الدّوبة"},
	{"al-duuba", "الدوبة"},
	{"al-kuuba", "اَلْكوبة"},
	{"al-kuuba", "الكوبة"},
	{"baitu l-kuuba", "بيت الكوبة"},
	{"bait al-kuuba", "بيت الكوبة"},
	{"baitu l-kuuba", "بيت ٱلكوبة"},
	{"diiba", "ديبة"},
	{"aṣdiqaa'", "أَصدقاء"},
	{"aṣdiqā́'", "أَصدقاء"},
	{"'aṣdiqā́'", "أَصدقاء"},
	{"aSdiqaa'", "أَصدقاء"},
	{"hudan", "هُدًى"},
	{"'animi", "أنمي"},
}

// RunSelfTest matches every pair of SelfTestPairs leniently and prints the
// vocalized Arabic and normalized Latin, or the failure. It returns the
// number of pairs which failed to match.
func RunSelfTest(w io.Writer) (failed int, err error) {
	for _, p := range SelfTestPairs {
		r, merr := defaultMatcher.Match(p.Latin, p.Native, false)
		if merr != nil {
			failed++
			_, err = fmt.Fprintf(w, "%s %s: %v\n", p.Latin, p.Native, merr)
		} else {
			_, err = fmt.Fprintf(w, "%s %s\n", r.Vocalized, r.Latin)
		}
		if err != nil {
			return failed, err
		}
	}
	return failed, nil
}
