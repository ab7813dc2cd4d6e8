package vocalize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/npillmayer/vocalize/canon"
)

// formatControls removes bidi marks and similar invisible characters, which
// frequently appear in Arabic text copied from the web.
var formatControls = runes.Remove(runes.In(unicode.Cf))

// HasDiacritics reports whether native is fully vocalized, i.e. every
// letter needing a vowel carries one. Word-final consonants without a case
// ending are accepted. Callers may use this to skip input which needs no
// vocalization.
func HasDiacritics(native string) bool {
	stripped, _, err := transform.String(formatControls, native)
	if err != nil {
		stripped = native
	}
	return canon.Unvocalized(stripped) == ""
}
