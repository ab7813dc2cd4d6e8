/*
Package tsvlexicon reads exception lexicons for the vocalizer from
tab-separated text.

Each line holds one entry:

	latin <TAB> native <TAB> vocalized [<TAB> normalized-latin]

Blank lines and lines starting with '#' are skipped. If the normalized
transliteration is missing, the input transliteration is used.
*/
package tsvlexicon

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/vocalize"
)

// Reader streams lexicon entries from TSV input.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadLexicon parses TSV data from reader and adds all entries to lex.
// It returns the number of entries added.
func LoadLexicon(lex *vocalize.Lexicon, reader io.Reader) (int, error) {
	return lex.LoadEntries(NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next entry.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (vocalize.Entry, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 || len(fields) > 4 {
			return vocalize.Entry{}, errors.Newf("line %d: expected 3 or 4 tab-separated fields, have %d",
				r.line, len(fields))
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		e := vocalize.Entry{
			Latin:     fields[0],
			Native:    fields[1],
			Vocalized: fields[2],
		}
		if len(fields) == 4 {
			e.Normalized = fields[3]
		}
		if e.Latin == "" || e.Native == "" || e.Vocalized == "" {
			return vocalize.Entry{}, errors.Newf("line %d: empty field", r.line)
		}
		return e, nil
	}
	if err := r.scanner.Err(); err != nil {
		return vocalize.Entry{}, errors.Wrapf(err, "line %d", r.line)
	}
	return vocalize.Entry{}, io.EOF
}
