package vocalize

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/derekparker/trie"
)

// Entry is an explicit vocalization, used in place of alignment.
type Entry struct {
	Latin      string // transliteration as looked up
	Native     string // Arabic guide string as looked up
	Vocalized  string // vocalized Arabic
	Normalized string // normalized transliteration; defaults to Latin
}

// EntryReader yields lexicon entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (Entry, error)
}

// Lexicon holds exceptions to the matcher, e.g. for words whose spelling
// is irregular (هٰذا “hāḏā”) or whose transliteration is ambiguous.
//
// Entries are keyed by the Arabic guide string and the lowercased
// transliteration.
type Lexicon struct {
	mu      sync.RWMutex
	entries *trie.Trie
	size    int
}

const keySeparator = "\t"

// NewLexicon creates an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{entries: trie.New()}
}

func lexiconKey(latin, native string) string {
	return native + keySeparator + strings.ToLower(latin)
}

// AddEntry registers one explicit vocalization. An existing entry for the
// same pair is replaced.
func (lex *Lexicon) AddEntry(e Entry) error {
	if e.Native == "" || e.Latin == "" || e.Vocalized == "" {
		return errors.Newf("incomplete lexicon entry %q/%q", e.Latin, e.Native)
	}
	if strings.Contains(e.Native, keySeparator) {
		return errors.Newf("lexicon entry %q contains a tab", e.Native)
	}
	if e.Normalized == "" {
		e.Normalized = e.Latin
	}
	lex.mu.Lock()
	defer lex.mu.Unlock()
	key := lexiconKey(e.Latin, e.Native)
	if _, found := lex.entries.Find(key); !found {
		lex.size++
	}
	lex.entries.Add(key, e)
	return nil
}

// LoadEntries loads entries from a streaming source. It returns the number
// of entries loaded.
func (lex *Lexicon) LoadEntries(reader EntryReader) (int, error) {
	n := 0
	for {
		e, err := reader.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return n, errors.Wrap(err, "loading lexicon")
		}
		if err = lex.AddEntry(e); err != nil {
			return n, err
		}
		n++
	}
	tracer().Infof("loaded %d lexicon entries, lexicon size is %d", n, lex.Len())
	return n, nil
}

// Lookup finds the entry for a transliteration and its guide string.
func (lex *Lexicon) Lookup(latin, native string) (Entry, bool) {
	if lex == nil {
		return Entry{}, false
	}
	lex.mu.RLock()
	defer lex.mu.RUnlock()
	node, found := lex.entries.Find(lexiconKey(latin, native))
	if !found {
		return Entry{}, false
	}
	e, ok := node.Meta().(Entry)
	return e, ok
}

// Spellings lists the lowercased transliterations known for native, sorted.
func (lex *Lexicon) Spellings(native string) []string {
	lex.mu.RLock()
	defer lex.mu.RUnlock()
	prefix := native + keySeparator
	if !lex.entries.HasKeysWithPrefix(prefix) {
		return nil
	}
	keys := lex.entries.PrefixSearch(prefix)
	spellings := make([]string, 0, len(keys))
	for _, key := range keys {
		spellings = append(spellings, strings.TrimPrefix(key, prefix))
	}
	sort.Strings(spellings)
	return spellings
}

// Len returns the number of entries.
func (lex *Lexicon) Len() int {
	if lex == nil {
		return 0
	}
	lex.mu.RLock()
	defer lex.mu.RUnlock()
	return lex.size
}
