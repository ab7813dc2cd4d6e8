package graphemes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookupPriority(t *testing.T) {
	tables := Default()
	tests := []struct {
		g              rune
		initial, final bool
		want           Candidates
		pos            Position
	}{
		{Alif, true, false, Candidates{""}, WordInitial},
		{Alif, false, false, Candidates{"ā"}, General},
		{Alif, true, true, Candidates{""}, WordInitial},
		{Dammatan, false, true, Candidates{"un", ""}, WordFinal},
		{Dammatan, false, false, Candidates{"un"}, General},
		{Fatha, false, true, Candidates{"a", ""}, WordFinal},
		{'ب', true, true, Candidates{"b"}, General},
		{HamzaAbove, true, false, Candidates{"ʾ", "’", "'", "`", ""}, WordInitial},
		{HamzaAbove, false, true, Candidates{"ʾ", "’", "'", "`"}, General},
	}
	for _, tt := range tests {
		c, pos, ok := tables.Lookup(tt.g, tt.initial, tt.final)
		if !ok {
			t.Fatalf("%q should be known", tt.g)
		}
		if diff := cmp.Diff(tt.want, c); diff != "" {
			t.Errorf("Lookup(%q, %v, %v) mismatch (-want +got):\n%s", tt.g, tt.initial, tt.final, diff)
		}
		if pos != tt.pos {
			t.Errorf("Lookup(%q, %v, %v) served from %s, want %s", tt.g, tt.initial, tt.final, pos, tt.pos)
		}
	}
	if _, _, ok := tables.Lookup('ی', false, false); ok {
		t.Errorf("Farsi yeh should be missing from the tables")
	}
}

func TestEveryGraphemeHasGeneralEntry(t *testing.T) {
	tables := Default()
	for _, g := range tables.Graphemes() {
		c, ok := tables.Candidates(General, g)
		if !ok {
			t.Errorf("grapheme %q (U+%04X) has no general entry", g, g)
			continue
		}
		if len(c) == 0 {
			t.Errorf("grapheme %q (U+%04X) has no candidates", g, g)
		}
	}
}

func TestTablesAreIndependent(t *testing.T) {
	a, b := NewTables(), NewTables()
	if diff := cmp.Diff(a.Graphemes(), b.Graphemes()); diff != "" {
		t.Fatalf("fresh tables differ:\n%s", diff)
	}
	ca, _ := a.Candidates(General, Alif)
	ca[0] = "x"
	if cb, _ := b.Candidates(General, Alif); cb[0] != "ā" {
		t.Errorf("modifying one table changed another")
	}
}

func TestUnmatched(t *testing.T) {
	tables := Default()
	for r, want := range map[rune]string{'a': string(Fatha), 'u': string(Damma), 'i': string(Kasra),
		Shadda: string(Shadda), '-': ""} {
		m, ok := tables.Unmatched(r)
		if !ok || m != want {
			t.Errorf("Unmatched(%q) = %q, %v", r, m, ok)
		}
	}
	for _, r := range []rune{'b', 'ā', ' ', 'e'} {
		if _, ok := tables.Unmatched(r); ok {
			t.Errorf("%q should need a grapheme", r)
		}
	}
}

func TestCanonical(t *testing.T) {
	if c := (Candidates{"ṯ", "th"}).Canonical(); c != "ṯ" {
		t.Errorf("canonical spelling should be the first, is %q", c)
	}
	if c := Candidates(nil).Canonical(); c != "" {
		t.Errorf("empty candidates should have empty canonical spelling, is %q", c)
	}
}
