package canon

import (
	"testing"
	"unicode/utf8"
)

func TestNative(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ب\u064e\u0651", "ب\u0651\u064e"},
		{"ب\u064e\u0651ا", "ب\u0651\u064eا"},
		{"دوبة", "دوب\u064eة"},
		{"حياة", "حياة"},
		{"كتاب\u064bا", "كتاب\u064b\ufff1"},
		{"هد\u064bى", "هد\u064b\ufff2"},
		{"الش\u0651مس", "الشمس"},
		{"الش\u0651\u0651", "الش"},
		{"ال\u0652ق\u0651مر", "ال\u0652ق\u0651مر"},
		{"مدرسة", "مدرس\u064eة"},
		{"كتب", "كتب"},
	}
	for _, tt := range tests {
		if got := Native(tt.in); got != tt.want {
			t.Errorf("Native(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPostNative(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"كتب", "ك\u0652ت\u0652ب"},
		{"الشمس", "الش\u0651\u0652م\u0652س"},
		{"ابن", "اب\u0652ن"},
		{"د\u064fو\u0652", "د\u064fو"},
		{"ب\u0650ي\u0652ت", "ب\u0650يت"},
		{"كتاب\ufff1", "ك\u0652تابا"},
		{"هد\u064b\ufff2", "ه\u0652د\u064bى"},
	}
	for _, tt := range tests {
		if got := PostNative(tt.in); got != tt.want {
			t.Errorf("PostNative(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func FuzzNativeIdempotent(f *testing.F) {
	for _, s := range []string{"كتب", "الدخل", "دوبة", "هُدًى", "اَلدّوبة", "بيت ٱلكوبة", "أَصدقاء", "كتابًا"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		once := Native(s)
		if twice := Native(once); twice != once {
			t.Fatalf("Native not idempotent for %q: %q, then %q", s, once, twice)
		}
	})
}
