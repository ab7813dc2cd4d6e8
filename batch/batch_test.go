package batch

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/npillmayer/vocalize"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var pairs = []Pair{
	{Latin: "katab", Native: "كتب"},
	{Latin: "kat", Native: "كتب"},
	{Latin: "al-dakhala", Native: "الدخل"},
	{Latin: "duuba", Native: "دوبة"},
	{Latin: "hudan", Native: "هُدًى"},
}

func TestRunPreservesOrder(t *testing.T) {
	outcomes, err := Run(context.Background(), vocalize.NewMatcher(nil), pairs, 3)
	require.NoError(t, err)
	want := []Outcome{
		{Pair: pairs[0], Vocalized: "كَتَب", Latin: "katab", Changed: true},
		{Pair: pairs[1], Error: outcomes[1].Error},
		{Pair: pairs[2], Vocalized: "اَلدَّخَلَ", Latin: "al-daḵala", Changed: true},
		{Pair: pairs[3], Vocalized: "دُوبَة", Latin: "dūba", Changed: true},
		{Pair: pairs[4], Vocalized: "هُدًى", Latin: "hudan", Changed: false},
	}
	if diff := cmp.Diff(want, outcomes); diff != "" {
		t.Fatalf("outcomes mismatch (-want +got):\n%s", diff)
	}
	require.Contains(t, outcomes[1].Error, "trailing Arabic")
}

func TestRunWorkerCounts(t *testing.T) {
	var many []Pair
	for i := 0; i < 50; i++ {
		many = append(many, pairs...)
	}
	serial, err := Run(context.Background(), vocalize.NewMatcher(nil), many, 1)
	require.NoError(t, err)
	for _, workers := range []int{0, 2, 16} {
		parallel, err := Run(context.Background(), vocalize.NewMatcher(nil), many, workers)
		require.NoError(t, err)
		if diff := cmp.Diff(serial, parallel); diff != "" {
			t.Fatalf("%d workers differ from serial run:\n%s", workers, diff)
		}
	}
}

type cancellingMatcher struct {
	cancel context.CancelFunc
	calls  atomic.Int32
}

func (m *cancellingMatcher) Match(latin, native string, strict bool) (vocalize.Result, error) {
	if m.calls.Add(1) == 2 {
		m.cancel()
	}
	return vocalize.Result{Vocalized: native, Latin: latin}, nil
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := &cancellingMatcher{cancel: cancel}
	var many []Pair
	for i := 0; i < 100; i++ {
		many = append(many, pairs[0])
	}
	_, err := Run(ctx, m, many, 1)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, int(m.calls.Load()), len(many))
}

func TestRunJobSkipsVocalized(t *testing.T) {
	job, err := ReadJob(strings.NewReader(`
workers: 2
skip-vocalized: true
pairs:
  - latin: kataba
    native: كَتَبَ
  - latin: katab
    native: كتب
`))
	require.NoError(t, err)
	require.Equal(t, 2, job.Workers)
	outcomes, err := RunJob(context.Background(), vocalize.NewMatcher(nil), job)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	require.True(t, outcomes[0].Skipped)
	require.Equal(t, "كَتَبَ", outcomes[0].Vocalized)
	require.False(t, outcomes[1].Skipped)
	require.Equal(t, "كَتَب", outcomes[1].Vocalized)
}

func TestReadJobErrors(t *testing.T) {
	_, err := ReadJob(strings.NewReader("pairs:\n  - latin: katab\n"))
	require.Error(t, err)
	_, err = ReadJob(strings.NewReader("pears: []\n"))
	require.Error(t, err)
	job, err := ReadJob(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, job.Pairs)
}

func TestWriteOutcomes(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOutcomes(&buf, []Outcome{
		{Pair: pairs[0], Vocalized: "كَتَب", Latin: "katab", Changed: true},
		{Pair: pairs[1], Error: "no match"},
	})
	require.NoError(t, err)
	want := `- latin: katab
  native: كتب
  vocalized: كَتَب
  normalized: katab
  changed: true
- latin: kat
  native: كتب
  changed: false
  error: no match
`
	require.Equal(t, want, buf.String())
}
