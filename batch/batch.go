/*
Package batch vocalizes lists of transliteration pairs in parallel.

Jobs and their outcomes are exchanged as YAML documents:

	workers: 4
	skip-vocalized: true
	pairs:
	  - latin: katab
	    native: كتب

A pair which fails to match does not abort the batch; its outcome carries
the error message instead of a vocalization.
*/
package batch

import (
	"context"
	"io"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/vocalize"
)

func tracer() tracing.Trace {
	return tracing.Select("vocalize")
}

// Matcher is the part of *vocalize.Matcher used by a batch run.
type Matcher interface {
	Match(latin, native string, strict bool) (vocalize.Result, error)
}

// Pair is a transliteration together with its Arabic guide string.
type Pair struct {
	Latin  string `yaml:"latin"`
	Native string `yaml:"native"`
}

// Outcome is the result of matching one pair. Changed is set if the
// vocalized Arabic differs from the input. Skipped pairs have been
// vocalized already and are passed through unmodified.
type Outcome struct {
	Pair      `yaml:",inline"`
	Vocalized string `yaml:"vocalized,omitempty"`
	Latin     string `yaml:"normalized,omitempty"`
	Changed   bool   `yaml:"changed"`
	Skipped   bool   `yaml:"skipped,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

// Job is a batch of pairs together with its processing parameters.
type Job struct {
	Workers       int    `yaml:"workers,omitempty"`
	SkipVocalized bool   `yaml:"skip-vocalized,omitempty"`
	Pairs         []Pair `yaml:"pairs"`
}

// Run matches all pairs using at most workers goroutines. Outcomes are
// returned in input order. If workers is not positive, GOMAXPROCS is used.
//
// Run returns an error only if ctx is done before all pairs have been
// processed.
func Run(ctx context.Context, m Matcher, pairs []Pair, workers int) ([]Outcome, error) {
	return run(ctx, m, pairs, workers, false)
}

// RunJob runs a job read by ReadJob.
func RunJob(ctx context.Context, m Matcher, job Job) ([]Outcome, error) {
	return run(ctx, m, job.Pairs, job.Workers, job.SkipVocalized)
}

func run(ctx context.Context, m Matcher, pairs []Pair, workers int, skip bool) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	outcomes := make([]Outcome, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var aborted error
	for i, p := range pairs {
		if aborted = gctx.Err(); aborted != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = process(m, p, skip)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch aborted")
	}
	if aborted != nil {
		return nil, errors.Wrap(aborted, "batch aborted")
	}
	tracer().Infof("batch of %d pairs done with %d workers", len(pairs), workers)
	return outcomes, nil
}

func process(m Matcher, p Pair, skip bool) Outcome {
	o := Outcome{Pair: p}
	if skip && vocalize.HasDiacritics(p.Native) {
		o.Vocalized, o.Latin, o.Skipped = p.Native, p.Latin, true
		return o
	}
	r, err := m.Match(p.Latin, p.Native, true)
	if err != nil {
		tracer().Infof("batch: %s (%s): %v", p.Native, p.Latin, err)
		o.Error = err.Error()
		return o
	}
	o.Vocalized, o.Latin = r.Vocalized, r.Latin
	o.Changed = r.Vocalized != p.Native
	return o
}

// ReadJob decodes a YAML job.
func ReadJob(r io.Reader) (Job, error) {
	var job Job
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		if err == io.EOF {
			return job, nil
		}
		return Job{}, errors.Wrap(err, "reading batch job")
	}
	for i, p := range job.Pairs {
		if p.Native == "" {
			return Job{}, errors.Newf("batch job: pair %d has no Arabic guide string", i)
		}
	}
	return job, nil
}

// WriteOutcomes encodes outcomes as a YAML sequence.
func WriteOutcomes(w io.Writer, outcomes []Outcome) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(outcomes); err != nil {
		return errors.Wrap(err, "writing batch outcomes")
	}
	return enc.Close()
}
