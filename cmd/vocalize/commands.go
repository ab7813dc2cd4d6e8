package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/npillmayer/vocalize"
	"github.com/npillmayer/vocalize/batch"
	"github.com/npillmayer/vocalize/tsvlexicon"
)

func newMatchCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "match LATIN NATIVE",
		Short: "Align one transliteration with its Arabic guide string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			match := vocalize.Match
			if strict {
				match = vocalize.MatchStrict
			}
			r, err := match(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Vocalized, r.Latin)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "report where matching got stuck")
	return cmd
}

func newSelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in sample pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			failed, err := vocalize.RunSelfTest(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d pairs failed to match\n",
				failed, len(vocalize.SelfTestPairs))
			return nil
		},
	}
}

func newBatchCmd() *cobra.Command {
	var (
		workers       int
		lexicon       string
		skipVocalized bool
		format        string
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Vocalize the pairs of a YAML job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "text" {
				return errors.Newf("unknown output format %q", format)
			}
			job, err := readJob(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") || job.Workers == 0 {
				job.Workers = workers
			}
			job.SkipVocalized = job.SkipVocalized || skipVocalized
			var opts []vocalize.Option
			if lexicon != "" {
				lex, err := loadLexicon(lexicon)
				if err != nil {
					return err
				}
				opts = append(opts, vocalize.WithLexicon(lex))
			}
			outcomes, err := batch.RunJob(cmd.Context(), vocalize.NewMatcher(nil, opts...), job)
			if err != nil {
				return err
			}
			if format == "yaml" {
				return batch.WriteOutcomes(cmd.OutOrStdout(), outcomes)
			}
			for _, o := range outcomes {
				if o.Error != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", o.Pair.Latin, o.Native, o.Error)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", o.Vocalized, o.Latin)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "number of parallel workers (default GOMAXPROCS)")
	cmd.Flags().StringVar(&lexicon, "lexicon", "", "TSV file with explicit vocalizations")
	cmd.Flags().BoolVar(&skipVocalized, "skip-vocalized", false, "pass through fully vocalized input")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format, yaml or text")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check NATIVE...",
		Short: "Report whether Arabic text is fully vocalized",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, native := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", native, vocalize.HasDiacritics(native))
			}
			return nil
		},
	}
}

func readJob(path string) (batch.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return batch.Job{}, errors.Wrapf(err, "opening job file")
	}
	defer f.Close()
	return batch.ReadJob(f)
}

func loadLexicon(path string) (*vocalize.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening lexicon")
	}
	defer f.Close()
	lex := vocalize.NewLexicon()
	if _, err := tsvlexicon.LoadLexicon(lex, f); err != nil {
		return nil, errors.Wrapf(err, "lexicon %s", path)
	}
	return lex, nil
}
