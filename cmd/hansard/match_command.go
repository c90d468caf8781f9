package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"hansard/internal/corpus"
	"hansard/internal/match"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var rosterFlag string
	var outputFlag string
	var thresholdFlag float64
	var saveFlag bool

	cmd := &cobra.Command{
		Use:   "match <transcript.csv>",
		Short: "Match transcript speaker labels against the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			threshold := thresholdFlag
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Matching.FuzzyThreshold
			}
			if threshold < 0 || threshold > 100 {
				return fmt.Errorf("threshold %v outside [0, 100]", threshold)
			}

			members, err := ctx.rosterMembers(rosterFlag)
			if err != nil {
				return err
			}
			sessions, err := ctx.sessions()
			if err != nil {
				return err
			}
			rows, extras, err := corpus.LoadCSV(args[0])
			if err != nil {
				return err
			}

			matcher := match.NewMatcher(members, sessions, threshold, logger)
			results := matcher.Process(rows)

			if outputFlag != "" {
				if err := corpus.SaveCSV(outputFlag, results, extras); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Wrote %d rows to %s\n", len(results), outputFlag)
				fmt.Fprintln(out, renderLevelSummary(results))
			} else {
				if err := corpus.WriteCSV(cmd.OutOrStdout(), results, extras); err != nil {
					return err
				}
			}

			if saveFlag {
				store, err := ctx.openStore()
				if err != nil {
					return err
				}
				defer store.Close()

				run, err := store.SaveRun(cmd.Context(), args[0], rosterFlag, threshold, results)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved run %s\n", run.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rosterFlag, "roster", "", "Roster CSV path (overrides configuration)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output CSV path (default stdout)")
	cmd.Flags().Float64Var(&thresholdFlag, "threshold", 0, "Minimum fuzzy similarity (0-100)")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "Persist the run to the run store")
	return cmd
}

// summaryOrder fixes the display order of match levels in summaries.
var summaryOrder = []match.Level{
	match.LevelDeterministic,
	match.LevelFuzzy,
	match.LevelContextual,
	match.LevelAmbiguous,
	match.LevelRole,
	match.LevelCrowd,
	match.LevelUnmatched,
}

func renderLevelSummary(results []match.Result) string {
	counts := make(map[match.Level]int)
	for _, r := range results {
		counts[r.Outcome.Level]++
	}

	rows := make([][]string, 0, len(summaryOrder))
	for _, level := range summaryOrder {
		if counts[level] == 0 {
			continue
		}
		rows = append(rows, []string{string(level), strconv.Itoa(counts[level])})
		delete(counts, level)
	}
	// Levels outside the known set, should any appear in stored data.
	leftover := make([]string, 0, len(counts))
	for level := range counts {
		leftover = append(leftover, string(level))
	}
	sort.Strings(leftover)
	for _, level := range leftover {
		rows = append(rows, []string{level, strconv.Itoa(counts[match.Level(level)])})
	}
	rows = append(rows, []string{"total", strconv.Itoa(len(results))})

	return renderTable([]string{"Level", "Rows"}, rows, 1)
}
