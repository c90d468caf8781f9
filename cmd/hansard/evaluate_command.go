package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hansard/internal/corpus"
	"hansard/internal/evaluate"
	"hansard/internal/match"
)

func newEvaluateCommand(ctx *commandContext) *cobra.Command {
	var predictionsFlag string
	var runFlag string
	var goldFlag string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score match output against a gold standard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if goldFlag == "" {
				return fmt.Errorf("--gold is required")
			}
			if (predictionsFlag == "") == (runFlag == "") {
				return fmt.Errorf("exactly one of --predictions or --run is required")
			}

			gold, err := loadLabelledRows(goldFlag)
			if err != nil {
				return err
			}

			var predictions []evaluate.Row
			if predictionsFlag != "" {
				predictions, err = loadLabelledRows(predictionsFlag)
				if err != nil {
					return err
				}
			} else {
				store, err := ctx.openStore()
				if err != nil {
					return err
				}
				defer store.Close()

				run, err := store.GetRun(cmd.Context(), runFlag)
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("run %s not found", runFlag)
				}
				results, err := store.RunResults(cmd.Context(), run.ID)
				if err != nil {
					return err
				}
				predictions = labelledFromResults(results)
			}

			report := evaluate.Evaluate(predictions, gold)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&predictionsFlag, "predictions", "", "Match output CSV to score")
	cmd.Flags().StringVar(&runFlag, "run", "", "Stored run id to score")
	cmd.Flags().StringVar(&goldFlag, "gold", "", "Gold-standard CSV (speaker, event_date, matched_name)")
	return cmd
}

// loadLabelledRows reads a CSV carrying at least speaker, event_date and
// matched_name columns. The match output format satisfies this directly.
func loadLabelledRows(path string) ([]evaluate.Row, error) {
	rows, extras, err := corpus.LoadCSV(path)
	if err != nil {
		return nil, err
	}
	hasMatchedName := false
	for _, name := range extras {
		if name == "matched_name" {
			hasMatchedName = true
			break
		}
	}
	if !hasMatchedName {
		return nil, fmt.Errorf("%s: missing matched_name column", path)
	}

	labelled := make([]evaluate.Row, len(rows))
	for i, row := range rows {
		labelled[i] = evaluate.Row{
			Speaker:     row.Speaker,
			EventDate:   row.EventDate,
			MatchedName: row.Extra["matched_name"],
		}
	}
	return labelled, nil
}

func labelledFromResults(results []match.Result) []evaluate.Row {
	labelled := make([]evaluate.Row, len(results))
	for i, result := range results {
		labelled[i] = evaluate.Row{
			Speaker:     result.Speaker,
			EventDate:   result.EventDate,
			MatchedName: result.Outcome.MatchedName,
		}
	}
	return labelled
}

func renderReport(report evaluate.Report) string {
	classOrder := []evaluate.Class{
		evaluate.ClassTruePositive,
		evaluate.ClassTrueNegative,
		evaluate.ClassWrongMatch,
		evaluate.ClassFalsePositive,
		evaluate.ClassMissed,
	}

	rows := make([][]string, 0, len(classOrder)+5)
	for _, class := range classOrder {
		rows = append(rows, []string{string(class), strconv.Itoa(report.Counts[class])})
	}
	rows = append(rows,
		[]string{"scored", strconv.Itoa(report.Scored)},
		[]string{"skipped", strconv.Itoa(report.Skipped)},
		[]string{"precision", formatMetric(report.Precision)},
		[]string{"recall", formatMetric(report.Recall)},
		[]string{"f1", formatMetric(report.F1)},
	)

	return renderTable([]string{"Metric", "Value"}, rows, 1)
}

func formatMetric(value float64) string {
	return strconv.FormatFloat(value, 'f', 4, 64)
}
