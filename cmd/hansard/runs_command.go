package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"hansard/internal/corpus"
	"hansard/internal/match"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved match runs",
	}

	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))
	runsCmd.AddCommand(newRunsDeleteCommand(ctx))

	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No saved runs")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.CreatedAt.Local().Format(time.DateTime),
					run.TranscriptPath,
					strconv.FormatFloat(run.Threshold, 'f', -1, 64),
					strconv.Itoa(run.RowCount),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Created", "Transcript", "Threshold", "Rows"},
				rows, 3, 4))
			return nil
		},
	}
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a saved run, optionally exporting its rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if run == nil {
				return fmt.Errorf("run %s not found", args[0])
			}
			results, err := store.RunResults(cmd.Context(), run.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s\n", run.ID)
			fmt.Fprintf(out, "  created:    %s\n", run.CreatedAt.Local().Format(time.DateTime))
			fmt.Fprintf(out, "  transcript: %s\n", run.TranscriptPath)
			if run.RosterPath != "" {
				fmt.Fprintf(out, "  roster:     %s\n", run.RosterPath)
			}
			fmt.Fprintf(out, "  threshold:  %v\n", run.Threshold)
			fmt.Fprintln(out, renderLevelSummary(results))

			if outputFlag != "" {
				if err := corpus.SaveCSV(outputFlag, results, extraColumns(results)); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %d rows to %s\n", len(results), outputFlag)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Export run rows to a CSV file")
	return cmd
}

func newRunsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			deleted, err := store.DeleteRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("run %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
			return nil
		},
	}
}

// extraColumns rebuilds the passthrough column list for stored rows. The
// original header order is not persisted, so the union is sorted.
func extraColumns(results []match.Result) []string {
	seen := make(map[string]struct{})
	for _, result := range results {
		for name := range result.Extra {
			seen[name] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for name := range seen {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}
