package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newLegislaturesCommand(ctx *commandContext) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "legislatures",
		Short: "Show the legislature date ranges in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := ctx.sessions()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if dateFlag != "" {
				id, ok := sessions.ForDateString(dateFlag)
				if !ok {
					return fmt.Errorf("no legislature covers %s", dateFlag)
				}
				fmt.Fprintln(out, id)
				return nil
			}

			legislatures := sessions.All()
			rows := make([][]string, 0, len(legislatures))
			for _, leg := range legislatures {
				rows = append(rows, []string{
					strconv.Itoa(leg.ID),
					leg.Start.Format(time.DateOnly),
					leg.End.Format(time.DateOnly),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Legislature", "Start", "End"},
				rows, 0))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Resolve a single date (YYYY-MM-DD) to its legislature")
	return cmd
}
