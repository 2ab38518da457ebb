package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbukum/wordcab-go/wordcab"
)

func newStatsCommand(flags *rootFlags) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show account usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			stats, err := client.GetStats(cmd.Context(), wordcab.StatsParams{Tags: tags})
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Account", stats.AccountEmail},
				{"Plan", string(stats.Plan)},
				{"Requests", strconv.Itoa(stats.RequestCount)},
				{"Minutes summarized", strconv.Itoa(stats.MinutesSummarized)},
				{"Transcripts summarized", strconv.Itoa(stats.TranscriptsSummarized)},
			}
			if stats.MonthlyRequestLimit != "" {
				rows = append(rows, []string{"Monthly request limit", stats.MonthlyRequestLimit})
			}
			if stats.MeteredCharge != "" {
				rows = append(rows, []string{"Metered charge", stats.MeteredCharge})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, 1))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Restrict stats to jobs carrying the tag (repeatable)")
	return cmd
}
