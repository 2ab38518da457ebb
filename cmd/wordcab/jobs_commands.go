package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/wordcab-go/wordcab"
)

func newJobsCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect and manage jobs",
	}
	cmd.AddCommand(newJobsListCommand(flags))
	cmd.AddCommand(newJobsGetCommand(flags))
	cmd.AddCommand(newJobsDeleteCommand(flags))
	return cmd
}

func newJobsListCommand(flags *rootFlags) *cobra.Command {
	var pageSize int
	var orderBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			list, err := client.ListJobs(cmd.Context(), wordcab.ListJobsParams{
				PageSize: pageSize,
				OrderBy:  orderBy,
			})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(list.Results))
			for _, job := range list.Results {
				rows = append(rows, []string{
					job.JobName,
					string(job.Kind),
					string(job.Status),
					job.DisplayName,
					job.TimeStarted,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Job", "Kind", "Status", "Display name", "Started"}, rows))
			if list.NextPage != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "More pages available (%d total)\n", list.PageCount)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Number of jobs per page")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "Sort order: ±time_started or ±time_completed")
	return cmd
}

func newJobsGetCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <job-name>",
		Short: "Show one job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			job, err := client.RetrieveJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Job", job.JobName},
				{"Kind", string(job.Kind)},
				{"Status", string(job.Status)},
				{"Display name", job.DisplayName},
				{"Source", string(job.Source)},
				{"Transcript", job.TranscriptID},
				{"Started", job.TimeStarted},
				{"Completed", job.TimeCompleted},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}
}

func newJobsDeleteCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <job-name>",
		Short: "Delete a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			deleted, err := client.DeleteJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", deleted.JobName)
			return nil
		},
	}
}
