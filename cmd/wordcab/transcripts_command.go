package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTranscriptsCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcripts",
		Short: "Inspect transcripts",
	}
	cmd.AddCommand(newTranscriptsGetCommand(flags))
	return cmd
}

func newTranscriptsGetCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <transcript-id>",
		Short: "Print a transcript, one block per speaker turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			transcript, err := client.RetrieveTranscript(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), transcript.Format())
			return nil
		},
	}
}
