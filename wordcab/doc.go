// Package wordcab is the client SDK for the Wordcab summarization API.
//
// A Client authenticates every call with the account's API key and exposes
// the API's operations: submitting summarization and extraction jobs,
// listing and retrieving jobs, summaries and transcripts, deleting jobs,
// and relabeling transcript speakers.
//
//	client, err := wordcab.NewClient()
//	if err != nil { ... }
//	defer client.Close()
//
//	source, err := core.NewGenericSource("call.txt")
//	job, err := client.StartSummary(ctx, source, wordcab.SummaryParams{
//		DisplayName: "support call",
//		SummaryType: core.SummaryNarrative,
//		SummaryLens: []int{3},
//	})
//
// Package-level functions mirror every Client operation for one-off calls;
// they build a default Client, perform the call, and release it.
package wordcab
