package wordcab

import (
	"context"

	"github.com/kbukum/wordcab-go/core"
)

// Package-level variants of every Client operation, for one-off calls.
// Each builds a default Client from the ambient credentials, performs the
// call, releases the Client, and propagates the operation's error unchanged.
// Options apply to the throwaway client.

// GetStats fetches the account usage snapshot with a one-off client.
func GetStats(ctx context.Context, params StatsParams, opts ...Option) (*core.Stats, error) {
	return withClient(opts, func(c *Client) (*core.Stats, error) {
		return c.GetStats(ctx, params)
	})
}

// StartSummary submits a summarization job with a one-off client.
func StartSummary(ctx context.Context, source core.Source, params SummaryParams, opts ...Option) (*core.Job, error) {
	return withClient(opts, func(c *Client) (*core.Job, error) {
		return c.StartSummary(ctx, source, params)
	})
}

// StartExtract submits an extraction job with a one-off client.
func StartExtract(ctx context.Context, source core.Source, params ExtractParams, opts ...Option) (*core.Job, error) {
	return withClient(opts, func(c *Client) (*core.Job, error) {
		return c.StartExtract(ctx, source, params)
	})
}

// ListJobs fetches one page of jobs with a one-off client.
func ListJobs(ctx context.Context, params ListJobsParams, opts ...Option) (*core.JobList, error) {
	return withClient(opts, func(c *Client) (*core.JobList, error) {
		return c.ListJobs(ctx, params)
	})
}

// ListSummaries fetches one page of summaries with a one-off client.
func ListSummaries(ctx context.Context, params ListParams, opts ...Option) (*core.SummaryList, error) {
	return withClient(opts, func(c *Client) (*core.SummaryList, error) {
		return c.ListSummaries(ctx, params)
	})
}

// ListTranscripts fetches one page of transcripts with a one-off client.
func ListTranscripts(ctx context.Context, params ListParams, opts ...Option) (*core.TranscriptList, error) {
	return withClient(opts, func(c *Client) (*core.TranscriptList, error) {
		return c.ListTranscripts(ctx, params)
	})
}

// RetrieveJob fetches a job with a one-off client.
func RetrieveJob(ctx context.Context, jobName string, opts ...Option) (*core.Job, error) {
	return withClient(opts, func(c *Client) (*core.Job, error) {
		return c.RetrieveJob(ctx, jobName)
	})
}

// RetrieveSummary fetches a summary with a one-off client.
func RetrieveSummary(ctx context.Context, summaryID string, opts ...Option) (*core.Summary, error) {
	return withClient(opts, func(c *Client) (*core.Summary, error) {
		return c.RetrieveSummary(ctx, summaryID)
	})
}

// RetrieveTranscript fetches a transcript with a one-off client.
func RetrieveTranscript(ctx context.Context, transcriptID string, opts ...Option) (*core.Transcript, error) {
	return withClient(opts, func(c *Client) (*core.Transcript, error) {
		return c.RetrieveTranscript(ctx, transcriptID)
	})
}

// DeleteJob removes a job with a one-off client.
func DeleteJob(ctx context.Context, jobName string, opts ...Option) (*core.DeletedJob, error) {
	return withClient(opts, func(c *Client) (*core.DeletedJob, error) {
		return c.DeleteJob(ctx, jobName)
	})
}

// ChangeSpeakerLabels replaces a transcript's speaker map with a one-off
// client.
func ChangeSpeakerLabels(ctx context.Context, transcriptID string, speakerMap map[string]string, opts ...Option) (*core.Transcript, error) {
	return withClient(opts, func(c *Client) (*core.Transcript, error) {
		return c.ChangeSpeakerLabels(ctx, transcriptID, speakerMap)
	})
}

func withClient[T any](opts []Option, fn func(*Client) (T, error)) (T, error) {
	client, err := NewClient(opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	defer client.Close()
	return fn(client)
}
