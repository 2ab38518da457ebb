package wordcab

import (
	"context"
	"net/url"
	"strconv"

	"github.com/kbukum/wordcab-go/core"
	"github.com/kbukum/wordcab-go/errors"
	"github.com/kbukum/wordcab-go/httpclient"
	"github.com/kbukum/wordcab-go/logger"
)

// GetStats fetches the account usage snapshot. The returned stats are
// validated against their documented invariants before being returned.
func (c *Client) GetStats(ctx context.Context, params StatsParams) (*core.Stats, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	opts := queryOptions(params.query())
	resp, err := httpclient.Get[core.Stats](c.http, ctx, "/me", opts...)
	if err != nil {
		return nil, err
	}
	stats := resp.Data
	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListJobs fetches one page of jobs.
func (c *Client) ListJobs(ctx context.Context, params ListJobsParams) (*core.JobList, error) {
	params.applyDefaults()
	if err := params.validate(); err != nil {
		return nil, err
	}

	resp, err := httpclient.Get[core.JobList](c.http, ctx, "/jobs",
		httpclient.WithQueryParam("page_size", strconv.Itoa(params.PageSize)),
		httpclient.WithQueryParam("order_by", params.OrderBy),
	)
	if err != nil {
		return nil, err
	}
	list := resp.Data
	return &list, nil
}

// ListSummaries fetches one page of summaries.
func (c *Client) ListSummaries(ctx context.Context, params ListParams) (*core.SummaryList, error) {
	params.applyDefaults()
	resp, err := httpclient.Get[core.SummaryList](c.http, ctx, "/summaries",
		httpclient.WithQueryParam("page_size", strconv.Itoa(params.PageSize)),
	)
	if err != nil {
		return nil, err
	}
	list := resp.Data
	return &list, nil
}

// ListTranscripts fetches one page of transcripts.
func (c *Client) ListTranscripts(ctx context.Context, params ListParams) (*core.TranscriptList, error) {
	params.applyDefaults()
	resp, err := httpclient.Get[core.TranscriptList](c.http, ctx, "/transcripts",
		httpclient.WithQueryParam("page_size", strconv.Itoa(params.PageSize)),
	)
	if err != nil {
		return nil, err
	}
	list := resp.Data
	return &list, nil
}

// RetrieveJob fetches the current state of a job. Unknown job names yield a
// not-found error.
func (c *Client) RetrieveJob(ctx context.Context, jobName string) (*core.Job, error) {
	if jobName == "" {
		return nil, errors.InvalidInput("job_name", "must not be empty")
	}
	resp, err := httpclient.Get[core.Job](c.http, ctx, "/jobs/"+url.PathEscape(jobName))
	if err != nil {
		return nil, err
	}
	job := resp.Data
	return &job, nil
}

// RetrieveSummary fetches a summary by id. Structured segments are checked
// for clock/timestamp consistency before being returned.
func (c *Client) RetrieveSummary(ctx context.Context, summaryID string) (*core.Summary, error) {
	if summaryID == "" {
		return nil, errors.InvalidInput("summary_id", "must not be empty")
	}
	resp, err := httpclient.Get[core.Summary](c.http, ctx, "/summaries/"+url.PathEscape(summaryID))
	if err != nil {
		return nil, err
	}
	summary := resp.Data
	if err := summary.Validate(); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RetrieveTranscript fetches a transcript by id. Utterance timestamps are
// checked for ordering before being returned.
func (c *Client) RetrieveTranscript(ctx context.Context, transcriptID string) (*core.Transcript, error) {
	if transcriptID == "" {
		return nil, errors.InvalidInput("transcript_id", "must not be empty")
	}
	resp, err := httpclient.Get[core.Transcript](c.http, ctx, "/transcripts/"+url.PathEscape(transcriptID))
	if err != nil {
		return nil, err
	}
	transcript := resp.Data
	if err := transcript.Validate(); err != nil {
		return nil, err
	}
	return &transcript, nil
}

// DeleteJob removes a job. Deleting a job that was already deleted yields a
// not-found error, like any other unknown job name.
func (c *Client) DeleteJob(ctx context.Context, jobName string) (*core.DeletedJob, error) {
	if jobName == "" {
		return nil, errors.InvalidInput("job_name", "must not be empty")
	}
	resp, err := httpclient.Delete[core.DeletedJob](c.http, ctx, "/jobs/"+url.PathEscape(jobName))
	if err != nil {
		return nil, err
	}

	c.log.Info("job deleted", map[string]any{logger.FieldJobName: jobName})

	deleted := resp.Data
	if deleted.JobName == "" {
		deleted.JobName = jobName
	}
	return &deleted, nil
}

// ChangeSpeakerLabels replaces a transcript's speaker map and returns the
// updated transcript.
func (c *Client) ChangeSpeakerLabels(ctx context.Context, transcriptID string, speakerMap map[string]string) (*core.Transcript, error) {
	if transcriptID == "" {
		return nil, errors.InvalidInput("transcript_id", "must not be empty")
	}
	if len(speakerMap) == 0 {
		return nil, errors.InvalidInput("speaker_map", "must not be empty")
	}

	body := map[string]map[string]string{"speaker_map": speakerMap}
	resp, err := httpclient.Patch[core.Transcript](c.http, ctx, "/transcripts/"+url.PathEscape(transcriptID), body)
	if err != nil {
		return nil, err
	}
	transcript := resp.Data
	return &transcript, nil
}

func queryOptions(query map[string]string) []httpclient.RequestOption {
	opts := make([]httpclient.RequestOption, 0, len(query))
	for k, v := range query {
		opts = append(opts, httpclient.WithQueryParam(k, v))
	}
	return opts
}
