package wordcab

import (
	"context"

	"github.com/kbukum/wordcab-go/core"
	"github.com/kbukum/wordcab-go/errors"
	"github.com/kbukum/wordcab-go/httpclient"
	"github.com/kbukum/wordcab-go/logger"
)

// jobNameResponse is the submission acknowledgement.
type jobNameResponse struct {
	JobName string `json:"job_name"`
}

// transcriptSource is satisfied by sources that carry transcript lines.
type transcriptSource interface {
	Transcript() []string
}

// StartSummary submits a summarization job. The call returns as soon as the
// server accepts the job; the returned job starts in the Pending status and
// is observed by re-fetching.
func (c *Client) StartSummary(ctx context.Context, source core.Source, params SummaryParams) (*core.Job, error) {
	params.applyDefaults()
	if err := params.validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/summarize", core.KindSummarize, source, params.query(), params.DisplayName)
}

// StartExtract submits an extraction job. Same contract as StartSummary with
// the extraction pipelines.
func (c *Client) StartExtract(ctx context.Context, source core.Source, params ExtractParams) (*core.Job, error) {
	params.applyDefaults()
	if err := params.validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/extract", core.KindExtract, source, params.query(), params.DisplayName)
}

func (c *Client) submit(ctx context.Context, path string, kind core.JobKind, source core.Source, query map[string]string, displayName string) (*core.Job, error) {
	if source == nil {
		return nil, errors.InvalidInput("source", "a job submission needs a source")
	}
	body, err := sourceBody(source)
	if err != nil {
		return nil, err
	}
	query["source"] = string(source.Kind())

	resp, err := httpclient.Post[jobNameResponse](c.http, ctx, path, body, queryOptions(query)...)
	if err != nil {
		return nil, err
	}
	if resp.Data.JobName == "" {
		return nil, errors.Server(resp.StatusCode, "submission acknowledged without a job_name")
	}

	c.log.Info("job submitted", map[string]any{
		logger.FieldJobName:   resp.Data.JobName,
		logger.FieldJobStatus: string(core.StatusPending),
		"kind":                string(kind),
	})

	return &core.Job{
		Kind:        kind,
		JobName:     resp.Data.JobName,
		DisplayName: displayName,
		Status:      core.StatusPending,
		Source:      source.Kind(),
	}, nil
}

// sourceBody maps a source onto its request payload: transcript lines submit
// as JSON, audio submits as a multipart file upload.
func sourceBody(source core.Source) (any, error) {
	switch s := source.(type) {
	case *core.AudioSource:
		return &httpclient.MultipartBody{
			Files: []httpclient.FileField{{
				FieldName: "audio_file",
				FileName:  s.FileName(),
				Data:      s.Bytes(),
			}},
		}, nil
	case transcriptSource:
		return map[string][]string{"transcript": s.Transcript()}, nil
	default:
		return nil, errors.NotSupported("submitting a " + string(source.Kind()) + " source")
	}
}
