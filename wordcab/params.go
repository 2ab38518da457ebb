package wordcab

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/wordcab-go/core"
	"github.com/kbukum/wordcab-go/errors"
	"github.com/kbukum/wordcab-go/validation"
)

// StatsParams filters the account usage snapshot.
type StatsParams struct {
	// MinCreated and MaxCreated bound the reporting window. Zero values
	// leave the bound open.
	MinCreated time.Time
	MaxCreated time.Time
	// Tags restricts the snapshot to jobs carrying any of the given tags.
	Tags []string
}

func (p *StatsParams) validate() error {
	if !p.MinCreated.IsZero() && !p.MaxCreated.IsZero() && p.MinCreated.After(p.MaxCreated) {
		return errors.InvalidInput("min_created", "must not be after max_created")
	}
	return nil
}

func (p *StatsParams) query() map[string]string {
	q := make(map[string]string)
	if !p.MinCreated.IsZero() {
		q["min_created"] = p.MinCreated.UTC().Format(time.RFC3339)
	}
	if !p.MaxCreated.IsZero() {
		q["max_created"] = p.MaxCreated.UTC().Format(time.RFC3339)
	}
	if len(p.Tags) > 0 {
		q["tags"] = strings.Join(p.Tags, ",")
	}
	return q
}

// SummaryParams configures a summarization job submission.
type SummaryParams struct {
	// DisplayName is the human-readable job label.
	DisplayName string `json:"display_name" validate:"required"`
	// SummaryType selects the summary shape.
	SummaryType core.SummaryType `json:"summary_type" validate:"required,oneof=conversational narrative no_speaker reason_conclusion"`
	// SummaryLens are the requested summary lengths, each 1 to 5. Ignored
	// by reason_conclusion summaries.
	SummaryLens []int `json:"summary_lens" validate:"omitempty,dive,min=1,max=5"`
	// Pipeline selects the processing stages. Defaults to the full
	// transcribe+summarize pipeline.
	Pipeline []string `json:"pipeline"`
	// Tags label the job for later stats filtering.
	Tags []string `json:"tags"`
	// EphemeralData deletes the input data once the summary is created.
	EphemeralData bool `json:"ephemeral_data"`
	// OnlyAPI keeps the job out of the web dashboard. Defaults to true.
	OnlyAPI *bool `json:"only_api"`
	// SplitLongUtterances splits long utterances before summarizing.
	SplitLongUtterances bool `json:"split_long_utterances"`
}

func (p *SummaryParams) applyDefaults() {
	if len(p.Pipeline) == 0 {
		p.Pipeline = core.SummaryPipelines
	}
	if p.OnlyAPI == nil {
		onlyAPI := true
		p.OnlyAPI = &onlyAPI
	}
}

func (p *SummaryParams) validate() error {
	if err := validation.Validate(p); err != nil {
		return err
	}
	return validatePipeline(p.Pipeline, core.SummaryPipelines)
}

func (p *SummaryParams) query() map[string]string {
	q := map[string]string{
		"display_name":          p.DisplayName,
		"summary_type":          string(p.SummaryType),
		"pipeline":              strings.Join(p.Pipeline, ","),
		"ephemeral_data":        strconv.FormatBool(p.EphemeralData),
		"only_api":              strconv.FormatBool(*p.OnlyAPI),
		"split_long_utterances": strconv.FormatBool(p.SplitLongUtterances),
	}
	if len(p.SummaryLens) > 0 {
		q["summary_lens"] = joinInts(p.SummaryLens)
	}
	if len(p.Tags) > 0 {
		q["tags"] = strings.Join(p.Tags, ",")
	}
	return q
}

// ExtractParams configures an extraction job submission.
type ExtractParams struct {
	// DisplayName is the human-readable job label.
	DisplayName string `json:"display_name" validate:"required"`
	// Pipeline selects the extraction stages. Defaults to all of them.
	Pipeline []string `json:"pipeline"`
	// Tags label the job for later stats filtering.
	Tags []string `json:"tags"`
	// EphemeralData deletes the input data once the extraction is done.
	EphemeralData bool `json:"ephemeral_data"`
	// OnlyAPI keeps the job out of the web dashboard. Defaults to true.
	OnlyAPI *bool `json:"only_api"`
	// SplitLongUtterances splits long utterances before extraction.
	SplitLongUtterances bool `json:"split_long_utterances"`
}

func (p *ExtractParams) applyDefaults() {
	if len(p.Pipeline) == 0 {
		p.Pipeline = core.ExtractPipelines
	}
	if p.OnlyAPI == nil {
		onlyAPI := true
		p.OnlyAPI = &onlyAPI
	}
}

func (p *ExtractParams) validate() error {
	if err := validation.Validate(p); err != nil {
		return err
	}
	return validatePipeline(p.Pipeline, core.ExtractPipelines)
}

func (p *ExtractParams) query() map[string]string {
	q := map[string]string{
		"display_name":          p.DisplayName,
		"pipeline":              strings.Join(p.Pipeline, ","),
		"ephemeral_data":        strconv.FormatBool(p.EphemeralData),
		"only_api":              strconv.FormatBool(*p.OnlyAPI),
		"split_long_utterances": strconv.FormatBool(p.SplitLongUtterances),
	}
	if len(p.Tags) > 0 {
		q["tags"] = strings.Join(p.Tags, ",")
	}
	return q
}

// ListJobsParams configures a job listing page.
type ListJobsParams struct {
	// PageSize caps the number of results. Defaults to 100.
	PageSize int
	// OrderBy sorts by ±time_started or ±time_completed. A leading minus
	// means descending. Defaults to -time_started.
	OrderBy string
}

func (p *ListJobsParams) applyDefaults() {
	if p.PageSize <= 0 {
		p.PageSize = 100
	}
	if p.OrderBy == "" {
		p.OrderBy = "-time_started"
	}
}

func (p *ListJobsParams) validate() error {
	for _, ordering := range core.JobOrderings {
		if p.OrderBy == ordering {
			return nil
		}
	}
	return errors.InvalidInput("order_by",
		fmt.Sprintf("%q is not one of %s", p.OrderBy, strings.Join(core.JobOrderings, ", ")))
}

// ListParams configures a summary or transcript listing page.
type ListParams struct {
	// PageSize caps the number of results. Defaults to 100.
	PageSize int
}

func (p *ListParams) applyDefaults() {
	if p.PageSize <= 0 {
		p.PageSize = 100
	}
}

// validatePipeline checks that every requested stage belongs to the allowed
// set.
func validatePipeline(pipeline, allowed []string) error {
	for _, stage := range pipeline {
		ok := false
		for _, a := range allowed {
			if stage == a {
				ok = true
				break
			}
		}
		if !ok {
			return errors.InvalidInput("pipeline",
				fmt.Sprintf("%q is not one of %s", stage, strings.Join(allowed, ", ")))
		}
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
