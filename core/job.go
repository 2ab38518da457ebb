package core

import "encoding/json"

// JobKind discriminates the two job families.
type JobKind string

const (
	// KindSummarize is a summarization job.
	KindSummarize JobKind = "summarize"
	// KindExtract is an extraction job.
	KindExtract JobKind = "extract"
)

// JobStatus is the server-side lifecycle status of a job. The vocabulary is
// the API's own; the Queued/Processing/Complete helpers map it onto the
// coarse lifecycle queued -> processing -> complete | error.
type JobStatus string

const (
	StatusDeleted             JobStatus = "Deleted"
	StatusError               JobStatus = "Error"
	StatusItemQueued          JobStatus = "ItemQueued"
	StatusPending             JobStatus = "Pending"
	StatusPreparingTranscript JobStatus = "PreparingTranscript"
	StatusTranscribing        JobStatus = "Transcribing"
	StatusTranscriptComplete  JobStatus = "TranscriptComplete"
	StatusPreparingSummary    JobStatus = "PreparingSummary"
	StatusSummarizing         JobStatus = "Summarizing"
	StatusSummaryComplete     JobStatus = "SummaryComplete"
	StatusPreparingExtraction JobStatus = "PreparingExtraction"
	StatusExtracting          JobStatus = "Extracting"
	StatusExtractionComplete  JobStatus = "ExtractionComplete"
)

// Queued reports whether the job is waiting to start.
func (s JobStatus) Queued() bool {
	return s == StatusItemQueued || s == StatusPending
}

// Processing reports whether the server is actively working on the job.
func (s JobStatus) Processing() bool {
	switch s {
	case StatusPreparingTranscript, StatusTranscribing, StatusTranscriptComplete,
		StatusPreparingSummary, StatusSummarizing,
		StatusPreparingExtraction, StatusExtracting:
		return true
	}
	return false
}

// Complete reports whether the job finished producing its result. Results
// may only be retrieved once this holds.
func (s JobStatus) Complete() bool {
	return s == StatusSummaryComplete || s == StatusExtractionComplete
}

// Failed reports whether the job ended in the error state.
func (s JobStatus) Failed() bool {
	return s == StatusError
}

// Terminal reports whether the job will never transition again.
func (s JobStatus) Terminal() bool {
	return s.Complete() || s == StatusError || s == StatusDeleted
}

// Known reports whether the status belongs to the documented vocabulary.
func (s JobStatus) Known() bool {
	return s.Queued() || s.Processing() || s.Terminal()
}

// JobSettings is the submission configuration echoed back on job objects.
type JobSettings struct {
	EphemeralData       bool   `json:"ephemeral_data"`
	Pipeline            string `json:"pipeline"`
	OnlyAPI             bool   `json:"only_api"`
	SplitLongUtterances bool   `json:"split_long_utterances"`
}

// Job is a server-side unit of work. The identifier (JobName) is unique and
// stable for the job's lifetime; every other field is owned by the server
// and observed by re-fetching.
type Job struct {
	Kind           JobKind        `json:"-"`
	DisplayName    string         `json:"display_name"`
	JobName        string         `json:"job_name"`
	Status         JobStatus      `json:"job_status"`
	Source         SourceKind     `json:"source"`
	Settings       JobSettings    `json:"settings"`
	TranscriptID   string         `json:"transcript_id"`
	SummaryDetails map[string]any `json:"summary_details,omitempty"`
	TimeStarted    string         `json:"time_started"`
	TimeCompleted  string         `json:"time_completed"`
}

// UnmarshalJSON discriminates the job kind: the API marks summarize jobs by
// including summary_details, extract jobs by omitting it.
func (j *Job) UnmarshalJSON(data []byte) error {
	type alias Job
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*j = Job(a)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if _, ok := probe["summary_details"]; ok {
		j.Kind = KindSummarize
	} else {
		j.Kind = KindExtract
	}
	return nil
}

// DeletedJob confirms a deletion, echoing the removed job's name.
type DeletedJob struct {
	JobName string `json:"job_name"`
}
