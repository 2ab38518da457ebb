package core

// JobOrderings lists the accepted order_by values for job listings. A
// leading minus means descending.
var JobOrderings = []string{
	"time_started", "time_completed", "-time_started", "-time_completed",
}

// JobList is one page of jobs.
type JobList struct {
	PageCount int    `json:"page_count"`
	NextPage  string `json:"next"`
	Results   []Job  `json:"results"`
}

// SummaryList is one page of summaries.
type SummaryList struct {
	PageCount int       `json:"page_count"`
	NextPage  string    `json:"next"`
	Results   []Summary `json:"results"`
}

// TranscriptList is one page of transcripts.
type TranscriptList struct {
	PageCount int          `json:"page_count"`
	NextPage  string       `json:"next"`
	Results   []Transcript `json:"results"`
}
