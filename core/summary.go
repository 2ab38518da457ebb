package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/wordcab-go/errors"
)

// SummaryType selects the shape of the produced summary.
type SummaryType string

const (
	// SummaryConversational keeps the speaker back-and-forth structure.
	SummaryConversational SummaryType = "conversational"
	// SummaryNarrative rewrites the conversation as flowing prose.
	SummaryNarrative SummaryType = "narrative"
	// SummaryNoSpeaker drops speaker attribution.
	SummaryNoSpeaker SummaryType = "no_speaker"
	// SummaryReasonConclusion produces reason/conclusion pairs and ignores
	// requested lengths.
	SummaryReasonConclusion SummaryType = "reason_conclusion"
)

// SummaryTypes lists the accepted summary types.
var SummaryTypes = []SummaryType{
	SummaryConversational, SummaryNarrative, SummaryNoSpeaker, SummaryReasonConclusion,
}

// Summary length bounds accepted by the API.
const (
	MinSummaryLength = 1
	MaxSummaryLength = 5
)

// Pipelines accepted per job family.
var (
	SummaryPipelines = []string{"transcribe", "summarize"}
	ExtractPipelines = []string{"questions_answers", "topic_segments", "emotions", "speaker_talk_ratios"}
)

// StructuredSummary is one summarized segment with its position in the
// source transcript. Start/End are HH:MM:SS clocks; the timestamp fields are
// the same instants in milliseconds.
type StructuredSummary struct {
	Start             string         `json:"start"`
	End               string         `json:"end"`
	Summary           string         `json:"summary"`
	SummaryHTML       string         `json:"summary_html"`
	TimestampStart    int            `json:"timestamps_start"`
	TimestampEnd      int            `json:"timestamps_end"`
	TranscriptSegment map[string]any `json:"transcript_segment,omitempty"`
}

// Validate checks clock format and clock/timestamp consistency.
func (s *StructuredSummary) Validate() error {
	startMS, err := ParseClock(s.Start)
	if err != nil {
		return errors.InvalidInput("start", err.Error())
	}
	endMS, err := ParseClock(s.End)
	if err != nil {
		return errors.InvalidInput("end", err.Error())
	}
	if s.TimestampStart != startMS {
		return errors.InvalidInput("timestamps_start", fmt.Sprintf("%d does not match start %s", s.TimestampStart, s.Start))
	}
	if s.TimestampEnd != endMS {
		return errors.InvalidInput("timestamps_end", fmt.Sprintf("%d does not match end %s", s.TimestampEnd, s.End))
	}
	return nil
}

// ParseClock converts an HH:MM:SS clock to milliseconds.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%q is not an HH:MM:SS clock", clock)
	}
	values := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%q is not an HH:MM:SS clock", clock)
		}
		values[i] = v
	}
	return values[0]*3600000 + values[1]*60000 + values[2]*1000, nil
}

// LengthSummary is the result produced for one requested length. Structured
// items carry the segment list; reason_conclusion summaries fill the
// Reason/Conclusion pair instead.
type LengthSummary struct {
	StructuredSummary []StructuredSummary `json:"structured_summary,omitempty"`
	Reason            string              `json:"reason,omitempty"`
	Conclusion        string              `json:"conclusion,omitempty"`
}

// Summary is the output of a completed summarization job, keyed by requested
// length.
type Summary struct {
	SummaryID     string                   `json:"summary_id"`
	JobName       string                   `json:"job_name"`
	DisplayName   string                   `json:"display_name"`
	JobStatus     JobStatus                `json:"job_status"`
	ProcessTime   string                   `json:"process_time"`
	SpeakerMap    map[string]string        `json:"speaker_map"`
	Source        SourceKind               `json:"source"`
	SummaryType   SummaryType              `json:"summary_type"`
	Summaries     map[string]LengthSummary `json:"summary"`
	TranscriptID  string                   `json:"transcript_id"`
	TimeStarted   string                   `json:"time_started"`
	TimeCompleted string                   `json:"time_completed"`
}

// Validate checks every structured segment for clock format and
// clock/timestamp consistency.
func (s *Summary) Validate() error {
	for length, ls := range s.Summaries {
		for i := range ls.StructuredSummary {
			if err := ls.StructuredSummary[i].Validate(); err != nil {
				return errors.InvalidInput("summary",
					fmt.Sprintf("length %s segment %d: %v", length, i, err))
			}
		}
	}
	return nil
}

// Lengths returns the requested lengths present in the summary, as sent by
// the API (map keys, e.g. "1", "3").
func (s *Summary) Lengths() []string {
	keys := make([]string, 0, len(s.Summaries))
	for k := range s.Summaries {
		keys = append(keys, k)
	}
	return keys
}
