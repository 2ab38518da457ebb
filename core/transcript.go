package core

import (
	"fmt"
	"strings"

	"github.com/kbukum/wordcab-go/errors"
)

// TranscriptUtterance is one speaker turn in a transcript.
type TranscriptUtterance struct {
	Text           string `json:"text"`
	Speaker        string `json:"speaker"`
	Start          string `json:"start"`
	End            string `json:"end"`
	TimestampStart int    `json:"timestamp_start"`
	TimestampEnd   int    `json:"timestamp_end"`
}

// Validate checks timestamp ordering within the utterance.
func (u *TranscriptUtterance) Validate() error {
	if u.TimestampEnd < u.TimestampStart {
		return errors.InvalidInput("timestamp_end",
			fmt.Sprintf("utterance ends (%d) before it starts (%d)", u.TimestampEnd, u.TimestampStart))
	}
	return nil
}

// Transcript is an ordered sequence of utterances together with the jobs and
// summaries derived from it.
type Transcript struct {
	TranscriptID    string                `json:"transcript_id"`
	JobIDSet        []string              `json:"job_id_set"`
	SummaryIDSet    []string              `json:"summary_id_set"`
	Transcript      []TranscriptUtterance `json:"transcript"`
	SpeakerMap      map[string]string     `json:"speaker_map"`
	QuestionAnswers []map[string]string   `json:"question_answers,omitempty"`
}

// Validate checks timestamp ordering of every utterance.
func (t *Transcript) Validate() error {
	for i := range t.Transcript {
		if err := t.Transcript[i].Validate(); err != nil {
			return errors.InvalidInput("transcript", fmt.Sprintf("utterance %d: %v", i, err))
		}
	}
	return nil
}

// SpeakerTurn is a run of consecutive utterances by the same speaker.
type SpeakerTurn struct {
	Speaker string
	Text    string
}

// BySpeaker groups consecutive utterances by speaker label, producing one
// text block per run. Speaker labels are resolved through the speaker map
// when present.
func (t *Transcript) BySpeaker() []SpeakerTurn {
	var turns []SpeakerTurn
	for _, u := range t.Transcript {
		speaker := t.speakerName(u.Speaker)
		if n := len(turns); n > 0 && turns[n-1].Speaker == speaker {
			turns[n-1].Text += " " + u.Text
			continue
		}
		turns = append(turns, SpeakerTurn{Speaker: speaker, Text: u.Text})
	}
	return turns
}

// Format renders the transcript as text, one "Speaker: text" block per
// consecutive speaker run.
func (t *Transcript) Format() string {
	turns := t.BySpeaker()
	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(turn.Speaker)
		b.WriteString(": ")
		b.WriteString(turn.Text)
	}
	return b.String()
}

// speakerName resolves a raw label through the speaker map.
func (t *Transcript) speakerName(label string) string {
	if mapped, ok := t.SpeakerMap[label]; ok && mapped != "" {
		return mapped
	}
	return label
}
