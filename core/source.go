package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbukum/wordcab-go/errors"
)

// SourceKind identifies the input content family of a job submission.
type SourceKind string

const (
	// SourceGeneric is a pre-processed transcript (text lines).
	SourceGeneric SourceKind = "generic"
	// SourceAudio is a raw audio recording uploaded for transcription.
	SourceAudio SourceKind = "audio"
	// SourceTranscript references a transcript already stored by the API.
	SourceTranscript SourceKind = "wordcab_transcript"
	// SourceSignedURL references a remote file behind a signed URL.
	SourceSignedURL SourceKind = "signed_url"
	// SourceAssemblyAI is an AssemblyAI transcript export.
	SourceAssemblyAI SourceKind = "assembly_ai"
	// SourceDeepgram is a Deepgram transcript export.
	SourceDeepgram SourceKind = "deepgram"
	// SourceRev is a Rev.ai transcript export.
	SourceRev SourceKind = "rev_ai"
	// SourceVTT is a WebVTT subtitle file.
	SourceVTT SourceKind = "vtt"
)

// Accepted file extensions per source family.
var (
	AudioFormats   = []string{".flac", ".m4a", ".mp3", ".mpga", ".ogg", ".wav"}
	GenericFormats = []string{".json", ".txt"}
)

// Source is the input content reference consumed by job submission. A Source
// is immutable once constructed.
type Source interface {
	// Kind returns the source family tag sent in the submission request.
	Kind() SourceKind
}

// --- Audio ---

// AudioSource is an audio recording loaded from a local file.
type AudioSource struct {
	path string
	data []byte
}

// NewAudioSource loads an audio file. The file must exist and carry one of
// the accepted audio extensions.
func NewAudioSource(path string) (*AudioSource, error) {
	data, err := loadFile(path, AudioFormats)
	if err != nil {
		return nil, err
	}
	return &AudioSource{path: path, data: data}, nil
}

// Kind returns the source family tag.
func (s *AudioSource) Kind() SourceKind { return SourceAudio }

// FileName returns the base name sent with the upload.
func (s *AudioSource) FileName() string { return filepath.Base(s.path) }

// Bytes returns the raw audio content.
func (s *AudioSource) Bytes() []byte { return s.data }

// --- Generic ---

// GenericSource is a transcript loaded from a .txt or .json file. A .txt
// file contributes one transcript line per file line; a .json file must hold
// a JSON array of strings.
type GenericSource struct {
	path  string
	lines []string
}

// NewGenericSource loads a transcript file.
func NewGenericSource(path string) (*GenericSource, error) {
	data, err := loadFile(path, GenericFormats)
	if err != nil {
		return nil, err
	}

	var lines []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &lines); err != nil {
			return nil, errors.InvalidInput("filepath", fmt.Sprintf("%s must contain a JSON array of strings: %v", path, err))
		}
	case ".txt":
		lines = splitLines(string(data))
	}
	if len(lines) == 0 {
		return nil, errors.InvalidInput("filepath", fmt.Sprintf("%s contains no transcript lines", path))
	}
	return &GenericSource{path: path, lines: lines}, nil
}

// Kind returns the source family tag.
func (s *GenericSource) Kind() SourceKind { return SourceGeneric }

// Transcript returns the transcript lines.
func (s *GenericSource) Transcript() []string { return s.lines }

// --- In-memory ---

// InMemorySource is a pre-processed transcript passed directly, without a
// backing file. It submits as a generic source.
type InMemorySource struct {
	lines []string
}

// NewInMemorySource wraps transcript lines held in memory.
func NewInMemorySource(lines []string) (*InMemorySource, error) {
	if len(lines) == 0 {
		return nil, errors.InvalidInput("transcript", "an in-memory source needs at least one transcript line")
	}
	return &InMemorySource{lines: lines}, nil
}

// Kind returns the source family tag.
func (s *InMemorySource) Kind() SourceKind { return SourceGeneric }

// Transcript returns the transcript lines.
func (s *InMemorySource) Transcript() []string { return s.lines }

// --- Reserved kinds ---

// NewTranscriptSource would reference a transcript already stored by the API.
// The API does not accept it as a submission source yet.
func NewTranscriptSource(transcriptID string) (Source, error) {
	if transcriptID == "" {
		return nil, errors.InvalidInput("transcript_id", "a transcript source needs a transcript_id")
	}
	return nil, errors.NotSupported("submitting from a stored transcript")
}

// NewSignedURLSource would reference a remote file behind a signed URL.
// The API does not accept it as a submission source yet.
func NewSignedURLSource(url string) (Source, error) {
	if url == "" {
		return nil, errors.InvalidInput("signed_url", "a signed URL source needs a URL")
	}
	return nil, errors.NotSupported("submitting from a signed URL")
}

// --- helpers ---

// loadFile reads a local file after checking its extension against the
// accepted set.
func loadFile(path string, formats []string) ([]byte, error) {
	if path == "" {
		return nil, errors.InvalidInput("filepath", "a file source needs a path")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !containsString(formats, ext) {
		return nil, errors.InvalidInput("filepath", fmt.Sprintf("%q is not an accepted format (accepted: %s)", ext, strings.Join(formats, ", ")))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.InvalidInput("filepath", fmt.Sprintf("file %s does not exist or is not accessible", path))
		}
		return nil, errors.InvalidInput("filepath", fmt.Sprintf("read %s: %v", path, err))
	}
	return data, nil
}

// splitLines splits text into non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func containsString(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
