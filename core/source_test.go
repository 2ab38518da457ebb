package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/wordcab-go/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewAudioSource(t *testing.T) {
	path := writeFile(t, "call.mp3", "fake-audio")
	src, err := NewAudioSource(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Kind() != SourceAudio {
		t.Errorf("expected audio kind, got %s", src.Kind())
	}
	if src.FileName() != "call.mp3" {
		t.Errorf("expected call.mp3, got %s", src.FileName())
	}
	if string(src.Bytes()) != "fake-audio" {
		t.Errorf("unexpected content: %q", src.Bytes())
	}
}

func TestNewAudioSource_BadExtension(t *testing.T) {
	path := writeFile(t, "call.aiff", "x")
	if _, err := NewAudioSource(path); !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestNewAudioSource_MissingFile(t *testing.T) {
	_, err := NewAudioSource(filepath.Join(t.TempDir(), "nope.wav"))
	if !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestNewAudioSource_EmptyPath(t *testing.T) {
	if _, err := NewAudioSource(""); !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestNewGenericSource_Txt(t *testing.T) {
	path := writeFile(t, "meeting.txt", "SPEAKER A: Hello.\nSPEAKER B: Hi.\n\n")
	src, err := NewGenericSource(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Kind() != SourceGeneric {
		t.Errorf("expected generic kind, got %s", src.Kind())
	}
	lines := src.Transcript()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "SPEAKER A: Hello." {
		t.Errorf("unexpected first line: %q", lines[0])
	}
}

func TestNewGenericSource_JSON(t *testing.T) {
	path := writeFile(t, "meeting.json", `["SPEAKER A: Hello.", "SPEAKER B: Hi."]`)
	src, err := NewGenericSource(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(src.Transcript()) != 2 {
		t.Errorf("expected 2 lines, got %v", src.Transcript())
	}
}

func TestNewGenericSource_BadJSON(t *testing.T) {
	path := writeFile(t, "meeting.json", `{"not": "an array"}`)
	if _, err := NewGenericSource(path); !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestNewGenericSource_BadExtension(t *testing.T) {
	path := writeFile(t, "meeting.docx", "x")
	if _, err := NewGenericSource(path); !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestNewInMemorySource(t *testing.T) {
	src, err := NewInMemorySource([]string{"SPEAKER A: Hello."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Kind() != SourceGeneric {
		t.Errorf("in-memory sources submit as generic, got %s", src.Kind())
	}
}

func TestNewInMemorySource_Empty(t *testing.T) {
	if _, err := NewInMemorySource(nil); !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestReservedSourceKinds(t *testing.T) {
	if _, err := NewTranscriptSource("transcript_123"); !errors.HasCode(err, errors.ErrCodeNotSupported) {
		t.Errorf("expected not-supported, got %v", err)
	}
	if _, err := NewSignedURLSource("https://example.com/f.mp3"); !errors.HasCode(err, errors.ErrCodeNotSupported) {
		t.Errorf("expected not-supported, got %v", err)
	}
	if _, err := NewTranscriptSource(""); !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid input for empty id, got %v", err)
	}
}
