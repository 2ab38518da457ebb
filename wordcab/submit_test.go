package wordcab

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/wordcab-go/core"
	"github.com/kbukum/wordcab-go/errors"
)

func inMemorySource(t *testing.T) core.Source {
	t.Helper()
	source, err := core.NewInMemorySource([]string{"Hello.", "Hi there."})
	if err != nil {
		t.Fatal(err)
	}
	return source
}

func TestStartSummary(t *testing.T) {
	api := newFakeAPI()
	client := newTestClient(t, api.handler())

	job, err := client.StartSummary(context.Background(), inMemorySource(t), SummaryParams{
		DisplayName: "weekly sync",
		SummaryType: core.SummaryNarrative,
		SummaryLens: []int{1, 3},
		Tags:        []string{"team-a"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.JobName == "" {
		t.Fatal("expected a job name")
	}
	if job.Status != core.StatusPending {
		t.Errorf("new job status = %q, want Pending", job.Status)
	}
	if job.Kind != core.KindSummarize {
		t.Errorf("job kind = %q, want summarize", job.Kind)
	}

	req := api.lastRequest(t)
	if ua := req.Header.Get("User-Agent"); !strings.HasPrefix(ua, "wordcab-go/") {
		t.Errorf("User-Agent = %q", ua)
	}
	q := req.URL.Query()
	for key, want := range map[string]string{
		"source":                "generic",
		"display_name":          "weekly sync",
		"summary_type":          "narrative",
		"summary_lens":          "1,3",
		"tags":                  "team-a",
		"pipeline":              "transcribe,summarize",
		"ephemeral_data":        "false",
		"only_api":              "true",
		"split_long_utterances": "false",
	} {
		if got := q.Get(key); got != want {
			t.Errorf("query %s = %q, want %q", key, got, want)
		}
	}
}

func TestStartSummary_TranscriptBody(t *testing.T) {
	var body []byte
	srv := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"job_name": "job_1"}`))
	})
	client := newTestClient(t, srv)

	_, err := client.StartSummary(context.Background(), inMemorySource(t), SummaryParams{
		DisplayName: "call",
		SummaryType: core.SummaryConversational,
	})
	if err != nil {
		t.Fatal(err)
	}

	var payload struct {
		Transcript []string `json:"transcript"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if len(payload.Transcript) != 2 || payload.Transcript[0] != "Hello." {
		t.Errorf("unexpected transcript payload: %v", payload.Transcript)
	}
}

func TestStartSummary_AudioUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "call.mp3")
	if err := os.WriteFile(path, []byte("fake-audio-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}
	source, err := core.NewAudioSource(path)
	if err != nil {
		t.Fatal(err)
	}

	var contentType string
	var fileName string
	var fileData []byte
	srv := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			if file, header, err := r.FormFile("audio_file"); err == nil {
				fileName = header.Filename
				fileData, _ = io.ReadAll(file)
				file.Close()
			}
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"job_name": "job_audio_1"}`))
	})
	client := newTestClient(t, srv)

	job, err := client.StartSummary(context.Background(), source, SummaryParams{
		DisplayName: "recorded call",
		SummaryType: core.SummaryNoSpeaker,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Source != core.SourceAudio {
		t.Errorf("job source = %q, want audio", job.Source)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		t.Errorf("Content-Type = %q, want multipart/form-data", contentType)
	}
	if fileName != "call.mp3" {
		t.Errorf("uploaded file name = %q, want call.mp3", fileName)
	}
	if string(fileData) != "fake-audio-bytes" {
		t.Errorf("uploaded %q", fileData)
	}
}

func TestStartSummary_InvalidParams(t *testing.T) {
	client := newTestClient(t, newFakeAPI().handler())
	source := inMemorySource(t)

	cases := map[string]SummaryParams{
		"missing display name": {SummaryType: core.SummaryNarrative},
		"unknown summary type": {DisplayName: "x", SummaryType: "haiku"},
		"length out of range":  {DisplayName: "x", SummaryType: core.SummaryNarrative, SummaryLens: []int{6}},
		"length below range":   {DisplayName: "x", SummaryType: core.SummaryNarrative, SummaryLens: []int{0}},
		"unknown pipeline":     {DisplayName: "x", SummaryType: core.SummaryNarrative, Pipeline: []string{"translate"}},
	}
	for name, params := range cases {
		if _, err := client.StartSummary(context.Background(), source, params); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestStartSummary_EphemeralData(t *testing.T) {
	api := newFakeAPI()
	client := newTestClient(t, api.handler())

	if _, err := client.StartSummary(context.Background(), inMemorySource(t), SummaryParams{
		DisplayName:   "ephemeral",
		SummaryType:   core.SummaryNarrative,
		EphemeralData: true,
	}); err != nil {
		t.Fatal(err)
	}
	if got := api.lastRequest(t).URL.Query().Get("ephemeral_data"); got != "true" {
		t.Errorf("ephemeral_data = %q, want true", got)
	}

	// The flag is a boolean the server always receives, false included.
	if _, err := client.StartExtract(context.Background(), inMemorySource(t), ExtractParams{
		DisplayName: "kept",
	}); err != nil {
		t.Fatal(err)
	}
	if got := api.lastRequest(t).URL.Query().Get("ephemeral_data"); got != "false" {
		t.Errorf("ephemeral_data = %q, want false", got)
	}
}

func TestStartSummary_NilSource(t *testing.T) {
	client := newTestClient(t, newFakeAPI().handler())
	_, err := client.StartSummary(context.Background(), nil, SummaryParams{
		DisplayName: "x",
		SummaryType: core.SummaryNarrative,
	})
	if !errors.IsInvalidInput(err) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestStartExtract(t *testing.T) {
	api := newFakeAPI()
	client := newTestClient(t, api.handler())

	job, err := client.StartExtract(context.Background(), inMemorySource(t), ExtractParams{
		DisplayName: "qa pass",
		Pipeline:    []string{"questions_answers"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Kind != core.KindExtract {
		t.Errorf("job kind = %q, want extract", job.Kind)
	}

	q := api.lastRequest(t).URL.Query()
	if got := q.Get("pipeline"); got != "questions_answers" {
		t.Errorf("pipeline = %q", got)
	}
}

func TestStartExtract_DefaultPipeline(t *testing.T) {
	api := newFakeAPI()
	client := newTestClient(t, api.handler())

	if _, err := client.StartExtract(context.Background(), inMemorySource(t), ExtractParams{
		DisplayName: "everything",
	}); err != nil {
		t.Fatal(err)
	}

	q := api.lastRequest(t).URL.Query()
	want := strings.Join(core.ExtractPipelines, ",")
	if got := q.Get("pipeline"); got != want {
		t.Errorf("pipeline = %q, want %q", got, want)
	}
}

func TestStartExtract_RejectsSummaryPipeline(t *testing.T) {
	client := newTestClient(t, newFakeAPI().handler())
	_, err := client.StartExtract(context.Background(), inMemorySource(t), ExtractParams{
		DisplayName: "x",
		Pipeline:    []string{"summarize"},
	})
	if !errors.IsInvalidInput(err) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}
