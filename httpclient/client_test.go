package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kbukum/wordcab-go/errors"
	"github.com/kbukum/wordcab-go/resilience"
)

func TestClient_Do_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/jobs/job_abc" {
			t.Errorf("expected /jobs/job_abc, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"job_name": "job_abc"})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/jobs/job_abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 || !resp.IsSuccess() {
		t.Errorf("expected 200 success, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(resp.Body), "job_abc") {
		t.Errorf("response body should contain job_abc, got %s", string(resp.Body))
	}
}

func TestClient_Do_BearerAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("expected bearer header, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: BearerAuth("secret-token")})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/me"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_RequestAuthOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer other" {
			t.Errorf("expected request-level token, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: BearerAuth("default")})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/me",
		Auth:   BearerAuth("other"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_RequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected generated X-Request-ID header")
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_JSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
		var body map[string][]string
		json.NewDecoder(r.Body).Decode(&body)
		if len(body["transcript"]) != 2 {
			t.Errorf("expected 2 transcript lines, got %v", body)
		}
		w.WriteHeader(201)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/summarize",
		Body:   map[string][]string{"transcript": {"A: hi", "B: hello"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestClient_Do_MultipartBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		f, header, err := r.FormFile("audio_file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if header.Filename != "call.mp3" {
			t.Errorf("expected call.mp3, got %s", header.Filename)
		}
		data, _ := io.ReadAll(f)
		if string(data) != "fake-audio-bytes" {
			t.Errorf("unexpected file content: %q", data)
		}
		w.WriteHeader(201)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/summarize",
		Body: &MultipartBody{
			Files: []FileField{{
				FieldName: "audio_file",
				FileName:  "call.mp3",
				Data:      []byte("fake-audio-bytes"),
			}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_ErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{401, errors.IsUnauthorized, "unauthorized"},
		{403, errors.IsUnauthorized, "forbidden"},
		{404, errors.IsNotFound, "not found"},
		{429, errors.IsRateLimited, "rate limited"},
		{400, errors.IsInvalidInput, "bad request"},
		{500, errors.IsRetryable, "server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c, _ := New(Config{BaseURL: srv.URL})
			resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tc.check(err) {
				t.Errorf("status %d: wrong classification: %v", tc.status, err)
			}
			if resp == nil || resp.StatusCode != tc.status {
				t.Errorf("expected response alongside error for status %d", tc.status)
			}
		})
	}
}

func TestClient_Do_RetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(503)
			return
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	retry := DefaultRetryConfig()
	retry.InitialBackoff = time.Millisecond
	c, _ := New(Config{BaseURL: srv.URL, Retry: retry})

	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected eventual 200, got %d", resp.StatusCode)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 calls, got %d", calls.Load())
	}
}

func TestClient_Do_NoRetryOnNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(404)
	}))
	defer srv.Close()

	retry := DefaultRetryConfig()
	retry.InitialBackoff = time.Millisecond
	c, _ := New(Config{BaseURL: srv.URL, Retry: retry})

	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/jobs/x"}); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("404 must not be retried, got %d calls", calls.Load())
	}
}

func TestClient_Do_ConnectionRefused(t *testing.T) {
	c, _ := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if !errors.HasCode(err, errors.ErrCodeConnectionFailed) {
		t.Errorf("expected CONNECTION_FAILED, got %v", err)
	}
}

func TestClient_Do_ClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	// The client-level timeout fires without cancelling the caller's
	// context; it must still classify as a timeout.
	_, err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/slow"})
	if !errors.HasCode(err, errors.ErrCodeTimeout) {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestClient_ConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != defaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestDefaultRetryConfig_UsesErrorTaxonomy(t *testing.T) {
	cfg := DefaultRetryConfig()
	if cfg.RetryIf == nil {
		t.Fatal("RetryIf must be set")
	}
	if cfg.RetryIf(errors.NotFound("job", "x")) {
		t.Error("not-found must not be retryable")
	}
	if !cfg.RetryIf(errors.Server(503, "")) {
		t.Error("5xx must be retryable")
	}
	if cfg.MaxAttempts != resilience.DefaultRetryConfig().MaxAttempts {
		t.Error("transport retry should inherit the default attempt budget")
	}
}
