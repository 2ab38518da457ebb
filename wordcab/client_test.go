package wordcab

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/kbukum/wordcab-go/credentials"
	"github.com/kbukum/wordcab-go/errors"
)

const testAPIKey = "test-api-key"

// fakeAPI is a minimal stateful stand-in for the summarization service. It
// keeps submitted jobs in memory so delete-then-retrieve behaves like the
// real thing.
type fakeAPI struct {
	mu       sync.Mutex
	jobs     map[string]map[string]any
	nextID   int
	requests []*http.Request
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{jobs: make(map[string]map[string]any)}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /summarize", f.submit("summarize"))
	mux.HandleFunc("POST /extract", f.submit("extract"))
	mux.HandleFunc("GET /jobs/{name}", f.getJob)
	mux.HandleFunc("DELETE /jobs/{name}", f.deleteJob)
	return f.authenticated(mux)
}

func (f *fakeAPI) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer "+testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeAPI) submit(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.nextID++
		name := "job_" + kind + "_" + strconv.Itoa(f.nextID)
		job := map[string]any{
			"job_name":     name,
			"job_status":   "Pending",
			"display_name": r.URL.Query().Get("display_name"),
			"source":       r.URL.Query().Get("source"),
		}
		if kind == "summarize" {
			job["summary_details"] = map[string]any{}
		}
		f.jobs[name] = job
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"job_name": name})
	}
}

func (f *fakeAPI) getJob(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	job, ok := f.jobs[r.PathValue("name")]
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

func (f *fakeAPI) deleteJob(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	f.mu.Lock()
	_, ok := f.jobs[name]
	delete(f.jobs, name)
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"job_name": name})
}

// lastRequest returns the most recent request seen by the fake.
func (f *fakeAPI) lastRequest(t *testing.T) *http.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatal("no requests recorded")
	}
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(WithAPIKey(testAPIKey), WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func TestNewClient_MissingKey(t *testing.T) {
	t.Setenv(credentials.EnvAPIKey, "")
	t.Setenv("HOME", t.TempDir())

	_, err := NewClient()
	if !errors.HasCode(err, errors.ErrCodeMissingAPIKey) {
		t.Fatalf("expected missing API key error, got %v", err)
	}
}

func TestNewClient_EnvKey(t *testing.T) {
	t.Setenv(credentials.EnvAPIKey, testAPIKey)

	client, err := NewClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.Close()
}

func TestClient_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(newFakeAPI().handler())
	t.Cleanup(srv.Close)

	client, err := NewClient(WithAPIKey("wrong-key"), WithBaseURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(client.Close)

	_, err = client.RetrieveJob(context.Background(), "job_x")
	if !errors.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}
