package provider

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"jobdeck-engine/internal/config"
	"jobdeck-engine/internal/fallback"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(baseURL string, retryMax int) *Client {
	var cfg config.Config
	cfg.Provider.BaseURL = baseURL
	cfg.Provider.TimeoutSeconds = 5
	cfg.Provider.RetryMax = retryMax
	cfg.Provider.RetryBaseMS = 1
	cfg.Provider.RequestsPerSec = 1000
	cfg.Provider.Burst = 1000
	return New(cfg, discardLogger())
}

func TestFetchJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Frontend Engineer","company":"TechFlow AG","location":"Zurich","type":"Full-time","stage":"Seed","tags":["React"],"description":"<p>Build the <b>dashboard</b>.</p>"},
			{"id":2,"title":"Backend Engineer","company":"DataPeak","location":"Geneva","type":"Full-time","stage":"Series A","description":"Plain text."}
		]`))
	}))
	defer srv.Close()

	jobs, err := testClient(srv.URL, 0).FetchJobs(context.Background())
	if err != nil {
		t.Fatalf("FetchJobs() error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("FetchJobs() = %d jobs, want 2", len(jobs))
	}
	if jobs[0].Description != "Build the dashboard." {
		t.Errorf("HTML description not flattened: %q", jobs[0].Description)
	}
	if jobs[1].Description != "Plain text." {
		t.Errorf("plain description mangled: %q", jobs[1].Description)
	}
}

func TestFetchJobs_ServerErrorYieldsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 0).FetchJobs(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected HTTPError 502, got %v", err)
	}
}

func TestDo_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 2).FetchJobs(context.Background())
	if err != nil {
		t.Fatalf("FetchJobs() error after retry: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("server saw %d calls, want 2", calls.Load())
	}
}

func TestDo_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 3).FetchJobs(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if calls.Load() != 1 {
		t.Errorf("server saw %d calls, want 1 (no retries on 404)", calls.Load())
	}
}

func TestFetchBoard_FanOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/jobs":
			_, _ = w.Write([]byte(`[{"id":1,"title":"A","company":"X"}]`))
		case "/companies":
			_, _ = w.Write([]byte(`[{"id":1,"name":"X"},{"id":2,"name":"Y"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	board, err := testClient(srv.URL, 0).FetchBoard(context.Background())
	if err != nil {
		t.Fatalf("FetchBoard() error: %v", err)
	}
	if len(board.Jobs) != 1 || len(board.Companies) != 2 {
		t.Errorf("FetchBoard() = %d jobs, %d companies", len(board.Jobs), len(board.Companies))
	}
}

func TestFetchBoard_AnyFailureFailsTheFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/companies" {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 0).FetchBoard(context.Background())
	if err == nil {
		t.Fatal("expected partial failure to fail the fetch")
	}
}

func TestUnconfiguredClient(t *testing.T) {
	_, err := testClient("", 0).FetchJobs(context.Background())
	if !errors.Is(err, ErrUnconfigured) {
		t.Errorf("expected ErrUnconfigured, got %v", err)
	}
}

// The fallback decision lives with the caller: an unreachable board means the
// fixed dataset is substituted explicitly, exactly as cmd/engine does it.
func TestCallerFallbackDecision(t *testing.T) {
	c := testClient("http://127.0.0.1:1", 0) // nothing listens here

	jobs, err := c.FetchJobs(context.Background())
	if err == nil {
		t.Fatal("expected network error")
	}
	if jobs == nil {
		jobs = fallback.Jobs()
	}
	if len(jobs) == 0 {
		t.Fatal("fallback dataset is empty")
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"token":"remote-tok"}`))
	}))
	defer srv.Close()

	tok, err := testClient(srv.URL, 0).Login(context.Background(), "a@b.test", "pw")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if tok != "remote-tok" {
		t.Errorf("token = %q, want %q", tok, "remote-tok")
	}
}
