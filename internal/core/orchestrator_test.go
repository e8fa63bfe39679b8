package core

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newFixtureArchiveServer(t *testing.T, files map[string]string, order []string) *httptest.Server {
	t.Helper()
	data := buildTarGz(t, files, order)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/gzip")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
}

func TestAnalyzeEndToEndDirectArchive(t *testing.T) {
	files := map[string]string{
		"proj-main/main.go":   "package main\n\nfunc main() {\n\t// entry point\n}\n",
		"proj-main/README.md": "# proj\n",
	}
	order := []string{"proj-main/main.go", "proj-main/README.md"}
	srv := newFixtureArchiveServer(t, files, order)
	defer srv.Close()

	opts := DefaultAnalyzeOptions()
	opts.Timeout = 5 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	analysis, err := Analyze(ctx, srv.URL+"/archive.tar.gz", opts, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := analysis.Summary()
	if s.TotalFiles != 2 {
		t.Errorf("expected 2 files analyzed, got %d", s.TotalFiles)
	}
	goAgg, ok := analysis.LanguageAggregates[LangGo]
	if !ok {
		t.Fatal("expected a Go aggregate")
	}
	if goAgg.FileCount != 1 {
		t.Errorf("expected 1 Go file, got %d", goAgg.FileCount)
	}
}

func TestAnalyzeReturnsCorruptArchiveOnBadGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not a gzip stream"))
	}))
	defer srv.Close()

	opts := DefaultAnalyzeOptions()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := Analyze(ctx, srv.URL+"/archive.tar.gz", opts, nil, nil)
	if err == nil || err.Kind != ErrCorruptArchive {
		t.Fatalf("expected ErrCorruptArchive, got %v", err)
	}
}

func TestAnalyzeHonorsPathFilters(t *testing.T) {
	files := map[string]string{
		"proj-main/main.go":            "package main\n\nfunc main() {}\n",
		"proj-main/vendor/dep/dep.go":  "package dep\n",
		"proj-main/assets/logo.min.js": "a",
	}
	order := []string{"proj-main/main.go", "proj-main/vendor/dep/dep.go", "proj-main/assets/logo.min.js"}
	srv := newFixtureArchiveServer(t, files, order)
	defer srv.Close()

	opts := DefaultAnalyzeOptions() // IgnoreGitignore true, CountGenerated false by default
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	analysis, err := Analyze(ctx, srv.URL+"/archive.tar.gz", opts, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := analysis.Summary()
	if s.TotalFiles != 1 {
		t.Errorf("expected vendor/ and minified asset to be filtered out, leaving 1 file, got %d", s.TotalFiles)
	}
}

func TestResolveCompactReferenceYieldsOneCandidatePerDefaultBranch(t *testing.T) {
	var requestCount int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	// A compact reference with no explicit ref resolves to codeload.github.com
	// URLs, which this test server cannot stand in for, and a direct-archive
	// reference only ever yields one candidate. So Analyze's "every candidate
	// 404s" path is not driven here; this test only checks that the resolver
	// hands Analyze one candidate per default branch.
	opts := DefaultAnalyzeOptions()
	_, _, candidates, rerr := ResolveReference("owner/repo", &opts)
	if rerr != nil {
		t.Fatalf("unexpected error: %v", rerr)
	}
	if len(candidates) != len(defaultBranches) {
		t.Fatalf("expected %d candidates, got %d", len(defaultBranches), len(candidates))
	}
}

func TestAnalyzeCancelledContextReturnsCancelled(t *testing.T) {
	srv := newFixtureArchiveServer(t, map[string]string{"proj-main/main.go": "package main\n"}, []string{"proj-main/main.go"})
	defer srv.Close()

	opts := DefaultAnalyzeOptions()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Analyze(ctx, srv.URL+"/archive.tar.gz", opts, nil, nil)
	if err == nil {
		t.Fatal("expected an error for an already-cancelled context")
	}
	if err.Kind != ErrCancelled {
		t.Errorf("expected ErrCancelled, got %v", err.Kind)
	}
}
