package core

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytesradar/bytesradar/internal/httpfetch"
)

// Analyze is the C7 public operation: candidate resolution, streaming
// fetch, filter, classify, aggregate. Mirrors the teacher's
// NewScannerWithOptions wiring — every collaborator set up once per call,
// here as local values rather than fields of a struct — but a remote
// archive instead of a local filesystem walk.
func Analyze(ctx context.Context, reference string, opts AnalyzeOptions, progress ProgressSink, metrics MetricsSink) (*ProjectAnalysis, *Error) {
	if progress == nil {
		progress = NullProgressSink{}
	}
	if metrics == nil {
		metrics = NullMetricsSink{}
	}

	projectName, _, candidates, err := ResolveReference(reference, &opts)
	if err != nil {
		progress.OnError(err)
		return nil, err
	}

	client := httpfetch.New(httpfetch.Config{
		Timeout:            opts.Timeout,
		MaxRedirects:       opts.MaxRedirects,
		RetryCount:         opts.RetryCount,
		UserAgent:          opts.UserAgent,
		AcceptInvalidCerts: opts.AcceptInvalidCerts,
		UseCompression:     opts.UseCompression,
		Proxy:              opts.Proxy,
		Headers:            opts.Headers,
	})

	var tried []string
	for _, cand := range candidates {
		select {
		case <-ctx.Done():
			cerr := NewError(ErrCancelled, "analysis cancelled", ctx.Err())
			progress.OnError(cerr)
			return nil, cerr
		default:
		}

		headers := mergeHeaders(opts.Headers, cand, opts.UserAgent)
		body, status, contentLength, httpErr := client.Get(ctx, cand.URL, headers, opts.UseCompression)
		if httpErr != nil {
			if ctx.Err() != nil {
				cerr := NewError(ErrTimeout, "request timed out or cancelled", httpErr)
				progress.OnError(cerr)
				return nil, cerr
			}
			tried = append(tried, cand.URL)
			continue
		}

		switch status {
		case http.StatusOK:
			analysis, aerr := consumeArchive(ctx, projectName, body, contentLength, &opts, progress, metrics)
			body.Close()
			if aerr != nil {
				progress.OnError(aerr)
				return nil, aerr
			}
			progress.OnComplete(analysis)
			return analysis, nil
		case http.StatusNotFound, http.StatusForbidden:
			body.Close()
			tried = append(tried, cand.URL)
			continue
		default:
			body.Close()
			nerr := NewError(ErrNetworkError, fmt.Sprintf("unexpected status %d from %s", status, cand.URL), nil)
			progress.OnError(nerr)
			return nil, nerr
		}
	}

	berr := NewBranchAccessError("no candidate archive URL succeeded", tried)
	progress.OnError(berr)
	return nil, berr
}

func mergeHeaders(base map[string]string, cand ArchiveCandidate, userAgent string) map[string]string {
	out := make(map[string]string, len(base)+2)
	for k, v := range base {
		out[k] = v
	}
	if userAgent != "" {
		out["User-Agent"] = userAgent
	}
	if cand.AuthHeaderName != "" {
		out[cand.AuthHeaderName] = cand.AuthHeaderVal
	}
	return out
}

// consumeArchive drives C6 entry-by-entry: filter, read/skip, detect,
// classify, aggregate.
func consumeArchive(ctx context.Context, projectName string, body io.Reader, contentLengthHint int64, opts *AnalyzeOptions, progress ProgressSink, metrics MetricsSink) (*ProjectAnalysis, *Error) {
	start := time.Now()
	defer func() { metrics.RecordAnalysisDuration(time.Since(start).Seconds()) }()

	reader, err := NewArchiveReader(body)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	analysis := NewProjectAnalysis(projectName)
	var bytesRead uint64
	var filesSoFar uint64

	for {
		select {
		case <-ctx.Done():
			return nil, NewError(ErrCancelled, "analysis cancelled mid-stream", ctx.Err())
		default:
		}

		entry, eerr := reader.Next()
		if eerr != nil {
			return nil, eerr
		}
		if entry == nil {
			break
		}

		if !PathFilter(entry.Path, opts) {
			if serr := SkipEntry(entry); serr != nil {
				return nil, serr
			}
			continue
		}
		if !SizeFilter(uint64(entry.Size), opts) {
			if serr := SkipEntry(entry); serr != nil {
				return nil, serr
			}
			continue
		}

		buf, rerr := ReadEntry(entry)
		if rerr != nil {
			return nil, rerr
		}

		bytesRead += uint64(len(buf))
		filesSoFar++
		metrics.RecordBytesRead(uint64(len(buf)))
		metrics.RecordFileAnalyzed()

		fm, skip := buildFileMetrics(entry.Path, buf, opts)
		if skip {
			continue
		}
		analysis.AddFile(fm, opts.Detailed)

		progress.OnProgress(bytesRead, contentLengthHint, filesSoFar, entry.Path)
	}

	return analysis, nil
}

// buildFileMetrics resolves a language, and either classifies the file or
// — when max_line_length is exceeded — tags it unclassified/generated-like
// per §4.2.
func buildFileMetrics(path string, buf []byte, opts *AnalyzeOptions) (fm FileMetrics, skip bool) {
	lang, ok := LookupByPath(path)
	if !ok {
		if opts.CountUnknownAsPlainText {
			lang = LangPlainText
		} else {
			lang = LangUnknown
		}
	}

	if opts.MaxLineLength > 0 && longestLineExceeds(buf, opts.MaxLineLength) {
		if !opts.CountGenerated {
			return FileMetrics{}, true
		}
		return UnclassifiedFileMetrics(path, uint64(len(buf)), lang), false
	}

	rules := RulesFor(lang)
	return FileMetricsFromBytes(path, buf, lang, rules, opts.IgnoreWhitespace), false
}

func longestLineExceeds(buf []byte, maxLen uint64) bool {
	var cur uint64
	for _, b := range buf {
		if b == '\n' {
			cur = 0
			continue
		}
		cur++
		if cur > maxLen {
			return true
		}
	}
	return false
}
