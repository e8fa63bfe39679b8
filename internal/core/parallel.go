package core

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/bytesradar/bytesradar/internal/httpfetch"
)

// workItem is one accepted entry's bytes handed to a worker goroutine,
// tagged with its tar-stream index so detailed mode can restore tar order
// after worker completion reorders it.
type workItem struct {
	index int
	path  string
	buf   []byte
}

// AnalyzeParallel is the experimental-parallel mode described in §5: the
// tar stream itself is still read sequentially (it must be — a tar stream
// has no random access), but accepted entries are handed to a bounded pool
// of workers that run C1/C2/C3 concurrently and fold each result into a
// shared ProjectAnalysis with AddFile under a mutex. The aggregates are
// plain sums, so worker completion order never affects them. Worker count defaults
// to runtime.NumCPU(), following the teacher's pattern of a tunable
// goroutine-count constant rather than a hardcoded one.
func AnalyzeParallel(ctx context.Context, reference string, opts AnalyzeOptions, progress ProgressSink, metrics MetricsSink) (*ProjectAnalysis, *Error) {
	if progress == nil {
		progress = NullProgressSink{}
	}
	if metrics == nil {
		metrics = NullMetricsSink{}
	}

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
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
			tried = append(tried, cand.URL)
			continue
		}

		if status != http.StatusOK {
			body.Close()
			if status == http.StatusNotFound || status == http.StatusForbidden {
				tried = append(tried, cand.URL)
				continue
			}
			nerr := NewError(ErrNetworkError, fmt.Sprintf("unexpected status %d from %s", status, cand.URL), nil)
			progress.OnError(nerr)
			return nil, nerr
		}

		analysis, aerr := consumeArchiveParallel(ctx, projectName, body, contentLength, &opts, progress, metrics, numWorkers)
		body.Close()
		if aerr != nil {
			progress.OnError(aerr)
			return nil, aerr
		}
		progress.OnComplete(analysis)
		return analysis, nil
	}

	berr := NewBranchAccessError("no candidate archive URL succeeded", tried)
	progress.OnError(berr)
	return nil, berr
}

func consumeArchiveParallel(ctx context.Context, projectName string, body io.Reader, contentLengthHint int64, opts *AnalyzeOptions, progress ProgressSink, metrics MetricsSink, numWorkers int) (*ProjectAnalysis, *Error) {
	start := time.Now()
	defer func() { metrics.RecordAnalysisDuration(time.Since(start).Seconds()) }()

	reader, err := NewArchiveReader(body)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	analysis := NewProjectAnalysis(projectName)
	var mu sync.Mutex
	var bytesRead, filesSoFar uint64

	// indexedFiles holds detailed-mode per-file metrics tagged with their
	// tar-stream index; workers complete out of order, so Files is rebuilt
	// in index order only after every worker has finished, rather than
	// appended to directly in completion order.
	var indexedFiles []indexedFileMetrics

	items := make(chan workItem, numWorkers*2)
	var wg sync.WaitGroup
	var workerErr *Error
	var workerErrOnce sync.Once

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range items {
				fm, skip := buildFileMetrics(item.path, item.buf, opts)
				if skip {
					continue
				}
				mu.Lock()
				analysis.AddFile(fm, false)
				if opts.Detailed {
					indexedFiles = append(indexedFiles, indexedFileMetrics{index: item.index, fm: fm})
				}
				bytesRead += uint64(len(item.buf))
				filesSoFar++
				bSoFar, fSoFar := bytesRead, filesSoFar
				mu.Unlock()

				metrics.RecordBytesRead(uint64(len(item.buf)))
				metrics.RecordFileAnalyzed()
				progress.OnProgress(bSoFar, contentLengthHint, fSoFar, item.path)
			}
		}()
	}

	var nextIndex int
readLoop:
	for {
		select {
		case <-ctx.Done():
			workerErrOnce.Do(func() {
				workerErr = NewError(ErrCancelled, "analysis cancelled mid-stream", ctx.Err())
			})
			break readLoop
		default:
		}

		entry, eerr := reader.Next()
		if eerr != nil {
			workerErrOnce.Do(func() { workerErr = eerr })
			break readLoop
		}
		if entry == nil {
			break readLoop
		}

		if !PathFilter(entry.Path, opts) {
			if serr := SkipEntry(entry); serr != nil {
				workerErrOnce.Do(func() { workerErr = serr })
				break readLoop
			}
			continue
		}
		if !SizeFilter(uint64(entry.Size), opts) {
			if serr := SkipEntry(entry); serr != nil {
				workerErrOnce.Do(func() { workerErr = serr })
				break readLoop
			}
			continue
		}

		buf, rerr := ReadEntry(entry)
		if rerr != nil {
			workerErrOnce.Do(func() { workerErr = rerr })
			break readLoop
		}

		items <- workItem{index: nextIndex, path: entry.Path, buf: buf}
		nextIndex++
	}

	close(items)
	wg.Wait()

	if workerErr != nil {
		return nil, workerErr
	}

	if opts.Detailed {
		sort.Slice(indexedFiles, func(i, j int) bool { return indexedFiles[i].index < indexedFiles[j].index })
		analysis.Files = make([]FileMetrics, len(indexedFiles))
		for i, f := range indexedFiles {
			analysis.Files[i] = f.fm
		}
	}

	return analysis, nil
}

// indexedFileMetrics pairs a worker's computed FileMetrics with the
// originating entry's position in the tar stream.
type indexedFileMetrics struct {
	index int
	fm    FileMetrics
}
