package swchess

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

type BatchOptions struct {
	Input     string
	Extension string
	Output    string
	Workers   int
	// Stderr receives per-file failures. Defaults to os.Stderr.
	Stderr io.Writer
}

type BatchSummary struct {
	Files   int
	Written int
	Failed  int
}

// RunBatch loads every placement file under opts.Input with a pool of
// workers and writes one BoardRecord per file to opts.Output. Files that
// cannot be read are reported and skipped. Cancelling ctx stops handing out
// files; records already loaded are still written.
func RunBatch(ctx context.Context, opts BatchOptions) (BatchSummary, error) {
	files, err := CollectBoards(opts.Input, opts.Extension)
	if err != nil {
		return BatchSummary{}, err
	}
	if len(files) == 0 {
		return BatchSummary{}, fmt.Errorf("no board files found in %s", opts.Input)
	}
	summary := BatchSummary{Files: len(files)}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}
	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return summary, err
		}
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	var logMu sync.Mutex
	logf := func(format string, args ...any) {
		logMu.Lock()
		defer logMu.Unlock()
		fmt.Fprintf(stderr, format, args...)
	}

	jobs := make(chan string)
	results := make(chan BoardRecord, workers)
	writeErr := make(chan error, 1)
	go func() {
		err := WriteParquet(opts.Output, results, int64(workers))
		// Keep workers unblocked if the writer gave up early.
		for range results {
		}
		writeErr <- err
	}()

	var written, failed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				record, err := BuildBoardRecord(opts.Input, path)
				if err != nil {
					logf("failed to process %s: %v\n", path, err)
					failed.Add(1)
					continue
				}
				results <- record
				written.Add(1)
			}
		}()
	}

feed:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	summary.Written = int(written.Load())
	summary.Failed = int(failed.Load())
	if err := <-writeErr; err != nil {
		return summary, err
	}
	return summary, ctx.Err()
}
