// Command batch loads every placement file in a directory and writes one
// parquet row per file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	swchess "swchess/pkg/swchess"
)

func main() {
	startTime := time.Now()
	configPath := flag.String("config", "", "path to config.json (searched upward when empty)")
	inputDir := flag.String("input", "", "input directory for board files")
	outputPath := flag.String("output", "", "output parquet file")
	ext := flag.String("ext", "", "board file extension")
	processNum := flag.Int("process-num", 0, "number of parallel workers")
	flag.Parse()

	cfg, err := resolveConfig(*configPath)
	if err != nil {
		fatal(err)
	}
	if *inputDir != "" {
		cfg.Input = *inputDir
	}
	if *outputPath != "" {
		cfg.Output = *outputPath
	}
	if *ext != "" {
		cfg.Extension = *ext
	}
	if *processNum > 0 {
		cfg.Workers = *processNum
	}
	if cfg.Input == "" {
		fatal(fmt.Errorf("input directory is required"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("writing parquet to %s\n", cfg.Output)
	summary, err := swchess.RunBatch(ctx, swchess.BatchOptions{
		Input:     cfg.Input,
		Extension: cfg.Extension,
		Output:    cfg.Output,
		Workers:   cfg.Workers,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("files: %d written: %d failed: %d (%s)\n",
		summary.Files, summary.Written, summary.Failed, time.Since(startTime).Round(time.Millisecond))
}

// resolveConfig loads the named config, or the nearest config.json when arg
// is empty. A missing config.json is not an error; flags can supply
// everything.
func resolveConfig(arg string) (swchess.Config, error) {
	if arg != "" {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return swchess.Config{}, err
		}
		cfg, err := swchess.LoadConfig(abs)
		if err != nil {
			return swchess.Config{}, err
		}
		return cfg.Resolve(filepath.Dir(abs)), nil
	}
	path, root, err := swchess.FindConfigPath()
	if errors.Is(err, swchess.ErrConfigNotFound) {
		return swchess.Config{Output: "boards.parquet", Workers: 1}, nil
	}
	if err != nil {
		return swchess.Config{}, err
	}
	cfg, err := swchess.LoadConfig(path)
	if err != nil {
		return swchess.Config{}, err
	}
	return cfg.Resolve(root), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
