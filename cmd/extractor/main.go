package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"steamgrab/internal/collector"
	"steamgrab/internal/config"
	"steamgrab/internal/ingest"
	"steamgrab/internal/report"
	"steamgrab/internal/runner"
	"steamgrab/internal/storage"
)

func main() {
	// 1. Setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}

	// 2. Load Inputs (the only fatal failure of the whole run)
	urls, err := ingest.LoadURLs(cfg.InputFile)
	if err != nil {
		logger.Error("Startup failed", "err", err)
		os.Exit(1)
	}

	// 3. Initialize Fetcher (Using Factory)
	fetcher, err := collector.NewFetcher(cfg.Mode, cfg.APIURL, cfg.HTTPTimeout)
	if err != nil {
		logger.Error("Failed to initialize fetcher", "err", err)
		os.Exit(1)
	}
	logger.Info("Fetcher initialized", "mode", cfg.Mode)

	// 4. Run the batch, one URL at a time
	r := runner.New(fetcher, storage.NewWriter(cfg.OutputDir), logger)

	logger.Info("Starting batch", "urls", len(urls))
	results := r.Run(context.Background(), urls)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}

	// 5. Post-batch report
	if cfg.Report {
		reportPath := filepath.Join(cfg.OutputDir, "report.html")
		if err := report.Write(reportPath, results); err != nil {
			logger.Error("Report generation failed", "err", err)
		} else {
			logger.Info("Report written", "path", reportPath)
		}
	}

	// Per-item failures were already reported; they never change the
	// exit code.
	logger.Info("Batch complete", "processed", len(results), "failed", failed)
}
