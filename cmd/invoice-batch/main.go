package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/invoicelens/invoicelens/constants"
	"github.com/invoicelens/invoicelens/internal/common"
	"github.com/invoicelens/invoicelens/internal/export"
	"github.com/invoicelens/invoicelens/internal/extract"
	"github.com/invoicelens/invoicelens/internal/pdftext"
	"github.com/invoicelens/invoicelens/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir   = flag.String("dir", "", "directory of invoice PDFs to process (required)")
		out   = flag.String("out", "", "output XLSX file path (defaults to <parent>/invoices.xlsx)")
		debug = flag.Bool("debug", false, "print per-entity candidate traces")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	registry := extract.DefaultRegistry()
	if cfg.Extract.WeightsPath != "" {
		overrides, err := extract.LoadOverrides(cfg.Extract.WeightsPath)
		if err != nil {
			logger.Error("failed to load weight overrides", "path", cfg.Extract.WeightsPath, "error", err)
			os.Exit(1)
		}
		registry = registry.WithOverrides(overrides)
	}

	pipeline := extract.NewPipeline(logger, extract.Config{
		ContextWindow: cfg.Extract.ContextWindow,
		TopN:          cfg.Extract.TopN,
		MaxInvoiceLen: cfg.Extract.MaxInvoiceLen,
		Debug:         *debug,
	}, registry)

	store, err := repository.Open(cfg.Store.Path, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close()
	}()

	var paths []string
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			if _, ok := constants.AllowedExtensions[constants.NormalizeExt(filepath.Ext(path))]; ok {
				paths = append(paths, path)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		printError("No PDF files found under %s\n", *dir)
		os.Exit(1)
	}

	var items []export.Item
	failed := 0
	for _, path := range paths {
		item := processOne(ctx, logger, pipeline, store, path, *debug)
		if item.Record == nil {
			failed++
		}
		items = append(items, item)
	}

	if err := export.WriteFile(*out, items); err != nil {
		logger.Error("failed to write workbook", "out", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch.done",
		"processed", len(items),
		"failed", failed,
		"out", *out,
	)
}

func processOne(ctx context.Context, logger *slog.Logger, pipeline *extract.Pipeline, store *repository.Store, path string, debug bool) export.Item {
	name := filepath.Base(path)
	logger.Info("batch.file", "file", name)

	doc, err := pdftext.ExtractFile(path)
	var res extract.Result
	status := constants.DocStatusExtracted
	if err != nil {
		logger.Error("failed to read pdf", "file", name, "error", err)
		res = extract.Result{Warnings: []string{fmt.Sprintf("failed to read document: %v", err)}}
		status = constants.DocStatusFailed
	} else {
		res = pipeline.Extract(extract.Input{Text: doc.Text, Tables: doc.Tables})
		if res.Record == nil {
			status = constants.DocStatusNoText
		}
	}

	if debug && res.Debug != "" {
		fmt.Printf("===== %s =====\n%s\n", name, res.Debug)
	}
	for _, w := range res.Warnings {
		logger.Warn("batch.warning", "file", name, "warning", w)
	}

	if _, err := store.SaveResult(ctx, path, status, res.Record, res.Warnings); err != nil {
		logger.Error("failed to save result", "file", name, "error", err)
	}

	return export.Item{File: name, Record: res.Record, Warnings: res.Warnings}
}
