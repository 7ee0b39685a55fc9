package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"path/filepath"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	"github.com/invoicelens/invoicelens/constants"
	"github.com/invoicelens/invoicelens/internal/common"
	"github.com/invoicelens/invoicelens/internal/extract"
	"github.com/invoicelens/invoicelens/internal/ingest"
	"github.com/invoicelens/invoicelens/internal/pdftext"
	"github.com/invoicelens/invoicelens/internal/repository"
)

func main() {
	initialScan := flag.Bool("initial-scan", false, "process files already present under the watched directories")
	flag.Parse()

	// Logger
	logger, _ := zap.NewProduction()
	defer func() {
		_ = logger.Sync()
	}()
	log := logger.Sugar()

	roots := flag.Args()
	if len(roots) == 0 {
		log.Fatal("usage: invoiced [flags] <inbox-dir> [<inbox-dir>...]")
	}

	cfg := common.LoadConfig()

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Store
	store, err := repository.Open(cfg.Store.Path, nil)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	// Extraction pipeline
	registry := extract.DefaultRegistry()
	if cfg.Extract.WeightsPath != "" {
		overrides, err := extract.LoadOverrides(cfg.Extract.WeightsPath)
		if err != nil {
			log.Fatalf("loading weight overrides: %v", err)
		}
		registry = registry.WithOverrides(overrides)
	}
	pipeline := extract.NewPipeline(nil, extract.Config{
		ContextWindow: cfg.Extract.ContextWindow,
		TopN:          cfg.Extract.TopN,
		MaxInvoiceLen: cfg.Extract.MaxInvoiceLen,
	}, registry)

	// gRPC health endpoint for supervisors
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Daemon.HealthAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Errorf("grpc serve: %v", err)
		}
	}()
	log.Infof("health endpoint on %s", cfg.Daemon.HealthAddr)

	// Watcher
	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: *initialScan,
		Debounce:    cfg.Daemon.WatchDebounce,
	})
	if err != nil {
		log.Fatalf("starting watcher: %v", err)
	}
	log.Infow("watching", "roots", roots)

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			grpcServer.GracefulStop()
			return
		case err, ok := <-errCh:
			if ok && err != nil {
				log.Errorw("watcher error", "error", err)
			}
		case path, ok := <-evCh:
			if !ok {
				grpcServer.GracefulStop()
				return
			}
			processFile(ctx, log, pipeline, store, path)
		}
	}
}

func processFile(ctx context.Context, log *zap.SugaredLogger, pipeline *extract.Pipeline, store *repository.Store, path string) {
	name := filepath.Base(path)

	doc, err := pdftext.ExtractFile(path)
	if err != nil {
		log.Warnw("failed to read pdf", "file", name, "error", err)
		if _, serr := store.SaveResult(ctx, path, constants.DocStatusFailed, nil, []string{err.Error()}); serr != nil {
			log.Errorw("failed to save result", "file", name, "error", serr)
		}
		return
	}

	res := pipeline.Extract(extract.Input{Text: doc.Text, Tables: doc.Tables})
	status := constants.DocStatusExtracted
	if res.Record == nil {
		status = constants.DocStatusNoText
	}
	if _, err := store.SaveResult(ctx, path, status, res.Record, res.Warnings); err != nil {
		log.Errorw("failed to save result", "file", name, "error", err)
		return
	}
	log.Infow("processed", "file", name, "status", string(status), "warnings", len(res.Warnings))
}
