package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"

	"tfidfsum/internal/app"
	"tfidfsum/internal/config"
	"tfidfsum/internal/database"
	"tfidfsum/internal/loader"
	"tfidfsum/internal/metrics"
	"tfidfsum/internal/summarizer"
	"tfidfsum/internal/tokenizer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: tfidfsum <path>")

		return app.ExitUsage
	}
	path := args[0]

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)

		return app.ExitConfig
	}

	log := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})).
		With("runID", uuid.NewString())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tok, err := tokenizer.New()
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize tokenizer",
			"error", err)

		return app.ExitFailure
	}

	var store summarizer.Store
	if cfg.CacheDBPath != "" {
		db, dbErr := initDatabase(ctx, cfg.CacheDBPath, log)
		if dbErr != nil {
			log.ErrorContext(ctx, "Failed to initialize db",
				"error", dbErr,
				"dbPath", cfg.CacheDBPath)

			return app.ExitConfig
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				log.ErrorContext(ctx, "Failed to close db",
					"error", closeErr,
					"dbPath", cfg.CacheDBPath)
			}
		}()
		store = db
	}

	s, err := initSummarizer(ctx, cfg, tok, store, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize summarizer",
			"error", err,
			"provider", cfg.Provider)

		return app.ExitConfig
	}

	recorder := metrics.New()
	runner := app.NewRunner(
		loader.New(cfg.MaxFileSize, log),
		s,
		log,
		app.WithRatio(cfg.Ratio),
		app.WithMetrics(recorder, string(cfg.Provider)),
	)

	summary, runErr := runner.Run(ctx, path)
	writeMetrics(ctx, recorder, cfg.MetricsPath, log)

	if runErr != nil {
		attrs := []any{"error", runErr, "path", path}
		if errors.Is(runErr, app.ErrLoad) {
			attrs = append(attrs, "code", loader.Classify(runErr))
		}
		log.ErrorContext(ctx, "Failed to summarize file", attrs...)
		fmt.Fprintf(stderr, "tfidfsum: %v\n", runErr)

		return app.ExitCode(runErr)
	}

	if err = app.Print(stdout, summary); err != nil {
		log.ErrorContext(ctx, "Failed to write summary",
			"error", err)

		return app.ExitFailure
	}

	return app.ExitOK
}

func initDatabase(ctx context.Context, dbPath string, log *slog.Logger) (*database.Database, error) {
	db, err := database.New(ctx, dbPath, log)
	if err != nil {
		return nil, err
	}

	deleted, err := db.DeleteExpiredSummaries(ctx, time.Now())
	if err != nil {
		log.WarnContext(ctx, "Failed to delete expired summaries",
			"error", err,
			"dbPath", dbPath)
	} else if deleted > 0 {
		log.InfoContext(ctx, "Expired summaries are deleted",
			"count", deleted,
			"dbPath", dbPath)
	}

	log.DebugContext(ctx, "DB is initialized",
		"dbPath", dbPath)

	return db, nil
}

func initSummarizer(
	ctx context.Context,
	cfg config.Config,
	tok *tokenizer.Tokenizer,
	store summarizer.Store,
	log *slog.Logger,
) (summarizer.Summarizer, error) {
	var opts []summarizer.Option
	if cfg.Parallel {
		workers := cfg.Workers
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		opts = append(opts, summarizer.WithParallelism(workers))
	}
	if cfg.PreserveOrder {
		opts = append(opts, summarizer.WithPreserveOrder())
	}
	tfidf := summarizer.NewTFIDF(tok, opts...)

	var primary summarizer.Summarizer = tfidf
	switch cfg.Provider {
	case config.ProviderOpenAI:
		remote, err := summarizer.NewOpenAISummarizer(cfg.OpenAIAPIKey, tok)
		if err != nil {
			return nil, fmt.Errorf("create OpenAI summarizer: %w", err)
		}
		primary = remote
	case config.ProviderClaude:
		remote, err := summarizer.NewClaudeSummarizer(cfg.ClaudeAPIKey, tok)
		if err != nil {
			return nil, fmt.Errorf("create Claude summarizer: %w", err)
		}
		primary = remote
	case config.ProviderTFIDF:
	}

	log.DebugContext(ctx, "Summarizer is initialized",
		"provider", cfg.Provider,
		"parallel", cfg.Parallel,
		"preserveOrder", cfg.PreserveOrder,
		"cached", store != nil)

	return composeSummarizer(cfg, primary, tfidf, store, log), nil
}

// composeSummarizer caches primary alone, so a local fallback summary is never stored under
// a remote provider's namespace.
func composeSummarizer(
	cfg config.Config,
	primary summarizer.Summarizer,
	local summarizer.Summarizer,
	store summarizer.Store,
	log *slog.Logger,
) summarizer.Summarizer {
	if store != nil {
		primary = summarizer.NewCached(primary, cfg.CacheNamespace(), store, cfg.CacheTTL, log)
	}

	if cfg.Provider == config.ProviderTFIDF {
		return primary
	}

	return summarizer.NewFallback(primary, string(cfg.Provider), local, log)
}

func writeMetrics(ctx context.Context, recorder *metrics.Recorder, path string, log *slog.Logger) {
	if path == "" {
		return
	}

	if err := recorder.WriteTextfile(path); err != nil {
		log.WarnContext(ctx, "Failed to write metrics textfile",
			"error", err,
			"path", path)
	}
}
