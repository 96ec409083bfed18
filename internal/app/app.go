// Package app sequences one summarization run: load the input file, summarize it between two
// clock samples and print the summary with the elapsed time.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"tfidfsum/internal/document"
	"tfidfsum/internal/domain"
	"tfidfsum/internal/loader"
	"tfidfsum/internal/metrics"
	"tfidfsum/internal/summarizer"
	"tfidfsum/internal/timer"
)

// DefaultRatio is the compression ratio used when none is configured.
const DefaultRatio = 0.5

var (
	ErrLoad      = errors.New("load input")
	ErrSummarize = errors.New("summarize")
)

type Runner struct {
	loader     *loader.Loader
	summarizer summarizer.Summarizer
	provider   string
	ratio      float64
	metrics    *metrics.Recorder
	now        func() timer.Sample
	log        *slog.Logger
}

type Option func(*Runner)

// WithRatio overrides DefaultRatio.
func WithRatio(ratio float64) Option {
	return func(r *Runner) {
		r.ratio = ratio
	}
}

// WithMetrics records every run on m.
func WithMetrics(m *metrics.Recorder, provider string) Option {
	return func(r *Runner) {
		r.metrics = m
		r.provider = provider
	}
}

// WithClock replaces timer.Now.
func WithClock(now func() timer.Sample) Option {
	return func(r *Runner) {
		r.now = now
	}
}

func NewRunner(l *loader.Loader, s summarizer.Summarizer, log *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		loader:     l,
		summarizer: s,
		ratio:      DefaultRatio,
		now:        timer.Now,
		log:        log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loads path and summarizes it. The summarizer is not called when loading fails.
func (r *Runner) Run(ctx context.Context, path string) (domain.Summary, error) {
	buf, err := r.loader.Load(ctx, path)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	doc, err := document.Extract(buf.Data)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	r.log.DebugContext(ctx, "Input is loaded",
		"path", path,
		"size", buf.Len(),
		"format", doc.Format,
		"title", doc.Title,
		"linkCount", len(doc.Links))

	if r.metrics != nil {
		r.metrics.RecordInput(buf.Len())
	}

	start := r.now()
	text, err := r.summarizer.Summarize(ctx, summarizer.Input{
		Text:   doc.Text,
		Ratio:  r.ratio,
		Source: path,
	})
	end := r.now()

	elapsed := timer.ElapsedMillis(start, end)

	if r.metrics != nil {
		r.metrics.RecordRun(r.provider, time.Duration(elapsed)*time.Millisecond, utf8.RuneCountInString(text), err, time.Now())
	}

	if err != nil {
		return domain.Summary{}, fmt.Errorf("%w: %w", ErrSummarize, err)
	}

	r.log.DebugContext(ctx, "Input is summarized",
		"path", path,
		"ratio", r.ratio,
		"startMillis", start.Millis(),
		"elapsedMillis", elapsed,
		"summaryLen", len(text))

	return domain.Summary{Text: text, ElapsedMillis: elapsed}, nil
}

// Print writes the summary line followed by the elapsed time line.
func Print(w io.Writer, s domain.Summary) error {
	_, err := fmt.Fprintf(w, "%s\n%d milliseconds elapsed\n", s.Text, s.ElapsedMillis)
	return err
}
