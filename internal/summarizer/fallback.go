package summarizer

import (
	"context"
	"log/slog"
)

// Fallback tries primary first and uses secondary when primary fails. An empty summary from
// primary is a valid result, e.g. when the text is too short to keep any sentence.
type Fallback struct {
	primary     Summarizer
	primaryName string
	secondary   Summarizer
	log         *slog.Logger
}

func NewFallback(primary Summarizer, primaryName string, secondary Summarizer, log *slog.Logger) *Fallback {
	return &Fallback{
		primary:     primary,
		primaryName: primaryName,
		secondary:   secondary,
		log:         log,
	}
}

func (f *Fallback) Summarize(ctx context.Context, input Input) (string, error) {
	summary, err := f.primary.Summarize(ctx, input)
	if err == nil {
		return summary, nil
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	f.log.WarnContext(ctx, "Failed to summarize with provider so fallback will be used",
		"error", err,
		"provider", f.primaryName,
		"source", input.Source,
		"textLen", len(input.Text))

	return f.secondary.Summarize(ctx, input)
}
