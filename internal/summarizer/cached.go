package summarizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Store persists summaries between runs.
type Store interface {
	GetSummary(ctx context.Context, key string, now time.Time) (string, bool, error)
	PutSummary(ctx context.Context, entry CacheEntry) error
}

// CacheEntry is one stored summary.
type CacheEntry struct {
	Key       string
	Namespace string
	Ratio     float64
	Summary   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Cached serves repeated requests for the same text, ratio and namespace from a Store before
// calling the wrapped summarizer. Store failures are logged and never fail a summary.
type Cached struct {
	next      Summarizer
	namespace string
	store     Store
	ttl       time.Duration
	now       func() time.Time
	log       *slog.Logger
}

// NewCached wraps next. namespace separates summaries produced by different
// configurations, e.g. "tfidf" and "openai". Wrap only the summarizer whose output belongs
// to namespace, never a fallback chain.
func NewCached(
	next Summarizer,
	namespace string,
	store Store,
	ttl time.Duration,
	log *slog.Logger,
) *Cached {
	return &Cached{
		next:      next,
		namespace: namespace,
		store:     store,
		ttl:       ttl,
		now:       time.Now,
		log:       log,
	}
}

func (c *Cached) Summarize(ctx context.Context, input Input) (string, error) {
	now := c.now().UTC()
	key := CacheKey(c.namespace, input.Ratio, input.Text)

	summary, ok, err := c.store.GetSummary(ctx, key, now)
	if err != nil {
		c.log.WarnContext(ctx, "Failed to read summary cache",
			"error", err,
			"cacheKey", key)
	} else if ok {
		c.log.DebugContext(ctx, "Summary is served from cache",
			"cacheKey", key)

		return summary, nil
	}

	summary, err = c.next.Summarize(ctx, input)
	if err != nil {
		return "", err
	}

	if c.ttl <= 0 {
		return summary, nil
	}

	putErr := c.store.PutSummary(ctx, CacheEntry{
		Key:       key,
		Namespace: c.namespace,
		Ratio:     input.Ratio,
		Summary:   summary,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	})
	if putErr != nil {
		c.log.WarnContext(ctx, "Failed to write summary cache",
			"error", putErr,
			"cacheKey", key,
			"summaryLen", len(summary))
	}

	return summary, nil
}

// CacheKey identifies a summary by namespace, ratio and a hash of the text.
func CacheKey(namespace string, ratio float64, text string) string {
	hash := sha256.Sum256([]byte(text))

	return strings.Join([]string{
		namespace,
		strconv.FormatFloat(ratio, 'f', -1, 64),
		hex.EncodeToString(hash[:]),
	}, "|")
}
