package database_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfidfsum/internal/database"
	"tfidfsum/internal/summarizer"
)

func openDB(t *testing.T, path string) *database.Database {
	t.Helper()

	db, err := database.New(context.Background(), path, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestSummaryRoundTrip(t *testing.T) {
	db := openDB(t, filepath.Join(t.TempDir(), "cache.sqlite"))
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	_, ok, err := db.GetSummary(ctx, "k", now)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.PutSummary(ctx, summarizer.CacheEntry{
		Key:       "k",
		Namespace: "tfidf",
		Ratio:     0.5,
		Summary:   "first",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}))

	summary, ok, err := db.GetSummary(ctx, "k", now)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "first", summary)

	require.NoError(t, db.PutSummary(ctx, summarizer.CacheEntry{
		Key:       "k",
		Namespace: "tfidf",
		Ratio:     0.5,
		Summary:   "second",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}))

	summary, _, err = db.GetSummary(ctx, "k", now)
	require.NoError(t, err)
	assert.Equal(t, "second", summary)
}

func TestSummaryExpiry(t *testing.T) {
	db := openDB(t, filepath.Join(t.TempDir(), "cache.sqlite"))
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, db.PutSummary(ctx, summarizer.CacheEntry{
		Key:       "k",
		Namespace: "tfidf",
		Ratio:     0.5,
		Summary:   "value",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}))

	_, ok, err := db.GetSummary(ctx, "k", now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	deleted, err := db.DeleteExpiredSummaries(ctx, now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.sqlite")

	first, err := database.New(context.Background(), path, slog.Default())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	openDB(t, path)
}

func TestEmptyKeyIsRejected(t *testing.T) {
	db := openDB(t, filepath.Join(t.TempDir(), "cache.sqlite"))

	_, _, err := db.GetSummary(context.Background(), " ", time.Now())
	require.Error(t, err)

	require.Error(t, db.PutSummary(context.Background(), summarizer.CacheEntry{}))
}
