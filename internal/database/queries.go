package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tfidfsum/internal/summarizer"
)

// GetSummary returns the cached summary for key unless it has expired at now.
func (d *Database) GetSummary(
	ctx context.Context,
	key string,
	now time.Time,
) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, errors.New("cache key is empty")
	}

	query := `select summary
	from summaries
	where cache_key = ? and expires_at > ?`

	var summary string

	err := d.db.QueryRowContext(ctx, query, key, now.UnixMilli()).Scan(&summary)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to execute query: %w", err)
	}

	return summary, true, nil
}

// PutSummary inserts or replaces the cached summary for entry.Key.
func (d *Database) PutSummary(ctx context.Context, entry summarizer.CacheEntry) error {
	key := strings.TrimSpace(entry.Key)
	if key == "" {
		return errors.New("cache key is empty")
	}

	query := `insert into summaries (cache_key, namespace, ratio, summary, created_at, expires_at)
	values (?, ?, ?, ?, ?, ?)
	on conflict (cache_key) do update
	set summary = excluded.summary,
	created_at = excluded.created_at,
	expires_at = excluded.expires_at`

	_, err := d.db.ExecContext(ctx, query,
		key,
		entry.Namespace,
		entry.Ratio,
		entry.Summary,
		entry.CreatedAt.UnixMilli(),
		entry.ExpiresAt.UnixMilli(),
	)

	return err
}

// DeleteExpiredSummaries removes entries that expired at or before now.
func (d *Database) DeleteExpiredSummaries(ctx context.Context, now time.Time) (int64, error) {
	query := "delete from summaries where expires_at <= ?"

	res, err := d.db.ExecContext(ctx, query, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return n, nil
}
