package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Keys of the stats table.
const (
	KeyBestScorePercent           = "best_score_percent"
	KeyAverageResponseTimeSeconds = "average_response_time_seconds"
)

type statsRepo struct {
	db *sql.DB
}

func (r *statsRepo) Load(ctx context.Context) (Stats, error) {
	query, args := builder().
		Select("key", "value").
		From(entsql.Table(TableStats)).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var stats Stats
	for rows.Next() {
		var (
			key   string
			value int
		)
		if err := rows.Scan(&key, &value); err != nil {
			return Stats{}, fmt.Errorf("scan stats: %w", err)
		}
		switch key {
		case KeyBestScorePercent:
			stats.BestScorePercent, stats.HasBestScore = value, true
		case KeyAverageResponseTimeSeconds:
			stats.AverageResponseTimeSeconds, stats.HasAverageResponseTime = value, true
		}
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("read stats: %w", err)
	}
	return stats, nil
}

func (r *statsRepo) Save(ctx context.Context, stats Stats) error {
	now := time.Now().UTC()
	if stats.HasBestScore {
		if err := r.put(ctx, KeyBestScorePercent, stats.BestScorePercent, now); err != nil {
			return err
		}
	}
	if stats.HasAverageResponseTime {
		if err := r.put(ctx, KeyAverageResponseTimeSeconds, stats.AverageResponseTimeSeconds, now); err != nil {
			return err
		}
	}
	return nil
}

func (r *statsRepo) put(ctx context.Context, key string, value int, now time.Time) error {
	query, args := builder().
		Insert(TableStats).
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save stat %s: %w", key, err)
	}
	return nil
}

func (r *statsRepo) Reset(ctx context.Context) error {
	query, args := builder().Delete(TableStats).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}
