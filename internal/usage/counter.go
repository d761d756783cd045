// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usage

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"promptpilot/internal/models"
)

const (
	// keyPrefix is the Valkey key prefix for usage counters.
	keyPrefix = "usage:"

	// dayLayout formats the per-day counter suffix (UTC).
	dayLayout = "2006-01-02"

	// DailyTTL is how long a per-day counter is kept after its last write.
	DailyTTL = 35 * 24 * time.Hour
)

// sources lists the counters reported by Snapshot, in output order.
var sources = []models.Source{models.SourceAI, models.SourceFallback}

// Snapshot is a point-in-time read of the counters.
type Snapshot struct {
	Day   string                  `json:"day"`
	Total map[models.Source]int64 `json:"total"`
	Today map[models.Source]int64 `json:"today"`
}

// Counter increments per-source totals and per-day counts in Valkey.
type Counter struct {
	client *redis.Client
	now    func() time.Time
}

// NewCounter creates a counter backed by the given Valkey client.
func NewCounter(client *redis.Client) *Counter {
	return &Counter{client: client, now: time.Now}
}

// TotalKey returns the all-time counter key for a source.
func TotalKey(source models.Source) string {
	return keyPrefix + string(source)
}

// DayKey returns the counter key for a source on a given UTC day.
func DayKey(source models.Source, day string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, source, day)
}

// Record counts one served prompt. Failures are logged and swallowed; a
// Valkey outage must never fail a generation request.
func (c *Counter) Record(ctx context.Context, source models.Source) {
	dayKey := DayKey(source, c.today())

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, TotalKey(source))
	pipe.Incr(ctx, dayKey)
	pipe.Expire(ctx, dayKey, DailyTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("usage counter record error", "source", source, "error", err)
	}
}

// Snapshot reads all counters in a single round trip. Missing keys count
// as zero.
func (c *Counter) Snapshot(ctx context.Context) (Snapshot, error) {
	day := c.today()

	keys := make([]string, 0, len(sources)*2)
	for _, s := range sources {
		keys = append(keys, TotalKey(s), DayKey(s, day))
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return Snapshot{}, fmt.Errorf("usage mget: %w", err)
	}

	snap := Snapshot{
		Day:   day,
		Total: make(map[models.Source]int64, len(sources)),
		Today: make(map[models.Source]int64, len(sources)),
	}
	for i, s := range sources {
		total, err := parseCount(vals[i*2])
		if err != nil {
			return Snapshot{}, fmt.Errorf("usage parse %s: %w", TotalKey(s), err)
		}
		today, err := parseCount(vals[i*2+1])
		if err != nil {
			return Snapshot{}, fmt.Errorf("usage parse %s: %w", DayKey(s, day), err)
		}
		snap.Total[s] = total
		snap.Today[s] = today
	}
	return snap, nil
}

func (c *Counter) today() string {
	return c.now().UTC().Format(dayLayout)
}

// parseCount converts an MGET value (nil or decimal string) to a count.
func parseCount(v any) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseInt(val, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected value type %T", v)
	}
}
