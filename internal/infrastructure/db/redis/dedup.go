package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides notification idempotency checks backed by Redis, so a
// transition that gets enqueued twice still produces a single outbound notice.
// Key format: notify:<tracking_code>:<status>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this notification has already been delivered.
func (d *DedupChecker) IsDuplicate(ctx context.Context, trackingCode, status string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(trackingCode, status, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this notification went out (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, trackingCode, status string, ts time.Time) error {
	return d.client.Set(ctx, d.key(trackingCode, status, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(trackingCode, status string, ts time.Time) string {
	return fmt.Sprintf("notify:%s:%s:%d", trackingCode, status, ts.Unix())
}
