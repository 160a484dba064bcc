package cache

import (
	"context"
	"sync"
	"time"

	"storefront_orders/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	dedupKeyPrefix  = "storefront:dedup:"
	defaultDedupTTL = 24 * time.Hour
)

// RedisNotificationDeduper stores one marker per processed delivery.
type RedisNotificationDeduper struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.INotificationDeduper = (*RedisNotificationDeduper)(nil)

func NewRedisNotificationDeduper(client redis.Cmdable, ttl time.Duration) *RedisNotificationDeduper {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &RedisNotificationDeduper{client: client, ttl: ttl}
}

func (d *RedisNotificationDeduper) Seen(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, dedupKeyPrefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *RedisNotificationDeduper) Remember(ctx context.Context, key string) error {
	return d.client.Set(ctx, dedupKeyPrefix+key, 1, d.ttl).Err()
}

// MemoryNotificationDeduper is used when no Redis is configured. Markers are
// per process and dropped after ttl.
type MemoryNotificationDeduper struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	seen map[string]time.Time
}

var _ interfaces.INotificationDeduper = (*MemoryNotificationDeduper)(nil)

func NewMemoryNotificationDeduper(ttl time.Duration) *MemoryNotificationDeduper {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &MemoryNotificationDeduper{ttl: ttl, now: time.Now, seen: map[string]time.Time{}}
}

func (d *MemoryNotificationDeduper) Seen(_ context.Context, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	expires, ok := d.seen[key]
	if !ok {
		return false, nil
	}
	if d.now().After(expires) {
		delete(d.seen, key)
		return false, nil
	}
	return true, nil
}

func (d *MemoryNotificationDeduper) Remember(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for k, exp := range d.seen {
		if now.After(exp) {
			delete(d.seen, k)
		}
	}
	d.seen[key] = now.Add(d.ttl)
	return nil
}
