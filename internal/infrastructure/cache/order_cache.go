package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	orderKeyPrefix  = "storefront:order:"
	defaultOrderTTL = 5 * time.Minute
)

// RedisOrderCache keeps JSON snapshots of orders that are no longer PENDING.
type RedisOrderCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.IOrderCache = (*RedisOrderCache)(nil)

func NewRedisOrderCache(client redis.Cmdable, ttl time.Duration) *RedisOrderCache {
	if ttl <= 0 {
		ttl = defaultOrderTTL
	}
	return &RedisOrderCache{client: client, ttl: ttl}
}

func (c *RedisOrderCache) Get(ctx context.Context, id string) (entities.Order, error) {
	data, err := c.client.Get(ctx, orderKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Order{}, nil
	}
	if err != nil {
		logger.Warn("[order][cache] get failed", zap.String("order_id", id), zap.Error(err))
		return entities.Order{}, err
	}

	var order entities.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (c *RedisOrderCache) Set(ctx context.Context, order entities.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, orderKeyPrefix+order.ID, data, c.ttl).Err(); err != nil {
		logger.Warn("[order][cache] set failed", zap.String("order_id", order.ID), zap.Error(err))
		return err
	}
	return nil
}

func (c *RedisOrderCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, orderKeyPrefix+id).Err(); err != nil {
		logger.Warn("[order][cache] delete failed", zap.String("order_id", id), zap.Error(err))
		return err
	}
	return nil
}
