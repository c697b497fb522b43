package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/Gustavuu/venice-orders/internal/port"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// keyPrefix guarantees no collision with other key spaces in the same Redis.
const keyPrefix = "order:"

const DefaultTTL = 2 * time.Minute

type redisViewCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisViewCache caches assembled order views for ttl. Caching is an
// optimization only: every failure degrades to a miss or a dropped set,
// logged and never surfaced.
func NewRedisViewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) port.ViewCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisViewCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *redisViewCache) Get(ctx context.Context, orderID uuid.UUID) (domain.OrderView, bool) {
	var view domain.OrderView

	payload, err := c.client.Get(ctx, Key(orderID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "cache get failed, treating as miss",
				"order_id", orderID, "error", err)
		}
		return view, false
	}

	if err := json.Unmarshal([]byte(payload), &view); err != nil {
		c.logger.WarnContext(ctx, "cached view is not decodable, treating as miss",
			"order_id", orderID, "error", err)
		return view, false
	}

	return view, true
}

func (c *redisViewCache) Set(ctx context.Context, orderID uuid.UUID, view domain.OrderView) {
	payload, err := json.Marshal(view)
	if err != nil {
		c.logger.WarnContext(ctx, "view is not encodable, skipping cache set",
			"order_id", orderID, "error", err)
		return
	}

	if err := c.client.Set(ctx, Key(orderID), payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache set failed, skipping",
			"order_id", orderID, "error", err)
	}
}

func Key(orderID uuid.UUID) string {
	return keyPrefix + orderID.String()
}
