// internal/retrieval/cache.go
package retrieval

import (
	"context"
	"encoding/json"
	"time"

	"leadscore/internal/common/database"
	"leadscore/internal/common/logger"
)

const (
	digitalKeyPrefix    = "leadscore:digital:"
	engagementKeyPrefix = "leadscore:engagement:"
)

// Cache keeps retrieved indicators in Redis so re-runs over the same lead
// list skip repeat fetches. Cache problems degrade to a miss; retrieval must
// never fail because Redis is down.
type Cache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewCache(redis *database.RedisClient, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{
		redis:  redis,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "retrieval-cache"}),
	}
}

func (c *Cache) GetDigital(ctx context.Context, url string, out interface{}) bool {
	return c.get(ctx, digitalKeyPrefix+url, out)
}

func (c *Cache) SetDigital(ctx context.Context, url string, v interface{}) {
	c.set(ctx, digitalKeyPrefix+url, v)
}

func (c *Cache) GetEngagement(ctx context.Context, url string, out interface{}) bool {
	return c.get(ctx, engagementKeyPrefix+url, out)
}

func (c *Cache) SetEngagement(ctx context.Context, url string, v interface{}) {
	c.set(ctx, engagementKeyPrefix+url, v)
}

func (c *Cache) get(ctx context.Context, key string, out interface{}) bool {
	raw, err := c.redis.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		c.logger.Warn("dropping undecodable cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		_ = c.redis.Del(ctx, key)
		return false
	}
	return true
}

func (c *Cache) set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, string(data), c.ttl); err != nil {
		c.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
