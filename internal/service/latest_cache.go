package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eldercare-manager-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisLatestKeyPrefix namespaces the per-user latest-sample cache.
	RedisLatestKeyPrefix = "ec:health:latest:"

	// latestTTL bounds staleness when writes stop arriving.
	latestTTL = 10 * time.Minute
)

// LatestHealthCache keeps the most recent vital-sign sample per user in
// Redis so the monitor endpoints avoid a table scan on every poll. The
// database stays authoritative; every method degrades to a cache miss on
// Redis failure.
type LatestHealthCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewLatestHealthCache(redisClient *redis.Client, log *logrus.Logger) *LatestHealthCache {
	return &LatestHealthCache{
		redisClient: redisClient,
		log:         log,
	}
}

// Set stores the sample as the user's latest reading. Errors are logged
// and swallowed: a failed cache write must not fail the ingest path.
func (c *LatestHealthCache) Set(ctx context.Context, data *entity.HealthData) {
	if data == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		c.log.Warnf("Failed to marshal latest health sample for user %d: %+v", data.UserID, err)
		return
	}

	key := fmt.Sprintf("%s%d", RedisLatestKeyPrefix, data.UserID)
	if err := c.redisClient.Set(ctx, key, payload, latestTTL).Err(); err != nil {
		c.log.Warnf("Failed to cache latest health sample for user %d: %+v", data.UserID, err)
	}
}

// Get returns the cached latest sample, or (nil, nil) on a miss. Redis
// errors also read as a miss so callers fall through to the database.
func (c *LatestHealthCache) Get(ctx context.Context, userID int64) (*entity.HealthData, error) {
	key := fmt.Sprintf("%s%d", RedisLatestKeyPrefix, userID)

	payload, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read latest health cache for user %d: %+v", userID, err)
		}
		return nil, nil
	}

	var data entity.HealthData
	if err := json.Unmarshal(payload, &data); err != nil {
		c.log.Warnf("Corrupt latest health cache entry for user %d: %+v", userID, err)
		return nil, nil
	}

	return &data, nil
}

// Invalidate drops the cached entry, e.g. after a sample is deleted.
func (c *LatestHealthCache) Invalidate(ctx context.Context, userID int64) {
	key := fmt.Sprintf("%s%d", RedisLatestKeyPrefix, userID)
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		c.log.Warnf("Failed to invalidate latest health cache for user %d: %+v", userID, err)
	}
}
