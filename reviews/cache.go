package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/7248-om/gshock12/logger"
	"github.com/redis/go-redis/v9"
)

const cacheKey = "reviews:google:summary"

// CachedFetcher serves the last successful summary from Redis until it expires.
// Redis failures fall through to the upstream fetcher.
type CachedFetcher struct {
	next Fetcher
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedFetcher(next Fetcher, rdb *redis.Client, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{next: next, rdb: rdb, ttl: ttl}
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func (c *CachedFetcher) Fetch(ctx context.Context) (*Summary, error) {
	log := logger.WithComponent("reviews")

	raw, err := c.rdb.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		var s Summary
		if jsonErr := json.Unmarshal(raw, &s); jsonErr == nil {
			return &s, nil
		}
	case !errors.Is(err, redis.Nil):
		log.WithError(err).Warn("reviews cache read failed")
	}

	s, err := c.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(s); err == nil {
		if err := c.rdb.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
			log.WithError(err).Warn("reviews cache write failed")
		}
	}
	return s, nil
}
