package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient keeps sorted sets in memory. Any Func field, when set,
// overrides the in-memory behavior for that method.
type MockRedisClient struct {
	mutex sync.Mutex
	sets  map[string]map[string]float64

	ZIncrByFunc             func(ctx context.Context, key string, incr int64, member string) error
	ZRevRangeWithScoresFunc func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error)
	ZRemFunc                func(ctx context.Context, key string, member string) error
	DelFunc                 func(ctx context.Context, key string) error
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{sets: make(map[string]map[string]float64)}
}

func (c *MockRedisClient) ZIncrBy(ctx context.Context, key string, incr int64, member string) error {
	if c.ZIncrByFunc != nil {
		return c.ZIncrByFunc(ctx, key, incr, member)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.sets[key] == nil {
		c.sets[key] = make(map[string]float64)
	}
	c.sets[key][member] += float64(incr)
	return nil
}

func (c *MockRedisClient) ZRevRangeWithScores(
	ctx context.Context, key string, offset, limit int,
) ([]redis.Z, error) {
	if c.ZRevRangeWithScoresFunc != nil {
		return c.ZRevRangeWithScoresFunc(ctx, key, offset, limit)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	zs := []redis.Z{}
	for member, score := range c.sets[key] {
		zs = append(zs, redis.Z{Member: member, Score: score})
	}
	sort.Slice(zs, func(i, j int) bool {
		if zs[i].Score != zs[j].Score {
			return zs[i].Score > zs[j].Score
		}
		return zs[i].Member.(string) > zs[j].Member.(string)
	})

	if offset >= len(zs) {
		return []redis.Z{}, nil
	}
	zs = zs[offset:]
	if limit < len(zs) {
		zs = zs[:limit]
	}
	return zs, nil
}

func (c *MockRedisClient) ZRem(ctx context.Context, key string, member string) error {
	if c.ZRemFunc != nil {
		return c.ZRemFunc(ctx, key, member)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.sets[key], member)
	return nil
}

func (c *MockRedisClient) Del(ctx context.Context, key string) error {
	if c.DelFunc != nil {
		return c.DelFunc(ctx, key)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.sets, key)
	return nil
}
