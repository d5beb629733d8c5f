package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"smarty-chef/internal/infrastructure/config"
	"smarty-chef/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisKeyPrefix = "smarty-chef:"

// RedisStore 以 Redis 實作的共享快取
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	hits   int64
	misses int64
}

// NewRedisStore 創建 Redis 快取並測試連接
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return newRedisStore(client, cfg.Cache.TTL), nil
}

func newRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get 獲取緩存；Redis 錯誤視為未命中
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			common.LogWarn("Redis get failed", zap.String("key", key), zap.Error(err))
		}
		atomic.AddInt64(&s.misses, 1)
		common.LogCacheMiss("redis", key)
		return nil, false
	}
	atomic.AddInt64(&s.hits, 1)
	common.LogCacheHit("redis", key)
	return data, true
}

// Set 設置緩存
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Stats 獲取緩存統計信息
func (s *RedisStore) Stats() map[string]interface{} {
	return map[string]interface{}{
		"backend": "redis",
		"hits":    atomic.LoadInt64(&s.hits),
		"misses":  atomic.LoadInt64(&s.misses),
	}
}

// Close 關閉 Redis 連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
