// Package cache 快取上游食譜詳情，減少對 Spoonacular 的重複呼叫。
package cache

import (
	"context"

	"smarty-chef/internal/infrastructure/config"
	"smarty-chef/internal/pkg/common"

	"go.uber.org/zap"
)

// Store 快取介面
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Stats() map[string]interface{}
	Close() error
}

// New 根據設定建立快取：停用時回傳 nil，有 Redis 位址時使用 Redis，否則使用記憶體
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}

	if cfg.Redis.Addr != "" {
		store, err := NewRedisStore(cfg)
		if err != nil {
			return nil, err
		}
		common.LogInfo("Using redis cache", zap.String("addr", cfg.Redis.Addr))
		return store, nil
	}

	return NewManager(cfg), nil
}
