package cache

import (
	"fmt"

	"github.com/talentflow/backend/internal/domain/shared"
	"github.com/talentflow/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// DedupStoreFactory creates dedup stores based on configuration
type DedupStoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// DedupStoreFactoryOption is a functional option for configuring the factory
type DedupStoreFactoryOption func(*DedupStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) DedupStoreFactoryOption {
	return func(f *DedupStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory store
// when Redis is unavailable. Default is true (allow fallback).
func WithInMemoryFallback(allow bool) DedupStoreFactoryOption {
	return func(f *DedupStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewDedupStoreFactory creates a new factory
func NewDedupStoreFactory(cfg config.RedisConfig, opts ...DedupStoreFactoryOption) *DedupStoreFactory {
	f := &DedupStoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisStore creates a Redis-based dedup store
func (f *DedupStoreFactory) CreateRedisStore() (shared.DedupStore, error) {
	redisCfg := RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}

	store, err := NewRedisDedupStore(redisCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis dedup store: %w", err)
	}

	return store, nil
}

// CreateInMemoryStore creates an in-memory dedup store.
// WARNING: In-memory stores do not share state across process instances,
// which can let two instances send the same deployment notice.
func (f *DedupStoreFactory) CreateInMemoryStore() shared.DedupStore {
	return NewInMemoryDedupStore()
}

// CreateStore creates a dedup store based on whether Redis is available.
// It tries Redis first and falls back to in-memory when allowed.
func (f *DedupStoreFactory) CreateStore() (shared.DedupStore, error) {
	store, err := f.CreateRedisStore()
	if err == nil {
		f.logger.Info("using Redis dedup store")
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for send dedup but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory dedup store. "+
		"This may allow duplicate notices in distributed deployments.",
		zap.Error(err),
	)
	return f.CreateInMemoryStore(), nil
}
