package usecases

import (
	"context"

	"dialpool/internal/infrastructure/registry"
	"dialpool/internal/shared/logger"
)

type GetCacheStatsUseCase struct {
	cache  RegistryCache
	logger logger.Interface
}

func NewGetCacheStatsUseCase(cache RegistryCache, logger logger.Interface) *GetCacheStatsUseCase {
	return &GetCacheStatsUseCase{cache: cache, logger: logger}
}

func (uc *GetCacheStatsUseCase) Execute(ctx context.Context) (*registry.CacheStats, error) {
	stats, err := uc.cache.CacheStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to read registry cache stats", "error", err)
		return nil, err
	}
	return &stats, nil
}

type ClearCacheUseCase struct {
	cache  RegistryCache
	logger logger.Interface
}

func NewClearCacheUseCase(cache RegistryCache, logger logger.Interface) *ClearCacheUseCase {
	return &ClearCacheUseCase{cache: cache, logger: logger}
}

func (uc *ClearCacheUseCase) Execute(ctx context.Context) error {
	if err := uc.cache.ClearCache(ctx); err != nil {
		uc.logger.Errorw("failed to clear registry cache", "error", err)
		return err
	}
	uc.logger.Infow("registry cache cleared")
	return nil
}
