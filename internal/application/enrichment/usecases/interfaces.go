package usecases

import (
	"context"

	commondto "dialpool/internal/application/common/dto"
	"dialpool/internal/domain/record"
	"dialpool/internal/infrastructure/registry"
)

type ImportRecordsExecutor interface {
	Execute(ctx context.Context, cmd ImportCommand) (*ImportResult, error)
}

type BackfillExecutor interface {
	Execute(ctx context.Context, cmd BackfillCommand) (*BackfillResult, error)
}

type PurgeExecutor interface {
	Execute(ctx context.Context) (*PurgeResult, error)
}

type ListRecordsExecutor interface {
	Execute(ctx context.Context, query ListRecordsQuery) (*ListRecordsResult, error)
}

type GetRecordExecutor interface {
	Execute(ctx context.Context, query GetRecordQuery) (*commondto.RecordDetailDTO, error)
}

type GetCacheStatsExecutor interface {
	Execute(ctx context.Context) (*registry.CacheStats, error)
}

type ClearCacheExecutor interface {
	Execute(ctx context.Context) error
}

// Enricher looks identifiers up in the company registry, one outcome per
// input, in input order.
type Enricher interface {
	EnrichBatch(ctx context.Context, identifiers []record.Identifier) []record.EnrichmentOutcome
}

type RegistryCache interface {
	CacheStats(ctx context.Context) (registry.CacheStats, error)
	ClearCache(ctx context.Context) error
}

// TransactionRunner is satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PoolLocker is the allocation pool guard. Purge holds it so that no
// distribution sees a half-deleted pool.
type PoolLocker interface {
	Run(fn func() error) error
}
