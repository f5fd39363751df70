package stores

import (
	"context"

	"payout-analytics/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cachedRecordSetStore struct {
	inner RecordSetStore
	cache *lru.Cache[string, *models.RecordSet]
}

// NewCachedRecordSetStore fronts a RecordSetStore with an LRU cache of up to
// size callers. Put updates the cache only after the inner store succeeds, so
// a Get following a re-upload never serves the replaced snapshot.
func NewCachedRecordSetStore(inner RecordSetStore, size int) (RecordSetStore, error) {
	cache, err := lru.New[string, *models.RecordSet](size)
	if err != nil {
		return nil, err
	}
	return &cachedRecordSetStore{inner: inner, cache: cache}, nil
}

func (s *cachedRecordSetStore) Put(ctx context.Context, callerID string, recordSet *models.RecordSet) error {
	if err := s.inner.Put(ctx, callerID, recordSet); err != nil {
		// Drop any stale entry: the inner store's state is unknown now.
		s.cache.Remove(callerID)
		return err
	}
	s.cache.Add(callerID, recordSet)
	return nil
}

func (s *cachedRecordSetStore) Get(ctx context.Context, callerID string) (*models.RecordSet, error) {
	if recordSet, ok := s.cache.Get(callerID); ok {
		metricCacheHitsTotal.Inc()
		return recordSet, nil
	}
	metricCacheMissesTotal.Inc()

	recordSet, err := s.inner.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	s.cache.Add(callerID, recordSet)
	return recordSet, nil
}
