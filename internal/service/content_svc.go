package service

import (
	"context"
	"log"
	"time"

	"github.com/avetrov/contentpulse/internal/cache"
	"github.com/avetrov/contentpulse/internal/metrics"
	"github.com/avetrov/contentpulse/internal/model"
)

// PlatformClient is the slice of the video platform API the content
// service needs.
type PlatformClient interface {
	FetchRecent(ctx context.Context, channelID string, count int) ([]model.ContentItem, error)
}

// TableStore is the slice of the external tabular store the services need.
type TableStore interface {
	ListRecent(ctx context.Context, limit int) ([]model.ContentItem, error)
	UpsertNew(ctx context.Context, items []model.ContentItem) (int, error)
}

// ContentService wraps the platform fetch with the result cache and drives
// the table-store sync. Fallback policy lives here, at the glue tier: the
// resolver, classifier and generator below it never substitute data.
type ContentService struct {
	platform PlatformClient
	store    TableStore // nil when the table store is not configured
	cache    cache.Store
}

func NewContentService(platform PlatformClient, store TableStore, c cache.Store) *ContentService {
	return &ContentService{platform: platform, store: store, cache: c}
}

// FetchRecent returns the channel's most recent items, consulting the
// result cache around the platform call.
func (s *ContentService) FetchRecent(ctx context.Context, channelID string, count int) ([]model.ContentItem, error) {
	if items, ok := s.cache.Get(ctx, channelID, count); ok {
		metrics.IncCacheHit()
		return items, nil
	}
	metrics.IncCacheMiss()

	start := time.Now()
	items, err := s.platform.FetchRecent(ctx, channelID, count)
	metrics.ObserveUpstream("youtube", time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	s.cache.Put(ctx, channelID, count, items)
	return items, nil
}

// Sync fetches the channel's recent items and persists the unseen ones to
// the table store. A platform failure degrades to the fixed sample dataset;
// a store failure is logged and never blocks returning the fetched items.
func (s *ContentService) Sync(ctx context.Context, channelID string, count int) (*model.SyncResult, error) {
	items, err := s.FetchRecent(ctx, channelID, count)
	if err != nil {
		log.Printf("sync: platform fetch failed, using sample data: %v", err)
		items = SampleItems()
	}

	added := 0
	if s.store != nil {
		start := time.Now()
		added, err = s.store.UpsertNew(ctx, items)
		metrics.ObserveUpstream("tablestore", time.Since(start).Seconds())
		if err != nil {
			log.Printf("sync: table store write failed: %v", err)
			added = 0
		}
	}
	metrics.AddItemsSynced(added)

	return &model.SyncResult{Synced: len(items), Added: added, Items: items}, nil
}

// StoredCount returns how many items the table store currently holds.
// Used by the stats endpoint; a missing or failing store reads as zero.
func (s *ContentService) StoredCount(ctx context.Context) int {
	if s.store == nil {
		return 0
	}
	items, err := s.store.ListRecent(ctx, 0)
	if err != nil {
		log.Printf("stats: table store read failed: %v", err)
		return 0
	}
	return len(items)
}

// CacheBackend names the configured cache implementation.
func (s *ContentService) CacheBackend() string {
	return s.cache.Name()
}
