package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/avetrov/contentpulse/internal/model"
)

// DefaultTTL bounds how long a fetched item list is served without going
// back to the platform.
const DefaultTTL = 60 * time.Second

// Store is a time-bounded memo of (channel ID, requested count) → item list.
// An expired entry is indistinguishable from a cold miss. Implementations
// must tolerate concurrent use; failures degrade to misses, never to errors.
type Store interface {
	Get(ctx context.Context, channelID string, count int) ([]model.ContentItem, bool)
	Put(ctx context.Context, channelID string, count int, items []model.ContentItem)
	Name() string
}

func entryKey(channelID string, count int) string {
	return fmt.Sprintf("items:%s:%d", channelID, count)
}
