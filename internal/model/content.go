package model

// ContentItem is a raw content record as retrieved from the video platform
// or the external table store. Missing or unparseable counters are zero.
type ContentItem struct {
	Platform      string `json:"platform"`
	ExternalID    string `json:"external_id"`
	URL           string `json:"url"`
	Title         string `json:"title"`
	Views         int    `json:"views"`
	Likes         int    `json:"likes"`
	CommentsCount int    `json:"comments_count"`
}

// NormalizedItem is a ContentItem plus the derived engagement rate.
// It is recomputed on every analysis and never treated as stored truth:
// the table store keeps its own engagement_rate copy for browsing, but
// answers always use the freshly computed value.
type NormalizedItem struct {
	ContentItem
	EngagementRate float64 `json:"engagement_rate"`
}

// Normalize derives the engagement rate for a single item.
// engagement_rate = (likes + comments) / views, or 0 when there are no views.
func Normalize(it ContentItem) NormalizedItem {
	var rate float64
	if it.Views > 0 {
		rate = float64(it.Likes+it.CommentsCount) / float64(it.Views)
	}
	return NormalizedItem{ContentItem: it, EngagementRate: rate}
}

// NormalizeAll normalizes a slice of items, preserving order.
func NormalizeAll(items []ContentItem) []NormalizedItem {
	out := make([]NormalizedItem, 0, len(items))
	for _, it := range items {
		out = append(out, Normalize(it))
	}
	return out
}
