package model

// SyncResult is the API response for POST /sync.
type SyncResult struct {
	Synced int           `json:"synced"`
	Added  int           `json:"added"`
	Items  []ContentItem `json:"items"`
}

// ChatRequest is the API request body for POST /chat.
type ChatRequest struct {
	Question string `json:"question"`
	Channel  string `json:"channel,omitempty"`
}

// ChatResponse is the API response for POST /chat.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// StatsResponse is the API response for GET /api/stats.
type StatsResponse struct {
	StoredItems    int    `json:"storedItems"`
	DefaultChannel string `json:"defaultChannel,omitempty"`
	LLMConfigured  bool   `json:"llmConfigured"`
	CacheBackend   string `json:"cacheBackend"`
}
