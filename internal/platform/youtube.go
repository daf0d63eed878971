package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avetrov/contentpulse/internal/model"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// APIError is returned for any non-success response from the video platform.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube api: status %d: %s", e.Status, e.Message)
}

// HTTPStatus lets callers distinguish not-found lookups from transport failures.
func (e *APIError) HTTPStatus() int { return e.Status }

// Client talks to the YouTube Data API v3.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a platform client. The API key may be empty; calls will
// then fail with an APIError on first use.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID   string `json:"videoId"`
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet struct {
			ChannelID string `json:"channelId"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title     string `json:"title"`
			ChannelID string `json:"channelId"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type channelsResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

// SearchVideos returns the IDs of the channel's most recent videos, newest first.
func (c *Client) SearchVideos(ctx context.Context, channelID string, maxResults int) ([]string, error) {
	params := url.Values{}
	params.Set("part", "id")
	params.Set("channelId", channelID)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "date")
	params.Set("type", "video")

	var resp searchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

// GetStats returns title and counter statistics for the given videos,
// keyed by video ID. Videos the API does not know are absent from the map.
func (c *Client) GetStats(ctx context.Context, videoIDs []string) (map[string]model.ContentItem, error) {
	if len(videoIDs) == 0 {
		return map[string]model.ContentItem{}, nil
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", strings.Join(videoIDs, ","))

	var resp videosResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}

	stats := make(map[string]model.ContentItem, len(resp.Items))
	for _, item := range resp.Items {
		title := item.Snippet.Title
		if title == "" {
			title = "Video " + item.ID
		}
		stats[item.ID] = model.ContentItem{
			Platform:      "YouTube",
			ExternalID:    item.ID,
			URL:           "https://www.youtube.com/watch?v=" + item.ID,
			Title:         title,
			Views:         atoiOrZero(item.Statistics.ViewCount),
			Likes:         atoiOrZero(item.Statistics.LikeCount),
			CommentsCount: atoiOrZero(item.Statistics.CommentCount),
		}
	}
	return stats, nil
}

// FetchRecent combines SearchVideos and GetStats, preserving the recency
// order of the search results.
func (c *Client) FetchRecent(ctx context.Context, channelID string, count int) ([]model.ContentItem, error) {
	ids, err := c.SearchVideos(ctx, channelID, count)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.ContentItem{}, nil
	}

	stats, err := c.GetStats(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]model.ContentItem, 0, len(ids))
	for _, id := range ids {
		if it, ok := stats[id]; ok {
			items = append(items, it)
		}
	}
	return items, nil
}

// SearchChannels runs a free-text channel search and returns matching
// channel IDs, best match first.
func (c *Client) SearchChannels(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("part", "id")
	params.Set("q", query)
	params.Set("type", "channel")
	params.Set("maxResults", "5")

	var resp searchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.ChannelID != "" {
			ids = append(ids, item.ID.ChannelID)
		}
	}
	return ids, nil
}

// GetVideoOwner returns the channel ID that owns the given video.
// An unknown video yields an APIError with status 404.
func (c *Client) GetVideoOwner(ctx context.Context, videoID string) (string, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", videoID)

	var resp videosResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", &APIError{Status: http.StatusNotFound, Message: "video not found: " + videoID}
	}
	return resp.Items[0].Snippet.ChannelID, nil
}

// GetChannelByHandle resolves an @handle to a channel ID via the exact-match
// forHandle lookup. An unknown handle yields an APIError with status 404.
func (c *Client) GetChannelByHandle(ctx context.Context, handle string) (string, error) {
	params := url.Values{}
	params.Set("part", "id")
	params.Set("forHandle", strings.TrimPrefix(handle, "@"))

	var resp channelsResponse
	if err := c.get(ctx, "/channels", params, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", &APIError{Status: http.StatusNotFound, Message: "channel not found for handle: " + handle}
	}
	return resp.Items[0].ID, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if c.apiKey == "" {
		return &APIError{Status: 0, Message: "YOUTUBE_API_KEY is not configured"}
	}
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Message: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "malformed response: " + err.Error()}
	}
	return nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
