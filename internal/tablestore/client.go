package tablestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avetrov/contentpulse/internal/model"
)

// APIError is returned for any non-success response from the table store.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("table store: status %d: %s", e.Status, e.Message)
}

// HTTPStatus reports the upstream status code, 0 for transport-level failures.
func (e *APIError) HTTPStatus() int { return e.Status }

// Client talks to a Fusion-style datasheet records API.
type Client struct {
	baseURL string
	token   string
	tableID string
	http    *http.Client
}

// NewClient creates a table store client. Returns an error when any of the
// required settings is missing, so misconfiguration surfaces at startup.
func NewClient(baseURL, token, tableID string) (*Client, error) {
	if baseURL == "" || token == "" || tableID == "" {
		return nil, fmt.Errorf("table store: TABLE_BASE_URL, TABLE_API_TOKEN and TABLE_CONTENT_TABLE_ID must be set")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		tableID: tableID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type recordFields struct {
	Platform       string  `json:"platform"`
	ExternalID     string  `json:"external_id"`
	URL            string  `json:"url"`
	Title          string  `json:"title"`
	Views          int     `json:"views"`
	Likes          int     `json:"likes"`
	CommentsCount  int     `json:"comments_count"`
	EngagementRate float64 `json:"engagement_rate"`
}

type record struct {
	RecordID string       `json:"recordId,omitempty"`
	Fields   recordFields `json:"fields"`
}

type listResponse struct {
	Records []record `json:"records"`
}

type createRequest struct {
	Records []record `json:"records"`
}

// ListRecords returns all stored content items in table order. The stored
// engagement_rate is intentionally dropped: consumers recompute it from the
// raw counters, so out-of-band edits to likes or comments never leave a
// stale rate in answers.
func (c *Client) ListRecords(ctx context.Context) ([]model.ContentItem, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, nil, &resp); err != nil {
		return nil, err
	}

	items := make([]model.ContentItem, 0, len(resp.Records))
	for _, rec := range resp.Records {
		if rec.Fields.ExternalID == "" {
			continue
		}
		items = append(items, model.ContentItem{
			Platform:      rec.Fields.Platform,
			ExternalID:    rec.Fields.ExternalID,
			URL:           rec.Fields.URL,
			Title:         rec.Fields.Title,
			Views:         rec.Fields.Views,
			Likes:         rec.Fields.Likes,
			CommentsCount: rec.Fields.CommentsCount,
		})
	}
	return items, nil
}

// ListRecent returns the last limit stored items (table order, tail).
func (c *Client) ListRecent(ctx context.Context, limit int) ([]model.ContentItem, error) {
	items, err := c.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[len(items)-limit:]
	}
	return items, nil
}

// CreateRecords inserts the given items. The caller is responsible for
// deduplication; use UpsertNew for the dedup-aware path.
func (c *Client) CreateRecords(ctx context.Context, items []model.ContentItem) error {
	payload := createRequest{Records: make([]record, 0, len(items))}
	for _, it := range items {
		n := model.Normalize(it)
		payload.Records = append(payload.Records, record{Fields: recordFields{
			Platform:       it.Platform,
			ExternalID:     it.ExternalID,
			URL:            it.URL,
			Title:          it.Title,
			Views:          it.Views,
			Likes:          it.Likes,
			CommentsCount:  it.CommentsCount,
			EngagementRate: n.EngagementRate,
		}})
	}
	return c.do(ctx, http.MethodPost, payload, nil)
}

// UpsertNew inserts only the items whose external_id is not yet present in
// the table, keeping the store free of duplicates. Returns how many records
// were created.
func (c *Client) UpsertNew(ctx context.Context, items []model.ContentItem) (int, error) {
	existing, err := c.ListRecords(ctx)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, it := range existing {
		seen[it.ExternalID] = struct{}{}
	}

	fresh := make([]model.ContentItem, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ExternalID]; !ok {
			fresh = append(fresh, it)
			seen[it.ExternalID] = struct{}{}
		}
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	if err := c.CreateRecords(ctx, fresh); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

func (c *Client) do(ctx context.Context, method string, in, out interface{}) error {
	endpoint := fmt.Sprintf("%s/datasheets/%s/records?fieldKey=name", c.baseURL, c.tableID)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &APIError{Status: 0, Message: err.Error()}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &APIError{Status: resp.StatusCode, Message: string(raw)}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: "malformed response: " + err.Error()}
		}
	}
	return nil
}
