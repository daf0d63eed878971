package tablestore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avetrov/contentpulse/internal/model"
)

// fakeTableServer emulates the datasheet records API with in-memory state.
type fakeTableServer struct {
	records []record
	creates int
}

func (f *fakeTableServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(listResponse{Records: f.records})
		case http.MethodPost:
			var req createRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			f.records = append(f.records, req.Records...)
			f.creates++
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(listResponse{Records: req.Records})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func newTestClient(t *testing.T, srv *fakeTableServer) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)

	c, err := NewClient(ts.URL, "test-token", "dstTEST")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, ts
}

func TestNewClient_RequiresSettings(t *testing.T) {
	if _, err := NewClient("", "token", "dst"); err == nil {
		t.Error("missing base URL should fail")
	}
	if _, err := NewClient("http://x", "", "dst"); err == nil {
		t.Error("missing token should fail")
	}
	if _, err := NewClient("http://x", "token", ""); err == nil {
		t.Error("missing table ID should fail")
	}
}

func TestUpsertNew_DedupsByExternalID(t *testing.T) {
	srv := &fakeTableServer{records: []record{
		{Fields: recordFields{ExternalID: "v1", Title: "Existing", Views: 10}},
	}}
	c, _ := newTestClient(t, srv)

	added, err := c.UpsertNew(context.Background(), []model.ContentItem{
		{ExternalID: "v1", Title: "Existing", Views: 10},
		{ExternalID: "v2", Title: "New", Views: 20, Likes: 2},
		{ExternalID: "v2", Title: "Duplicate in batch", Views: 20},
	})
	if err != nil {
		t.Fatalf("UpsertNew: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1 (v1 exists, v2 duplicated in batch)", added)
	}
	if len(srv.records) != 2 {
		t.Errorf("server has %d records, want 2", len(srv.records))
	}
}

func TestUpsertNew_NothingNewSkipsCreate(t *testing.T) {
	srv := &fakeTableServer{records: []record{
		{Fields: recordFields{ExternalID: "v1"}},
	}}
	c, _ := newTestClient(t, srv)

	added, err := c.UpsertNew(context.Background(), []model.ContentItem{{ExternalID: "v1"}})
	if err != nil {
		t.Fatalf("UpsertNew: %v", err)
	}
	if added != 0 {
		t.Errorf("added = %d, want 0", added)
	}
	if srv.creates != 0 {
		t.Errorf("creates = %d, want 0 (no POST when nothing is new)", srv.creates)
	}
}

func TestCreateRecords_WritesComputedEngagement(t *testing.T) {
	srv := &fakeTableServer{}
	c, _ := newTestClient(t, srv)

	err := c.CreateRecords(context.Background(), []model.ContentItem{
		{ExternalID: "v1", Views: 100, Likes: 9, CommentsCount: 1},
	})
	if err != nil {
		t.Fatalf("CreateRecords: %v", err)
	}
	if got := srv.records[0].Fields.EngagementRate; got != 0.1 {
		t.Errorf("stored engagement rate = %f, want 0.1", got)
	}
}

func TestListRecords_RecomputesEngagementOnRead(t *testing.T) {
	// Stored rate is stale relative to the raw counters; the read path must
	// ignore it so consumers recompute from likes and comments.
	srv := &fakeTableServer{records: []record{
		{Fields: recordFields{ExternalID: "v1", Views: 100, Likes: 50, EngagementRate: 0.001}},
	}}
	c, _ := newTestClient(t, srv)

	items, err := c.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	n := model.Normalize(items[0])
	if n.EngagementRate != 0.5 {
		t.Errorf("recomputed engagement = %f, want 0.5 (stored stale rate ignored)", n.EngagementRate)
	}
}

func TestListRecent_TakesTail(t *testing.T) {
	srv := &fakeTableServer{records: []record{
		{Fields: recordFields{ExternalID: "v1"}},
		{Fields: recordFields{ExternalID: "v2"}},
		{Fields: recordFields{ExternalID: "v3"}},
	}}
	c, _ := newTestClient(t, srv)

	items, err := c.ListRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(items) != 2 || items[0].ExternalID != "v2" || items[1].ExternalID != "v3" {
		t.Errorf("ListRecent = %+v, want last two records", items)
	}
}

func TestListRecords_ErrorCarriesStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, "test-token", "dstTEST")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.ListRecords(context.Background())
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", apiErr.Status)
	}
}
