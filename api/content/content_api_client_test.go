package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vs-server/api"
	"vs-server/models"
)

func TestGetRecentContent(t *testing.T) {
	ts := time.Date(2026, 8, 1, 22, 30, 0, 0, time.UTC)
	want := []models.ContentItem{
		{ID: "post-1", VenueID: "venue-1", PerformerID: "performer-1", Timestamp: ts},
		{ID: "post-2", VenueID: "venue-2", Timestamp: ts.Add(-time.Hour)},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content/recent" {
			t.Errorf("expected path /content/recent; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RecentContentResponse{Items: want})
	}))
	defer srv.Close()

	client := NewContentApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetRecentContent()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, want, got, "Responses dont match")
}
