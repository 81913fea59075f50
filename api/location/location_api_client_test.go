package location

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"vs-server/api"
	"vs-server/models"
)

func TestGetVisibleFriends(t *testing.T) {
	want := []models.FriendPresence{
		{UserID: "friend-1", VenueID: "venue-1", Location: models.GeoPoint{Lat: 1, Lon: 2}, IsActive: true},
		{UserID: "friend-2", IsActive: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/friends/visible" {
			t.Errorf("expected path /friends/visible; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(VisibleFriendsResponse{Friends: want})
	}))
	defer srv.Close()

	client := NewLocationApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetVisibleFriends()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, want, got, "Responses dont match")
}

func TestLocationApiClientMock(t *testing.T) {
	mock := NewLocationApiClientMock()

	got, err := mock.GetVisibleFriends()
	if err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, got)

	friends := []models.FriendPresence{{UserID: "friend-1", IsActive: true}}
	mock.SetVisibleFriends(friends)

	got, err = mock.GetVisibleFriends()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, friends, got)

	// Mutating the returned slice must not leak into the mock
	got[0].UserID = "mutated"
	again, _ := mock.GetVisibleFriends()
	assert.Equal(t, "friend-1", again[0].UserID)
}
