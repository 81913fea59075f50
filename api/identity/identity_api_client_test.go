package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vs-server/api"
)

func TestIsVIP(t *testing.T) {
	tests := []struct {
		name string
		tier string
		want bool
	}{
		{"Whale badge", "WHALE", true},
		{"Platinum badge", "PLATINUM", true},
		{"Gold badge", "GOLD", false},
		{"No badge", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != "GET" {
					t.Errorf("expected GET; got %s", r.Method)
				}
				if r.URL.Path != "/users/user-1/badges/venue-42" {
					t.Errorf("expected path /users/user-1/badges/venue-42; got %s", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(BadgeResponse{
					UserID:  "user-1",
					VenueID: "venue-42",
					Tier:    test.tier,
				})
			}))
			defer srv.Close()

			client := NewIdentityApiClient(api.NewHTTPClient(srv.URL))

			got, err := client.IsVIP("user-1", "venue-42")
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("IsVIP = %v; want %v", got, test.want)
			}
		})
	}
}

func TestGetFollowing(t *testing.T) {
	want := []string{"performer-1", "performer-2"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/user-1/following" {
			t.Errorf("expected path /users/user-1/following; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(FollowingResponse{UserID: "user-1", Following: want})
	}))
	defer srv.Close()

	client := NewIdentityApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetFollowing("user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "performer-1" || got[1] != "performer-2" {
		t.Errorf("GetFollowing = %v; want %v", got, want)
	}
}

func TestIdentityApiClientMock(t *testing.T) {
	mock := NewIdentityApiClientMock()
	mock.SetBadge("user-1", "venue-42", "WHALE")
	mock.SetFollowing("user-1", []string{"performer-1"})

	vip, err := mock.IsVIP("user-1", "venue-42")
	if err != nil || !vip {
		t.Errorf("expected VIP at venue-42, got vip=%v err=%v", vip, err)
	}

	vip, _ = mock.IsVIP("user-1", "other-venue")
	if vip {
		t.Error("expected no VIP status at other venue")
	}

	following, _ := mock.GetFollowing("user-1")
	if len(following) != 1 || following[0] != "performer-1" {
		t.Errorf("unexpected following list: %v", following)
	}
}
