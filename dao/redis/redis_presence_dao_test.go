package redis

import (
	"context"
	"testing"
	"time"

	"vs-server/db"
	"vs-server/models"
)

func TestRedisPresenceDAO_UpsertAndGetNearby(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPresenceDAO(mockClient)

	friend1 := models.FriendPresence{
		UserID:      "friend1",
		VenueID:     "venue123",
		Location:    models.GeoPoint{Lat: 40.7128, Lon: -74.0060},
		LastUpdated: time.Now().UTC().Truncate(time.Second),
		IsActive:    true,
	}
	friend2 := models.FriendPresence{
		UserID:   "friend2",
		Location: models.GeoPoint{Lat: 40.7130, Lon: -74.0050},
		IsActive: true,
	}

	// Act
	if err := dao.UpsertFriendPresence(friend1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := dao.UpsertFriendPresence(friend2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	friends, err := dao.GetNearbyFriends(40.7128, -74.0060, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert
	if len(friends) != 2 {
		t.Fatalf("Expected 2 friends, got %d", len(friends))
	}
	expected := map[string]bool{"friend1": true, "friend2": true}
	for _, f := range friends {
		if !expected[f.UserID] {
			t.Errorf("Unexpected friend id: %s", f.UserID)
		}
	}
}

func TestRedisPresenceDAO_DeleteFriendPresence(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPresenceDAO(mockClient)

	friend := models.FriendPresence{
		UserID:   "friend1",
		Location: models.GeoPoint{Lat: 1, Lon: 2},
		IsActive: true,
	}
	if err := dao.UpsertFriendPresence(friend); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := dao.DeleteFriendPresence("friend1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	friends, err := dao.GetNearbyFriends(1, 2, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(friends) != 0 {
		t.Errorf("Expected no friends after delete, got %d", len(friends))
	}
}
