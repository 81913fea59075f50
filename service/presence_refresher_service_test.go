package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vs-server/api/location"
	"vs-server/dao/redis"
	"vs-server/db"
	"vs-server/models"
)

func TestRefresh_SwapsSnapshot(t *testing.T) {
	locationMock := location.NewLocationApiClientMock()
	svc := NewPresenceRefresherService(locationMock, nil)

	assert.Empty(t, svc.Snapshot())

	locationMock.SetVisibleFriends([]models.FriendPresence{
		activeFriend("f1", "venue1", 1, 1),
		activeFriend("f2", "venue1", 2, 2),
	})
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	snapshot := svc.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("Expected 2 friends in snapshot, got %d", len(snapshot))
	}
	assert.Equal(t, "f1", snapshot[0].UserID)
}

func TestRefresh_ProviderFailureKeepsPreviousSnapshot(t *testing.T) {
	locationMock := location.NewLocationApiClientMock()
	svc := NewPresenceRefresherService(locationMock, nil)

	locationMock.SetVisibleFriends([]models.FriendPresence{
		activeFriend("f1", "venue1", 1, 1),
	})
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	locationMock.SetErr(errors.New("location provider down"))
	err := svc.Refresh()
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}

	snapshot := svc.Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("Expected previous snapshot to survive, got %d friends", len(snapshot))
	}
	assert.Equal(t, "f1", snapshot[0].UserID)
}

func TestRefresh_MirrorsSnapshotToGeoIndex(t *testing.T) {
	locationMock := location.NewLocationApiClientMock()
	presenceDao := redis.NewRedisPresenceDAO(db.NewMockRedisClient(context.Background()))
	svc := NewPresenceRefresherService(locationMock, presenceDao)

	locationMock.SetVisibleFriends([]models.FriendPresence{
		activeFriend("f1", "venue1", 1, 1),
		activeFriend("f2", "venue2", 2, 2),
	})
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	nearby, err := presenceDao.GetNearbyFriends(0, 0, 500)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Len(t, nearby, 2)

	// f2 goes invisible on the next tick and must leave the index
	locationMock.SetVisibleFriends([]models.FriendPresence{
		activeFriend("f1", "venue1", 1, 1),
	})
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	nearby, err = presenceDao.GetNearbyFriends(0, 0, 500)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(nearby) != 1 {
		t.Fatalf("Expected 1 friend after delete, got %d", len(nearby))
	}
	assert.Equal(t, "f1", nearby[0].UserID)
}

func TestPeriodicJob_RefreshesUntilStopped(t *testing.T) {
	locationMock := location.NewLocationApiClientMock()
	svc := NewPresenceRefresherService(locationMock, nil)

	locationMock.SetVisibleFriends([]models.FriendPresence{
		activeFriend("f1", "venue1", 1, 1),
	})

	svc.StartPeriodicJob(10 * time.Millisecond)

	deadline := time.After(time.Second)
	for len(svc.Snapshot()) == 0 {
		select {
		case <-deadline:
			t.Fatal("Periodic job never refreshed the snapshot")
		case <-time.After(5 * time.Millisecond):
		}
	}

	svc.Stop()
	svc.Stop() // second Stop must be a no-op
}
