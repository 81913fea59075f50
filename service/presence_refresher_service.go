package services

import (
	"log"
	"sync"
	"time"

	"vs-server/api/location"
	redisdao "vs-server/dao/redis"
	"vs-server/models"
)

// PresenceRefresherService periodically pulls the visible-friends list from
// the location provider and swaps it into a shared snapshot. Readers always
// observe a whole pre-tick or post-tick snapshot, never a partially-updated
// one; the slice is replaced wholesale and must be treated as read-only.
type PresenceRefresherService struct {
	locationAPI location.LocationAPI
	presenceDao *redisdao.RedisPresenceDAO

	mu       sync.RWMutex
	snapshot []models.FriendPresence

	stopOnce sync.Once
	stop     chan struct{}
}

// NewPresenceRefresherService constructs a new refresher with dependencies.
func NewPresenceRefresherService(
	locationAPI location.LocationAPI,
	presenceDao *redisdao.RedisPresenceDAO,
) *PresenceRefresherService {
	return &PresenceRefresherService{
		locationAPI: locationAPI,
		presenceDao: presenceDao,
		stop:        make(chan struct{}),
	}
}

// Snapshot returns the current visible-friends snapshot. Callers must not
// mutate the returned slice.
func (pr *PresenceRefresherService) Snapshot() []models.FriendPresence {
	pr.mu.RLock()
	defer pr.mu.RUnlock()
	return pr.snapshot
}

// Refresh fetches a fresh visible-friends list and swaps it in. On provider
// failure the previous snapshot stays in place.
func (pr *PresenceRefresherService) Refresh() error {
	friends, err := pr.locationAPI.GetVisibleFriends()
	if err != nil {
		log.Printf("[PresenceRefresherService] Refresh failed, keeping previous snapshot: %v", err)
		return err
	}

	pr.mu.Lock()
	previous := pr.snapshot
	pr.snapshot = friends
	pr.mu.Unlock()

	pr.mirrorToGeoIndex(previous, friends)
	return nil
}

// mirrorToGeoIndex upserts the fresh positions into the geo index and drops
// friends that went invisible since the last tick. Index failures are logged
// and never fail the refresh; the in-memory snapshot is authoritative.
func (pr *PresenceRefresherService) mirrorToGeoIndex(previous, fresh []models.FriendPresence) {
	if pr.presenceDao == nil {
		return
	}

	current := make(map[string]bool, len(fresh))
	for _, f := range fresh {
		current[f.UserID] = true
		if err := pr.presenceDao.UpsertFriendPresence(f); err != nil {
			log.Printf("[PresenceRefresherService] Upsert failed for %s: %v", f.UserID, err)
		}
	}

	for _, f := range previous {
		if !current[f.UserID] {
			if err := pr.presenceDao.DeleteFriendPresence(f.UserID); err != nil {
				log.Printf("[PresenceRefresherService] Delete failed for %s: %v", f.UserID, err)
			}
		}
	}
}

// StartPeriodicJob launches the background refresh loop at the given
// interval. Stop cancels it deterministically.
func (pr *PresenceRefresherService) StartPeriodicJob(interval time.Duration) {
	go pr.startPeriodicJob(interval)
}

func (pr *PresenceRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := pr.Refresh(); err != nil {
				log.Printf("[PresenceRefresherService] Periodic refresh returned error: %v", err)
			}
		case <-pr.stop:
			log.Println("[PresenceRefresherService] Periodic refresh stopped.")
			return
		}
	}
}

// Stop halts the periodic refresh loop. Safe to call more than once.
func (pr *PresenceRefresherService) Stop() {
	pr.stopOnce.Do(func() {
		close(pr.stop)
	})
}
