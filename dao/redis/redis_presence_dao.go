package redis

import (
	"encoding/json"
	"fmt"
	"log"

	"vs-server/db"
	"vs-server/models"
)

const FRIENDS_GEO_KEY_V1 = "friends_geo_v1"
const FRIENDS_GEO_MEMBER_FORMAT_V1 = "friends_geo_member_v1:%s"

// RedisPresenceDAO mirrors the latest visible-friends snapshot into the geo
// index so radius lookups can be served without hitting the location provider.
type RedisPresenceDAO struct {
	client db.RedisClient
}

// NewRedisPresenceDAO initializes a RedisPresenceDAO with the Redis client.
func NewRedisPresenceDAO(client db.RedisClient) *RedisPresenceDAO {
	return &RedisPresenceDAO{client: client}
}

// UpsertFriendPresence stores a friend's position as a geolocation member with
// the presence record as its JSON payload.
func (dao *RedisPresenceDAO) UpsertFriendPresence(p models.FriendPresence) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(FRIENDS_GEO_MEMBER_FORMAT_V1, p.UserID)
	return dao.client.AddLocationWithJSON(ctx, FRIENDS_GEO_KEY_V1, memberKey, p.Location.Lat, p.Location.Lon, p)
}

// GetNearbyFriends retrieves visible friends within a given radius (km).
func (dao *RedisPresenceDAO) GetNearbyFriends(lat, lon, radius float64) ([]models.FriendPresence, error) {
	friendsJSON, err := dao.client.GetLocationsWithinRadius(FRIENDS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisPresenceDAO] failed to get friends: %w", err)
	}

	friends := make([]models.FriendPresence, len(friendsJSON))
	for i, fj := range friendsJSON {
		if err := json.Unmarshal([]byte(fj), &friends[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal friend presence JSON: %w", err)
		}
	}
	return friends, nil
}

// DeleteFriendPresence drops a friend's payload, used when a friend goes
// invisible between refresh ticks.
func (dao *RedisPresenceDAO) DeleteFriendPresence(userID string) error {
	key := fmt.Sprintf(FRIENDS_GEO_MEMBER_FORMAT_V1, userID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete friend presence key %s: %w", key, err)
	}
	log.Printf("[RedisPresenceDAO] Deleted presence for %s", userID)
	return nil
}
