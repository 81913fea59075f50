package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"vs-server/db"
	"vs-server/models"
)

const VIBE_STATE_KEY_FORMAT_V1 = "vibe_state_v1:%s"
const VIBE_COOLDOWN_KEY_FORMAT_V1 = "vibe_cooldown_v1:%s:%s"

// RedisVibeDAO persists venue vibe aggregates and per-(user, venue) cooldown
// records through the key-value contract.
type RedisVibeDAO struct {
	client db.RedisClient
}

// NewRedisVibeDAO initializes a RedisVibeDAO with the Redis client.
func NewRedisVibeDAO(client db.RedisClient) *RedisVibeDAO {
	return &RedisVibeDAO{client: client}
}

// GetVenueVibeState loads the aggregate for a venue. A venue that has never
// received a vote yields (nil, nil), not an error.
func (dao *RedisVibeDAO) GetVenueVibeState(venueID string) (*models.VenueVibeState, error) {
	key := fmt.Sprintf(VIBE_STATE_KEY_FORMAT_V1, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		if _, ok := err.(*db.KeyNotFoundError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vibe state from redis: %w", err)
	}
	var state models.VenueVibeState
	if err := json.Unmarshal([]byte(str), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vibe state JSON: %w", err)
	}
	return &state, nil
}

// SetVenueVibeState stores the aggregate for a venue.
func (dao *RedisVibeDAO) SetVenueVibeState(state *models.VenueVibeState) error {
	key := fmt.Sprintf(VIBE_STATE_KEY_FORMAT_V1, state.VenueID)
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal vibe state for venue %s: %w", state.VenueID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set vibe state in redis: %w", err)
	}
	return nil
}

// GetCooldown loads the cooldown record for a (user, venue) pair. A pair that
// has never voted yields (nil, nil).
func (dao *RedisVibeDAO) GetCooldown(userID, venueID string) (*models.Cooldown, error) {
	key := fmt.Sprintf(VIBE_COOLDOWN_KEY_FORMAT_V1, userID, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		if _, ok := err.(*db.KeyNotFoundError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cooldown from redis: %w", err)
	}
	var cd models.Cooldown
	if err := json.Unmarshal([]byte(str), &cd); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cooldown JSON: %w", err)
	}
	return &cd, nil
}

// SetCooldown overwrites the cooldown record for a (user, venue) pair.
func (dao *RedisVibeDAO) SetCooldown(cd *models.Cooldown) error {
	key := fmt.Sprintf(VIBE_COOLDOWN_KEY_FORMAT_V1, cd.UserID, cd.VenueID)
	data, err := json.Marshal(cd)
	if err != nil {
		return fmt.Errorf("failed to marshal cooldown for %s/%s: %w", cd.UserID, cd.VenueID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set cooldown in redis: %w", err)
	}
	return nil
}

// ListVenueIDsWithVibeState returns the venue IDs of every stored aggregate,
// stale ones included.
func (dao *RedisVibeDAO) ListVenueIDsWithVibeState() ([]string, error) {
	pattern := fmt.Sprintf(VIBE_STATE_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list vibe state keys: %w", err)
	}
	prefix := fmt.Sprintf(VIBE_STATE_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
