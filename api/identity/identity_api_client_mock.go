package identity

import "sync"

// IdentityApiClientMock embeds mocked logic for the identity api client
type IdentityApiClientMock struct {
	mu        sync.RWMutex
	badges    map[string]map[string]string // userID -> venueID -> tier
	following map[string][]string
}

// NewIdentityApiClientMock creates a new instance of IdentityApiClientMock
func NewIdentityApiClientMock() *IdentityApiClientMock {
	return &IdentityApiClientMock{
		badges:    make(map[string]map[string]string),
		following: make(map[string][]string),
	}
}

// SetBadge registers a badge tier for a (user, venue) pair.
func (c *IdentityApiClientMock) SetBadge(userID, venueID, tier string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.badges[userID]; !ok {
		c.badges[userID] = make(map[string]string)
	}
	c.badges[userID][venueID] = tier
}

// SetFollowing registers the following list for a user.
func (c *IdentityApiClientMock) SetFollowing(userID string, ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.following[userID] = ids
}

func (c *IdentityApiClientMock) IsVIP(userID, venueID string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	venues, ok := c.badges[userID]
	if !ok {
		return false, nil
	}
	return TopTierBadges[venues[venueID]], nil
}

func (c *IdentityApiClientMock) GetFollowing(userID string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.following[userID], nil
}
