package location

import (
	"sync"

	"vs-server/models"
)

// LocationApiClientMock embeds mocked logic for the location api client
type LocationApiClientMock struct {
	mu      sync.RWMutex
	friends []models.FriendPresence
	err     error
}

// NewLocationApiClientMock creates a new instance of LocationApiClientMock
func NewLocationApiClientMock() *LocationApiClientMock {
	return &LocationApiClientMock{}
}

// SetVisibleFriends replaces the canned friend list.
func (c *LocationApiClientMock) SetVisibleFriends(friends []models.FriendPresence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.friends = friends
}

// SetErr makes subsequent calls fail, for exercising degraded paths.
func (c *LocationApiClientMock) SetErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *LocationApiClientMock) GetVisibleFriends() ([]models.FriendPresence, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.err != nil {
		return nil, c.err
	}
	out := make([]models.FriendPresence, len(c.friends))
	copy(out, c.friends)
	return out, nil
}
