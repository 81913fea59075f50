package content

import (
	"sync"

	"vs-server/models"
)

// ContentApiClientMock embeds mocked logic for the content api client
type ContentApiClientMock struct {
	mu    sync.RWMutex
	items []models.ContentItem
}

// NewContentApiClientMock creates a new instance of ContentApiClientMock
func NewContentApiClientMock() *ContentApiClientMock {
	return &ContentApiClientMock{}
}

// SetRecentContent replaces the canned content list.
func (c *ContentApiClientMock) SetRecentContent(items []models.ContentItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

func (c *ContentApiClientMock) GetRecentContent() ([]models.ContentItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.ContentItem, len(c.items))
	copy(out, c.items)
	return out, nil
}
