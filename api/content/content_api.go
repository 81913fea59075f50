package content

import "vs-server/models"

// ContentAPI defines the interface for the external content store. The engine
// only reads items to rank them; it never fetches media or paginates.
type ContentAPI interface {
	GetRecentContent() ([]models.ContentItem, error)
}
