package models

import "time"

// FeedMode selects which of the two mutually exclusive ranking modes applies.
type FeedMode string

const (
	FeedModeNearby    FeedMode = "nearby"
	FeedModeFollowing FeedMode = "following"
)

// ContentItem is a venue/performer post owned by the external content store.
// The engine only reads and ranks it.
type ContentItem struct {
	ID          string    `json:"id"`
	VenueID     string    `json:"venue_id"`
	PerformerID string    `json:"performer_id,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ScoredContentItem pairs a ContentItem with its NEARBY-mode score.
type ScoredContentItem struct {
	Item  ContentItem `json:"item"`
	Score float64     `json:"score"`
}
