package models

import "time"

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FriendPresence is one visible friend's live position, supplied by the
// external location provider. Privacy filtering happens upstream; the engine
// never applies its own visibility rules.
type FriendPresence struct {
	UserID      string    `json:"user_id"`
	VenueID     string    `json:"venue_id,omitempty"`
	Location    GeoPoint  `json:"location"`
	LastUpdated time.Time `json:"last_updated"`
	IsActive    bool      `json:"is_active"`
}

// FriendCluster is the largest set of visible friends co-located at one venue.
type FriendCluster struct {
	VenueID  string           `json:"venue_id"`
	Centroid GeoPoint         `json:"centroid"`
	Members  []FriendPresence `json:"members"`
}
