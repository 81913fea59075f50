package models

import "time"

// VenueVibeState is the running aggregate of all accepted vibe checks for a
// venue. MusicScore and DensityScore are weighted averages, not simple means.
// TotalWeight only grows as votes accumulate; staleness is enforced on the
// read path and never resets the aggregate.
type VenueVibeState struct {
	VenueID      string      `json:"venue_id"`
	MusicScore   float64     `json:"music_score"`
	DensityScore float64     `json:"density_score"`
	TotalWeight  float64     `json:"total_weight"`
	EnergyLevel  EnergyLevel `json:"energy_level"`
	WaitTime     WaitTime    `json:"wait_time"`
	LastUpdated  time.Time   `json:"last_updated"`
}

// Cooldown records the last accepted vote for a (user, venue) pair.
type Cooldown struct {
	UserID            string    `json:"user_id"`
	VenueID           string    `json:"venue_id"`
	LastVoteTimestamp time.Time `json:"last_vote_timestamp"`
}

// CooldownStatus is the API response for a cooldown check.
type CooldownStatus struct {
	CanVote     bool  `json:"can_vote"`
	RemainingMs int64 `json:"remaining_ms"`
}
