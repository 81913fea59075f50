package models

// SourceType identifies which provider surfaced a suggestion candidate.
type SourceType string

const (
	SourceContact     SourceType = "CONTACT"
	SourceSocial      SourceType = "SOCIAL"
	SourceMutual      SourceType = "MUTUAL"
	SourceVenue       SourceType = "VENUE"
	SourceAlgorithmic SourceType = "ALGORITHMIC"
)

// RawCandidate is a person surfaced by one suggestion provider, before
// priority assignment and deduplication.
type RawCandidate struct {
	ID          string     `json:"id"`
	Source      SourceType `json:"source"`
	MutualCount int        `json:"mutual_count,omitempty"`
}

// SuggestedPerson is a merged, prioritized friend suggestion.
type SuggestedPerson struct {
	ID       string     `json:"id"`
	Source   SourceType `json:"source"`
	Priority float64    `json:"priority"`
}
