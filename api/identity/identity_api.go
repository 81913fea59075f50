package identity

// TopTierBadges are the loyalty tiers that grant the 2.0 vote-weight
// multiplier and the feed vibe boost.
var TopTierBadges = map[string]bool{
	"WHALE":    true,
	"PLATINUM": true,
}

// IdentityAPI defines the interface for the identity/session provider.
type IdentityAPI interface {
	// IsVIP reports whether the user holds a top-tier badge at the venue.
	IsVIP(userID, venueID string) (bool, error)
	// GetFollowing returns the user ids (performers included) the user follows.
	GetFollowing(userID string) ([]string, error)
}
