package identity

import (
	"vs-server/api"
)

// BadgeResponse is the identity provider's badge lookup payload.
type BadgeResponse struct {
	UserID  string `json:"user_id"`
	VenueID string `json:"venue_id"`
	Tier    string `json:"tier"`
}

// FollowingResponse is the identity provider's following list payload.
type FollowingResponse struct {
	UserID    string   `json:"user_id"`
	Following []string `json:"following"`
}

// IdentityApiClient embeds the common HTTPClient
type IdentityApiClient struct {
	*api.HTTPClient
}

// NewIdentityApiClient creates a new instance of IdentityApiClient
func NewIdentityApiClient(httpClient *api.HTTPClient) *IdentityApiClient {
	return &IdentityApiClient{
		HTTPClient: httpClient,
	}
}

// IsVIP looks up the user's badge tier at the venue and reports whether it is
// one of the top tiers.
func (c *IdentityApiClient) IsVIP(userID, venueID string) (bool, error) {
	var response BadgeResponse
	err := c.Request("GET", "/users/"+userID+"/badges/"+venueID, nil, nil, &response)
	if err != nil {
		return false, err
	}
	return TopTierBadges[response.Tier], nil
}

// GetFollowing retrieves the ids the user follows.
func (c *IdentityApiClient) GetFollowing(userID string) ([]string, error) {
	var response FollowingResponse
	err := c.Request("GET", "/users/"+userID+"/following", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response.Following, nil
}
