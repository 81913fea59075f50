package location

import (
	"vs-server/api"
	"vs-server/models"
)

// VisibleFriendsResponse is the location provider's payload.
type VisibleFriendsResponse struct {
	Friends []models.FriendPresence `json:"friends"`
}

// LocationApiClient embeds the common HTTPClient
type LocationApiClient struct {
	*api.HTTPClient
}

// NewLocationApiClient creates a new instance of LocationApiClient
func NewLocationApiClient(httpClient *api.HTTPClient) *LocationApiClient {
	return &LocationApiClient{
		HTTPClient: httpClient,
	}
}

// GetVisibleFriends retrieves the current visible-friends list.
func (c *LocationApiClient) GetVisibleFriends() ([]models.FriendPresence, error) {
	var response VisibleFriendsResponse
	err := c.Request("GET", "/friends/visible", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response.Friends, nil
}
