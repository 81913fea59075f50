package content

import (
	"vs-server/api"
	"vs-server/models"
)

// RecentContentResponse is the content store's payload.
type RecentContentResponse struct {
	Items []models.ContentItem `json:"items"`
}

// ContentApiClient embeds the common HTTPClient
type ContentApiClient struct {
	*api.HTTPClient
}

// NewContentApiClient creates a new instance of ContentApiClient
func NewContentApiClient(httpClient *api.HTTPClient) *ContentApiClient {
	return &ContentApiClient{
		HTTPClient: httpClient,
	}
}

// GetRecentContent retrieves the recent content items to be ranked.
func (c *ContentApiClient) GetRecentContent() ([]models.ContentItem, error) {
	var response RecentContentResponse
	err := c.Request("GET", "/content/recent", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response.Items, nil
}
