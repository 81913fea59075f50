package suggestions

import (
	"context"

	"vs-server/api"
	"vs-server/models"
)

// SocialProviderClient surfaces people the user follows on linked social
// networks who are also on the platform.
type SocialProviderClient struct {
	*api.HTTPClient
}

// NewSocialProviderClient creates a new instance of SocialProviderClient
func NewSocialProviderClient(httpClient *api.HTTPClient) *SocialProviderClient {
	return &SocialProviderClient{
		HTTPClient: httpClient,
	}
}

func (c *SocialProviderClient) Name() string {
	return "social"
}

// FetchCandidates retrieves follow candidates from the social graph. The
// source type is forced to SOCIAL regardless of what the upstream reports.
func (c *SocialProviderClient) FetchCandidates(ctx context.Context, userID string) ([]models.RawCandidate, error) {
	var response CandidatesResponse
	err := c.RequestWithContext(ctx, "GET", "/graph/"+userID+"/follow-candidates", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	for i := range response.Candidates {
		response.Candidates[i].Source = models.SourceSocial
	}
	return response.Candidates, nil
}
