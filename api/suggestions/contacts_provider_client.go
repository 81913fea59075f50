package suggestions

import (
	"context"

	"vs-server/api"
	"vs-server/models"
)

// CandidatesResponse is the shared provider payload shape.
type CandidatesResponse struct {
	Candidates []models.RawCandidate `json:"candidates"`
}

// ContactsProviderClient surfaces people found in the user's synced contacts.
type ContactsProviderClient struct {
	*api.HTTPClient
}

// NewContactsProviderClient creates a new instance of ContactsProviderClient
func NewContactsProviderClient(httpClient *api.HTTPClient) *ContactsProviderClient {
	return &ContactsProviderClient{
		HTTPClient: httpClient,
	}
}

func (c *ContactsProviderClient) Name() string {
	return "contacts"
}

// FetchCandidates retrieves contact matches for the user. The source type is
// forced to CONTACT regardless of what the upstream reports.
func (c *ContactsProviderClient) FetchCandidates(ctx context.Context, userID string) ([]models.RawCandidate, error) {
	var response CandidatesResponse
	err := c.RequestWithContext(ctx, "GET", "/contacts/"+userID+"/matches", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	for i := range response.Candidates {
		response.Candidates[i].Source = models.SourceContact
	}
	return response.Candidates, nil
}
