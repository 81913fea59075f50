package suggestions

import (
	"context"

	"vs-server/models"
)

// SuggestionProvider is one independently callable candidate source. Provider
// calls run in parallel during the merge fan-out and must respect the caller's
// context deadline; a failing provider degrades to an empty list upstream.
type SuggestionProvider interface {
	Name() string
	FetchCandidates(ctx context.Context, userID string) ([]models.RawCandidate, error)
}
