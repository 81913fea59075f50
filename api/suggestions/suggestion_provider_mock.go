package suggestions

import (
	"context"
	"sync"
	"time"

	"vs-server/models"
)

// SuggestionProviderMock embeds mocked logic for a suggestion provider.
// Delay and Err make slow and failing providers reproducible in tests.
type SuggestionProviderMock struct {
	ProviderName string
	Candidates   []models.RawCandidate
	Err          error
	Delay        time.Duration

	mu    sync.Mutex
	calls int
}

// NewSuggestionProviderMock creates a new instance of SuggestionProviderMock
func NewSuggestionProviderMock(name string, candidates []models.RawCandidate) *SuggestionProviderMock {
	return &SuggestionProviderMock{
		ProviderName: name,
		Candidates:   candidates,
	}
}

func (p *SuggestionProviderMock) Name() string {
	return p.ProviderName
}

// Calls reports how many times FetchCandidates has been invoked.
func (p *SuggestionProviderMock) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *SuggestionProviderMock) FetchCandidates(ctx context.Context, userID string) ([]models.RawCandidate, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if p.Err != nil {
		return nil, p.Err
	}

	out := make([]models.RawCandidate, len(p.Candidates))
	copy(out, p.Candidates)
	return out, nil
}
