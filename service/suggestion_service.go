package services

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"vs-server/api/suggestions"
	"vs-server/config"
	"vs-server/models"
)

type suggestionCacheEntry struct {
	people   []models.SuggestedPerson
	cachedAt time.Time
}

// SuggestionService fans out to the candidate providers, merges and
// deduplicates what they return, and caches the ranked result per viewer.
// A provider that fails or misses the deadline contributes an empty list;
// partial failure never aborts the pipeline.
type SuggestionService struct {
	providers      []suggestions.SuggestionProvider
	cacheTTL       time.Duration
	maxSuggestions int
	cachingEnabled bool

	mu    sync.Mutex
	cache map[string]suggestionCacheEntry
}

// NewSuggestionService constructs a new SuggestionService over the given
// providers.
func NewSuggestionService(
	providers []suggestions.SuggestionProvider,
	cacheTTL time.Duration,
	maxSuggestions int,
	cachingEnabled bool) *SuggestionService {

	return &SuggestionService{
		providers:      providers,
		cacheTTL:       cacheTTL,
		maxSuggestions: maxSuggestions,
		cachingEnabled: cachingEnabled,
		cache:          make(map[string]suggestionCacheEntry),
	}
}

// basePriority assigns the fixed source weight; mutual suggestions scale with
// how many friends are shared.
func basePriority(c models.RawCandidate) float64 {
	switch c.Source {
	case models.SourceContact:
		return 100
	case models.SourceSocial:
		return 80
	case models.SourceMutual:
		return 60 + 2*float64(c.MutualCount)
	case models.SourceVenue:
		return 40
	case models.SourceAlgorithmic:
		return 20
	default:
		return 0
	}
}

// GetSuggestions returns the merged, prioritized suggestion list for the
// viewer. A cache entry younger than the TTL is returned as-is without any
// provider calls. MutualCandidates come from the caller's own friend graph
// and join the fan-out results before merging.
func (ss *SuggestionService) GetSuggestions(
	ctx context.Context,
	userID string,
	excludedIDs []string,
	mutualCandidates []models.RawCandidate) []models.SuggestedPerson {

	if ss.cachingEnabled {
		ss.mu.Lock()
		entry, ok := ss.cache[userID]
		ss.mu.Unlock()
		if ok && time.Since(entry.cachedAt) < ss.cacheTTL {
			return copySuggestions(entry.people)
		}
	}

	raw := ss.fanOut(ctx, userID)

	for _, c := range mutualCandidates {
		if c.Source == "" {
			c.Source = models.SourceMutual
		}
		raw = append(raw, c)
	}

	people := mergeCandidates(raw, excludedIDs, ss.maxSuggestions)

	if ss.cachingEnabled {
		ss.mu.Lock()
		ss.cache[userID] = suggestionCacheEntry{people: people, cachedAt: time.Now()}
		ss.mu.Unlock()
	}

	return copySuggestions(people)
}

// fanOut calls every provider in parallel and joins the results. Each call is
// bounded by the caller's deadline, with a default applied when none is set.
func (ss *SuggestionService) fanOut(ctx context.Context, userID string) []models.RawCandidate {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.SUGGESTIONS_PROVIDER_TIMEOUT)
		defer cancel()
	}

	results := make([][]models.RawCandidate, len(ss.providers))
	var wg sync.WaitGroup

	for i, provider := range ss.providers {
		wg.Add(1)
		go func(i int, provider suggestions.SuggestionProvider) {
			defer wg.Done()
			candidates, err := provider.FetchCandidates(ctx, userID)
			if err != nil {
				// Degrade to an empty list; the other providers still count
				log.Printf("[SuggestionService] Provider %s failed: %v", provider.Name(), err)
				return
			}
			results[i] = candidates
		}(i, provider)
	}
	wg.Wait()

	var merged []models.RawCandidate
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// mergeCandidates deduplicates by id keeping the highest priority, drops
// excluded ids, sorts by priority descending and truncates. Priority ties
// break on id to keep the output deterministic across runs.
func mergeCandidates(raw []models.RawCandidate, excludedIDs []string, max int) []models.SuggestedPerson {
	excluded := make(map[string]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = true
	}

	best := make(map[string]models.SuggestedPerson)
	for _, c := range raw {
		if c.ID == "" || excluded[c.ID] {
			continue
		}
		p := models.SuggestedPerson{ID: c.ID, Source: c.Source, Priority: basePriority(c)}
		if existing, ok := best[c.ID]; !ok || p.Priority > existing.Priority {
			best[c.ID] = p
		}
	}

	people := make([]models.SuggestedPerson, 0, len(best))
	for _, p := range best {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool {
		if people[i].Priority != people[j].Priority {
			return people[i].Priority > people[j].Priority
		}
		return people[i].ID < people[j].ID
	})

	if len(people) > max {
		people = people[:max]
	}
	return people
}

// InvalidateCache drops the viewer's cached suggestions, forcing a fresh
// fan-out on the next call. Called right after the viewer follows someone.
func (ss *SuggestionService) InvalidateCache(userID string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.cache, userID)
}

// InvalidateAllCaches drops every viewer's cached suggestions.
func (ss *SuggestionService) InvalidateAllCaches() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.cache = make(map[string]suggestionCacheEntry)
}

func copySuggestions(in []models.SuggestedPerson) []models.SuggestedPerson {
	out := make([]models.SuggestedPerson, len(in))
	copy(out, in)
	return out
}
