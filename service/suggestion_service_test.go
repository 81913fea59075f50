package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vs-server/api/suggestions"
	"vs-server/models"
)

func candidate(id string, source models.SourceType) models.RawCandidate {
	return models.RawCandidate{ID: id, Source: source}
}

func TestGetSuggestions_PriorityOrdering(t *testing.T) {
	contacts := suggestions.NewSuggestionProviderMock("contacts", []models.RawCandidate{
		candidate("alice", models.SourceContact),
	})
	social := suggestions.NewSuggestionProviderMock("social", []models.RawCandidate{
		candidate("bob", models.SourceSocial),
		candidate("carol", models.SourceVenue),
		candidate("dave", models.SourceAlgorithmic),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{contacts, social},
		time.Minute, 20, true)

	people := svc.GetSuggestions(context.Background(), "viewer", nil, nil)
	if len(people) != 4 {
		t.Fatalf("Expected 4 suggestions, got %d", len(people))
	}

	assert.Equal(t, "alice", people[0].ID)
	assert.Equal(t, 100.0, people[0].Priority)
	assert.Equal(t, "bob", people[1].ID)
	assert.Equal(t, 80.0, people[1].Priority)
	assert.Equal(t, "carol", people[2].ID)
	assert.Equal(t, 40.0, people[2].Priority)
	assert.Equal(t, "dave", people[3].ID)
	assert.Equal(t, 20.0, people[3].Priority)
}

func TestGetSuggestions_MutualPriorityScalesWithSharedFriends(t *testing.T) {
	svc := NewSuggestionService(nil, time.Minute, 20, true)

	mutuals := []models.RawCandidate{
		{ID: "eve", Source: models.SourceMutual, MutualCount: 5},
		// Source left blank defaults to mutual
		{ID: "frank", MutualCount: 12},
	}

	people := svc.GetSuggestions(context.Background(), "viewer", nil, mutuals)
	if len(people) != 2 {
		t.Fatalf("Expected 2 suggestions, got %d", len(people))
	}

	// 60 + 2*12 = 84 beats 60 + 2*5 = 70
	assert.Equal(t, "frank", people[0].ID)
	assert.Equal(t, 84.0, people[0].Priority)
	assert.Equal(t, "eve", people[1].ID)
	assert.Equal(t, 70.0, people[1].Priority)
}

func TestGetSuggestions_DedupeKeepsHighestPriority(t *testing.T) {
	venue := suggestions.NewSuggestionProviderMock("venue", []models.RawCandidate{
		candidate("grace", models.SourceVenue),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{venue},
		time.Minute, 20, true)

	mutuals := []models.RawCandidate{
		{ID: "grace", Source: models.SourceMutual, MutualCount: 2},
	}

	people := svc.GetSuggestions(context.Background(), "viewer", nil, mutuals)
	if len(people) != 1 {
		t.Fatalf("Expected 1 suggestion after dedupe, got %d", len(people))
	}

	// Mutual at 64 wins over venue at 40
	assert.Equal(t, models.SourceMutual, people[0].Source)
	assert.Equal(t, 64.0, people[0].Priority)
}

func TestGetSuggestions_ExcludesKnownUsers(t *testing.T) {
	contacts := suggestions.NewSuggestionProviderMock("contacts", []models.RawCandidate{
		candidate("alice", models.SourceContact),
		candidate("bob", models.SourceContact),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{contacts},
		time.Minute, 20, true)

	people := svc.GetSuggestions(context.Background(), "viewer", []string{"alice"}, nil)
	if len(people) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(people))
	}
	assert.Equal(t, "bob", people[0].ID)
}

func TestGetSuggestions_FailingProviderDegradesGracefully(t *testing.T) {
	broken := suggestions.NewSuggestionProviderMock("broken", nil)
	broken.Err = errors.New("upstream unavailable")
	healthy := suggestions.NewSuggestionProviderMock("healthy", []models.RawCandidate{
		candidate("alice", models.SourceSocial),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{broken, healthy},
		time.Minute, 20, true)

	people := svc.GetSuggestions(context.Background(), "viewer", nil, nil)
	if len(people) != 1 {
		t.Fatalf("Expected the healthy provider's result, got %d suggestions", len(people))
	}
	assert.Equal(t, "alice", people[0].ID)
}

func TestGetSuggestions_SlowProviderMissesDeadline(t *testing.T) {
	slow := suggestions.NewSuggestionProviderMock("slow", []models.RawCandidate{
		candidate("late", models.SourceContact),
	})
	slow.Delay = time.Second
	fast := suggestions.NewSuggestionProviderMock("fast", []models.RawCandidate{
		candidate("alice", models.SourceSocial),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{slow, fast},
		time.Minute, 20, true)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	people := svc.GetSuggestions(ctx, "viewer", nil, nil)
	if len(people) != 1 {
		t.Fatalf("Expected only the fast provider's result, got %d suggestions", len(people))
	}
	assert.Equal(t, "alice", people[0].ID)
}

func TestGetSuggestions_CacheAvoidsRepeatFanOut(t *testing.T) {
	contacts := suggestions.NewSuggestionProviderMock("contacts", []models.RawCandidate{
		candidate("alice", models.SourceContact),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{contacts},
		time.Minute, 20, true)

	first := svc.GetSuggestions(context.Background(), "viewer", nil, nil)
	second := svc.GetSuggestions(context.Background(), "viewer", nil, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, contacts.Calls())
}

func TestGetSuggestions_CacheIsPerViewer(t *testing.T) {
	contacts := suggestions.NewSuggestionProviderMock("contacts", []models.RawCandidate{
		candidate("alice", models.SourceContact),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{contacts},
		time.Minute, 20, true)

	svc.GetSuggestions(context.Background(), "viewer1", nil, nil)
	svc.GetSuggestions(context.Background(), "viewer2", nil, nil)

	assert.Equal(t, 2, contacts.Calls())
}

func TestInvalidateCache_ForcesRefetch(t *testing.T) {
	contacts := suggestions.NewSuggestionProviderMock("contacts", []models.RawCandidate{
		candidate("alice", models.SourceContact),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{contacts},
		time.Minute, 20, true)

	svc.GetSuggestions(context.Background(), "viewer", nil, nil)
	svc.InvalidateCache("viewer")
	svc.GetSuggestions(context.Background(), "viewer", nil, nil)

	assert.Equal(t, 2, contacts.Calls())
}

func TestGetSuggestions_CachingDisabled(t *testing.T) {
	contacts := suggestions.NewSuggestionProviderMock("contacts", []models.RawCandidate{
		candidate("alice", models.SourceContact),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{contacts},
		time.Minute, 20, false)

	svc.GetSuggestions(context.Background(), "viewer", nil, nil)
	svc.GetSuggestions(context.Background(), "viewer", nil, nil)

	assert.Equal(t, 2, contacts.Calls())
}

func TestGetSuggestions_TruncatesToMax(t *testing.T) {
	social := suggestions.NewSuggestionProviderMock("social", []models.RawCandidate{
		candidate("a", models.SourceSocial),
		candidate("b", models.SourceSocial),
		candidate("c", models.SourceSocial),
		candidate("d", models.SourceSocial),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{social},
		time.Minute, 2, true)

	people := svc.GetSuggestions(context.Background(), "viewer", nil, nil)
	if len(people) != 2 {
		t.Fatalf("Expected truncation to 2, got %d", len(people))
	}
	// Equal priorities break ties on id
	assert.Equal(t, "a", people[0].ID)
	assert.Equal(t, "b", people[1].ID)
}

func TestGetSuggestions_ReturnedSliceIsACopy(t *testing.T) {
	contacts := suggestions.NewSuggestionProviderMock("contacts", []models.RawCandidate{
		candidate("alice", models.SourceContact),
	})

	svc := NewSuggestionService(
		[]suggestions.SuggestionProvider{contacts},
		time.Minute, 20, true)

	first := svc.GetSuggestions(context.Background(), "viewer", nil, nil)
	first[0].ID = "mutated"

	second := svc.GetSuggestions(context.Background(), "viewer", nil, nil)
	assert.Equal(t, "alice", second[0].ID)
}
