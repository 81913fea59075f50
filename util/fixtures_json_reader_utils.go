package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"vs-server/models"
)

// ReadContentItemsFromJSON loads a slice of ContentItems from JSON on disk.
func ReadContentItemsFromJSON(filePath string) ([]models.ContentItem, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var items []models.ContentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ContentItems: %w", err)
	}
	return items, nil
}

// ReadFriendPresenceFromJSON loads a slice of FriendPresence records from JSON on disk.
func ReadFriendPresenceFromJSON(filePath string) ([]models.FriendPresence, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var friends []models.FriendPresence
	if err := json.Unmarshal(data, &friends); err != nil {
		return nil, fmt.Errorf("failed to unmarshal FriendPresence: %w", err)
	}
	return friends, nil
}

// ReadRawCandidatesFromJSON loads a slice of RawCandidates from JSON on disk.
func ReadRawCandidatesFromJSON(filePath string) ([]models.RawCandidate, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var candidates []models.RawCandidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RawCandidates: %w", err)
	}
	return candidates, nil
}

// PrintFeedPartially prints key fields of a ranked feed page.
func PrintFeedPartially(items []models.ScoredContentItem) {
	fmt.Printf("Feed items: %d\n", len(items))
	if len(items) > 0 {
		top := items[0]
		fmt.Printf("Top item: %s at venue %s (score %.1f)\n", top.Item.ID, top.Item.VenueID, top.Score)
	}
}
