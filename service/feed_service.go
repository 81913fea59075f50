package services

import (
	"log"
	"math"
	"sort"
	"time"

	"vs-server/api/identity"
	"vs-server/config"
	"vs-server/models"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// FeedService scores and orders content items. NEARBY mode scores every item
// on recency, venue vibe and a VIP/hot-venue boost; FOLLOWING mode filters to
// followed performers and friend-heavy venues. Both modes are pure functions
// of current state, recomputed on every request.
type FeedService struct {
	vibeService *VibeService
	identityAPI identity.IdentityAPI
	presence    *PresenceRefresherService
}

// NewFeedService constructs a new FeedService with its dependencies.
func NewFeedService(
	vibeService *VibeService,
	identityAPI identity.IdentityAPI,
	presence *PresenceRefresherService) *FeedService {

	return &FeedService{
		vibeService: vibeService,
		identityAPI: identityAPI,
		presence:    presence,
	}
}

// RankNearby scores every item and returns them sorted by score descending.
// Equal scores keep their input order.
func (fs *FeedService) RankNearby(items []models.ContentItem, viewerID string) []models.ScoredContentItem {
	now := nowUTC()

	// Vibe and badge lookups are cached per venue for the duration of the
	// request; a feed page usually repeats venues.
	vibeByVenue := make(map[string]*models.VenueVibeState)
	vipByVenue := make(map[string]bool)

	venueVibe := func(venueID string) *models.VenueVibeState {
		if state, ok := vibeByVenue[venueID]; ok {
			return state
		}
		state, err := fs.vibeService.GetVibe(venueID)
		if err != nil {
			log.Printf("[FeedService] Vibe lookup failed for venue %s: %v", venueID, err)
			state = nil
		}
		vibeByVenue[venueID] = state
		return state
	}

	viewerVIP := func(venueID string) bool {
		if vip, ok := vipByVenue[venueID]; ok {
			return vip
		}
		vip, err := fs.identityAPI.IsVIP(viewerID, venueID)
		if err != nil {
			log.Printf("[FeedService] Badge lookup failed for venue %s: %v", venueID, err)
			vip = false
		}
		vipByVenue[venueID] = vip
		return vip
	}

	ranked := make([]models.ScoredContentItem, 0, len(items))
	for _, item := range items {
		ageHours := now.Sub(item.Timestamp).Hours()
		recency := 100.0
		if ageHours >= config.FEED_RECENCY_FULL_SCORE_HOURS {
			recency = math.Max(0, 100-ageHours*5)
		}

		state := venueVibe(item.VenueID)

		// Unknown or stale vibe defaults to a neutral 50
		vibeLevel := float64(config.FEED_DEFAULT_VIBE_LEVEL)
		if state != nil {
			avg := (state.MusicScore + state.DensityScore) / 2
			vibeLevel = math.Round(avg / float64(config.VIBE_SCORE_MAX) * 100)
		}

		boost := 0.0
		if state != nil && (state.MusicScore+state.DensityScore)/2 >= 4 {
			boost = config.FEED_VIBE_BOOST
		} else if viewerVIP(item.VenueID) {
			boost = config.FEED_VIBE_BOOST
		}

		score := recency*config.FEED_RECENCY_WEIGHT + vibeLevel*config.FEED_VIBE_WEIGHT + boost
		ranked = append(ranked, models.ScoredContentItem{Item: item, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// RankFollowing filters items to followed performers and venues where enough
// visible friends are present, then orders friend-presence items first and
// newer items before older ones within each bucket.
func (fs *FeedService) RankFollowing(items []models.ContentItem, viewerID string) []models.ContentItem {
	followed := make(map[string]bool)
	following, err := fs.identityAPI.GetFollowing(viewerID)
	if err != nil {
		// A dead identity provider degrades to friend-presence items only
		log.Printf("[FeedService] Following lookup failed for %s: %v", viewerID, err)
	}
	for _, id := range following {
		followed[id] = true
	}

	friendCounts := countFriendsByVenue(fs.presence.Snapshot())

	hasPresence := func(venueID string) bool {
		return friendCounts[venueID] >= config.FEED_FRIEND_PRESENCE_MIN
	}

	var included []models.ContentItem
	for _, item := range items {
		if (item.PerformerID != "" && followed[item.PerformerID]) || hasPresence(item.VenueID) {
			included = append(included, item)
		}
	}

	// Friend-presence items always outrank non-friend items, whatever their
	// timestamps; within a bucket, newer wins.
	sort.SliceStable(included, func(i, j int) bool {
		pi, pj := hasPresence(included[i].VenueID), hasPresence(included[j].VenueID)
		if pi != pj {
			return pi
		}
		return included[i].Timestamp.After(included[j].Timestamp)
	})
	return included
}

// FollowingPriority reports the priority bucket value for one item, exposed
// in feed responses for clients that interleave local content.
func (fs *FeedService) FollowingPriority(item models.ContentItem) int64 {
	friendCounts := countFriendsByVenue(fs.presence.Snapshot())
	priority := item.Timestamp.UnixMilli()
	if friendCounts[item.VenueID] >= config.FEED_FRIEND_PRESENCE_MIN {
		priority += config.FEED_FRIEND_PRESENCE_PRIORITY_BASE
	}
	return priority
}

func countFriendsByVenue(snapshot []models.FriendPresence) map[string]int {
	counts := make(map[string]int)
	for _, f := range snapshot {
		if f.VenueID != "" && f.IsActive {
			counts[f.VenueID]++
		}
	}
	return counts
}
