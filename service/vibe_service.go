package services

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"vs-server/api/identity"
	"vs-server/config"
	redisdao "vs-server/dao/redis"
	"vs-server/models"
)

// VibeService ingests per-venue vibe checks and maintains a decaying
// weighted-average aggregate per venue. Votes from top-tier badge holders
// count double. A user may vote for the same venue at most once per cooldown
// window.
type VibeService struct {
	vibeDao     *redisdao.RedisVibeDAO
	identityAPI identity.IdentityAPI

	mu        sync.Mutex
	pairLocks map[string]*sync.Mutex
}

// NewVibeService constructs a new VibeService with its dependencies.
func NewVibeService(
	vibeDao *redisdao.RedisVibeDAO,
	identityAPI identity.IdentityAPI) *VibeService {

	return &VibeService{
		vibeDao:     vibeDao,
		identityAPI: identityAPI,
		pairLocks:   make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing submissions for one (user, venue)
// pair, so two near-simultaneous votes cannot both pass the cooldown check.
func (vs *VibeService) lockFor(userID, venueID string) *sync.Mutex {
	key := userID + ":" + venueID
	vs.mu.Lock()
	defer vs.mu.Unlock()
	l, ok := vs.pairLocks[key]
	if !ok {
		l = &sync.Mutex{}
		vs.pairLocks[key] = l
	}
	return l
}

func validateVote(vote models.VibeVote) *models.ValidationError {
	if vote.MusicScore < config.VIBE_SCORE_MIN || vote.MusicScore > config.VIBE_SCORE_MAX {
		return &models.ValidationError{Field: "music_score", Reason: "must be between 1 and 5"}
	}
	if vote.DensityScore < config.VIBE_SCORE_MIN || vote.DensityScore > config.VIBE_SCORE_MAX {
		return &models.ValidationError{Field: "density_score", Reason: "must be between 1 and 5"}
	}
	if !models.ValidEnergyLevels[vote.EnergyLevel] {
		return &models.ValidationError{Field: "energy_level", Reason: fmt.Sprintf("unknown value %q", vote.EnergyLevel)}
	}
	if !models.ValidWaitTimes[vote.WaitTime] {
		return &models.ValidationError{Field: "wait_time", Reason: fmt.Sprintf("unknown value %q", vote.WaitTime)}
	}
	return nil
}

// SubmitVote validates and applies a vibe check. It returns the updated
// aggregate, a ValidationError for malformed votes, or a CooldownError when
// the user voted for this venue too recently. Nothing is mutated on rejection.
func (vs *VibeService) SubmitVote(vote models.VibeVote) (*models.VenueVibeState, error) {
	if verr := validateVote(vote); verr != nil {
		return nil, verr
	}

	lock := vs.lockFor(vote.UserID, vote.VenueID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()

	cd, err := vs.vibeDao.GetCooldown(vote.UserID, vote.VenueID)
	if err != nil {
		return nil, err
	}
	if cd != nil {
		elapsed := now.Sub(cd.LastVoteTimestamp)
		if elapsed < config.VIBE_COOLDOWN_WINDOW {
			return nil, &models.CooldownError{
				RemainingMs: (config.VIBE_COOLDOWN_WINDOW - elapsed).Milliseconds(),
			}
		}
	}

	weight := 1.0
	vip, err := vs.identityAPI.IsVIP(vote.UserID, vote.VenueID)
	if err != nil {
		log.Printf("[VibeService] Badge lookup failed for %s at %s, applying base weight: %v", vote.UserID, vote.VenueID, err)
	} else if vip {
		weight = 2.0
	}

	state, err := vs.vibeDao.GetVenueVibeState(vote.VenueID)
	if err != nil {
		return nil, err
	}

	if state == nil {
		// First vote for the venue seeds the aggregate.
		state = &models.VenueVibeState{
			VenueID:      vote.VenueID,
			MusicScore:   float64(vote.MusicScore),
			DensityScore: float64(vote.DensityScore),
			TotalWeight:  weight,
		}
	} else {
		// Running weighted average. A stale aggregate is built upon, never
		// reset: the old total weight keeps dampening the new vote.
		oldWeight := state.TotalWeight
		state.MusicScore = (state.MusicScore*oldWeight + float64(vote.MusicScore)*weight) / (oldWeight + weight)
		state.DensityScore = (state.DensityScore*oldWeight + float64(vote.DensityScore)*weight) / (oldWeight + weight)
		state.TotalWeight = oldWeight + weight
	}

	// Last write wins for the categorical fields
	state.EnergyLevel = vote.EnergyLevel
	state.WaitTime = vote.WaitTime
	state.LastUpdated = now

	if err := vs.vibeDao.SetVenueVibeState(state); err != nil {
		return nil, err
	}

	cooldown := &models.Cooldown{
		UserID:            vote.UserID,
		VenueID:           vote.VenueID,
		LastVoteTimestamp: now,
	}
	if err := vs.vibeDao.SetCooldown(cooldown); err != nil {
		return nil, err
	}

	log.Printf("[VibeService] Accepted vote %s for venue %s (weight=%.1f, total=%.1f)",
		vote.ID, vote.VenueID, weight, state.TotalWeight)
	return state, nil
}

// GetVibe returns the aggregate for a venue, or nil when the venue has no
// votes or the aggregate has gone stale. Staleness hides the data from reads
// only; the stored aggregate stays intact for future votes.
func (vs *VibeService) GetVibe(venueID string) (*models.VenueVibeState, error) {
	state, err := vs.vibeDao.GetVenueVibeState(venueID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, nil
	}
	if time.Now().UTC().Sub(state.LastUpdated) >= config.VIBE_DECAY_WINDOW {
		return nil, nil
	}
	return state, nil
}

// CalculateVibePercentage maps the aggregate to a 0-100 percentage, or nil
// under the same staleness rule as GetVibe.
func (vs *VibeService) CalculateVibePercentage(venueID string) (*int, error) {
	state, err := vs.GetVibe(venueID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, nil
	}
	avg := (state.MusicScore + state.DensityScore) / 2
	pct := int(math.Round(avg / float64(config.VIBE_SCORE_MAX) * 100))
	return &pct, nil
}

// CanVote reports whether the user may currently vote for the venue.
func (vs *VibeService) CanVote(userID, venueID string) (bool, error) {
	remaining, err := vs.GetCooldownRemaining(userID, venueID)
	if err != nil {
		return false, err
	}
	return remaining == 0, nil
}

// GetCooldownRemaining returns how many milliseconds remain before the user
// may vote for the venue again, zero when voting is allowed.
func (vs *VibeService) GetCooldownRemaining(userID, venueID string) (int64, error) {
	cd, err := vs.vibeDao.GetCooldown(userID, venueID)
	if err != nil {
		return 0, err
	}
	if cd == nil {
		return 0, nil
	}
	elapsed := time.Now().UTC().Sub(cd.LastVoteTimestamp)
	if elapsed >= config.VIBE_COOLDOWN_WINDOW {
		return 0, nil
	}
	return (config.VIBE_COOLDOWN_WINDOW - elapsed).Milliseconds(), nil
}

// ListActiveVibes returns the non-stale aggregates for every venue that has
// one, for the venues overview endpoint.
func (vs *VibeService) ListActiveVibes() ([]models.VenueVibeState, error) {
	ids, err := vs.vibeDao.ListVenueIDsWithVibeState()
	if err != nil {
		return nil, err
	}
	vibes := make([]models.VenueVibeState, 0, len(ids))
	for _, id := range ids {
		state, err := vs.GetVibe(id)
		if err != nil {
			log.Printf("[VibeService] Failed to load vibe for venue %s: %v", id, err)
			continue
		}
		if state != nil {
			vibes = append(vibes, *state)
		}
	}
	return vibes, nil
}
