package services

import (
	"vs-server/models"
)

// ClusterService groups visible friend positions by venue and locates the
// biggest group. It is a pure function over its input and holds no state.
type ClusterService struct{}

// NewClusterService constructs a new ClusterService.
func NewClusterService() *ClusterService {
	return &ClusterService{}
}

// FindLargestCluster groups friends by venue, discarding entries with no
// venue or inactive presence, and returns the largest group with the
// unweighted centroid of its members. Ties go to the group seen first in the
// input, which keeps the result deterministic for a given snapshot. Returns
// nil when no friend is grouped at any venue.
func (cs *ClusterService) FindLargestCluster(friends []models.FriendPresence) *models.FriendCluster {
	groups := make(map[string][]models.FriendPresence)
	var order []string

	for _, f := range friends {
		if f.VenueID == "" || !f.IsActive {
			continue
		}
		if _, seen := groups[f.VenueID]; !seen {
			order = append(order, f.VenueID)
		}
		groups[f.VenueID] = append(groups[f.VenueID], f)
	}

	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, venueID := range order[1:] {
		if len(groups[venueID]) > len(groups[best]) {
			best = venueID
		}
	}

	members := groups[best]
	var sumLat, sumLon float64
	for _, m := range members {
		sumLat += m.Location.Lat
		sumLon += m.Location.Lon
	}
	n := float64(len(members))

	return &models.FriendCluster{
		VenueID: best,
		Centroid: models.GeoPoint{
			Lat: sumLat / n,
			Lon: sumLon / n,
		},
		Members: members,
	}
}
