package location

import "vs-server/models"

// LocationAPI defines the interface for the external location provider. The
// returned list is already privacy-filtered to "visible to current viewer";
// the engine applies no visibility rules of its own.
type LocationAPI interface {
	GetVisibleFriends() ([]models.FriendPresence, error)
}
