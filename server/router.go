package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VibeRoutes are the vote and aggregate endpoints.
type VibeRoutes interface {
	SubmitVibe(w http.ResponseWriter, r *http.Request)
	GetVibe(w http.ResponseWriter, r *http.Request)
	GetCooldown(w http.ResponseWriter, r *http.Request)
	ListVibes(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// FeedRoutes are the ranked feed endpoints.
type FeedRoutes interface {
	GetFeed(w http.ResponseWriter, r *http.Request)
}

// FriendsRoutes are the friend presence and clustering endpoints.
type FriendsRoutes interface {
	GetCluster(w http.ResponseWriter, r *http.Request)
	GetNearbyFriends(w http.ResponseWriter, r *http.Request)
}

// SuggestionRoutes are the friend suggestion endpoints.
type SuggestionRoutes interface {
	GetSuggestions(w http.ResponseWriter, r *http.Request)
	InvalidateCache(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	vibeHandler       VibeRoutes
	feedHandler       FeedRoutes
	friendsHandler    FriendsRoutes
	suggestionHandler SuggestionRoutes
	router            *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	vibeHandler VibeRoutes,
	feedHandler FeedRoutes,
	friendsHandler FriendsRoutes,
	suggestionHandler SuggestionRoutes,
	router *mux.Router) *Router {
	return &Router{
		vibeHandler:       vibeHandler,
		feedHandler:       feedHandler,
		friendsHandler:    friendsHandler,
		suggestionHandler: suggestionHandler,
		router:            router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/venues/vibes", r.vibeHandler.ListVibes).Methods("GET")
	r.router.HandleFunc("/v1/venues/{venue_id}/vibes", r.vibeHandler.SubmitVibe).Methods("POST")
	r.router.HandleFunc("/v1/venues/{venue_id}/vibe", r.vibeHandler.GetVibe).Methods("GET")

	// expects ?user_id={user_id}
	r.router.HandleFunc("/v1/venues/{venue_id}/vibe/cooldown", r.vibeHandler.GetCooldown).Methods("GET")

	// expects ?mode={nearby|following}&user_id={user_id}
	r.router.HandleFunc("/v1/feed", r.feedHandler.GetFeed).Methods("GET")

	r.router.HandleFunc("/v1/friends/cluster", r.friendsHandler.GetCluster).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/friends/nearby", r.friendsHandler.GetNearbyFriends).Methods("GET")

	// expects ?user_id={user_id}&exclude={id1,id2,...}
	r.router.HandleFunc("/v1/friends/suggestions", r.suggestionHandler.GetSuggestions).Methods("GET")
	r.router.HandleFunc("/v1/friends/suggestions/cache", r.suggestionHandler.InvalidateCache).Methods("DELETE")

	r.router.HandleFunc("/ping", r.vibeHandler.Ping).Methods("GET")
}
