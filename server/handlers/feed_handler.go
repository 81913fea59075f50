package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"vs-server/api/content"
	"vs-server/models"
	services "vs-server/service"
)

const MODE_QUERY_ARG = "mode"

type FeedHandler struct {
	feedService *services.FeedService
	contentAPI  content.ContentAPI
}

func NewFeedHandler(feedService *services.FeedService, contentAPI content.ContentAPI) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		contentAPI:  contentAPI,
	}
}

// GetFeed handles GET /v1/feed?mode={nearby|following}&user_id={user_id}
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(USER_ID_QUERY_ARG)
	if userID == "" {
		http.Error(w, "Missing argument "+USER_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}
	mode := models.FeedMode(r.URL.Query().Get(MODE_QUERY_ARG))

	items, err := h.contentAPI.GetRecentContent()
	if err != nil {
		log.Println("Error loading recent content:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var result interface{}
	switch mode {
	case models.FeedModeNearby:
		result = h.feedService.RankNearby(items, userID)
	case models.FeedModeFollowing:
		result = h.feedService.RankFollowing(items, userID)
	default:
		http.Error(w, "Invalid argument "+MODE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Println("Error encoding response:", err)
	}
}
