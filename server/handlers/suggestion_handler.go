package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	services "vs-server/service"
)

const EXCLUDE_QUERY_ARG = "exclude"

type SuggestionHandler struct {
	suggestionService *services.SuggestionService
}

func NewSuggestionHandler(suggestionService *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

// GetSuggestions handles GET /v1/friends/suggestions
// expects ?user_id={user_id}&exclude={id1,id2,...}
func (h *SuggestionHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(USER_ID_QUERY_ARG)
	if userID == "" {
		http.Error(w, "Missing argument "+USER_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}

	var excludedIDs []string
	if raw := r.URL.Query().Get(EXCLUDE_QUERY_ARG); raw != "" {
		excludedIDs = strings.Split(raw, ",")
	}

	people := h.suggestionService.GetSuggestions(r.Context(), userID, excludedIDs, nil)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(people); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// InvalidateCache handles DELETE /v1/friends/suggestions/cache
// expects ?user_id={user_id}; called right after the viewer follows someone.
func (h *SuggestionHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(USER_ID_QUERY_ARG)
	if userID == "" {
		http.Error(w, "Missing argument "+USER_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}

	h.suggestionService.InvalidateCache(userID)
	w.WriteHeader(http.StatusNoContent)
}
