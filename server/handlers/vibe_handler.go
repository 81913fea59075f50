package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"vs-server/models"
	services "vs-server/service"
)

const USER_ID_QUERY_ARG = "user_id"

// VibeVoteResponse pairs the updated aggregate with its 0-100 percentage.
type VibeVoteResponse struct {
	State          *models.VenueVibeState `json:"state"`
	VibePercentage *int                   `json:"vibe_percentage"`
}

// CooldownRejection is the body returned when a vote lands inside the window.
type CooldownRejection struct {
	Error       string `json:"error"`
	RemainingMs int64  `json:"remaining_ms"`
}

type VibeHandler struct {
	vibeService *services.VibeService
	validate    *validator.Validate
}

func NewVibeHandler(vibeService *services.VibeService) *VibeHandler {
	return &VibeHandler{
		vibeService: vibeService,
		validate:    validator.New(),
	}
}

// SubmitVibe handles POST /v1/venues/{venue_id}/vibes
func (h *VibeHandler) SubmitVibe(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venue_id"]

	var req models.VibeVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	vote := models.VibeVote{
		ID:           uuid.New().String(),
		UserID:       req.UserID,
		VenueID:      venueID,
		MusicScore:   req.MusicScore,
		DensityScore: req.DensityScore,
		EnergyLevel:  models.EnergyLevel(req.EnergyLevel),
		WaitTime:     models.WaitTime(req.WaitTime),
		Timestamp:    time.Now().UTC(),
	}

	state, err := h.vibeService.SubmitVote(vote)
	if err != nil {
		var validationErr *models.ValidationError
		var cooldownErr *models.CooldownError
		switch {
		case errors.As(err, &validationErr):
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
		case errors.As(err, &cooldownErr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(CooldownRejection{
				Error:       cooldownErr.Error(),
				RemainingMs: cooldownErr.RemainingMs,
			})
		default:
			log.Println("Error submitting vote:", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	pct, err := h.vibeService.CalculateVibePercentage(venueID)
	if err != nil {
		log.Printf("No percentage for venue_id=%s after vote: %v", venueID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(VibeVoteResponse{State: state, VibePercentage: pct}); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetVibe handles GET /v1/venues/{venue_id}/vibe
func (h *VibeHandler) GetVibe(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venue_id"]

	state, err := h.vibeService.GetVibe(venueID)
	if err != nil {
		log.Println("Error loading venue vibe:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if state == nil {
		http.Error(w, "No active vibe for venue", http.StatusNotFound)
		return
	}

	pct, err := h.vibeService.CalculateVibePercentage(venueID)
	if err != nil {
		log.Println("Error calculating vibe percentage:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(VibeVoteResponse{State: state, VibePercentage: pct}); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetCooldown handles GET /v1/venues/{venue_id}/vibe/cooldown?user_id={user_id}
func (h *VibeHandler) GetCooldown(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venue_id"]
	userID := r.URL.Query().Get(USER_ID_QUERY_ARG)
	if userID == "" {
		http.Error(w, "Missing argument "+USER_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}

	canVote, err := h.vibeService.CanVote(userID, venueID)
	if err != nil {
		log.Println("Error checking cooldown:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	remaining, err := h.vibeService.GetCooldownRemaining(userID, venueID)
	if err != nil {
		log.Println("Error reading cooldown remaining:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.CooldownStatus{CanVote: canVote, RemainingMs: remaining}); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// ListVibes handles GET /v1/venues/vibes
func (h *VibeHandler) ListVibes(w http.ResponseWriter, r *http.Request) {
	vibes, err := h.vibeService.ListActiveVibes()
	if err != nil {
		log.Println("Error listing active vibes:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(vibes); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping
func (h *VibeHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
