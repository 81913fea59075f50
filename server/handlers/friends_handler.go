package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"vs-server/dao/redis"
	services "vs-server/service"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

type FriendsHandler struct {
	clusterService *services.ClusterService
	presence       *services.PresenceRefresherService
	presenceDao    *redis.RedisPresenceDAO
}

func NewFriendsHandler(
	clusterService *services.ClusterService,
	presence *services.PresenceRefresherService,
	presenceDao *redis.RedisPresenceDAO) *FriendsHandler {

	return &FriendsHandler{
		clusterService: clusterService,
		presence:       presence,
		presenceDao:    presenceDao,
	}
}

// GetCluster handles GET /v1/friends/cluster
func (h *FriendsHandler) GetCluster(w http.ResponseWriter, r *http.Request) {
	cluster := h.clusterService.FindLargestCluster(h.presence.Snapshot())
	if cluster == nil {
		http.Error(w, "No friend cluster available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(cluster); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetNearbyFriends handles GET /v1/friends/nearby
// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius_km(float)}
func (h *FriendsHandler) GetNearbyFriends(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	friends, err := h.presenceDao.GetNearbyFriends(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby friends:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(friends); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func (h *FriendsHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
