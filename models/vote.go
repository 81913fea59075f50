package models

import (
	"fmt"
	"time"
)

// EnergyLevel is the crowd energy reported by a vibe check.
type EnergyLevel string

const (
	EnergyLow      EnergyLevel = "LOW"
	EnergyModerate EnergyLevel = "MODERATE"
	EnergyHigh     EnergyLevel = "HIGH"
	EnergyPeak     EnergyLevel = "PEAK"
)

// ValidEnergyLevels holds the recognized energy levels.
var ValidEnergyLevels = map[EnergyLevel]bool{
	EnergyLow:      true,
	EnergyModerate: true,
	EnergyHigh:     true,
	EnergyPeak:     true,
}

// WaitTime is the door wait reported by a vibe check.
type WaitTime string

const (
	WaitNone     WaitTime = "NONE"
	WaitShort    WaitTime = "SHORT"
	WaitModerate WaitTime = "MODERATE"
	WaitLong     WaitTime = "LONG"
)

// ValidWaitTimes holds the recognized wait times.
var ValidWaitTimes = map[WaitTime]bool{
	WaitNone:     true,
	WaitShort:    true,
	WaitModerate: true,
	WaitLong:     true,
}

// VibeVote is a single vibe check submitted by a patron for a venue.
// Weight is assigned on acceptance: 2.0 for top-tier badge holders, else 1.0.
type VibeVote struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	VenueID      string      `json:"venue_id"`
	MusicScore   int         `json:"music_score"`
	DensityScore int         `json:"density_score"`
	EnergyLevel  EnergyLevel `json:"energy_level"`
	WaitTime     WaitTime    `json:"wait_time"`
	Weight       float64     `json:"weight"`
	Timestamp    time.Time   `json:"timestamp"`
}

// VibeVoteRequest is the API request body for submitting a vibe check.
type VibeVoteRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	MusicScore   int    `json:"music_score" validate:"required,min=1,max=5"`
	DensityScore int    `json:"density_score" validate:"required,min=1,max=5"`
	EnergyLevel  string `json:"energy_level" validate:"required"`
	WaitTime     string `json:"wait_time" validate:"required"`
}

func (v *VibeVote) ToString() string {
	return fmt.Sprintf("VibeVote(user=%s, venue=%s, music=%d, density=%d, weight=%.1f)",
		v.UserID, v.VenueID, v.MusicScore, v.DensityScore, v.Weight)
}
