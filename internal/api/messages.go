package api

import (
	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

// Warning fields carry the text of a storage warning: the data in the
// response is usable but was read from a missing or damaged document.

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password []byte `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password []byte `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type AddMoodRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

type AddMoodResponse struct {
	Record models.MoodRecord `json:"record"`
}

type ListMoodsRequest struct {
	// NewestFirst orders records newest first instead of insertion order.
	NewestFirst bool `json:"newest_first"`
}

type ListMoodsResponse struct {
	Records []models.MoodRecord `json:"records"`
	Warning string              `json:"warning,omitempty"`
}

type SummarizeRequest struct {
	Bucket string         `json:"bucket"`
	Window summary.Window `json:"window"`
}

type SummarizeResponse struct {
	Table   summary.Table `json:"table"`
	Warning string        `json:"warning,omitempty"`
}

type CompareRequest struct {
	RecentDays   int `json:"recent_days"`
	PreviousDays int `json:"previous_days"`
}

type CompareResponse struct {
	Comparison summary.Comparison `json:"comparison"`
	Warning    string             `json:"warning,omitempty"`
}

type FrequencyRequest struct{}

type FrequencyResponse struct {
	Counts  []summary.MoodCount `json:"counts"`
	Warning string              `json:"warning,omitempty"`
}
