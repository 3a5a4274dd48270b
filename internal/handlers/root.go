package handlers

import (
	"encoding/json"
	"net/http"
)

// RootResponse represents the welcome/status payload
// swagger:model RootResponse
type RootResponse struct {
	// Welcome message
	// default: Welcome to InterviewShare API
	Message string `json:"message"`

	// Service status
	// default: running
	Status string `json:"status"`
}

// NewRootHandler returns the welcome/status handler.
// @Summary Service status
// @Tags status
// @Produce json
// @Success 200 {object} handlers.RootResponse "Service is running"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RootResponse{
			Message: "Welcome to InterviewShare API",
			Status:  "running",
		})
	}
}
