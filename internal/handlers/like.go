package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/services"
)

// Liker defines the interface that the like service must implement.
type Liker interface {
	Toggle(ctx context.Context, userID, experienceID uuid.UUID) (string, int64, error)
}

// LikeResponse represents the outcome of a like toggle
// swagger:model LikeResponse
type LikeResponse struct {
	// Whether the toggle liked or unliked
	// default: liked
	Action string `json:"action"`

	// Like count after the toggle
	// default: 1
	LikesCount int64 `json:"likes_count"`
}

// LikeErrorResponse represents an error response for the like endpoint
// swagger:model LikeErrorResponse
type LikeErrorResponse struct {
	// Error message
	// default: Experience not found
	Error string `json:"error"`
}

// NewLikeHandler returns an HTTP handler for toggling a like.
// @Summary Toggle a like
// @Description Likes the experience if the caller has not liked it, otherwise removes the like. Returns the post-toggle count.
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience id"
// @Success 200 {object} handlers.LikeResponse "Toggle outcome"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.LikeErrorResponse "Experience not found"
// @Router /experiences/{id}/like [post]
func NewLikeHandler(svc Liker, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		experienceID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(LikeErrorResponse{
				Error: "Experience not found",
			})
			return
		}

		action, count, err := svc.Toggle(r.Context(), userID, experienceID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrExperienceNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LikeErrorResponse{
					Error: "Experience not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LikeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LikeResponse{
			Action:     action,
			LikesCount: count,
		})
	}
}
