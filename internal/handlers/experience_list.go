package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/models"
)

// ExperienceLister defines the interface that the service must implement.
type ExperienceLister interface {
	List(ctx context.Context, filter string) ([]models.Experience, error)
}

// AuthorExperienceLister defines the interface for listing the caller's posts.
type AuthorExperienceLister interface {
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Experience, error)
}

// NewListExperiencesHandler returns an HTTP handler for browsing and searching.
// @Summary List experiences
// @Description Returns all experiences newest first. An optional q parameter filters by company or role_title, case-insensitively.
// @Tags experiences
// @Produce json
// @Param q query string false "Free-text filter"
// @Success 200 {array} models.Experience "Experiences, newest first"
// @Router /experiences [get]
func NewListExperiencesHandler(svc ExperienceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exps, err := svc.List(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ExperienceErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(exps)
	}
}

// NewMyExperiencesHandler returns an HTTP handler for the caller's own posts.
// @Summary List the caller's experiences
// @Description Returns the authenticated user's experiences, newest first.
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Experience "Caller's experiences, newest first"
// @Failure 401 "Missing or invalid token"
// @Router /experiences/me [get]
func NewMyExperiencesHandler(svc AuthorExperienceLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		exps, err := svc.ListByAuthor(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ExperienceErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(exps)
	}
}
