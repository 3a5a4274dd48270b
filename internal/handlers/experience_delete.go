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

// ExperienceDeleter defines the interface that the service must implement.
type ExperienceDeleter interface {
	Delete(ctx context.Context, userID, experienceID uuid.UUID) error
}

// DeleteExperienceResponse represents a successful deletion response
// swagger:model DeleteExperienceResponse
type DeleteExperienceResponse struct {
	// Success message
	// default: Experience deleted
	Message string `json:"message"`
}

// NewDeleteExperienceHandler returns an HTTP handler for deleting an experience.
// @Summary Delete an experience
// @Description Removes an experience and its like pairs. Only the author may delete.
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience id"
// @Success 200 {object} handlers.DeleteExperienceResponse "Experience deleted"
// @Failure 401 "Missing or invalid token"
// @Failure 403 {object} handlers.ExperienceErrorResponse "Caller is not the author"
// @Failure 404 {object} handlers.ExperienceErrorResponse "Experience not found"
// @Router /experiences/{id} [delete]
func NewDeleteExperienceHandler(svc ExperienceDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		experienceID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ExperienceErrorResponse{
				Error: "Experience not found",
			})
			return
		}

		if err := svc.Delete(r.Context(), userID, experienceID); err != nil {
			switch {
			case errors.Is(err, services.ErrExperienceNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ExperienceErrorResponse{
					Error: "Experience not found",
				})
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ExperienceErrorResponse{
					Error: "Permission denied",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ExperienceErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteExperienceResponse{
			Message: "Experience deleted",
		})
	}
}
