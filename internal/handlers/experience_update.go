package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/models"
	"github.com/interviewshare/backend/internal/services"
)

// ExperienceUpdater defines the interface that the service must implement.
type ExperienceUpdater interface {
	Update(ctx context.Context, userID, experienceID uuid.UUID, upd models.ExperienceUpdate) (*models.Experience, error)
}

// NewUpdateExperienceHandler returns an HTTP handler for partially updating an experience.
// @Summary Update an experience
// @Description Applies the provided fields; omitted fields keep their values. Only the author may update.
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience id"
// @Param experienceUpdate body models.ExperienceUpdate true "Fields to update"
// @Success 200 {object} models.Experience "Updated experience"
// @Failure 401 "Missing or invalid token"
// @Failure 403 {object} handlers.ExperienceErrorResponse "Caller is not the author"
// @Failure 404 {object} handlers.ExperienceErrorResponse "Experience not found"
// @Router /experiences/{id} [put]
func NewUpdateExperienceHandler(svc ExperienceUpdater, tokener Tokener) http.HandlerFunc {
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

		var upd models.ExperienceUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExperienceErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		exp, err := svc.Update(r.Context(), userID, experienceID, upd)
		if err != nil {
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
		json.NewEncoder(w).Encode(exp)
	}
}
