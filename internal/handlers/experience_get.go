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

// ExperienceGetter defines the interface that the service must implement.
type ExperienceGetter interface {
	Get(ctx context.Context, experienceID uuid.UUID) (*models.Experience, error)
}

// NewGetExperienceHandler returns an HTTP handler for reading one experience.
// @Summary Get an experience
// @Description Returns one experience with its derived like fields
// @Tags experiences
// @Produce json
// @Param id path string true "Experience id"
// @Success 200 {object} models.Experience "The experience"
// @Failure 404 {object} handlers.ExperienceErrorResponse "Experience not found"
// @Router /experiences/{id} [get]
func NewGetExperienceHandler(svc ExperienceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ExperienceErrorResponse{
				Error: "Experience not found",
			})
			return
		}

		exp, err := svc.Get(r.Context(), experienceID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrExperienceNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ExperienceErrorResponse{
					Error: "Experience not found",
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
