package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/models"
	"github.com/interviewshare/backend/internal/services"
)

// ExperienceCreator defines the interface that the service must implement.
type ExperienceCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, title, company, roleTitle, content string) (*models.Experience, error)
}

// CreateExperienceRequest represents the JSON body for posting an experience
// swagger:model CreateExperienceRequest
type CreateExperienceRequest struct {
	// Title
	// required: true
	// default: SWE at Google
	Title string `json:"title"`

	// Company
	// default: Google
	Company string `json:"company"`

	// Role interviewed for
	// default: SWE
	RoleTitle string `json:"role_title"`

	// Free-text account of the interview
	// required: true
	Content string `json:"content"`
}

// ExperienceErrorResponse represents an error response for experience endpoints
// swagger:model ExperienceErrorResponse
type ExperienceErrorResponse struct {
	// Error message
	// default: Experience not found
	Error string `json:"error"`
}

// NewCreateExperienceHandler returns an HTTP handler for posting an experience.
// @Summary Post a new interview experience
// @Description Creates an experience owned by the authenticated user. Title and content are required.
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createExperienceRequest body handlers.CreateExperienceRequest true "Experience to create"
// @Success 201 {object} models.Experience "Created experience with zero likes"
// @Failure 400 {object} handlers.ExperienceErrorResponse "Missing required fields"
// @Failure 401 "Missing or invalid token"
// @Router /experiences [post]
func NewCreateExperienceHandler(svc ExperienceCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		var req CreateExperienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExperienceErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		exp, err := svc.Create(r.Context(), userID, req.Title, req.Company, req.RoleTitle, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExperienceErrorResponse{
					Error: "Missing required fields",
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(exp)
	}
}
