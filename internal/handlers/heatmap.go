package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/models"
)

// HeatmapReader defines the interface that the stats service must implement.
type HeatmapReader interface {
	Heatmap(ctx context.Context) ([]models.DayCount, error)
}

// NewHeatmapHandler returns an HTTP handler for the posting heatmap.
// @Summary Experiences-per-day heatmap
// @Description Returns sparse (date, count) pairs, one per calendar date with at least one experience.
// @Tags stats
// @Produce json
// @Success 200 {array} models.DayCount "Per-day counts"
// @Router /stats/heatmap [get]
func NewHeatmapHandler(svc HeatmapReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.Heatmap(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ExperienceErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(counts)
	}
}
