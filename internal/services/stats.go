package services

import (
	"context"

	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/models"
)

// DayCounter defines the per-day aggregation read.
type DayCounter interface {
	CountByDay(ctx context.Context) ([]models.DayCount, error)
}

// StatsService provides read-only aggregations.
type StatsService struct {
	readRepo DayCounter
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(readRepo DayCounter) *StatsService {
	return &StatsService{readRepo: readRepo}
}

// Heatmap groups experiences by the calendar date they were posted.
// When the store cannot produce the aggregation the failure is logged
// and an empty result is returned instead of failing the request.
func (s *StatsService) Heatmap(ctx context.Context) ([]models.DayCount, error) {
	counts, err := s.readRepo.CountByDay(ctx)
	if err != nil {
		logger.Log.Errorw("heatmap aggregation unavailable, returning empty result", "error", err)
		return []models.DayCount{}, nil
	}
	if counts == nil {
		counts = []models.DayCount{}
	}
	return counts, nil
}
